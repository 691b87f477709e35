package valueobjects

import "fmt"

// Domain groups nodes and edges by disease area
type Domain string

const (
	DomainCVD          Domain = "CVD"
	DomainT2DM         Domain = "T2DM"
	DomainCKD          Domain = "CKD"
	DomainShared       Domain = "Shared"
	DomainIntervention Domain = "Intervention"
)

// ParseDomain validates a domain name
func ParseDomain(s string) (Domain, error) {
	switch d := Domain(s); d {
	case DomainCVD, DomainT2DM, DomainCKD, DomainShared, DomainIntervention:
		return d, nil
	}
	return "", fmt.Errorf("unknown domain %q", s)
}

// NodeType describes what kind of health factor a node is
type NodeType string

const (
	TypeBiomarker   NodeType = "biomarker"
	TypeDisease     NodeType = "disease"
	TypeLifestyle   NodeType = "lifestyle"
	TypeMedication  NodeType = "medication"
	TypeDemographic NodeType = "demographic"
)

// ParseNodeType validates a node type name
func ParseNodeType(s string) (NodeType, error) {
	switch t := NodeType(s); t {
	case TypeBiomarker, TypeDisease, TypeLifestyle, TypeMedication, TypeDemographic:
		return t, nil
	}
	return "", fmt.Errorf("unknown node type %q", s)
}

// EvidenceGrade rates the literature support for an edge. Informational only.
type EvidenceGrade string

const (
	GradeA EvidenceGrade = "A"
	GradeB EvidenceGrade = "B"
	GradeC EvidenceGrade = "C"
	GradeD EvidenceGrade = "D"
)

// ParseEvidenceGrade validates an evidence grade
func ParseEvidenceGrade(s string) (EvidenceGrade, error) {
	switch g := EvidenceGrade(s); g {
	case GradeA, GradeB, GradeC, GradeD:
		return g, nil
	}
	return "", fmt.Errorf("unknown evidence grade %q", s)
}
