package valueobjects

import (
	"encoding/json"
	"fmt"
)

// NodeID identifies a health factor in the causal graph.
// The set of identifiers is closed: only the constants below are valid.
type NodeID string

// Demographics
const (
	Age NodeID = "age"
	Sex NodeID = "sex"
)

// Biomarkers
const (
	LDL   NodeID = "ldl"
	HDL   NodeID = "hdl"
	TC    NodeID = "tc"
	TG    NodeID = "tg"
	SBP   NodeID = "sbp"
	DBP   NodeID = "dbp"
	HbA1c NodeID = "hba1c"
	FPG   NodeID = "fpg"
	EGFR  NodeID = "egfr"
	BMI   NodeID = "bmi"
)

// Lifestyle
const (
	Smoking  NodeID = "smoking"
	Exercise NodeID = "exercise"
	Alcohol  NodeID = "alcohol"
	Diet     NodeID = "diet"
)

// Medications
const (
	Statin    NodeID = "statin"
	HTNMed    NodeID = "htn_med"
	SGLT2i    NodeID = "sglt2i"
	Metformin NodeID = "metformin"
	Aspirin   NodeID = "aspirin"
	ACEARB    NodeID = "ace_arb"
)

// Derived conditions
const (
	Diabetes     NodeID = "diabetes"
	Hypertension NodeID = "hypertension"
)

// Disease endpoints
const (
	CAD    NodeID = "cad"
	Stroke NodeID = "stroke"
	HF     NodeID = "hf"
	PAD    NodeID = "pad"
	T2DM   NodeID = "t2dm"
	CKD    NodeID = "ckd"
	NAFLD  NodeID = "nafld"
)

var allNodeIDs = []NodeID{
	Age, Sex,
	LDL, HDL, TC, TG, SBP, DBP, HbA1c, FPG, EGFR, BMI,
	Smoking, Exercise, Alcohol, Diet,
	Statin, HTNMed, SGLT2i, Metformin, Aspirin, ACEARB,
	Diabetes, Hypertension,
	CAD, Stroke, HF, PAD, T2DM, CKD, NAFLD,
}

var knownNodeIDs = func() map[NodeID]struct{} {
	m := make(map[NodeID]struct{}, len(allNodeIDs))
	for _, id := range allNodeIDs {
		m[id] = struct{}{}
	}
	return m
}()

// AllNodeIDs returns every valid identifier.
func AllNodeIDs() []NodeID {
	out := make([]NodeID, len(allNodeIDs))
	copy(out, allNodeIDs)
	return out
}

// DiseaseEndpoints returns the seven scored endpoints in reporting order.
func DiseaseEndpoints() []NodeID {
	return []NodeID{CAD, Stroke, HF, PAD, T2DM, CKD, NAFLD}
}

// ParseNodeID converts a string into a NodeID, rejecting unknown identifiers.
func ParseNodeID(s string) (NodeID, error) {
	id := NodeID(s)
	if !id.IsKnown() {
		return "", fmt.Errorf("unknown node id %q", s)
	}
	return id, nil
}

// IsKnown reports whether the identifier belongs to the closed set.
func (id NodeID) IsKnown() bool {
	_, ok := knownNodeIDs[id]
	return ok
}

// IsDerived reports whether the value is recomputed from biomarkers.
func (id NodeID) IsDerived() bool {
	return id == Diabetes || id == Hypertension
}

// String returns the string representation of the NodeID
func (id NodeID) String() string {
	return string(id)
}

// UnmarshalText implements encoding.TextUnmarshaler so NodeIDs used as map
// keys are validated on decode.
func (id *NodeID) UnmarshalText(text []byte) error {
	parsed, err := ParseNodeID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// UnmarshalJSON implements json.Unmarshaler
func (id *NodeID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("node id must be a string: %w", err)
	}
	return id.UnmarshalText([]byte(s))
}
