package entities

import (
	"math"
	"strings"

	"github.com/Anirach/ncd-health-plus/domain/core/valueobjects"
	pkgerrors "github.com/Anirach/ncd-health-plus/pkg/errors"
)

// Edge is a directed, weighted causal relationship between two nodes.
// A positive weight raises the target, a negative weight is protective.
type Edge struct {
	id          string
	source      valueobjects.NodeID
	target      valueobjects.NodeID
	weight      float64
	ci          valueobjects.ConfidenceInterval
	grade       valueobjects.EvidenceGrade
	domain      valueobjects.Domain
	description string
}

// EdgeSpec carries the attributes used to build an Edge
type EdgeSpec struct {
	ID          string
	Source      valueobjects.NodeID
	Target      valueobjects.NodeID
	Weight      float64
	CI          valueobjects.ConfidenceInterval
	Grade       valueobjects.EvidenceGrade
	Domain      valueobjects.Domain
	Description string
}

// NewEdge validates a spec and builds the edge. Node existence is checked by
// the graph, not here.
func NewEdge(spec EdgeSpec) (*Edge, error) {
	if strings.TrimSpace(spec.ID) == "" {
		return nil, pkgerrors.NewValidationError("edge id cannot be empty")
	}
	if spec.Source == "" || spec.Target == "" {
		return nil, pkgerrors.NewValidationError("edge " + spec.ID + " must have a source and a target")
	}
	if spec.Source == spec.Target {
		return nil, pkgerrors.NewValidationError("edge " + spec.ID + " is a self-loop")
	}
	if isNotFinite(spec.Weight) || isNotFinite(spec.CI.Low) || isNotFinite(spec.CI.High) {
		return nil, pkgerrors.NewValidationError("edge " + spec.ID + " has a non-finite weight or interval")
	}
	if spec.CI.Low > spec.CI.High {
		return nil, pkgerrors.NewValidationError("edge " + spec.ID + " has an inverted confidence interval")
	}
	if _, err := valueobjects.ParseEvidenceGrade(string(spec.Grade)); err != nil {
		return nil, pkgerrors.NewValidationError(err.Error())
	}
	if _, err := valueobjects.ParseDomain(string(spec.Domain)); err != nil {
		return nil, pkgerrors.NewValidationError(err.Error())
	}

	return &Edge{
		id:          spec.ID,
		source:      spec.Source,
		target:      spec.Target,
		weight:      spec.Weight,
		ci:          spec.CI,
		grade:       spec.Grade,
		domain:      spec.Domain,
		description: spec.Description,
	}, nil
}

// MustEdge is NewEdge for static tables; it panics on invalid input
func MustEdge(spec EdgeSpec) *Edge {
	e, err := NewEdge(spec)
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Edge) ID() string                          { return e.id }
func (e *Edge) Source() valueobjects.NodeID         { return e.source }
func (e *Edge) Target() valueobjects.NodeID         { return e.target }
func (e *Edge) Weight() float64                     { return e.weight }
func (e *Edge) CI() valueobjects.ConfidenceInterval { return e.ci }
func (e *Edge) Grade() valueobjects.EvidenceGrade   { return e.grade }
func (e *Edge) Domain() valueobjects.Domain         { return e.domain }
func (e *Edge) Description() string                 { return e.description }
func (e *Edge) IsProtective() bool                  { return e.weight < 0 }

// CIConsistent reports whether the weight lies inside its interval.
// Inconsistent edges are still usable.
func (e *Edge) CIConsistent() bool {
	return e.ci.Contains(e.weight)
}

// Spec returns the attributes the edge was built from
func (e *Edge) Spec() EdgeSpec {
	return EdgeSpec{
		ID:          e.id,
		Source:      e.source,
		Target:      e.target,
		Weight:      e.weight,
		CI:          e.ci,
		Grade:       e.grade,
		Domain:      e.domain,
		Description: e.description,
	}
}

func isNotFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
