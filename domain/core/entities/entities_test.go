package entities

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/Anirach/ncd-health-plus/domain/core/valueobjects"
	pkgerrors "github.com/Anirach/ncd-health-plus/pkg/errors"
)

func validNodeSpec() NodeSpec {
	return NodeSpec{
		ID:          vo.LDL,
		Label:       "LDL-C",
		Domain:      vo.DomainCVD,
		Type:        vo.TypeBiomarker,
		Unit:        "mg/dL",
		NormalRange: &vo.Range{Min: 0, Max: 100},
	}
}

func validEdgeSpec() EdgeSpec {
	return EdgeSpec{
		ID:     "e1",
		Source: vo.LDL,
		Target: vo.CAD,
		Weight: 0.28,
		CI:     vo.ConfidenceInterval{Low: 0.22, High: 0.34},
		Grade:  vo.GradeA,
		Domain: vo.DomainCVD,
	}
}

func TestNewNode(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*NodeSpec)
		wantErr bool
	}{
		{"valid", func(*NodeSpec) {}, false},
		{"no range", func(s *NodeSpec) { s.NormalRange = nil }, false},
		{"unknown id", func(s *NodeSpec) { s.ID = "weight" }, true},
		{"blank label", func(s *NodeSpec) { s.Label = "  " }, true},
		{"bad domain", func(s *NodeSpec) { s.Domain = "Liver" }, true},
		{"bad type", func(s *NodeSpec) { s.Type = "drug" }, true},
		{"inverted range", func(s *NodeSpec) { s.NormalRange = &vo.Range{Min: 10, Max: 1} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := validNodeSpec()
			tt.mutate(&spec)
			n, err := NewNode(spec)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, pkgerrors.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, spec.ID, n.ID())
		})
	}
}

func TestNode_RangeIsCopied(t *testing.T) {
	spec := validNodeSpec()
	n := MustNode(spec)
	spec.NormalRange.Max = 500

	r, ok := n.NormalRange()
	require.True(t, ok)
	assert.Equal(t, 100.0, r.Max)
	assert.False(t, n.IsDisease())
	assert.Equal(t, n.Spec().NormalRange.Max, 100.0)
}

func TestMustNode_Panics(t *testing.T) {
	assert.Panics(t, func() { MustNode(NodeSpec{ID: "nope"}) })
}

func TestNewEdge(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*EdgeSpec)
		wantErr bool
	}{
		{"valid", func(*EdgeSpec) {}, false},
		{"weight outside ci is allowed", func(s *EdgeSpec) { s.Weight = 0.5 }, false},
		{"missing id", func(s *EdgeSpec) { s.ID = "" }, true},
		{"missing target", func(s *EdgeSpec) { s.Target = "" }, true},
		{"self loop", func(s *EdgeSpec) { s.Target = vo.LDL }, true},
		{"nan weight", func(s *EdgeSpec) { s.Weight = math.NaN() }, true},
		{"infinite bound", func(s *EdgeSpec) { s.CI.High = math.Inf(1) }, true},
		{"inverted ci", func(s *EdgeSpec) { s.CI = vo.ConfidenceInterval{Low: 0.4, High: 0.1} }, true},
		{"bad grade", func(s *EdgeSpec) { s.Grade = "Z" }, true},
		{"bad domain", func(s *EdgeSpec) { s.Domain = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := validEdgeSpec()
			tt.mutate(&spec)
			_, err := NewEdge(spec)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEdge_Accessors(t *testing.T) {
	e := MustEdge(validEdgeSpec())
	assert.True(t, e.CIConsistent())
	assert.False(t, e.IsProtective())
	assert.Equal(t, validEdgeSpec(), e.Spec())

	spec := validEdgeSpec()
	spec.Weight = -0.2
	spec.CI = vo.ConfidenceInterval{Low: -0.1, High: 0}
	protective := MustEdge(spec)
	assert.True(t, protective.IsProtective())
	assert.False(t, protective.CIConsistent())
}
