package services

import (
	"github.com/Anirach/ncd-health-plus/domain/core/aggregates"
	vo "github.com/Anirach/ncd-health-plus/domain/core/valueobjects"
)

// Standardizer converts raw node values to z-scores
type Standardizer struct {
	model *aggregates.Model
}

// NewStandardizer creates a standardizer over the model's reference statistics
func NewStandardizer(model *aggregates.Model) *Standardizer {
	return &Standardizer{model: model}
}

// Standardize returns (raw - mean) / std, or 0 when the node has no
// registered statistic. Unregistered nodes are therefore causally inert.
func (s *Standardizer) Standardize(id vo.NodeID, raw float64) float64 {
	st, ok := s.model.Statistic(id)
	if !ok {
		return 0
	}
	return st.ZScore(raw)
}

// Scale returns the std used to express a standardized change in raw units,
// 1 for nodes without a statistic
func (s *Standardizer) Scale(id vo.NodeID) float64 {
	st, ok := s.model.Statistic(id)
	if !ok {
		return 1
	}
	return st.Std
}
