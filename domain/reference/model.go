// Package reference holds the reference instance of the causal model: the
// published node and edge tables, standardization statistics, intercepts
// and demo patients.
package reference

import (
	"sync"

	"github.com/Anirach/ncd-health-plus/domain/core/aggregates"
	"github.com/Anirach/ncd-health-plus/domain/core/entities"
	vo "github.com/Anirach/ncd-health-plus/domain/core/valueobjects"
)

// ModelName identifies the reference model in logs and responses
const ModelName = "ncd-cie-reference"

var (
	defaultModel     *aggregates.Model
	defaultModelOnce sync.Once
)

// DefaultModel returns the shared reference model. It is immutable and safe
// for concurrent use.
func DefaultModel() *aggregates.Model {
	defaultModelOnce.Do(func() {
		m, err := BuildModel()
		if err != nil {
			panic("reference model is invalid: " + err.Error())
		}
		defaultModel = m
	})
	return defaultModel
}

// BuildModel constructs a fresh copy of the reference model
func BuildModel() (*aggregates.Model, error) {
	graph, err := aggregates.NewKnowledgeGraph(Nodes(), Edges())
	if err != nil {
		return nil, err
	}
	return aggregates.NewModel(aggregates.ModelSpec{
		Name:       ModelName,
		Graph:      graph,
		Stats:      referenceStats,
		Intercepts: diseaseIntercepts,
		Order:      cascadeOrder,
	})
}

// Nodes builds the reference node entities
func Nodes() []*entities.Node {
	out := make([]*entities.Node, len(nodeSpecs))
	for i, spec := range nodeSpecs {
		out[i] = entities.MustNode(spec)
	}
	return out
}

// Edges builds the reference edge entities
func Edges() []*entities.Edge {
	out := make([]*entities.Edge, len(edgeSpecs))
	for i, spec := range edgeSpecs {
		out[i] = entities.MustEdge(spec)
	}
	return out
}

// Statistics returns a copy of the reference statistics
func Statistics() map[vo.NodeID]vo.ReferenceStatistic {
	out := make(map[vo.NodeID]vo.ReferenceStatistic, len(referenceStats))
	for k, v := range referenceStats {
		out[k] = v
	}
	return out
}

// Intercepts returns a copy of the disease intercepts
func Intercepts() map[vo.NodeID]float64 {
	out := make(map[vo.NodeID]float64, len(diseaseIntercepts))
	for k, v := range diseaseIntercepts {
		out[k] = v
	}
	return out
}

// Order returns a copy of the cascade order
func Order() []vo.NodeID {
	out := make([]vo.NodeID, len(cascadeOrder))
	copy(out, cascadeOrder)
	return out
}
