package aggregates

import (
	"fmt"
	"sort"

	"github.com/Anirach/ncd-health-plus/domain/core/entities"
	"github.com/Anirach/ncd-health-plus/domain/core/valueobjects"
	pkgerrors "github.com/Anirach/ncd-health-plus/pkg/errors"
)

// Model bundles everything the risk engine reads: the graph, the reference
// statistics used for standardization, the per-disease intercepts and the
// fixed processing order for the cascade.
type Model struct {
	name       string
	graph      *KnowledgeGraph
	stats      map[valueobjects.NodeID]valueobjects.ReferenceStatistic
	intercepts map[valueobjects.NodeID]float64
	order      []valueobjects.NodeID
	position   map[valueobjects.NodeID]int
}

// ModelSpec carries the parts used to build a Model
type ModelSpec struct {
	Name       string
	Graph      *KnowledgeGraph
	Stats      map[valueobjects.NodeID]valueobjects.ReferenceStatistic
	Intercepts map[valueobjects.NodeID]float64
	Order      []valueobjects.NodeID
}

// NewModel validates that every table references nodes of the graph
func NewModel(spec ModelSpec) (*Model, error) {
	if spec.Graph == nil {
		return nil, pkgerrors.NewValidationError("model requires a graph")
	}

	verrs := pkgerrors.NewValidationErrors()
	m := &Model{
		name:       spec.Name,
		graph:      spec.Graph,
		stats:      make(map[valueobjects.NodeID]valueobjects.ReferenceStatistic, len(spec.Stats)),
		intercepts: make(map[valueobjects.NodeID]float64, len(spec.Intercepts)),
		order:      make([]valueobjects.NodeID, 0, len(spec.Order)),
		position:   make(map[valueobjects.NodeID]int, len(spec.Order)),
	}

	for id, st := range spec.Stats {
		if !spec.Graph.HasNode(id) {
			verrs.Add("stats", "statistic for unknown node "+id.String())
			continue
		}
		if err := st.Validate(); err != nil {
			verrs.Add("stats", fmt.Sprintf("%s: %v", id, err))
			continue
		}
		m.stats[id] = st
	}

	for id, b0 := range spec.Intercepts {
		n, ok := spec.Graph.NodeByID(id)
		if !ok {
			verrs.Add("intercepts", "intercept for unknown node "+id.String())
			continue
		}
		if !n.IsDisease() {
			verrs.Add("intercepts", "intercept for non-disease node "+id.String())
			continue
		}
		m.intercepts[id] = b0
	}

	for i, id := range spec.Order {
		if !spec.Graph.HasNode(id) {
			verrs.Add("order", "order references unknown node "+id.String())
			continue
		}
		if _, dup := m.position[id]; dup {
			verrs.Add("order", "order lists node twice: "+id.String())
			continue
		}
		m.position[id] = i
		m.order = append(m.order, id)
	}

	if verrs.HasErrors() {
		return nil, verrs
	}
	return m, nil
}

// Name labels the model, e.g. for logs
func (m *Model) Name() string { return m.name }

// Graph returns the underlying knowledge graph
func (m *Model) Graph() *KnowledgeGraph { return m.graph }

// Statistic returns the reference statistic for a node
func (m *Model) Statistic(id valueobjects.NodeID) (valueobjects.ReferenceStatistic, bool) {
	st, ok := m.stats[id]
	return st, ok
}

// Intercept returns the baseline logit for a disease
func (m *Model) Intercept(id valueobjects.NodeID) (float64, bool) {
	b0, ok := m.intercepts[id]
	return b0, ok
}

// Order returns the cascade processing order
func (m *Model) Order() []valueobjects.NodeID {
	out := make([]valueobjects.NodeID, len(m.order))
	copy(out, m.order)
	return out
}

// Stats returns a copy of the reference statistics
func (m *Model) Stats() map[valueobjects.NodeID]valueobjects.ReferenceStatistic {
	out := make(map[valueobjects.NodeID]valueobjects.ReferenceStatistic, len(m.stats))
	for k, v := range m.stats {
		out[k] = v
	}
	return out
}

// Intercepts returns a copy of the disease intercepts
func (m *Model) Intercepts() map[valueobjects.NodeID]float64 {
	out := make(map[valueobjects.NodeID]float64, len(m.intercepts))
	for k, v := range m.intercepts {
		out[k] = v
	}
	return out
}

// OrderViolations lists edges whose source is processed after its target, or
// whose endpoints are missing from the order. A single cascade pass cannot
// propagate along these edges.
func (m *Model) OrderViolations() []*entities.Edge {
	var out []*entities.Edge
	for _, e := range m.graph.AllEdges() {
		ps, okS := m.position[e.Source()]
		pt, okT := m.position[e.Target()]
		if !okS || !okT || ps >= pt {
			out = append(out, e)
		}
	}
	return out
}

// ValidateProfile rejects profile keys that are not nodes of this model
func (m *Model) ValidateProfile(p valueobjects.PatientProfile) error {
	var unknown []string
	for _, id := range p.Keys() {
		if !m.graph.HasNode(id) {
			unknown = append(unknown, id.String())
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return pkgerrors.NewValidationError(fmt.Sprintf("profile references nodes outside the model: %v", unknown))
}
