package queries

import (
	"github.com/Anirach/ncd-health-plus/application/ports"
	"github.com/Anirach/ncd-health-plus/domain/core/aggregates"
	"github.com/Anirach/ncd-health-plus/domain/core/entities"
	vo "github.com/Anirach/ncd-health-plus/domain/core/valueobjects"
	pkgerrors "github.com/Anirach/ncd-health-plus/pkg/errors"
)

// NodeView is the read model of a node
type NodeView struct {
	ID          vo.NodeID              `json:"id"`
	Label       string                 `json:"label"`
	Domain      vo.Domain              `json:"domain"`
	Type        vo.NodeType            `json:"type"`
	Unit        string                 `json:"unit,omitempty"`
	NormalRange *vo.Range              `json:"normal_range,omitempty"`
	Description string                 `json:"description,omitempty"`
	Statistic   *vo.ReferenceStatistic `json:"reference,omitempty"`
	Intercept   *float64               `json:"intercept,omitempty"`
}

// EdgeView is the read model of an edge
type EdgeView struct {
	ID          string                `json:"id"`
	Source      vo.NodeID             `json:"source"`
	Target      vo.NodeID             `json:"target"`
	Weight      float64               `json:"weight"`
	CI          vo.ConfidenceInterval `json:"ci"`
	Grade       vo.EvidenceGrade      `json:"evidence_grade"`
	Domain      vo.Domain             `json:"domain"`
	Description string                `json:"description,omitempty"`
}

// NodeDetail is a node with the edges around it
type NodeDetail struct {
	Node     NodeView   `json:"node"`
	Incoming []EdgeView `json:"incoming"`
	Outgoing []EdgeView `json:"outgoing"`
}

// GraphOverview summarizes the active model
type GraphOverview struct {
	Model string `json:"model"`
	aggregates.GraphSummary
	OrderViolations []string `json:"order_violations"`
}

// NodeFilter narrows node listings. Empty fields match everything.
type NodeFilter struct {
	Type   vo.NodeType
	Domain vo.Domain
}

// EdgeFilter narrows edge listings. Empty fields match everything.
type EdgeFilter struct {
	Domain vo.Domain
	Source vo.NodeID
	Target vo.NodeID
}

// GraphQueryService answers read-only questions about the active model
type GraphQueryService struct {
	models ports.ModelProvider
}

// NewGraphQueryService creates the query service
func NewGraphQueryService(models ports.ModelProvider) *GraphQueryService {
	return &GraphQueryService{models: models}
}

// Overview returns counts, acyclicity and order violations
func (q *GraphQueryService) Overview() GraphOverview {
	model := q.models.Engine().Model()
	violations := model.OrderViolations()
	ids := make([]string, len(violations))
	for i, e := range violations {
		ids[i] = e.ID()
	}
	return GraphOverview{
		Model:           model.Name(),
		GraphSummary:    model.Graph().Summary(),
		OrderViolations: ids,
	}
}

// Nodes lists the nodes matching the filter in declaration order
func (q *GraphQueryService) Nodes(f NodeFilter) []NodeView {
	model := q.models.Engine().Model()
	out := []NodeView{}
	for _, n := range model.Graph().AllNodes() {
		if f.Type != "" && n.Type() != f.Type {
			continue
		}
		if f.Domain != "" && n.Domain() != f.Domain {
			continue
		}
		out = append(out, nodeView(model, n))
	}
	return out
}

// Node returns a node and its incident edges
func (q *GraphQueryService) Node(id vo.NodeID) (*NodeDetail, error) {
	model := q.models.Engine().Model()
	n, ok := model.Graph().NodeByID(id)
	if !ok {
		return nil, pkgerrors.NewNotFoundError("node " + id.String())
	}
	return &NodeDetail{
		Node:     nodeView(model, n),
		Incoming: edgeViews(model.Graph().EdgesInto(id)),
		Outgoing: edgeViews(model.Graph().EdgesOutOf(id)),
	}, nil
}

// Edges lists the edges matching the filter in declaration order and
// returns the total before paging
func (q *GraphQueryService) Edges(f EdgeFilter, offset, limit int) ([]EdgeView, int) {
	matched := []EdgeView{}
	for _, e := range q.models.Engine().Model().Graph().AllEdges() {
		if f.Domain != "" && e.Domain() != f.Domain {
			continue
		}
		if f.Source != "" && e.Source() != f.Source {
			continue
		}
		if f.Target != "" && e.Target() != f.Target {
			continue
		}
		matched = append(matched, edgeView(e))
	}
	total := len(matched)
	if offset >= total {
		return []EdgeView{}, total
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}
	return matched[offset:end], total
}

func nodeView(model *aggregates.Model, n *entities.Node) NodeView {
	v := NodeView{
		ID:          n.ID(),
		Label:       n.Label(),
		Domain:      n.Domain(),
		Type:        n.Type(),
		Unit:        n.Unit(),
		Description: n.Description(),
	}
	if r, ok := n.NormalRange(); ok {
		v.NormalRange = &r
	}
	if st, ok := model.Statistic(n.ID()); ok {
		v.Statistic = &st
	}
	if b0, ok := model.Intercept(n.ID()); ok {
		v.Intercept = &b0
	}
	return v
}

func edgeView(e *entities.Edge) EdgeView {
	return EdgeView{
		ID:          e.ID(),
		Source:      e.Source(),
		Target:      e.Target(),
		Weight:      e.Weight(),
		CI:          e.CI(),
		Grade:       e.Grade(),
		Domain:      e.Domain(),
		Description: e.Description(),
	}
}

func edgeViews(edges []*entities.Edge) []EdgeView {
	out := make([]EdgeView, len(edges))
	for i, e := range edges {
		out[i] = edgeView(e)
	}
	return out
}
