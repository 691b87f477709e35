package services

import (
	"math"
	"sort"

	"github.com/Anirach/ncd-health-plus/domain/config"
	"github.com/Anirach/ncd-health-plus/domain/core/aggregates"
	vo "github.com/Anirach/ncd-health-plus/domain/core/valueobjects"
)

// Interventions maps a node to the value it is directly set to
type Interventions map[vo.NodeID]float64

// Keys returns the intervened nodes in a stable order
func (iv Interventions) Keys() []vo.NodeID {
	keys := make([]vo.NodeID, 0, len(iv))
	for k := range iv {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// CascadeResult is the outcome of a what-if simulation
type CascadeResult struct {
	// Profile is the counterfactual profile after interventions and cascade
	Profile vo.PatientProfile `json:"intervention_profile"`

	// Applied holds the interventions that changed a value; no-ops are dropped
	Applied Interventions `json:"applied_interventions"`

	// Deltas records how much each node moved, direct and cascaded
	Deltas map[vo.NodeID]float64 `json:"deltas"`

	// ActivatedEdges lists edge ids in first-activation order
	ActivatedEdges []string `json:"activated_edges"`

	Risks     vo.RiskResult `json:"risks"`
	BaseRisks vo.RiskResult `json:"base_risks"`
}

// HasChanges reports whether any intervention took effect
func (r CascadeResult) HasChanges() bool {
	return len(r.Applied) > 0
}

// CascadeEngine propagates direct interventions through the graph in a
// single pass over the model's fixed order, attenuating by gamma per hop.
// Nodes processed before one of their parents do not see that parent's
// delta; the pass is not iterated to a fixed point.
type CascadeEngine struct {
	model        *aggregates.Model
	cfg          *config.EngineConfig
	scorer       *RiskScorer
	standardizer *Standardizer
}

// NewCascadeEngine creates a cascade engine for the model
func NewCascadeEngine(model *aggregates.Model, cfg *config.EngineConfig) *CascadeEngine {
	if cfg == nil {
		cfg = config.DefaultEngineConfig()
	}
	return &CascadeEngine{
		model:        model,
		cfg:          cfg,
		scorer:       NewRiskScorer(model, cfg),
		standardizer: NewStandardizer(model),
	}
}

// Simulate applies interventions to the base profile and returns the
// counterfactual profile, deltas, activated edges and recomputed risks.
// The base profile is not modified.
func (c *CascadeEngine) Simulate(base vo.PatientProfile, interventions Interventions) CascadeResult {
	eps := c.cfg.Epsilon
	graph := c.model.Graph()
	derived := DeriveConditions(base)
	order := c.model.Order()

	x := make(map[vo.NodeID]float64, len(order))
	for _, id := range order {
		x[id] = derived.Value(id)
	}
	current := func(id vo.NodeID) float64 {
		if v, ok := x[id]; ok {
			return v
		}
		return derived.Value(id)
	}

	deltas := make(map[vo.NodeID]float64)
	applied := make(Interventions)
	// every intervened node is pinned, including no-ops
	pinned := make(map[vo.NodeID]struct{}, len(interventions))
	for _, id := range interventions.Keys() {
		pinned[id] = struct{}{}
		v := interventions[id]
		old := current(id)
		if math.Abs(v-old) <= eps {
			continue
		}
		x[id] = v
		deltas[id] = v - old
		applied[id] = v
	}

	sources := applied.Keys()
	hops := graph.HopDistances(sources, c.cfg.MaxHops)
	activated := newEdgeSet()

	for _, id := range order {
		if _, fixed := pinned[id]; fixed {
			continue
		}
		total := 0.0
		for _, e := range graph.EdgesInto(id) {
			parentDelta := current(e.Source()) - derived.Value(e.Source())
			if math.Abs(parentDelta) <= eps {
				continue
			}
			hop := c.cfg.MaxHops + 1
			if d, ok := hops[e.Source()]; ok {
				hop = d + 1
			}
			if hop > c.cfg.MaxHops {
				continue
			}
			contribution := e.Weight() * parentDelta * math.Pow(c.cfg.Gamma, float64(hop)) * c.scale(id)
			total += contribution
			if math.Abs(contribution) > eps {
				activated.add(e.ID())
			}
		}
		if math.Abs(total) > eps {
			x[id] = derived.Value(id) + total
			deltas[id] = total
		}
	}

	overrides := make(map[vo.NodeID]float64, len(deltas))
	for id, d := range deltas {
		if v, direct := applied[id]; direct {
			overrides[id] = v
			continue
		}
		overrides[id] = derived.Value(id) + d
	}
	counterfactual := base.With(overrides)

	for _, id := range sources {
		for _, e := range graph.EdgesOutOf(id) {
			activated.add(e.ID())
		}
	}

	return CascadeResult{
		Profile:        counterfactual,
		Applied:        applied,
		Deltas:         deltas,
		ActivatedEdges: activated.list(),
		Risks:          c.scorer.AllRisks(counterfactual),
		BaseRisks:      c.scorer.AllRisks(base),
	}
}

func (c *CascadeEngine) scale(target vo.NodeID) float64 {
	if c.cfg.DeltaScaling == config.DeltaScalingRaw {
		return 1
	}
	return c.standardizer.Scale(target)
}

type edgeSet struct {
	seen  map[string]struct{}
	order []string
}

func newEdgeSet() *edgeSet {
	return &edgeSet{seen: make(map[string]struct{})}
}

func (s *edgeSet) add(id string) {
	if _, ok := s.seen[id]; ok {
		return
	}
	s.seen[id] = struct{}{}
	s.order = append(s.order, id)
}

func (s *edgeSet) list() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
