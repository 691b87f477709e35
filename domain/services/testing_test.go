package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Anirach/ncd-health-plus/domain/config"
	"github.com/Anirach/ncd-health-plus/domain/core/aggregates"
	"github.com/Anirach/ncd-health-plus/domain/core/entities"
	vo "github.com/Anirach/ncd-health-plus/domain/core/valueobjects"
	"github.com/Anirach/ncd-health-plus/domain/reference"
)

func demoPatient(t *testing.T, id string) vo.PatientProfile {
	t.Helper()
	p, ok := reference.DemoPatient(id)
	require.True(t, ok, id)
	return p
}

func rawConfig() *config.EngineConfig {
	cfg := config.DefaultEngineConfig()
	cfg.DeltaScaling = config.DeltaScalingRaw
	return cfg
}

// chainModel is statin -> ldl -> tc -> tg -> hdl, plus ldl -> cad and hdl -> cad,
// processed in the given order
func chainModel(t *testing.T, order ...vo.NodeID) *aggregates.Model {
	t.Helper()
	mk := func(id vo.NodeID, typ vo.NodeType) *entities.Node {
		return entities.MustNode(entities.NodeSpec{ID: id, Label: id.String(), Domain: vo.DomainCVD, Type: typ})
	}
	ed := func(id string, from, to vo.NodeID, w float64) *entities.Edge {
		return entities.MustEdge(entities.EdgeSpec{
			ID: id, Source: from, Target: to, Weight: w,
			CI:    vo.ConfidenceInterval{Low: w - 0.05, High: w + 0.05},
			Grade: vo.GradeB, Domain: vo.DomainCVD,
		})
	}
	g, err := aggregates.NewKnowledgeGraph(
		[]*entities.Node{
			mk(vo.Statin, vo.TypeMedication),
			mk(vo.LDL, vo.TypeBiomarker),
			mk(vo.TC, vo.TypeBiomarker),
			mk(vo.TG, vo.TypeBiomarker),
			mk(vo.HDL, vo.TypeBiomarker),
			mk(vo.CAD, vo.TypeDisease),
		},
		[]*entities.Edge{
			ed("c1", vo.Statin, vo.LDL, -0.3),
			ed("c2", vo.LDL, vo.TC, 0.5),
			ed("c3", vo.TC, vo.TG, 0.5),
			ed("c4", vo.TG, vo.HDL, -0.5),
			ed("c5", vo.HDL, vo.CAD, -0.2),
			ed("c6", vo.LDL, vo.CAD, 0.3),
		},
	)
	require.NoError(t, err)
	if len(order) == 0 {
		order = []vo.NodeID{vo.Statin, vo.LDL, vo.TC, vo.TG, vo.HDL, vo.CAD}
	}
	m, err := aggregates.NewModel(aggregates.ModelSpec{
		Name:  "chain",
		Graph: g,
		Stats: map[vo.NodeID]vo.ReferenceStatistic{
			vo.Statin: {Mean: 0.2, Std: 0.4},
			vo.LDL:    {Mean: 130, Std: 35},
			vo.TC:     {Mean: 210, Std: 40},
			vo.TG:     {Mean: 150, Std: 70},
			vo.HDL:    {Mean: 50, Std: 14},
		},
		Intercepts: map[vo.NodeID]float64{vo.CAD: -2.5},
		Order:      order,
	})
	require.NoError(t, err)
	return m
}

// subgraphWithout is the reference model with the given nodes and their
// edges removed
func subgraphWithout(t *testing.T, drop ...vo.NodeID) *aggregates.Model {
	t.Helper()
	dropped := make(map[vo.NodeID]bool, len(drop))
	for _, id := range drop {
		dropped[id] = true
	}

	var nodes []*entities.Node
	for _, n := range reference.Nodes() {
		if !dropped[n.ID()] {
			nodes = append(nodes, n)
		}
	}
	var edges []*entities.Edge
	for _, e := range reference.Edges() {
		if !dropped[e.Source()] && !dropped[e.Target()] {
			edges = append(edges, e)
		}
	}
	g, err := aggregates.NewKnowledgeGraph(nodes, edges)
	require.NoError(t, err)

	stats := reference.Statistics()
	intercepts := reference.Intercepts()
	var order []vo.NodeID
	for _, id := range reference.Order() {
		if !dropped[id] {
			order = append(order, id)
		}
	}
	for _, id := range drop {
		delete(stats, id)
		delete(intercepts, id)
	}

	m, err := aggregates.NewModel(aggregates.ModelSpec{
		Name: "subgraph", Graph: g, Stats: stats, Intercepts: intercepts, Order: order,
	})
	require.NoError(t, err)
	return m
}
