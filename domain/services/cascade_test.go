package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anirach/ncd-health-plus/domain/config"
	vo "github.com/Anirach/ncd-health-plus/domain/core/valueobjects"
	"github.com/Anirach/ncd-health-plus/domain/reference"
)

func TestCascade_StatinOnModeratePatient(t *testing.T) {
	engine := NewCascadeEngine(reference.DefaultModel(), nil)
	base := demoPatient(t, reference.DemoModerateID)

	res := engine.Simulate(base, Interventions{vo.Statin: 1})

	assert.Equal(t, Interventions{vo.Statin: 1}, res.Applied)
	assert.Equal(t, 1.0, res.Deltas[vo.Statin])

	// one hop: -0.35 x 1 x 0.7 x std(ldl)=35
	require.Contains(t, res.Deltas, vo.LDL)
	assert.InDelta(t, -12.25, res.Deltas[vo.LDL]/0.7, 1e-9)
	assert.InDelta(t, base.Value(vo.LDL)-8.575, res.Profile.Value(vo.LDL), 1e-9)

	assert.Less(t, res.Risks.CAD, res.BaseRisks.CAD)
	assert.Less(t, res.Risks.NCDComposite, res.BaseRisks.NCDComposite)
	assert.Equal(t, 162.0, base.Value(vo.LDL), "base profile is untouched")
	assert.Equal(t, 1.0, res.Profile.Value(vo.Statin))

	for _, id := range []string{"e83", "e84", "e85", "e86", "e87"} {
		assert.Contains(t, res.ActivatedEdges, id)
	}
	seen := map[string]bool{}
	for _, id := range res.ActivatedEdges {
		assert.False(t, seen[id], "duplicate edge %s", id)
		seen[id] = true
	}
	assert.True(t, res.HasChanges())
}

func TestCascade_NoOpIntervention(t *testing.T) {
	engine := NewCascadeEngine(reference.DefaultModel(), nil)
	base := demoPatient(t, reference.DemoModerateID)

	tests := []struct {
		name string
		iv   Interventions
	}{
		{"empty", Interventions{}},
		{"nil", nil},
		{"same value", Interventions{vo.LDL: base.Value(vo.LDL)}},
		{"within epsilon", Interventions{vo.SBP: base.Value(vo.SBP) + 0.0005}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := engine.Simulate(base, tt.iv)
			assert.Empty(t, res.Applied)
			assert.Empty(t, res.Deltas)
			assert.Empty(t, res.ActivatedEdges)
			assert.Equal(t, res.BaseRisks, res.Risks)
			assert.False(t, res.HasChanges())
		})
	}
}

func TestCascade_Idempotent(t *testing.T) {
	engine := NewCascadeEngine(reference.DefaultModel(), nil)
	base := demoPatient(t, reference.DemoHighID)
	iv := Interventions{vo.Statin: 1, vo.HTNMed: 1, vo.Exercise: 5, vo.Smoking: 0}

	first := engine.Simulate(base, iv)
	second := engine.Simulate(base, iv)
	assert.Equal(t, first, second)
}

func TestCascade_HopCap(t *testing.T) {
	engine := NewCascadeEngine(chainModel(t), rawConfig())
	base := vo.NewPatientProfile("p", "", map[vo.NodeID]float64{
		vo.Statin: 0, vo.LDL: 160, vo.TC: 240, vo.TG: 200, vo.HDL: 40,
	})

	res := engine.Simulate(base, Interventions{vo.Statin: 1})

	assert.InDelta(t, -0.3*0.7, res.Deltas[vo.LDL], 1e-12)
	assert.InDelta(t, 0.5*(-0.21)*0.49, res.Deltas[vo.TC], 1e-12)
	assert.InDelta(t, 0.5*(-0.05145)*0.343, res.Deltas[vo.TG], 1e-12)

	// hdl is four hops from statin
	assert.NotContains(t, res.Deltas, vo.HDL)
	assert.Equal(t, 40.0, res.Profile.Value(vo.HDL))
	assert.NotContains(t, res.ActivatedEdges, "c4")
	assert.NotContains(t, res.ActivatedEdges, "c5")
	assert.Equal(t, []string{"c1", "c2", "c3", "c6"}, res.ActivatedEdges)
}

func TestCascade_MaxHopsConfigurable(t *testing.T) {
	cfg := rawConfig()
	cfg.MaxHops = 1
	engine := NewCascadeEngine(chainModel(t), cfg)
	base := vo.NewPatientProfile("p", "", map[vo.NodeID]float64{vo.LDL: 160, vo.TC: 240})

	res := engine.Simulate(base, Interventions{vo.Statin: 1})
	assert.Contains(t, res.Deltas, vo.LDL)
	assert.NotContains(t, res.Deltas, vo.TC)
}

func TestCascade_SinglePassOrder(t *testing.T) {
	// tc is processed before its parent ldl, so it never sees ldl's change
	m := chainModel(t, vo.Statin, vo.TC, vo.LDL, vo.TG, vo.HDL, vo.CAD)
	require.NotEmpty(t, m.OrderViolations())
	engine := NewCascadeEngine(m, rawConfig())

	res := engine.Simulate(vo.NewPatientProfile("", "", map[vo.NodeID]float64{vo.LDL: 160}), Interventions{vo.Statin: 1})
	assert.Contains(t, res.Deltas, vo.LDL)
	assert.NotContains(t, res.Deltas, vo.TC)
	assert.NotContains(t, res.Deltas, vo.TG)
}

func TestCascade_DeltaScaling(t *testing.T) {
	base := demoPatient(t, reference.DemoModerateID)
	iv := Interventions{vo.Statin: 1}

	scaled := NewCascadeEngine(reference.DefaultModel(), config.DefaultEngineConfig()).Simulate(base, iv)
	raw := NewCascadeEngine(reference.DefaultModel(), rawConfig()).Simulate(base, iv)

	assert.InDelta(t, -0.245, raw.Deltas[vo.LDL], 1e-12)
	assert.InDelta(t, raw.Deltas[vo.LDL]*35, scaled.Deltas[vo.LDL], 1e-9)
}

func TestCascade_DirectInterventionWins(t *testing.T) {
	engine := NewCascadeEngine(reference.DefaultModel(), nil)
	base := demoPatient(t, reference.DemoModerateID)

	res := engine.Simulate(base, Interventions{vo.Statin: 1, vo.LDL: 100})
	assert.Equal(t, 100.0, res.Profile.Value(vo.LDL))
	assert.InDelta(t, 100-162.0, res.Deltas[vo.LDL], 1e-12)
}

func TestCascade_NoOpInterventionStaysPinned(t *testing.T) {
	engine := NewCascadeEngine(reference.DefaultModel(), nil)
	base := demoPatient(t, reference.DemoModerateID)

	res := engine.Simulate(base, Interventions{vo.Statin: 1, vo.LDL: base.Value(vo.LDL)})

	assert.Equal(t, Interventions{vo.Statin: 1}, res.Applied, "no-ops are not reported as applied")
	assert.NotContains(t, res.Deltas, vo.LDL)
	assert.Equal(t, 162.0, res.Profile.Value(vo.LDL), "statin must not move a pinned ldl")
	assert.Contains(t, res.ActivatedEdges, "e83")
}
