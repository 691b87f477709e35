package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anirach/ncd-health-plus/domain/config"
	vo "github.com/Anirach/ncd-health-plus/domain/core/valueobjects"
	"github.com/Anirach/ncd-health-plus/domain/reference"
	pkgerrors "github.com/Anirach/ncd-health-plus/pkg/errors"
)

func TestNewEngine(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		e, err := NewEngine(reference.DefaultModel(), nil)
		require.NoError(t, err)
		assert.Equal(t, *config.DefaultEngineConfig(), e.Config())
		assert.Equal(t, reference.ModelName, e.Model().Name())
	})

	t.Run("nil model", func(t *testing.T) {
		_, err := NewEngine(nil, nil)
		assert.True(t, pkgerrors.IsValidation(err))
	})

	t.Run("invalid config", func(t *testing.T) {
		cfg := config.DefaultEngineConfig()
		cfg.Gamma = 1.5
		_, err := NewEngine(reference.DefaultModel(), cfg)
		assert.True(t, pkgerrors.IsValidation(err))
	})
}

func TestEngine_IgnoresFactorsOutsideModel(t *testing.T) {
	e, err := NewEngine(chainModel(t), nil)
	require.NoError(t, err)
	mixed := vo.NewPatientProfile("", "", map[vo.NodeID]float64{vo.SBP: 140, vo.LDL: 160})
	inModel := vo.NewPatientProfile("", "", map[vo.NodeID]float64{vo.LDL: 160})

	got, err := e.AssessRisk(mixed)
	require.NoError(t, err)
	want, err := e.AssessRisk(inModel)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = e.AssessRiskWithCI(mixed)
	assert.NoError(t, err)

	res, err := e.Simulate(mixed, Interventions{vo.Statin: 1, vo.SBP: 120, vo.BMI: 25})
	require.NoError(t, err)
	assert.Equal(t, Interventions{vo.Statin: 1}, res.Applied)
	assert.Equal(t, 140.0, res.Profile.Value(vo.SBP))

	_, err = e.AnalyzeProgress([]LabVisit{{Date: "2024-01-01", Profile: mixed}})
	assert.NoError(t, err)
}

func TestEngine_ScoresAgainstSubgraph(t *testing.T) {
	m := subgraphWithout(t, vo.Alcohol)
	e, err := NewEngine(m, nil)
	require.NoError(t, err)
	p := demoPatient(t, reference.DemoModerateID)
	require.True(t, p.Has(vo.Alcohol))

	got, err := e.AssessRisk(p)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got.NCDComposite, 0.0)
	assert.LessOrEqual(t, got.NCDComposite, 1.0)

	values := p.Values()
	delete(values, vo.Alcohol)
	want, err := e.AssessRisk(vo.NewPatientProfile(p.ID(), p.Name(), values))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = e.SimulatePlan(p, InterventionPlan{StartStatin: true})
	assert.NoError(t, err)
}

func TestEngine_RejectsMalformedNodeIDs(t *testing.T) {
	e, err := NewEngine(reference.DefaultModel(), nil)
	require.NoError(t, err)
	bogus := vo.NodeID("glucose")
	malformed := vo.NewPatientProfile("", "", map[vo.NodeID]float64{bogus: 100})

	_, err = e.AssessRisk(malformed)
	assert.ErrorIs(t, err, pkgerrors.ErrUnknownNode)
	_, err = e.AssessRiskWithCI(malformed)
	assert.ErrorIs(t, err, pkgerrors.ErrUnknownNode)

	_, err = e.Simulate(demoPatient(t, reference.DemoLowID), Interventions{bogus: 1})
	require.ErrorIs(t, err, pkgerrors.ErrUnknownNode)
	var domErr *pkgerrors.DomainError
	require.True(t, errors.As(err, &domErr))
	assert.Equal(t, "glucose", domErr.Details["node"])

	_, err = e.AnalyzeProgress([]LabVisit{{Date: "2024-01-01", Profile: malformed}})
	assert.ErrorIs(t, err, pkgerrors.ErrUnknownNode)
	assert.Contains(t, err.Error(), "visit 0")
}

func TestEngine_Delegates(t *testing.T) {
	e, err := NewEngine(reference.DefaultModel(), nil)
	require.NoError(t, err)
	p := demoPatient(t, reference.DemoModerateID)

	risks, err := e.AssessRisk(p)
	require.NoError(t, err)
	full, err := e.AssessRiskWithCI(p)
	require.NoError(t, err)
	assert.Equal(t, risks, full.Point())

	direct, err := e.Simulate(p, Interventions{vo.Statin: 1})
	require.NoError(t, err)
	viaPlan, err := e.SimulatePlan(p, InterventionPlan{StartStatin: true})
	require.NoError(t, err)
	assert.Equal(t, direct, viaPlan)
}

func TestEngineConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.EngineConfig)
		wantErr bool
	}{
		{"defaults", func(*config.EngineConfig) {}, false},
		{"gamma one", func(c *config.EngineConfig) { c.Gamma = 1 }, false},
		{"gamma zero", func(c *config.EngineConfig) { c.Gamma = 0 }, true},
		{"no hops", func(c *config.EngineConfig) { c.MaxHops = 0 }, true},
		{"negative epsilon", func(c *config.EngineConfig) { c.Epsilon = -1 }, true},
		{"unknown scaling", func(c *config.EngineConfig) { c.DeltaScaling = "log" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultEngineConfig()
			tt.mutate(cfg)
			if tt.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}
