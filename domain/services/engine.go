package services

import (
	"fmt"

	"github.com/Anirach/ncd-health-plus/domain/config"
	"github.com/Anirach/ncd-health-plus/domain/core/aggregates"
	vo "github.com/Anirach/ncd-health-plus/domain/core/valueobjects"
	pkgerrors "github.com/Anirach/ncd-health-plus/pkg/errors"
)

// Engine is the entry point of the risk engine. It rejects malformed node ids
// and delegates to the scorer, cascade and progress analyzer. Well-typed
// factors the model lacks are neutral.
// An Engine is immutable and safe for concurrent use.
type Engine struct {
	model    *aggregates.Model
	cfg      *config.EngineConfig
	scorer   *RiskScorer
	cascade  *CascadeEngine
	progress *ProgressAnalyzer
}

// NewEngine creates an engine. A nil config selects the defaults.
func NewEngine(model *aggregates.Model, cfg *config.EngineConfig) (*Engine, error) {
	if model == nil {
		return nil, pkgerrors.NewValidationError("engine requires a model")
	}
	if cfg == nil {
		cfg = config.DefaultEngineConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, pkgerrors.NewValidationError(err.Error())
	}
	scorer := NewRiskScorer(model, cfg)
	return &Engine{
		model:    model,
		cfg:      cfg,
		scorer:   scorer,
		cascade:  NewCascadeEngine(model, cfg),
		progress: NewProgressAnalyzer(scorer),
	}, nil
}

func (e *Engine) Model() *aggregates.Model    { return e.model }
func (e *Engine) Config() config.EngineConfig { return *e.cfg }

// AssessRisk scores every endpoint for the profile. Profile factors the
// model does not contain are ignored.
func (e *Engine) AssessRisk(p vo.PatientProfile) (vo.RiskResult, error) {
	if err := checkKnown(p.Keys()); err != nil {
		return vo.RiskResult{}, err
	}
	return e.scorer.AllRisks(p), nil
}

// AssessRiskWithCI scores every endpoint with confidence bands
func (e *Engine) AssessRiskWithCI(p vo.PatientProfile) (vo.FullRiskResult, error) {
	if err := checkKnown(p.Keys()); err != nil {
		return vo.FullRiskResult{}, err
	}
	return e.scorer.AllRisksWithCI(p), nil
}

// Simulate runs a what-if cascade for explicit node interventions.
// Interventions on nodes outside the model are dropped.
func (e *Engine) Simulate(p vo.PatientProfile, iv Interventions) (CascadeResult, error) {
	if err := checkKnown(p.Keys()); err != nil {
		return CascadeResult{}, err
	}
	if err := checkKnown(iv.Keys()); err != nil {
		return CascadeResult{}, err
	}
	inModel := make(Interventions, len(iv))
	for id, v := range iv {
		if e.model.Graph().HasNode(id) {
			inModel[id] = v
		}
	}
	return e.cascade.Simulate(p, inModel), nil
}

// SimulatePlan translates a user-level plan and runs the cascade
func (e *Engine) SimulatePlan(p vo.PatientProfile, plan InterventionPlan) (CascadeResult, error) {
	return e.Simulate(p, plan.Interventions(p))
}

// AnalyzeProgress reports risk trends across visits
func (e *Engine) AnalyzeProgress(visits []LabVisit) (ProgressReport, error) {
	for i, v := range visits {
		if err := checkKnown(v.Profile.Keys()); err != nil {
			return ProgressReport{}, fmt.Errorf("visit %d: %w", i, err)
		}
	}
	return e.progress.Analyze(visits)
}

// checkKnown rejects identifiers outside the closed node set. Such ids can
// only come from code that bypasses ParseNodeID.
func checkKnown(ids []vo.NodeID) error {
	for _, id := range ids {
		if !id.IsKnown() {
			return pkgerrors.ErrUnknownNode.WithDetail("node", id.String())
		}
	}
	return nil
}
