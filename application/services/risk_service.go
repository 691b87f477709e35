package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/Anirach/ncd-health-plus/application/ports"
	vo "github.com/Anirach/ncd-health-plus/domain/core/valueobjects"
	"github.com/Anirach/ncd-health-plus/domain/events"
	"github.com/Anirach/ncd-health-plus/domain/reference"
	"github.com/Anirach/ncd-health-plus/domain/services"
	pkgerrors "github.com/Anirach/ncd-health-plus/pkg/errors"
	"github.com/Anirach/ncd-health-plus/pkg/observability"
	"github.com/Anirach/ncd-health-plus/pkg/utils"
)

// Simulation kinds, used as metric labels
const (
	SimulationDirect   = "direct"
	SimulationPlan     = "plan"
	SimulationCombined = "combined"
)

// Assessment is a scored profile
type Assessment struct {
	ID        string             `json:"assessment_id"`
	PatientID string             `json:"patient_id"`
	Model     string             `json:"model"`
	Risks     vo.RiskResult      `json:"risks"`
	Bands     *vo.FullRiskResult `json:"risks_with_ci,omitempty"`
	Level     vo.RiskLevel       `json:"level"`
	Color     string             `json:"color"`
}

// Simulation is a what-if cascade run
type Simulation struct {
	ID        string                 `json:"simulation_id"`
	PatientID string                 `json:"patient_id"`
	Model     string                 `json:"model"`
	Result    services.CascadeResult `json:"result"`
}

// RiskService coordinates the engine with tracing, metrics and events.
// It is safe for concurrent use.
type RiskService struct {
	models    ports.ModelProvider
	publisher ports.EventPublisher
	metrics   ports.MetricsRecorder
	tracer    *observability.Tracer
	logger    *zap.Logger
	now       func() time.Time
}

// NewRiskService creates the service. Nil collaborators other than models
// are replaced with no-op implementations.
func NewRiskService(
	models ports.ModelProvider,
	publisher ports.EventPublisher,
	metrics ports.MetricsRecorder,
	tracer *observability.Tracer,
	logger *zap.Logger,
) *RiskService {
	if publisher == nil {
		publisher = nopPublisher{}
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if tracer == nil {
		tracer = observability.NewNoopTracer()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RiskService{
		models:    models,
		publisher: publisher,
		metrics:   metrics,
		tracer:    tracer,
		logger:    logger.Named("risk"),
		now:       utils.NowUTC,
	}
}

// AssessRisk scores the profile, with confidence bands when withCI is set
func (s *RiskService) AssessRisk(ctx context.Context, profile vo.PatientProfile, withCI bool) (*Assessment, error) {
	start := time.Now()
	profile = ensureID(profile)
	engine := s.models.Engine()
	model := engine.Model().Name()

	ctx, span := s.tracer.StartSpan(ctx, "risk.assess",
		attribute.String("patient.id", profile.ID()),
		attribute.Bool("with_ci", withCI),
		attribute.String("model", model),
	)
	defer span.End()

	a := &Assessment{ID: uuid.NewString(), PatientID: profile.ID(), Model: model}
	var err error
	if withCI {
		var bands vo.FullRiskResult
		bands, err = engine.AssessRiskWithCI(profile)
		if err == nil {
			a.Bands = &bands
			a.Risks = bands.Point()
		}
	} else {
		a.Risks, err = engine.AssessRisk(profile)
	}
	if err != nil {
		s.fail(span, err)
		s.metrics.RecordAssessment(withCI, "", time.Since(start), err)
		return nil, err
	}

	a.Level = vo.ClassifyRisk(a.Risks.NCDComposite)
	a.Color = a.Level.Color()
	span.SetAttributes(attribute.Float64("risk.ncd", a.Risks.NCDComposite))
	s.metrics.RecordAssessment(withCI, string(a.Level), time.Since(start), nil)

	s.logger.Debug("Risk assessed",
		zap.String("assessment_id", a.ID),
		zap.String("patient_id", a.PatientID),
		zap.Float64("ncd", a.Risks.NCDComposite),
		zap.String("level", string(a.Level)),
	)
	s.publish(ctx, events.NewRiskAssessed(a.ID, a.PatientID, model, a.Risks, withCI, s.now()))
	return a, nil
}

// Simulate runs the cascade for explicit node interventions
func (s *RiskService) Simulate(ctx context.Context, profile vo.PatientProfile, iv services.Interventions) (*Simulation, error) {
	return s.simulate(ctx, SimulationDirect, profile, iv)
}

// SimulatePlan validates and translates a plan, then runs the cascade
func (s *RiskService) SimulatePlan(ctx context.Context, profile vo.PatientProfile, plan services.InterventionPlan) (*Simulation, error) {
	if err := utils.ValidateStruct(plan); err != nil {
		return nil, err
	}
	return s.simulate(ctx, SimulationPlan, profile, plan.Interventions(profile))
}

// SimulateCombined applies a plan and then explicit interventions, which win
// on conflicting nodes
func (s *RiskService) SimulateCombined(ctx context.Context, profile vo.PatientProfile, plan services.InterventionPlan, iv services.Interventions) (*Simulation, error) {
	if err := utils.ValidateStruct(plan); err != nil {
		return nil, err
	}
	merged := plan.Interventions(profile)
	for id, v := range iv {
		merged[id] = v
	}
	return s.simulate(ctx, SimulationCombined, profile, merged)
}

func (s *RiskService) simulate(ctx context.Context, kind string, profile vo.PatientProfile, iv services.Interventions) (*Simulation, error) {
	start := time.Now()
	profile = ensureID(profile)
	engine := s.models.Engine()
	model := engine.Model().Name()

	ctx, span := s.tracer.StartSpan(ctx, "risk.simulate",
		attribute.String("patient.id", profile.ID()),
		attribute.String("kind", kind),
		attribute.Int("interventions", len(iv)),
	)
	defer span.End()

	result, err := engine.Simulate(profile, iv)
	if err != nil {
		s.fail(span, err)
		s.metrics.RecordSimulation(kind, 0, time.Since(start), err)
		return nil, err
	}

	sim := &Simulation{ID: uuid.NewString(), PatientID: profile.ID(), Model: model, Result: result}
	span.SetAttributes(
		attribute.Int("edges.activated", len(result.ActivatedEdges)),
		attribute.Float64("risk.ncd", result.Risks.NCDComposite),
	)
	s.metrics.RecordSimulation(kind, len(result.ActivatedEdges), time.Since(start), nil)

	s.logger.Debug("Intervention simulated",
		zap.String("simulation_id", sim.ID),
		zap.String("kind", kind),
		zap.Int("applied", len(result.Applied)),
		zap.Int("activated_edges", len(result.ActivatedEdges)),
	)
	s.publish(ctx, events.NewInterventionSimulated(
		sim.ID, sim.PatientID, model, result.Applied.Keys(), len(result.ActivatedEdges),
		result.BaseRisks.NCDComposite, result.Risks.NCDComposite, s.now(),
	))
	return sim, nil
}

// AnalyzeProgress reports risk trends for a visit history
func (s *RiskService) AnalyzeProgress(ctx context.Context, visits []services.LabVisit) (*services.ProgressReport, error) {
	if len(visits) == 0 {
		return nil, pkgerrors.NewValidationError("at least one visit is required")
	}
	ctx, span := s.tracer.StartSpan(ctx, "risk.progress", attribute.Int("visits", len(visits)))
	defer span.End()

	report, err := s.models.Engine().AnalyzeProgress(visits)
	if err != nil {
		s.fail(span, err)
		return nil, err
	}
	s.publish(ctx, events.NewProgressAnalyzed(uuid.NewString(), len(visits), len(report.Milestones), s.now()))
	return &report, nil
}

// DemoPatients returns the bundled demonstration profiles
func (s *RiskService) DemoPatients() []vo.PatientProfile {
	return reference.DemoPatients()
}

// DemoPatient returns one demonstration profile
func (s *RiskService) DemoPatient(id string) (vo.PatientProfile, error) {
	p, ok := reference.DemoPatient(id)
	if !ok {
		return vo.PatientProfile{}, pkgerrors.ErrUnknownPatient.WithDetail("patient_id", id)
	}
	return p, nil
}

func (s *RiskService) publish(ctx context.Context, event events.DomainEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish event",
			zap.String("event_type", event.GetEventType()),
			zap.String("aggregate_id", event.GetAggregateID()),
			zap.Error(err),
		)
	}
}

func (s *RiskService) fail(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func ensureID(p vo.PatientProfile) vo.PatientProfile {
	if p.ID() != "" {
		return p
	}
	return p.WithID(uuid.NewString())
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, events.DomainEvent) error        { return nil }
func (nopPublisher) PublishBatch(context.Context, []events.DomainEvent) error { return nil }

type nopMetrics struct{}

func (nopMetrics) RecordAssessment(bool, string, time.Duration, error)  {}
func (nopMetrics) RecordSimulation(string, int, time.Duration, error) {}
