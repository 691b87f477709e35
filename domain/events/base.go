package events

import (
	"time"

	vo "github.com/Anirach/ncd-health-plus/domain/core/valueobjects"
)

// Event type names, also used as EventBridge detail types
const (
	TypeRiskAssessed          = "risk.assessed"
	TypeInterventionSimulated = "intervention.simulated"
	TypeProgressAnalyzed      = "progress.analyzed"
	TypeModelReloaded         = "model.reloaded"
)

// DomainEvent is something that has happened in the engine.
// Events never carry raw patient measurements.
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
	GetVersion() int
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
	Version     int       `json:"version"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }
func (e BaseEvent) GetVersion() int         { return e.Version }

func newBase(id, eventType string, at time.Time) BaseEvent {
	return BaseEvent{AggregateID: id, EventType: eventType, Timestamp: at, Version: 1}
}

// RiskAssessed is raised after a profile is scored
type RiskAssessed struct {
	BaseEvent
	PatientID string       `json:"patient_id,omitempty"`
	Model     string       `json:"model"`
	CVD       float64      `json:"cvd_composite"`
	NCD       float64      `json:"ncd_composite"`
	Level     vo.RiskLevel `json:"level"`
	WithCI    bool         `json:"with_ci"`
}

// NewRiskAssessed creates a RiskAssessed event
func NewRiskAssessed(assessmentID, patientID, model string, risks vo.RiskResult, withCI bool, at time.Time) RiskAssessed {
	return RiskAssessed{
		BaseEvent: newBase(assessmentID, TypeRiskAssessed, at),
		PatientID: patientID,
		Model:     model,
		CVD:       risks.CVDComposite,
		NCD:       risks.NCDComposite,
		Level:     vo.ClassifyRisk(risks.NCDComposite),
		WithCI:    withCI,
	}
}

// InterventionSimulated is raised after a what-if cascade
type InterventionSimulated struct {
	BaseEvent
	PatientID      string      `json:"patient_id,omitempty"`
	Model          string      `json:"model"`
	Interventions  []vo.NodeID `json:"interventions"`
	ActivatedEdges int         `json:"activated_edges"`
	BaseNCD        float64     `json:"base_ncd"`
	NCD            float64     `json:"ncd"`
}

// NewInterventionSimulated creates an InterventionSimulated event
func NewInterventionSimulated(simulationID, patientID, model string, interventions []vo.NodeID, activated int, baseNCD, ncd float64, at time.Time) InterventionSimulated {
	return InterventionSimulated{
		BaseEvent:      newBase(simulationID, TypeInterventionSimulated, at),
		PatientID:      patientID,
		Model:          model,
		Interventions:  interventions,
		ActivatedEdges: activated,
		BaseNCD:        baseNCD,
		NCD:            ncd,
	}
}

// ProgressAnalyzed is raised after a visit history is analyzed
type ProgressAnalyzed struct {
	BaseEvent
	Visits     int `json:"visits"`
	Milestones int `json:"milestones"`
}

// NewProgressAnalyzed creates a ProgressAnalyzed event
func NewProgressAnalyzed(reportID string, visits, milestones int, at time.Time) ProgressAnalyzed {
	return ProgressAnalyzed{
		BaseEvent:  newBase(reportID, TypeProgressAnalyzed, at),
		Visits:     visits,
		Milestones: milestones,
	}
}

// ModelReloaded is raised when a new model replaces the active one
type ModelReloaded struct {
	BaseEvent
	Source string `json:"source"`
	Nodes  int    `json:"nodes"`
	Edges  int    `json:"edges"`
}

// NewModelReloaded creates a ModelReloaded event
func NewModelReloaded(model, source string, nodes, edges int, at time.Time) ModelReloaded {
	return ModelReloaded{
		BaseEvent: newBase(model, TypeModelReloaded, at),
		Source:    source,
		Nodes:     nodes,
		Edges:     edges,
	}
}
