package ports

import (
	"context"
	"time"

	"github.com/Anirach/ncd-health-plus/domain/events"
	"github.com/Anirach/ncd-health-plus/domain/services"
)

// EventPublisher sends domain events to an external bus
type EventPublisher interface {
	// Publish sends a single event
	Publish(ctx context.Context, event events.DomainEvent) error

	// PublishBatch sends multiple events
	PublishBatch(ctx context.Context, events []events.DomainEvent) error
}

// ModelProvider hands out the engine for the active model. Callers take one
// engine per request; a reload swaps the engine but never mutates one.
type ModelProvider interface {
	Engine() *services.Engine
}

// MetricsRecorder records engine activity
type MetricsRecorder interface {
	RecordAssessment(withCI bool, level string, d time.Duration, err error)
	RecordSimulation(kind string, activatedEdges int, d time.Duration, err error)
}
