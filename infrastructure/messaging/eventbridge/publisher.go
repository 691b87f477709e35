package eventbridge

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"go.uber.org/zap"

	"github.com/Anirach/ncd-health-plus/domain/events"
	pkgerrors "github.com/Anirach/ncd-health-plus/pkg/errors"
)

// PutEvents limit per call
const maxBatchSize = 10

// PutEventsAPI is the subset of the EventBridge client used here
type PutEventsAPI interface {
	PutEvents(ctx context.Context, in *eventbridge.PutEventsInput, optFns ...func(*eventbridge.Options)) (*eventbridge.PutEventsOutput, error)
}

// Publisher sends domain events to an EventBridge bus
type Publisher struct {
	client       PutEventsAPI
	eventBusName string
	source       string
	maxRetries   int
	backoff      time.Duration
	logger       *zap.Logger
}

// NewPublisher creates an EventBridge publisher
func NewPublisher(client PutEventsAPI, eventBusName, source string, logger *zap.Logger) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{
		client:       client,
		eventBusName: eventBusName,
		source:       source,
		maxRetries:   3,
		backoff:      100 * time.Millisecond,
		logger:       logger.Named("eventbridge"),
	}
}

// Publish sends a single event
func (p *Publisher) Publish(ctx context.Context, event events.DomainEvent) error {
	return p.PublishBatch(ctx, []events.DomainEvent{event})
}

// PublishBatch sends events in chunks of ten
func (p *Publisher) PublishBatch(ctx context.Context, domainEvents []events.DomainEvent) error {
	for i := 0; i < len(domainEvents); i += maxBatchSize {
		end := min(i+maxBatchSize, len(domainEvents))
		if err := p.publishWithRetry(ctx, domainEvents[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func (p *Publisher) publishWithRetry(ctx context.Context, batch []events.DomainEvent) error {
	pending, err := p.entries(batch)
	if err != nil {
		return pkgerrors.ErrEventPublishFailed.WithCause(err)
	}

	backoff := p.backoff
	for attempt := 1; attempt <= p.maxRetries; attempt++ {
		if pending, err = p.send(ctx, pending); err == nil {
			return nil
		}
		if attempt == p.maxRetries {
			break
		}

		p.logger.Warn("Retrying event publication",
			zap.Int("attempt", attempt),
			zap.Int("pending", len(pending)),
			zap.Duration("backoff", backoff),
			zap.Error(err),
		)
		select {
		case <-time.After(backoff):
			backoff *= 2
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return pkgerrors.ErrEventPublishFailed.WithCause(err)
}

func (p *Publisher) entries(batch []events.DomainEvent) ([]types.PutEventsRequestEntry, error) {
	entries := make([]types.PutEventsRequestEntry, 0, len(batch))
	for _, event := range batch {
		detail, err := json.Marshal(event)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s: %w", event.GetEventType(), err)
		}
		entries = append(entries, types.PutEventsRequestEntry{
			EventBusName: aws.String(p.eventBusName),
			Source:       aws.String(p.source),
			DetailType:   aws.String(event.GetEventType()),
			Detail:       aws.String(string(detail)),
			Time:         aws.Time(event.GetTimestamp()),
		})
	}
	return entries, nil
}

// send returns the entries still to deliver. Result entries line up with the
// request by index, so only those carrying an error code are resent.
func (p *Publisher) send(ctx context.Context, entries []types.PutEventsRequestEntry) ([]types.PutEventsRequestEntry, error) {
	out, err := p.client.PutEvents(ctx, &eventbridge.PutEventsInput{Entries: entries})
	if err != nil {
		return entries, fmt.Errorf("failed to publish events to EventBridge: %w", err)
	}
	if out.FailedEntryCount == 0 {
		p.logger.Debug("Events published",
			zap.Int("count", len(entries)),
			zap.String("event_bus", p.eventBusName),
		)
		return nil, nil
	}

	var failed []types.PutEventsRequestEntry
	for i, result := range out.Entries {
		if result.ErrorCode == nil || i >= len(entries) {
			continue
		}
		p.logger.Error("Event rejected",
			zap.String("event_type", aws.ToString(entries[i].DetailType)),
			zap.String("error_code", aws.ToString(result.ErrorCode)),
			zap.String("error_message", aws.ToString(result.ErrorMessage)),
		)
		failed = append(failed, entries[i])
	}
	if len(failed) == 0 {
		// count without per-entry codes; nothing identifies the rejects
		failed = entries
	}
	return failed, fmt.Errorf("%d events failed to publish", out.FailedEntryCount)
}
