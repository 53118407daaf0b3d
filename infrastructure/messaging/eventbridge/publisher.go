package eventbridge

import (
	"context"
	"encoding/json"
	"fmt"

	"goaltracker-backend/application/ports"
	"goaltracker-backend/domain/events"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"go.uber.org/zap"
)

// Publisher implements ports.EventBus using AWS EventBridge. A nil client
// turns it into a no-op so local setups run without a bus.
type Publisher struct {
	client       *eventbridge.Client
	eventBusName string
	source       string
	logger       *zap.Logger
}

// NewPublisher creates a new EventBridge publisher
func NewPublisher(client *eventbridge.Client, eventBusName string, logger *zap.Logger) ports.EventBus {
	return &Publisher{
		client:       client,
		eventBusName: eventBusName,
		source:       events.SourceBackend,
		logger:       logger,
	}
}

// Publish sends a single event to EventBridge
func (p *Publisher) Publish(ctx context.Context, event events.DomainEvent) error {
	if p.client == nil || p.eventBusName == "" {
		p.logger.Debug("event bus not configured, dropping event",
			zap.String("eventType", event.GetEventType()),
		)
		return nil
	}

	detail, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", event.GetEventType(), err)
	}

	input := &eventbridge.PutEventsInput{
		Entries: []types.PutEventsRequestEntry{
			{
				EventBusName: aws.String(p.eventBusName),
				Source:       aws.String(p.source),
				DetailType:   aws.String(event.GetEventType()),
				Detail:       aws.String(string(detail)),
				Time:         aws.Time(event.GetTimestamp()),
			},
		},
	}

	result, err := p.client.PutEvents(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to publish event to EventBridge: %w", err)
	}
	if result.FailedEntryCount > 0 {
		return fmt.Errorf("EventBridge rejected %d entries", result.FailedEntryCount)
	}

	p.logger.Debug("published event",
		zap.String("eventType", event.GetEventType()),
		zap.String("aggregateID", event.GetAggregateID()),
	)

	return nil
}
