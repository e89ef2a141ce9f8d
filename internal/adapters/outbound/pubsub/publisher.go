package pubsub

import (
	"context"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/bomi/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// EventPublisher implements domain.EventPublisher on Pub/Sub. The outbox topic
// is used as the Pub/Sub topic id.
type EventPublisher struct {
	client *pubsubV2.Client
}

// NewEventPublisher creates a new EventPublisher.
func NewEventPublisher(client *pubsubV2.Client) EventPublisher {
	return EventPublisher{client: client}
}

// PublishEvent publishes the event payload and waits for the server ack.
func (p EventPublisher) PublishEvent(ctx context.Context, event domain.OutboxEvent) error {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("event_id", event.ID.String()),
			attribute.String("event_type", string(event.EventType)),
			attribute.String("topic", string(event.Topic)),
		),
	)
	defer span.End()

	result := p.client.Publisher(string(event.Topic)).Publish(spanCtx, &pubsubV2.Message{
		Data: event.Payload,
		Attributes: map[string]string{
			"event_type":  string(event.EventType),
			"entity_type": string(event.EntityType),
			"entity_id":   event.EntityID.String(),
		},
	})

	_, err := result.Get(spanCtx)
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// InitPublisher registers the EventPublisher.
type InitPublisher struct {
	Client *pubsubV2.Client `resolve:""`
}

// Initialize registers EventPublisher as the domain.EventPublisher implementation.
func (i *InitPublisher) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.EventPublisher](NewEventPublisher(i.Client))
	return ctx, nil
}
