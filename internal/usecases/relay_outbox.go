package usecases

import (
	"context"
	"log"

	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/bomi/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// DefaultRelayBatchSize bounds the events relayed per run.
const DefaultRelayBatchSize = 100

// RelayOutbox defines the interface for relaying outbox events
type RelayOutbox interface {
	// Execute publishes pending outbox events to the broker
	Execute(ctx context.Context) error
}

// RelayOutboxImpl publishes pending mood events and removes them from the outbox.
type RelayOutboxImpl struct {
	uow       domain.UnitOfWork
	publisher domain.EventPublisher
	logger    *log.Logger
}

// NewRelayOutboxImpl creates a new instance
func NewRelayOutboxImpl(uow domain.UnitOfWork, publisher domain.EventPublisher, logger *log.Logger) RelayOutboxImpl {
	return RelayOutboxImpl{
		uow:       uow,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute relays one batch of pending events inside a single unit of work.
// A failed publish is recorded on the event and does not abort the batch.
func (r RelayOutboxImpl) Execute(ctx context.Context) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	err := r.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		events, err := uow.Outbox().FetchPendingEvents(spanCtx, DefaultRelayBatchSize)
		if err != nil {
			return err
		}

		for _, event := range events {
			if err := r.relayEvent(spanCtx, uow, event); err != nil {
				r.logger.Printf("RelayOutbox: relay failed for event %s: %v", event.ID, err)
			}
		}
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

func (r RelayOutboxImpl) relayEvent(ctx context.Context, uow domain.UnitOfWork, event domain.OutboxEvent) error {
	if err := r.publisher.PublishEvent(ctx, event); err != nil {
		status := domain.OutboxStatus_Pending
		if event.RetryCount+1 >= event.MaxRetries {
			status = domain.OutboxStatus_Failed
		}
		return uow.Outbox().UpdateEvent(ctx, event.ID, status, event.RetryCount+1, err.Error())
	}
	return uow.Outbox().DeleteEvent(ctx, event.ID)
}

// InitRelayOutbox is used to initialize the RelayOutbox in the dependency container
type InitRelayOutbox struct {
	Uow       domain.UnitOfWork     `resolve:""`
	Logger    *log.Logger           `resolve:""`
	Publisher domain.EventPublisher `resolve:""`
}

// Initialize registers the RelayOutbox implementation in the dependency container
func (iro InitRelayOutbox) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RelayOutbox](NewRelayOutboxImpl(iro.Uow, iro.Publisher, iro.Logger))
	return ctx, nil
}
