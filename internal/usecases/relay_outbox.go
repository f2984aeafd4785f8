package usecases

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// relayBatchSize is the number of pending events claimed per relay run.
const relayBatchSize = 100

// RelayOutbox defines the interface for relaying outbox events
type RelayOutbox interface {
	// Execute processes pending outbox events and relays them
	Execute(ctx context.Context) error
}

// RelayOutboxImpl moves pending outbox events to the event broker.
type RelayOutboxImpl struct {
	uow       domain.UnitOfWork
	publisher domain.EventPublisher
	logger    *log.Logger
}

// NewRelayOutboxImpl creates a new instance of RelayOutboxImpl.
func NewRelayOutboxImpl(uow domain.UnitOfWork, publisher domain.EventPublisher, logger *log.Logger) RelayOutboxImpl {
	return RelayOutboxImpl{
		uow:       uow,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute claims a batch of pending events and publishes them inside one transaction.
// A failed publish is recorded on the event and does not abort the batch.
func (r RelayOutboxImpl) Execute(ctx context.Context) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	err := r.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		events, err := uow.Outbox().FetchPendingEvents(spanCtx, relayBatchSize)
		if err != nil {
			return err
		}
		span.SetAttributes(attribute.Int("events", len(events)))

		for _, event := range events {
			if err := r.relayEvent(spanCtx, uow, event); err != nil && r.logger != nil {
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

// relayEvent publishes one event, deleting it on success and recording the failure otherwise.
func (r RelayOutboxImpl) relayEvent(ctx context.Context, uow domain.UnitOfWork, event domain.OutboxEvent) error {
	if err := r.publisher.PublishEvent(ctx, event); err != nil {
		retries := event.RetryCount + 1
		status := domain.OutboxStatus_Pending
		if retries >= event.MaxRetries {
			status = domain.OutboxStatus_Failed
		}
		RecordOutboxRelay(ctx, event.Topic, string(status))
		return uow.Outbox().UpdateEvent(ctx, event.ID, status, retries, err.Error())
	}
	RecordOutboxRelay(ctx, event.Topic, "published")
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
