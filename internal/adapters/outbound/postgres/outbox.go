package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	outboxEventFields = []string{
		"id",
		"entity_type",
		"entity_id",
		"topic",
		"event_type",
		"payload",
		"retry_count",
		"max_retries",
		"last_error",
		"created_at",
	}
)

// OutboxRepository stores events that must reach the broker in the outbox_events table.
type OutboxRepository struct {
	sb squirrel.StatementBuilderType
}

// NewOutboxRepository creates a new OutboxRepository bound to a db or transaction.
func NewOutboxRepository(br squirrel.BaseRunner) OutboxRepository {
	return OutboxRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// PublishRefresh records an embedding refresh request in the outbox.
// A request for a record that already has one pending is dropped.
func (op OutboxRepository) PublishRefresh(ctx context.Context, event domain.EmbeddingRefreshRequested) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("kind", string(event.Kind)),
		attribute.String("record_id", event.RecordID.String()),
	))
	defer span.End()

	payload, err := json.Marshal(event)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to marshal refresh event: %w", err)
	}

	_, err = op.sb.Insert("outbox_events").
		Columns(
			outboxEventFields...,
		).
		Values(
			uuid.New(),
			string(event.Kind),
			event.RecordID,
			string(domain.OutboxTopic_EmbeddingRefresh),
			string(event.Type),
			payload,
			0,
			domain.DefaultOutboxMaxRetries,
			nil,
			event.RequestedAt,
		).
		Suffix("ON CONFLICT (topic, entity_id) WHERE status = 'PENDING' DO NOTHING").
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to insert outbox event: %w", err)
	}

	return nil
}

// FetchPendingEvents retrieves a batch of pending outbox events, locking them for the caller's transaction.
func (op OutboxRepository) FetchPendingEvents(ctx context.Context, limit int) ([]domain.OutboxEvent, error) {
	rows, err := op.sb.
		Select(
			outboxEventFields...,
		).
		From("outbox_events").
		Where(squirrel.Eq{"status": string(domain.OutboxStatus_Pending)}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED").
		QueryContext(ctx)

	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var events []domain.OutboxEvent
	for rows.Next() {
		var (
			oe        domain.OutboxEvent
			lastError sql.NullString
		)
		err := rows.Scan(
			&oe.ID,
			&oe.EntityType,
			&oe.EntityID,
			&oe.Topic,
			&oe.EventType,
			&oe.Payload,
			&oe.RetryCount,
			&oe.MaxRetries,
			&lastError,
			&oe.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if lastError.Valid {
			oe.LastError = &lastError.String
		}
		oe.Status = domain.OutboxStatus_Pending

		events = append(events, oe)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// UpdateEvent updates the status, retry count, and last error of an outbox event.
func (op OutboxRepository) UpdateEvent(ctx context.Context, eventID uuid.UUID, status domain.OutboxStatus, retryCount int, lastError string) error {
	_, err := op.sb.
		Update("outbox_events").
		Set("status", string(status)).
		Set("retry_count", retryCount).
		Set("last_error", lastError).
		Where(squirrel.Eq{"id": eventID}).
		ExecContext(ctx)

	return err
}

// DeleteEvent deletes an outbox event from the database.
func (op OutboxRepository) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	_, err := op.sb.
		Delete("outbox_events").
		Where(squirrel.Eq{"id": eventID}).
		ExecContext(ctx)

	return err
}

// InitOutboxRepository registers the outbox as the embedding refresh publisher.
type InitOutboxRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the OutboxRepository in the dependency container.
func (i InitOutboxRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.EmbeddingRefreshPublisher](NewOutboxRepository(i.DB))
	return ctx, nil
}
