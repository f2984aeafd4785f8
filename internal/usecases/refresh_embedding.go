package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// RefreshEmbedding recomputes the embedding of a stored record.
type RefreshEmbedding interface {
	// Execute returns whether a new embedding was stored.
	Execute(ctx context.Context, kind domain.ContentKind, id uuid.UUID) (bool, error)
}

// RefreshEmbeddingImpl is the implementation of the RefreshEmbedding use case.
type RefreshEmbeddingImpl struct {
	repo  domain.ContentRepository
	store StoreEmbedding
}

// NewRefreshEmbeddingImpl creates a new instance of RefreshEmbeddingImpl.
func NewRefreshEmbeddingImpl(r domain.ContentRepository, s StoreEmbedding) RefreshEmbeddingImpl {
	return RefreshEmbeddingImpl{
		repo:  r,
		store: s,
	}
}

// Execute loads the record and runs the embedding store writer on it. Provider
// and storage failures are returned so the caller can retry them.
func (r RefreshEmbeddingImpl) Execute(ctx context.Context, kind domain.ContentKind, id uuid.UUID) (bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("kind", string(kind)),
		attribute.String("record_id", id.String()),
	))
	defer span.End()

	if err := kind.Validate(); err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		return false, err
	}

	record, found, err := r.repo.GetByID(spanCtx, kind, id)
	if err != nil {
		err = fmt.Errorf("failed to load %s %s: %w", kind, id, err)
		telemetry.RecordErrorAndStatus(span, err)
		return false, err
	}
	if !found {
		err := domain.NewNotFoundErr(fmt.Sprintf("%s %s not found", kind, id))
		telemetry.RecordErrorAndStatus(span, err)
		return false, err
	}

	stored, err := r.store.GenerateAndStoreWithCause(spanCtx, record, kind)
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}
	return stored, nil
}

// InitRefreshEmbedding initializes the RefreshEmbedding use case.
type InitRefreshEmbedding struct {
	Repo  domain.ContentRepository `resolve:""`
	Store StoreEmbedding           `resolve:""`
}

// Initialize registers the RefreshEmbedding use case in the dependency container.
func (i InitRefreshEmbedding) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RefreshEmbedding](NewRefreshEmbeddingImpl(i.Repo, i.Store))
	return ctx, nil
}

// RequestEmbeddingRefresh queues an embedding recomputation for the refresh worker.
type RequestEmbeddingRefresh interface {
	Execute(ctx context.Context, kind domain.ContentKind, id uuid.UUID) error
}

// RequestEmbeddingRefreshImpl is the implementation of the RequestEmbeddingRefresh use case.
type RequestEmbeddingRefreshImpl struct {
	publisher    domain.EmbeddingRefreshPublisher
	timeProvider domain.CurrentTimeProvider
}

// NewRequestEmbeddingRefreshImpl creates a new instance of RequestEmbeddingRefreshImpl.
func NewRequestEmbeddingRefreshImpl(p domain.EmbeddingRefreshPublisher, tp domain.CurrentTimeProvider) RequestEmbeddingRefreshImpl {
	return RequestEmbeddingRefreshImpl{
		publisher:    p,
		timeProvider: tp,
	}
}

// Execute publishes an EmbeddingRefreshRequested event.
func (r RequestEmbeddingRefreshImpl) Execute(ctx context.Context, kind domain.ContentKind, id uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("kind", string(kind)),
		attribute.String("record_id", id.String()),
	))
	defer span.End()

	if err := kind.Validate(); err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}
	if id == uuid.Nil {
		err := domain.NewValidationErr("record id is required")
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	err := r.publisher.PublishRefresh(spanCtx, domain.EmbeddingRefreshRequested{
		Type:        domain.EventType_EMBEDDING_REFRESH_REQUESTED,
		Kind:        kind,
		RecordID:    id,
		RequestedAt: r.timeProvider.Now(),
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitRequestEmbeddingRefresh initializes the RequestEmbeddingRefresh use case.
type InitRequestEmbeddingRefresh struct {
	Publisher    domain.EmbeddingRefreshPublisher `resolve:""`
	TimeProvider domain.CurrentTimeProvider       `resolve:""`
}

// Initialize registers the RequestEmbeddingRefresh use case in the dependency container.
func (i InitRequestEmbeddingRefresh) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RequestEmbeddingRefresh](NewRequestEmbeddingRefreshImpl(i.Publisher, i.TimeProvider))
	return ctx, nil
}
