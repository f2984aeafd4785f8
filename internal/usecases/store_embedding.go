package usecases

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// StoreEmbedding computes and persists the embedding of a single record.
type StoreEmbedding interface {
	// GenerateAndStore returns true when a new embedding was stored. Provider
	// and storage failures are logged and reported as false, never as an error.
	GenerateAndStore(ctx context.Context, record domain.ContentRecord, kind domain.ContentKind) (bool, error)
	// GenerateAndStoreWithCause behaves like GenerateAndStore but returns the
	// provider or storage failure. A record without text is still (false, nil).
	GenerateAndStoreWithCause(ctx context.Context, record domain.ContentRecord, kind domain.ContentKind) (bool, error)
}

// StoreEmbeddingImpl is the implementation of the StoreEmbedding use case.
type StoreEmbeddingImpl struct {
	repo    domain.ContentRepository
	gateway ProviderGateway
	logger  *log.Logger
}

// NewStoreEmbeddingImpl creates a new instance of StoreEmbeddingImpl.
func NewStoreEmbeddingImpl(r domain.ContentRepository, g ProviderGateway, l *log.Logger) StoreEmbeddingImpl {
	return StoreEmbeddingImpl{
		repo:    r,
		gateway: g,
		logger:  l,
	}
}

// GenerateAndStore builds the embedding text of record, embeds it and writes the vector.
func (s StoreEmbeddingImpl) GenerateAndStore(ctx context.Context, record domain.ContentRecord, kind domain.ContentKind) (bool, error) {
	stored, err := s.GenerateAndStoreWithCause(ctx, record, kind)
	if err != nil && record.ID != uuid.Nil {
		return false, nil
	}
	return stored, err
}

// GenerateAndStoreWithCause is GenerateAndStore for callers that decide what to do with a failure.
func (s StoreEmbeddingImpl) GenerateAndStoreWithCause(ctx context.Context, record domain.ContentRecord, kind domain.ContentKind) (bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("kind", string(kind)),
		attribute.String("record_id", record.ID.String()),
	))
	defer span.End()

	if record.ID == uuid.Nil {
		err := domain.NewValidationErr("record id is required to store an embedding")
		telemetry.RecordErrorAndStatus(span, err)
		return false, err
	}

	err := s.generateAndStore(spanCtx, record, kind)
	stored := err == nil
	if errors.Is(err, errNothingToEmbed) {
		err = nil
	}
	telemetry.RecordErrorAndStatus(span, err)
	span.SetAttributes(attribute.Bool("stored", stored))
	RecordEmbeddingStored(spanCtx, kind, stored)

	return stored, err
}

// errNothingToEmbed marks a record whose fields yield no text.
var errNothingToEmbed = errors.New("no text to embed")

func (s StoreEmbeddingImpl) generateAndStore(ctx context.Context, record domain.ContentRecord, kind domain.ContentKind) error {
	text := domain.BuildEmbeddingText(record, kind)
	if text == "" {
		s.logger.Printf("StoreEmbedding: %s %s has no text to embed", kind, record.ID)
		return errNothingToEmbed
	}

	vector, err := s.gateway.GenerateEmbedding(ctx, text)
	if err != nil {
		s.logger.Printf("StoreEmbedding: failed to generate embedding for %s %s: %v", kind, record.ID, err)
		return fmt.Errorf("failed to generate embedding for %s %s: %w", kind, record.ID, err)
	}

	if err := s.repo.UpdateEmbedding(ctx, kind, record.ID, vector); err != nil {
		s.logger.Printf("StoreEmbedding: failed to store embedding for %s %s: %v", kind, record.ID, err)
		return fmt.Errorf("failed to store embedding for %s %s: %w", kind, record.ID, err)
	}

	return nil
}

// InitStoreEmbedding initializes the StoreEmbedding use case.
type InitStoreEmbedding struct {
	Repo    domain.ContentRepository `resolve:""`
	Gateway ProviderGateway          `resolve:""`
	Logger  *log.Logger              `resolve:""`
}

// Initialize registers the StoreEmbedding use case in the dependency container.
func (i InitStoreEmbedding) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[StoreEmbedding](NewStoreEmbeddingImpl(i.Repo, i.Gateway, i.Logger))
	return ctx, nil
}
