package usecases

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ProgressFunc is called after each record of a batch with the 1-based
// position of the record and the batch size.
type ProgressFunc func(current, total int)

// BackfillEmbeddings regenerates the embeddings of every record of a kind.
type BackfillEmbeddings interface {
	Execute(ctx context.Context, kind domain.ContentKind, onProgress ProgressFunc) (domain.BatchResult, error)
}

// BackfillEmbeddingsImpl is the implementation of the BackfillEmbeddings use case.
type BackfillEmbeddingsImpl struct {
	repo   domain.ContentRepository
	store  StoreEmbedding
	logger *log.Logger
	delay  time.Duration
}

// NewBackfillEmbeddingsImpl creates a new instance of BackfillEmbeddingsImpl.
// delay is the pause between two consecutive records.
func NewBackfillEmbeddingsImpl(r domain.ContentRepository, s StoreEmbedding, l *log.Logger, delay time.Duration) BackfillEmbeddingsImpl {
	return BackfillEmbeddingsImpl{
		repo:   r,
		store:  s,
		logger: l,
		delay:  delay,
	}
}

// Execute processes the records sequentially. Cancelling ctx stops the batch
// and returns the counts of the records processed so far with ctx.Err().
func (b BackfillEmbeddingsImpl) Execute(ctx context.Context, kind domain.ContentKind, onProgress ProgressFunc) (domain.BatchResult, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("kind", string(kind)),
	))
	defer span.End()

	if err := kind.Validate(); err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		return domain.BatchResult{}, err
	}

	records, err := b.repo.ListAll(spanCtx, kind)
	if err != nil {
		err = fmt.Errorf("failed to list %s records: %w", kind, err)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.BatchResult{}, err
	}

	var result domain.BatchResult
	total := len(records)
	for i, record := range records {
		if i > 0 {
			if err := b.pause(spanCtx); err != nil {
				b.logger.Printf("BackfillEmbeddings: %s batch stopped after %d of %d records: %v", kind, i, total, err)
				telemetry.RecordErrorAndStatus(span, err)
				return result, err
			}
		}

		stored, err := b.store.GenerateAndStore(spanCtx, record, kind)
		if err != nil {
			b.logger.Printf("BackfillEmbeddings: skipping %s %s: %v", kind, record.ID, err)
		}
		if stored {
			result.Success++
		} else {
			result.Failed++
		}

		if onProgress != nil {
			onProgress(i+1, total)
		}
	}

	span.SetAttributes(
		attribute.Int("success", result.Success),
		attribute.Int("failed", result.Failed),
	)
	b.logger.Printf("BackfillEmbeddings: %s batch done, %d stored, %d failed", kind, result.Success, result.Failed)

	return result, nil
}

func (b BackfillEmbeddingsImpl) pause(ctx context.Context) error {
	if b.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(b.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// InitBackfillEmbeddings initializes the BackfillEmbeddings use case.
type InitBackfillEmbeddings struct {
	Repo   domain.ContentRepository `resolve:""`
	Store  StoreEmbedding           `resolve:""`
	Logger *log.Logger              `resolve:""`
	Delay  time.Duration            `config:"EMBEDDING_BATCH_DELAY" default:"200ms"`
}

// Initialize registers the BackfillEmbeddings use case in the dependency container.
func (i InitBackfillEmbeddings) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[BackfillEmbeddings](NewBackfillEmbeddingsImpl(i.Repo, i.Store, i.Logger, i.Delay))
	return ctx, nil
}
