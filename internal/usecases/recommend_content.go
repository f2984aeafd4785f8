package usecases

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/common"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DefaultRecommendationLimit is the number of recommendations shown per item.
const DefaultRecommendationLimit = 4

// RecommendOptions tunes a recommendation request.
type RecommendOptions struct {
	// Limit is the maximum number of items; zero means DefaultRecommendationLimit.
	Limit int
	// Language is the UI language used to build text for items without an embedding.
	Language string
}

// RecommendContent picks related records for the item being viewed.
type RecommendContent interface {
	// Recommend never fails: errors degrade to the category fallback or to an empty outcome.
	Recommend(ctx context.Context, item *domain.ContentRecord, opts RecommendOptions) domain.RecommendationOutcome
	// RecommendByID loads the item first and returns a NotFoundErr when it does not exist.
	RecommendByID(ctx context.Context, kind domain.ContentKind, id uuid.UUID, opts RecommendOptions) (domain.RecommendationOutcome, error)
}

// RecommendContentImpl is the implementation of the RecommendContent use case.
type RecommendContentImpl struct {
	repo           domain.ContentRepository
	finder         FindSimilarItems
	gateway        ProviderGateway
	store          StoreEmbedding
	logger         *log.Logger
	persistTimeout time.Duration
	runAsync       func(func())
}

// NewRecommendContentImpl creates a new instance of RecommendContentImpl.
// persistTimeout bounds the background write of embeddings computed on demand.
func NewRecommendContentImpl(
	r domain.ContentRepository,
	f FindSimilarItems,
	g ProviderGateway,
	s StoreEmbedding,
	l *log.Logger,
	persistTimeout time.Duration,
) RecommendContentImpl {
	return RecommendContentImpl{
		repo:           r,
		finder:         f,
		gateway:        g,
		store:          s,
		logger:         l,
		persistTimeout: persistTimeout,
		runAsync:       func(fn func()) { go fn() },
	}
}

// Recommend returns similar records, falling back to same-category records and then to nothing.
func (rc RecommendContentImpl) Recommend(ctx context.Context, item *domain.ContentRecord, opts RecommendOptions) domain.RecommendationOutcome {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	outcome := rc.recommend(spanCtx, item, opts)

	span.SetAttributes(
		attribute.String("source", string(outcome.Source)),
		attribute.Int("items", len(outcome.Items)),
	)
	RecordRecommendation(spanCtx, outcome.Source)
	return outcome
}

// RecommendByID loads the record and recommends related records for it.
func (rc RecommendContentImpl) RecommendByID(ctx context.Context, kind domain.ContentKind, id uuid.UUID, opts RecommendOptions) (domain.RecommendationOutcome, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("kind", string(kind)),
		attribute.String("record_id", id.String()),
	))
	defer span.End()

	if err := kind.Validate(); err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		return domain.RecommendationOutcome{}, err
	}

	record, found, err := rc.repo.GetByID(spanCtx, kind, id)
	if err != nil {
		rc.logger.Printf("RecommendContent: failed to load %s %s: %v", kind, id, err)
		RecordRecommendation(spanCtx, domain.RecommendationSource_Empty)
		return domain.EmptyRecommendation(), nil
	}
	if !found {
		err := domain.NewNotFoundErr(fmt.Sprintf("%s %s not found", kind, id))
		telemetry.RecordErrorAndStatus(span, err)
		return domain.RecommendationOutcome{}, err
	}

	return rc.Recommend(spanCtx, &record, opts), nil
}

func (rc RecommendContentImpl) recommend(ctx context.Context, item *domain.ContentRecord, opts RecommendOptions) domain.RecommendationOutcome {
	if item == nil {
		return domain.EmptyRecommendation()
	}
	if err := item.Kind.Validate(); err != nil {
		rc.logger.Printf("RecommendContent: %v", err)
		return domain.EmptyRecommendation()
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	var (
		matches []domain.ScoredRecord
		err     error
	)
	if common.IsValidEmbedding(item.Embedding) {
		matches, err = rc.similar(ctx, item, item.Embedding, DefaultSimilarityThreshold, limit)
	} else {
		var skip bool
		matches, skip, err = rc.similarToUnembedded(ctx, item, opts.Language, limit)
		if skip {
			return domain.EmptyRecommendation()
		}
	}
	if err != nil {
		rc.logger.Printf("RecommendContent: similarity lookup failed for %s %s, using category fallback: %v", item.Kind, item.ID, err)
	}

	if len(matches) > 0 {
		return domain.RecommendationOutcome{
			Source: domain.RecommendationSource_Similarity,
			Items:  matches,
		}
	}

	return rc.byCategory(ctx, item, limit)
}

// similarToUnembedded embeds the item on the fly. skip is true when the
// item has no text at all, in which case nothing can be recommended.
func (rc RecommendContentImpl) similarToUnembedded(ctx context.Context, item *domain.ContentRecord, lang string, limit int) ([]domain.ScoredRecord, bool, error) {
	text := domain.BuildLocalizedEmbeddingText(*item, item.Kind, lang)
	if text == "" {
		return nil, true, nil
	}

	vector, err := rc.gateway.GenerateEmbedding(ctx, text)
	if err != nil {
		return nil, false, err
	}

	// the stored embedding is always built from the canonical text, whatever the UI language
	if text == domain.BuildEmbeddingText(*item, item.Kind) {
		rc.persist(ctx, *item, vector)
	} else {
		rc.persist(ctx, *item, nil)
	}

	matches, err := rc.similar(ctx, item, vector, RelaxedSimilarityThreshold, limit)
	return matches, false, err
}

func (rc RecommendContentImpl) similar(ctx context.Context, item *domain.ContentRecord, vector []float64, threshold float64, limit int) ([]domain.ScoredRecord, error) {
	// one extra result leaves room for the item itself
	matches, err := rc.finder.Query(ctx, vector, item.Kind, SimilarityOptions{
		Limit:     limit + 1,
		Threshold: common.Ptr(threshold),
		ExcludeID: item.ID,
	})
	if err != nil {
		return nil, err
	}
	return withoutItem(matches, item.ID, limit), nil
}

func (rc RecommendContentImpl) byCategory(ctx context.Context, item *domain.ContentRecord, limit int) domain.RecommendationOutcome {
	if item.Category == "" {
		return domain.EmptyRecommendation()
	}

	records, err := rc.repo.ListByCategory(ctx, item.Kind, item.Category, item.ID, limit)
	if err != nil {
		rc.logger.Printf("RecommendContent: category fallback failed for %s %s: %v", item.Kind, item.ID, err)
		return domain.EmptyRecommendation()
	}

	items := make([]domain.ScoredRecord, 0, len(records))
	for _, r := range records {
		items = append(items, domain.ScoredRecord{Record: r})
	}
	items = withoutItem(items, item.ID, limit)
	if len(items) == 0 {
		return domain.EmptyRecommendation()
	}

	return domain.RecommendationOutcome{
		Source: domain.RecommendationSource_CategoryFallback,
		Items:  items,
	}
}

// persist stores the embedding of item without blocking the caller. A nil
// vector means the vector used for the query was not the canonical one, so
// the store writer embeds the record again. Failures are only logged.
func (rc RecommendContentImpl) persist(ctx context.Context, item domain.ContentRecord, vector []float64) {
	if item.ID == uuid.Nil {
		return
	}

	detached := context.WithoutCancel(ctx)
	rc.runAsync(func() {
		persistCtx, cancel := context.WithTimeout(detached, rc.persistTimeout)
		defer cancel()

		if vector == nil {
			_, _ = rc.store.GenerateAndStore(persistCtx, item, item.Kind)
			return
		}

		if err := rc.repo.UpdateEmbedding(persistCtx, item.Kind, item.ID, vector); err != nil {
			rc.logger.Printf("RecommendContent: failed to persist embedding for %s %s: %v", item.Kind, item.ID, err)
			RecordEmbeddingStored(persistCtx, item.Kind, false)
			return
		}
		RecordEmbeddingStored(persistCtx, item.Kind, true)
	})
}

func withoutItem(items []domain.ScoredRecord, id uuid.UUID, limit int) []domain.ScoredRecord {
	out := make([]domain.ScoredRecord, 0, min(len(items), limit))
	for _, it := range items {
		if len(out) == limit {
			break
		}
		if id != uuid.Nil && it.Record.ID == id {
			continue
		}
		out = append(out, it)
	}
	return out
}

// InitRecommendContent initializes the RecommendContent use case.
type InitRecommendContent struct {
	Repo           domain.ContentRepository `resolve:""`
	Finder         FindSimilarItems         `resolve:""`
	Gateway        ProviderGateway          `resolve:""`
	Store          StoreEmbedding           `resolve:""`
	Logger         *log.Logger              `resolve:""`
	PersistTimeout time.Duration            `config:"EMBEDDING_PERSIST_TIMEOUT" default:"30s"`
}

// Initialize registers the RecommendContent use case in the dependency container.
func (i InitRecommendContent) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RecommendContent](NewRecommendContentImpl(i.Repo, i.Finder, i.Gateway, i.Store, i.Logger, i.PersistTimeout))
	return ctx, nil
}
