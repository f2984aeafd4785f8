package usecases

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/common"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultSimilarityLimit is the result size used when none is requested.
	DefaultSimilarityLimit = 5
	// DefaultSimilarityThreshold is the minimum score of a match when none is requested.
	DefaultSimilarityThreshold = 0.7
	// RelaxedSimilarityThreshold is used for vectors computed on demand.
	RelaxedSimilarityThreshold = 0.5
)

// SimilarityOptions tunes a similarity query.
type SimilarityOptions struct {
	// Limit is the maximum number of results; zero means DefaultSimilarityLimit.
	Limit int
	// Threshold is the minimum score; nil means DefaultSimilarityThreshold.
	Threshold *float64
	// ExcludeID is never returned when set.
	ExcludeID uuid.UUID
}

// FindSimilarItems ranks directory records by cosine similarity to a query vector.
type FindSimilarItems interface {
	Query(ctx context.Context, query []float64, kind domain.ContentKind, opts SimilarityOptions) ([]domain.ScoredRecord, error)
}

// FindSimilarItemsImpl asks the storage-side ranker first and ranks in
// process when the ranker is unavailable.
type FindSimilarItemsImpl struct {
	ranker domain.SimilarityRanker
	repo   domain.ContentRepository
	logger *log.Logger
}

// NewFindSimilarItemsImpl creates a new instance of FindSimilarItemsImpl.
func NewFindSimilarItemsImpl(rk domain.SimilarityRanker, r domain.ContentRepository, l *log.Logger) FindSimilarItemsImpl {
	return FindSimilarItemsImpl{
		ranker: rk,
		repo:   r,
		logger: l,
	}
}

// Query returns at most Limit records scoring at least Threshold, best first.
func (f FindSimilarItemsImpl) Query(ctx context.Context, query []float64, kind domain.ContentKind, opts SimilarityOptions) ([]domain.ScoredRecord, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("kind", string(kind)),
	))
	defer span.End()

	params, err := buildMatchParams(query, kind, opts)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	results, err := f.ranker.MatchByEmbedding(spanCtx, kind, params)
	if err != nil {
		f.logger.Printf("FindSimilarItems: storage ranking failed for %s, ranking in process: %v", kind, err)
		span.AddEvent("in-process ranking fallback")

		results, err = f.rankInProcess(spanCtx, kind, params)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
	}

	ranked := rankMatches(results, params)
	span.SetAttributes(attribute.Int("results", len(ranked)))
	return ranked, nil
}

func (f FindSimilarItemsImpl) rankInProcess(ctx context.Context, kind domain.ContentKind, params domain.MatchParams) ([]domain.ScoredRecord, error) {
	candidates, err := f.repo.ListWithEmbedding(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s candidates: %w", kind, err)
	}

	scored := make([]domain.ScoredRecord, 0, len(candidates))
	for _, c := range candidates {
		// mismatched or zero vectors score 0
		score, _ := common.CosineSimilarity(params.Embedding, c.Embedding)
		scored = append(scored, domain.ScoredRecord{Record: c, Similarity: score})
	}
	return scored, nil
}

func buildMatchParams(query []float64, kind domain.ContentKind, opts SimilarityOptions) (domain.MatchParams, error) {
	if err := kind.Validate(); err != nil {
		return domain.MatchParams{}, err
	}
	if !common.IsValidEmbedding(query) {
		return domain.MatchParams{}, domain.NewValidationErr("query vector must be a non-empty list of finite numbers")
	}
	if opts.Limit < 0 {
		return domain.MatchParams{}, domain.NewValidationErr("limit must not be negative")
	}

	params := domain.MatchParams{
		Embedding: query,
		Threshold: DefaultSimilarityThreshold,
		Limit:     DefaultSimilarityLimit,
		ExcludeID: opts.ExcludeID,
	}
	if opts.Limit > 0 {
		params.Limit = opts.Limit
	}
	if opts.Threshold != nil {
		if *opts.Threshold < -1 || *opts.Threshold > 1 {
			return domain.MatchParams{}, domain.NewValidationErr("threshold must be between -1 and 1")
		}
		params.Threshold = *opts.Threshold
	}
	return params, nil
}

// rankMatches drops the excluded id and the scores under the threshold, then
// returns the best Limit entries. Ties keep their input order.
func rankMatches(results []domain.ScoredRecord, params domain.MatchParams) []domain.ScoredRecord {
	ranked := make([]domain.ScoredRecord, 0, len(results))
	for _, r := range results {
		if params.ExcludeID != uuid.Nil && r.Record.ID == params.ExcludeID {
			continue
		}
		if r.Similarity < params.Threshold {
			continue
		}
		ranked = append(ranked, r)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Similarity > ranked[j].Similarity
	})

	if len(ranked) > params.Limit {
		ranked = ranked[:params.Limit]
	}
	return ranked
}

// InitFindSimilarItems initializes the FindSimilarItems use case.
type InitFindSimilarItems struct {
	Ranker domain.SimilarityRanker  `resolve:""`
	Repo   domain.ContentRepository `resolve:""`
	Logger *log.Logger              `resolve:""`
}

// Initialize registers the FindSimilarItems use case in the dependency container.
func (i InitFindSimilarItems) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[FindSimilarItems](NewFindSimilarItemsImpl(i.Ranker, i.Repo, i.Logger))
	return ctx, nil
}
