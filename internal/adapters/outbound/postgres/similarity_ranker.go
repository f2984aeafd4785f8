package postgres

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/common"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var matchFunctions = map[domain.ContentKind]string{
	domain.ContentKind_Tool:   "match_tools",
	domain.ContentKind_Prompt: "match_prompts",
}

// Querier is the subset of *sql.DB used to call the ranking functions.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// SimilarityRanker implements domain.SimilarityRanker with the match_tools and
// match_prompts SQL functions.
type SimilarityRanker struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewSimilarityRanker creates a new instance of SimilarityRanker.
func NewSimilarityRanker(db Querier) SimilarityRanker {
	return SimilarityRanker{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// MatchByEmbedding returns the records most similar to params.Embedding, best first.
func (sr SimilarityRanker) MatchByEmbedding(ctx context.Context, kind domain.ContentKind, params domain.MatchParams) ([]domain.ScoredRecord, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("kind", string(kind)),
		attribute.Int("limit", params.Limit),
		attribute.Float64("threshold", params.Threshold),
	))
	defer span.End()

	if err := kind.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	query, _, err := sr.sb.
		Select(append(contentFields, "similarity")...).
		From(matchFunctions[kind] + "(?, ?, ?, ?)").
		ToSql()
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	rows, err := sr.db.QueryContext(spanCtx, query,
		pgvector.NewVector(common.ToFloat32(params.Embedding, 0)),
		params.Threshold,
		params.Limit,
		uuid.NullUUID{UUID: params.ExcludeID, Valid: params.ExcludeID != uuid.Nil},
	)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	matches := []domain.ScoredRecord{}
	for rows.Next() {
		var (
			row        contentRow
			similarity float64
		)
		if err := rows.Scan(append(row.dest(), &similarity)...); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		matches = append(matches, domain.ScoredRecord{
			Record:     row.toRecord(kind),
			Similarity: similarity,
		})
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	span.SetAttributes(attribute.Int("matches", len(matches)))
	return matches, nil
}

// InitSimilarityRanker is a Symbiont initializer for SimilarityRanker.
type InitSimilarityRanker struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the SimilarityRanker in the dependency container.
func (i InitSimilarityRanker) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.SimilarityRanker](NewSimilarityRanker(i.DB))
	return ctx, nil
}
