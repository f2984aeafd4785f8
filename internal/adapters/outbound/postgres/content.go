package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

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

var (
	contentFields = []string{
		"id",
		"category",
		"content",
		"name",
		"description",
		"tag_line",
		"embedding::text",
		"created_at",
		"updated_at",
	}

	contentTables = map[domain.ContentKind]string{
		domain.ContentKind_Tool:   "tools",
		domain.ContentKind_Prompt: "prompts",
	}
)

// tableFor returns the table holding records of kind.
func tableFor(kind domain.ContentKind) (string, error) {
	if err := kind.Validate(); err != nil {
		return "", err
	}
	return contentTables[kind], nil
}

// ContentRepository implements the domain.ContentRepository interface using PostgreSQL as the storage backend.
type ContentRepository struct {
	sb squirrel.StatementBuilderType
}

// NewContentRepository creates a new instance of ContentRepository.
func NewContentRepository(br squirrel.BaseRunner) ContentRepository {
	return ContentRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// ListAll returns every record of the given kind, oldest first.
func (cr ContentRepository) ListAll(ctx context.Context, kind domain.ContentKind) ([]domain.ContentRecord, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.String("kind", string(kind))))
	defer span.End()

	table, err := tableFor(kind)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	records, err := cr.query(spanCtx, kind, cr.sb.
		Select(contentFields...).
		From(table).
		OrderBy("created_at ASC"),
	)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return records, nil
}

// ListWithEmbedding returns the records of the given kind that carry an embedding.
func (cr ContentRepository) ListWithEmbedding(ctx context.Context, kind domain.ContentKind) ([]domain.ContentRecord, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.String("kind", string(kind))))
	defer span.End()

	table, err := tableFor(kind)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	records, err := cr.query(spanCtx, kind, cr.sb.
		Select(contentFields...).
		From(table).
		Where("embedding IS NOT NULL"),
	)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	// rows whose stored vector does not parse are treated as unembedded
	withEmbedding := records[:0]
	for _, r := range records {
		if r.HasEmbedding() {
			withEmbedding = append(withEmbedding, r)
		}
	}
	return withEmbedding, nil
}

// GetByID retrieves a record by its ID.
func (cr ContentRepository) GetByID(ctx context.Context, kind domain.ContentKind, id uuid.UUID) (domain.ContentRecord, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("kind", string(kind)),
		attribute.String("id", id.String()),
	))
	defer span.End()

	table, err := tableFor(kind)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ContentRecord{}, false, err
	}

	var row contentRow
	err = cr.sb.
		Select(contentFields...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		QueryRowContext(spanCtx).
		Scan(row.dest()...)

	if err == sql.ErrNoRows {
		return domain.ContentRecord{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ContentRecord{}, false, err
	}

	return row.toRecord(kind), true, nil
}

// ListByCategory returns up to limit records of the category, newest first, excluding excludeID.
func (cr ContentRepository) ListByCategory(ctx context.Context, kind domain.ContentKind, category string, excludeID uuid.UUID, limit int) ([]domain.ContentRecord, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("kind", string(kind)),
		attribute.String("category", category),
		attribute.Int("limit", limit),
	))
	defer span.End()

	table, err := tableFor(kind)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	if limit <= 0 {
		return []domain.ContentRecord{}, nil
	}

	qry := cr.sb.
		Select(contentFields...).
		From(table).
		Where(squirrel.Eq{"category": category})
	if excludeID != uuid.Nil {
		qry = qry.Where(squirrel.NotEq{"id": excludeID})
	}
	qry = qry.
		OrderBy("created_at DESC").
		Limit(uint64(limit))

	records, err := cr.query(spanCtx, kind, qry)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return records, nil
}

// UpdateEmbedding stores the embedding of a record.
func (cr ContentRepository) UpdateEmbedding(ctx context.Context, kind domain.ContentKind, id uuid.UUID, embedding []float64) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("kind", string(kind)),
		attribute.String("id", id.String()),
		attribute.Int("dimensions", len(embedding)),
	))
	defer span.End()

	table, err := tableFor(kind)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if !common.IsValidEmbedding(embedding) {
		err := domain.NewValidationErr("embedding must be a non-empty list of finite numbers")
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	res, err := cr.sb.
		Update(table).
		Set("embedding", pgvector.NewVector(common.ToFloat32(embedding, 0))).
		Set("embedding_updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	affected, err := res.RowsAffected()
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if affected == 0 {
		err := domain.NewNotFoundErr(fmt.Sprintf("%s %s not found", kind, id))
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}
	return nil
}

func (cr ContentRepository) query(ctx context.Context, kind domain.ContentKind, qry squirrel.SelectBuilder) ([]domain.ContentRecord, error) {
	rows, err := qry.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	records := []domain.ContentRecord{}
	for rows.Next() {
		var row contentRow
		if err := rows.Scan(row.dest()...); err != nil {
			return nil, err
		}
		records = append(records, row.toRecord(kind))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// contentRow is a tools/prompts row as scanned from contentFields.
type contentRow struct {
	id          string
	category    sql.NullString
	content     []byte
	name        sql.NullString
	description sql.NullString
	tagLine     sql.NullString
	embedding   sql.NullString
	createdAt   sql.NullTime
	updatedAt   sql.NullTime
}

func (r *contentRow) dest() []any {
	return []any{
		&r.id,
		&r.category,
		&r.content,
		&r.name,
		&r.description,
		&r.tagLine,
		&r.embedding,
		&r.createdAt,
		&r.updatedAt,
	}
}

// toRecord normalizes the row. A content column that is not a language map
// is ignored so the legacy columns still apply.
func (r contentRow) toRecord(kind domain.ContentKind) domain.ContentRecord {
	raw := domain.RawContentRecord{
		ID:          r.id,
		Kind:        kind,
		Category:    r.category.String,
		Name:        r.name.String,
		Description: r.description.String,
		TagLine:     r.tagLine.String,
		CreatedAt:   r.createdAt.Time,
		UpdatedAt:   r.updatedAt.Time,
	}
	if len(r.content) > 0 {
		var localized map[string]domain.RawLocalizedContent
		if err := json.Unmarshal(r.content, &localized); err == nil {
			raw.Localized = localized
		}
	}
	if r.embedding.Valid {
		raw.Embedding = r.embedding.String
	}
	return domain.NormalizeRecord(raw)
}

// InitContentRepository is a Symbiont initializer for ContentRepository.
type InitContentRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the ContentRepository in the dependency container.
func (i InitContentRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ContentRepository](NewContentRepository(i.DB))
	return ctx, nil
}
