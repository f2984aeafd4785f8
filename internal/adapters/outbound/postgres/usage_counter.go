package postgres

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// UsageCounterRepository stores provider request counters in llm_usage_counters.
type UsageCounterRepository struct {
	sb squirrel.StatementBuilderType
}

// NewUsageCounterRepository creates a new instance of UsageCounterRepository.
func NewUsageCounterRepository(br squirrel.BaseRunner) UsageCounterRepository {
	return UsageCounterRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// Get returns the counter value, zero when the key has no row.
func (ur UsageCounterRepository) Get(ctx context.Context, key string) (int, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.String("key", key)))
	defer span.End()

	var count int
	err := ur.sb.
		Select("count").
		From("llm_usage_counters").
		Where(squirrel.Eq{"key": key}).
		QueryRowContext(spanCtx).
		Scan(&count)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	return count, nil
}

// Increment adds one to the counter in a single upsert.
func (ur UsageCounterRepository) Increment(ctx context.Context, key string) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.String("key", key)))
	defer span.End()

	_, err := ur.sb.
		Insert("llm_usage_counters").
		Columns("key", "count", "updated_at").
		Values(key, 1, squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET count = llm_usage_counters.count + 1, updated_at = NOW()").
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}
