package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter            = otel.Meter("usecases")
	LLMTokensUsed    metric.Int64Counter
	ProviderRequests metric.Int64Counter
	EmbeddingsStored metric.Int64Counter
	Recommendations  metric.Int64Counter
	OutboxRelayed    metric.Int64Counter
)

func init() {
	var err error
	// Tokens consumed by LLM (input + output)
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}

	ProviderRequests, err = meter.Int64Counter(
		"llm_provider_requests_total",
		metric.WithDescription("LLM provider requests by operation and outcome"),
	)
	if err != nil {
		panic(err)
	}

	EmbeddingsStored, err = meter.Int64Counter(
		"embeddings_stored_total",
		metric.WithDescription("Embedding store attempts by content kind and result"),
	)
	if err != nil {
		panic(err)
	}

	Recommendations, err = meter.Int64Counter(
		"recommendations_total",
		metric.WithDescription("Recommendation requests by source"),
	)
	if err != nil {
		panic(err)
	}

	OutboxRelayed, err = meter.Int64Counter(
		"outbox_events_relayed_total",
		metric.WithDescription("Outbox relay attempts by topic and outcome"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordLLMTokensUsed records the number of tokens used in a text generation.
func RecordLLMTokensUsed(ctx context.Context, promptTokens, completionTokens int) {
	LLMTokensUsed.Add(ctx, int64(promptTokens), metric.WithAttributes(
		attribute.String("token_type", "prompt"),
	))
	LLMTokensUsed.Add(ctx, int64(completionTokens), metric.WithAttributes(
		attribute.String("token_type", "completion"),
	))
}

// RecordLLMTokensEmbedding records the number of tokens used in an embedding operation.
func RecordLLMTokensEmbedding(ctx context.Context, totalTokens int) {
	LLMTokensUsed.Add(ctx, int64(totalTokens), metric.WithAttributes(
		attribute.String("token_type", "embedding"),
	))
}

// RecordProviderRequest records a provider call outcome. A nil error is recorded as "ok".
func RecordProviderRequest(ctx context.Context, operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = string(domain.ProviderErrorKind_Unknown)
		if kind, ok := domain.ProviderErrorKindOf(err); ok {
			outcome = string(kind)
		}
	}
	ProviderRequests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	))
}

// RecordEmbeddingStored records the result of storing an embedding.
func RecordEmbeddingStored(ctx context.Context, kind domain.ContentKind, stored bool) {
	result := "stored"
	if !stored {
		result = "skipped"
	}
	EmbeddingsStored.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", string(kind)),
		attribute.String("result", result),
	))
}

// RecordRecommendation records which strategy produced a recommendation list.
func RecordRecommendation(ctx context.Context, source domain.RecommendationSource) {
	Recommendations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("source", string(source)),
	))
}

// RecordOutboxRelay records the outcome of relaying one outbox event.
func RecordOutboxRelay(ctx context.Context, topic domain.OutboxTopic, outcome string) {
	OutboxRelayed.Add(ctx, 1, metric.WithAttributes(
		attribute.String("topic", string(topic)),
		attribute.String("outcome", outcome),
	))
}
