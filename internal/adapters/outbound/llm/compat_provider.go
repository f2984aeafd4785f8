package llm

import (
	"context"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/common"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// CompatProvider adapts APIClient to the domain.LLMProvider interface.
type CompatProvider struct {
	client APIClient
}

// NewCompatProvider creates a new provider
func NewCompatProvider(client APIClient) CompatProvider {
	return CompatProvider{client: client}
}

// Embed implements domain.LLMProvider.Embed
func (p CompatProvider) Embed(ctx context.Context, model, input string) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.String("llm.model", model)))
	defer span.End()

	resp, err := p.client.Embeddings(spanCtx, EmbeddingsRequest{Model: model, Input: input})
	if err != nil {
		err = classifyProviderError(err)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.EmbeddingVector{}, err
	}

	if len(resp.Data) == 0 || !common.IsValidEmbedding(resp.Data[0].Embedding) {
		err := domain.NewProviderErr(domain.ProviderErrorKind_InvalidResponse, "embedding response has no data", nil)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.EmbeddingVector{}, err
	}

	return domain.EmbeddingVector{
		Vector: resp.Data[0].Embedding,
		Usage: domain.LLMUsage{
			PromptTokens: resp.Usage.PromptTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Generate implements domain.LLMProvider.Generate
func (p CompatProvider) Generate(ctx context.Context, req domain.TextGenerationRequest) (domain.TextGeneration, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.String("llm.model", req.Model)))
	defer span.End()

	chatReq := ChatRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]ChatMessage, len(req.Messages)),
	}
	for i, msg := range req.Messages {
		chatReq.Messages[i] = ChatMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
	}

	resp, err := p.client.Chat(spanCtx, chatReq)
	if err != nil {
		err = classifyProviderError(err)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.TextGeneration{}, err
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		err := domain.NewProviderErr(domain.ProviderErrorKind_InvalidResponse, "no choices in response", nil)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.TextGeneration{}, err
	}

	gen := domain.TextGeneration{Content: resp.Choices[0].Message.Content}
	if resp.Usage != nil {
		gen.Usage = domain.LLMUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}
	return gen, nil
}
