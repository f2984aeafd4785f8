package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/common"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/telemetry"
	openaisdk "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/packages/param"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// OpenAIProvider implements domain.LLMProvider with the official OpenAI SDK.
type OpenAIProvider struct {
	sdk openaisdk.Client
}

// NewOpenAIProvider creates a provider for baseURL (without the /v1 suffix).
// Retries are left to httpClient.
func NewOpenAIProvider(baseURL, apiKey string, httpClient *http.Client) OpenAIProvider {
	return OpenAIProvider{
		sdk: openaisdk.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(strings.TrimRight(baseURL, "/")+"/v1/"),
			option.WithHTTPClient(httpClient),
			option.WithMaxRetries(0),
		),
	}
}

// Embed implements domain.LLMProvider.Embed
func (p OpenAIProvider) Embed(ctx context.Context, model, input string) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.String("llm.model", model)))
	defer span.End()

	resp, err := p.sdk.Embeddings.New(spanCtx, openaisdk.EmbeddingNewParams{
		Input: openaisdk.EmbeddingNewParamsInputUnion{
			OfString: param.NewOpt(input),
		},
		Model: openaisdk.EmbeddingModel(model),
	})
	if err != nil {
		err = classifySDKError(err)
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
			PromptTokens: int(resp.Usage.PromptTokens),
			TotalTokens:  int(resp.Usage.TotalTokens),
		},
	}, nil
}

// Generate implements domain.LLMProvider.Generate
func (p OpenAIProvider) Generate(ctx context.Context, req domain.TextGenerationRequest) (domain.TextGeneration, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.String("llm.model", req.Model)))
	defer span.End()

	params := openaisdk.ChatCompletionNewParams{
		Model:    openaisdk.ChatModel(req.Model),
		Messages: make([]openaisdk.ChatCompletionMessageParamUnion, 0, len(req.Messages)),
	}
	if req.Temperature != nil {
		params.Temperature = param.NewOpt(*req.Temperature)
	}
	if req.MaxTokens != nil {
		params.MaxTokens = param.NewOpt(int64(*req.MaxTokens))
	}
	for _, msg := range req.Messages {
		switch msg.Role {
		case domain.LLMRole_System:
			params.Messages = append(params.Messages, openaisdk.SystemMessage(msg.Content))
		case domain.LLMRole_Assistant:
			params.Messages = append(params.Messages, openaisdk.AssistantMessage(msg.Content))
		default:
			params.Messages = append(params.Messages, openaisdk.UserMessage(msg.Content))
		}
	}

	resp, err := p.sdk.Chat.Completions.New(spanCtx, params)
	if err != nil {
		err = classifySDKError(err)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.TextGeneration{}, err
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		err := domain.NewProviderErr(domain.ProviderErrorKind_InvalidResponse, "no choices in response", nil)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.TextGeneration{}, err
	}

	return domain.TextGeneration{
		Content: resp.Choices[0].Message.Content,
		Usage: domain.LLMUsage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		},
	}, nil
}

// classifySDKError maps SDK failures onto the same taxonomy as the compat client.
func classifySDKError(err error) error {
	var sdkErr *openaisdk.Error
	if errors.As(err, &sdkErr) {
		return newStatusErr(sdkErr.StatusCode, sdkErr.Code, sdkErr.Type, sdkErr.Message, err)
	}
	return classifyProviderError(err)
}
