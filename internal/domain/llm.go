package domain

import "context"

// LLMRole is the author of a message in a text generation request.
type LLMRole string

const (
	LLMRole_System    LLMRole = "system"
	LLMRole_User      LLMRole = "user"
	LLMRole_Assistant LLMRole = "assistant"
)

// LLMMessage is a message sent to the provider.
type LLMMessage struct {
	Role    LLMRole
	Content string
}

// LLMUsage contains token usage information
type LLMUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// EmbeddingVector is the provider response to an embedding request.
type EmbeddingVector struct {
	Vector []float64
	Usage  LLMUsage
}

// TextGenerationRequest represents a request for generated text.
type TextGenerationRequest struct {
	Model    string
	Messages []LLMMessage
	// Optional parameters
	Temperature *float64
	MaxTokens   *int
}

// TextGeneration is the generated text and its token usage.
type TextGeneration struct {
	Content string
	Usage   LLMUsage
}

// LLMProvider is the transport to an OpenAI-compatible provider.
// Failures are reported as *ProviderErr.
type LLMProvider interface {
	// Embed returns the embedding of input computed by model.
	Embed(ctx context.Context, model, input string) (EmbeddingVector, error)
	// Generate returns the completion of the given messages.
	Generate(ctx context.Context, req TextGenerationRequest) (TextGeneration, error)
}
