package http

import "github.com/google/uuid"

// ErrorCode is the machine readable error category returned by the API.
type ErrorCode string

const (
	ErrorCode_BadRequest      ErrorCode = "BAD_REQUEST"
	ErrorCode_NotFound        ErrorCode = "NOT_FOUND"
	ErrorCode_QuotaExceeded   ErrorCode = "QUOTA_EXCEEDED"
	ErrorCode_RateLimited     ErrorCode = "RATE_LIMITED"
	ErrorCode_AuthError       ErrorCode = "AUTH_ERROR"
	ErrorCode_InvalidResponse ErrorCode = "INVALID_RESPONSE"
	ErrorCode_NetworkError    ErrorCode = "NETWORK_ERROR"
	ErrorCode_ProviderError   ErrorCode = "UNKNOWN_PROVIDER_ERROR"
	ErrorCode_InternalError   ErrorCode = "INTERNAL_ERROR"
)

// Error describes a failed request. Guidance is set for AI provider failures.
type Error struct {
	Code     ErrorCode `json:"code"`
	Message  string    `json:"message"`
	Guidance string    `json:"guidance,omitempty"`
}

// ErrorResp is the body of every non 2xx response.
type ErrorResp struct {
	Error Error `json:"error"`
}

// LocalizedContent is the per-language text of a directory item.
type LocalizedContent struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Tag         string `json:"tag,omitempty"`
}

// ContentItem is a directory record as returned by the API.
type ContentItem struct {
	ID         uuid.UUID                   `json:"id"`
	Kind       string                      `json:"kind"`
	Name       string                      `json:"name"`
	Category   string                      `json:"category,omitempty"`
	Similarity float64                     `json:"similarity"`
	Localized  map[string]LocalizedContent `json:"localized"`
}

// RecommendationsResp lists the recommended items and the strategy that produced them.
type RecommendationsResp struct {
	Source string        `json:"source"`
	Items  []ContentItem `json:"items"`
}

// FindSimilarReq is the body of the similarity search endpoint.
type FindSimilarReq struct {
	Embedding []float64  `json:"embedding"`
	Limit     int        `json:"limit,omitempty"`
	Threshold *float64   `json:"threshold,omitempty"`
	ExcludeID *uuid.UUID `json:"exclude_id,omitempty"`
}

// FindSimilarResp lists the matches of a similarity search, best first.
type FindSimilarResp struct {
	Items []ContentItem `json:"items"`
}

// StoreEmbeddingResp reports whether a new embedding was stored.
type StoreEmbeddingResp struct {
	Stored bool `json:"stored"`
}

// RefreshEmbeddingResp acknowledges a queued embedding refresh.
type RefreshEmbeddingResp struct {
	Status string `json:"status"`
}

// DraftDescriptionReq is the body of the description drafting endpoint.
type DraftDescriptionReq struct {
	Lang string `json:"lang,omitempty"`
}

// DraftDescriptionResp carries the drafted description.
type DraftDescriptionResp struct {
	Description string `json:"description"`
}

// GenerateContentReq is the body of the content generation endpoint.
type GenerateContentReq struct {
	Prompt       string   `json:"prompt"`
	Model        string   `json:"model,omitempty"`
	SystemPrompt string   `json:"system_prompt,omitempty"`
	Temperature  *float64 `json:"temperature,omitempty"`
	MaxTokens    *int     `json:"max_tokens,omitempty"`
}

// GenerateContentResp carries the provider completion.
type GenerateContentResp struct {
	Content string `json:"content"`
}
