package llm

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"golang.org/x/time/rate"
)

// Supported LLM_BACKEND values.
const (
	Backend_Compat = "compat"
	Backend_OpenAI = "openai"
)

// InitLLMProvider initializes the domain.LLMProvider dependency
type InitLLMProvider struct {
	HttpClient          *http.Client  `resolve:""`
	Logger              *log.Logger   `resolve:""`
	Backend             string        `config:"LLM_BACKEND" default:"compat"`
	BaseURL             string        `config:"LLM_BASE_URL" default:"https://api.openai.com"`
	APIKey              string        `config:"LLM_API_KEY"`
	BreakerFailures     int           `config:"LLM_BREAKER_FAILURES" default:"5"`
	BreakerOpenDuration time.Duration `config:"LLM_BREAKER_OPEN_DURATION" default:"30s"`
}

// Initialize registers the LLMProvider
func (i InitLLMProvider) Initialize(ctx context.Context) (context.Context, error) {
	provider, err := newProvider(i.Backend, i.BaseURL, i.APIKey, i.HttpClient)
	if err != nil {
		return ctx, err
	}

	if i.BreakerFailures > 0 {
		provider = NewBreakerProvider(provider, BreakerConfig{
			ConsecutiveFailures: uint32(i.BreakerFailures),
			OpenTimeout:         i.BreakerOpenDuration,
		}, i.Logger)
	}

	depend.Register[domain.LLMProvider](provider)
	return ctx, nil
}

func newProvider(backend, baseURL, apiKey string, httpClient *http.Client) (domain.LLMProvider, error) {
	switch backend {
	case Backend_Compat:
		return NewCompatProvider(NewAPIClient(baseURL, apiKey, httpClient)), nil
	case Backend_OpenAI:
		return NewOpenAIProvider(baseURL, apiKey, httpClient), nil
	}
	return nil, fmt.Errorf("unsupported LLM_BACKEND %q", backend)
}

// InitRequestThrottle initializes the domain.RequestThrottle dependency.
type InitRequestThrottle struct {
	MinInterval time.Duration `config:"LLM_MIN_REQUEST_INTERVAL" default:"100ms"`
}

// Initialize registers the throttle.
func (i InitRequestThrottle) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.RequestThrottle](NewRequestThrottle(i.MinInterval))
	return ctx, nil
}

// NewRequestThrottle returns a limiter letting one request start per interval.
// A non-positive interval disables throttling.
func NewRequestThrottle(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}
