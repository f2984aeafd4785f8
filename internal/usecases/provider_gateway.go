package usecases

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/common"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultTemperature is the sampling temperature used when none is requested.
	DefaultTemperature = 0.7
	// DefaultMaxTokens is the completion size used when none is requested.
	DefaultMaxTokens = 1024
)

// GenerateContentOptions tunes a text generation request.
type GenerateContentOptions struct {
	Model        string
	SystemPrompt string
	Temperature  *float64
	MaxTokens    *int
}

// ProviderGateway is the single entry point to the LLM provider. It enforces
// request quotas and spacing before any network call.
type ProviderGateway interface {
	// GenerateEmbedding returns the embedding vector of text.
	GenerateEmbedding(ctx context.Context, text string) ([]float64, error)
	// GenerateContent returns the provider completion for prompt.
	GenerateContent(ctx context.Context, prompt string, opts GenerateContentOptions) (string, error)
}

// ProviderGatewayConfig holds the tunables of ProviderGatewayImpl.
type ProviderGatewayConfig struct {
	Quota          domain.QuotaPolicy
	EmbeddingModel string
	ChatModel      string
	Timeout        time.Duration
	// CacheSize is the number of embeddings kept in memory; zero disables caching.
	CacheSize int
}

// ProviderGatewayImpl is the implementation of the ProviderGateway use case.
type ProviderGatewayImpl struct {
	provider     domain.LLMProvider
	throttle     domain.RequestThrottle
	usage        domain.UsageCounterStore
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
	cfg          ProviderGatewayConfig
	cache        *lru.Cache[string, []float64]
	group        *singleflight.Group
}

// NewProviderGatewayImpl creates a new instance of ProviderGatewayImpl.
func NewProviderGatewayImpl(
	p domain.LLMProvider,
	th domain.RequestThrottle,
	u domain.UsageCounterStore,
	tp domain.CurrentTimeProvider,
	l *log.Logger,
	cfg ProviderGatewayConfig,
) (ProviderGatewayImpl, error) {
	g := ProviderGatewayImpl{
		provider:     p,
		throttle:     th,
		usage:        u,
		timeProvider: tp,
		logger:       l,
		cfg:          cfg,
		group:        &singleflight.Group{},
	}

	if cfg.CacheSize > 0 {
		cache, err := lru.New[string, []float64](cfg.CacheSize)
		if err != nil {
			return ProviderGatewayImpl{}, fmt.Errorf("failed to create embedding cache: %w", err)
		}
		g.cache = cache
	}

	return g, nil
}

// GenerateEmbedding returns the embedding vector of text.
func (g ProviderGatewayImpl) GenerateEmbedding(ctx context.Context, text string) ([]float64, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	text = strings.TrimSpace(text)
	if text == "" {
		err := domain.NewValidationErr("text to embed cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	if g.cache == nil {
		vector, err := g.embed(spanCtx, text)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		return vector, nil
	}

	if cached, ok := g.cache.Get(text); ok {
		span.SetAttributes(attribute.Bool("cache_hit", true))
		return slices.Clone(cached), nil
	}

	// the call is shared by every waiter on text, so it must not end when the first caller leaves
	sharedCtx := context.WithoutCancel(spanCtx)
	resCh := g.group.DoChan(text, func() (any, error) {
		vector, err := g.embed(sharedCtx, text)
		if err != nil {
			return nil, err
		}
		g.cache.Add(text, vector)
		return vector, nil
	})

	select {
	case res := <-resCh:
		if telemetry.RecordErrorAndStatus(span, res.Err) {
			return nil, res.Err
		}
		return slices.Clone(res.Val.([]float64)), nil
	case <-spanCtx.Done():
		err := toProviderErr(spanCtx, spanCtx.Err())
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}
}

// GenerateContent returns the provider completion for prompt.
func (g ProviderGatewayImpl) GenerateContent(ctx context.Context, prompt string, opts GenerateContentOptions) (string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	req, err := g.buildTextGenerationRequest(prompt, opts)
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}
	span.SetAttributes(attribute.String("model", req.Model))

	var resp domain.TextGeneration
	err = g.call(spanCtx, "generation", func(callCtx context.Context) error {
		var err error
		resp, err = g.provider.Generate(callCtx, req)
		if err != nil {
			return err
		}
		if strings.TrimSpace(resp.Content) == "" {
			return domain.NewProviderErr(domain.ProviderErrorKind_InvalidResponse, "completion has no content", nil)
		}
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}

	RecordLLMTokensUsed(spanCtx, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	return resp.Content, nil
}

func (g ProviderGatewayImpl) buildTextGenerationRequest(prompt string, opts GenerateContentOptions) (domain.TextGenerationRequest, error) {
	if strings.TrimSpace(prompt) == "" {
		return domain.TextGenerationRequest{}, domain.NewValidationErr("prompt cannot be empty")
	}

	req := domain.TextGenerationRequest{
		Model:       g.cfg.ChatModel,
		Temperature: common.Ptr(DefaultTemperature),
		MaxTokens:   common.Ptr(DefaultMaxTokens),
	}
	if opts.Model != "" {
		req.Model = opts.Model
	}
	if opts.Temperature != nil {
		if *opts.Temperature < 0 || *opts.Temperature > 2 {
			return domain.TextGenerationRequest{}, domain.NewValidationErr("temperature must be between 0 and 2")
		}
		req.Temperature = opts.Temperature
	}
	if opts.MaxTokens != nil {
		if *opts.MaxTokens <= 0 {
			return domain.TextGenerationRequest{}, domain.NewValidationErr("max_tokens must be greater than 0")
		}
		req.MaxTokens = opts.MaxTokens
	}

	if system := strings.TrimSpace(opts.SystemPrompt); system != "" {
		req.Messages = append(req.Messages, domain.LLMMessage{Role: domain.LLMRole_System, Content: system})
	}
	req.Messages = append(req.Messages, domain.LLMMessage{Role: domain.LLMRole_User, Content: prompt})

	return req, nil
}

func (g ProviderGatewayImpl) embed(ctx context.Context, text string) ([]float64, error) {
	var resp domain.EmbeddingVector
	err := g.call(ctx, "embedding", func(callCtx context.Context) error {
		var err error
		resp, err = g.provider.Embed(callCtx, g.cfg.EmbeddingModel, text)
		if err != nil {
			return err
		}
		if !common.IsValidEmbedding(resp.Vector) {
			return domain.NewProviderErr(domain.ProviderErrorKind_InvalidResponse, "embedding response has no usable vector", nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	RecordLLMTokensEmbedding(ctx, resp.Usage.TotalTokens)
	return resp.Vector, nil
}

// call runs fn under the quota, throttle and timeout rules. Usage counters
// are incremented only when fn succeeds.
func (g ProviderGatewayImpl) call(ctx context.Context, operation string, fn func(context.Context) error) error {
	if err := g.checkQuota(ctx); err != nil {
		RecordProviderRequest(ctx, operation, err)
		return err
	}

	if err := g.throttle.Wait(ctx); err != nil {
		err = domain.NewProviderErr(domain.ProviderErrorKind_NetworkError, "request canceled while throttled", err)
		RecordProviderRequest(ctx, operation, err)
		return err
	}

	callCtx := ctx
	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
	}

	if err := fn(callCtx); err != nil {
		err = toProviderErr(callCtx, err)
		RecordProviderRequest(ctx, operation, err)
		return err
	}

	RecordProviderRequest(ctx, operation, nil)
	g.recordUsage(ctx)
	return nil
}

func (g ProviderGatewayImpl) checkQuota(ctx context.Context) error {
	now := g.timeProvider.Now()
	limits := []struct {
		period string
		key    string
		limit  int
	}{
		{period: "daily", key: domain.DailyUsageKey(now), limit: g.cfg.Quota.Daily},
		{period: "monthly", key: domain.MonthlyUsageKey(now), limit: g.cfg.Quota.Monthly},
	}

	for _, l := range limits {
		if l.limit <= 0 {
			continue
		}
		count, err := g.usage.Get(ctx, l.key)
		if err != nil {
			return fmt.Errorf("failed to read %s usage counter: %w", l.period, err)
		}
		if count >= l.limit {
			return domain.NewProviderErr(
				domain.ProviderErrorKind_QuotaExceeded,
				fmt.Sprintf("%s request limit of %d reached", l.period, l.limit),
				nil,
			)
		}
	}
	return nil
}

func (g ProviderGatewayImpl) recordUsage(ctx context.Context) {
	now := g.timeProvider.Now()
	for _, key := range []string{domain.DailyUsageKey(now), domain.MonthlyUsageKey(now)} {
		if err := g.usage.Increment(ctx, key); err != nil {
			g.logger.Printf("ProviderGateway: failed to increment usage counter %s: %v", key, err)
		}
	}
}

// toProviderErr makes sure every transport failure surfaces as a ProviderErr.
func toProviderErr(callCtx context.Context, err error) error {
	var pe *domain.ProviderErr
	if errors.As(err, &pe) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
		return domain.NewProviderErr(domain.ProviderErrorKind_NetworkError, "provider request timed out", err)
	}
	if errors.Is(err, context.Canceled) {
		return domain.NewProviderErr(domain.ProviderErrorKind_NetworkError, "provider request canceled", err)
	}
	return domain.NewProviderErr(domain.ProviderErrorKind_Unknown, "provider request failed", err)
}

// InitProviderGateway initializes the ProviderGateway use case.
type InitProviderGateway struct {
	Provider       domain.LLMProvider         `resolve:""`
	Throttle       domain.RequestThrottle     `resolve:""`
	UsageStore     domain.UsageCounterStore   `resolve:""`
	TimeProvider   domain.CurrentTimeProvider `resolve:""`
	Logger         *log.Logger                `resolve:""`
	EmbeddingModel string                     `config:"LLM_EMBEDDING_MODEL" default:"text-embedding-3-small"`
	ChatModel      string                     `config:"LLM_CHAT_MODEL" default:"gpt-4o-mini"`
	DailyLimit     int                        `config:"DAILY_REQUEST_LIMIT" default:"0"`
	MonthlyLimit   int                        `config:"MONTHLY_REQUEST_LIMIT" default:"0"`
	Timeout        time.Duration              `config:"LLM_REQUEST_TIMEOUT" default:"30s"`
	CacheSize      int                        `config:"EMBEDDING_CACHE_SIZE" default:"1024"`
}

// Initialize registers the ProviderGateway use case in the dependency container.
func (i InitProviderGateway) Initialize(ctx context.Context) (context.Context, error) {
	gateway, err := NewProviderGatewayImpl(
		i.Provider,
		i.Throttle,
		i.UsageStore,
		i.TimeProvider,
		i.Logger,
		ProviderGatewayConfig{
			Quota: domain.QuotaPolicy{
				Daily:   i.DailyLimit,
				Monthly: i.MonthlyLimit,
			},
			EmbeddingModel: i.EmbeddingModel,
			ChatModel:      i.ChatModel,
			Timeout:        i.Timeout,
			CacheSize:      i.CacheSize,
		},
	)
	if err != nil {
		return ctx, err
	}

	depend.Register[ProviderGateway](gateway)
	return ctx, nil
}
