package llm

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
	"github.com/sony/gobreaker"
)

// BreakerConfig tunes the circuit breaker in front of the provider.
type BreakerConfig struct {
	// ConsecutiveFailures opens the circuit; zero disables the breaker.
	ConsecutiveFailures uint32
	OpenTimeout         time.Duration
}

// BreakerProvider stops calling an unreachable or failing provider for a while.
// Only network and unknown failures count; quota, auth, rate limit and
// response errors are answers from a healthy provider.
type BreakerProvider struct {
	next    domain.LLMProvider
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerProvider wraps next with a circuit breaker.
func NewBreakerProvider(next domain.LLMProvider, cfg BreakerConfig, logger *log.Logger) BreakerProvider {
	return BreakerProvider{
		next: next,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "llm-provider",
			MaxRequests: 1,
			Timeout:     cfg.OpenTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= cfg.ConsecutiveFailures
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Printf("BreakerProvider: circuit %s changed from %s to %s", name, from, to)
			},
			IsSuccessful: countsAsHealthy,
		}),
	}
}

// Embed implements domain.LLMProvider.Embed
func (b BreakerProvider) Embed(ctx context.Context, model, input string) (domain.EmbeddingVector, error) {
	res, err := b.breaker.Execute(func() (any, error) {
		return b.next.Embed(ctx, model, input)
	})
	if err != nil {
		return domain.EmbeddingVector{}, openCircuitErr(err)
	}
	return res.(domain.EmbeddingVector), nil
}

// Generate implements domain.LLMProvider.Generate
func (b BreakerProvider) Generate(ctx context.Context, req domain.TextGenerationRequest) (domain.TextGeneration, error) {
	res, err := b.breaker.Execute(func() (any, error) {
		return b.next.Generate(ctx, req)
	})
	if err != nil {
		return domain.TextGeneration{}, openCircuitErr(err)
	}
	return res.(domain.TextGeneration), nil
}

func countsAsHealthy(err error) bool {
	if err == nil {
		return true
	}
	kind, ok := domain.ProviderErrorKindOf(err)
	if !ok {
		return false
	}
	return kind != domain.ProviderErrorKind_NetworkError && kind != domain.ProviderErrorKind_Unknown
}

func openCircuitErr(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return domain.NewProviderErr(domain.ProviderErrorKind_NetworkError, "provider circuit is open", err)
	}
	return err
}
