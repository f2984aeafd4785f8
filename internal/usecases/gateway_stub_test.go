package usecases

import (
	"context"
	"sync"
)

// gatewayStub is a ProviderGateway whose behavior is set per test. Calls are
// recorded so tests can assert how often the provider would have been hit.
type gatewayStub struct {
	embed    func(ctx context.Context, text string) ([]float64, error)
	generate func(ctx context.Context, prompt string, opts GenerateContentOptions) (string, error)

	mu          sync.Mutex
	embedInputs []string
	prompts     []string
	options     []GenerateContentOptions
}

func (g *gatewayStub) GenerateEmbedding(ctx context.Context, text string) ([]float64, error) {
	g.mu.Lock()
	g.embedInputs = append(g.embedInputs, text)
	g.mu.Unlock()

	if g.embed == nil {
		panic("unexpected GenerateEmbedding call")
	}
	return g.embed(ctx, text)
}

func (g *gatewayStub) GenerateContent(ctx context.Context, prompt string, opts GenerateContentOptions) (string, error) {
	g.mu.Lock()
	g.prompts = append(g.prompts, prompt)
	g.options = append(g.options, opts)
	g.mu.Unlock()

	if g.generate == nil {
		panic("unexpected GenerateContent call")
	}
	return g.generate(ctx, prompt, opts)
}

func (g *gatewayStub) embedCalls() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.embedInputs...)
}

func fixedEmbedding(vector []float64) func(context.Context, string) ([]float64, error) {
	return func(context.Context, string) ([]float64, error) {
		return vector, nil
	}
}

func failingEmbedding(err error) func(context.Context, string) ([]float64, error) {
	return func(context.Context, string) ([]float64, error) {
		return nil, err
	}
}
