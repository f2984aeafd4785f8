// Package app composes the AI directory service from its initializers and hosted runnables.
package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/adapters/inbound/mcp"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/adapters/outbound/llm"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/adapters/outbound/pubsub"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/adapters/outbound/usagecounter"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/usecases"
)

// coreInitializers registers the adapters and use cases shared by the service and the batch tools.
func coreInitializers() []symbiont.Initializer {
	return []symbiont.Initializer{
		&log.InitLogger{},
		&telemetry.InitOpenTelemetry{},
		&telemetry.InitHttpClient{},
		&config.InitVaultProvider{},
		&postgres.InitDB{},
		&postgres.InitContentRepository{},
		&postgres.InitSimilarityRanker{},
		&usagecounter.InitUsageCounterStore{},
		&time.InitCurrentTimeProvider{},
		&llm.InitLLMProvider{},
		&llm.InitRequestThrottle{},

		&usecases.InitProviderGateway{},
		&usecases.InitStoreEmbedding{},
		&usecases.InitBackfillEmbeddings{},
	}
}

// NewDirectoryApp creates the AI directory service: REST and MCP APIs, the
// outbox relay and the embedding refresh workers.
func NewDirectoryApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(coreInitializers()...).
		Initialize(
			&postgres.InitUnitOfWork{},
			&postgres.InitOutboxRepository{},
			&pubsub.InitClient{},
			&pubsub.InitPublisher{},

			&usecases.InitFindSimilarItems{},
			&usecases.InitRecommendContent{},
			&usecases.InitDraftDescription{},
			&usecases.InitRefreshEmbedding{},
			&usecases.InitRequestEmbeddingRefresh{},
			&usecases.InitRelayOutbox{},
		).
		Host(
			&http.DirectoryServer{},
			&mcp.DirectoryMCPServer{},
			&workers.MessageRelay{},
			&workers.EmbeddingRefreshSubscriber{},
			&workers.EmbeddingBackfiller{},
		).
		Introspect(&MermaidGraphIntrospector{})
}

// NewBackfillApp creates a one-shot app that embeds every record of the
// requested kinds and exits.
func NewBackfillApp(runner symbiont.Runnable, initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(coreInitializers()...).
		Host(runner)
}
