// Package http exposes the directory recommendation features as a JSON REST API.
package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/usecases"
	"github.com/rs/cors"
)

// DirectoryServer is the REST API HTTP server of the AI directory.
type DirectoryServer struct {
	Port                           int                              `config:"HTTP_PORT" default:"8080"`
	AllowedOrigins                 string                           `config:"CORS_ALLOWED_ORIGINS" default:"*"`
	Logger                         *log.Logger                      `resolve:""`
	RecommendContentUseCase        usecases.RecommendContent        `resolve:""`
	FindSimilarItemsUseCase        usecases.FindSimilarItems        `resolve:""`
	RefreshEmbeddingUseCase        usecases.RefreshEmbedding        `resolve:""`
	RequestEmbeddingRefreshUseCase usecases.RequestEmbeddingRefresh `resolve:""`
	DraftDescriptionUseCase        usecases.DraftDescription        `resolve:""`
	ProviderGateway                usecases.ProviderGateway         `resolve:""`
}

// Handler builds the routed, instrumented and CORS enabled handler of the API.
func (api DirectoryServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", api.Healthz)
	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("GET /introspect", IntrospectHandler)

	mux.HandleFunc("GET /api/v1/{collection}/{id}/recommendations", api.GetRecommendations)
	mux.HandleFunc("POST /api/v1/{collection}/similar", api.FindSimilar)
	mux.HandleFunc("POST /api/v1/{collection}/{id}/embedding", api.StoreEmbedding)
	mux.HandleFunc("POST /api/v1/{collection}/{id}/embedding:refresh", api.RequestEmbeddingRefresh)
	mux.HandleFunc("POST /api/v1/{collection}/{id}/description:draft", api.DraftDescription)
	mux.HandleFunc("POST /api/v1/content:generate", api.GenerateContent)

	h := telemetry.Middleware("directory-api")(mux)

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.New(cors.Options{
		AllowedOrigins: splitOrigins(api.AllowedOrigins),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}).Handler(h)
}

// Run starts the HTTP server for the DirectoryServer.
func (api DirectoryServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("DirectoryServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("DirectoryServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("DirectoryServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the DirectoryServer is ready by performing a health check.
func (api DirectoryServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://localhost:%d/healthz", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

func (api DirectoryServer) Healthz(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
