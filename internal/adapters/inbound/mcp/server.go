// Package mcp exposes directory recommendations as Model Context Protocol tools
// so assistants can suggest related AI tools and prompts.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/usecases"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "ai-directory"
	serverVersion = "1.0.0"
)

// DirectoryMCPServer serves the directory MCP tools over streamable HTTP.
type DirectoryMCPServer struct {
	Port                    int                       `config:"MCP_PORT" default:"8090"`
	Logger                  *log.Logger               `resolve:""`
	RecommendContentUseCase usecases.RecommendContent `resolve:""`
	FindSimilarItemsUseCase usecases.FindSimilarItems `resolve:""`
	ProviderGateway         usecases.ProviderGateway  `resolve:""`
}

// RecommendContentInput defines the input of the recommend_content tool.
type RecommendContentInput struct {
	Kind  string `json:"kind" jsonschema:"Directory section of the item: 'tool' or 'prompt'"`
	ID    string `json:"id" jsonschema:"UUID of the item being viewed"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum number of recommendations. Default: 4"`
	Lang  string `json:"lang,omitempty" jsonschema:"Language of the text used for items without an embedding: 'en' or 'ar'. Default: 'en'"`
}

// FindSimilarContentInput defines the input of the find_similar_content tool.
type FindSimilarContentInput struct {
	Kind      string   `json:"kind" jsonschema:"Directory section to search: 'tool' or 'prompt'"`
	Text      string   `json:"text" jsonschema:"Free text describing what the user is looking for"`
	Limit     int      `json:"limit,omitempty" jsonschema:"Maximum number of matches. Default: 5"`
	Threshold *float64 `json:"threshold,omitempty" jsonschema:"Minimum cosine similarity between -1 and 1. Default: 0.5"`
}

type toolItem struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category,omitempty"`
	Similarity float64 `json:"similarity"`
}

type toolResult struct {
	Source string     `json:"source,omitempty"`
	Items  []toolItem `json:"items"`
}

// NewServer builds the MCP server with the directory tools registered.
func (s DirectoryMCPServer) NewServer() *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "recommend_content",
		Description: "Recommend AI tools or prompts related to a directory item. Uses embedding similarity and falls back to items of the same category.",
	}, s.handleRecommendContent)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_similar_content",
		Description: "Find AI tools or prompts whose meaning is close to a free text query (e.g. 'generate logos from text').",
	}, s.handleFindSimilarContent)

	return server
}

func (s DirectoryMCPServer) handleRecommendContent(ctx context.Context, _ *mcp.CallToolRequest, input RecommendContentInput) (*mcp.CallToolResult, any, error) {
	id, err := uuid.Parse(input.ID)
	if err != nil {
		return errorResult(domain.NewValidationErr("invalid id: " + input.ID)), nil, nil
	}

	outcome, err := s.RecommendContentUseCase.RecommendByID(ctx, domain.ContentKind(input.Kind), id, usecases.RecommendOptions{
		Limit:    input.Limit,
		Language: input.Lang,
	})
	if err != nil {
		s.Logger.Printf("DirectoryMCPServer: recommend_content failed: %v", err)
		return errorResult(err), nil, nil
	}

	return jsonResult(toolResult{
		Source: string(outcome.Source),
		Items:  toToolItems(outcome.Items),
	}), nil, nil
}

func (s DirectoryMCPServer) handleFindSimilarContent(ctx context.Context, _ *mcp.CallToolRequest, input FindSimilarContentInput) (*mcp.CallToolResult, any, error) {
	kind := domain.ContentKind(input.Kind)
	if err := kind.Validate(); err != nil {
		return errorResult(err), nil, nil
	}
	if strings.TrimSpace(input.Text) == "" {
		return errorResult(domain.NewValidationErr("text is required")), nil, nil
	}

	vector, err := s.ProviderGateway.GenerateEmbedding(ctx, input.Text)
	if err != nil {
		s.Logger.Printf("DirectoryMCPServer: find_similar_content embedding failed: %v", err)
		return errorResult(err), nil, nil
	}

	threshold := input.Threshold
	if threshold == nil {
		relaxed := usecases.RelaxedSimilarityThreshold
		threshold = &relaxed
	}

	matches, err := s.FindSimilarItemsUseCase.Query(ctx, vector, kind, usecases.SimilarityOptions{
		Limit:     input.Limit,
		Threshold: threshold,
	})
	if err != nil {
		s.Logger.Printf("DirectoryMCPServer: find_similar_content failed: %v", err)
		return errorResult(err), nil, nil
	}

	return jsonResult(toolResult{Items: toToolItems(matches)}), nil, nil
}

// Handler returns the instrumented streamable HTTP handler serving a single MCP server.
func (s DirectoryMCPServer) Handler() http.Handler {
	server := s.NewServer()
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
	return telemetry.Middleware("directory-mcp")(handler)
}

// Run starts the MCP HTTP server and stops it when ctx is done.
func (s DirectoryMCPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		Addr:              fmt.Sprintf(":%d", s.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Printf("DirectoryMCPServer: Listening on port %d", s.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.Logger.Printf("DirectoryMCPServer: error during shutdown: %v", err)
			return err
		}
		s.Logger.Println("DirectoryMCPServer: stopped")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// IsReady reports whether the MCP port accepts connections.
func (s DirectoryMCPServer) IsReady(ctx context.Context) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", fmt.Sprintf("localhost:%d", s.Port))
	if err != nil {
		return err
	}
	return conn.Close()
}

func toToolItems(records []domain.ScoredRecord) []toolItem {
	items := make([]toolItem, 0, len(records))
	for _, r := range records {
		items = append(items, toolItem{
			ID:         r.Record.ID.String(),
			Name:       r.Record.DisplayName(),
			Category:   r.Record.Category,
			Similarity: r.Similarity,
		})
	}
	return items
}

func jsonResult(v any) *mcp.CallToolResult {
	resultJSON, _ := json.Marshal(v)
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(resultJSON)},
		},
	}
}

// errorResult reports a tool failure to the model. Provider failures carry
// the administrator guidance instead of the raw provider message.
func errorResult(err error) *mcp.CallToolResult {
	text := err.Error()
	if kind, ok := domain.ProviderErrorKindOf(err); ok {
		text = domain.ProviderErrorGuidance(kind)
	} else if !isClientErr(err) {
		text = "internal error"
	}
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func isClientErr(err error) bool {
	var (
		validationErr *domain.ValidationErr
		notFoundErr   *domain.NotFoundErr
	)
	return errors.As(err, &validationErr) || errors.As(err, &notFoundErr)
}
