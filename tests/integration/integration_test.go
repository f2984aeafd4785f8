//go:build integration

package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/app"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	apiURL = "http://localhost:8080"
	mcpURL = "http://localhost:8090"
)

var (
	db       *sql.DB
	provider *fakeProvider

	pixelStudio = uuid.MustParse("0b6f8f8e-2a57-4e7a-9d0c-4b8d9a3a0001")
	sketchForge = uuid.MustParse("0b6f8f8e-2a57-4e7a-9d0c-4b8d9a3a0002")
	codeBuddy   = uuid.MustParse("0b6f8f8e-2a57-4e7a-9d0c-4b8d9a3a0003")
	essayPrompt = uuid.MustParse("0b6f8f8e-2a57-4e7a-9d0c-4b8d9a3a0004")
)

func TestMain(m *testing.M) {
	provider = newFakeProvider()
	defer provider.Close()

	directoryApp := app.NewDirectoryApp(
		&initEnvVars{
			envVars: map[string]string{
				"VAULT_ADDR":             "http://localhost:8200",
				"VAULT_TOKEN":            "root-token",
				"VAULT_MOUNT_PATH":       "secret",
				"VAULT_SECRET_PATH":      "ai-directory",
				"DB_HOST":                "localhost",
				"DB_PORT":                "5432",
				"DB_NAME":                "directorydb",
				"PUBSUB_EMULATOR_HOST":   "localhost:8681",
				"PUBSUB_PROJECT_ID":      "local-dev",
				"PUBSUB_ENSURE_TOPOLOGY": "true",
				"FETCH_OUTBOX_INTERVAL":  "200ms",
				"USAGE_COUNTER_STORE":    "redis",
				"REDIS_URL":              "redis://localhost:6379/0",
				"DAILY_REQUEST_LIMIT":    "1000",
				"LLM_BASE_URL":           provider.URL(),
				"LLM_EMBEDDING_MODEL":    "text-embedding-3-small",
				"LLM_CHAT_MODEL":         "gpt-4o-mini",
			},
		},
		&InitDockerCompose{},
	)

	cancelCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownCh := directoryApp.RunAsync(cancelCtx)

	err := directoryApp.WaitForReadiness(cancelCtx, 10*time.Minute)
	if err != nil {
		cancel()
		log.Fatalf("Directory app failed to become ready: %v", err)
	}

	db, err = depend.Resolve[*sql.DB]()
	if err != nil {
		cancel()
		log.Fatalf("failed to resolve database: %v", err)
	}
	if err := seedContent(cancelCtx, db); err != nil {
		cancel()
		log.Fatalf("failed to seed content: %v", err)
	}

	// Run tests
	code := m.Run()

	// Shutdown the app
	cancel()

	select {
	case <-time.After(1 * time.Minute):
		log.Fatalf("Directory app did not shut down in time")
	case err = <-shutdownCh:
		if err != nil {
			log.Fatalf("Directory app shutdown with error: %v", err)
		} else {
			log.Printf("Directory app shut down gracefully")
		}
	}

	os.Exit(code)
}

type seedRow struct {
	table    string
	id       uuid.UUID
	category string
	content  string
}

func seedContent(ctx context.Context, db *sql.DB) error {
	rows := []seedRow{
		{
			table:    "tools",
			id:       pixelStudio,
			category: "design",
			content:  `{"en":{"name":"Pixel Studio","tag":"Images from sketches","description":"Generate images and illustrations from rough sketches"},"ar":{"name":"بكسل ستوديو"}}`,
		},
		{
			table:    "tools",
			id:       sketchForge,
			category: "design",
			content:  `{"en":{"name":"Sketch Forge","tag":"Images from sketches","description":"Generate images and illustrations from rough sketches"}}`,
		},
		{
			table:    "tools",
			id:       codeBuddy,
			category: "development",
			content:  `{"en":{"name":"Code Buddy","tag":"Pair programming","description":"Review pull requests and explain compiler errors"}}`,
		},
		{
			table:    "prompts",
			id:       essayPrompt,
			category: "writing",
			content:  `{"en":{"title":"Essay Outline","text":"Outline a persuasive essay with an introduction and three arguments"}}`,
		},
	}
	for _, r := range rows {
		_, err := db.ExecContext(ctx,
			fmt.Sprintf(`INSERT INTO %s (id, category, content) VALUES ($1, $2, $3::jsonb) ON CONFLICT (id) DO NOTHING`, r.table),
			r.id, r.category, r.content,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func postJSON(t *testing.T, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequestWithContext(t.Context(), http.MethodPost, apiURL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() }) //nolint:errcheck
	return resp
}

func getJSON(t *testing.T, path string) *http.Response {
	t.Helper()
	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, apiURL+path, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() }) //nolint:errcheck
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

type itemResp struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Similarity *float64  `json:"similarity"`
}

type listResp struct {
	Source string     `json:"source"`
	Items  []itemResp `json:"items"`
}

func TestDirectory_RestAPI(t *testing.T) {
	t.Run("recommendations-before-embeddings-fall-back-to-category", func(t *testing.T) {
		resp := getJSON(t, fmt.Sprintf("/api/v1/tools/%s/recommendations?limit=5", codeBuddy))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decode[listResp](t, resp)
		assert.Equal(t, "empty", body.Source)
		assert.Empty(t, body.Items)
	})

	t.Run("store-embeddings", func(t *testing.T) {
		for _, id := range []uuid.UUID{pixelStudio, sketchForge, codeBuddy} {
			resp := postJSON(t, fmt.Sprintf("/api/v1/tools/%s/embedding", id), nil)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			body := decode[map[string]bool](t, resp)
			assert.True(t, body["stored"], "expected embedding of %s to be stored", id)
		}
	})

	t.Run("recommendations-by-similarity", func(t *testing.T) {
		resp := getJSON(t, fmt.Sprintf("/api/v1/tools/%s/recommendations?limit=2", pixelStudio))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decode[listResp](t, resp)
		assert.Equal(t, "similarity", body.Source)
		require.NotEmpty(t, body.Items)
		assert.Equal(t, sketchForge, body.Items[0].ID)
		for _, item := range body.Items {
			assert.NotEqual(t, pixelStudio, item.ID, "source record must not recommend itself")
		}
	})

	t.Run("find-similar-by-embedding", func(t *testing.T) {
		resp := postJSON(t, "/api/v1/tools/similar", map[string]any{
			"embedding": fakeEmbedding("generate images from rough sketches"),
			"limit":     3,
			"threshold": 0.1,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decode[listResp](t, resp)
		require.NotEmpty(t, body.Items)
		assert.Equal(t, sketchForge, body.Items[0].ID)
		for i := 1; i < len(body.Items); i++ {
			assert.GreaterOrEqual(t, *body.Items[i-1].Similarity, *body.Items[i].Similarity)
		}
	})

	t.Run("unknown-record", func(t *testing.T) {
		resp := getJSON(t, fmt.Sprintf("/api/v1/tools/%s/recommendations", uuid.New()))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("refresh-embedding-through-outbox", func(t *testing.T) {
		resp := postJSON(t, fmt.Sprintf("/api/v1/prompts/%s/embedding:refresh", essayPrompt), nil)
		require.Equal(t, http.StatusAccepted, resp.StatusCode)

		require.Eventually(t, func() bool {
			var stored bool
			err := db.QueryRowContext(t.Context(),
				`SELECT embedding IS NOT NULL FROM prompts WHERE id = $1`, essayPrompt,
			).Scan(&stored)
			return err == nil && stored
		}, 2*time.Minute, 500*time.Millisecond, "expected the subscriber to store the prompt embedding")
	})

	t.Run("draft-description", func(t *testing.T) {
		resp := postJSON(t, fmt.Sprintf("/api/v1/tools/%s/description:draft", pixelStudio), map[string]string{"lang": "en"})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decode[map[string]string](t, resp)
		assert.Equal(t, draftText, body["description"])
	})
}

func TestDirectory_MCP(t *testing.T) {
	client := mcp.NewClient(&mcp.Implementation{Name: "integration-test", Version: "1.0.0"}, nil)
	session, err := client.Connect(t.Context(), &mcp.StreamableClientTransport{Endpoint: mcpURL}, nil)
	require.NoError(t, err)
	defer session.Close() //nolint:errcheck

	tests := map[string]struct {
		tool     string
		args     map[string]any
		expectID uuid.UUID
	}{
		"recommend-content": {
			tool:     "recommend_content",
			args:     map[string]any{"kind": "tool", "id": sketchForge.String(), "limit": 2},
			expectID: pixelStudio,
		},
		"find-similar-content": {
			tool:     "find_similar_content",
			args:     map[string]any{"kind": "tool", "text": "review pull requests and compiler errors"},
			expectID: codeBuddy,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			result, err := session.CallTool(t.Context(), &mcp.CallToolParams{Name: tt.tool, Arguments: tt.args})
			require.NoError(t, err)
			require.False(t, result.IsError)
			require.Len(t, result.Content, 1)

			text, ok := result.Content[0].(*mcp.TextContent)
			require.True(t, ok)

			var body listResp
			require.NoError(t, json.Unmarshal([]byte(text.Text), &body))
			require.NotEmpty(t, body.Items)
			assert.Equal(t, tt.expectID, body.Items[0].ID)
		})
	}
}
