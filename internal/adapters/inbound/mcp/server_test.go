package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/common"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/usecases"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/usecases/mocks"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	itemID    = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	relatedID = uuid.MustParse("00000000-0000-0000-0000-000000000002")
)

var related = domain.ScoredRecord{
	Record: domain.ContentRecord{
		ID:       relatedID,
		Kind:     domain.ContentKind_Prompt,
		Category: "writing",
		Localized: map[string]domain.LocalizedContent{
			domain.Language_AR: {Name: "مساعد المقالات"},
		},
	},
	Similarity: 0.83,
}

type serverMocks struct {
	recommend *mocks.MockRecommendContent
	find      *mocks.MockFindSimilarItems
	gateway   *mocks.MockProviderGateway
}

func connect(t *testing.T, s DirectoryMCPServer) *mcp.ClientSession {
	t.Helper()

	ctx := context.Background()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serverSession, err := s.NewServer().Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { serverSession.Close() }) //nolint:errcheck

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() }) //nolint:errcheck

	return session
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestDirectoryMCPServer_ListTools(t *testing.T) {
	session := connect(t, DirectoryMCPServer{Logger: log.New(io.Discard, "", 0)})

	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"recommend_content", "find_similar_content"}, names)
}

func TestDirectoryMCPServer_RecommendContent(t *testing.T) {
	tests := map[string]struct {
		args            map[string]any
		setExpectations func(m serverMocks)
		expectedIsError bool
		expectedText    string
	}{
		"category-fallback": {
			args: map[string]any{"kind": "prompt", "id": itemID.String(), "limit": 2, "lang": "ar"},
			setExpectations: func(m serverMocks) {
				m.recommend.EXPECT().
					RecommendByID(mock.Anything, domain.ContentKind_Prompt, itemID, usecases.RecommendOptions{Limit: 2, Language: "ar"}).
					Return(domain.RecommendationOutcome{
						Source: domain.RecommendationSource_CategoryFallback,
						Items:  []domain.ScoredRecord{related},
					}, nil).
					Once()
			},
			expectedText: `{"source":"category_fallback","items":[{"id":"00000000-0000-0000-0000-000000000002","name":"مساعد المقالات","category":"writing","similarity":0.83}]}`,
		},
		"not-found": {
			args: map[string]any{"kind": "tool", "id": itemID.String()},
			setExpectations: func(m serverMocks) {
				m.recommend.EXPECT().
					RecommendByID(mock.Anything, domain.ContentKind_Tool, itemID, usecases.RecommendOptions{}).
					Return(domain.RecommendationOutcome{}, domain.NewNotFoundErr("tool 00000000-0000-0000-0000-000000000001 not found")).
					Once()
			},
			expectedIsError: true,
			expectedText:    "tool 00000000-0000-0000-0000-000000000001 not found",
		},
		"invalid-id": {
			args:            map[string]any{"kind": "tool", "id": "abc"},
			expectedIsError: true,
			expectedText:    "invalid id: abc",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := serverMocks{recommend: mocks.NewMockRecommendContent(t)}
			if tt.setExpectations != nil {
				tt.setExpectations(m)
			}
			session := connect(t, DirectoryMCPServer{
				Logger:                  log.New(io.Discard, "", 0),
				RecommendContentUseCase: m.recommend,
			})

			result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
				Name:      "recommend_content",
				Arguments: tt.args,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.expectedIsError, result.IsError)
			if tt.expectedIsError {
				assert.Equal(t, tt.expectedText, resultText(t, result))
				return
			}
			assert.JSONEq(t, tt.expectedText, resultText(t, result))
		})
	}
}

func TestDirectoryMCPServer_FindSimilarContent(t *testing.T) {
	vector := []float64{0.3, 0.7}

	tests := map[string]struct {
		args            map[string]any
		setExpectations func(m serverMocks)
		expectedIsError bool
		expectedText    string
	}{
		"relaxed-threshold-by-default": {
			args: map[string]any{"kind": "prompt", "text": "help me write essays"},
			setExpectations: func(m serverMocks) {
				m.gateway.EXPECT().GenerateEmbedding(mock.Anything, "help me write essays").Return(vector, nil).Once()
				m.find.EXPECT().
					Query(mock.Anything, vector, domain.ContentKind_Prompt, usecases.SimilarityOptions{
						Threshold: common.Ptr(usecases.RelaxedSimilarityThreshold),
					}).
					Return([]domain.ScoredRecord{related}, nil).
					Once()
			},
			expectedText: `{"items":[{"id":"00000000-0000-0000-0000-000000000002","name":"مساعد المقالات","category":"writing","similarity":0.83}]}`,
		},
		"explicit-threshold-and-limit": {
			args: map[string]any{"kind": "tool", "text": "logo maker", "limit": 3, "threshold": 0.8},
			setExpectations: func(m serverMocks) {
				m.gateway.EXPECT().GenerateEmbedding(mock.Anything, "logo maker").Return(vector, nil).Once()
				m.find.EXPECT().
					Query(mock.Anything, vector, domain.ContentKind_Tool, usecases.SimilarityOptions{
						Limit:     3,
						Threshold: common.Ptr(0.8),
					}).
					Return(nil, nil).
					Once()
			},
			expectedText: `{"items":[]}`,
		},
		"quota-exceeded-returns-guidance": {
			args: map[string]any{"kind": "tool", "text": "logo maker"},
			setExpectations: func(m serverMocks) {
				m.gateway.EXPECT().GenerateEmbedding(mock.Anything, "logo maker").
					Return(nil, domain.NewProviderErr(domain.ProviderErrorKind_QuotaExceeded, "daily limit reached", nil)).
					Once()
			},
			expectedIsError: true,
			expectedText:    domain.ProviderErrorGuidance(domain.ProviderErrorKind_QuotaExceeded),
		},
		"search-failure-is-opaque": {
			args: map[string]any{"kind": "tool", "text": "logo maker"},
			setExpectations: func(m serverMocks) {
				m.gateway.EXPECT().GenerateEmbedding(mock.Anything, "logo maker").Return(vector, nil).Once()
				m.find.EXPECT().Query(mock.Anything, vector, domain.ContentKind_Tool, mock.Anything).
					Return(nil, errors.New("pq: connection refused")).
					Once()
			},
			expectedIsError: true,
			expectedText:    "internal error",
		},
		"unknown-kind": {
			args:            map[string]any{"kind": "video", "text": "logo maker"},
			expectedIsError: true,
			expectedText:    "unknown content kind: video",
		},
		"blank-text": {
			args:            map[string]any{"kind": "tool", "text": "   "},
			expectedIsError: true,
			expectedText:    "text is required",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := serverMocks{
				find:    mocks.NewMockFindSimilarItems(t),
				gateway: mocks.NewMockProviderGateway(t),
			}
			if tt.setExpectations != nil {
				tt.setExpectations(m)
			}
			session := connect(t, DirectoryMCPServer{
				Logger:                  log.New(io.Discard, "", 0),
				FindSimilarItemsUseCase: m.find,
				ProviderGateway:         m.gateway,
			})

			result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
				Name:      "find_similar_content",
				Arguments: tt.args,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.expectedIsError, result.IsError)
			if tt.expectedIsError {
				assert.Equal(t, tt.expectedText, resultText(t, result))
				return
			}
			assert.JSONEq(t, tt.expectedText, resultText(t, result))
		})
	}
}

func TestDirectoryMCPServer_StreamableHTTP(t *testing.T) {
	recommend := mocks.NewMockRecommendContent(t)
	recommend.EXPECT().
		RecommendByID(mock.Anything, domain.ContentKind_Tool, itemID, usecases.RecommendOptions{}).
		Return(domain.EmptyRecommendation(), nil).
		Once()

	srv := httptest.NewServer(DirectoryMCPServer{
		Logger:                  log.New(io.Discard, "", 0),
		RecommendContentUseCase: recommend,
	}.Handler())
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: srv.URL}, nil)
	require.NoError(t, err)
	defer session.Close() //nolint:errcheck

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "recommend_content",
		Arguments: map[string]any{"kind": "tool", "id": itemID.String()},
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var got toolResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &got))
	assert.Equal(t, toolResult{Source: "empty", Items: []toolItem{}}, got)
}

func TestDirectoryMCPServer_RunAndIsReady(t *testing.T) {
	l, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	s := DirectoryMCPServer{Port: port, Logger: log.New(io.Discard, "", 0)}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Run(ctx)
	}()

	assert.Eventually(t, func() bool {
		return s.IsReady(context.Background()) == nil
	}, 5*time.Second, 20*time.Millisecond, fmt.Sprintf("port %d never opened", port))

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
}
