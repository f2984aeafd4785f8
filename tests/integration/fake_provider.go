package integration

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/adapters/outbound/llm"
)

// embeddingDimensions matches the vector columns created by the migrations.
const embeddingDimensions = 1536

// draftText is what the fake chat endpoint answers with.
const draftText = "A focused assistant for turning rough sketches into polished images."

// fakeProvider is an OpenAI compatible endpoint that hashes words into a
// fixed vector space, so texts sharing words end up close to each other.
type fakeProvider struct {
	server     *httptest.Server
	embeddings atomic.Int64
	chats      atomic.Int64
}

func newFakeProvider() *fakeProvider {
	p := &fakeProvider{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/embeddings", p.handleEmbeddings)
	mux.HandleFunc("POST /v1/chat/completions", p.handleChat)
	p.server = httptest.NewServer(mux)
	return p
}

func (p *fakeProvider) URL() string {
	return p.server.URL
}

func (p *fakeProvider) Close() {
	p.server.Close()
}

func (p *fakeProvider) handleEmbeddings(w http.ResponseWriter, r *http.Request) {
	var req llm.EmbeddingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	p.embeddings.Add(1)

	writeJSON(w, llm.EmbeddingsResponse{
		Model:  req.Model,
		Object: "list",
		Data: []llm.EmbeddingData{
			{Embedding: fakeEmbedding(req.Input), Index: 0, Object: "embedding"},
		},
	})
}

func (p *fakeProvider) handleChat(w http.ResponseWriter, r *http.Request) {
	var req llm.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	p.chats.Add(1)

	writeJSON(w, llm.ChatResponse{
		ID:     "chatcmpl-integration",
		Object: "chat.completion",
		Model:  req.Model,
		Choices: []llm.Choice{
			{FinishReason: "stop", Message: llm.ChatMessage{Role: "assistant", Content: draftText}},
		},
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// fakeEmbedding is a normalized bag of hashed lowercase words.
func fakeEmbedding(text string) []float64 {
	vec := make([]float64, embeddingDimensions)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,:;!?()\"'")
		if word == "" {
			continue
		}
		sum := sha256.Sum256([]byte(word))
		vec[binary.BigEndian.Uint32(sum[:4])%embeddingDimensions] += 1
	}

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if norm == 0 {
		vec[0] = 1
		return vec
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}
