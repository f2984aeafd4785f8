package http

import (
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/usecases"
	"github.com/google/uuid"
)

func (api DirectoryServer) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	kind, id, ok := api.recordPath(w, r)
	if !ok {
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		badRequest(w, "%v", err)
		return
	}

	outcome, err := api.RecommendContentUseCase.RecommendByID(r.Context(), kind, id, usecases.RecommendOptions{
		Limit:    limit,
		Language: r.URL.Query().Get("lang"),
	})
	if err != nil {
		api.Logger.Printf("DirectoryServer: error recommending for %s %s: %v", kind, id, err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, RecommendationsResp{
		Source: string(outcome.Source),
		Items:  toContentItems(outcome.Items),
	})
}

func (api DirectoryServer) FindSimilar(w http.ResponseWriter, r *http.Request) {
	kind, err := collectionKind(r)
	if err != nil {
		notFound(w, err)
		return
	}

	var req FindSimilarReq
	if !decodeJSON(w, r, &req) {
		return
	}

	opts := usecases.SimilarityOptions{
		Limit:     req.Limit,
		Threshold: req.Threshold,
	}
	if req.ExcludeID != nil {
		opts.ExcludeID = *req.ExcludeID
	}

	matches, err := api.FindSimilarItemsUseCase.Query(r.Context(), req.Embedding, kind, opts)
	if err != nil {
		api.Logger.Printf("DirectoryServer: error finding similar %ss: %v", kind, err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, FindSimilarResp{Items: toContentItems(matches)})
}

func (api DirectoryServer) StoreEmbedding(w http.ResponseWriter, r *http.Request) {
	kind, id, ok := api.recordPath(w, r)
	if !ok {
		return
	}

	stored, err := api.RefreshEmbeddingUseCase.Execute(r.Context(), kind, id)
	if err != nil {
		api.Logger.Printf("DirectoryServer: error storing embedding for %s %s: %v", kind, id, err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, StoreEmbeddingResp{Stored: stored})
}

func (api DirectoryServer) RequestEmbeddingRefresh(w http.ResponseWriter, r *http.Request) {
	kind, id, ok := api.recordPath(w, r)
	if !ok {
		return
	}

	if err := api.RequestEmbeddingRefreshUseCase.Execute(r.Context(), kind, id); err != nil {
		api.Logger.Printf("DirectoryServer: error queuing embedding refresh for %s %s: %v", kind, id, err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusAccepted, RefreshEmbeddingResp{Status: "queued"})
}

func (api DirectoryServer) recordPath(w http.ResponseWriter, r *http.Request) (kind domain.ContentKind, id uuid.UUID, ok bool) {
	kind, err := collectionKind(r)
	if err != nil {
		notFound(w, err)
		return "", uuid.Nil, false
	}
	id, err = pathID(r)
	if err != nil {
		badRequest(w, "%v", err)
		return "", uuid.Nil, false
	}
	return kind, id, true
}
