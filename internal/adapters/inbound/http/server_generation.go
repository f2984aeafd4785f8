package http

import (
	"net/http"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/usecases"
)

func (api DirectoryServer) DraftDescription(w http.ResponseWriter, r *http.Request) {
	kind, id, ok := api.recordPath(w, r)
	if !ok {
		return
	}

	var req DraftDescriptionReq
	if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
		return
	}

	draft, err := api.DraftDescriptionUseCase.Execute(r.Context(), kind, id, req.Lang)
	if err != nil {
		api.Logger.Printf("DirectoryServer: error drafting description for %s %s: %v", kind, id, err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, DraftDescriptionResp{Description: draft})
}

func (api DirectoryServer) GenerateContent(w http.ResponseWriter, r *http.Request) {
	var req GenerateContentReq
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		badRequest(w, "prompt is required")
		return
	}

	content, err := api.ProviderGateway.GenerateContent(r.Context(), req.Prompt, usecases.GenerateContentOptions{
		Model:        req.Model,
		SystemPrompt: req.SystemPrompt,
		Temperature:  req.Temperature,
		MaxTokens:    req.MaxTokens,
	})
	if err != nil {
		api.Logger.Printf("DirectoryServer: error generating content: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, GenerateContentResp{Content: content})
}
