package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
	"github.com/google/uuid"
)

func toError(err error) ErrorResp {
	errResp := ErrorResp{}

	var (
		validationErr *domain.ValidationErr
		notFoundErr   *domain.NotFoundErr
		providerErr   *domain.ProviderErr
	)
	switch {
	case errors.As(err, &validationErr):
		errResp.Error.Code = ErrorCode_BadRequest
		errResp.Error.Message = validationErr.Error()
	case errors.As(err, &notFoundErr):
		errResp.Error.Code = ErrorCode_NotFound
		errResp.Error.Message = notFoundErr.Error()
	case errors.As(err, &providerErr):
		errResp.Error.Code = ErrorCode(providerErr.Kind)
		errResp.Error.Message = "AI provider request failed"
		errResp.Error.Guidance = domain.ProviderErrorGuidance(providerErr.Kind)
	default:
		errResp.Error.Code = ErrorCode_InternalError
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func toContentItem(sr domain.ScoredRecord) ContentItem {
	item := ContentItem{
		ID:         sr.Record.ID,
		Kind:       string(sr.Record.Kind),
		Name:       sr.Record.DisplayName(),
		Category:   sr.Record.Category,
		Similarity: sr.Similarity,
		Localized:  map[string]LocalizedContent{},
	}
	for lang, lc := range sr.Record.Localized {
		item.Localized[lang] = LocalizedContent(lc)
	}
	if len(item.Localized) == 0 && sr.Record.Legacy.Name != "" {
		item.Localized[domain.Language_EN] = LocalizedContent{
			Name:        sr.Record.Legacy.Name,
			Description: sr.Record.Legacy.Description,
			Tag:         sr.Record.Legacy.TagLine,
		}
	}
	return item
}

func toContentItems(records []domain.ScoredRecord) []ContentItem {
	items := make([]ContentItem, 0, len(records))
	for _, r := range records {
		items = append(items, toContentItem(r))
	}
	return items
}

// collectionKind maps the plural path segment ("tools", "prompts") to its content kind.
func collectionKind(r *http.Request) (domain.ContentKind, error) {
	collection := r.PathValue("collection")
	kind := domain.ContentKind(strings.TrimSuffix(collection, "s"))
	if !strings.HasSuffix(collection, "s") || kind.Validate() != nil {
		return "", fmt.Errorf("unknown collection: %s", collection)
	}
	return kind, nil
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id: %s", r.PathValue("id"))
	}
	return id, nil
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid %s: %s", name, raw)
	}
	return v, nil
}
