package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/common"
	"github.com/google/uuid"
)

// RawLocalizedContent is the loosely-shaped per-language content received at
// the boundary. Prompts use title/text where tools use name/description.
type RawLocalizedContent struct {
	Name        string `json:"name,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Text        string `json:"text,omitempty"`
	Tag         string `json:"tag,omitempty"`
}

// RawContentRecord is a record as it arrives from storage or an API caller,
// before normalization. Embedding may be a numeric slice, a vector literal
// such as "[0.1,0.2]", raw JSON bytes, or nil.
type RawContentRecord struct {
	ID          string                         `json:"id"`
	Kind        ContentKind                    `json:"kind,omitempty"`
	Category    string                         `json:"category,omitempty"`
	Localized   map[string]RawLocalizedContent `json:"content,omitempty"`
	Name        string                         `json:"name,omitempty"`
	Description string                         `json:"description,omitempty"`
	TagLine     string                         `json:"tag_line,omitempty"`
	Embedding   any                            `json:"embedding,omitempty"`
	CreatedAt   time.Time                      `json:"created_at"`
	UpdatedAt   time.Time                      `json:"updated_at"`
}

// NormalizeRecord converts a raw record into the canonical ContentRecord.
// An id that is not a UUID becomes uuid.Nil and an embedding that cannot be
// parsed is dropped; neither is an error.
func NormalizeRecord(raw RawContentRecord) ContentRecord {
	id, err := uuid.Parse(strings.TrimSpace(raw.ID))
	if err != nil {
		id = uuid.Nil
	}

	record := ContentRecord{
		ID:       id,
		Kind:     raw.Kind,
		Category: strings.TrimSpace(raw.Category),
		Legacy: LegacyFields{
			Name:        raw.Name,
			Description: raw.Description,
			TagLine:     raw.TagLine,
		},
		CreatedAt: raw.CreatedAt,
		UpdatedAt: raw.UpdatedAt,
	}

	if len(raw.Localized) > 0 {
		record.Localized = make(map[string]LocalizedContent, len(raw.Localized))
		for lang, rc := range raw.Localized {
			lc := LocalizedContent{
				Name:        firstNonBlank(rc.Name, rc.Title),
				Description: firstNonBlank(rc.Description, rc.Text),
				Tag:         rc.Tag,
			}
			if lc.IsZero() {
				continue
			}
			record.Localized[strings.ToLower(strings.TrimSpace(lang))] = lc
		}
	}

	if embedding, ok := ParseEmbedding(raw.Embedding); ok {
		record.Embedding = embedding
	}

	return record
}

// ParseEmbedding accepts the embedding representations found in the content
// store and returns a vector only when it is non-empty and fully finite.
func ParseEmbedding(v any) ([]float64, bool) {
	var out []float64

	switch e := v.(type) {
	case nil:
		return nil, false
	case []float64:
		out = append([]float64(nil), e...)
	case []float32:
		out = make([]float64, len(e))
		for i, x := range e {
			out[i] = float64(x)
		}
	case []any:
		out = make([]float64, 0, len(e))
		for _, item := range e {
			f, ok := toFloat(item)
			if !ok {
				return nil, false
			}
			out = append(out, f)
		}
	case string:
		return parseEmbeddingLiteral([]byte(e))
	case []byte:
		return parseEmbeddingLiteral(e)
	case json.RawMessage:
		return parseEmbeddingLiteral(e)
	default:
		return nil, false
	}

	if !common.IsValidEmbedding(out) {
		return nil, false
	}
	return out, true
}

func parseEmbeddingLiteral(b []byte) ([]float64, bool) {
	s := strings.TrimSpace(string(b))
	if s == "" {
		return nil, false
	}

	var out []float64
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, false
	}
	if !common.IsValidEmbedding(out) {
		return nil, false
	}
	return out, true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
