package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ContentKind identifies which directory table a record belongs to.
type ContentKind string

const (
	ContentKind_Tool   ContentKind = "tool"
	ContentKind_Prompt ContentKind = "prompt"
)

// Validate checks that the kind is one of the supported content kinds.
func (k ContentKind) Validate() error {
	switch k {
	case ContentKind_Tool, ContentKind_Prompt:
		return nil
	}
	return NewValidationErr("unknown content kind: " + string(k))
}

// ContentKinds lists every supported content kind.
func ContentKinds() []ContentKind {
	return []ContentKind{ContentKind_Tool, ContentKind_Prompt}
}

// Language codes supported by the directory.
const (
	Language_EN = "en"
	Language_AR = "ar"
)

// LocalizedContent holds the per-language text of a record.
// For prompts, Name is the prompt title and Description is the prompt text.
type LocalizedContent struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Tag         string `json:"tag,omitempty"`
}

// IsZero reports whether all fields are blank.
func (lc LocalizedContent) IsZero() bool {
	return lc.Name == "" && lc.Description == "" && lc.Tag == ""
}

// LegacyFields holds the older top-level text columns kept for records
// created before the localized content map existed.
type LegacyFields struct {
	Name        string
	Description string
	TagLine     string
}

// ContentRecord is a directory entry (tool or prompt).
type ContentRecord struct {
	ID        uuid.UUID
	Kind      ContentKind
	Category  string
	Localized map[string]LocalizedContent
	Legacy    LegacyFields
	Embedding []float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasEmbedding reports whether the record carries a stored vector.
func (r ContentRecord) HasEmbedding() bool {
	return len(r.Embedding) > 0
}

// DisplayName returns the English name, falling back to Arabic and then the legacy name.
func (r ContentRecord) DisplayName() string {
	for _, lang := range []string{Language_EN, Language_AR} {
		if lc, ok := r.Localized[lang]; ok && lc.Name != "" {
			return lc.Name
		}
	}
	return r.Legacy.Name
}

// ScoredRecord pairs a record with its similarity to a query vector.
type ScoredRecord struct {
	Record     ContentRecord
	Similarity float64
}

// MatchParams are the arguments of the server-side ranking functions.
type MatchParams struct {
	Embedding []float64
	Threshold float64
	Limit     int
	ExcludeID uuid.UUID
}

// BatchResult summarizes a batch embedding run.
type BatchResult struct {
	Success int
	Failed  int
}

// ContentRepository defines the interface for reading and updating directory records.
type ContentRepository interface {
	// ListAll returns every record of the given kind.
	ListAll(ctx context.Context, kind ContentKind) ([]ContentRecord, error)
	// ListWithEmbedding returns only records that carry a stored embedding.
	ListWithEmbedding(ctx context.Context, kind ContentKind) ([]ContentRecord, error)
	// GetByID returns the record with the given id, if present.
	GetByID(ctx context.Context, kind ContentKind, id uuid.UUID) (ContentRecord, bool, error)
	// ListByCategory returns up to limit records sharing category, excluding excludeID.
	ListByCategory(ctx context.Context, kind ContentKind, category string, excludeID uuid.UUID, limit int) ([]ContentRecord, error)
	// UpdateEmbedding stores the embedding of a record.
	UpdateEmbedding(ctx context.Context, kind ContentKind, id uuid.UUID, embedding []float64) error
}

// SimilarityRanker ranks records by similarity on the storage side.
type SimilarityRanker interface {
	MatchByEmbedding(ctx context.Context, kind ContentKind, params MatchParams) ([]ScoredRecord, error)
}
