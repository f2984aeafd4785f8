package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	// EventType_EMBEDDING_REFRESH_REQUESTED is published when a record's embedding must be recomputed.
	EventType_EMBEDDING_REFRESH_REQUESTED EventType = "EMBEDDING.REFRESH_REQUESTED"
)

// EmbeddingRefreshRequested asks the refresh worker to regenerate the embedding of a record.
type EmbeddingRefreshRequested struct {
	Type        EventType   `json:"type"`
	Kind        ContentKind `json:"kind"`
	RecordID    uuid.UUID   `json:"record_id"`
	RequestedAt time.Time   `json:"requested_at"`
}

// EmbeddingRefreshPublisher publishes embedding refresh requests.
type EmbeddingRefreshPublisher interface {
	PublishRefresh(ctx context.Context, event EmbeddingRefreshRequested) error
}
