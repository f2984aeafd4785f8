package workers

import (
	"context"
	"fmt"
	"io"
	"log"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/usecases/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEmbeddingRefreshSubscriber_Run(t *testing.T) {
	toolID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	promptID := uuid.MustParse("223e4567-e89b-12d3-a456-426614174001")
	requestedAt := time.Date(2026, 1, 24, 15, 0, 0, 0, time.UTC)

	refreshRequest := func(kind domain.ContentKind, id uuid.UUID) domain.EmbeddingRefreshRequested {
		return domain.EmbeddingRefreshRequested{
			Type:        domain.EventType_EMBEDDING_REFRESH_REQUESTED,
			Kind:        kind,
			RecordID:    id,
			RequestedAt: requestedAt,
		}
	}

	tests := map[string]struct {
		payloads        [][]byte
		setExpectations func(r *mocks.MockRefreshEmbedding)
	}{
		"coalesces-duplicate-requests": {
			payloads: [][]byte{
				refreshPayload(t, refreshRequest(domain.ContentKind_Tool, toolID)),
				refreshPayload(t, refreshRequest(domain.ContentKind_Prompt, promptID)),
				refreshPayload(t, refreshRequest(domain.ContentKind_Tool, toolID)),
			},
			setExpectations: func(r *mocks.MockRefreshEmbedding) {
				r.EXPECT().Execute(mock.Anything, domain.ContentKind_Tool, toolID).Return(true, nil).Once()
				r.EXPECT().Execute(mock.Anything, domain.ContentKind_Prompt, promptID).Return(true, nil).Once()
			},
		},
		"record-without-text-is-acked": {
			payloads: [][]byte{
				refreshPayload(t, refreshRequest(domain.ContentKind_Tool, toolID)),
			},
			setExpectations: func(r *mocks.MockRefreshEmbedding) {
				r.EXPECT().Execute(mock.Anything, domain.ContentKind_Tool, toolID).Return(false, nil).Once()
			},
		},
		"provider-auth-failure-is-acked": {
			payloads: [][]byte{
				refreshPayload(t, refreshRequest(domain.ContentKind_Tool, toolID)),
			},
			setExpectations: func(r *mocks.MockRefreshEmbedding) {
				r.EXPECT().Execute(mock.Anything, domain.ContentKind_Tool, toolID).
					Return(false, domain.NewProviderErr(domain.ProviderErrorKind_AuthError, "invalid api key", nil)).
					Once()
			},
		},
		"deleted-record-is-acked": {
			payloads: [][]byte{
				refreshPayload(t, refreshRequest(domain.ContentKind_Prompt, promptID)),
			},
			setExpectations: func(r *mocks.MockRefreshEmbedding) {
				r.EXPECT().Execute(mock.Anything, domain.ContentKind_Prompt, promptID).
					Return(false, domain.NewNotFoundErr("prompt not found")).
					Once()
			},
		},
		"invalid-payload": {
			payloads: [][]byte{
				[]byte(`{"type"`),
			},
		},
		"ignore-unrelated-event-type": {
			payloads: [][]byte{
				refreshPayload(t, domain.EmbeddingRefreshRequested{Type: domain.EventType("CONTENT.DELETED"), Kind: domain.ContentKind_Tool, RecordID: toolID}),
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			topic := newRefreshTopic(t, name)

			refresh := mocks.NewMockRefreshEmbedding(t)
			if tt.setExpectations != nil {
				tt.setExpectations(refresh)
			}

			signalChan := make(chan struct{}, 10)
			subscriber := EmbeddingRefreshSubscriber{
				Logger:              log.New(io.Discard, "", 0),
				Client:              topic.client,
				Interval:            5 * time.Second,
				BatchSize:           len(tt.payloads),
				SubscriptionID:      topic.subscriptionID,
				RefreshEmbedding:    refresh,
				workerExecutionChan: signalChan,
			}

			cancel, doneChan := run(t, t.Context(), subscriber)
			topic.publish(t, tt.payloads...)

			waitForBatchSignals(t, signalChan, 1, 2*time.Second)
			cancel()
			waitRunnableStop(t, doneChan)
		})
	}
}

func TestEmbeddingRefreshSubscriber_Run_RetriesTransientFailure(t *testing.T) {
	toolID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	tests := map[string]struct {
		firstErr error
	}{
		"storage-failure": {
			firstErr: assert.AnError,
		},
		"rate-limited-provider": {
			firstErr: fmt.Errorf("failed to generate embedding: %w",
				domain.NewProviderErr(domain.ProviderErrorKind_RateLimited, "rate limit reached", nil)),
		},
		"provider-timeout": {
			firstErr: domain.NewProviderErr(domain.ProviderErrorKind_NetworkError, "provider request timed out", context.DeadlineExceeded),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			topic := newRefreshTopic(t, "retry-"+name)

			refresh := mocks.NewMockRefreshEmbedding(t)
			refresh.EXPECT().Execute(mock.Anything, domain.ContentKind_Tool, toolID).Return(false, tt.firstErr).Once()
			refresh.EXPECT().Execute(mock.Anything, domain.ContentKind_Tool, toolID).Return(true, nil).Once()

			signalChan := make(chan struct{}, 10)
			subscriber := EmbeddingRefreshSubscriber{
				Logger:              log.New(io.Discard, "", 0),
				Client:              topic.client,
				Interval:            5 * time.Second,
				BatchSize:           1,
				SubscriptionID:      topic.subscriptionID,
				RefreshEmbedding:    refresh,
				workerExecutionChan: signalChan,
			}

			cancel, doneChan := run(t, t.Context(), subscriber)
			topic.publish(t, refreshPayload(t, domain.EmbeddingRefreshRequested{
				Type:     domain.EventType_EMBEDDING_REFRESH_REQUESTED,
				Kind:     domain.ContentKind_Tool,
				RecordID: toolID,
			}))

			// the nacked message is redelivered and processed in a second batch
			waitForBatchSignals(t, signalChan, 2, 3*time.Second)
			cancel()
			waitRunnableStop(t, doneChan)
		})
	}
}

func TestIsPermanentRefreshErr(t *testing.T) {
	tests := map[string]struct {
		err      error
		expected bool
	}{
		"not-found":  {err: domain.NewNotFoundErr("tool x not found"), expected: true},
		"validation": {err: domain.NewValidationErr("unknown content kind: video"), expected: true},
		"network":    {err: domain.NewProviderErr(domain.ProviderErrorKind_NetworkError, "down", nil), expected: false},
		"rate-limit": {err: fmt.Errorf("embed: %w", domain.NewProviderErr(domain.ProviderErrorKind_RateLimited, "slow down", nil)), expected: false},
		"auth":       {err: domain.NewProviderErr(domain.ProviderErrorKind_AuthError, "bad key", nil), expected: true},
		"quota":      {err: domain.NewProviderErr(domain.ProviderErrorKind_QuotaExceeded, "daily limit", nil), expected: true},
		"other":      {err: assert.AnError, expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isPermanentRefreshErr(tt.err))
		})
	}
}
