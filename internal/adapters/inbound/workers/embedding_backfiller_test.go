package workers

import (
	"bytes"
	"context"
	"log"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/usecases/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEmbeddingBackfiller_Run(t *testing.T) {
	tests := map[string]struct {
		enabled         bool
		setExpectations func(b *mocks.MockBackfillEmbeddings)
		expectedLogs    []string
	}{
		"backfills-every-kind": {
			enabled: true,
			setExpectations: func(b *mocks.MockBackfillEmbeddings) {
				b.EXPECT().Execute(mock.Anything, domain.ContentKind_Tool, mock.Anything).
					Return(domain.BatchResult{Success: 3, Failed: 1}, nil).
					Once()
				b.EXPECT().Execute(mock.Anything, domain.ContentKind_Prompt, mock.Anything).
					Return(domain.BatchResult{Success: 2}, nil).
					Once()
			},
			expectedLogs: []string{
				"tool backfill done success=3 failed=1",
				"prompt backfill done success=2 failed=0",
			},
		},
		"continues-after-kind-failure": {
			enabled: true,
			setExpectations: func(b *mocks.MockBackfillEmbeddings) {
				b.EXPECT().Execute(mock.Anything, domain.ContentKind_Tool, mock.Anything).
					Return(domain.BatchResult{}, assert.AnError).
					Once()
				b.EXPECT().Execute(mock.Anything, domain.ContentKind_Prompt, mock.Anything).
					Return(domain.BatchResult{Success: 1}, nil).
					Once()
			},
			expectedLogs: []string{
				"tool backfill stopped",
				"prompt backfill done success=1 failed=0",
			},
		},
		"disabled": {
			enabled: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			backfill := mocks.NewMockBackfillEmbeddings(t)
			if tt.setExpectations != nil {
				tt.setExpectations(backfill)
			}

			var logs bytes.Buffer
			signalChan := make(chan struct{}, 1)
			b := EmbeddingBackfiller{
				Logger:              log.New(&logs, "", 0),
				BackfillEmbeddings:  backfill,
				Enabled:             tt.enabled,
				workerExecutionChan: signalChan,
			}

			cancel, doneChan := run(t, context.Background(), b)
			waitForBatchSignals(t, signalChan, 1, time.Second)
			cancel()
			waitRunnableStop(t, doneChan)

			for _, expected := range tt.expectedLogs {
				assert.Contains(t, logs.String(), expected)
			}
		})
	}
}

func TestEmbeddingBackfiller_Progress(t *testing.T) {
	var logs bytes.Buffer
	b := EmbeddingBackfiller{Logger: log.New(&logs, "", 0)}

	progress := b.progress(domain.ContentKind_Tool)
	for i := 1; i <= 30; i++ {
		progress(i, 30)
	}

	assert.Equal(t, "EmbeddingBackfiller: tool 25/30\nEmbeddingBackfiller: tool 30/30\n", logs.String())
}
