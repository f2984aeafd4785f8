package workers

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/usecases"
)

// EmbeddingBackfiller embeds every tool and prompt once at startup when enabled,
// then idles until shutdown.
type EmbeddingBackfiller struct {
	Logger              *log.Logger                 `resolve:""`
	BackfillEmbeddings  usecases.BackfillEmbeddings `resolve:""`
	Enabled             bool                        `config:"EMBEDDING_BACKFILL_ON_START" default:"false"`
	workerExecutionChan chan struct{}
}

// Run executes the backfill for each content kind and waits for ctx to be done.
func (b EmbeddingBackfiller) Run(ctx context.Context) error {
	if b.Enabled {
		b.Logger.Println("EmbeddingBackfiller: running...")
		for _, kind := range domain.ContentKinds() {
			result, err := b.BackfillEmbeddings.Execute(ctx, kind, b.progress(kind))
			if err != nil {
				b.Logger.Printf("EmbeddingBackfiller: %s backfill stopped: %v", kind, err)
				if ctx.Err() != nil {
					break
				}
				continue
			}
			b.Logger.Printf("EmbeddingBackfiller: %s backfill done success=%d failed=%d", kind, result.Success, result.Failed)
		}
	}

	if b.workerExecutionChan != nil {
		b.workerExecutionChan <- struct{}{}
	}

	<-ctx.Done()
	return nil
}

func (b EmbeddingBackfiller) progress(kind domain.ContentKind) usecases.ProgressFunc {
	return func(current, total int) {
		if current == total || current%25 == 0 {
			b.Logger.Printf("EmbeddingBackfiller: %s %d/%d", kind, current, total)
		}
	}
}
