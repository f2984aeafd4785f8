package workers

import (
	"context"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/usecases"
)

// MessageRelay drains the outbox into Pub/Sub, once at startup and then
// every Interval, so refresh requests queued while the service was down
// are not left waiting for the first tick.
type MessageRelay struct {
	RelayOutbox         usecases.RelayOutbox `resolve:""`
	Logger              *log.Logger          `resolve:""`
	Interval            time.Duration        `config:"FETCH_OUTBOX_INTERVAL" default:"500ms"`
	workerExecutionChan chan struct{}
}

// Run relays batches until ctx is canceled.
func (mr MessageRelay) Run(ctx context.Context) error {
	mr.Logger.Printf("MessageRelay: relaying outbox every %s", mr.Interval)
	ticker := time.NewTicker(mr.Interval)
	defer ticker.Stop()

	for {
		mr.relay(ctx)

		select {
		case <-ticker.C:
		case <-ctx.Done():
			mr.Logger.Println("MessageRelay: stopping...")
			return nil
		}
	}
}

func (mr MessageRelay) relay(ctx context.Context) {
	if err := mr.RelayOutbox.Execute(ctx); err != nil && ctx.Err() == nil {
		mr.Logger.Printf("MessageRelay: error relaying batch: %v", err)
	}
	if mr.workerExecutionChan != nil {
		mr.workerExecutionChan <- struct{}{}
	}
}
