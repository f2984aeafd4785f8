package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/usecases"
	"github.com/google/uuid"
)

// EmbeddingRefreshSubscriber consumes embedding refresh requests from Pub/Sub
// and recomputes the embedding of each requested record.
type EmbeddingRefreshSubscriber struct {
	Logger              *log.Logger               `resolve:""`
	Client              *pubsub.Client            `resolve:""`
	Interval            time.Duration             `config:"EMBEDDING_REFRESH_BATCH_INTERVAL" default:"2s"`
	BatchSize           int                       `config:"EMBEDDING_REFRESH_BATCH_SIZE" default:"20"`
	SubscriptionID      string                    `config:"EMBEDDING_REFRESH_SUBSCRIPTION_ID" default:"embedding-refresh-sub"`
	RefreshEmbedding    usecases.RefreshEmbedding `resolve:""`
	workerExecutionChan chan struct{}
}

// Run starts the embedding refresh subscriber worker.
func (s EmbeddingRefreshSubscriber) Run(ctx context.Context) error {
	s.Logger.Println("EmbeddingRefreshSubscriber: running...")

	if s.BatchSize <= 0 {
		s.BatchSize = 20
	}
	if s.Interval <= 0 {
		s.Interval = 2 * time.Second
	}

	eventCh := make(chan *pubsub.Message, s.BatchSize*2)
	subscriberInitErrCh := make(chan error, 1)

	go func() {
		err := s.Client.Subscriber(s.SubscriptionID).Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
			select {
			case eventCh <- msg:
				// Ack later, after batching.
			case <-ctx.Done():
				msg.Nack()
			}
		})

		if err != nil {
			subscriberInitErrCh <- err
		}
	}()

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	var batch []*pubsub.Message

	for {
		select {
		case <-ctx.Done():
			s.Logger.Println("EmbeddingRefreshSubscriber: stopped")
			return nil

		case err := <-subscriberInitErrCh:
			return err

		case msg := <-eventCh:
			batch = append(batch, msg)
			if len(batch) >= s.BatchSize {
				s.flush(ctx, batch)
				batch = nil
			}

		case <-ticker.C:
			if len(batch) > 0 {
				s.flush(ctx, batch)
				batch = nil
			}
		}
	}
}

// refreshTarget identifies one record whose embedding must be recomputed.
type refreshTarget struct {
	Kind     domain.ContentKind
	RecordID uuid.UUID
}

// flush processes one batch. Repeated requests for the same record collapse into one refresh.
func (s EmbeddingRefreshSubscriber) flush(ctx context.Context, batch []*pubsub.Message) {
	s.Logger.Printf("EmbeddingRefreshSubscriber: processing batch size=%d", len(batch))

	if s.workerExecutionChan != nil {
		s.workerExecutionChan <- struct{}{}
	}

	targets := make(map[refreshTarget][]*pubsub.Message)
	var order []refreshTarget
	for _, msg := range batch {
		var event domain.EmbeddingRefreshRequested
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			// redelivery cannot fix a payload that does not decode
			s.Logger.Printf("EmbeddingRefreshSubscriber: dropping undecodable payload: %v", err)
			msg.Ack()
			continue
		}

		if event.Type != domain.EventType_EMBEDDING_REFRESH_REQUESTED {
			msg.Ack()
			continue
		}

		target := refreshTarget{Kind: event.Kind, RecordID: event.RecordID}
		if _, found := targets[target]; !found {
			order = append(order, target)
		}
		targets[target] = append(targets[target], msg)
	}

	for _, target := range order {
		messages := targets[target]
		stored, err := s.RefreshEmbedding.Execute(ctx, target.Kind, target.RecordID)
		switch {
		case err == nil:
			if !stored {
				s.Logger.Printf("EmbeddingRefreshSubscriber: no embedding stored for %s %s", target.Kind, target.RecordID)
			}
			ackAll(messages)
		case isPermanentRefreshErr(err):
			s.Logger.Printf("EmbeddingRefreshSubscriber: discarding request for %s %s: %v", target.Kind, target.RecordID, err)
			ackAll(messages)
		default:
			for _, message := range messages {
				message.Nack()
			}
			if !errors.Is(err, context.Canceled) {
				s.Logger.Printf("EmbeddingRefreshSubscriber: %v", fmt.Errorf("refresh %s %s: %w", target.Kind, target.RecordID, err))
			}
		}
	}
}

// isPermanentRefreshErr reports errors that a redelivery would hit again.
// Throttled or unreachable providers and storage failures are retried.
func isPermanentRefreshErr(err error) bool {
	var (
		notFound    *domain.NotFoundErr
		invalid     *domain.ValidationErr
		providerErr *domain.ProviderErr
	)
	switch {
	case errors.As(err, &notFound), errors.As(err, &invalid):
		return true
	case errors.As(err, &providerErr):
		return !providerErr.Retryable()
	}
	return false
}

func ackAll(messages []*pubsub.Message) {
	for _, message := range messages {
		message.Ack()
	}
}
