package usagecounter

import (
	"context"
	"errors"
	"time"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/telemetry"
	goredis "github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// RedisStore keeps provider request counters in Redis. Every increment
// refreshes the key's TTL so finished periods eventually expire.
type RedisStore struct {
	client goredis.UniversalClient
	ttl    time.Duration
}

// NewRedisStore creates a new RedisStore.
func NewRedisStore(client goredis.UniversalClient, ttl time.Duration) RedisStore {
	return RedisStore{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the counter value, zero when the key does not exist.
func (s RedisStore) Get(ctx context.Context, key string) (int, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.String("key", key)))
	defer span.End()

	count, err := s.client.Get(spanCtx, key).Int()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	return count, nil
}

// Increment adds one to the counter atomically.
func (s RedisStore) Increment(ctx context.Context, key string) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.String("key", key)))
	defer span.End()

	_, err := s.client.TxPipelined(spanCtx, func(pipe goredis.Pipeliner) error {
		pipe.Incr(spanCtx, key)
		if s.ttl > 0 {
			pipe.Expire(spanCtx, key, s.ttl)
		}
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}
