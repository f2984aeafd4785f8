// Package usagecounter provides the stores that back the provider request quotas.
package usagecounter

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	goredis "github.com/redis/go-redis/v9"
)

const (
	Backend_Postgres = "postgres"
	Backend_Redis    = "redis"
	Backend_Memory   = "memory"
)

// InitUsageCounterStore registers the domain.UsageCounterStore selected by USAGE_COUNTER_STORE.
type InitUsageCounterStore struct {
	Logger   *log.Logger   `resolve:""`
	DB       *sql.DB       `resolve:""`
	Backend  string        `config:"USAGE_COUNTER_STORE" default:"postgres"`
	RedisURL string        `config:"REDIS_URL" default:"redis://localhost:6379/0"`
	TTL      time.Duration `config:"USAGE_COUNTER_TTL" default:"1440h"`
	redis    *goredis.Client
}

// Initialize builds the configured store and registers it in the dependency container.
func (i *InitUsageCounterStore) Initialize(ctx context.Context) (context.Context, error) {
	var store domain.UsageCounterStore

	switch i.Backend {
	case Backend_Postgres:
		store = postgres.NewUsageCounterRepository(i.DB)
	case Backend_Redis:
		if i.redis == nil {
			opts, err := goredis.ParseURL(i.RedisURL)
			if err != nil {
				return ctx, fmt.Errorf("invalid REDIS_URL: %w", err)
			}
			i.redis = goredis.NewClient(opts)
		}
		if err := i.redis.Ping(ctx).Err(); err != nil {
			return ctx, fmt.Errorf("failed to connect to redis: %w", err)
		}
		store = NewRedisStore(i.redis, i.TTL)
	case Backend_Memory:
		store = NewMemoryStore()
	default:
		return ctx, fmt.Errorf("unsupported usage counter store %q", i.Backend)
	}

	i.Logger.Printf("InitUsageCounterStore: using %s store", i.Backend)
	depend.Register[domain.UsageCounterStore](store)
	return ctx, nil
}

// Close releases the redis connection when one was opened.
func (i *InitUsageCounterStore) Close() {
	if i.redis == nil {
		return
	}
	if err := i.redis.Close(); err != nil {
		i.Logger.Printf("InitUsageCounterStore: failed to close redis client: %v", err)
	}
}
