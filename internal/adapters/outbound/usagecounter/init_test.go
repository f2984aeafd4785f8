package usagecounter

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitUsageCounterStore_Initialize(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close() //nolint:errcheck

	mr := miniredis.RunT(t)

	tests := map[string]struct {
		backend      string
		redisURL     string
		expectedType any
		wantErr      bool
	}{
		"postgres": {
			backend:      Backend_Postgres,
			expectedType: postgres.UsageCounterRepository{},
		},
		"redis": {
			backend:      Backend_Redis,
			redisURL:     "redis://" + mr.Addr() + "/0",
			expectedType: RedisStore{},
		},
		"memory": {
			backend:      Backend_Memory,
			expectedType: &MemoryStore{},
		},
		"invalid-redis-url": {
			backend:  Backend_Redis,
			redisURL: "http://not-redis",
			wantErr:  true,
		},
		"redis-unreachable": {
			backend:  Backend_Redis,
			redisURL: "redis://127.0.0.1:1/0",
			wantErr:  true,
		},
		"unsupported": {
			backend: "etcd",
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			i := &InitUsageCounterStore{
				Logger:   log.New(io.Discard, "", 0),
				DB:       db,
				Backend:  tt.backend,
				RedisURL: tt.redisURL,
				TTL:      time.Hour,
			}
			defer i.Close()

			_, err := i.Initialize(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			store, err := depend.Resolve[domain.UsageCounterStore]()
			require.NoError(t, err)
			assert.IsType(t, tt.expectedType, store)
		})
	}
}
