package usagecounter

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_ConcurrentIncrements(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Increment(ctx, dayKey))
		}()
	}
	wg.Wait()

	got, err := store.Get(ctx, dayKey)
	assert.NoError(t, err)
	assert.Equal(t, 50, got)

	other, err := store.Get(ctx, "llm_requests:month:2026-10")
	assert.NoError(t, err)
	assert.Zero(t, other)
}
