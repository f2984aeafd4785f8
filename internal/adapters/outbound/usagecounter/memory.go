package usagecounter

import (
	"context"
	"sync"
)

// MemoryStore keeps counters in process memory. Counts are lost on restart
// and are not shared between replicas.
type MemoryStore struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{counts: make(map[string]int)}
}

// Get returns the counter value, zero when unknown.
func (s *MemoryStore) Get(_ context.Context, key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[key], nil
}

// Increment adds one to the counter.
func (s *MemoryStore) Increment(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[key]++
	return nil
}
