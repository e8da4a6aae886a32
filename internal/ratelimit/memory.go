package ratelimit

import (
	"context"
	"sync"
	"time"
)

type window struct {
	count  int64
	expiry time.Time
}

// MemoryCounterStore implements CounterStore with a process-local map. Its
// state is not shared across replicas, so it cannot enforce a global cap; it
// is intended for tests and single-instance deployments.
type MemoryCounterStore struct {
	mu      sync.Mutex
	windows map[string]*window
	nowFunc func() time.Time
}

// NewMemoryCounterStore creates an in-memory counter store.
func NewMemoryCounterStore() *MemoryCounterStore {
	return &MemoryCounterStore{
		windows: make(map[string]*window),
		nowFunc: time.Now,
	}
}

// Count returns the current counter value, treating expired windows as absent.
func (s *MemoryCounterStore) Count(ctx context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, exists := s.windows[key]
	if !exists || s.nowFunc().After(w.expiry) {
		return 0, nil
	}
	return w.count, nil
}

// Increment increments the counter, starting a fresh window when the previous
// one has expired or never existed.
func (s *MemoryCounterStore) Increment(ctx context.Context, key string, windowDur time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFunc()
	w, exists := s.windows[key]
	if !exists || now.After(w.expiry) {
		s.windows[key] = &window{count: 1, expiry: now.Add(windowDur)}
		return 1, nil
	}

	w.count++
	return w.count, nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryCounterStore) Close() error {
	return nil
}

// Ensure MemoryCounterStore implements CounterStore
var _ CounterStore = (*MemoryCounterStore)(nil)
