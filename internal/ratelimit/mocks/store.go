package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// CounterStore is a mock implementation of ratelimit.CounterStore
type CounterStore struct {
	mock.Mock
}

// Count returns the current counter value for a key
func (m *CounterStore) Count(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

// Increment atomically increments the counter for a key
func (m *CounterStore) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	args := m.Called(ctx, key, window)
	return args.Get(0).(int64), args.Error(1)
}

// Close releases the underlying connection
func (m *CounterStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
