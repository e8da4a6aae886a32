package ratelimit

import (
	"context"
	"time"
)

// CounterStore defines the interface for the shared request counters backing
// the fixed-window limiter.
type CounterStore interface {
	// Count returns the current counter value for a key, 0 if the key
	// does not exist or has expired.
	Count(ctx context.Context, key string) (int64, error)

	// Increment atomically increments the counter for a key and, when the
	// increment creates the key, attaches the window as its expiry so the
	// counter self-resets. Returns the value after the increment.
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)

	// Close releases the underlying connection (if applicable).
	Close() error
}
