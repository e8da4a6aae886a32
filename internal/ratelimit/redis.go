package ratelimit

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:embed fixed_window.lua
var fixedWindowScript string

const keyPrefix = "ratelimit:"

// RedisCounterStore implements CounterStore on Redis. The increment and the
// conditional expiry run as a single Lua script so two concurrent first
// requests for the same identity cannot set independent non-expiring counters.
type RedisCounterStore struct {
	client *redis.Client
	script *redis.Script
}

// NewRedisCounterStore creates a Redis-backed counter store. The constructor
// never dials: an unreachable Redis surfaces as per-request errors, which the
// limiter turns into fail-open admissions.
func NewRedisCounterStore(client *redis.Client) *RedisCounterStore {
	return &RedisCounterStore{
		client: client,
		// Run uses EVALSHA and reloads the script on NOSCRIPT, so a
		// Redis restart does not need a new store.
		script: redis.NewScript(fixedWindowScript),
	}
}

// Count returns the current counter value for a key, 0 if absent or expired.
func (s *RedisCounterStore) Count(ctx context.Context, key string) (int64, error) {
	count, err := s.client.Get(ctx, keyPrefix+key).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read counter: %w", err)
	}
	return count, nil
}

// Increment atomically increments the counter and attaches the window expiry
// when the key was just created.
func (s *RedisCounterStore) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := s.script.Run(ctx, s.client, []string{keyPrefix + key}, window.Milliseconds()).Int64()
	if err != nil {
		return 0, fmt.Errorf("failed to increment counter: %w", err)
	}
	return count, nil
}

// Close closes the underlying Redis client.
func (s *RedisCounterStore) Close() error {
	return s.client.Close()
}

// Ensure RedisCounterStore implements CounterStore
var _ CounterStore = (*RedisCounterStore)(nil)
