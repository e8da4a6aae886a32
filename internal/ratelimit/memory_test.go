package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCounterStore_CountMissingKey(t *testing.T) {
	store := NewMemoryCounterStore()

	count, err := store.Count(context.Background(), "absent")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestMemoryCounterStore_IncrementCreatesWindow(t *testing.T) {
	store := NewMemoryCounterStore()
	ctx := context.Background()

	count, err := store.Increment(ctx, "key", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = store.Increment(ctx, "key", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = store.Count(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestMemoryCounterStore_ExpiredWindowReadsAsZero(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryCounterStore()
	store.nowFunc = func() time.Time { return now }
	ctx := context.Background()

	_, err := store.Increment(ctx, "key", time.Minute)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)

	count, err := store.Count(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// The next increment starts over with a fresh expiry
	count, err = store.Increment(ctx, "key", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryCounterStore_ConcurrentIncrements(t *testing.T) {
	store := NewMemoryCounterStore()
	ctx := context.Background()

	const goroutines = 50
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			_, err := store.Increment(ctx, "key", time.Minute)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	count, err := store.Count(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, int64(goroutines), count)
}
