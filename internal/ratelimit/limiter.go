package ratelimit

import (
	"context"
	"log"
	"time"
)

// UnknownIdentity is the sentinel used when a caller's identity cannot be
// determined.
const UnknownIdentity = "unknown"

// Decision is the outcome of an admission check.
type Decision struct {
	Allowed bool
	// Count is the counter value observed for the identity's current
	// window, 0 when the store was unreachable.
	Count int64
}

// Limiter decides whether a request is admitted under a per-identity
// fixed-window cap.
type Limiter interface {
	Admit(ctx context.Context, identity string) Decision
}

// FixedWindow implements Limiter with a single counter per identity scoped to
// a fixed time window. The counter lives in a shared CounterStore so the cap
// holds across process replicas.
//
// The check and the increment are two store operations, not one: a burst of
// concurrent requests arriving right at the cap boundary may transiently admit
// up to concurrency-degree extra requests. That imprecision is accepted;
// enforcement here is best-effort.
type FixedWindow struct {
	store       CounterStore
	window      time.Duration
	maxRequests int64
}

// NewFixedWindow creates a fixed-window limiter admitting at most maxRequests
// per identity per window.
func NewFixedWindow(store CounterStore, window time.Duration, maxRequests int64) *FixedWindow {
	return &FixedWindow{
		store:       store,
		window:      window,
		maxRequests: maxRequests,
	}
}

// Admit reports whether a request from identity may proceed.
//
// The limiter fails OPEN: any counter-store error admits the request with a
// logged warning rather than rejecting it. A limiter outage must never take
// down the primary service. Each request tries the store independently; there
// are no retries and no circuit breaker.
func (l *FixedWindow) Admit(ctx context.Context, identity string) Decision {
	if identity == "" {
		identity = UnknownIdentity
	}

	count, err := l.store.Count(ctx, identity)
	if err != nil {
		log.Printf("Warning: rate limiter failing open for '%s': %v", identity, err)
		return Decision{Allowed: true}
	}

	if count >= l.maxRequests {
		return Decision{Allowed: false, Count: count}
	}

	count, err = l.store.Increment(ctx, identity, l.window)
	if err != nil {
		log.Printf("Warning: rate limiter failing open for '%s': %v", identity, err)
		return Decision{Allowed: true}
	}

	return Decision{Allowed: true, Count: count}
}

// Ensure FixedWindow implements Limiter
var _ Limiter = (*FixedWindow)(nil)
