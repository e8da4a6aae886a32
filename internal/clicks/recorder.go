// Package clicks applies click-count updates in the background so redirects
// never wait on the URL store. Submissions carry no ordering or visibility
// guarantee relative to the redirect response: a click may become visible in
// stats before, after, or (on crash) never relative to the redirect being
// observed. Click counts are best-effort analytics, not a ledger.
package clicks

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/jacksrivastava/shortly/internal/repository"
)

const defaultQueueSize = 1024

// applyTimeout bounds each store update so a hung store cannot wedge the
// worker forever.
const applyTimeout = 5 * time.Second

type click struct {
	shortCode string
	clickedAt time.Time
}

// Recorder accepts click events on a bounded queue and applies them to the
// repository from a worker goroutine. A full queue drops the event with a
// logged warning rather than blocking the caller.
type Recorder struct {
	repo  repository.LinkRepository
	queue chan click

	mu      sync.Mutex
	running bool
	done    chan struct{}
}

// NewRecorder creates a click recorder backed by the given repository.
func NewRecorder(repo repository.LinkRepository) *Recorder {
	return &Recorder{
		repo:  repo,
		queue: make(chan click, defaultQueueSize),
	}
}

// Start launches the worker goroutine. Calling Start on a running recorder is
// a no-op.
func (r *Recorder) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return
	}
	r.running = true
	r.done = make(chan struct{})

	go r.run()
}

// Record submits a click event without blocking. Events submitted after Stop
// or while the queue is saturated are dropped and logged.
func (r *Recorder) Record(shortCode string, clickedAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		log.Printf("Warning: click for '%s' dropped: recorder stopped", shortCode)
		return
	}

	select {
	case r.queue <- click{shortCode: shortCode, clickedAt: clickedAt}:
	default:
		log.Printf("Warning: click for '%s' dropped: queue full", shortCode)
	}
}

// Stop drains the queued events and waits for the worker to exit. Calling
// Stop on a stopped recorder is a no-op.
func (r *Recorder) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	close(r.queue)
	done := r.done
	r.mu.Unlock()

	<-done

	// Re-create the queue for a potential restart
	r.mu.Lock()
	r.queue = make(chan click, defaultQueueSize)
	r.mu.Unlock()
}

// run applies queued events until the queue is closed and drained.
func (r *Recorder) run() {
	defer close(r.done)

	for c := range r.queue {
		r.apply(c)
	}
}

// apply performs a single click update. Failures are logged and swallowed;
// they never surface to the request that produced the click.
func (r *Recorder) apply(c click) {
	ctx, cancel := context.WithTimeout(context.Background(), applyTimeout)
	defer cancel()

	if err := r.repo.RecordClick(ctx, c.shortCode, c.clickedAt); err != nil {
		log.Printf("Warning: failed to record click for '%s': %v", c.shortCode, err)
	}
}
