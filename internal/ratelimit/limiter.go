// Package ratelimit implements fixed-window request budgeting keyed by
// client identity. Counters live in process memory: the service is a
// single-process deployment and the limiter state is disposable, so no
// external store is involved.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Result describes the outcome of a single Allow call.
type Result struct {
	// Allowed reports whether the request fits the current window budget.
	Allowed bool

	// Limit is the window budget the key is counted against.
	Limit int64

	// Remaining is the number of requests left in the current window.
	Remaining int64

	// RetryAfter is how long the caller should wait before retrying.
	// Zero when Allowed.
	RetryAfter time.Duration

	// CurrentHits is the counter value after this call.
	CurrentHits int64
}

// Limiter caps the request rate per key.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

// MemoryLimiter is a fixed-window limiter: each key gets a counter that is
// incremented per request and discarded when its window ends. Mutations run
// under a single mutex; the increment is trivial so contention stays low.
type MemoryLimiter struct {
	max    int64
	window time.Duration

	mu      sync.Mutex
	windows map[string]*window

	// now is swappable for tests.
	now func() time.Time
}

type window struct {
	start time.Time
	hits  int64
}

// NewMemoryLimiter builds a limiter allowing max requests per window per key.
func NewMemoryLimiter(max int, windowSize time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		max:     int64(max),
		window:  windowSize,
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

// Allow records one hit for key and reports whether it fits the budget.
// The error return exists to satisfy [Limiter]; the in-memory implementation
// never fails.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= l.window {
		w = &window{start: now.Truncate(l.window)}
		l.windows[key] = w
		l.pruneLocked(now)
	}

	w.hits++

	remaining := l.max - w.hits
	if remaining < 0 {
		remaining = 0
	}

	res := Result{
		Allowed:     w.hits <= l.max,
		Limit:       l.max,
		Remaining:   remaining,
		CurrentHits: w.hits,
	}
	if !res.Allowed {
		res.RetryAfter = w.start.Add(l.window).Sub(now)
		if res.RetryAfter < 0 {
			res.RetryAfter = 0
		}
	}

	return res, nil
}

// pruneLocked drops counters whose window has already ended so that the map
// does not grow with one entry per ever-seen key. Called with l.mu held,
// only on the window-rollover path.
func (l *MemoryLimiter) pruneLocked(now time.Time) {
	for key, w := range l.windows {
		if now.Sub(w.start) >= l.window {
			delete(l.windows, key)
		}
	}
}
