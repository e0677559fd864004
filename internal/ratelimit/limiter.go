// Package ratelimit implements a fixed-window request counter keyed by
// identifier. It is a defensive layer, not a correctness mechanism: it never
// returns an error and fails open when anything looks wrong internally.
package ratelimit

import (
	"sync"
	"time"
)

type record struct {
	count         int
	windowResetAt time.Time
}

// Result is the limiter's verdict for one request.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Limiter counts requests per identifier within fixed, non-overlapping
// windows. Safe for concurrent use; per-identifier accounting stays
// consistent under concurrent checks of the same identifier.
type Limiter struct {
	max    int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	records map[string]*record
	// checks since the last expired-record sweep
	sinceSweep int
}

// sweepEvery bounds how often the opportunistic GC pass runs.
const sweepEvery = 1024

type Option func(*Limiter)

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

func New(maxRequests int, window time.Duration, opts ...Option) *Limiter {
	l := &Limiter{
		max:     maxRequests,
		window:  window,
		now:     time.Now,
		records: make(map[string]*record),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Check records one request from identifier and reports whether it is within
// the window's budget. Increments are not reversible; an aborted request
// still counts. A request arriving exactly at the reset instant starts a new
// window (now >= resetAt is the reset condition).
func (l *Limiter) Check(identifier string) Result {
	if l == nil || l.max <= 0 || l.window <= 0 {
		// Misconfigured limiter: fail open rather than block traffic.
		return Result{Allowed: true, Limit: l.limitOrZero(), Remaining: l.limitOrZero()}
	}

	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.maybeSweep(now)

	rec, ok := l.records[identifier]
	if !ok || !now.Before(rec.windowResetAt) {
		rec = &record{count: 1, windowResetAt: now.Add(l.window)}
		l.records[identifier] = rec
		return Result{Allowed: true, Limit: l.max, Remaining: l.max - 1, ResetAt: rec.windowResetAt}
	}

	rec.count++
	if rec.count > l.max {
		return Result{Allowed: false, Limit: l.max, Remaining: 0, ResetAt: rec.windowResetAt}
	}
	return Result{Allowed: true, Limit: l.max, Remaining: l.max - rec.count, ResetAt: rec.windowResetAt}
}

func (l *Limiter) limitOrZero() int {
	if l == nil {
		return 0
	}
	return l.max
}

// maybeSweep drops expired records so the table doesn't grow with every
// identifier ever seen. Called with the lock held.
func (l *Limiter) maybeSweep(now time.Time) {
	l.sinceSweep++
	if l.sinceSweep < sweepEvery {
		return
	}
	l.sinceSweep = 0
	for id, rec := range l.records {
		if !now.Before(rec.windowResetAt) {
			delete(l.records, id)
		}
	}
}
