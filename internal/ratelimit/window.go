// Package ratelimit implements process-local admission control keyed by
// client identifier. State is not persisted and is not shared between
// processes; horizontally scaled deployments need an external counter store.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

const (
	DefaultMaxRequests = 3
	DefaultWindow      = time.Hour
)

// SlidingWindow admits at most max events per identifier within any
// trailing window. Only admitted events are recorded.
type SlidingWindow struct {
	max    int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	clients map[string][]time.Time
}

// Option configures a SlidingWindow.
type Option func(*SlidingWindow)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(l *SlidingWindow) {
		if now != nil {
			l.now = now
		}
	}
}

// New builds a limiter. Non-positive arguments fall back to
// DefaultMaxRequests and DefaultWindow.
func New(max int, window time.Duration, opts ...Option) *SlidingWindow {
	if max <= 0 {
		max = DefaultMaxRequests
	}
	if window <= 0 {
		window = DefaultWindow
	}
	l := &SlidingWindow{
		max:     max,
		window:  window,
		now:     time.Now,
		clients: make(map[string][]time.Time),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow records an event for id and reports whether it was admitted.
func (l *SlidingWindow) Allow(id string) bool {
	ok, _ := l.Take(id)
	return ok
}

// Take is Allow that also reports, on denial, how long until the oldest
// recorded event leaves the window.
func (l *SlidingWindow) Take(id string) (bool, time.Duration) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	live := l.prune(l.clients[id], now)
	if len(live) >= l.max {
		l.clients[id] = live
		return false, live[0].Add(l.window).Sub(now)
	}
	l.clients[id] = append(live, now)
	return true, 0
}

// Remaining reports how many events id may still record right now.
func (l *SlidingWindow) Remaining(id string) int {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	live := l.prune(l.clients[id], now)
	if len(live) == 0 {
		delete(l.clients, id)
	} else {
		l.clients[id] = live
	}
	return l.max - len(live)
}

// Sweep drops identifiers whose events have all left the window and
// returns how many were removed.
func (l *SlidingWindow) Sweep() int {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for id, stamps := range l.clients {
		live := l.prune(stamps, now)
		if len(live) == 0 {
			delete(l.clients, id)
			removed++
			continue
		}
		l.clients[id] = live
	}
	return removed
}

// Run sweeps every interval until ctx is cancelled.
func (l *SlidingWindow) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = l.window
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Sweep()
		}
	}
}

// Len returns the number of tracked identifiers.
func (l *SlidingWindow) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// prune keeps events strictly younger than the window. Elapsed time is the
// full duration, so windows longer than a day behave correctly. Caller
// holds l.mu.
func (l *SlidingWindow) prune(stamps []time.Time, now time.Time) []time.Time {
	live := stamps[:0]
	for _, ts := range stamps {
		if now.Sub(ts) < l.window {
			live = append(live, ts)
		}
	}
	return live
}
