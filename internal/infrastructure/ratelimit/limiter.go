package ratelimit

import (
	"context"
	"strings"
	"sync"
	"time"
)

type window struct {
	start time.Time
	count int
}

// Limiter enforces a per-user search budget over a fixed window. It replaces
// ambient module-level state with an explicit component: construct on
// startup, sweep periodically, stop via context.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*window
	max     int
	window  time.Duration
	now     func() time.Time
}

// NewLimiter creates a limiter allowing max calls per user per window.
func NewLimiter(max int, win time.Duration) *Limiter {
	return &Limiter{
		entries: make(map[string]*window),
		max:     max,
		window:  win,
		now:     time.Now,
	}
}

// Allow records one attempt for the user and reports whether it is within
// budget, plus the remaining allowance.
func (l *Limiter) Allow(user string) (bool, int) {
	key := strings.ToLower(user)
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok || now.Sub(e.start) > l.window {
		l.entries[key] = &window{start: now, count: 1}
		return true, l.max - 1
	}

	if e.count >= l.max {
		return false, 0
	}

	e.count++
	return true, l.max - e.count
}

// StartSweeper evicts expired windows every interval until ctx is done.
func (l *Limiter) StartSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.sweep()
		}
	}
}

func (l *Limiter) sweep() {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, e := range l.entries {
		if now.Sub(e.start) > l.window {
			delete(l.entries, key)
		}
	}
}
