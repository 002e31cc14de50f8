// Package ratelimit provides a process-local windowed request counter used
// to deter abuse of the public creation and recovery endpoints. State lives
// in memory, is lost on restart, and is not shared across instances; that is
// acceptable for deterrence, not strict correctness. A distributed
// deployment replaces this with a shared counter behind the same interface.
package ratelimit

import (
	"sync"
	"time"

	"reachqr/internal/domain/service"
)

const (
	defaultMaxRequests = 5
	defaultWindow      = time.Minute
)

type record struct {
	count   int
	resetAt time.Time
}

type memoryLimiter struct {
	mu          sync.Mutex
	records     map[string]*record
	maxRequests int
	window      time.Duration
	now         func() time.Time
}

// NewMemoryLimiter is the constructor for the in-memory limiter. Non-positive
// arguments fall back to the defaults of 5 requests per 60 seconds.
func NewMemoryLimiter(maxRequests int, window time.Duration) service.RateLimiter {
	if maxRequests <= 0 {
		maxRequests = defaultMaxRequests
	}
	if window <= 0 {
		window = defaultWindow
	}

	return &memoryLimiter{
		records:     make(map[string]*record),
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
	}
}

// Allow counts a request for key and reports whether it is within the window
// budget. The first request after a window elapses resets the counter.
func (l *memoryLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	rec, ok := l.records[key]
	if !ok || now.After(rec.resetAt) {
		l.records[key] = &record{count: 1, resetAt: now.Add(l.window)}

		return true
	}

	if rec.count >= l.maxRequests {
		return false
	}

	rec.count++

	return true
}
