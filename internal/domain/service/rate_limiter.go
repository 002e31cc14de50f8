package service

// RateLimiter is a narrow seam over a shared request counter. The in-memory
// implementation is process-local; a horizontally scaled deployment swaps in
// a shared counter (e.g. an external cache) without changing callers.
type RateLimiter interface {
	// Allow reports whether the caller identified by key may proceed.
	// It never fails; on internal trouble it errs on the side of allowing.
	Allow(key string) bool
}
