package engine

import (
	"sync"
	"time"
)

// RateLimiter is a fixed-window counter that throttles outbound calls
// to the remote completion endpoint. State lives in process memory and
// resets on restart; this is a single-client approximation, not a
// distributed limiter.
type RateLimiter struct {
	mu          sync.Mutex
	max         int
	window      time.Duration
	count       int
	windowStart time.Time
	now         func() time.Time
}

// NewRateLimiter creates a limiter allowing max calls per window.
func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		max:    max,
		window: window,
		now:    time.Now,
	}
}

// SetClock replaces the limiter's clock. Tests use this to advance time
// deterministically.
func (r *RateLimiter) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
}

// Allow reports whether another remote call may be attempted. It resets
// the window when more than the window duration has elapsed since the
// window start. The caller must pair a successful Allow with Record
// only when a remote call is actually attempted.
func (r *RateLimiter) Allow() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if r.windowStart.IsZero() || now.Sub(r.windowStart) > r.window {
		r.count = 0
		r.windowStart = now
	}

	return r.count < r.max
}

// Record counts one attempted remote call against the current window.
func (r *RateLimiter) Record() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count++
}
