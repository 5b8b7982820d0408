package domain

import (
	"sync"
	"time"
)

// DefaultResendWindow is the minimum gap between verification-email resends
const DefaultResendWindow = 60 * time.Second

// ResendCooldown throttles verification-email dispatch. It holds a single
// timestamp and never queues or retries; a denied call is a no-op the caller
// must re-trigger. One instance lives per session controller lifetime.
type ResendCooldown struct {
	mu       sync.Mutex
	window   time.Duration
	lastSent time.Time
}

// NewResendCooldown creates a cooldown guard. A non-positive window falls
// back to DefaultResendWindow.
func NewResendCooldown(window time.Duration) *ResendCooldown {
	if window <= 0 {
		window = DefaultResendWindow
	}
	return &ResendCooldown{window: window}
}

// CanSend reports whether the window has elapsed since the last recorded send
func (c *ResendCooldown) CanSend(now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSent.IsZero() || now.Sub(c.lastSent) >= c.window
}

// RecordSent stores the dispatch timestamp
func (c *ResendCooldown) RecordSent(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastSent = now
}

// Remaining returns the wait left before the next send is allowed, for the
// caller to surface as a countdown. Zero when sending is allowed.
func (c *ResendCooldown) Remaining(now time.Time) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastSent.IsZero() {
		return 0
	}
	remaining := c.window - now.Sub(c.lastSent)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Window returns the configured cooldown window
func (c *ResendCooldown) Window() time.Duration {
	return c.window
}
