package domain

import "sync"

// RestoreGate prevents silent resumption of a previously authenticated
// session within a process lifetime. It starts closed; only an explicit
// sign-in, sign-up, or deep-link action opens it. While closed, provider
// notifications that carry a non-nil session are ignored for state purposes.
// A transition to nil (signed out elsewhere) is always honored regardless
// of the gate.
type RestoreGate struct {
	mu      sync.Mutex
	allowed bool
}

// NewRestoreGate creates a gate in its closed (cold start) position
func NewRestoreGate() *RestoreGate {
	return &RestoreGate{}
}

// Open marks an explicit user action; subsequent non-nil notifications are honored
func (g *RestoreGate) Open() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.allowed = true
}

// Close resets the gate, called on sign-out
func (g *RestoreGate) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.allowed = false
}

// Allowed reports whether provider-originated sessions may be adopted
func (g *RestoreGate) Allowed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.allowed
}
