package domain

// VerificationState is the subsystem's single externally visible answer to
// "is this user's email confirmed". It is derived, held only in the session
// controller's memory, and never persisted across process restarts.
type VerificationState string

const (
	// StateVerified is only ever set after the reconciler observed the
	// profile record's authoritative flag as true. The provider claim alone
	// is never enough.
	StateVerified VerificationState = "verified"

	// StatePendingVerification is the fail-safe state: a session exists but
	// the record is unverified, missing, or the store could not be reached.
	StatePendingVerification VerificationState = "pending_verification"

	// StateGuest is an explicit unauthenticated browsing mode
	StateGuest VerificationState = "guest"

	// StateNone means no session and no guest mode
	StateNone VerificationState = "none"
)

// String implements fmt.Stringer
func (s VerificationState) String() string {
	return string(s)
}

// IsAuthenticated returns true when a provider session backs the state
func (s VerificationState) IsAuthenticated() bool {
	return s == StateVerified || s == StatePendingVerification
}

// Valid reports whether s is one of the known states
func (s VerificationState) Valid() bool {
	switch s {
	case StateVerified, StatePendingVerification, StateGuest, StateNone:
		return true
	}
	return false
}
