package domain

import (
	"fmt"
	"time"
)

// Session is a read-only snapshot of the identity provider's live session.
// ProviderConfirmed is the provider's own verified claim and can be stale
// until the session is reloaded; it never overrides the profile record.
type Session struct {
	UID               string    `json:"uid"`
	Email             string    `json:"email"`
	ProviderConfirmed bool      `json:"provider_confirmed"`
	ProviderSessionID string    `json:"provider_session_id"`
	Active            bool      `json:"active"`
	AuthenticatedAt   time.Time `json:"authenticated_at"`
	ExpiresAt         time.Time `json:"expires_at"`
}

// NewSession creates a session snapshot with validation
func NewSession(uid, email, providerSessionID string, providerConfirmed bool) (*Session, error) {
	if uid == "" {
		return nil, fmt.Errorf("session uid is required")
	}
	if email == "" {
		return nil, fmt.Errorf("session email is required")
	}

	return &Session{
		UID:               uid,
		Email:             email,
		ProviderConfirmed: providerConfirmed,
		ProviderSessionID: providerSessionID,
		Active:            true,
		AuthenticatedAt:   time.Now(),
	}, nil
}

// IsExpired returns true if the provider reported an expiry that has passed
func (s *Session) IsExpired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

// IsValid returns true if the session is active and not expired
func (s *Session) IsValid() bool {
	return s.Active && !s.IsExpired()
}

// SignUpResult is returned by the identity gateway after registration.
// VerificationEmailSent reports the best-effort dispatch outcome; a failed
// dispatch never fails the sign-up itself.
type SignUpResult struct {
	Session               *Session `json:"session"`
	VerificationEmailSent bool     `json:"verification_email_sent"`
	DispatchError         string   `json:"dispatch_error,omitempty"`
}

// SignUpOutcome is what the session controller hands back to callers
type SignUpOutcome struct {
	Session                *Session          `json:"session"`
	State                  VerificationState `json:"state"`
	NeedsEmailVerification bool              `json:"needs_email_verification"`
	VerificationEmailSent  bool              `json:"verification_email_sent"`
}

// EmailDispatchResult reports a verification-email dispatch attempt.
// Dispatch is best-effort: the result object is always returned, never an error.
type EmailDispatchResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// SendEmailOptions carries optional hints for the verification email
type SendEmailOptions struct {
	LanguageCode string `json:"language_code,omitempty"`
}

// LinkResult reports a verification-link consumption attempt
type LinkResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// LinkOutcome is the final result of processing an inbound URL
type LinkOutcome struct {
	// Handled is false when the URL was not a verification link and was
	// forwarded to the generic link dispatcher instead.
	Handled bool              `json:"handled"`
	Success bool              `json:"success"`
	State   VerificationState `json:"state"`
	Error   string            `json:"error,omitempty"`
}
