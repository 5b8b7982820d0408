package domain

import (
	"fmt"
	"net/mail"
	"time"
)

// DefaultLanguage is used when a profile is seeded without a preference
const DefaultLanguage = "en"

// ProfileRecord is the store-resident profile document. EmailConfirmed is the
// single source of truth for verification: the reconciler only ever advances
// it from false to true, never the reverse.
type ProfileRecord struct {
	ID                string     `json:"id"` // equals the session UID
	Email             string     `json:"email"`
	EmailConfirmed    bool       `json:"email_confirmed"`
	ConfirmedAt       *time.Time `json:"confirmed_at,omitempty"`
	PreferredLanguage string     `json:"preferred_language"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// ProfileSeed is the payload for lazy profile creation. EmailConfirmed is
// seeded from the provider claim as a best-effort starting point; it is not
// authoritative until confirmed by at least one write.
type ProfileSeed struct {
	UID               string `json:"uid"`
	Email             string `json:"email"`
	EmailConfirmed    bool   `json:"email_confirmed"`
	PreferredLanguage string `json:"preferred_language"`
}

// NewProfileSeed builds a creation seed from a live session
func NewProfileSeed(session *Session, language string) (*ProfileSeed, error) {
	if session == nil {
		return nil, fmt.Errorf("session is required")
	}
	if session.UID == "" {
		return nil, fmt.Errorf("session uid is required")
	}
	if _, err := mail.ParseAddress(session.Email); err != nil {
		return nil, fmt.Errorf("invalid email format: %w", err)
	}
	if language == "" {
		language = DefaultLanguage
	}

	return &ProfileSeed{
		UID:               session.UID,
		Email:             session.Email,
		EmailConfirmed:    session.ProviderConfirmed,
		PreferredLanguage: language,
	}, nil
}

// MarkConfirmed sets the authoritative flag, keeping the first confirmation time
func (p *ProfileRecord) MarkConfirmed(at time.Time) {
	if p.EmailConfirmed {
		return
	}
	p.EmailConfirmed = true
	p.ConfirmedAt = &at
	p.UpdatedAt = at
}

// ChangeLanguage updates the preferred language
func (p *ProfileRecord) ChangeLanguage(language string) error {
	if language == "" {
		return fmt.Errorf("language is required")
	}
	p.PreferredLanguage = language
	p.UpdatedAt = time.Now()
	return nil
}
