package port

//go:generate mockgen -source=profile_port.go -destination=../mocks/mock_profile_port.go -package=mocks

import (
	"context"

	"guide-auth/app/domain"
)

// ProfileRepository is the narrow client for the authoritative profile store.
// Failures surface as *domain.StoreError; the reconciler recovers them
// locally and degrades toward PendingVerification.
type ProfileRepository interface {
	// Get returns the profile record, (nil, nil) when absent. Not-found is
	// not an error.
	Get(ctx context.Context, uid string) (*domain.ProfileRecord, error)

	// Create inserts a record from the seed and returns it
	Create(ctx context.Context, seed *domain.ProfileSeed) (*domain.ProfileRecord, error)

	// SetVerified sets the authoritative flag and stamps confirmed_at on the
	// first transition. Idempotent; a repeat call is a successful no-op.
	SetVerified(ctx context.Context, uid string) error

	// UpdateLanguage changes the stored language preference
	UpdateLanguage(ctx context.Context, uid, language string) error
}
