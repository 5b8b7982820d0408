package usecase

import (
	"context"
	"log/slog"

	"guide-auth/app/domain"
	"guide-auth/app/port"
)

// ReconcileUsecase computes the authoritative verification state for a
// session from the profile record and the provider claim. It is the only
// component that writes the authoritative flag.
//
// Tie-break rule: the profile record is authoritative. The provider claim is
// only used to advance the record from unverified to verified, never the
// reverse, so a stale cached claim can neither regress a confirmed user nor
// grant access before the store agrees.
type ReconcileUsecase struct {
	profiles        port.ProfileRepository
	defaultLanguage string
	logger          *slog.Logger
}

// NewReconcileUsecase creates a new ReconcileUsecase
func NewReconcileUsecase(profiles port.ProfileRepository, defaultLanguage string, logger *slog.Logger) *ReconcileUsecase {
	if defaultLanguage == "" {
		defaultLanguage = domain.DefaultLanguage
	}
	return &ReconcileUsecase{
		profiles:        profiles,
		defaultLanguage: defaultLanguage,
		logger:          logger.With("component", "reconcile_usecase"),
	}
}

// Reconcile derives the verification state. Store errors are recovered
// locally: they are logged and the state degrades to PendingVerification,
// never to Verified, and never abort the caller. At most one store write
// happens per call (the sync-back).
func (uc *ReconcileUsecase) Reconcile(ctx context.Context, session *domain.Session) domain.VerificationState {
	if session == nil {
		return domain.StateNone
	}

	record, err := uc.profiles.Get(ctx, session.UID)
	if err != nil {
		uc.logger.Warn("profile read failed, degrading to pending",
			"uid", session.UID,
			"error", err)
		return domain.StatePendingVerification
	}

	if record == nil {
		record, err = uc.createSeed(ctx, session)
		if err != nil {
			uc.logger.Warn("profile seed creation failed, degrading to pending",
				"uid", session.UID,
				"error", err)
			return domain.StatePendingVerification
		}
	}

	if record.EmailConfirmed {
		return domain.StateVerified
	}

	// Record says unverified; check whether the provider has since confirmed
	if session.ProviderConfirmed {
		if err := uc.profiles.SetVerified(ctx, session.UID); err != nil {
			// Sync-back failed: the store has not agreed yet, so the state
			// stays restrictive. The next reconcile retries the write.
			uc.logger.Warn("verification sync-back failed, degrading to pending",
				"uid", session.UID,
				"error", err)
			return domain.StatePendingVerification
		}
		uc.logger.Info("verification synced back to profile store", "uid", session.UID)
		return domain.StateVerified
	}

	return domain.StatePendingVerification
}

// createSeed lazily creates the profile record, seeded from the session
// claim as a best-effort starting point
func (uc *ReconcileUsecase) createSeed(ctx context.Context, session *domain.Session) (*domain.ProfileRecord, error) {
	seed, err := domain.NewProfileSeed(session, uc.defaultLanguage)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("creating profile seed",
		"uid", session.UID,
		"seed_confirmed", seed.EmailConfirmed)

	return uc.profiles.Create(ctx, seed)
}
