package postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"guide-auth/app/domain"
	"guide-auth/app/port"
)

// ProfileRepository implements port.ProfileRepository for PostgreSQL.
// Every failure is wrapped as *domain.StoreError so the reconciliation flow
// can recover locally instead of crashing.
type ProfileRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewProfileRepository creates a new PostgreSQL profile repository
func NewProfileRepository(db DatabaseIface, logger *slog.Logger) port.ProfileRepository {
	return &ProfileRepository{
		db:     db,
		logger: logger.With("component", "profile_repository"),
	}
}

// Get returns the profile record for the uid, (nil, nil) when absent
func (r *ProfileRepository) Get(ctx context.Context, uid string) (*domain.ProfileRecord, error) {
	query := `
		SELECT
			id, email, email_confirmed, confirmed_at,
			preferred_language, created_at, updated_at
		FROM user_profiles
		WHERE id = $1`

	record := &domain.ProfileRecord{}
	err := r.db.QueryRow(ctx, query, uid).Scan(
		&record.ID,
		&record.Email,
		&record.EmailConfirmed,
		&record.ConfirmedAt,
		&record.PreferredLanguage,
		&record.CreatedAt,
		&record.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("failed to read profile", "uid", uid, "error", err)
		return nil, domain.NewStoreError("get", "failed to read profile", err)
	}

	return record, nil
}

// Create inserts a record from the seed and returns it. The seeded confirmed
// flag is a best-effort starting point taken from the provider claim.
func (r *ProfileRepository) Create(ctx context.Context, seed *domain.ProfileSeed) (*domain.ProfileRecord, error) {
	query := `
		INSERT INTO user_profiles (
			id, email, email_confirmed, confirmed_at,
			preferred_language, created_at, updated_at
		) VALUES (
			$1, $2, $3,
			CASE WHEN $3 THEN now() ELSE NULL END,
			$4, now(), now()
		)
		RETURNING id, email, email_confirmed, confirmed_at,
			preferred_language, created_at, updated_at`

	r.logger.Info("creating profile",
		"uid", seed.UID,
		"seed_confirmed", seed.EmailConfirmed)

	record := &domain.ProfileRecord{}
	err := r.db.QueryRow(ctx, query,
		seed.UID,
		seed.Email,
		seed.EmailConfirmed,
		seed.PreferredLanguage,
	).Scan(
		&record.ID,
		&record.Email,
		&record.EmailConfirmed,
		&record.ConfirmedAt,
		&record.PreferredLanguage,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("failed to create profile", "uid", seed.UID, "error", err)
		return nil, domain.NewStoreError("create", "failed to create profile", err)
	}

	return record, nil
}

// SetVerified advances the authoritative flag. confirmed_at is stamped only
// on the first transition; repeat calls are successful no-ops, as is a call
// for an absent row.
func (r *ProfileRepository) SetVerified(ctx context.Context, uid string) error {
	query := `
		UPDATE user_profiles
		SET email_confirmed = TRUE,
			confirmed_at = COALESCE(confirmed_at, now()),
			updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, uid)
	if err != nil {
		r.logger.Error("failed to set verified", "uid", uid, "error", err)
		return domain.NewStoreError("set_verified", "failed to set verified", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Warn("set verified on absent profile", "uid", uid)
	}

	return nil
}

// UpdateLanguage changes the stored language preference
func (r *ProfileRepository) UpdateLanguage(ctx context.Context, uid, language string) error {
	query := `
		UPDATE user_profiles
		SET preferred_language = $2,
			updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, uid, language)
	if err != nil {
		r.logger.Error("failed to update language", "uid", uid, "error", err)
		return domain.NewStoreError("update_language", "failed to update language", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.NewStoreError("update_language", "profile not found", domain.ErrProfileNotFound)
	}

	return nil
}
