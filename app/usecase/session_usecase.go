package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"guide-auth/app/domain"
	"guide-auth/app/port"
	"guide-auth/app/utils/validator"
)

// SessionUsecase is the session controller: the entry point of the
// subsystem. It owns exactly one live session, the restore gate, the resend
// cooldown, and the published verification state. Nothing else mutates them.
type SessionUsecase struct {
	identity   port.IdentityGateway
	profiles   port.ProfileRepository
	reconciler port.Reconciler
	gate       *domain.RestoreGate
	cooldown   *domain.ResendCooldown
	validator  *validator.Validator
	policy     *domain.FeaturePolicy
	logger     *slog.Logger

	// reconcileMu serializes reconciliations so a slow store read from an
	// older notification cannot complete after a newer sign-out and
	// resurrect cleared state.
	reconcileMu sync.Mutex

	mu      sync.Mutex
	session *domain.Session
	state   domain.VerificationState

	now func() time.Time
}

// NewSessionUsecase creates the session controller and registers it as the
// provider's single session observer.
func NewSessionUsecase(
	identity port.IdentityGateway,
	profiles port.ProfileRepository,
	reconciler port.Reconciler,
	cooldown *domain.ResendCooldown,
	policy *domain.FeaturePolicy,
	logger *slog.Logger,
) *SessionUsecase {
	uc := &SessionUsecase{
		identity:   identity,
		profiles:   profiles,
		reconciler: reconciler,
		gate:       domain.NewRestoreGate(),
		cooldown:   cooldown,
		validator:  validator.New(),
		policy:     policy,
		logger:     logger.With("component", "session_usecase"),
		state:      domain.StateNone,
		now:        time.Now,
	}

	identity.ObserveSessionChanges(uc.handleSessionChange)

	return uc
}

// SignIn authenticates credentials, opens the restore gate, and publishes
// the reconciled verification state.
func (uc *SessionUsecase) SignIn(ctx context.Context, email, password string) (domain.VerificationState, error) {
	if err := uc.validator.Validate(&domain.Credentials{Email: email, Password: password}); err != nil {
		return domain.StateNone, err
	}

	// The gate opens before the provider call so the resulting session
	// notification is honored.
	uc.gate.Open()

	session, err := uc.identity.SignIn(ctx, email, password)
	if err != nil {
		return domain.StateNone, err
	}

	state := uc.adoptAndReconcile(ctx, session)
	uc.logger.Info("sign-in reconciled", "uid", session.UID, "state", state)
	return state, nil
}

// SignUp registers a new account. The profile record is created eagerly, not
// lazily: if that write fails the sign-up is reported as failed while the
// provider-side account stays in place for a later retry via sign-in.
func (uc *SessionUsecase) SignUp(ctx context.Context, email, password string) (*domain.SignUpOutcome, error) {
	if err := uc.validator.Validate(&domain.Credentials{Email: email, Password: password}); err != nil {
		return nil, err
	}

	uc.gate.Open()

	// Held across registration and the eager create. The registration
	// notification must not reconcile first, or its lazy create commits
	// ahead of the eager insert and fails it with a duplicate key.
	uc.reconcileMu.Lock()
	defer uc.reconcileMu.Unlock()

	result, err := uc.identity.SignUp(ctx, email, password)
	if err != nil {
		return nil, err
	}

	seed, err := domain.NewProfileSeed(result.Session, domain.DefaultLanguage)
	if err != nil {
		return nil, fmt.Errorf("invalid registration session: %w", err)
	}

	if _, err := uc.profiles.Create(ctx, seed); err != nil {
		uc.logger.Error("profile creation failed after registration",
			"uid", result.Session.UID,
			"error", err)
		return nil, err
	}

	if result.VerificationEmailSent {
		uc.cooldown.RecordSent(uc.now())
	}

	state := uc.adoptAndReconcileLocked(ctx, result.Session)

	uc.logger.Info("sign-up completed",
		"uid", result.Session.UID,
		"state", state,
		"verification_email_sent", result.VerificationEmailSent)

	return &domain.SignUpOutcome{
		Session:                result.Session,
		State:                  state,
		NeedsEmailVerification: !result.Session.ProviderConfirmed,
		VerificationEmailSent:  result.VerificationEmailSent,
	}, nil
}

// SignOut clears the gate, session and state first, then signs out at the
// provider. Idempotent.
func (uc *SessionUsecase) SignOut(ctx context.Context) error {
	uc.gate.Close()

	uc.mu.Lock()
	uc.session = nil
	uc.state = domain.StateNone
	uc.mu.Unlock()

	if err := uc.identity.SignOut(ctx); err != nil {
		uc.logger.Error("provider sign-out failed", "error", err)
		return err
	}

	uc.logger.Info("signed out")
	return nil
}

// EnterGuestMode publishes the Guest state for unauthenticated browsing.
// A live session takes precedence; guests never gain non-basic features.
func (uc *SessionUsecase) EnterGuestMode() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.session != nil {
		return
	}
	uc.state = domain.StateGuest
	uc.logger.Info("entered guest mode")
}

// ResendVerificationEmail dispatches another verification email, throttled
// by the cooldown guard. A denied call returns domain.ErrResendCooldown and
// the remaining wait for the UI countdown; nothing is queued or retried.
func (uc *SessionUsecase) ResendVerificationEmail(ctx context.Context) (*domain.EmailDispatchResult, time.Duration, error) {
	uc.mu.Lock()
	session := uc.session
	uc.mu.Unlock()

	if session == nil {
		return nil, 0, domain.NewProviderError(domain.ProviderErrNoActiveSession, "no active session", nil)
	}

	now := uc.now()
	if !uc.cooldown.CanSend(now) {
		remaining := uc.cooldown.Remaining(now)
		uc.logger.Info("resend throttled", "uid", session.UID, "remaining", remaining)
		return nil, remaining, domain.ErrResendCooldown
	}

	result := uc.identity.SendVerificationEmail(ctx, &domain.SendEmailOptions{
		LanguageCode: uc.preferredLanguage(ctx, session.UID),
	})
	if result.Success {
		uc.cooldown.RecordSent(now)
	}

	return result, 0, nil
}

// preferredLanguage reads the stored language hint, best-effort
func (uc *SessionUsecase) preferredLanguage(ctx context.Context, uid string) string {
	record, err := uc.profiles.Get(ctx, uid)
	if err != nil || record == nil {
		return domain.DefaultLanguage
	}
	return record.PreferredLanguage
}

// HandleForeground re-checks verification when the app returns to the
// foreground, without user interaction, to pick up a confirmation completed
// out-of-band. Only runs while the state is PendingVerification.
func (uc *SessionUsecase) HandleForeground(ctx context.Context) domain.VerificationState {
	if uc.CurrentState() != domain.StatePendingVerification {
		return uc.CurrentState()
	}

	session, err := uc.identity.ReloadSession(ctx)
	if err != nil {
		uc.logger.Warn("foreground session reload failed", "error", err)
		return uc.CurrentState()
	}
	if session == nil {
		// Session died out-of-band; the nil notification clears state
		return uc.CurrentState()
	}

	state := uc.adoptAndReconcile(ctx, session)
	uc.logger.Info("foreground re-check completed", "uid", session.UID, "state", state)
	return state
}

// AdoptSession adopts a session produced by an explicit deep-link action.
// The link itself is the explicit user action, so the gate is forced open.
func (uc *SessionUsecase) AdoptSession(ctx context.Context, session *domain.Session) domain.VerificationState {
	uc.gate.Open()
	return uc.adoptAndReconcile(ctx, session)
}

// CurrentState returns the published verification state
func (uc *SessionUsecase) CurrentState() domain.VerificationState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}

// CurrentSession returns the adopted session, nil when signed out
func (uc *SessionUsecase) CurrentSession() *domain.Session {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.session
}

// CanAccessFeature maps the current state through the feature policy
func (uc *SessionUsecase) CanAccessFeature(feature domain.Feature) bool {
	return uc.policy.CanAccess(uc.CurrentState(), feature)
}

// handleSessionChange processes provider notifications in arrival order.
// A nil session is always honored; a non-nil session is ignored while the
// restore gate is closed so the app never silently resumes a previous
// session without an explicit action in this process lifetime.
func (uc *SessionUsecase) handleSessionChange(session *domain.Session) {
	if session == nil {
		uc.mu.Lock()
		if uc.session != nil {
			uc.session = nil
			uc.state = domain.StateNone
			uc.logger.Info("provider session cleared")
		}
		uc.mu.Unlock()
		return
	}

	if !uc.gate.Allowed() {
		uc.logger.Info("ignoring provider session, restore gate closed", "uid", session.UID)
		return
	}

	state := uc.adoptAndReconcile(context.Background(), session)
	uc.logger.Info("provider session reconciled", "uid", session.UID, "state", state)
}

// adoptAndReconcile adopts the session, reconciles it, and publishes the
// result unless a sign-out raced in between.
func (uc *SessionUsecase) adoptAndReconcile(ctx context.Context, session *domain.Session) domain.VerificationState {
	uc.reconcileMu.Lock()
	defer uc.reconcileMu.Unlock()
	return uc.adoptAndReconcileLocked(ctx, session)
}

// adoptAndReconcileLocked requires the caller to hold reconcileMu.
func (uc *SessionUsecase) adoptAndReconcileLocked(ctx context.Context, session *domain.Session) domain.VerificationState {
	uc.mu.Lock()
	uc.session = session
	uc.mu.Unlock()

	state := uc.reconciler.Reconcile(ctx, session)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.session == nil || uc.session.UID != session.UID {
		// Sign-out (or a different session) won the race; drop this result
		return uc.state
	}
	uc.state = state
	return state
}
