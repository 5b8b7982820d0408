package port

//go:generate mockgen -source=session_port.go -destination=../mocks/mock_session_port.go -package=mocks

import (
	"context"
	"time"

	"guide-auth/app/domain"
)

// SessionUsecase is the public surface of the session controller, the entry
// point of the subsystem. It owns exactly one live session, the restore gate,
// and the published verification state.
type SessionUsecase interface {
	SignIn(ctx context.Context, email, password string) (domain.VerificationState, error)
	SignUp(ctx context.Context, email, password string) (*domain.SignUpOutcome, error)
	SignOut(ctx context.Context) error
	EnterGuestMode()

	// ResendVerificationEmail is throttled by the cooldown guard; when denied
	// it returns domain.ErrResendCooldown and the remaining wait.
	ResendVerificationEmail(ctx context.Context) (*domain.EmailDispatchResult, time.Duration, error)

	// HandleForeground re-checks verification after the app returns to
	// foreground, only while the state is PendingVerification.
	HandleForeground(ctx context.Context) domain.VerificationState

	CurrentState() domain.VerificationState
	CurrentSession() *domain.Session
	CanAccessFeature(feature domain.Feature) bool
}

// DeepLinkUsecase drives verification completion from inbound URLs
type DeepLinkUsecase interface {
	HandleLink(ctx context.Context, rawURL string) (*domain.LinkOutcome, error)
}

// Reconciler computes the authoritative verification state for a session.
// It is the only component permitted to write the authoritative store flag.
type Reconciler interface {
	Reconcile(ctx context.Context, session *domain.Session) domain.VerificationState
}
