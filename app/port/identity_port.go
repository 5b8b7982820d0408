package port

//go:generate mockgen -source=identity_port.go -destination=../mocks/mock_identity_port.go -package=mocks

import (
	"context"

	"guide-auth/app/domain"
)

// SessionChangeHandler receives provider session notifications, nil when the
// provider's local session was cleared. Handlers are invoked in arrival order.
type SessionChangeHandler func(session *domain.Session)

// IdentityGateway is the narrow client for the hosted identity provider.
// All operations resolve within the gateway's configured timeout; failures
// surface as *domain.ProviderError.
type IdentityGateway interface {
	// SignUp registers a new account and attempts to dispatch a verification
	// email before returning. Dispatch failure is reported via the result,
	// never as an error.
	SignUp(ctx context.Context, email, password string) (*domain.SignUpResult, error)

	// SignIn authenticates existing credentials
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)

	// SignOut terminates the provider session. Idempotent.
	SignOut(ctx context.Context) error

	// ObserveSessionChanges registers the single session observer.
	// Re-registering replaces the previous one.
	ObserveSessionChanges(handler SessionChangeHandler)

	// ReloadSession forces the provider to refresh its local claim and
	// returns the refreshed session, (nil, nil) when none is active.
	ReloadSession(ctx context.Context) (*domain.Session, error)

	// SendVerificationEmail dispatches a verification email for the current
	// session. Best-effort: always returns a result object, never an error.
	SendVerificationEmail(ctx context.Context, opts *domain.SendEmailOptions) *domain.EmailDispatchResult

	// IsVerificationLink classifies an inbound URL
	IsVerificationLink(rawURL string) bool

	// ConsumeVerificationLink validates and applies a verification link
	// against the currently signed-in session
	ConsumeVerificationLink(ctx context.Context, rawURL string) *domain.LinkResult
}

// KratosClient is the low-level driver interface the identity gateway builds
// on. It speaks in provider terms (flows, session tokens); the gateway is the
// anti-corruption layer on top.
type KratosClient interface {
	Register(ctx context.Context, email, password string) (*domain.Session, string, error)
	Login(ctx context.Context, email, password string) (*domain.Session, string, error)
	Logout(ctx context.Context, sessionToken string) error
	WhoAmI(ctx context.Context, sessionToken string) (*domain.Session, error)
	StartVerification(ctx context.Context, sessionToken, email, languageCode string) error
	CompleteVerification(ctx context.Context, sessionToken, flowID, code string) error
}

// LinkDispatcher receives inbound URLs that are not verification links.
// Implemented by the host application; out of scope here.
type LinkDispatcher interface {
	Dispatch(ctx context.Context, rawURL string)
}
