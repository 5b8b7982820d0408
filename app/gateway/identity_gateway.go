package gateway

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"guide-auth/app/domain"
	"guide-auth/app/port"
)

// IdentityGateway implements port.IdentityGateway over the low-level Kratos
// client. It acts as an anti-corruption layer between the domain and the
// identity provider: it owns the provider session token for this process and
// delivers session-change notifications in arrival order on a single-consumer
// channel, so observers never see interleaved updates.
type IdentityGateway struct {
	client port.KratosClient
	logger *slog.Logger

	mu           sync.Mutex
	sessionToken string
	session      *domain.Session

	handlerMu sync.Mutex
	handler   port.SessionChangeHandler

	events chan *domain.Session
	done   chan struct{}
	once   sync.Once
}

// sessionEventBuffer bounds in-flight notifications; the consumer is the
// session controller's reconciliation loop.
const sessionEventBuffer = 16

// NewIdentityGateway creates a new IdentityGateway instance
func NewIdentityGateway(client port.KratosClient, logger *slog.Logger) *IdentityGateway {
	g := &IdentityGateway{
		client: client,
		logger: logger.With("component", "identity_gateway"),
		events: make(chan *domain.Session, sessionEventBuffer),
		done:   make(chan struct{}),
	}

	go g.deliverEvents()

	return g
}

// Close stops notification delivery
func (g *IdentityGateway) Close() {
	g.once.Do(func() {
		close(g.done)
	})
}

// deliverEvents forwards session changes to the registered handler, one at a
// time and strictly in arrival order
func (g *IdentityGateway) deliverEvents() {
	for {
		select {
		case <-g.done:
			return
		case session := <-g.events:
			g.handlerMu.Lock()
			handler := g.handler
			g.handlerMu.Unlock()
			if handler != nil {
				handler(session)
			}
		}
	}
}

// notify queues a session-change notification
func (g *IdentityGateway) notify(session *domain.Session) {
	select {
	case g.events <- session:
	case <-g.done:
	}
}

// ObserveSessionChanges registers the single session observer; re-registering
// replaces the previous one
func (g *IdentityGateway) ObserveSessionChanges(handler port.SessionChangeHandler) {
	g.handlerMu.Lock()
	defer g.handlerMu.Unlock()
	g.handler = handler
}

// SignIn authenticates existing credentials and adopts the provider session
func (g *IdentityGateway) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	g.logger.Info("signing in")

	session, token, err := g.client.Login(ctx, email, password)
	if err != nil {
		g.logger.Error("sign-in failed", "error", err)
		return nil, err
	}

	g.adoptSession(session, token)
	g.notify(session)

	g.logger.Info("sign-in succeeded",
		"uid", session.UID,
		"provider_confirmed", session.ProviderConfirmed)

	return session, nil
}

// SignUp registers a new account. The verification email dispatch is
// attempted before returning; a dispatch failure is reported on the result,
// never as an error.
func (g *IdentityGateway) SignUp(ctx context.Context, email, password string) (*domain.SignUpResult, error) {
	g.logger.Info("signing up")

	session, token, err := g.client.Register(ctx, email, password)
	if err != nil {
		g.logger.Error("sign-up failed", "error", err)
		return nil, err
	}

	g.adoptSession(session, token)

	result := &domain.SignUpResult{Session: session}
	if session.ProviderConfirmed {
		// Nothing to verify; skip dispatch
		result.VerificationEmailSent = false
	} else if err := g.client.StartVerification(ctx, token, session.Email, ""); err != nil {
		g.logger.Warn("verification email dispatch failed", "uid", session.UID, "error", err)
		result.DispatchError = err.Error()
	} else {
		result.VerificationEmailSent = true
	}

	g.notify(session)

	g.logger.Info("sign-up succeeded",
		"uid", session.UID,
		"verification_email_sent", result.VerificationEmailSent)

	return result, nil
}

// SignOut terminates the provider session. Idempotent: signing out without a
// session is a successful no-op.
func (g *IdentityGateway) SignOut(ctx context.Context) error {
	g.mu.Lock()
	token := g.sessionToken
	g.sessionToken = ""
	g.session = nil
	g.mu.Unlock()

	g.notify(nil)

	if token == "" {
		return nil
	}

	if err := g.client.Logout(ctx, token); err != nil {
		g.logger.Error("provider sign-out failed", "error", err)
		return err
	}

	g.logger.Info("signed out")
	return nil
}

// ReloadSession forces a refresh of the provider's local claim. Returns
// (nil, nil) when no session is active; a session invalidated out-of-band is
// reported as cleared to the observer.
func (g *IdentityGateway) ReloadSession(ctx context.Context) (*domain.Session, error) {
	g.mu.Lock()
	token := g.sessionToken
	g.mu.Unlock()

	if token == "" {
		return nil, nil
	}

	session, err := g.client.WhoAmI(ctx, token)
	if err != nil {
		if pe, ok := domain.AsProviderError(err); ok && pe.Code == domain.ProviderErrNoActiveSession {
			g.logger.Info("session no longer active at provider")
			g.mu.Lock()
			g.sessionToken = ""
			g.session = nil
			g.mu.Unlock()
			g.notify(nil)
			return nil, nil
		}
		g.logger.Error("session reload failed", "error", err)
		return nil, err
	}

	g.mu.Lock()
	g.session = session
	g.mu.Unlock()

	g.logger.Info("session reloaded",
		"uid", session.UID,
		"provider_confirmed", session.ProviderConfirmed)

	return session, nil
}

// SendVerificationEmail dispatches a verification email for the current
// session. Best-effort: failures are reported on the result object.
func (g *IdentityGateway) SendVerificationEmail(ctx context.Context, opts *domain.SendEmailOptions) *domain.EmailDispatchResult {
	g.mu.Lock()
	token := g.sessionToken
	session := g.session
	g.mu.Unlock()

	if session == nil {
		return &domain.EmailDispatchResult{Success: false, Error: domain.ErrNoActiveSession.Error()}
	}

	language := ""
	if opts != nil {
		language = opts.LanguageCode
	}

	if err := g.client.StartVerification(ctx, token, session.Email, language); err != nil {
		g.logger.Warn("verification email dispatch failed", "uid", session.UID, "error", err)
		return &domain.EmailDispatchResult{Success: false, Error: err.Error()}
	}

	g.logger.Info("verification email dispatched", "uid", session.UID, "language", language)
	return &domain.EmailDispatchResult{Success: true}
}

// IsVerificationLink classifies an inbound URL
func (g *IdentityGateway) IsVerificationLink(rawURL string) bool {
	_, _, ok := ParseVerificationLink(rawURL)
	return ok
}

// ConsumeVerificationLink validates and applies a verification link against
// the currently signed-in session
func (g *IdentityGateway) ConsumeVerificationLink(ctx context.Context, rawURL string) *domain.LinkResult {
	flowID, code, ok := ParseVerificationLink(rawURL)
	if !ok {
		return &domain.LinkResult{Success: false, Error: domain.ErrNotVerificationLink.Error()}
	}

	g.mu.Lock()
	token := g.sessionToken
	g.mu.Unlock()

	if token == "" {
		return &domain.LinkResult{Success: false, Error: domain.ErrNoActiveSession.Error()}
	}

	if err := g.client.CompleteVerification(ctx, token, flowID, code); err != nil {
		g.logger.Warn("verification link consumption failed",
			"flow_id", flowID,
			"error", err)
		return &domain.LinkResult{Success: false, Error: err.Error()}
	}

	g.logger.Info("verification link consumed", "flow_id", flowID)
	return &domain.LinkResult{Success: true}
}

// CurrentSession returns the last adopted session snapshot
func (g *IdentityGateway) CurrentSession() *domain.Session {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session
}

func (g *IdentityGateway) adoptSession(session *domain.Session, token string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.session = session
	g.sessionToken = token
}

// ParseVerificationLink extracts the flow id and code from a verification
// deep link. Links look like
// https://app.example.com/verify?flow=<uuid>&code=<code> or point at the
// provider's self-service verification endpoint.
func ParseVerificationLink(rawURL string) (flowID, code string, ok bool) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", "", false
	}

	path := strings.ToLower(parsed.Path)
	if !strings.Contains(path, "verif") {
		return "", "", false
	}

	query := parsed.Query()
	flowID = query.Get("flow")
	code = query.Get("code")
	if flowID == "" || code == "" {
		return "", "", false
	}

	return flowID, code, true
}
