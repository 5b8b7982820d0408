package usecase

import (
	"context"
	"log/slog"

	"guide-auth/app/domain"
	"guide-auth/app/port"
)

// sessionAdopter is the slice of the session controller the deep-link
// handler needs: adopting a link-produced session counts as an explicit
// user action and opens the restore gate.
type sessionAdopter interface {
	AdoptSession(ctx context.Context, session *domain.Session) domain.VerificationState
	CurrentState() domain.VerificationState
}

// DeepLinkUsecase routes inbound URLs: verification links are consumed and
// reconciled, everything else is forwarded to the dispatcher untouched.
type DeepLinkUsecase struct {
	identity   port.IdentityGateway
	adopter    sessionAdopter
	dispatcher port.LinkDispatcher
	logger     *slog.Logger
}

// NewDeepLinkUsecase creates the deep-link handler. dispatcher may be nil
// when the host does not route non-verification links.
func NewDeepLinkUsecase(identity port.IdentityGateway, adopter sessionAdopter, dispatcher port.LinkDispatcher, logger *slog.Logger) *DeepLinkUsecase {
	return &DeepLinkUsecase{
		identity:   identity,
		adopter:    adopter,
		dispatcher: dispatcher,
		logger:     logger.With("component", "deeplink_usecase"),
	}
}

// HandleLink inspects the URL before consuming it. Non-verification links
// report Handled=false and are passed through to the dispatcher. Consumption
// failures are reported in the outcome, not as a Go error, because the link
// arrived from outside and there is no caller to retry.
func (uc *DeepLinkUsecase) HandleLink(ctx context.Context, rawURL string) (*domain.LinkOutcome, error) {
	if !uc.identity.IsVerificationLink(rawURL) {
		if uc.dispatcher != nil {
			uc.dispatcher.Dispatch(ctx, rawURL)
		}
		return &domain.LinkOutcome{Handled: false}, nil
	}

	result := uc.identity.ConsumeVerificationLink(ctx, rawURL)
	if !result.Success {
		if outcome := uc.replayOutcome(ctx); outcome != nil {
			return outcome, nil
		}
		uc.logger.Warn("verification link consumption failed", "error", result.Error)
		return &domain.LinkOutcome{
			Handled: true,
			Success: false,
			State:   uc.adopter.CurrentState(),
			Error:   result.Error,
		}, nil
	}

	session, err := uc.identity.ReloadSession(ctx)
	if err != nil {
		uc.logger.Warn("session reload after verification failed", "error", err)
		return &domain.LinkOutcome{
			Handled: true,
			Success: false,
			State:   uc.adopter.CurrentState(),
			Error:   err.Error(),
		}, nil
	}
	if session == nil {
		return &domain.LinkOutcome{
			Handled: true,
			Success: false,
			State:   uc.adopter.CurrentState(),
			Error:   domain.ErrNoActiveSession.Error(),
		}, nil
	}

	state := uc.adopter.AdoptSession(ctx, session)
	uc.logger.Info("verification link completed", "uid", session.UID, "state", state)

	return &domain.LinkOutcome{
		Handled: true,
		Success: true,
		State:   state,
	}, nil
}

// replayOutcome resolves a failed consumption that was a replay of a link
// already applied. The provider rejects a consumed or expired flow even
// though the address itself is verified, so the refreshed claim decides:
// a confirmed session means the link already did its work.
func (uc *DeepLinkUsecase) replayOutcome(ctx context.Context) *domain.LinkOutcome {
	session, err := uc.identity.ReloadSession(ctx)
	if err != nil || session == nil || !session.ProviderConfirmed {
		return nil
	}

	state := uc.adopter.AdoptSession(ctx, session)
	uc.logger.Info("verification link replay resolved by claim", "uid", session.UID, "state", state)

	return &domain.LinkOutcome{
		Handled: true,
		Success: true,
		State:   state,
	}
}
