package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"guide-auth/app/domain"
	"guide-auth/app/port"
	apperrors "guide-auth/app/utils/errors"
	"guide-auth/app/utils/validator"
)

// AuthHandler exposes the session controller over HTTP
type AuthHandler struct {
	sessions  port.SessionUsecase
	deepLinks port.DeepLinkUsecase
	logger    *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessions port.SessionUsecase, deepLinks port.DeepLinkUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		sessions:  sessions,
		deepLinks: deepLinks,
		logger:    logger,
	}
}

// SignUp registers a new account
// @Summary Register a new account
// @Description Create an account, dispatch a verification email and return the reconciled state
// @Tags auth
// @Accept json
// @Produce json
// @Param body body CredentialsRequest true "Registration credentials"
// @Success 201 {object} SignUpResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /v1/auth/signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	ctx := c.Request().Context()

	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrBadRequest.WithDetails("request body could not be parsed"))
	}

	outcome, err := h.sessions.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.Error("sign-up failed", "email", req.Email, "error", err)
		return h.respondDomainError(c, err)
	}

	h.logger.Info("sign-up succeeded",
		"uid", outcome.Session.UID,
		"state", outcome.State,
		"verification_email_sent", outcome.VerificationEmailSent)

	return c.JSON(http.StatusCreated, SignUpResponse{
		UID:                    outcome.Session.UID,
		Email:                  outcome.Session.Email,
		State:                  string(outcome.State),
		NeedsEmailVerification: outcome.NeedsEmailVerification,
		VerificationEmailSent:  outcome.VerificationEmailSent,
	})
}

// SignIn authenticates credentials
// @Summary Sign in
// @Description Authenticate credentials and return the reconciled verification state
// @Tags auth
// @Accept json
// @Produce json
// @Param body body CredentialsRequest true "Login credentials"
// @Success 200 {object} StateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /v1/auth/signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	ctx := c.Request().Context()

	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrBadRequest.WithDetails("request body could not be parsed"))
	}

	state, err := h.sessions.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.Warn("sign-in failed", "email", req.Email, "error", err)
		return h.respondDomainError(c, err)
	}

	return c.JSON(http.StatusOK, StateResponse{State: string(state)})
}

// SignOut terminates the current session
// @Summary Sign out
// @Description Clear local state and terminate the provider session
// @Tags auth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 503 {object} ErrorResponse
// @Router /v1/auth/signout [post]
func (h *AuthHandler) SignOut(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.sessions.SignOut(ctx); err != nil {
		h.logger.Error("sign-out failed", "error", err)
		return h.respondDomainError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "signed out"})
}

// EnterGuestMode switches to unauthenticated browsing
// @Summary Enter guest mode
// @Tags auth
// @Produce json
// @Success 200 {object} StateResponse
// @Router /v1/auth/guest [post]
func (h *AuthHandler) EnterGuestMode(c echo.Context) error {
	h.sessions.EnterGuestMode()
	return c.JSON(http.StatusOK, StateResponse{State: string(h.sessions.CurrentState())})
}

// ResendVerificationEmail dispatches another verification email
// @Summary Resend verification email
// @Description Dispatch another verification email, throttled by the resend cooldown
// @Tags auth
// @Produce json
// @Success 200 {object} ResendResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ResendResponse "Cooldown active, retry_after_seconds set"
// @Router /v1/auth/verification/resend [post]
func (h *AuthHandler) ResendVerificationEmail(c echo.Context) error {
	ctx := c.Request().Context()

	result, remaining, err := h.sessions.ResendVerificationEmail(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrResendCooldown) {
			return c.JSON(http.StatusTooManyRequests, ResendResponse{
				Sent:              false,
				RetryAfterSeconds: int(remaining.Seconds()) + 1,
			})
		}
		h.logger.Warn("resend rejected", "error", err)
		return h.respondDomainError(c, err)
	}

	return c.JSON(http.StatusOK, ResendResponse{
		Sent:  result.Success,
		Error: result.Error,
	})
}

// HandleLink processes an inbound deep link
// @Summary Handle a deep link
// @Description Classify the URL, consume it as a verification link when applicable
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LinkRequest true "Inbound URL"
// @Success 200 {object} LinkResponse
// @Failure 400 {object} ErrorResponse
// @Router /v1/auth/links [post]
func (h *AuthHandler) HandleLink(c echo.Context) error {
	ctx := c.Request().Context()

	var req LinkRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrBadRequest.WithDetails("request body could not be parsed"))
	}
	if req.URL == "" {
		return respondError(c, apperrors.ErrMissingField.WithDetails("url is required"))
	}

	outcome, err := h.deepLinks.HandleLink(ctx, req.URL)
	if err != nil {
		h.logger.Error("link handling failed", "error", err)
		return h.respondDomainError(c, err)
	}

	return c.JSON(http.StatusOK, LinkResponse{
		Handled: outcome.Handled,
		Success: outcome.Success,
		State:   string(outcome.State),
		Error:   outcome.Error,
	})
}

// CurrentState reports the published verification state
// @Summary Current verification state
// @Tags auth
// @Produce json
// @Success 200 {object} StateResponse
// @Router /v1/auth/state [get]
func (h *AuthHandler) CurrentState(c echo.Context) error {
	resp := StateResponse{State: string(h.sessions.CurrentState())}
	if session := h.sessions.CurrentSession(); session != nil {
		resp.UID = session.UID
		resp.Email = session.Email
	}
	return c.JSON(http.StatusOK, resp)
}

// HandleForeground re-checks verification on app foreground
// @Summary Foreground re-check
// @Description Reload the provider session and re-reconcile while verification is pending
// @Tags auth
// @Produce json
// @Success 200 {object} StateResponse
// @Router /v1/auth/foreground [post]
func (h *AuthHandler) HandleForeground(c echo.Context) error {
	state := h.sessions.HandleForeground(c.Request().Context())
	return c.JSON(http.StatusOK, StateResponse{State: string(state)})
}

// CheckFeature reports whether the current state grants a feature
// @Summary Check feature access
// @Tags auth
// @Produce json
// @Param feature path string true "Feature name"
// @Success 200 {object} FeatureResponse
// @Failure 400 {object} ErrorResponse
// @Router /v1/auth/features/{feature} [get]
func (h *AuthHandler) CheckFeature(c echo.Context) error {
	name := c.Param("feature")
	if !validator.IsValidFeatureName(name) {
		return respondError(c, apperrors.ErrInvalidInput.WithDetails("invalid feature name"))
	}

	feature := domain.Feature(name)
	return c.JSON(http.StatusOK, FeatureResponse{
		Feature: name,
		Allowed: h.sessions.CanAccessFeature(feature),
		State:   string(h.sessions.CurrentState()),
	})
}

// respondDomainError maps domain errors onto the API error envelope
func (h *AuthHandler) respondDomainError(c echo.Context, err error) error {
	var valErr *validator.ValidationError
	if errors.As(err, &valErr) {
		return respondError(c, apperrors.NewValidationError(valErr.Error()))
	}

	if pe, ok := domain.AsProviderError(err); ok {
		switch pe.Code {
		case domain.ProviderErrInvalidCredentials:
			return respondError(c, apperrors.ErrInvalidCredentials)
		case domain.ProviderErrAccountDisabled:
			return respondError(c, apperrors.ErrAccountDisabled)
		case domain.ProviderErrNoActiveSession:
			return respondError(c, apperrors.ErrSessionNotFound)
		case domain.ProviderErrTooManyRequests:
			return respondError(c, apperrors.ErrRateLimitExceeded)
		case domain.ProviderErrNetworkUnavailable, domain.ProviderErrOperationCancelled:
			return respondError(c, apperrors.ErrRetryable)
		default:
			return respondError(c, apperrors.NewProviderError(err))
		}
	}

	if domain.IsStoreError(err) {
		return respondError(c, apperrors.NewStoreError(err))
	}

	if appErr, ok := apperrors.AsAppError(err); ok {
		return respondError(c, appErr)
	}

	return respondError(c, apperrors.NewInternalError(err))
}

func respondError(c echo.Context, appErr *apperrors.AppError) error {
	return c.JSON(appErr.StatusCode, ErrorResponse{
		Error:   appErr.Message,
		Code:    string(appErr.Code),
		Details: appErr.Details,
	})
}

// Request/Response types

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LinkRequest struct {
	URL string `json:"url"`
}

type SignUpResponse struct {
	UID                    string `json:"uid"`
	Email                  string `json:"email"`
	State                  string `json:"state"`
	NeedsEmailVerification bool   `json:"needs_email_verification"`
	VerificationEmailSent  bool   `json:"verification_email_sent"`
}

type StateResponse struct {
	State string `json:"state"`
	UID   string `json:"uid,omitempty"`
	Email string `json:"email,omitempty"`
}

type ResendResponse struct {
	Sent              bool   `json:"sent"`
	RetryAfterSeconds int    `json:"retry_after_seconds,omitempty"`
	Error             string `json:"error,omitempty"`
}

type LinkResponse struct {
	Handled bool   `json:"handled"`
	Success bool   `json:"success"`
	State   string `json:"state,omitempty"`
	Error   string `json:"error,omitempty"`
}

type FeatureResponse struct {
	Feature string `json:"feature"`
	Allowed bool   `json:"allowed"`
	State   string `json:"state"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}
