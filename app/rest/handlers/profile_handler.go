package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"guide-auth/app/port"
	apperrors "guide-auth/app/utils/errors"
	"guide-auth/app/utils/validator"
)

// ProfileHandler exposes the profile record of the current session
type ProfileHandler struct {
	sessions port.SessionUsecase
	profiles port.ProfileRepository
	logger   *slog.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(sessions port.SessionUsecase, profiles port.ProfileRepository, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		sessions: sessions,
		profiles: profiles,
		logger:   logger,
	}
}

// GetProfile returns the current session's profile record
// @Summary Get profile
// @Tags profile
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/profile [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	session := h.sessions.CurrentSession()
	if session == nil {
		return respondError(c, apperrors.ErrSessionNotFound)
	}

	record, err := h.profiles.Get(c.Request().Context(), session.UID)
	if err != nil {
		h.logger.Error("profile read failed", "uid", session.UID, "error", err)
		return respondError(c, apperrors.NewStoreError(err))
	}
	if record == nil {
		return respondError(c, apperrors.ErrNotFound)
	}

	return c.JSON(http.StatusOK, ProfileResponse{
		ID:                record.ID,
		Email:             record.Email,
		EmailConfirmed:    record.EmailConfirmed,
		PreferredLanguage: record.PreferredLanguage,
	})
}

// UpdateLanguage changes the preferred language of the current profile
// @Summary Update preferred language
// @Tags profile
// @Accept json
// @Produce json
// @Param body body LanguageRequest true "Two-letter ISO 639-1 code"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /v1/profile/language [put]
func (h *ProfileHandler) UpdateLanguage(c echo.Context) error {
	session := h.sessions.CurrentSession()
	if session == nil {
		return respondError(c, apperrors.ErrSessionNotFound)
	}

	var req LanguageRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrBadRequest.WithDetails("request body could not be parsed"))
	}
	if !validator.IsValidLanguageCode(req.Language) {
		return respondError(c, apperrors.ErrInvalidInput.WithDetails("language must be a two-letter ISO 639-1 code"))
	}

	if err := h.profiles.UpdateLanguage(c.Request().Context(), session.UID, req.Language); err != nil {
		h.logger.Error("language update failed", "uid", session.UID, "error", err)
		return respondError(c, apperrors.NewStoreError(err))
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "language updated"})
}

// Request/Response types

type LanguageRequest struct {
	Language string `json:"language"`
}

type ProfileResponse struct {
	ID                string `json:"id"`
	Email             string `json:"email"`
	EmailConfirmed    bool   `json:"email_confirmed"`
	PreferredLanguage string `json:"preferred_language"`
}
