package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"guide-auth/app/domain"
	mock_port "guide-auth/app/mocks"
	"guide-auth/app/utils/logger"
)

func newProfileHandler(t *testing.T) (*ProfileHandler, *mock_port.MockSessionUsecase, *mock_port.MockProfileRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	sessions := mock_port.NewMockSessionUsecase(ctrl)
	profiles := mock_port.NewMockProfileRepository(ctrl)

	log, err := logger.New("error")
	require.NoError(t, err)

	return NewProfileHandler(sessions, profiles, log), sessions, profiles
}

func TestProfileHandler_GetProfile(t *testing.T) {
	session := &domain.Session{UID: "user-123", Email: "traveler@example.com"}

	t.Run("returns the profile record", func(t *testing.T) {
		handler, sessions, profiles := newProfileHandler(t)
		sessions.EXPECT().CurrentSession().Return(session)
		profiles.EXPECT().Get(gomock.Any(), "user-123").
			Return(&domain.ProfileRecord{
				ID:                "user-123",
				Email:             "traveler@example.com",
				EmailConfirmed:    true,
				PreferredLanguage: "ja",
			}, nil)

		rec := doRequest(t, handler.GetProfile, http.MethodGet, "/v1/profile", "")

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp ProfileResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "user-123", resp.ID)
		assert.True(t, resp.EmailConfirmed)
		assert.Equal(t, "ja", resp.PreferredLanguage)
	})

	t.Run("no session", func(t *testing.T) {
		handler, sessions, _ := newProfileHandler(t)
		sessions.EXPECT().CurrentSession().Return(nil)

		rec := doRequest(t, handler.GetProfile, http.MethodGet, "/v1/profile", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("absent record", func(t *testing.T) {
		handler, sessions, profiles := newProfileHandler(t)
		sessions.EXPECT().CurrentSession().Return(session)
		profiles.EXPECT().Get(gomock.Any(), "user-123").Return(nil, nil)

		rec := doRequest(t, handler.GetProfile, http.MethodGet, "/v1/profile", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		handler, sessions, profiles := newProfileHandler(t)
		sessions.EXPECT().CurrentSession().Return(session)
		profiles.EXPECT().Get(gomock.Any(), "user-123").
			Return(nil, domain.NewStoreError("get", "read failed", errors.New("timeout")))

		rec := doRequest(t, handler.GetProfile, http.MethodGet, "/v1/profile", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestProfileHandler_UpdateLanguage(t *testing.T) {
	session := &domain.Session{UID: "user-123", Email: "traveler@example.com"}

	tests := []struct {
		name       string
		body       string
		setupMocks func(sessions *mock_port.MockSessionUsecase, profiles *mock_port.MockProfileRepository)
		wantStatus int
	}{
		{
			name: "valid language",
			body: `{"language":"ja"}`,
			setupMocks: func(sessions *mock_port.MockSessionUsecase, profiles *mock_port.MockProfileRepository) {
				sessions.EXPECT().CurrentSession().Return(session)
				profiles.EXPECT().UpdateLanguage(gomock.Any(), "user-123", "ja").Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid language code",
			body: `{"language":"japanese"}`,
			setupMocks: func(sessions *mock_port.MockSessionUsecase, profiles *mock_port.MockProfileRepository) {
				sessions.EXPECT().CurrentSession().Return(session)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "no session",
			body: `{"language":"ja"}`,
			setupMocks: func(sessions *mock_port.MockSessionUsecase, profiles *mock_port.MockProfileRepository) {
				sessions.EXPECT().CurrentSession().Return(nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "store failure",
			body: `{"language":"ja"}`,
			setupMocks: func(sessions *mock_port.MockSessionUsecase, profiles *mock_port.MockProfileRepository) {
				sessions.EXPECT().CurrentSession().Return(session)
				profiles.EXPECT().UpdateLanguage(gomock.Any(), "user-123", "ja").
					Return(domain.NewStoreError("update_language", "write failed", errors.New("timeout")))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, sessions, profiles := newProfileHandler(t)
			tt.setupMocks(sessions, profiles)

			rec := doRequest(t, handler.UpdateLanguage, http.MethodPut, "/v1/profile/language", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
