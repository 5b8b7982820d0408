package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"guide-auth/app/domain"
	mock_port "guide-auth/app/mocks"
	"guide-auth/app/utils/logger"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *mock_port.MockSessionUsecase, *mock_port.MockDeepLinkUsecase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	sessions := mock_port.NewMockSessionUsecase(ctrl)
	deepLinks := mock_port.NewMockDeepLinkUsecase(ctrl)

	log, err := logger.New("error")
	require.NoError(t, err)

	return NewAuthHandler(sessions, deepLinks, log), sessions, deepLinks
}

func doRequest(t *testing.T, handler echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))
	return rec
}

func TestAuthHandler_SignUp(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(sessions *mock_port.MockSessionUsecase)
		wantStatus int
		wantBody   map[string]interface{}
	}{
		{
			name: "successful registration",
			body: `{"email":"traveler@example.com","password":"Sunny-Road-2025!"}`,
			setupMocks: func(sessions *mock_port.MockSessionUsecase) {
				sessions.EXPECT().SignUp(gomock.Any(), "traveler@example.com", "Sunny-Road-2025!").
					Return(&domain.SignUpOutcome{
						Session:                &domain.Session{UID: "user-123", Email: "traveler@example.com"},
						State:                  domain.StatePendingVerification,
						NeedsEmailVerification: true,
						VerificationEmailSent:  true,
					}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody: map[string]interface{}{
				"uid":                      "user-123",
				"state":                    "pending_verification",
				"needs_email_verification": true,
				"verification_email_sent":  true,
			},
		},
		{
			name: "provider rejects registration",
			body: `{"email":"traveler@example.com","password":"Sunny-Road-2025!"}`,
			setupMocks: func(sessions *mock_port.MockSessionUsecase) {
				sessions.EXPECT().SignUp(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, domain.NewProviderError(domain.ProviderErrNetworkUnavailable, "offline", nil))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "malformed body",
			body:       `{not-json`,
			setupMocks: func(sessions *mock_port.MockSessionUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, sessions, _ := newAuthHandler(t)
			tt.setupMocks(sessions)

			rec := doRequest(t, handler.SignUp, http.MethodPost, "/v1/auth/signup", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != nil {
				var got map[string]interface{}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				for key, want := range tt.wantBody {
					assert.Equal(t, want, got[key], "field %s", key)
				}
			}
		})
	}
}

func TestAuthHandler_SignIn(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(sessions *mock_port.MockSessionUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name: "successful sign-in",
			setupMocks: func(sessions *mock_port.MockSessionUsecase) {
				sessions.EXPECT().SignIn(gomock.Any(), "traveler@example.com", "Sunny-Road-2025!").
					Return(domain.StateVerified, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid credentials",
			setupMocks: func(sessions *mock_port.MockSessionUsecase) {
				sessions.EXPECT().SignIn(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.StateNone, domain.NewProviderError(domain.ProviderErrInvalidCredentials, "login failed", nil))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_CREDENTIALS",
		},
		{
			name: "account disabled",
			setupMocks: func(sessions *mock_port.MockSessionUsecase) {
				sessions.EXPECT().SignIn(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.StateNone, domain.NewProviderError(domain.ProviderErrAccountDisabled, "disabled", nil))
			},
			wantStatus: http.StatusForbidden,
			wantCode:   "ACCOUNT_DISABLED",
		},
		{
			name: "provider unreachable is retryable",
			setupMocks: func(sessions *mock_port.MockSessionUsecase) {
				sessions.EXPECT().SignIn(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.StateNone, domain.NewProviderError(domain.ProviderErrNetworkUnavailable, "offline", nil))
			},
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "RETRY_REQUIRED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, sessions, _ := newAuthHandler(t)
			tt.setupMocks(sessions)

			body := `{"email":"traveler@example.com","password":"Sunny-Road-2025!"}`
			rec := doRequest(t, handler.SignIn, http.MethodPost, "/v1/auth/signin", body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				var resp ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantCode, resp.Code)
			}
		})
	}
}

func TestAuthHandler_SignOut(t *testing.T) {
	handler, sessions, _ := newAuthHandler(t)
	sessions.EXPECT().SignOut(gomock.Any()).Return(nil)

	rec := doRequest(t, handler.SignOut, http.MethodPost, "/v1/auth/signout", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_EnterGuestMode(t *testing.T) {
	handler, sessions, _ := newAuthHandler(t)
	sessions.EXPECT().EnterGuestMode()
	sessions.EXPECT().CurrentState().Return(domain.StateGuest)

	rec := doRequest(t, handler.EnterGuestMode, http.MethodPost, "/v1/auth/guest", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp StateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "guest", resp.State)
}

func TestAuthHandler_ResendVerificationEmail(t *testing.T) {
	t.Run("dispatched", func(t *testing.T) {
		handler, sessions, _ := newAuthHandler(t)
		sessions.EXPECT().ResendVerificationEmail(gomock.Any()).
			Return(&domain.EmailDispatchResult{Success: true}, time.Duration(0), nil)

		rec := doRequest(t, handler.ResendVerificationEmail, http.MethodPost, "/v1/auth/verification/resend", "")

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp ResendResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Sent)
	})

	t.Run("cooldown active", func(t *testing.T) {
		handler, sessions, _ := newAuthHandler(t)
		sessions.EXPECT().ResendVerificationEmail(gomock.Any()).
			Return(nil, 42*time.Second, domain.ErrResendCooldown)

		rec := doRequest(t, handler.ResendVerificationEmail, http.MethodPost, "/v1/auth/verification/resend", "")

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)

		var resp ResendResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Sent)
		// Rounded up so the client never retries a second early
		assert.Equal(t, 43, resp.RetryAfterSeconds)
	})

	t.Run("no active session", func(t *testing.T) {
		handler, sessions, _ := newAuthHandler(t)
		sessions.EXPECT().ResendVerificationEmail(gomock.Any()).
			Return(nil, time.Duration(0), domain.NewProviderError(domain.ProviderErrNoActiveSession, "no session", nil))

		rec := doRequest(t, handler.ResendVerificationEmail, http.MethodPost, "/v1/auth/verification/resend", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthHandler_HandleLink(t *testing.T) {
	t.Run("verification link consumed", func(t *testing.T) {
		handler, _, deepLinks := newAuthHandler(t)
		deepLinks.EXPECT().HandleLink(gomock.Any(), "https://app.example.com/verify?flow=f-1&code=123456").
			Return(&domain.LinkOutcome{Handled: true, Success: true, State: domain.StateVerified}, nil)

		body := `{"url":"https://app.example.com/verify?flow=f-1&code=123456"}`
		rec := doRequest(t, handler.HandleLink, http.MethodPost, "/v1/auth/links", body)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp LinkResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Handled)
		assert.True(t, resp.Success)
		assert.Equal(t, "verified", resp.State)
	})

	t.Run("non-verification link passes through", func(t *testing.T) {
		handler, _, deepLinks := newAuthHandler(t)
		deepLinks.EXPECT().HandleLink(gomock.Any(), "https://guide.example.com/places/kyoto").
			Return(&domain.LinkOutcome{Handled: false}, nil)

		body := `{"url":"https://guide.example.com/places/kyoto"}`
		rec := doRequest(t, handler.HandleLink, http.MethodPost, "/v1/auth/links", body)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp LinkResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Handled)
	})

	t.Run("missing url", func(t *testing.T) {
		handler, _, _ := newAuthHandler(t)

		rec := doRequest(t, handler.HandleLink, http.MethodPost, "/v1/auth/links", `{"url":""}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_CurrentState(t *testing.T) {
	t.Run("with session", func(t *testing.T) {
		handler, sessions, _ := newAuthHandler(t)
		sessions.EXPECT().CurrentState().Return(domain.StatePendingVerification)
		sessions.EXPECT().CurrentSession().
			Return(&domain.Session{UID: "user-123", Email: "traveler@example.com"})

		rec := doRequest(t, handler.CurrentState, http.MethodGet, "/v1/auth/state", "")

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp StateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "pending_verification", resp.State)
		assert.Equal(t, "user-123", resp.UID)
		assert.Equal(t, "traveler@example.com", resp.Email)
	})

	t.Run("signed out", func(t *testing.T) {
		handler, sessions, _ := newAuthHandler(t)
		sessions.EXPECT().CurrentState().Return(domain.StateNone)
		sessions.EXPECT().CurrentSession().Return(nil)

		rec := doRequest(t, handler.CurrentState, http.MethodGet, "/v1/auth/state", "")

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp StateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "none", resp.State)
		assert.Empty(t, resp.UID)
	})
}

func TestAuthHandler_HandleForeground(t *testing.T) {
	handler, sessions, _ := newAuthHandler(t)
	sessions.EXPECT().HandleForeground(gomock.Any()).Return(domain.StateVerified)

	rec := doRequest(t, handler.HandleForeground, http.MethodPost, "/v1/auth/foreground", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp StateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "verified", resp.State)
}

func TestAuthHandler_CheckFeature(t *testing.T) {
	tests := []struct {
		name        string
		feature     string
		setupMocks  func(sessions *mock_port.MockSessionUsecase)
		wantStatus  int
		wantAllowed bool
	}{
		{
			name:    "allowed feature",
			feature: "view_places",
			setupMocks: func(sessions *mock_port.MockSessionUsecase) {
				sessions.EXPECT().CanAccessFeature(domain.Feature("view_places")).Return(true)
				sessions.EXPECT().CurrentState().Return(domain.StateGuest)
			},
			wantStatus:  http.StatusOK,
			wantAllowed: true,
		},
		{
			name:    "locked feature",
			feature: "create_journey",
			setupMocks: func(sessions *mock_port.MockSessionUsecase) {
				sessions.EXPECT().CanAccessFeature(domain.Feature("create_journey")).Return(false)
				sessions.EXPECT().CurrentState().Return(domain.StatePendingVerification)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed feature name",
			feature:    "Create%20Journey",
			setupMocks: func(sessions *mock_port.MockSessionUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, sessions, _ := newAuthHandler(t)
			tt.setupMocks(sessions)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/v1/auth/features/"+tt.feature, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("feature")
			c.SetParamValues(tt.feature)

			require.NoError(t, handler.CheckFeature(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				var resp FeatureResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantAllowed, resp.Allowed)
				assert.Equal(t, tt.feature, resp.Feature)
			}
		})
	}
}
