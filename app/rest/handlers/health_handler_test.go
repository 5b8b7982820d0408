package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guide-auth/app/utils/logger"
)

func newHealthHandler(t *testing.T, storeCheck, providerCheck CheckFunc) *HealthHandler {
	t.Helper()
	log, err := logger.New("error")
	require.NoError(t, err)
	return NewHealthHandler(log, storeCheck, providerCheck)
}

func TestHealthHandler_HealthCheck(t *testing.T) {
	handler := newHealthHandler(t, nil, nil)

	rec := doRequest(t, handler.HealthCheck, http.MethodGet, "/v1/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "guide-auth", resp.Service)
	assert.NotEmpty(t, resp.Uptime)
}

func TestHealthHandler_LivenessCheck(t *testing.T) {
	handler := newHealthHandler(t, nil, nil)

	rec := doRequest(t, handler.LivenessCheck, http.MethodGet, "/v1/live", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alive", resp.Status)
}

func TestHealthHandler_ReadinessCheck(t *testing.T) {
	healthy := func(ctx context.Context) error { return nil }
	failing := func(ctx context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name          string
		storeCheck    CheckFunc
		providerCheck CheckFunc
		wantStatus    int
		wantOverall   string
		wantStore     string
		wantProvider  string
	}{
		{
			name:          "all dependencies healthy",
			storeCheck:    healthy,
			providerCheck: healthy,
			wantStatus:    http.StatusOK,
			wantOverall:   "ready",
			wantStore:     "healthy",
			wantProvider:  "healthy",
		},
		{
			name:          "store unreachable",
			storeCheck:    failing,
			providerCheck: healthy,
			wantStatus:    http.StatusServiceUnavailable,
			wantOverall:   "not_ready",
			wantStore:     "unhealthy",
			wantProvider:  "healthy",
		},
		{
			name:          "provider unreachable",
			storeCheck:    healthy,
			providerCheck: failing,
			wantStatus:    http.StatusServiceUnavailable,
			wantOverall:   "not_ready",
			wantStore:     "healthy",
			wantProvider:  "unhealthy",
		},
		{
			name:         "no checks configured",
			wantStatus:   http.StatusOK,
			wantOverall:  "ready",
			wantStore:    "skipped",
			wantProvider: "skipped",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newHealthHandler(t, tt.storeCheck, tt.providerCheck)

			rec := doRequest(t, handler.ReadinessCheck, http.MethodGet, "/v1/ready", "")

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp ReadinessResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantOverall, resp.Status)
			assert.Equal(t, tt.wantStore, resp.Checks["profile_store"].Status)
			assert.Equal(t, tt.wantProvider, resp.Checks["identity_provider"].Status)
		})
	}
}
