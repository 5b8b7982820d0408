package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// CheckFunc probes a single dependency
type CheckFunc func(ctx context.Context) error

// HealthHandler handles health check HTTP requests
type HealthHandler struct {
	logger        *slog.Logger
	storeCheck    CheckFunc
	providerCheck CheckFunc
}

// NewHealthHandler creates a new health handler. Either check may be nil,
// in which case the dependency is reported as skipped.
func NewHealthHandler(logger *slog.Logger, storeCheck, providerCheck CheckFunc) *HealthHandler {
	return &HealthHandler{
		logger:        logger,
		storeCheck:    storeCheck,
		providerCheck: providerCheck,
	}
}

// HealthCheck performs a basic health check
// @Summary Health check
// @Description Check if the service is healthy and running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /v1/health [get]
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Service:   "guide-auth",
		Version:   "1.0.0",
		Uptime:    time.Since(startTime).String(),
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessCheck probes the profile store and the identity provider
// @Summary Readiness check
// @Description Check if the service is ready to serve traffic
// @Tags health
// @Produce json
// @Success 200 {object} ReadinessResponse
// @Failure 503 {object} ReadinessResponse
// @Router /v1/ready [get]
func (h *HealthHandler) ReadinessCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := map[string]HealthStatus{
		"profile_store":     h.runCheck(ctx, "profile_store", h.storeCheck),
		"identity_provider": h.runCheck(ctx, "identity_provider", h.providerCheck),
	}

	allHealthy := true
	for _, check := range checks {
		if check.Status == "unhealthy" {
			allHealthy = false
			break
		}
	}

	response := ReadinessResponse{
		Status:    getOverallStatus(allHealthy),
		Timestamp: time.Now(),
		Service:   "guide-auth",
		Checks:    checks,
	}

	statusCode := http.StatusOK
	if !allHealthy {
		statusCode = http.StatusServiceUnavailable
	}

	return c.JSON(statusCode, response)
}

// LivenessCheck performs a liveness check
// @Summary Liveness check
// @Description Check if the service is alive
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /v1/live [get]
func (h *HealthHandler) LivenessCheck(c echo.Context) error {
	response := HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Service:   "guide-auth",
		Version:   "1.0.0",
		Uptime:    time.Since(startTime).String(),
	}

	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) runCheck(ctx context.Context, name string, check CheckFunc) HealthStatus {
	if check == nil {
		return HealthStatus{Status: "skipped", Message: "no check configured"}
	}

	start := time.Now()
	if err := check(ctx); err != nil {
		h.logger.Warn("readiness check failed", "check", name, "error", err)
		return HealthStatus{
			Status:  "unhealthy",
			Message: err.Error(),
			Latency: time.Since(start).String(),
		}
	}

	return HealthStatus{
		Status:  "healthy",
		Message: "connected",
		Latency: time.Since(start).String(),
	}
}

// Helper functions
func getOverallStatus(allHealthy bool) string {
	if allHealthy {
		return "ready"
	}
	return "not_ready"
}

// Response types
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
}

type ReadinessResponse struct {
	Status    string                  `json:"status"`
	Timestamp time.Time               `json:"timestamp"`
	Service   string                  `json:"service"`
	Checks    map[string]HealthStatus `json:"checks"`
}

type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Latency string `json:"latency,omitempty"`
}

// startTime is set when the service starts
var startTime = time.Now()
