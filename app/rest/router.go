package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"guide-auth/app/port"
	"guide-auth/app/rest/handlers"
	custommw "guide-auth/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger          *slog.Logger
	SessionUsecase  port.SessionUsecase
	DeepLinkUsecase port.DeepLinkUsecase
	ProfileRepo     port.ProfileRepository
	StoreCheck      handlers.CheckFunc
	ProviderCheck   handlers.CheckFunc
	EnableDebug     bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.EnableDebug

	authHandler := handlers.NewAuthHandler(config.SessionUsecase, config.DeepLinkUsecase, config.Logger)
	profileHandler := handlers.NewProfileHandler(config.SessionUsecase, config.ProfileRepo, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.Logger, config.StoreCheck, config.ProviderCheck)

	rateLimiter := custommw.NewRateLimiter()

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))

	// API versioning
	v1 := e.Group("/v1")

	// Health endpoints
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Session endpoints
	auth := v1.Group("/auth")
	auth.POST("/signup", authHandler.SignUp)
	auth.POST("/signin", authHandler.SignIn)
	auth.POST("/signout", authHandler.SignOut)
	auth.POST("/guest", authHandler.EnterGuestMode)
	auth.POST("/foreground", authHandler.HandleForeground)
	auth.GET("/state", authHandler.CurrentState)
	auth.GET("/features/:feature", authHandler.CheckFeature)

	// Verification endpoints
	auth.POST("/verification/resend", authHandler.ResendVerificationEmail)
	auth.POST("/links", authHandler.HandleLink)

	// Profile endpoints
	profile := v1.Group("/profile")
	profile.GET("", profileHandler.GetProfile)
	profile.PUT("/language", profileHandler.UpdateLanguage)

	return e
}
