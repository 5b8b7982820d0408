package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"guide-auth/app/config"
	"guide-auth/app/domain"
	"guide-auth/app/driver/kratos"
	"guide-auth/app/driver/postgres"
	"guide-auth/app/gateway"
	"guide-auth/app/port"
	"guide-auth/app/rest"
	"guide-auth/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB           *postgres.DB
	KratosClient *kratos.Client

	// Gateways
	IdentityGateway *gateway.IdentityGateway

	// Repositories
	ProfileRepo port.ProfileRepository

	// Usecases
	SessionUsecase  port.SessionUsecase
	DeepLinkUsecase port.DeepLinkUsecase
	Reconciler      port.Reconciler
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error

	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	container.KratosClient, err = kratos.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kratos client: %w", err)
	}

	policy, err := config.LoadFeaturePolicy(cfg.FeaturePolicyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load feature policy: %w", err)
	}

	container.ProfileRepo = postgres.NewProfileRepository(container.DB.Pool(), logger)

	kratosAdapter := kratos.NewKratosClientAdapter(container.KratosClient, logger)
	container.IdentityGateway = gateway.NewIdentityGateway(kratosAdapter, logger)

	container.Reconciler = usecase.NewReconcileUsecase(container.ProfileRepo, cfg.DefaultLanguage, logger)

	sessionUsecase := usecase.NewSessionUsecase(
		container.IdentityGateway,
		container.ProfileRepo,
		container.Reconciler,
		domain.NewResendCooldown(cfg.ResendCooldown),
		policy,
		logger,
	)
	container.SessionUsecase = sessionUsecase
	container.DeepLinkUsecase = usecase.NewDeepLinkUsecase(container.IdentityGateway, sessionUsecase, nil, logger)

	logger.Info("container initialized")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:          c.Logger,
		SessionUsecase:  c.SessionUsecase,
		DeepLinkUsecase: c.DeepLinkUsecase,
		ProfileRepo:     c.ProfileRepo,
		StoreCheck:      c.DB.HealthCheck,
		ProviderCheck: func(ctx context.Context) error {
			return c.KratosClient.HealthCheck(ctx)
		},
		EnableDebug: c.Config.LogLevel == "debug",
	}

	return rest.NewRouter(routerConfig)
}

// Close closes all resources
func (c *Container) Close() error {
	if c.IdentityGateway != nil {
		c.IdentityGateway.Close()
	}
	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("container closed")
	return nil
}
