package integration

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"guide-auth/app/config"
	"guide-auth/app/driver/kratos"
	"guide-auth/app/driver/postgres"
	"guide-auth/app/utils/logger"
)

const (
	// Test environment configuration
	TestPostgresHost     = "localhost"
	TestPostgresPort     = "5433"
	TestPostgresDB       = "guide_test_db"
	TestPostgresUser     = "guide_test_user"
	TestPostgresPassword = "test_password"
	TestPostgresSSLMode  = "disable"

	TestKratosPublicURL = "http://localhost:4433"
	TestKratosAdminURL  = "http://localhost:4434"
)

// TestConfig creates a configuration for integration tests
func TestConfig() *config.Config {
	return &config.Config{
		Port:     "9600",
		Host:     "0.0.0.0",
		LogLevel: "debug",

		DatabaseURL: fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			TestPostgresUser, TestPostgresPassword, TestPostgresHost,
			TestPostgresPort, TestPostgresDB, TestPostgresSSLMode),
		DatabaseHost:     TestPostgresHost,
		DatabasePort:     TestPostgresPort,
		DatabaseName:     TestPostgresDB,
		DatabaseUser:     TestPostgresUser,
		DatabasePassword: TestPostgresPassword,
		DatabaseSSLMode:  TestPostgresSSLMode,

		KratosPublicURL: TestKratosPublicURL,
		KratosAdminURL:  TestKratosAdminURL,

		ResendCooldown:  60 * time.Second,
		ProviderTimeout: 30 * time.Second,
		DefaultLanguage: "en",
	}
}

// TestDatabaseConnection creates a database connection for integration tests
func TestDatabaseConnection() (*pgxpool.Pool, error) {
	cfg := TestConfig()

	testLogger, err := logger.New("debug")
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := postgres.NewConnection(cfg, testLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}

	return db.Pool(), nil
}

// TestKratosClient creates a Kratos client for integration tests
func TestKratosClient() (*kratos.Client, error) {
	cfg := TestConfig()

	testLogger, err := logger.New("debug")
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return kratos.NewClient(cfg, testLogger)
}

// WaitForService waits for a service to be healthy
func WaitForService(ctx context.Context, healthCheckFunc func(context.Context) error, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		if err := healthCheckFunc(ctx); err == nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(1 * time.Second):
		}
	}

	return fmt.Errorf("service did not become healthy within %v", timeout)
}

// WaitForDatabase waits for the database to be ready
func WaitForDatabase(ctx context.Context) error {
	return WaitForService(ctx, func(ctx context.Context) error {
		pool, err := TestDatabaseConnection()
		if err != nil {
			return err
		}
		defer pool.Close()

		return pool.Ping(ctx)
	}, 30*time.Second)
}

// WaitForKratos waits for Kratos to be ready
func WaitForKratos(ctx context.Context) error {
	return WaitForService(ctx, func(ctx context.Context) error {
		client, err := TestKratosClient()
		if err != nil {
			return err
		}
		return client.HealthCheck(ctx)
	}, 60*time.Second)
}

// CleanupTestData removes profiles created by integration tests
func CleanupTestData(ctx context.Context) error {
	pool, err := TestDatabaseConnection()
	if err != nil {
		return err
	}
	defer pool.Close()

	_, err = pool.Exec(ctx, "DELETE FROM user_profiles WHERE email LIKE '%@integration.example.com'")
	if err != nil {
		return fmt.Errorf("failed to clean up test profiles: %w", err)
	}

	return nil
}
