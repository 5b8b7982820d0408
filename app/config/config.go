package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the guide-auth service
type Config struct {
	// Server
	Port     string `env:"PORT" default:"9600"`
	Host     string `env:"HOST" default:"0.0.0.0"`
	LogLevel string `env:"LOG_LEVEL" default:"info"`

	// Database (profile store)
	DatabaseURL      string `env:"DATABASE_URL" required:"true"`
	DatabaseHost     string `env:"DB_HOST" default:"guide-postgres"`
	DatabasePort     string `env:"DB_PORT" default:"5432"`
	DatabaseName     string `env:"DB_NAME" default:"guide_db"`
	DatabaseUser     string `env:"DB_USER" default:"guide_user"`
	DatabasePassword string `env:"DB_PASSWORD" required:"true"`
	DatabaseSSLMode  string `env:"DB_SSL_MODE" default:"require"`

	// Kratos (identity provider)
	KratosPublicURL string `env:"KRATOS_PUBLIC_URL" required:"true"`
	KratosAdminURL  string `env:"KRATOS_ADMIN_URL" required:"true"`

	// Verification
	ResendCooldown  time.Duration `env:"RESEND_COOLDOWN" default:"60s"`
	ProviderTimeout time.Duration `env:"PROVIDER_TIMEOUT" default:"30s"`
	DefaultLanguage string        `env:"DEFAULT_LANGUAGE" default:"en"`

	// Optional YAML file extending the always-allowed feature set
	FeaturePolicyFile string `env:"FEATURE_POLICY_FILE"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "9600")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Database configuration
	config.DatabaseURL = os.Getenv("DATABASE_URL")
	if config.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	config.DatabaseHost = getEnvOrDefault("DB_HOST", "guide-postgres")
	config.DatabasePort = getEnvOrDefault("DB_PORT", "5432")
	config.DatabaseName = getEnvOrDefault("DB_NAME", "guide_db")
	config.DatabaseUser = getEnvOrDefault("DB_USER", "guide_user")
	config.DatabasePassword = os.Getenv("DB_PASSWORD")
	if config.DatabasePassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	config.DatabaseSSLMode = getEnvOrDefault("DB_SSL_MODE", "require")

	// Kratos configuration
	config.KratosPublicURL = os.Getenv("KRATOS_PUBLIC_URL")
	if config.KratosPublicURL == "" {
		return nil, fmt.Errorf("KRATOS_PUBLIC_URL is required")
	}

	config.KratosAdminURL = os.Getenv("KRATOS_ADMIN_URL")
	if config.KratosAdminURL == "" {
		return nil, fmt.Errorf("KRATOS_ADMIN_URL is required")
	}

	// Verification configuration
	var err error
	resendCooldownStr := getEnvOrDefault("RESEND_COOLDOWN", "60s")
	config.ResendCooldown, err = time.ParseDuration(resendCooldownStr)
	if err != nil {
		return nil, fmt.Errorf("invalid RESEND_COOLDOWN: %w", err)
	}

	providerTimeoutStr := getEnvOrDefault("PROVIDER_TIMEOUT", "30s")
	config.ProviderTimeout, err = time.ParseDuration(providerTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PROVIDER_TIMEOUT: %w", err)
	}

	config.DefaultLanguage = getEnvOrDefault("DEFAULT_LANGUAGE", "en")
	config.FeaturePolicyFile = os.Getenv("FEATURE_POLICY_FILE")

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate port
	port, err := strconv.ParseInt(c.Port, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	// Check port range (1-65535)
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	// Validate resend cooldown (minimum 1 second, keeps the spam guard meaningful)
	if c.ResendCooldown < time.Second {
		return fmt.Errorf("resend cooldown must be at least 1 second, got: %v", c.ResendCooldown)
	}

	// Provider calls must resolve; enforce a pragmatic bound
	if c.ProviderTimeout < time.Second || c.ProviderTimeout > 2*time.Minute {
		return fmt.Errorf("provider timeout must be between 1s and 2m, got: %v", c.ProviderTimeout)
	}

	if len(c.DefaultLanguage) != 2 {
		return fmt.Errorf("default language must be a two-letter code, got: %s", c.DefaultLanguage)
	}

	return nil
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
