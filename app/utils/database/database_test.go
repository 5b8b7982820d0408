package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name: "service configuration",
			config: &Config{
				Host:        "guide-postgres",
				Port:        5432,
				User:        "guide_user",
				Password:    "secret",
				Database:    "guide_db",
				SSLMode:     "prefer",
				ConnTimeout: 10 * time.Second,
			},
			expected: "host=guide-postgres port=5432 user=guide_user password=secret dbname=guide_db sslmode=prefer connect_timeout=10",
		},
		{
			name: "local development",
			config: &Config{
				Host:        "localhost",
				Port:        5433,
				User:        "guide_test_user",
				Password:    "test",
				Database:    "guide_test_db",
				SSLMode:     "disable",
				ConnTimeout: 5 * time.Second,
			},
			expected: "host=localhost port=5433 user=guide_test_user password=test dbname=guide_test_db sslmode=disable connect_timeout=5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := &Connection{config: tt.config}
			assert.Equal(t, tt.expected, conn.buildDSN())
		})
	}
}

func TestClose_WithoutConnectionIsNoOp(t *testing.T) {
	conn := &Connection{}
	assert.NoError(t, conn.Close())
}
