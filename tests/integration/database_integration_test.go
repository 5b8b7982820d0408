package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guide-auth/app/domain"
	"guide-auth/app/driver/postgres"
	"guide-auth/app/utils/logger"
)

func TestDatabaseIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	require.NoError(t, WaitForDatabase(ctx), "Database should be ready")

	pool, err := TestDatabaseConnection()
	require.NoError(t, err, "Should connect to test database")
	defer pool.Close()

	require.NoError(t, pool.Ping(ctx), "Should ping database successfully")

	var result int
	err = pool.QueryRow(ctx, "SELECT 1").Scan(&result)
	require.NoError(t, err, "Should execute simple query")
	assert.Equal(t, 1, result, "Query result should be 1")
}

func TestProfileRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	require.NoError(t, WaitForDatabase(ctx), "Database should be ready")

	pool, err := TestDatabaseConnection()
	require.NoError(t, err, "Should connect to test database")
	defer pool.Close()

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := postgres.NewProfileRepository(pool, testLogger)

	uid := uuid.New().String()
	email := fmt.Sprintf("traveler-%s@integration.example.com", uid[:8])

	t.Cleanup(func() {
		_ = CleanupTestData(context.Background())
	})

	t.Run("create and read back", func(t *testing.T) {
		record, err := repo.Create(ctx, &domain.ProfileSeed{
			UID:               uid,
			Email:             email,
			PreferredLanguage: "en",
		})
		require.NoError(t, err, "Should create profile")
		assert.Equal(t, uid, record.ID)
		assert.False(t, record.EmailConfirmed)
		assert.Nil(t, record.ConfirmedAt)

		got, err := repo.Get(ctx, uid)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, email, got.Email)
	})

	t.Run("absent profile reads as nil without error", func(t *testing.T) {
		got, err := repo.Get(ctx, uuid.New().String())
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("set verified stamps confirmed_at once", func(t *testing.T) {
		require.NoError(t, repo.SetVerified(ctx, uid))

		first, err := repo.Get(ctx, uid)
		require.NoError(t, err)
		require.NotNil(t, first.ConfirmedAt)
		assert.True(t, first.EmailConfirmed)

		// Repeat call keeps the original timestamp
		time.Sleep(10 * time.Millisecond)
		require.NoError(t, repo.SetVerified(ctx, uid))

		second, err := repo.Get(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, first.ConfirmedAt, second.ConfirmedAt)
	})

	t.Run("set verified on absent profile is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.SetVerified(ctx, uuid.New().String()))
	})

	t.Run("update language", func(t *testing.T) {
		require.NoError(t, repo.UpdateLanguage(ctx, uid, "ja"))

		got, err := repo.Get(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, "ja", got.PreferredLanguage)
	})

	t.Run("update language on absent profile fails", func(t *testing.T) {
		err := repo.UpdateLanguage(ctx, uuid.New().String(), "ja")
		require.Error(t, err)
		assert.True(t, domain.IsStoreError(err))
	})
}

func TestDatabaseSchemaIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	require.NoError(t, WaitForDatabase(ctx), "Database should be ready")

	pool, err := TestDatabaseConnection()
	require.NoError(t, err, "Should connect to test database")
	defer pool.Close()

	t.Run("user_profiles table exists", func(t *testing.T) {
		var exists bool
		err := pool.QueryRow(ctx, `
			SELECT EXISTS (
				SELECT FROM information_schema.tables
				WHERE table_name = 'user_profiles'
			)`).Scan(&exists)
		require.NoError(t, err)
		assert.True(t, exists, "user_profiles table should exist")
	})

	t.Run("expected columns present", func(t *testing.T) {
		expectedColumns := []string{
			"id", "email", "email_confirmed", "confirmed_at",
			"preferred_language", "created_at", "updated_at",
		}

		for _, column := range expectedColumns {
			var exists bool
			err := pool.QueryRow(ctx, `
				SELECT EXISTS (
					SELECT FROM information_schema.columns
					WHERE table_name = 'user_profiles' AND column_name = $1
				)`, column).Scan(&exists)
			require.NoError(t, err)
			assert.True(t, exists, "column %s should exist", column)
		}
	})

	t.Run("email index present", func(t *testing.T) {
		var exists bool
		err := pool.QueryRow(ctx, `
			SELECT EXISTS (
				SELECT FROM pg_indexes
				WHERE tablename = 'user_profiles' AND indexname = 'idx_user_profiles_email'
			)`).Scan(&exists)
		require.NoError(t, err)
		assert.True(t, exists, "email index should exist")
	})
}
