package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "blogapi", cfg.Database.Name)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)

	assert.Equal(t, "info", cfg.Log.Level)

	assert.Equal(t, "test-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "blogapi", cfg.Auth.JWTIssuer)
	assert.Equal(t, 24*time.Hour, cfg.Auth.JWTTTL)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)

	assert.True(t, cfg.Search.CaseInsensitive)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_JWT_SECRET", "test-secret")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_JWT_TTL", "15m")
	t.Setenv("APP_BCRYPT_COST", "10")
	t.Setenv("APP_SEARCH_CASE_INSENSITIVE", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Addr())
	assert.Equal(t, 15*time.Minute, cfg.Auth.JWTTTL)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.False(t, cfg.Search.CaseInsensitive)
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	// Setenv registers the restore; the unset makes the variable absent
	// for the duration of the test.
	t.Setenv("APP_JWT_SECRET", "placeholder")
	require.NoError(t, os.Unsetenv("APP_JWT_SECRET"))

	_, err := Load()
	assert.Error(t, err)
}

func TestDatabaseDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "app",
		Password: "pw",
		Name:     "blog",
		SSLMode:  "require",
	}

	assert.Equal(t, "postgres://app:pw@db.internal:5433/blog?sslmode=require", db.DSN())
}
