package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/vault")
	t.Setenv("REDIS_ADDR", "127.0.0.1:6379")
	t.Setenv("JWT_SECRET", "s3cret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, EnvDevelopment, cfg.Env)
	require.True(t, cfg.IsDevelopment())
	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, "postgres://localhost/vault", cfg.DatabaseURL)
	require.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr)
	require.Equal(t, 0, cfg.Redis.DB)
	require.Equal(t, "s3cret", cfg.JWT.Secret)
	require.Equal(t, 24*time.Hour, cfg.JWT.TokenTTL)
	require.Equal(t, 10, cfg.BcryptCost)
	require.Equal(t, 4, cfg.WorkerCount)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("REDIS_PASSWORD", "pw")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("WORKER_COUNT", "8")

	cfg, err := Load()
	require.NoError(t, err)
	require.False(t, cfg.IsDevelopment())
	require.Equal(t, ":9090", cfg.HTTPAddr)
	require.Equal(t, "pw", cfg.Redis.Password)
	require.Equal(t, 2, cfg.Redis.DB)
	require.Equal(t, time.Hour, cfg.JWT.TokenTTL)
	require.Equal(t, 12, cfg.BcryptCost)
	require.Equal(t, 8, cfg.WorkerCount)
}

func TestLoadErrors(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "DATABASE_URL")
	require.Contains(t, err.Error(), "REDIS_ADDR")
	require.Contains(t, err.Error(), "JWT_SECRET")

	setRequired(t)
	t.Setenv("TOKEN_TTL", "soon")
	_, err = Load()
	require.Error(t, err)

	t.Setenv("TOKEN_TTL", "24h")
	t.Setenv("APP_ENV", "staging")
	_, err = Load()
	require.Error(t, err)

	t.Setenv("APP_ENV", "development")
	t.Setenv("BCRYPT_COST", "2")
	_, err = Load()
	require.Error(t, err)

	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("WORKER_COUNT", "0")
	_, err = Load()
	require.Error(t, err)
}
