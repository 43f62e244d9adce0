package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, 30*time.Minute, cfg.Weather.CacheTTL)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":9090")
	t.Setenv("AUTH_SECRET", "test-secret")
	t.Setenv("AUTH_TOKEN_TTL", "30m")
	t.Setenv("WEATHER_CACHE_TTL", "10m")
	t.Setenv("VALKEY_ENABLED", "true")
	t.Setenv("VALKEY_ADDR", "cache:6379")

	cfg := defaultConfig()
	applyEnvOverrides(cfg)

	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, "test-secret", cfg.Auth.Secret)
	require.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	require.Equal(t, 10*time.Minute, cfg.Weather.CacheTTL)
	require.True(t, cfg.Valkey.Enabled)
	require.Equal(t, "cache:6379", cfg.Valkey.Addr)
	require.NoError(t, cfg.Validate())
}

func TestValidateRejectsEmptySecret(t *testing.T) {
	cfg := defaultConfig()
	cfg.Auth.Secret = ""
	require.Error(t, cfg.Validate())
}

func TestValidateRejectsValkeyWithoutAddr(t *testing.T) {
	cfg := defaultConfig()
	cfg.Valkey.Enabled = true
	cfg.Valkey.Addr = "  "
	require.Error(t, cfg.Validate())
}
