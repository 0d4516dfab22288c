package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, 10, cfg.MenuCacheTTLMinutes)
	assert.Empty(t, cfg.RedisURL)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "production")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("JWT_EXPIRATION_HOURS", "2")
	t.Setenv("JWT_SECRET", "s3cr3t-de-produccion")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, 2, cfg.JWTExpirationHours)
	assert.Equal(t, "s3cr3t-de-produccion", cfg.JWTSecret)
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	for _, secret := range []string{"", "   ", secretoDesarrollo} {
		t.Setenv("JWT_SECRET", secret)
		cfg, err := Load()
		assert.ErrorIs(t, err, ErrSecretoInseguro, "secret %q", secret)
		assert.Nil(t, cfg)
	}
}

func TestLoad_DevelopmentKeepsDefaultSecret(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, secretoDesarrollo, cfg.JWTSecret)
}

func TestAllowedOrigins(t *testing.T) {
	cfg := &Config{CORSOrigins: " http://localhost:5173, ,https://resto.example.com "}
	assert.Equal(t, []string{"http://localhost:5173", "https://resto.example.com"}, cfg.AllowedOrigins())

	cfg.CORSOrigins = ""
	assert.Empty(t, cfg.AllowedOrigins())
}
