package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequiresPortAndSecret(t *testing.T) {
	cfg := &Config{Port: "", JWTSecret: "secret"}
	assert.ErrorContains(t, cfg.Validate(), "PORT")

	cfg = &Config{Port: "5000", JWTSecret: ""}
	assert.ErrorContains(t, cfg.Validate(), "JWT_SECRET")
}

func TestValidateAcceptsDevelopmentDefaults(t *testing.T) {
	cfg := &Config{
		Port:      "5000",
		JWTSecret: "your-secret-key-change-in-production",
		Env:       "development",
	}
	assert.NoError(t, cfg.Validate())
}

func TestValidateProductionRejectsDefaultSecret(t *testing.T) {
	cfg := &Config{
		Port:      "5000",
		JWTSecret: "your-secret-key-change-in-production",
		Env:       "production",
	}
	assert.ErrorContains(t, cfg.Validate(), "default value")
}

func TestValidateProductionRejectsShortSecret(t *testing.T) {
	cfg := &Config{
		Port:      "5000",
		JWTSecret: "short",
		Env:       "prod",
	}
	assert.ErrorContains(t, cfg.Validate(), "32 characters")

	cfg.JWTSecret = strings.Repeat("a", 32)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.True(t, cfg.SeedDemo)
	assert.False(t, cfg.TracingEnabled)
	assert.Equal(t, "stdout", cfg.TracingExporter)
}
