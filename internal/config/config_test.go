package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Port)
	assert.NotEmpty(t, cfg.DBPath)
	assert.NotEmpty(t, cfg.UploadDir)
	assert.False(t, cfg.Debug)
	assert.Equal(t, int64(32<<20), cfg.MaxUploadBytes)
	assert.Equal(t, 60, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateWindow)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", ":9000")
	t.Setenv("DB_PATH", "/tmp/pace.db")
	t.Setenv("UPLOAD_DIR", "/tmp/uploads")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DEBUG", "true")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	t.Setenv("RATE_LIMIT", "5")
	t.Setenv("RATE_WINDOW", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Port)
	assert.Equal(t, "/tmp/pace.db", cfg.DBPath)
	assert.Equal(t, "/tmp/uploads", cfg.UploadDir)
	assert.Equal(t, "secret", cfg.JWTSecret)
	assert.True(t, cfg.Debug)
	assert.Equal(t, int64(1024), cfg.MaxUploadBytes)
	assert.Equal(t, 5, cfg.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.RateWindow)
}

func TestValidate(t *testing.T) {
	cfg := &Config{JWTSecret: DefaultJWTSecret}

	// release mode with the public default secret is refused
	assert.True(t, cfg.UsesDefaultSecret())
	assert.Error(t, cfg.Validate())

	cfg.Debug = true
	assert.NoError(t, cfg.Validate())

	cfg.Debug = false
	cfg.JWTSecret = "a-real-secret"
	assert.False(t, cfg.UsesDefaultSecret())
	assert.NoError(t, cfg.Validate())

	cfg.JWTSecret = ""
	assert.Error(t, cfg.Validate())
}
