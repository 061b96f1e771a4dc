package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, 7*24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "bloghub", cfg.MongoDatabase)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", "envsecret")
	t.Setenv("JWT_EXPIRY_HOURS", "24")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "envsecret", cfg.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
}

func TestLoadIgnoresUnparsableExpiry(t *testing.T) {
	t.Setenv("JWT_EXPIRY_HOURS", "soon")

	cfg := Load()

	assert.Equal(t, 7*24*time.Hour, cfg.JWTExpiry)
}
