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

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestAddr(t *testing.T) {
	cfg := &Config{Host: "127.0.0.1", Port: 8081}
	assert.Equal(t, "127.0.0.1:8081", cfg.Addr())
}

func TestLoadInvalidValue(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	_, err := Load()
	require.Error(t, err)
}
