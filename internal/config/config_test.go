package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "3001")
	t.Setenv("LOG_LEVEL", "info")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 3001, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, time.Duration(0), cfg.OrdersAPI.Timeout)
	assert.NotEmpty(t, cfg.OrdersAPI.BaseURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("APP_ENV", "test")
	t.Setenv("ORDERS_API_URL", "http://orders.internal:8080")
	t.Setenv("HTTP_TIMEOUT", "5")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "http://orders.internal:8080", cfg.OrdersAPI.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.OrdersAPI.Timeout)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("PORT", "3001")
	t.Setenv("HTTP_TIMEOUT", "-1")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_TIMEOUT")
}
