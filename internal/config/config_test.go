package config_test

import (
	"testing"
	"time"

	"github.com/rogerio-castellano/inventory-manager/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 15*time.Minute, cfg.JWT.TTL)
	assert.Equal(t, 5, cfg.Inventory.LowStockThreshold)
	assert.True(t, cfg.Inventory.SeedSample)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, 3, cfg.Login.Burst)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_TTL_MINUTES", "30")
	t.Setenv("LOW_STOCK_THRESHOLD", "12")
	t.Setenv("SEED_SAMPLE", "false")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, 30*time.Minute, cfg.JWT.TTL)
	assert.Equal(t, 12, cfg.Inventory.LowStockThreshold)
	assert.False(t, cfg.Inventory.SeedSample)
	assert.True(t, cfg.Redis.Enabled())
	assert.NoError(t, cfg.Validate())
}

func TestValidate_MissingSecret(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	err = cfg.Validate()
	assert.ErrorIs(t, err, config.ErrMissingConfig)
}

func TestValidate_BadPort(t *testing.T) {
	t.Setenv("JWT_SECRET", "x")
	t.Setenv("HTTP_PORT", "70000")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Error(t, cfg.Validate())
}
