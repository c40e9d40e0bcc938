package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 200, cfg.Market.DefaultFeeBps)
	assert.Equal(t, time.Minute, cfg.Worker.RecoveryInterval)
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MARKET_DEFAULT_FEE_BPS", "500")
	t.Setenv("WORKER_RECOVERY_INTERVAL", "15s")
	t.Setenv("REDIS_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Market.DefaultFeeBps)
	assert.Equal(t, 15*time.Second, cfg.Worker.RecoveryInterval)
	assert.True(t, cfg.Redis.Enabled)
}

func TestLoad_DefaultFeeAboveMax(t *testing.T) {
	t.Setenv("MARKET_DEFAULT_FEE_BPS", "2000")
	t.Setenv("MARKET_MAX_FEE_BPS", "1000")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_NonPositiveWorkerInterval(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero recovery interval", "WORKER_RECOVERY_INTERVAL", "0s"},
		{"negative recovery interval", "WORKER_RECOVERY_INTERVAL", "-1m"},
		{"zero audit interval", "WORKER_AUDIT_INTERVAL", "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.ErrorContains(t, err, tt.key)
		})
	}
}
