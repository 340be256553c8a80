package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("SIM_OVERLAP_POLICY", "")
	t.Setenv("SIM_WALK_END_DELAY_MS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 1000, cfg.Simulation.LoginDelayMS)
	assert.Equal(t, 3000, cfg.Simulation.WalkEndDelayMS)
	assert.Equal(t, "replace", cfg.Simulation.OverlapPolicy)
	assert.Equal(t, 4*time.Hour, cfg.Auth.SessionTTL())
	assert.Equal(t, "@every 1m", cfg.Auth.SweepSpec)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SIM_OVERLAP_POLICY", "reject")
	t.Setenv("SIM_PHOTO_DELAY_MS", "0")
	t.Setenv("AUTH_SESSION_TTL_MINUTES", "15")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "reject", cfg.Simulation.OverlapPolicy)
	assert.Equal(t, time.Duration(0), Delay(cfg.Simulation.PhotoDelayMS))
	assert.Equal(t, 15*time.Minute, cfg.Auth.SessionTTL())
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"overlap policy", "SIM_OVERLAP_POLICY", "queue"},
		{"redis db", "REDIS_DB", "zero"},
		{"log format", "LOG_FORMAT", "xml"},
		{"migrations flag", "POSTGRES_RUN_MIGRATIONS", "sometimes"},
		{"delay", "SIM_PHOTO_DELAY_MS", "fast"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestDelay(t *testing.T) {
	assert.Equal(t, 1500*time.Millisecond, Delay(1500))
	assert.Equal(t, time.Duration(0), Delay(-5))
}

func TestLoad_ReportsEveryBadKey(t *testing.T) {
	t.Setenv("REDIS_DB", "zero")
	t.Setenv("SIM_OVERLAP_POLICY", "queue")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REDIS_DB")
	assert.Contains(t, err.Error(), "SIM_OVERLAP_POLICY")
}
