package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 120, cfg.LivenessWindowSeconds)
	assert.Equal(t, 180, cfg.IdleThresholdSeconds)
	assert.Equal(t, 600, cfg.OverrideWindowSeconds)
	assert.Equal(t, 2000, cfg.StoreTimeoutMillis)
	assert.Equal(t, 60, cfg.SweepIntervalSeconds)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ROOM_LIVENESS_WINDOW_SECONDS", "60")
	t.Setenv("ROOM_IDLE_THRESHOLD_SECONDS", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.LivenessWindowSeconds)
	assert.Equal(t, 0, cfg.IdleThresholdSeconds)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero liveness window", func(c *Config) { c.LivenessWindowSeconds = 0 }},
		{"negative idle threshold", func(c *Config) { c.IdleThresholdSeconds = -1 }},
		{"zero override window", func(c *Config) { c.OverrideWindowSeconds = 0 }},
		{"zero store timeout", func(c *Config) { c.StoreTimeoutMillis = 0 }},
		{"zero sweep interval", func(c *Config) { c.SweepIntervalSeconds = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load()
			require.NoError(t, err)

			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
