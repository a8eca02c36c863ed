package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the reconciliation engine tunables. Values come from the
// environment (after godotenv has loaded .env in main) with defaults that
// match the deployed fleet.
type Config struct {
	// A device that has been silent longer than this is offline.
	LivenessWindowSeconds int `env:"ROOM_LIVENESS_WINDOW_SECONDS" env-default:"120"`

	// Minimum continuous movement-idle time reported by the device before
	// an unreserved, unoccupied room may be auto-powered off.
	IdleThresholdSeconds int `env:"ROOM_IDLE_THRESHOLD_SECONDS" env-default:"180"`

	// How long a manual operator command outranks the automatic rules.
	OverrideWindowSeconds int `env:"ROOM_OVERRIDE_WINDOW_SECONDS" env-default:"600"`

	// Upper bound on any single store access during ingestion or booking.
	StoreTimeoutMillis int `env:"ROOM_STORE_TIMEOUT_MILLIS" env-default:"2000"`

	// Interval of the maintenance sweep (expired overrides, offline census).
	SweepIntervalSeconds int `env:"ROOM_SWEEP_INTERVAL_SECONDS" env-default:"60"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read engine config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.LivenessWindowSeconds <= 0 {
		return fmt.Errorf("livenessWindowSeconds must be positive, got %d", c.LivenessWindowSeconds)
	}

	if c.IdleThresholdSeconds < 0 {
		return fmt.Errorf("idleThresholdSeconds must not be negative, got %d", c.IdleThresholdSeconds)
	}

	if c.OverrideWindowSeconds <= 0 {
		return fmt.Errorf("overrideWindowSeconds must be positive, got %d", c.OverrideWindowSeconds)
	}

	if c.StoreTimeoutMillis <= 0 {
		return fmt.Errorf("storeTimeoutMillis must be positive, got %d", c.StoreTimeoutMillis)
	}

	if c.SweepIntervalSeconds <= 0 {
		return fmt.Errorf("sweepIntervalSeconds must be positive, got %d", c.SweepIntervalSeconds)
	}

	return nil
}

func (c *Config) LivenessWindow() time.Duration {
	return time.Duration(c.LivenessWindowSeconds) * time.Second
}

func (c *Config) OverrideWindow() time.Duration {
	return time.Duration(c.OverrideWindowSeconds) * time.Second
}

func (c *Config) StoreTimeout() time.Duration {
	return time.Duration(c.StoreTimeoutMillis) * time.Millisecond
}

func (c *Config) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalSeconds) * time.Second
}
