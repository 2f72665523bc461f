package speech

import (
	"log/slog"
	"time"
)

// Config holds scheduler tuning. Use functional options (WithXxx) to set
// these values; DefaultConfig returns the production cadence.
type Config struct {
	// CommandInterval is the minimum gap between command announcements.
	CommandInterval time.Duration

	// StatusInterval is the minimum gap between status announcements.
	StatusInterval time.Duration

	// StatusDepthDelta is the center-depth change, in meters, that makes
	// a status update worth announcing on its own.
	StatusDepthDelta float64

	// Observability
	Logger *slog.Logger
}

// DefaultConfig returns the standard guidance cadence: commands at most
// every 4s, status at most every 2s, status re-announce on a 0.5m change.
func DefaultConfig() Config {
	return Config{
		CommandInterval:  4 * time.Second,
		StatusInterval:   2 * time.Second,
		StatusDepthDelta: 0.5,
	}
}

// Option is a functional option for configuring the scheduler.
type Option func(*Config)

// WithCommandInterval sets the minimum gap between command announcements.
func WithCommandInterval(d time.Duration) Option {
	return func(c *Config) {
		c.CommandInterval = d
	}
}

// WithStatusInterval sets the minimum gap between status announcements.
func WithStatusInterval(d time.Duration) Option {
	return func(c *Config) {
		c.StatusInterval = d
	}
}

// WithStatusDepthDelta sets the center-depth change that triggers a
// status update.
func WithStatusDepthDelta(m float64) Option {
	return func(c *Config) {
		c.StatusDepthDelta = m
	}
}

// WithLogger sets the scheduler logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
