package haptics

import (
	"log/slog"
	"time"
)

// Config holds scheduler tuning. Use functional options (WithXxx) to set
// these values; DefaultConfig returns the production cadence.
type Config struct {
	// Debounce is the minimum gap between any two pulses, across pattern
	// changes. Protects the actuator's refractory period against rapid
	// pattern flapping.
	Debounce time.Duration

	// Table maps each active pattern to its cadence and strength.
	Table map[Pattern]Pulse

	// Observability
	Logger *slog.Logger
}

// DefaultConfig returns the standard pattern table with a 200ms global
// pulse debounce.
func DefaultConfig() Config {
	table := make(map[Pattern]Pulse, len(defaultTable))
	for p, spec := range defaultTable {
		table[p] = spec
	}
	return Config{
		Debounce: 200 * time.Millisecond,
		Table:    table,
	}
}

// Option is a functional option for configuring the scheduler.
type Option func(*Config)

// WithDebounce sets the global minimum gap between pulses.
func WithDebounce(d time.Duration) Option {
	return func(c *Config) {
		c.Debounce = d
	}
}

// WithPulse overrides one pattern's cadence and strength.
func WithPulse(p Pattern, spec Pulse) Option {
	return func(c *Config) {
		c.Table[p] = spec
	}
}

// WithLogger sets the scheduler logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
