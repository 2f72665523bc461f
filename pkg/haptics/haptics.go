// Package haptics drives rhythmic pulse feedback from the center depth
// reading. A five-state pattern machine picks cadence and strength; a
// single owned repeating timer fires pulses between depth updates.
//
// The actuator itself sits behind the Actuator interface: the engine only
// ever requests intensity/sharpness pairs and is agnostic to whether the
// hardware is a precision haptic engine or a simple impact generator.
package haptics

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors.
var (
	// ErrNoActuator is returned when a chain has no actuators.
	ErrNoActuator = errors.New("haptics: no actuators available")
)

// Actuator is the haptic-output collaborator. Pulse must not block; both
// arguments are in [0,1].
type Actuator interface {
	Pulse(intensity, sharpness float64) error
}

// ActuatorFunc adapts a function to the Actuator interface.
type ActuatorFunc func(intensity, sharpness float64) error

// Pulse calls f.
func (f ActuatorFunc) Pulse(intensity, sharpness float64) error {
	return f(intensity, sharpness)
}

// Pattern is one haptic cadence state. The engine holds exactly one at a
// time; PatternStopped exists only while the engine is inactive.
type Pattern int

const (
	// PatternStopped means the engine is inactive: no pulses.
	PatternStopped Pattern = iota
	// PatternClear is a slow reassurance tick: open space ahead.
	PatternClear
	// PatternApproaching marks an obstacle inside 3m.
	PatternApproaching
	// PatternClose marks an obstacle inside 1.5m.
	PatternClose
	// PatternVeryClose is the urgent cadence inside 0.5m.
	PatternVeryClose
)

// String returns the pattern name.
func (p Pattern) String() string {
	switch p {
	case PatternClear:
		return "clear"
	case PatternApproaching:
		return "approaching"
	case PatternClose:
		return "close"
	case PatternVeryClose:
		return "very_close"
	default:
		return "stopped"
	}
}

// PatternFor maps a center depth to its haptic pattern. The break points
// differ from the speech proximity buckets on purpose: the tactile channel
// starts signalling at 3m with a single "approaching" band rather than the
// medium/close split the spoken channel uses.
func PatternFor(center float64) Pattern {
	switch {
	case center < 0.5:
		return PatternVeryClose
	case center < 1.5:
		return PatternClose
	case center < 3.0:
		return PatternApproaching
	default:
		return PatternClear
	}
}

// Pulse describes one pattern's cadence and strength.
type Pulse struct {
	Interval  time.Duration
	Intensity float64
	Sharpness float64
}

// defaultTable is the production pattern table.
var defaultTable = map[Pattern]Pulse{
	PatternClear:       {Interval: 2500 * time.Millisecond, Intensity: 0.3, Sharpness: 0.3},
	PatternApproaching: {Interval: 1500 * time.Millisecond, Intensity: 0.5, Sharpness: 0.5},
	PatternClose:       {Interval: 800 * time.Millisecond, Intensity: 0.7, Sharpness: 0.7},
	PatternVeryClose:   {Interval: 300 * time.Millisecond, Intensity: 1.0, Sharpness: 1.0},
}

// ChainError aggregates per-actuator failures from a Chain.
type ChainError struct {
	Errors []error
}

// Error implements the error interface.
func (e *ChainError) Error() string {
	return fmt.Sprintf("haptics: all %d actuators failed: %v", len(e.Errors), errors.Join(e.Errors...))
}
