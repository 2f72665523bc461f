// Package proximity classifies depth readings into discrete proximity
// states and resolves a walking direction from a left/center/right sweep.
//
// Both operations are pure functions recomputed every tick; all state
// lives with the schedulers that consume them.
package proximity

// State is a discrete proximity bucket for a single depth reading,
// ordered from nearest to farthest.
type State int

const (
	// StateUnknown is the zero value, used before the first reading.
	StateUnknown State = iota
	// StateVeryClose is under 0.5m: collision imminent.
	StateVeryClose
	// StateClose is 0.5m to 1.5m.
	StateClose
	// StateMedium is 1.5m to 3.0m.
	StateMedium
	// StateClear is 3.0m or beyond.
	StateClear
)

// Classification thresholds, in meters. Buckets are half-open on the lower
// bound: a reading of exactly 0.5 is Close, not VeryClose.
const (
	VeryCloseBelow = 0.5
	CloseBelow     = 1.5
	MediumBelow    = 3.0
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateVeryClose:
		return "very_close"
	case StateClose:
		return "close"
	case StateMedium:
		return "medium"
	case StateClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Classify maps a depth reading to its proximity state.
func Classify(depth float64) State {
	switch {
	case depth < VeryCloseBelow:
		return StateVeryClose
	case depth < CloseBelow:
		return StateClose
	case depth < MediumBelow:
		return StateMedium
	default:
		return StateClear
	}
}

// Direction is the navigation advice derived from one depth sweep.
type Direction int

const (
	// DirectionUnknown is the zero value, used before the first reading.
	DirectionUnknown Direction = iota
	// DirectionForward means the path ahead is clear.
	DirectionForward
	// DirectionLeft advises deviating left.
	DirectionLeft
	// DirectionRight advises deviating right.
	DirectionRight
)

// ForwardThreshold is the center depth at or beyond which the path ahead
// counts as walkable, in meters.
const ForwardThreshold = 1.0

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}

// Resolve decides the walking direction for one depth sweep.
//
// A center depth at or beyond ForwardThreshold means the path ahead is
// walkable regardless of the sides. Otherwise the more open side wins.
// Ties go right: for a blocked center with equal side clearance the
// advice is always DirectionRight, so guidance never flip-flops between
// sides on sensor noise around equality.
func Resolve(left, center, right float64) Direction {
	if center >= ForwardThreshold {
		return DirectionForward
	}
	if left > right {
		return DirectionLeft
	}
	return DirectionRight
}
