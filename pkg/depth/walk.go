package depth

import (
	"context"
	"math"
	"sync"
)

// Walk is a synthetic sampler that simulates walking down a corridor toward
// an obstacle, veering around it, and continuing. It exists for demos and
// soak testing without real sensor hardware.
type Walk struct {
	mu   sync.Mutex
	tick int

	// StepPerTick is how far the walker advances each tick, in meters.
	// Defaults to 0.02 (~0.6 m/s at 30Hz).
	StepPerTick float64
}

// NewWalk creates a synthetic corridor walk.
func NewWalk() *Walk {
	return &Walk{StepPerTick: 0.02}
}

// Sample advances the walk one tick and returns the simulated readings.
func (w *Walk) Sample(ctx context.Context) (Sample, error) {
	if err := ctx.Err(); err != nil {
		return Sample{}, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	// Approach from 6m down to 0.3m, then "step around" and reset.
	const start, nearest = 6.0, 0.3
	span := start - nearest
	cycle := int(span / w.StepPerTick)
	phase := w.tick % cycle
	w.tick++

	center := start - float64(phase)*w.StepPerTick

	// The left wall stays close; the right side opens up as the walker
	// nears the obstacle, so guidance should steer right.
	left := 1.2 + 0.3*math.Sin(float64(w.tick)*0.05)
	right := Sentinel
	if center > 3.0 {
		right = 4.0
	}

	return Sample{Left: left, Center: center, Right: right}.Sanitize(), nil
}
