// Package depth defines the depth-sample data model and the sampler
// collaborator interface that feeds the guidance engine.
//
// A sampler produces one Sample per sensor tick: three noise-reduced
// spatial averages (left, center, right of the walking path), in meters.
// Pixels with no valid return are pre-filtered by the sampler to the far
// Sentinel value, so downstream decision logic never sees NaN or negative
// depths.
package depth

import (
	"context"
	"math"
)

// Sentinel is the "far" depth reported when a region has no valid reading.
// Anything at or beyond this distance is treated as open space.
const Sentinel = 10.0

// Sample is one tick's worth of depth readings, in meters.
type Sample struct {
	Left   float64 `yaml:"left" json:"left"`
	Center float64 `yaml:"center" json:"center"`
	Right  float64 `yaml:"right" json:"right"`
}

// Sanitize returns a copy with non-finite or negative readings replaced by
// Sentinel. Samplers are expected to do this themselves; the engine applies
// it once more defensively at the session boundary.
func (s Sample) Sanitize() Sample {
	return Sample{
		Left:   sanitize(s.Left),
		Center: sanitize(s.Center),
		Right:  sanitize(s.Right),
	}
}

// Min returns the nearest of the three readings.
func (s Sample) Min() float64 {
	return math.Min(s.Left, math.Min(s.Center, s.Right))
}

func sanitize(d float64) float64 {
	if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		return Sentinel
	}
	return d
}

// Sampler is the depth-sensor collaborator. Implementations own noise
// reduction and invalid-pixel filtering; Sample is called once per tick by
// the host loop.
type Sampler interface {
	// Sample returns the current depth readings.
	Sample(ctx context.Context) (Sample, error)
}

// SamplerFunc adapts a function to the Sampler interface.
type SamplerFunc func(ctx context.Context) (Sample, error)

// Sample calls f.
func (f SamplerFunc) Sample(ctx context.Context) (Sample, error) {
	return f(ctx)
}
