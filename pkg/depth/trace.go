package depth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrTraceDone is returned by a non-looping Trace once all samples have
// been replayed.
var ErrTraceDone = errors.New("depth: trace exhausted")

// Trace replays a recorded sequence of depth samples. It is used by the
// simulator and by tests that need a reproducible sensor feed.
type Trace struct {
	mu      sync.Mutex
	samples []Sample
	pos     int
	loop    bool
}

// NewTrace creates a trace sampler over the given samples.
// If loop is true the trace restarts from the beginning when exhausted.
func NewTrace(samples []Sample, loop bool) *Trace {
	return &Trace{samples: samples, loop: loop}
}

// LoadTrace reads a YAML trace file: a list of {left, center, right} docs.
func LoadTrace(path string, loop bool) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("depth: read trace %s: %w", path, err)
	}

	var samples []Sample
	if err := yaml.Unmarshal(data, &samples); err != nil {
		return nil, fmt.Errorf("depth: parse trace %s: %w", path, err)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("depth: trace %s is empty", path)
	}

	return NewTrace(samples, loop), nil
}

// Sample returns the next recorded sample, sanitized.
func (t *Trace) Sample(ctx context.Context) (Sample, error) {
	if err := ctx.Err(); err != nil {
		return Sample{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pos >= len(t.samples) {
		if !t.loop {
			return Sample{}, ErrTraceDone
		}
		t.pos = 0
	}

	s := t.samples[t.pos].Sanitize()
	t.pos++
	return s, nil
}

// Remaining reports how many samples are left before the trace is exhausted.
// Looping traces always report the full length.
func (t *Trace) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.loop {
		return len(t.samples)
	}
	return len(t.samples) - t.pos
}
