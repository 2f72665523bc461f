package haptics

import (
	"sync"
	"time"
)

// Mock implements Actuator for testing, recording every pulse.
type Mock struct {
	// PulseFunc is called when Pulse is invoked. If nil, Pulse succeeds.
	PulseFunc func(intensity, sharpness float64) error

	mu    sync.Mutex
	calls []MockPulse
}

// MockPulse records one Pulse invocation.
type MockPulse struct {
	Intensity float64
	Sharpness float64
	Time      time.Time
}

// NewMock creates a recording mock actuator.
func NewMock() *Mock {
	return &Mock{}
}

// WithError returns a mock whose pulses always fail with err.
func WithError(err error) *Mock {
	return &Mock{
		PulseFunc: func(intensity, sharpness float64) error {
			return err
		},
	}
}

// Pulse records the call and invokes PulseFunc if set.
func (m *Mock) Pulse(intensity, sharpness float64) error {
	m.mu.Lock()
	m.calls = append(m.calls, MockPulse{Intensity: intensity, Sharpness: sharpness, Time: time.Now()})
	m.mu.Unlock()

	if m.PulseFunc != nil {
		return m.PulseFunc(intensity, sharpness)
	}
	return nil
}

// Pulses returns a copy of all recorded pulses.
func (m *Mock) Pulses() []MockPulse {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MockPulse, len(m.calls))
	copy(out, m.calls)
	return out
}

// PulseCount returns how many pulses were recorded.
func (m *Mock) PulseCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Reset clears the recorded pulses.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}
