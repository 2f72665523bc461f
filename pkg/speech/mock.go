package speech

import (
	"sync"
	"time"
)

// Mock implements Speaker for testing, recording every utterance.
type Mock struct {
	// SpeakFunc is called when Speak is invoked. May be nil.
	SpeakFunc func(text string)

	mu    sync.Mutex
	calls []MockCall
}

// MockCall records one Speak invocation.
type MockCall struct {
	Text string
	Time time.Time
}

// NewMock creates a recording mock speaker.
func NewMock() *Mock {
	return &Mock{}
}

// Speak records the call and invokes SpeakFunc if set.
func (m *Mock) Speak(text string) {
	m.mu.Lock()
	m.calls = append(m.calls, MockCall{Text: text, Time: time.Now()})
	m.mu.Unlock()

	if m.SpeakFunc != nil {
		m.SpeakFunc(text)
	}
}

// Calls returns a copy of all recorded utterances.
func (m *Mock) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MockCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns how many times Speak was invoked.
func (m *Mock) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Last returns the most recent utterance, empty if none.
func (m *Mock) Last() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return ""
	}
	return m.calls[len(m.calls)-1].Text
}

// Reset clears the recorded calls.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}
