package speech

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/pathsense/go-pathsense/pkg/depth"
	"github.com/pathsense/go-pathsense/pkg/proximity"
)

// Scheduler decides, once per sensor tick, whether to announce and what to
// say. One instance serves one navigation session; ticks must arrive
// serially. State mutates only when a tick actually emits.
type Scheduler struct {
	cfg    Config
	logger *slog.Logger
	now    func() time.Time

	mu sync.Mutex

	// Baselines from the last emitted announcement (any category).
	lastState     proximity.State
	lastDepth     float64
	lastDirection proximity.Direction
	lastMessage   string

	// Independent rate-limit clocks. A status emission never resets the
	// command clock and vice versa.
	lastCommandAt time.Time
	lastStatusAt  time.Time
}

// NewScheduler creates a speech scheduler with the given options applied
// over DefaultConfig.
func NewScheduler(opts ...Option) *Scheduler {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Scheduler{
		cfg:    cfg,
		logger: logger.With("component", "speech.scheduler"),
		now:    time.Now,
	}
	s.reset()
	return s
}

func (s *Scheduler) reset() {
	s.lastState = proximity.StateUnknown
	s.lastDepth = depth.Sentinel
	s.lastDirection = proximity.DirectionUnknown
	s.lastMessage = ""
	// Zero timestamps are in the distant past, so the first announcement
	// of each category passes its time gate.
	s.lastCommandAt = time.Time{}
	s.lastStatusAt = time.Time{}
}

// Reset restores the scheduler to its initial state, as on session stop.
func (s *Scheduler) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

// Tick evaluates one depth sweep. It returns the announcement to speak
// and true, or a zero Announcement and false when this tick stays silent.
func (s *Scheduler) Tick(sample depth.Sample, dir proximity.Direction) (Announcement, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sample = sample.Sanitize()
	state := proximity.Classify(sample.Center)
	blocked := sample.Center < proximity.ForwardThreshold

	cat := CategoryStatus
	if blocked || state == proximity.StateVeryClose {
		cat = CategoryCommand
	}

	stateChanged := state != s.lastState
	dirChanged := dir != s.lastDirection
	depthMoved := math.Abs(sample.Center-s.lastDepth) >= s.cfg.StatusDepthDelta

	// VeryClose bypasses the time gate unconditionally: imminent
	// collisions are never held back by the cadence limiter.
	bypass := state == proximity.StateVeryClose
	now := s.now()

	var fire bool
	switch cat {
	case CategoryCommand:
		fire = (stateChanged || dirChanged) &&
			(bypass || now.Sub(s.lastCommandAt) >= s.cfg.CommandInterval)
	default:
		fire = (stateChanged || dirChanged || depthMoved) &&
			(bypass || now.Sub(s.lastStatusAt) >= s.cfg.StatusInterval)
	}
	if !fire {
		return Announcement{}, false
	}

	text := BuildMessage(sample, dir)

	// Suppress exact repeats regardless of category, without touching any
	// baseline: the next differing message still compares against the
	// announcement the user actually heard.
	if text == s.lastMessage {
		return Announcement{}, false
	}

	s.lastState = state
	s.lastDepth = sample.Center
	s.lastDirection = dir
	s.lastMessage = text
	if cat == CategoryCommand {
		s.lastCommandAt = now
	} else {
		s.lastStatusAt = now
	}

	s.logger.Debug("announce",
		"category", cat.String(),
		"state", state.String(),
		"direction", dir.String(),
		"text", text,
	)

	return Announcement{Text: text, Category: cat, At: now}, true
}

// LastMessage returns the most recently emitted announcement text, empty
// if nothing has been announced yet.
func (s *Scheduler) LastMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastMessage
}
