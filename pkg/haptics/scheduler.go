package haptics

import (
	"log/slog"
	"sync"
	"time"
)

// Scheduler owns the pattern state machine and at most one live repeating
// timer. Depth updates arrive serially from the host loop; the timer
// callback is the only concurrent entrant, and it is serialized against
// updates by the scheduler mutex plus a generation counter, so a pulse
// scheduled under an old pattern can never fire after the pattern has
// been replaced or the engine stopped.
type Scheduler struct {
	cfg      Config
	actuator Actuator
	logger   *slog.Logger
	now      func() time.Time

	mu        sync.Mutex
	running   bool
	active    Pattern
	timer     *time.Timer
	gen       uint64
	lastPulse time.Time
}

// NewScheduler creates a haptic scheduler driving the given actuator,
// with the given options applied over DefaultConfig. The scheduler starts
// inactive; call Start before feeding depth updates.
func NewScheduler(actuator Actuator, opts ...Option) *Scheduler {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Scheduler{
		cfg:      cfg,
		actuator: actuator,
		logger:   logger.With("component", "haptics.scheduler"),
		now:      time.Now,
		active:   PatternStopped,
	}
}

// Start activates the engine. Idempotent while already active. The first
// Update after Start selects a pattern and fires the first pulse.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.active = PatternStopped
	s.lastPulse = time.Time{}
	s.logger.Debug("haptics started")
}

// Stop cancels the timer and resets the pattern to stopped. Idempotent
// while already inactive; callable from any state and always leaves zero
// pending timers.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.cancelLocked()
	s.active = PatternStopped
	s.running = false
	s.logger.Debug("haptics stopped")
}

// Update recomputes the pattern for the new center depth. An unchanged
// pattern leaves the running cadence undisturbed; a changed one cancels
// the old timer, pulses immediately, and arms the new cadence.
func (s *Scheduler) Update(center float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}

	p := PatternFor(center)
	if p == s.active {
		return
	}

	s.cancelLocked()
	s.active = p
	s.pulseLocked()
	s.armLocked()

	s.logger.Debug("pattern change",
		"pattern", p.String(),
		"center_m", center,
	)
}

// Active returns the currently active pattern.
func (s *Scheduler) Active() Pattern {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Running reports whether the engine is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// cancelLocked stops any live timer and invalidates in-flight callbacks.
// Bumping the generation makes cancel-then-replace atomic: a callback that
// already fired and is waiting on the mutex sees a stale generation and
// returns without pulsing.
func (s *Scheduler) cancelLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
}

// armLocked schedules the next repeat pulse for the active pattern.
func (s *Scheduler) armLocked() {
	spec, ok := s.cfg.Table[s.active]
	if !ok {
		return
	}
	gen := s.gen
	s.timer = time.AfterFunc(spec.Interval, func() {
		s.repeat(gen)
	})
}

// repeat is the timer callback: pulse and re-arm, unless this timer was
// cancelled or replaced since it was scheduled.
func (s *Scheduler) repeat(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running || gen != s.gen {
		return
	}
	s.pulseLocked()
	s.armLocked()
}

// pulseLocked fires one pulse at the active pattern's strength, subject
// to the global debounce. The actuator contract is non-blocking, so the
// call is made with the lock held to keep pulse ordering intact.
func (s *Scheduler) pulseLocked() {
	spec, ok := s.cfg.Table[s.active]
	if !ok {
		return
	}

	now := s.now()
	if !s.lastPulse.IsZero() && now.Sub(s.lastPulse) < s.cfg.Debounce {
		s.logger.Debug("pulse debounced", "pattern", s.active.String())
		return
	}
	s.lastPulse = now

	if err := s.actuator.Pulse(spec.Intensity, spec.Sharpness); err != nil {
		s.logger.Warn("pulse failed",
			"pattern", s.active.String(),
			"error", err,
		)
	}
}
