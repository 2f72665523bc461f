package guidance

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pathsense/go-pathsense/pkg/depth"
	"github.com/pathsense/go-pathsense/pkg/haptics"
	"github.com/pathsense/go-pathsense/pkg/proximity"
	"github.com/pathsense/go-pathsense/pkg/speech"
)

// DefaultRate is the tick interval Run uses when none is configured,
// matching a 30Hz depth sensor.
const DefaultRate = 33 * time.Millisecond

// Session drives one navigation session. Create one per active user
// session; state is never shared across sessions.
type Session struct {
	id      string
	sampler depth.Sampler
	speaker speech.Speaker
	speech  *speech.Scheduler
	haptics *haptics.Scheduler
	logger  *slog.Logger
	rate    time.Duration
	onEvent func(Event)

	mu        sync.Mutex
	running   bool
	ticks     uint64
	announced uint64
	last      Event
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithRate sets the tick interval used by Run.
func WithRate(d time.Duration) SessionOption {
	return func(s *Session) {
		s.rate = d
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithSpeechScheduler replaces the default speech scheduler.
func WithSpeechScheduler(sched *speech.Scheduler) SessionOption {
	return func(s *Session) {
		s.speech = sched
	}
}

// WithHapticScheduler replaces the default haptic scheduler. The provided
// scheduler must drive the session's actuator.
func WithHapticScheduler(sched *haptics.Scheduler) SessionOption {
	return func(s *Session) {
		s.haptics = sched
	}
}

// WithEventHandler registers a callback invoked after every processed
// tick. The callback must not block.
func WithEventHandler(fn func(Event)) SessionOption {
	return func(s *Session) {
		s.onEvent = fn
	}
}

// NewSession creates a navigation session reading from sampler, speaking
// through speaker, and pulsing through actuator.
func NewSession(sampler depth.Sampler, speaker speech.Speaker, actuator haptics.Actuator, opts ...SessionOption) *Session {
	s := &Session{
		id:      uuid.NewString(),
		sampler: sampler,
		speaker: speaker,
		rate:    DefaultRate,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("component", "guidance.session", "session_id", s.id)

	if s.speech == nil {
		s.speech = speech.NewScheduler(speech.WithLogger(s.logger))
	}
	if s.haptics == nil {
		s.haptics = haptics.NewScheduler(actuator, haptics.WithLogger(s.logger))
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Start activates the session and its haptic engine. Idempotent.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.haptics.Start()
	s.logger.Info("session started")
}

// Stop deactivates the session: the haptic engine stops with zero pending
// timers and the speech scheduler resets to its initial state. Idempotent.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.running = false
	s.haptics.Stop()
	s.speech.Reset()
	s.logger.Info("session stopped", "ticks", s.ticks, "announced", s.announced)
}

// HandleSample processes one sensor tick. Ticks must arrive serially.
// Inactive sessions ignore ticks.
func (s *Session) HandleSample(sample depth.Sample) Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return Event{}
	}

	sample = sample.Sanitize()
	state := proximity.Classify(sample.Center)
	dir := proximity.Resolve(sample.Left, sample.Center, sample.Right)

	ev := Event{
		Time:      time.Now(),
		Sample:    sample,
		State:     state,
		StateName: state.String(),
		Direction: dir,
		DirName:   dir.String(),
	}

	if ann, ok := s.speech.Tick(sample, dir); ok {
		// Fire-and-forget: the speaker interrupts any in-flight
		// utterance and must not block tick processing.
		s.speaker.Speak(ann.Text)
		s.announced++
		ev.Spoken = ann.Text
		ev.Category = ann.Category.String()
	}

	s.haptics.Update(sample.Center)
	ev.Pattern = s.haptics.Active().String()

	s.ticks++
	s.last = ev

	if s.onEvent != nil {
		s.onEvent(ev)
	}
	if s.ticks%300 == 0 {
		s.logger.Debug("heartbeat",
			"ticks", s.ticks,
			"state", ev.StateName,
			"direction", ev.DirName,
			"pattern", ev.Pattern,
		)
	}
	return ev
}

// Run starts the session and pulls samples from the sampler at the
// configured rate until the context is cancelled or the sampler is
// exhausted. The session is stopped before Run returns.
func (s *Session) Run(ctx context.Context) error {
	s.Start()
	defer s.Stop()

	ticker := time.NewTicker(s.rate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			sample, err := s.sampler.Sample(ctx)
			if err != nil {
				if errors.Is(err, depth.ErrTraceDone) {
					s.logger.Info("trace complete")
					return nil
				}
				return err
			}
			s.HandleSample(sample)
		}
	}
}

// Snapshot returns the session's current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		SessionID:   s.id,
		Running:     s.running,
		Ticks:       s.ticks,
		Announced:   s.announced,
		Sample:      s.last.Sample,
		State:       s.last.StateName,
		Direction:   s.last.DirName,
		LastMessage: s.speech.LastMessage(),
		Pattern:     s.haptics.Active().String(),
	}
}
