// Package speech decides when and what to announce to the user.
//
// The Scheduler is a dual-category hysteresis engine: safety-critical
// "command" announcements (move left, move right, collision warnings) are
// strictly rate-limited, while informational "status" updates run on a
// more permissive cadence. The two tracks keep independent rate-limit
// clocks, so status chatter never starves a pending command and a command
// never resets the status cadence.
//
// Speaking itself is delegated to a Speaker collaborator; the scheduler
// only composes text and decides whether this tick should emit.
package speech

import "time"

// Category classifies an announcement by urgency.
type Category int

const (
	// CategoryStatus is informational: permissive cadence.
	CategoryStatus Category = iota
	// CategoryCommand is safety-critical: strict cadence.
	CategoryCommand
)

// String returns the category name.
func (c Category) String() string {
	if c == CategoryCommand {
		return "command"
	}
	return "status"
}

// Announcement is one spoken message decided by the scheduler.
type Announcement struct {
	Text     string
	Category Category
	At       time.Time
}

// Speaker is the speech-output collaborator. Speak must not block tick
// processing; starting a new utterance interrupts any one in flight
// (single active utterance, enforced by the implementation).
type Speaker interface {
	Speak(text string)
}

// SpeakerFunc adapts a function to the Speaker interface.
type SpeakerFunc func(text string)

// Speak calls f.
func (f SpeakerFunc) Speak(text string) {
	f(text)
}
