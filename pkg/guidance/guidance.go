// Package guidance runs one navigation session: a serial stream of depth
// ticks fanned into the speech and haptic schedulers.
//
// The session is the only writer of scheduler state. Ticks are processed
// one at a time, either pushed via HandleSample or pulled from a sampler
// by Run; the two schedulers never see concurrent ticks.
package guidance

import (
	"time"

	"github.com/pathsense/go-pathsense/pkg/depth"
	"github.com/pathsense/go-pathsense/pkg/proximity"
)

// Event is the outcome of one processed tick, published to observers
// (the web monitor, tests) after both schedulers have run.
type Event struct {
	Time      time.Time           `json:"time"`
	Sample    depth.Sample        `json:"sample"`
	State     proximity.State     `json:"-"`
	StateName string              `json:"state"`
	Direction proximity.Direction `json:"-"`
	DirName   string              `json:"direction"`
	Spoken    string              `json:"spoken,omitempty"`
	Category  string              `json:"category,omitempty"`
	Pattern   string              `json:"pattern"`
}

// Snapshot is the session's current state for observers.
type Snapshot struct {
	SessionID   string       `json:"session_id"`
	Running     bool         `json:"running"`
	Ticks       uint64       `json:"ticks"`
	Announced   uint64       `json:"announced"`
	Sample      depth.Sample `json:"sample"`
	State       string       `json:"state"`
	Direction   string       `json:"direction"`
	LastMessage string       `json:"last_message"`
	Pattern     string       `json:"pattern"`
}
