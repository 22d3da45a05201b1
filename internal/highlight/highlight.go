// Package highlight tracks the window during which target objects are shown
// in a distinguishing color.
package highlight

import (
	"fmt"
	"time"
)

// TargetTime is how long targets stay highlighted after a click.
const TargetTime = 3000 * time.Millisecond

// State of the highlight machine.
type State int

const (
	Idle State = iota
	Highlighting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Highlighting:
		return "highlighting"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Timer is a two-state machine. The start instant survives the return to
// Idle so the elapsed readout keeps counting until the next click.
type Timer struct {
	state    State
	started  time.Time
	duration time.Duration
}

// NewTimer returns an idle timer with the given highlight duration.
// A non-positive duration falls back to TargetTime.
func NewTimer(d time.Duration) *Timer {
	if d <= 0 {
		d = TargetTime
	}
	return &Timer{duration: d}
}

// State returns the current state.
func (t *Timer) State() State { return t.state }

// Highlighting reports whether targets should be drawn highlighted.
func (t *Timer) Highlighting() bool { return t.state == Highlighting }

// Duration is the length of a highlight window.
func (t *Timer) Duration() time.Duration { return t.duration }

// Click starts a highlight window at now. Clicks while highlighting are
// ignored; the return value tells whether the click took effect.
func (t *Timer) Click(now time.Time) bool {
	if t.state == Highlighting {
		return false
	}
	t.state = Highlighting
	t.started = now
	return true
}

// Update ends the highlight window once its duration has elapsed. It returns
// true on the frame the window closes.
func (t *Timer) Update(now time.Time) bool {
	if t.state != Highlighting {
		return false
	}
	if now.Sub(t.started) < t.duration {
		return false
	}
	t.state = Idle
	return true
}

// Elapsed is the time since the most recent effective click, whatever the
// state. ok is false before the first click.
func (t *Timer) Elapsed(now time.Time) (d time.Duration, ok bool) {
	if t.started.IsZero() {
		return 0, false
	}
	return now.Sub(t.started), true
}

// FormatElapsed renders d as seconds with one decimal, e.g. "2.5".
func FormatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.1f", d.Seconds())
}
