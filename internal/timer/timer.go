// Package timer tracks the deadline of a timed exam. It is pull-based:
// callers ask for the remaining time whenever they render.
package timer

import (
	"fmt"
	"time"
)

// DefaultExamDuration is the exam time limit.
const DefaultExamDuration = 600 * time.Second

// Timer records a start time and deadline against an injected clock.
// The zero value is not usable; construct with New.
type Timer struct {
	clock    func() time.Time
	start    time.Time
	deadline time.Time
	started  bool
}

// New returns a stopped timer. A nil clock uses time.Now.
func New(clock func() time.Time) *Timer {
	if clock == nil {
		clock = time.Now
	}
	return &Timer{clock: clock}
}

// Start begins the countdown of d from the current clock reading and
// returns the deadline. Starting again restarts the countdown.
func (t *Timer) Start(d time.Duration) time.Time {
	t.start = t.clock()
	t.deadline = t.start.Add(d)
	t.started = true
	return t.deadline
}

// Started reports whether Start has been called.
func (t *Timer) Started() bool { return t.started }

// StartTime returns when the timer was started.
func (t *Timer) StartTime() time.Time { return t.start }

// Deadline returns the instant the timer expires.
func (t *Timer) Deadline() time.Time { return t.deadline }

// Elapsed returns the time since start, or 0 if not started.
func (t *Timer) Elapsed() time.Duration {
	if !t.started {
		return 0
	}
	return t.clock().Sub(t.start)
}

// Remaining returns the time left until the deadline, never negative.
// A timer that has not started has no time remaining.
func (t *Timer) Remaining() time.Duration {
	if !t.started {
		return 0
	}
	return max(0, t.deadline.Sub(t.clock()))
}

// Expired reports whether a started timer has reached its deadline.
func (t *Timer) Expired() bool {
	return t.started && t.Remaining() == 0
}

// Format renders the remaining time as "MM:SS".
func (t *Timer) Format() string {
	return FormatDuration(t.Remaining())
}

// FormatDuration renders d as "MM:SS", flooring to whole seconds. Negative
// durations render as "00:00".
func FormatDuration(d time.Duration) string {
	secs := int(max(0, d) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
