package session

import (
	"fmt"
	"strings"
)

// Mode is the active trainer mode. Exactly one is active at a time.
type Mode int

const (
	ModeStudy    Mode = iota // Browse questions with answers shown
	ModePractice             // Answer a bounded subset, graded on demand
	ModeExam                 // Timed stratified draw, graded on submit
)

// Modes lists every mode in display order.
var Modes = []Mode{ModeStudy, ModePractice, ModeExam}

func (m Mode) String() string {
	switch m {
	case ModeStudy:
		return "Study"
	case ModePractice:
		return "Practice"
	case ModeExam:
		return "Exam"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// Phase is the lifecycle position of the active mode's state.
type Phase int

const (
	PhaseIdle        Phase = iota // Study: nothing to grade
	PhaseConfiguring              // Practice: selection is empty
	PhaseActive                   // Practice or Exam: answering
	PhaseGraded                   // Practice or Exam: result available
	PhaseNotStarted               // Exam: waiting for StartExam
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseConfiguring:
		return "configuring"
	case PhaseActive:
		return "active"
	case PhaseGraded:
		return "graded"
	case PhaseNotStarted:
		return "not-started"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}
