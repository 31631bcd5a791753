package session

import (
	"time"

	"github.com/abhisek/hamexam/internal/bank"
	"github.com/abhisek/hamexam/internal/grader"
	"github.com/abhisek/hamexam/internal/timer"
	"github.com/google/uuid"
)

// SessionState is the per-mode working state. A fresh one is created on
// every mode entry and on reset; nothing carries over between modes.
type SessionState struct {
	// ID is the UUID of this state, used to correlate log lines.
	ID string

	// Mode is the mode this state belongs to.
	Mode Mode

	// Phase is the current lifecycle phase.
	Phase Phase

	// Sections are the selected section codes, sorted.
	Sections []string

	// Selected is the ordered working set of questions.
	Selected []bank.Question

	// Answers maps question id to the chosen option. Entries survive
	// reselection and are only dropped by a reset.
	Answers map[string]string

	// Graded is true once Result holds the grade of the current selection.
	Graded bool

	// Result is the outcome of the last grade.
	Result grader.Result

	// RequestedCount is the practice count asked for by the user.
	RequestedCount int

	// Count is RequestedCount clamped to the available questions.
	Count int

	// Available is the number of questions matching Sections.
	Available int

	// Started is true once the exam has been drawn and timed.
	Started bool

	// Timer tracks the exam deadline.
	Timer *timer.Timer

	// SubmittedAt records when the exam was submitted.
	SubmittedAt time.Time
}

// NewSessionState creates an empty state for mode with initialized maps.
func NewSessionState(mode Mode, clock func() time.Time) *SessionState {
	s := &SessionState{
		ID:       uuid.New().String(),
		Mode:     mode,
		Answers:  make(map[string]string),
		Sections: []string{},
		Selected: []bank.Question{},
	}
	switch mode {
	case ModeStudy:
		s.Phase = PhaseIdle
	case ModePractice:
		s.Phase = PhaseConfiguring
	case ModeExam:
		s.Phase = PhaseNotStarted
		s.Timer = timer.New(clock)
	}
	return s
}

// question returns the selected question with id.
func (s *SessionState) question(id string) (bank.Question, bool) {
	for _, q := range s.Selected {
		if q.ID == id {
			return q, true
		}
	}
	return bank.Question{}, false
}

// Snapshot is a read-only copy of a SessionState, safe to hand to the view.
type Snapshot struct {
	ID             string
	Mode           Mode
	Phase          Phase
	Sections       []string
	Selected       []bank.Question
	Answers        map[string]string
	Graded         bool
	Result         grader.Result
	RequestedCount int
	Count          int
	Available      int
	Started        bool
	StartTime      time.Time
	Deadline       time.Time
	Remaining      time.Duration
	Expired        bool
	SubmittedAt    time.Time
}

// snapshot copies s. Remaining and Expired are read from the timer now.
func (s *SessionState) snapshot() Snapshot {
	snap := Snapshot{
		ID:             s.ID,
		Mode:           s.Mode,
		Phase:          s.Phase,
		Sections:       append([]string{}, s.Sections...),
		Selected:       append([]bank.Question{}, s.Selected...),
		Answers:        make(map[string]string, len(s.Answers)),
		Graded:         s.Graded,
		RequestedCount: s.RequestedCount,
		Count:          s.Count,
		Available:      s.Available,
		Started:        s.Started,
		SubmittedAt:    s.SubmittedAt,
	}
	for k, v := range s.Answers {
		snap.Answers[k] = v
	}
	if s.Graded {
		snap.Result = s.Result.Clone()
	}
	if s.Timer != nil && s.Timer.Started() {
		snap.StartTime = s.Timer.StartTime()
		snap.Deadline = s.Timer.Deadline()
		snap.Remaining = s.Timer.Remaining()
		snap.Expired = s.Timer.Expired()
	}
	return snap
}

// Answered returns how many selected questions have an answer.
func (s Snapshot) Answered() int {
	n := 0
	for _, q := range s.Selected {
		if _, ok := s.Answers[q.ID]; ok {
			n++
		}
	}
	return n
}
