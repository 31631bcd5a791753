package session

import (
	"log/slog"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/abhisek/hamexam/internal/bank"
	"github.com/abhisek/hamexam/internal/grader"
	"github.com/abhisek/hamexam/internal/sampler"
)

// Options configures an Engine. Zero fields take defaults.
type Options struct {
	// Config holds the session parameters.
	Config Config

	// Rand drives the exam draw. Defaults to a randomly seeded PCG source.
	Rand *rand.Rand

	// Clock is the time source for the exam timer. Defaults to time.Now.
	Clock func() time.Time

	// Matcher decides correctness. Defaults to grader.PrefixMatcher.
	Matcher grader.Matcher

	// Logger receives a debug line per command. Defaults to discarding.
	Logger *slog.Logger
}

// Engine owns the active mode and its SessionState. Commands apply
// synchronously; an Engine must be driven from a single goroutine.
type Engine struct {
	bank    *bank.Bank
	cfg     Config
	rand    *rand.Rand
	clock   func() time.Time
	matcher grader.Matcher
	logger  *slog.Logger

	state *SessionState
}

// NewEngine creates an engine over b, starting in Study mode.
func NewEngine(b *bank.Bank, opts Options) *Engine {
	e := &Engine{
		bank:    b,
		cfg:     opts.Config.withDefaults(),
		rand:    opts.Rand,
		clock:   opts.Clock,
		matcher: opts.Matcher,
		logger:  opts.Logger,
	}
	if e.rand == nil {
		e.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if e.clock == nil {
		e.clock = time.Now
	}
	if e.matcher == nil {
		e.matcher = grader.PrefixMatcher{}
	}
	if e.logger == nil {
		e.logger = slog.New(slog.DiscardHandler)
	}
	e.enter(ModeStudy)
	return e
}

// Bank returns the question bank the engine draws from.
func (e *Engine) Bank() *bank.Bank { return e.bank }

// Config returns the effective session parameters.
func (e *Engine) Config() Config { return e.cfg }

// enter replaces the state with a fresh one for mode.
func (e *Engine) enter(mode Mode) {
	e.state = NewSessionState(mode, e.clock)
	switch mode {
	case ModeStudy:
		e.applySections(e.bank.Sections())
	case ModePractice:
		e.state.RequestedCount = e.cfg.PracticeCount
		e.applySections(e.bank.Sections())
	case ModeExam:
		e.state.Sections = e.bank.Sections()
	}
	e.log("enter")
}

func (e *Engine) log(cmd string, attrs ...any) {
	attrs = append([]any{
		slog.String("session_id", e.state.ID),
		slog.String("mode", e.state.Mode.String()),
		slog.String("phase", e.state.Phase.String()),
	}, attrs...)
	e.logger.Debug(cmd, attrs...)
}

// --- Commands ---

// SetMode activates mode, discarding all state of the previous mode.
// Selecting the already active mode changes nothing.
func (e *Engine) SetMode(mode Mode) Mode {
	if mode == e.state.Mode {
		return mode
	}
	e.enter(mode)
	return mode
}

// SetSections replaces the section selection and recomputes the working
// set under the active mode's policy. Exam draws ignore the selection, so
// in Exam mode this leaves the state untouched.
func (e *Engine) SetSections(sections []string) []bank.Question {
	if e.state.Mode == ModeExam {
		e.log("set_sections.ignored")
		return e.SelectedQuestions()
	}
	e.applySections(sections)
	e.log("set_sections", slog.Any("sections", e.state.Sections), slog.Int("selected", len(e.state.Selected)))
	return e.SelectedQuestions()
}

// SelectAllSections selects every section of the bank.
func (e *Engine) SelectAllSections() []bank.Question {
	return e.SetSections(e.bank.Sections())
}

// SetPracticeCount sets the requested practice size and returns the
// effective count, clamped to [1, available], or 0 when nothing is
// available. Outside Practice mode it does nothing and returns 0.
func (e *Engine) SetPracticeCount(n int) int {
	if e.state.Mode != ModePractice {
		e.log("set_practice_count.ignored", slog.Int("requested", n))
		return 0
	}
	e.state.RequestedCount = n
	e.recompute()
	e.log("set_practice_count", slog.Int("requested", n), slog.Int("count", e.state.Count))
	return e.state.Count
}

// applySections normalizes and stores sections, then recomputes.
func (e *Engine) applySections(sections []string) {
	seen := make(map[string]bool, len(sections))
	norm := make([]string, 0, len(sections))
	for _, s := range sections {
		if !seen[s] {
			seen[s] = true
			norm = append(norm, s)
		}
	}
	sort.Strings(norm)
	e.state.Sections = norm
	e.recompute()
}

// recompute derives the working set from the section selection.
func (e *Engine) recompute() {
	s := e.state
	filtered := e.bank.FilterBySections(s.Sections)
	s.Available = len(filtered)

	switch s.Mode {
	case ModeStudy:
		s.Selected = sampler.All(filtered)

	case ModePractice:
		s.Count = clampCount(s.RequestedCount, s.Available)
		s.Selected = sampler.BoundedSubset(filtered, s.Count)
		s.Graded = false
		s.Result = grader.Result{}
		if len(s.Selected) > 0 {
			s.Phase = PhaseActive
		} else {
			s.Phase = PhaseConfiguring
		}
	}
}

// clampCount clamps n into [1, available], or 0 if available is 0.
func clampCount(n, available int) int {
	if available <= 0 {
		return 0
	}
	return max(1, min(n, available))
}

// RecordAnswer stores option as the answer to question id, replacing any
// earlier answer. In Practice a graded selection returns to Active.
func (e *Engine) RecordAnswer(id, option string) error {
	s := e.state
	switch s.Mode {
	case ModeStudy:
		return ErrWrongMode
	case ModeExam:
		switch s.Phase {
		case PhaseNotStarted:
			return ErrExamNotStarted
		case PhaseGraded:
			return ErrExamSubmitted
		}
	}

	q, ok := s.question(id)
	if !ok {
		return ErrUnknownQuestion
	}
	if !q.HasOption(option) {
		return ErrInvalidOption
	}

	s.Answers[id] = option
	if s.Mode == ModePractice && s.Phase == PhaseGraded {
		s.Phase = PhaseActive
		s.Graded = false
	}
	e.log("record_answer", slog.String("question", id))
	return nil
}

// ClearAnswer removes the answer to question id, if any.
func (e *Engine) ClearAnswer(id string) error {
	s := e.state
	if s.Mode == ModeStudy {
		return ErrWrongMode
	}
	if s.Mode == ModeExam && s.Phase == PhaseGraded {
		return ErrExamSubmitted
	}
	if _, ok := s.question(id); !ok {
		return ErrUnknownQuestion
	}
	delete(s.Answers, id)
	if s.Mode == ModePractice && s.Phase == PhaseGraded {
		s.Phase = PhaseActive
		s.Graded = false
	}
	return nil
}

// StartExam draws the exam and starts the timer. It returns the drawn
// questions and the deadline.
func (e *Engine) StartExam() ([]bank.Question, time.Time, error) {
	s := e.state
	if s.Mode != ModeExam {
		return nil, time.Time{}, ErrWrongMode
	}
	switch s.Phase {
	case PhaseActive:
		return nil, time.Time{}, ErrExamInProgress
	case PhaseGraded:
		return nil, time.Time{}, ErrExamSubmitted
	}

	drawn := sampler.StratifiedDraw(e.rand, e.bank.Questions(), e.cfg.ExamQuotas)
	if len(drawn) == 0 {
		return nil, time.Time{}, ErrNoQuestions
	}

	s.Selected = drawn
	s.Available = len(drawn)
	s.Started = true
	deadline := s.Timer.Start(e.cfg.ExamDuration)
	s.Phase = PhaseActive
	e.log("start_exam", slog.Int("questions", len(drawn)), slog.Time("deadline", deadline))
	return e.SelectedQuestions(), deadline, nil
}

// Grade scores the working set. In Practice it may be called repeatedly;
// an empty selection scores 0/0 and leaves the phase at Configuring. In
// Exam it is equivalent to SubmitExam.
func (e *Engine) Grade() (grader.Result, error) {
	s := e.state
	switch s.Mode {
	case ModeStudy:
		return grader.Result{}, ErrWrongMode
	case ModeExam:
		return e.SubmitExam()
	}

	if len(s.Selected) == 0 {
		e.log("grade", slog.Int("score", 0), slog.Int("total", 0))
		return grader.GradeWith(e.matcher, nil, s.Answers), nil
	}
	s.Result = grader.GradeWith(e.matcher, s.Selected, s.Answers)
	s.Graded = true
	s.Phase = PhaseGraded
	e.log("grade", slog.Int("score", s.Result.Score), slog.Int("total", s.Result.Total))
	return s.Result.Clone(), nil
}

// SubmitExam grades the exam and locks its answers. Submitting again
// returns the stored result. Submission after the deadline is accepted.
func (e *Engine) SubmitExam() (grader.Result, error) {
	s := e.state
	if s.Mode != ModeExam {
		return grader.Result{}, ErrWrongMode
	}
	switch s.Phase {
	case PhaseNotStarted:
		return grader.Result{}, ErrExamNotStarted
	case PhaseGraded:
		return s.Result.Clone(), nil
	}

	s.Result = grader.GradeWith(e.matcher, s.Selected, s.Answers)
	s.Graded = true
	s.Phase = PhaseGraded
	s.SubmittedAt = e.clock()
	e.log("submit_exam",
		slog.Int("score", s.Result.Score),
		slog.Int("total", s.Result.Total),
		slog.Bool("expired", s.Timer.Expired()),
	)
	return s.Result.Clone(), nil
}

// Reset discards the state of mode. Resetting the active mode starts it
// afresh (for Exam this is Restart); other modes hold no state.
func (e *Engine) Reset(mode Mode) {
	if mode != e.state.Mode {
		return
	}
	e.log("reset")
	e.enter(mode)
}

// --- Queries ---

// Mode returns the active mode.
func (e *Engine) Mode() Mode { return e.state.Mode }

// Phase returns the active phase.
func (e *Engine) Phase() Phase { return e.state.Phase }

// SelectedQuestions returns a copy of the working set.
func (e *Engine) SelectedQuestions() []bank.Question {
	return append([]bank.Question{}, e.state.Selected...)
}

// Answers returns a copy of the recorded answers.
func (e *Engine) Answers() map[string]string {
	out := make(map[string]string, len(e.state.Answers))
	for k, v := range e.state.Answers {
		out[k] = v
	}
	return out
}

// RemainingTime returns the exam time left, never negative.
func (e *Engine) RemainingTime() (time.Duration, error) {
	s := e.state
	if s.Mode != ModeExam {
		return 0, ErrWrongMode
	}
	if !s.Started {
		return 0, ErrExamNotStarted
	}
	return s.Timer.Remaining(), nil
}

// Sections returns every section code of the bank, sorted.
func (e *Engine) Sections() []string { return e.bank.Sections() }

// SelectedSections returns the current section selection.
func (e *Engine) SelectedSections() []string {
	return append([]string{}, e.state.Sections...)
}

// Result returns the last grade, if the current selection is graded.
func (e *Engine) Result() (grader.Result, bool) {
	if !e.state.Graded {
		return grader.Result{}, false
	}
	return e.state.Result.Clone(), true
}

// PracticeBounds returns the valid practice count range for the current
// section selection: [1, available], or [0, 0] when nothing is available.
func (e *Engine) PracticeBounds() (lo, hi int) {
	n := e.state.Available
	if e.state.Mode != ModePractice {
		n = len(e.bank.FilterBySections(e.state.Sections))
	}
	if n == 0 {
		return 0, 0
	}
	return 1, n
}

// Snapshot returns a copy of the active state.
func (e *Engine) Snapshot() Snapshot {
	return e.state.snapshot()
}

// Summary builds the result summary of the active state.
func (e *Engine) Summary() *Summary {
	return BuildSummary(e.state, e.cfg.PassMark)
}
