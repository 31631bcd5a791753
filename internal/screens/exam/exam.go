package exam

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hamexam/internal/router"
	"github.com/abhisek/hamexam/internal/screen"
	"github.com/abhisek/hamexam/internal/screens/quiz"
	"github.com/abhisek/hamexam/internal/screens/summary"
	"github.com/abhisek/hamexam/internal/session"
	"github.com/abhisek/hamexam/internal/timer"
	"github.com/abhisek/hamexam/internal/tutor"
	"github.com/abhisek/hamexam/internal/ui/components"
	"github.com/abhisek/hamexam/internal/ui/layout"
	"github.com/abhisek/hamexam/internal/ui/theme"
)

// tickMsg re-renders the countdown. Ticks from an older loop are dropped.
type tickMsg struct {
	loop int64
}

var tickLoops atomic.Int64

// pending is the action waiting for a y/n answer.
type pending int

const (
	pendingNone pending = iota
	pendingSubmit
	pendingRestart
)

// ExamScreen runs the timed, quota-drawn exam.
type ExamScreen struct {
	engine     *session.Engine
	tutor      *tutor.Service
	runner     quiz.Runner
	start      components.Button
	loop    int64
	confirm pending
	status  string
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)
var _ screen.InputCapturer = (*ExamScreen)(nil)

// New creates the exam screen. The engine must be in exam mode.
func New(engine *session.Engine, tut *tutor.Service) *ExamScreen {
	s := &ExamScreen{engine: engine, tutor: tut}
	s.start = components.NewButton("START EXAM", true, s.begin)
	s.reload()
	return s
}

func (s *ExamScreen) reload() {
	s.runner = quiz.NewRunner(s.engine.SelectedQuestions(), s.engine.Answers())
	s.runner.Locked = s.engine.Phase() == session.PhaseGraded
}

// Init restarts the countdown loop when an exam is running.
func (s *ExamScreen) Init() tea.Cmd {
	s.reload()
	if s.engine.Phase() != session.PhaseActive {
		return nil
	}
	s.loop = tickLoops.Add(1)
	return s.tick()
}

func (s *ExamScreen) tick() tea.Cmd {
	loop := s.loop
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return tickMsg{loop: loop} })
}

func (s *ExamScreen) Title() string { return "Exam" }

// CapturingInput keeps Esc inside the screen while a y/n prompt is open.
func (s *ExamScreen) CapturingInput() bool { return s.confirm != pendingNone }

func (s *ExamScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.confirm == pendingSubmit:
		return []layout.KeyHint{{Key: "y", Description: "Submit"}, {Key: "n/Esc", Description: "Cancel"}}
	case s.confirm == pendingRestart:
		return []layout.KeyHint{{Key: "y", Description: "Restart"}, {Key: "n/Esc", Description: "Cancel"}}
	case s.engine.Phase() == session.PhaseNotStarted:
		return []layout.KeyHint{{Key: "Enter", Description: "Start"}, {Key: "Esc", Description: "Back"}}
	case s.engine.Phase() == session.PhaseGraded:
		return []layout.KeyHint{
			{Key: "←→", Description: "Review"},
			{Key: "v", Description: "Results"},
			{Key: "r", Description: "New exam"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓/a-f", Description: "Choose"},
		{Key: "←→", Description: "Previous/Next"},
		{Key: "s", Description: "Submit"},
		{Key: "r", Description: "Restart"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if t, ok := msg.(tickMsg); ok {
		if t.loop != s.loop || s.engine.Phase() != session.PhaseActive {
			return s, nil
		}
		return s, s.tick()
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	if s.confirm != pendingNone {
		switch kmsg.String() {
		case "y":
			action := s.confirm
			s.confirm = pendingNone
			if action == pendingRestart {
				s.restart()
				return s, nil
			}
			return s, s.submit()
		case "n", "esc":
			s.confirm = pendingNone
		}
		return s, nil
	}

	switch s.engine.Phase() {
	case session.PhaseNotStarted:
		var cmd tea.Cmd
		s.start, cmd = s.start.Update(msg)
		return s, cmd

	case session.PhaseGraded:
		switch kmsg.String() {
		case "r":
			s.restart()
			return s, nil
		case "v":
			return s, s.showResults()
		}
		s.runner, _ = s.runner.Update(msg)
		return s, nil
	}

	switch kmsg.String() {
	case "s":
		s.confirm = pendingSubmit
		return s, nil
	case "r":
		s.confirm = pendingRestart
		return s, nil
	}

	var ans *quiz.Answer
	s.runner, ans = s.runner.Update(msg)
	if ans != nil {
		if err := s.engine.RecordAnswer(ans.QuestionID, ans.Option); err != nil {
			s.status = err.Error()
		}
	}
	return s, nil
}

func (s *ExamScreen) begin() tea.Cmd {
	if _, _, err := s.engine.StartExam(); err != nil {
		s.status = fmt.Sprintf("Cannot start the exam: %v", err)
		return nil
	}
	s.status = ""
	return s.Init()
}

// restart discards the exam and returns to the start button. A running
// tick loop stops on its next tick because the phase is no longer Active.
func (s *ExamScreen) restart() {
	s.engine.Reset(session.ModeExam)
	s.reload()
	s.status = ""
}

func (s *ExamScreen) submit() tea.Cmd {
	if _, err := s.engine.SubmitExam(); err != nil {
		s.status = err.Error()
		return nil
	}
	s.runner.Locked = true
	return s.showResults()
}

func (s *ExamScreen) showResults() tea.Cmd {
	results := summary.New(s.engine.Summary(), s.tutor)
	return func() tea.Msg { return router.PushScreenMsg{Screen: results} }
}

func (s *ExamScreen) View(width, height int) string {
	if s.engine.Phase() == session.PhaseNotStarted {
		return s.introView(width)
	}

	snap := s.engine.Snapshot()
	secs := int(snap.Remaining / time.Second)
	clock := theme.Countdown(secs).Render("⏱ " + timer.FormatDuration(snap.Remaining))

	var top string
	switch {
	case snap.Phase == session.PhaseGraded:
		r := snap.Result
		top = theme.Title.Render(fmt.Sprintf("Submitted: %d/%d", r.Score, r.Total))
	case snap.Expired:
		top = clock + "  " + theme.Incorrect.Render("Time is up. Press s to submit.")
	default:
		top = clock
	}

	var b strings.Builder
	b.WriteString(top + "\n\n")
	b.WriteString(s.runner.View(width - 8))
	switch s.confirm {
	case pendingSubmit:
		unanswered := len(snap.Selected) - snap.Answered()
		b.WriteString("\n" + theme.Selected.Render(fmt.Sprintf("Submit the exam? %d unanswered. (y/n)", unanswered)))
	case pendingRestart:
		b.WriteString("\n" + theme.Selected.Render("Restart the exam? All answers are discarded. (y/n)"))
	}
	if s.status != "" {
		b.WriteString("\n" + theme.Incorrect.Render(s.status))
	}
	return theme.FocusedCard.Width(width).Render(b.String())
}

func (s *ExamScreen) introView(width int) string {
	cfg := s.engine.Config()
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center.Inherit(theme.Title).Render("Timed exam"))
	b.WriteString("\n\n")
	b.WriteString(center.Inherit(theme.Body).Render(fmt.Sprintf(
		"%d questions drawn by section quota (%s)", cfg.ExamQuotas.Total(), cfg.ExamQuotas)))
	b.WriteString("\n")
	b.WriteString(center.Inherit(theme.Body).Render(fmt.Sprintf(
		"Time limit %s  ·  pass mark %d", timer.FormatDuration(cfg.ExamDuration), cfg.PassMark)))
	b.WriteString("\n\n")
	b.WriteString(center.Render(s.start.View()))
	if s.status != "" {
		b.WriteString("\n\n" + center.Inherit(theme.Incorrect).Render(s.status))
	}
	return b.String()
}
