package practice

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hamexam/internal/router"
	"github.com/abhisek/hamexam/internal/screen"
	"github.com/abhisek/hamexam/internal/screens/quiz"
	"github.com/abhisek/hamexam/internal/screens/summary"
	"github.com/abhisek/hamexam/internal/session"
	"github.com/abhisek/hamexam/internal/tutor"
	"github.com/abhisek/hamexam/internal/ui/components"
	"github.com/abhisek/hamexam/internal/ui/layout"
	"github.com/abhisek/hamexam/internal/ui/theme"
)

const sidebarWidth = 24

type focus int

const (
	focusQuestions focus = iota
	focusSections
	focusCount
)

// PracticeScreen is the untimed drill: pick sections and a count, answer,
// grade as often as you like.
type PracticeScreen struct {
	engine   *session.Engine
	tutor    *tutor.Service
	sections components.Checklist
	count    components.NumberInput
	runner   quiz.Runner
	focus    focus
	status   string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates the practice screen. The engine must be in practice mode.
func New(engine *session.Engine, tut *tutor.Service) *PracticeScreen {
	s := &PracticeScreen{
		engine:   engine,
		tutor:    tut,
		sections: quiz.SectionChecklist(engine.Bank(), engine.SelectedSections()),
		count:    components.NewNumberInput(engine.Snapshot().Count, 4),
	}
	s.reload()
	return s
}

// reload rebuilds the pager from the engine, keeping the position when the
// question set is unchanged.
func (s *PracticeScreen) reload() {
	idx := s.runner.Index()
	same := s.runner.Len() == len(s.engine.SelectedQuestions())
	s.runner = quiz.NewRunner(s.engine.SelectedQuestions(), s.engine.Answers())
	if same {
		s.runner.Seek(idx)
	}
	s.count.SetValue(s.engine.Snapshot().Count)
}

// Init refreshes from the engine; it also runs when the results screen
// is popped.
func (s *PracticeScreen) Init() tea.Cmd {
	s.runner.SetAnswers(s.engine.Answers())
	return nil
}

func (s *PracticeScreen) Title() string { return "Practice" }

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	switch s.focus {
	case focusSections:
		return []layout.KeyHint{
			{Key: "Space", Description: "Toggle"},
			{Key: "a", Description: "All"},
			{Key: "Tab", Description: "Count"},
			{Key: "Esc", Description: "Back"},
		}
	case focusCount:
		return []layout.KeyHint{
			{Key: "0-9", Description: "Count"},
			{Key: "Enter", Description: "Apply"},
			{Key: "Tab", Description: "Questions"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓/a-f", Description: "Choose"},
		{Key: "←→", Description: "Previous/Next"},
		{Key: "g", Description: "Grade"},
		{Key: "Tab", Description: "Sections"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if ok && kmsg.String() == "tab" {
		return s, s.cycleFocus()
	}

	switch s.focus {
	case focusSections:
		var changed bool
		s.sections, changed = s.sections.Update(msg)
		if changed {
			s.engine.SetSections(s.sections.Checked())
			s.reload()
			s.status = ""
		}
		return s, nil

	case focusCount:
		if ok && kmsg.String() == "enter" {
			n, err := s.count.Value()
			if err != nil {
				s.status = "Enter a number."
				return s, nil
			}
			got := s.engine.SetPracticeCount(n)
			s.reload()
			s.status = ""
			if got != n {
				s.status = fmt.Sprintf("Count adjusted to %d.", got)
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.count, cmd = s.count.Update(msg)
		return s, cmd
	}

	if ok && kmsg.String() == "g" {
		return s, s.grade()
	}

	var ans *quiz.Answer
	s.runner, ans = s.runner.Update(msg)
	if ans != nil {
		if err := s.engine.RecordAnswer(ans.QuestionID, ans.Option); err != nil {
			s.status = err.Error()
		} else {
			s.status = ""
		}
	}
	return s, nil
}

func (s *PracticeScreen) cycleFocus() tea.Cmd {
	s.focus = (s.focus + 1) % 3
	if s.focus == focusCount {
		return s.count.Focus()
	}
	s.count.Blur()
	return nil
}

func (s *PracticeScreen) grade() tea.Cmd {
	res, err := s.engine.Grade()
	if err != nil {
		s.status = err.Error()
		return nil
	}
	if res.Total == 0 {
		s.status = "Graded 0/0. Select at least one section first."
		return nil
	}
	s.status = ""
	results := summary.New(s.engine.Summary(), s.tutor)
	return func() tea.Msg { return router.PushScreenMsg{Screen: results} }
}

func (s *PracticeScreen) View(width, height int) string {
	snap := s.engine.Snapshot()
	lo, hi := s.engine.PracticeBounds()

	card := func(f focus) lipgloss.Style {
		if s.focus == f {
			return theme.FocusedCard
		}
		return theme.Card
	}

	var side strings.Builder
	side.WriteString(theme.Title.Render("Sections") + "\n")
	side.WriteString(s.sections.View(s.focus == focusSections))
	sidebar := card(focusSections).Width(sidebarWidth).Render(strings.TrimRight(side.String(), "\n"))

	countBox := card(focusCount).Width(sidebarWidth).Render(
		theme.Title.Render("Questions") + "\n" + s.count.View() + "\n" +
			theme.Muted.Render(fmt.Sprintf("range %d-%d", lo, hi)))

	left := lipgloss.JoinVertical(lipgloss.Left, sidebar, countBox)

	mainWidth := max(width-sidebarWidth-4, 20)
	var main strings.Builder
	switch {
	case len(snap.Selected) == 0:
		main.WriteString(theme.Hint.Render("Select one or more sections to start."))
	default:
		main.WriteString(s.runner.View(mainWidth - 6))
	}
	if r, ok := s.engine.Result(); ok {
		main.WriteString("\n" + theme.Correct.Render(fmt.Sprintf("Graded: %d/%d", r.Score, r.Total)))
	}
	if s.status != "" {
		main.WriteString("\n" + theme.Incorrect.Render(s.status))
	}
	right := card(focusQuestions).Width(mainWidth).Render(main.String())

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}
