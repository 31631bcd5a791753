package study

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hamexam/internal/screen"
	"github.com/abhisek/hamexam/internal/screens/quiz"
	"github.com/abhisek/hamexam/internal/session"
	"github.com/abhisek/hamexam/internal/ui/components"
	"github.com/abhisek/hamexam/internal/ui/layout"
	"github.com/abhisek/hamexam/internal/ui/theme"
)

const sidebarWidth = 22

// StudyScreen browses the selected sections with answers shown.
type StudyScreen struct {
	engine        *session.Engine
	sections      components.Checklist
	runner        quiz.Runner
	focusSections bool
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New creates the study screen. The engine must be in study mode.
func New(engine *session.Engine) *StudyScreen {
	s := &StudyScreen{engine: engine}
	s.sections = quiz.SectionChecklist(engine.Bank(), engine.SelectedSections())
	s.reload()
	return s
}

func (s *StudyScreen) reload() {
	s.runner = quiz.NewRunner(s.engine.SelectedQuestions(), nil)
	s.runner.Reveal = true
}

func (s *StudyScreen) Init() tea.Cmd { return nil }

func (s *StudyScreen) Title() string { return "Study" }

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	if s.focusSections {
		return []layout.KeyHint{
			{Key: "Space", Description: "Toggle"},
			{Key: "a", Description: "All"},
			{Key: "Tab", Description: "Questions"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Previous/Next"},
		{Key: "Tab", Description: "Sections"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "tab" {
		s.focusSections = !s.focusSections
		return s, nil
	}

	if s.focusSections {
		var changed bool
		s.sections, changed = s.sections.Update(msg)
		if changed {
			s.engine.SetSections(s.sections.Checked())
			s.reload()
		}
		return s, nil
	}

	s.runner, _ = s.runner.Update(msg)
	return s, nil
}

func (s *StudyScreen) View(width, height int) string {
	sidebarStyle, mainStyle := theme.FocusedCard, theme.Card
	if !s.focusSections {
		sidebarStyle, mainStyle = theme.Card, theme.FocusedCard
	}

	sidebar := sidebarStyle.Width(sidebarWidth).Render(
		theme.Title.Render("Sections") + "\n" + s.sections.View(s.focusSections) +
			theme.Muted.Render(fmt.Sprintf("%d questions", s.runner.Len())))

	mainWidth := max(width-sidebarWidth-4, 20)
	main := mainStyle.Width(mainWidth).Render(s.runner.View(mainWidth - 6))

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)
}
