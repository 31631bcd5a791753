package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hamexam/internal/router"
	"github.com/abhisek/hamexam/internal/screen"
	"github.com/abhisek/hamexam/internal/screens/exam"
	"github.com/abhisek/hamexam/internal/screens/practice"
	"github.com/abhisek/hamexam/internal/screens/sections"
	"github.com/abhisek/hamexam/internal/screens/study"
	"github.com/abhisek/hamexam/internal/session"
	"github.com/abhisek/hamexam/internal/timer"
	"github.com/abhisek/hamexam/internal/tutor"
	"github.com/abhisek/hamexam/internal/ui/components"
	"github.com/abhisek/hamexam/internal/ui/layout"
	"github.com/abhisek/hamexam/internal/ui/theme"
)

// HomeScreen is the mode selector.
type HomeScreen struct {
	engine   *session.Engine
	tutor    *tutor.Service
	bankName string
	menu     components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen. bankName is shown under the title.
func New(engine *session.Engine, tut *tutor.Service, bankName string) *HomeScreen {
	h := &HomeScreen{engine: engine, tutor: tut, bankName: bankName}
	cfg := engine.Config()

	items := []components.MenuItem{
		{Label: "STUDY", Detail: "browse questions with answers", Action: h.enter(session.ModeStudy)},
		{Label: "PRACTICE", Detail: fmt.Sprintf("graded drill, %d questions by default", cfg.PracticeCount), Action: h.enter(session.ModePractice)},
		{Label: "EXAM", Detail: fmt.Sprintf("%d questions, %s, pass mark %d", cfg.ExamQuotas.Total(), timer.FormatDuration(cfg.ExamDuration), cfg.PassMark), Action: h.enter(session.ModeExam)},
		{Label: "SECTIONS", Detail: "question counts and exam quotas", Action: func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: sections.New(engine.Bank(), cfg.ExamQuotas)} }
		}},
		{Label: "QUIT", Action: func() tea.Cmd { return tea.Quit }},
	}
	h.menu = components.NewMenu(items)
	return h
}

// enter switches the engine to mode and opens its screen. Re-entering
// the active mode keeps its state.
func (h *HomeScreen) enter(mode session.Mode) func() tea.Cmd {
	return func() tea.Cmd {
		h.engine.SetMode(mode)
		var next screen.Screen
		switch mode {
		case session.ModeStudy:
			next = study.New(h.engine)
		case session.ModePractice:
			next = practice.New(h.engine, h.tutor)
		default:
			next = exam.New(h.engine, h.tutor)
		}
		return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}
}

func (h *HomeScreen) Init() tea.Cmd { return nil }

func (h *HomeScreen) Title() string { return "Home" }

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	bk := h.engine.Bank()

	b.WriteString("\n")
	b.WriteString(center.Inherit(theme.Title).Render("Amateur radio licence exam trainer"))
	b.WriteString("\n")
	b.WriteString(center.Inherit(theme.Subtitle).Render(
		fmt.Sprintf("%s  ·  %d questions in %d sections", h.bankName, bk.Len(), len(bk.Sections()))))
	b.WriteString("\n\n")

	menu := theme.Card.Render(strings.TrimRight(h.menu.View(), "\n"))
	b.WriteString(center.Render(menu))

	if !h.tutor.Enabled() {
		b.WriteString("\n\n")
		b.WriteString(center.Inherit(theme.Hint).Render("Tutor explanations are off. Set an LLM API key to enable them."))
	}
	return b.String()
}
