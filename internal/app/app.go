package app

import (
	"context"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hamexam/internal/router"
	"github.com/abhisek/hamexam/internal/screen"
	"github.com/abhisek/hamexam/internal/screens/home"
	"github.com/abhisek/hamexam/internal/screens/welcome"
	"github.com/abhisek/hamexam/internal/session"
	"github.com/abhisek/hamexam/internal/timer"
	"github.com/abhisek/hamexam/internal/tutor"
	"github.com/abhisek/hamexam/internal/ui/layout"
	"github.com/abhisek/hamexam/internal/ui/theme"
)

// Options holds the dependencies of the TUI.
type Options struct {
	// Engine is the session engine. Required.
	Engine *session.Engine

	// Tutor explains missed questions. Nil disables it.
	Tutor *tutor.Service

	// BankName is shown on the home screen.
	BankName string

	// SkipSplash opens the home screen directly.
	SkipSplash bool

	Logger *slog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	engine *session.Engine
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	newHome := func() screen.Screen { return home.New(opts.Engine, opts.Tutor, opts.BankName) }
	root := newHome()
	if !opts.SkipSplash {
		root = welcome.New(newHome)
	}
	return AppModel{
		router: router.New(root),
		engine: opts.Engine,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if c, ok := m.router.Active().(screen.InputCapturer); ok && c.CapturingInput() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	return m, m.router.Update(msg)
}

// status is the header's right-hand side: the mode, plus the clock while
// an exam is running.
func (m AppModel) status() string {
	mode := theme.Muted.Render(m.engine.Mode().String())
	if m.engine.Mode() != session.ModeExam || m.engine.Phase() != session.PhaseActive {
		return mode
	}
	left, err := m.engine.RemainingTime()
	if err != nil {
		return mode
	}
	return mode + "  " + theme.Countdown(int(left.Seconds())).Render(timer.FormatDuration(left))
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the whole frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	header := layout.RenderHeader(active.Title(), m.status(), m.width)

	hints := []layout.KeyHint{{Key: "Esc", Description: "Back"}, {Key: "Ctrl+C", Description: "Quit"}}
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	}
	footer := layout.RenderFooter(hints, m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the TUI and blocks until it exits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Engine == nil {
		return fmt.Errorf("app: engine is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	logger.Info("tui starting", "bank", opts.BankName, "tutor", opts.Tutor.Enabled())
	p := tea.NewProgram(newAppModel(opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		logger.Error("tui failed", "error", err)
		return fmt.Errorf("run TUI: %w", err)
	}
	logger.Info("tui stopped")
	return nil
}
