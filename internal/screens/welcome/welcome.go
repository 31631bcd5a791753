// Package welcome is the splash screen shown before the mode menu.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hamexam/internal/router"
	"github.com/abhisek/hamexam/internal/screen"
	"github.com/abhisek/hamexam/internal/ui/theme"
)

const (
	tickInterval = 150 * time.Millisecond
	bannerAfter  = 900 * time.Millisecond
	totalDur     = 1800 * time.Millisecond
)

const antennaArt = `    |
   /|\
  / | \
 /  |  \
    |
 ═══╧═══`

// waveFrames are the radio waves drawn beside the antenna, growing then
// repeating.
var waveFrames = []string{"", ")", ")  )", ")  )  )"}

type tickMsg time.Time

// WelcomeScreen plays a short transmit animation, then waits for a key
// and replaces itself with the screen built by next. Any key skips the
// animation.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	frame        int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that hands over to the screen built by next.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return w.tick() }

func (w *WelcomeScreen) tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		w.elapsed = min(w.elapsed+tickInterval, totalDur)
		w.frame++
		return w, w.tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (w *WelcomeScreen) View(width, height int) string {
	waves := lipgloss.NewStyle().Foreground(theme.Accent).
		Render(waveFrames[w.frame%len(waveFrames)])

	lines := strings.Split(lipgloss.NewStyle().Foreground(theme.Secondary).Render(antennaArt), "\n")
	lines[1] = lines[1] + "   " + waves
	parts := []string{strings.Join(lines, "\n")}

	if w.elapsed >= bannerAfter {
		parts = append(parts,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Study. Practice. Pass."),
		)
	}
	if w.elapsed >= totalDur {
		parts = append(parts, "", lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(parts, "\n"))
}
