package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hamexam/internal/ui/layout"
)

// Screen is one page of the TUI, managed by the router.
type Screen interface {
	// Init returns the command to run when the screen is pushed.
	Init() tea.Cmd

	// Update handles a message and returns the updated screen.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area, excluding header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider is implemented by screens with their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// InputCapturer is implemented by screens that sometimes need every key,
// including Esc, for example while a confirmation prompt is open.
type InputCapturer interface {
	CapturingInput() bool
}
