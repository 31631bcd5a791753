package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hamexam/internal/ui/theme"
)

// MultiChoice renders a question with its options and lets the user pick
// one. It does not know which option is correct unless Reveal is set.
type MultiChoice struct {
	Prompt  string
	Options []string

	// Cursor is the highlighted option.
	Cursor int

	// Chosen is the index of the picked option, or -1.
	Chosen int

	// Correct is the index of the right option, or -1 if unknown.
	Correct int

	// Reveal marks the correct option and, if wrong, the chosen one.
	Reveal bool

	// Locked ignores input.
	Locked bool
}

// NewMultiChoice creates a selector for options with nothing chosen.
func NewMultiChoice(prompt string, options []string) MultiChoice {
	return MultiChoice{Prompt: prompt, Options: options, Chosen: -1, Correct: -1}
}

// Choose marks the option equal to text as chosen. Unknown text clears
// the choice.
func (m *MultiChoice) Choose(text string) {
	m.Chosen = -1
	for i, opt := range m.Options {
		if opt == text {
			m.Chosen = i
			m.Cursor = i
			return
		}
	}
}

// ChosenOption returns the chosen option text.
func (m MultiChoice) ChosenOption() (string, bool) {
	if m.Chosen < 0 || m.Chosen >= len(m.Options) {
		return "", false
	}
	return m.Options[m.Chosen], true
}

// Update moves the cursor with up/down and picks with enter or space.
// Letters a-f pick the option with that position directly.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || m.Locked || len(m.Options) == 0 {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		m.Cursor = max(m.Cursor-1, 0)
	case "down", "j":
		m.Cursor = min(m.Cursor+1, len(m.Options)-1)
	case "enter", "space":
		m.Chosen = m.Cursor
	default:
		if len(key) == 1 && key[0] >= 'a' && key[0] <= 'f' {
			if i := int(key[0] - 'a'); i < len(m.Options) {
				m.Cursor, m.Chosen = i, i
			}
		}
	}
	return m, nil
}

// View renders the prompt and options wrapped to width.
func (m MultiChoice) View(width int) string {
	wrap := lipgloss.NewStyle().Width(max(width, 20))

	var b strings.Builder
	b.WriteString(wrap.Inherit(theme.Body).Bold(true).Render(m.Prompt))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		marker := "  "
		if i == m.Cursor && !m.Locked {
			marker = "▸ "
		}
		if i == m.Chosen {
			marker += "● "
		} else {
			marker += "○ "
		}

		style := theme.Unselected
		switch {
		case m.Reveal && i == m.Correct:
			style = theme.Correct
		case m.Reveal && i == m.Chosen:
			style = theme.Incorrect
		case m.Reveal:
			style = theme.Muted
		case i == m.Cursor && !m.Locked:
			style = theme.Selected
		}
		b.WriteString(wrap.Inherit(style).Render(marker + opt))
		b.WriteString("\n")
	}
	return b.String()
}
