package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// NumberInput wraps bubbles/textinput to accept digits only.
type NumberInput struct {
	Model textinput.Model
}

// NewNumberInput creates an input limited to maxDigits digits holding value.
func NewNumberInput(value, maxDigits int) NumberInput {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = maxDigits
	ti.SetValue(strconv.Itoa(value))
	return NumberInput{Model: ti}
}

// Focus focuses the input.
func (n *NumberInput) Focus() tea.Cmd { return n.Model.Focus() }

// Blur removes focus.
func (n *NumberInput) Blur() { n.Model.Blur() }

// Update forwards msg to the text input, dropping non-digit characters.
func (n NumberInput) Update(msg tea.Msg) (NumberInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		if key := kmsg.String(); len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return n, nil
		}
	}
	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	return n, cmd
}

// View renders the input.
func (n NumberInput) View() string { return n.Model.View() }

// SetValue replaces the content with v.
func (n *NumberInput) SetValue(v int) { n.Model.SetValue(strconv.Itoa(v)) }

// Value parses the content. An empty input is an error.
func (n NumberInput) Value() (int, error) { return strconv.Atoi(n.Model.Value()) }
