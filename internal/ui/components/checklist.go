package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hamexam/internal/ui/theme"
)

// ChecklistItem is one toggleable row.
type ChecklistItem struct {
	Label   string
	Detail  string
	Checked bool
}

// Checklist is a multi-select list, used to pick exam sections.
type Checklist struct {
	Items  []ChecklistItem
	Cursor int
}

// NewChecklist creates a checklist over items.
func NewChecklist(items []ChecklistItem) Checklist {
	return Checklist{Items: items}
}

// Update moves with up/down, toggles with space and toggles every item
// with "a". The returned bool reports whether any item changed.
func (c Checklist) Update(msg tea.Msg) (Checklist, bool) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(c.Items) == 0 {
		return c, false
	}

	switch kmsg.String() {
	case "up", "k":
		c.Cursor = max(c.Cursor-1, 0)
	case "down", "j":
		c.Cursor = min(c.Cursor+1, len(c.Items)-1)
	case "space", "enter":
		c.Items = append([]ChecklistItem(nil), c.Items...)
		c.Items[c.Cursor].Checked = !c.Items[c.Cursor].Checked
		return c, true
	case "a":
		all := len(c.Checked()) == len(c.Items)
		c.Items = append([]ChecklistItem(nil), c.Items...)
		for i := range c.Items {
			c.Items[i].Checked = !all
		}
		return c, true
	}
	return c, false
}

// Checked returns the labels of the checked items in list order.
func (c Checklist) Checked() []string {
	out := []string{}
	for _, it := range c.Items {
		if it.Checked {
			out = append(out, it.Label)
		}
	}
	return out
}

// SetChecked checks exactly the items whose labels are in labels.
func (c *Checklist) SetChecked(labels []string) {
	set := make(map[string]bool, len(labels))
	for _, l := range labels {
		set[l] = true
	}
	for i := range c.Items {
		c.Items[i].Checked = set[c.Items[i].Label]
	}
}

// View renders the list. The cursor is only drawn when focused.
func (c Checklist) View(focused bool) string {
	var b strings.Builder
	for i, it := range c.Items {
		box := "[ ]"
		if it.Checked {
			box = "[x]"
		}
		line := box + " " + it.Label
		style := theme.Unselected
		if focused && i == c.Cursor {
			line = "▸ " + line
			style = theme.Selected
		} else {
			line = "  " + line
		}
		b.WriteString(style.Render(line))
		if it.Detail != "" {
			b.WriteString(" " + theme.Hint.Render(it.Detail))
		}
		b.WriteString("\n")
	}
	return b.String()
}
