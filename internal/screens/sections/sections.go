package sections

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hamexam/internal/bank"
	"github.com/abhisek/hamexam/internal/sampler"
	"github.com/abhisek/hamexam/internal/screen"
	"github.com/abhisek/hamexam/internal/ui/layout"
	"github.com/abhisek/hamexam/internal/ui/theme"
)

// SectionsScreen lists the bank's sections with their exam quotas.
type SectionsScreen struct {
	rows         []sampler.Coverage
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*SectionsScreen)(nil)
var _ screen.KeyHintProvider = (*SectionsScreen)(nil)

// New creates the screen for b and quotas.
func New(b *bank.Bank, quotas sampler.QuotaTable) *SectionsScreen {
	return &SectionsScreen{rows: sampler.CoverageOf(quotas, b.Sections(), b.Count)}
}

func (s *SectionsScreen) Init() tea.Cmd { return nil }

func (s *SectionsScreen) Title() string { return "Sections" }

func (s *SectionsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SectionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			s.cursor = max(s.cursor-1, 0)
		case "down", "j":
			s.cursor = min(s.cursor+1, len(s.rows)-1)
		}
	}
	return s, nil
}

func (s *SectionsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Render(fmt.Sprintf("  %-8s %10s %8s   %s", "Section", "Questions", "Quota", "Status")))
	b.WriteString("\n\n")

	visible := max(height-4, 1)
	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	}
	if s.cursor >= s.scrollOffset+visible {
		s.scrollOffset = s.cursor - visible + 1
	}

	end := min(s.scrollOffset+visible, len(s.rows))
	for i := s.scrollOffset; i < end; i++ {
		r := s.rows[i]
		quota, status := "-", theme.Muted.Render("not drawn in exams")
		if r.InTable {
			quota = fmt.Sprint(r.Quota)
			status = theme.Correct.Render("ok")
			if short := r.Shortfall(); short > 0 {
				status = theme.Incorrect.Render(fmt.Sprintf("short by %d", short))
			}
		}

		marker := "  "
		style := theme.Unselected
		if i == s.cursor {
			marker = "▸ "
			style = theme.Selected
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%-8s %10d %8s", marker, r.Section, r.Available, quota)))
		b.WriteString("   " + status + "\n")
	}
	return b.String()
}
