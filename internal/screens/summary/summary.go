package summary

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hamexam/internal/grader"
	"github.com/abhisek/hamexam/internal/router"
	"github.com/abhisek/hamexam/internal/screen"
	"github.com/abhisek/hamexam/internal/session"
	"github.com/abhisek/hamexam/internal/timer"
	"github.com/abhisek/hamexam/internal/tutor"
	"github.com/abhisek/hamexam/internal/ui/components"
	"github.com/abhisek/hamexam/internal/ui/layout"
	"github.com/abhisek/hamexam/internal/ui/theme"
)

// SummaryScreen shows the grade of a practice or exam session, the weak
// sections and the missed questions, with optional tutor explanations.
type SummaryScreen struct {
	summary *session.Summary
	tutor   *tutor.Service
	cursor  int

	explanations map[string]*tutor.Explanation
	plan         *tutor.StudyPlan
	pending      bool
	err          error
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates the results screen. tut may be nil.
func New(summary *session.Summary, tut *tutor.Service) *SummaryScreen {
	return &SummaryScreen{
		summary:      summary,
		tutor:        tut,
		explanations: make(map[string]*tutor.Explanation),
	}
}

func (s *SummaryScreen) Init() tea.Cmd { return nil }

func (s *SummaryScreen) Title() string { return "Results" }

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "↑↓", Description: "Missed questions"}}
	if s.tutor.Enabled() {
		hints = append(hints,
			layout.KeyHint{Key: "e", Description: "Explain"},
			layout.KeyHint{Key: "p", Description: "Study plan"},
		)
	}
	return append(hints, layout.KeyHint{Key: "Enter/Esc", Description: "Back"})
}

func (s *SummaryScreen) missed() []grader.Outcome {
	if s.summary == nil {
		return nil
	}
	return s.summary.Missed
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tutor.ExplanationMsg:
		s.pending = false
		s.err = msg.Err
		if msg.Err == nil {
			s.explanations[msg.QuestionID] = msg.Explanation
		}
		return s, nil

	case tutor.PlanMsg:
		s.pending = false
		s.err = msg.Err
		if msg.Err == nil {
			s.plan = msg.Plan
		}
		return s, nil

	case tea.KeyPressMsg:
		missed := s.missed()
		switch msg.String() {
		case "up", "k":
			s.cursor = max(s.cursor-1, 0)
		case "down", "j":
			s.cursor = min(s.cursor+1, max(len(missed)-1, 0))
		case "e":
			if !s.tutor.Enabled() || s.pending || s.cursor >= len(missed) {
				return s, nil
			}
			o := missed[s.cursor]
			if _, done := s.explanations[o.Question.ID]; done {
				return s, nil
			}
			s.pending, s.err = true, nil
			return s, s.tutor.ExplainCmd(context.Background(), o)
		case "p":
			if !s.tutor.Enabled() || s.pending || s.plan != nil {
				return s, nil
			}
			s.pending, s.err = true, nil
			return s, s.tutor.PlanCmd(context.Background(), s.summary)
		case "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return theme.Hint.Render("Nothing graded yet.")
	}

	var b strings.Builder
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString("\n")
	b.WriteString(center.Render(s.headline()))
	b.WriteString("\n")
	b.WriteString(center.Inherit(theme.Subtitle).Render(s.scoreLine()))
	b.WriteString("\n\n")

	left := s.sectionsView(width/2 - 4)
	right := s.missedView(width - width/2 - 4)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		theme.Card.Width(width/2).Render(left),
		theme.Card.Width(width-width/2).Render(right)))

	if tutorView := s.tutorView(width - 4); tutorView != "" {
		b.WriteString("\n")
		b.WriteString(theme.Card.Width(width).Render(tutorView))
	}
	return b.String()
}

func (s *SummaryScreen) headline() string {
	sum := s.summary
	if sum.Mode != session.ModeExam {
		return theme.Title.Render(fmt.Sprintf("%s graded", sum.Mode))
	}
	if sum.Passed {
		return theme.Correct.Render("PASSED")
	}
	return theme.Incorrect.Render("NOT PASSED")
}

func (s *SummaryScreen) scoreLine() string {
	sum := s.summary
	line := fmt.Sprintf("Score %d/%d (%.0f%%)  ·  answered %d",
		sum.TotalCorrect, sum.TotalQuestions, sum.Accuracy*100, sum.Answered)
	if sum.Mode == session.ModeExam {
		line += fmt.Sprintf("  ·  pass mark %d  ·  time %s", sum.PassMark, timer.FormatDuration(sum.Duration))
	}
	return line
}

func (s *SummaryScreen) sectionsView(width int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("By section") + "\n")
	for _, sp := range s.summary.SectionResults {
		label := fmt.Sprintf("%s %2d/%-2d", sp.Section, sp.Correct, sp.Attempted)
		b.WriteString(components.NewProgressBar(label, sp.Accuracy, true, max(width, 24)).View())
		b.WriteString("\n")
	}
	if len(s.summary.WeakAreas) > 0 {
		parts := make([]string, len(s.summary.WeakAreas))
		for i, w := range s.summary.WeakAreas {
			parts[i] = fmt.Sprintf("%s (%d)", w.Section, w.Misses)
		}
		b.WriteString("\n" + theme.Incorrect.Render("Weak areas: ") + theme.Body.Render(strings.Join(parts, ", ")))
	} else {
		b.WriteString("\n" + theme.Correct.Render("No weak areas."))
	}
	return b.String()
}

func (s *SummaryScreen) missedView(width int) string {
	missed := s.missed()
	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("Missed (%d)", len(missed))) + "\n")
	if len(missed) == 0 {
		b.WriteString(theme.Hint.Render("None."))
		return b.String()
	}

	o := missed[min(s.cursor, len(missed)-1)]
	b.WriteString(theme.Muted.Render(fmt.Sprintf("%d/%d  %s", s.cursor+1, len(missed), o.Question.ID)) + "\n")
	wrap := lipgloss.NewStyle().Width(max(width, 20))
	b.WriteString(wrap.Inherit(theme.Body).Render(o.Question.Text) + "\n")
	if o.Answer == "" {
		b.WriteString(theme.Incorrect.Render("✗ (no answer)") + "\n")
	} else {
		b.WriteString(wrap.Inherit(theme.Incorrect).Render("✗ "+o.Answer) + "\n")
	}
	if correct, ok := o.Question.CorrectOption(); ok {
		b.WriteString(wrap.Inherit(theme.Correct).Render("✓ " + correct))
	}
	return b.String()
}

func (s *SummaryScreen) tutorView(width int) string {
	if !s.tutor.Enabled() {
		return ""
	}
	wrap := lipgloss.NewStyle().Width(max(width, 20))

	var b strings.Builder
	if missed := s.missed(); s.cursor < len(missed) {
		if exp, ok := s.explanations[missed[s.cursor].Question.ID]; ok {
			b.WriteString(theme.Title.Render("Tutor: "+exp.Summary) + "\n")
			b.WriteString(wrap.Inherit(theme.Body).Render(exp.WhyCorrect) + "\n")
			if exp.WhyWrong != "" {
				b.WriteString(wrap.Inherit(theme.Muted).Render(exp.WhyWrong) + "\n")
			}
			if exp.Tip != "" {
				b.WriteString(wrap.Inherit(theme.Hint).Render("Tip: "+exp.Tip) + "\n")
			}
		}
	}
	if s.plan != nil {
		b.WriteString(theme.Title.Render("Study plan") + "\n")
		if len(s.plan.Focus) > 0 {
			b.WriteString(theme.Body.Render("Focus: "+strings.Join(s.plan.Focus, ", ")) + "\n")
		}
		for i, step := range s.plan.Steps {
			b.WriteString(wrap.Inherit(theme.Body).Render(fmt.Sprintf("%d. %s", i+1, step)) + "\n")
		}
	}
	switch {
	case s.pending:
		b.WriteString(theme.Hint.Render("Asking the tutor..."))
	case s.err != nil:
		b.WriteString(theme.Incorrect.Render("Tutor unavailable: " + s.err.Error()))
	}
	return strings.TrimRight(b.String(), "\n")
}
