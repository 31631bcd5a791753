package tutor

import (
	"fmt"
	"strings"

	"github.com/abhisek/hamexam/internal/grader"
	"github.com/abhisek/hamexam/internal/session"
)

const systemPrompt = `You are an amateur radio instructor preparing students for the Technician (Element 2) licence exam. Be accurate about regulations and electronics and keep answers short.`

func explainMessage(o grader.Outcome, language string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question %s (section %s):\n%s\n\nOptions:\n", o.Question.ID, o.Question.Section(), o.Question.Text)
	for _, opt := range o.Question.Options {
		fmt.Fprintf(&b, "- %s\n", opt)
	}
	if correct, ok := o.Question.CorrectOption(); ok {
		fmt.Fprintf(&b, "\nCorrect option: %s\n", correct)
	}
	if o.Answer == "" {
		b.WriteString("The student did not answer.\n")
	} else {
		fmt.Fprintf(&b, "The student chose: %s\n", o.Answer)
	}

	fmt.Fprintf(&b, "\nExplain the correct answer in %s. Use plain text, no markdown.", language)
	return b.String()
}

func planMessage(s *session.Summary, language string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Mode: %s\nScore: %d/%d\n", s.Mode, s.TotalCorrect, s.TotalQuestions)
	if s.Mode == session.ModeExam {
		fmt.Fprintf(&b, "Pass mark: %d (passed: %t)\n", s.PassMark, s.Passed)
	}

	b.WriteString("\nMisses per section:\n")
	if len(s.WeakAreas) == 0 {
		b.WriteString("None\n")
	}
	for _, w := range s.WeakAreas {
		fmt.Fprintf(&b, "- %s: %d\n", w.Section, w.Misses)
	}

	b.WriteString("\nMissed questions:\n")
	for _, o := range s.Missed {
		fmt.Fprintf(&b, "- %s: %s\n", o.Question.ID, o.Question.Text)
	}

	fmt.Fprintf(&b, "\nSuggest what to review next, in %s.", language)
	return b.String()
}
