// Package quiz holds the question pager shared by the study, practice and
// exam screens.
package quiz

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hamexam/internal/bank"
	"github.com/abhisek/hamexam/internal/ui/components"
	"github.com/abhisek/hamexam/internal/ui/theme"
)

// Answer is emitted when the user picks an option.
type Answer struct {
	QuestionID string
	Option     string
}

// Runner pages through a question list one question at a time.
type Runner struct {
	questions []bank.Question
	answers   map[string]string
	index     int
	choice    components.MultiChoice

	// Reveal shows the correct option, as in study mode.
	Reveal bool

	// Locked disables answering, e.g. after an exam is submitted.
	Locked bool
}

// NewRunner creates a runner over qs. answers pre-fills earlier choices.
func NewRunner(qs []bank.Question, answers map[string]string) Runner {
	r := Runner{questions: qs, answers: copyAnswers(answers)}
	r.load()
	return r
}

func copyAnswers(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func (r *Runner) load() {
	q, ok := r.Current()
	if !ok {
		r.choice = components.NewMultiChoice("", nil)
		return
	}
	r.choice = components.NewMultiChoice(q.Text, q.Options)
	r.choice.Choose(r.answers[q.ID])
	if correct, ok := q.CorrectOption(); ok {
		for i, opt := range q.Options {
			if opt == correct {
				r.choice.Correct = i
			}
		}
	}
}

// SetAnswers replaces the known answers, keeping the current position.
func (r *Runner) SetAnswers(answers map[string]string) {
	r.answers = copyAnswers(answers)
	r.load()
}

// Len returns the number of questions.
func (r Runner) Len() int { return len(r.questions) }

// Index returns the zero-based position of the current question.
func (r Runner) Index() int { return r.index }

// Seek moves to question i, clamped to the list.
func (r *Runner) Seek(i int) {
	if len(r.questions) == 0 {
		return
	}
	r.index = min(max(i, 0), len(r.questions)-1)
	r.load()
}

// Answered returns how many questions have an answer.
func (r Runner) Answered() int {
	n := 0
	for _, q := range r.questions {
		if _, ok := r.answers[q.ID]; ok {
			n++
		}
	}
	return n
}

// Current returns the question on screen.
func (r Runner) Current() (bank.Question, bool) {
	if r.index < 0 || r.index >= len(r.questions) {
		return bank.Question{}, false
	}
	return r.questions[r.index], true
}

// Update pages with left/right (or n/p, home/end) and forwards the rest
// to the option selector. A new pick is returned as an Answer.
func (r Runner) Update(msg tea.Msg) (Runner, *Answer) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(r.questions) == 0 {
		return r, nil
	}

	switch kmsg.String() {
	case "right", "n":
		if r.index < len(r.questions)-1 {
			r.index++
			r.load()
		}
		return r, nil
	case "left", "p":
		if r.index > 0 {
			r.index--
			r.load()
		}
		return r, nil
	case "home":
		r.index = 0
		r.load()
		return r, nil
	case "end":
		r.index = len(r.questions) - 1
		r.load()
		return r, nil
	}

	if r.Locked || r.Reveal {
		return r, nil
	}
	before := r.choice.Chosen
	r.choice, _ = r.choice.Update(msg)
	if r.choice.Chosen == before || r.choice.Chosen < 0 {
		return r, nil
	}
	q, _ := r.Current()
	opt, _ := r.choice.ChosenOption()
	r.answers[q.ID] = opt
	return r, &Answer{QuestionID: q.ID, Option: opt}
}

// View renders the position line and the current question.
func (r Runner) View(width int) string {
	q, ok := r.Current()
	if !ok {
		return theme.Hint.Render("No questions selected.")
	}

	mc := r.choice
	mc.Reveal = r.Reveal
	mc.Locked = r.Locked || r.Reveal

	var b strings.Builder
	b.WriteString(theme.Muted.Render(fmt.Sprintf("Question %d/%d  ·  %s  ·  answered %d",
		r.index+1, len(r.questions), q.ID, r.Answered())))
	b.WriteString("\n\n")
	b.WriteString(mc.View(width))
	if q.Image != "" {
		b.WriteString("\n" + theme.Hint.Render("Figure: "+q.Image))
	}
	return b.String()
}
