// Package grader scores a set of answers against the selected questions.
package grader

import (
	"sort"
	"strings"

	"github.com/abhisek/hamexam/internal/bank"
)

// DefaultPassMark is the passing score of the 35-question Element 2 exam.
const DefaultPassMark = 26

// Matcher decides whether a chosen option answers a question correctly.
type Matcher interface {
	Match(answer string, q bank.Question) bool
}

// MatcherFunc adapts a function to the Matcher interface.
type MatcherFunc func(answer string, q bank.Question) bool

func (f MatcherFunc) Match(answer string, q bank.Question) bool { return f(answer, q) }

// PrefixMatcher accepts an answer whose text starts with the correct key.
// An empty answer is never correct.
type PrefixMatcher struct{}

func (PrefixMatcher) Match(answer string, q bank.Question) bool {
	return answer != "" && strings.HasPrefix(answer, q.CorrectAnswer)
}

// ExactKeyMatcher compares the option label (the text before the first "."
// or ")") with the correct key. It does not accept "AB. ..." for key "A".
type ExactKeyMatcher struct{}

func (ExactKeyMatcher) Match(answer string, q bank.Question) bool {
	if answer == "" {
		return false
	}
	return strings.TrimSpace(OptionLabel(answer)) == strings.TrimSpace(q.CorrectAnswer)
}

// OptionLabel returns the label of an option such as "B. 146.52 MHz" -> "B".
// Options without a separator are returned unchanged.
func OptionLabel(option string) string {
	if i := strings.IndexAny(option, ".)"); i >= 0 {
		return option[:i]
	}
	return option
}

// Outcome is the grading of a single question.
type Outcome struct {
	Question bank.Question
	Answer   string
	Correct  bool
}

// Result summarises a graded answer set.
type Result struct {
	Score     int
	Total     int
	WeakAreas map[string]int
	Outcomes  []Outcome
}

// Grade scores selected against answers with the PrefixMatcher.
func Grade(selected []bank.Question, answers map[string]string) Result {
	return GradeWith(PrefixMatcher{}, selected, answers)
}

// GradeWith scores selected against answers using m. Unanswered questions
// count as incorrect. Answers for questions outside selected are ignored.
func GradeWith(m Matcher, selected []bank.Question, answers map[string]string) Result {
	res := Result{
		Total:     len(selected),
		WeakAreas: make(map[string]int),
		Outcomes:  make([]Outcome, 0, len(selected)),
	}
	for _, q := range selected {
		answer := answers[q.ID]
		ok := m.Match(answer, q)
		if ok {
			res.Score++
		} else {
			res.WeakAreas[q.Section()]++
		}
		res.Outcomes = append(res.Outcomes, Outcome{Question: q, Answer: answer, Correct: ok})
	}
	return res
}

// Percent returns the score as a percentage of Total, or 0 for an empty set.
func (r Result) Percent() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Score) * 100 / float64(r.Total)
}

// Passed reports whether the score reaches threshold.
func (r Result) Passed(threshold int) bool {
	return r.Total > 0 && r.Score >= threshold
}

// Missed returns the outcomes answered incorrectly, in selection order.
func (r Result) Missed() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if !o.Correct {
			out = append(out, o)
		}
	}
	return out
}

// WeakArea is one section's miss count.
type WeakArea struct {
	Section string
	Misses  int
}

// WeakAreaList returns the weak areas sorted by section code.
func (r Result) WeakAreaList() []WeakArea {
	out := make([]WeakArea, 0, len(r.WeakAreas))
	for sec, n := range r.WeakAreas {
		out = append(out, WeakArea{Section: sec, Misses: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Section < out[j].Section })
	return out
}

// Clone returns a deep copy of r.
func (r Result) Clone() Result {
	c := r
	c.WeakAreas = make(map[string]int, len(r.WeakAreas))
	for k, v := range r.WeakAreas {
		c.WeakAreas[k] = v
	}
	c.Outcomes = append([]Outcome(nil), r.Outcomes...)
	return c
}
