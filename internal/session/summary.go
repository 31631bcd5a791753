package session

import (
	"time"

	"github.com/abhisek/hamexam/internal/grader"
)

// Summary holds the data displayed on the results screen.
type Summary struct {
	Mode           Mode
	Duration       time.Duration
	TotalQuestions int
	TotalCorrect   int
	Answered       int
	Accuracy       float64
	PassMark       int
	Passed         bool
	WeakAreas      []grader.WeakArea
	SectionResults []SectionProgress
	Missed         []grader.Outcome
}

// BuildSummary creates a Summary from a graded state. It returns nil when
// the state has not been graded. Passed is only set for exams.
func BuildSummary(state *SessionState, passMark int) *Summary {
	if !state.Graded {
		return nil
	}
	res := state.Result

	var sections []SectionProgress
	index := make(map[string]int)
	for _, o := range res.Outcomes {
		sec := o.Question.Section()
		i, ok := index[sec]
		if !ok {
			i = len(sections)
			index[sec] = i
			sections = append(sections, SectionProgress{Section: sec})
		}
		sections[i].Record(o.Correct)
	}

	answered := 0
	for _, o := range res.Outcomes {
		if o.Answer != "" {
			answered++
		}
	}

	var accuracy float64
	if res.Total > 0 {
		accuracy = float64(res.Score) / float64(res.Total)
	}

	sum := &Summary{
		Mode:           state.Mode,
		TotalQuestions: res.Total,
		TotalCorrect:   res.Score,
		Answered:       answered,
		Accuracy:       accuracy,
		WeakAreas:      res.WeakAreaList(),
		SectionResults: sections,
		Missed:         res.Missed(),
	}

	if state.Mode == ModeExam {
		sum.PassMark = passMark
		sum.Passed = res.Passed(passMark)
		if state.Timer != nil && state.Timer.Started() && !state.SubmittedAt.IsZero() {
			sum.Duration = state.SubmittedAt.Sub(state.Timer.StartTime())
		}
	}
	return sum
}
