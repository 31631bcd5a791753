package session

import (
	"testing"
	"time"

	"github.com/abhisek/hamexam/internal/grader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSummary_NotGraded(t *testing.T) {
	b := testBank(t, map[string]int{"T1": 2}, "T1")
	e := newTestEngine(t, b, nil)
	e.SetMode(ModePractice)

	if s := e.Summary(); s != nil {
		t.Errorf("Summary() = %+v, want nil before grading", s)
	}
}

func TestBuildSummary_Practice(t *testing.T) {
	b := testBank(t, map[string]int{"T1": 2, "T2": 2}, "T1", "T2")
	e := newTestEngine(t, b, nil)
	e.SetMode(ModePractice)

	require.NoError(t, e.RecordAnswer("T1A01", correctOption))
	require.NoError(t, e.RecordAnswer("T1A02", wrongOption))
	require.NoError(t, e.RecordAnswer("T2A01", correctOption))
	_, err := e.Grade()
	require.NoError(t, err)

	s := e.Summary()
	require.NotNil(t, s)
	if s.TotalQuestions != 4 {
		t.Errorf("TotalQuestions = %d, want 4", s.TotalQuestions)
	}
	if s.TotalCorrect != 2 {
		t.Errorf("TotalCorrect = %d, want 2", s.TotalCorrect)
	}
	if s.Answered != 3 {
		t.Errorf("Answered = %d, want 3", s.Answered)
	}
	if s.Accuracy != 0.5 {
		t.Errorf("Accuracy = %f, want 0.5", s.Accuracy)
	}
	assert.False(t, s.Passed, "practice never reports a pass")
	assert.Len(t, s.Missed, 2)

	require.Len(t, s.SectionResults, 2)
	assert.Equal(t, "T1", s.SectionResults[0].Section)
	assert.Equal(t, 2, s.SectionResults[0].Attempted)
	assert.Equal(t, 1, s.SectionResults[0].Misses())
	assert.Equal(t, 0.5, s.SectionResults[1].Accuracy)
}

func TestBuildSummary_Exam(t *testing.T) {
	clk := newFakeClock()
	e := newTestEngine(t, fullExamBank(t), clk)
	e.SetMode(ModeExam)

	qs, _, err := e.StartExam()
	require.NoError(t, err)
	for _, q := range qs[:26] {
		require.NoError(t, e.RecordAnswer(q.ID, correctOption))
	}
	clk.Advance(7*time.Minute + 30*time.Second)
	_, err = e.SubmitExam()
	require.NoError(t, err)

	s := e.Summary()
	require.NotNil(t, s)
	assert.True(t, s.Passed)
	assert.Equal(t, 26, s.PassMark)
	assert.Equal(t, 7*time.Minute+30*time.Second, s.Duration)
	assert.Len(t, s.WeakAreas, len(sectionsWithMisses(s.Missed)))
}

func TestSectionProgress_Record(t *testing.T) {
	sp := &SectionProgress{Section: "T3"}
	sp.Record(true)
	sp.Record(false)
	sp.Record(true)
	sp.Record(true)

	if sp.Attempted != 4 || sp.Correct != 3 {
		t.Errorf("Attempted/Correct = %d/%d, want 4/3", sp.Attempted, sp.Correct)
	}
	if sp.Accuracy != 0.75 {
		t.Errorf("Accuracy = %f, want 0.75", sp.Accuracy)
	}
}

func sectionsWithMisses(missed []grader.Outcome) map[string]bool {
	out := make(map[string]bool)
	for _, o := range missed {
		out[o.Question.Section()] = true
	}
	return out
}
