package grader

import (
	"testing"

	"github.com/abhisek/hamexam/internal/bank"
	"github.com/stretchr/testify/assert"
)

func question(id, correct string) bank.Question {
	return bank.Question{
		ID:            id,
		Text:          "q",
		Options:       []string{"A. one", "B. two", "C. three", "D. four"},
		CorrectAnswer: correct,
	}
}

func TestGradeScoresAndWeakAreas(t *testing.T) {
	selected := []bank.Question{
		question("T1A01", "A"),
		question("T1A02", "B"),
		question("T2A01", "C"),
		question("T2A02", "D"),
	}
	answers := map[string]string{
		"T1A01": "A. one",
		"T1A02": "C. three",
		"T2A01": "C. three",
	}

	res := Grade(selected, answers)
	if res.Score != 2 {
		t.Errorf("Score = %d, want 2", res.Score)
	}
	if res.Total != 4 {
		t.Errorf("Total = %d, want 4", res.Total)
	}
	assert.Equal(t, map[string]int{"T1": 1, "T2": 1}, res.WeakAreas)
	assert.Len(t, res.Missed(), 2)
}

func TestGradeEmptyAnswers(t *testing.T) {
	selected := []bank.Question{question("T1A01", "A"), question("T3A01", "B"), question("T3A02", "C")}

	res := Grade(selected, nil)
	if res.Score != 0 {
		t.Errorf("Score = %d, want 0", res.Score)
	}
	assert.Equal(t, map[string]int{"T1": 1, "T3": 2}, res.WeakAreas)

	sum := 0
	for _, n := range res.WeakAreas {
		sum += n
	}
	if sum != len(selected) {
		t.Errorf("weak area total = %d, want %d", sum, len(selected))
	}
}

func TestGradeIgnoresStaleAnswers(t *testing.T) {
	selected := []bank.Question{question("T1A01", "A")}
	answers := map[string]string{"T1A01": "A. one", "T9Z99": "B. two"}

	res := Grade(selected, answers)
	if res.Score != 1 || res.Total != 1 {
		t.Errorf("Score/Total = %d/%d, want 1/1", res.Score, res.Total)
	}
	assert.Empty(t, res.WeakAreas)
}

func TestGradeIdempotent(t *testing.T) {
	selected := []bank.Question{question("T1A01", "A"), question("T2A01", "B")}
	answers := map[string]string{"T1A01": "B. two", "T2A01": "B. two"}

	first := Grade(selected, answers)
	second := Grade(selected, answers)
	assert.Equal(t, first, second)
}

func TestGradeEmptySelection(t *testing.T) {
	res := Grade(nil, map[string]string{"T1A01": "A. one"})
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, 0, res.Total)
	assert.Equal(t, 0.0, res.Percent())
	assert.False(t, res.Passed(0))
}

func TestPrefixMatcherSemantics(t *testing.T) {
	q := question("T1A01", "A")
	q.Options = []string{"A. one", "AB. two"}

	tests := []struct {
		answer string
		want   bool
	}{
		{"A. one", true},
		{"AB. two", true}, // prefix semantics accept any option starting with the key
		{"B. two", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := (PrefixMatcher{}).Match(tt.answer, q); got != tt.want {
			t.Errorf("PrefixMatcher.Match(%q) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}

func TestExactKeyMatcher(t *testing.T) {
	q := question("T1A01", "A")

	tests := []struct {
		answer string
		want   bool
	}{
		{"A. one", true},
		{"A) one", true},
		{"AB. two", false},
		{"B. two", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := (ExactKeyMatcher{}).Match(tt.answer, q); got != tt.want {
			t.Errorf("ExactKeyMatcher.Match(%q) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}

func TestGradeWithCustomMatcher(t *testing.T) {
	always := MatcherFunc(func(string, bank.Question) bool { return true })
	res := GradeWith(always, []bank.Question{question("T1A01", "A")}, nil)
	assert.Equal(t, 1, res.Score)
}

func TestPercentAndPassed(t *testing.T) {
	res := Result{Score: 26, Total: 35}
	assert.InDelta(t, 74.28, res.Percent(), 0.01)
	assert.True(t, res.Passed(DefaultPassMark))

	res.Score = 25
	assert.False(t, res.Passed(DefaultPassMark))
}

func TestWeakAreaListSorted(t *testing.T) {
	res := Result{WeakAreas: map[string]int{"T5": 2, "T0": 1, "T1": 3}}
	assert.Equal(t, []WeakArea{{"T0", 1}, {"T1", 3}, {"T5", 2}}, res.WeakAreaList())
}

func TestCloneIsIndependent(t *testing.T) {
	res := Grade([]bank.Question{question("T1A01", "A")}, nil)
	c := res.Clone()
	c.WeakAreas["T1"] = 99
	assert.Equal(t, 1, res.WeakAreas["T1"])
}
