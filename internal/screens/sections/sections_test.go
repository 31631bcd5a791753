package sections

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hamexam/internal/bank"
	"github.com/abhisek/hamexam/internal/sampler"
)

func TestSectionsView(t *testing.T) {
	b, err := bank.New([]bank.Question{
		{ID: "T1A01", Text: "q", Options: []string{"A. x"}, CorrectAnswer: "A"},
		{ID: "T1A02", Text: "q", Options: []string{"A. x"}, CorrectAnswer: "A"},
		{ID: "X1A01", Text: "q", Options: []string{"A. x"}, CorrectAnswer: "A"},
	})
	if err != nil {
		t.Fatalf("bank.New: %v", err)
	}

	s := New(b, sampler.QuotaTable{{Section: "T1", Count: 1}, {Section: "T2", Count: 2}})
	v := s.View(100, 20)
	for _, want := range []string{"T1", "ok", "short by 2", "X1", "not drawn in exams"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.cursor != 2 {
		t.Errorf("cursor = %d, want 2", s.cursor)
	}
}
