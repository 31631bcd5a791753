package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hamexam/internal/bank"
	"github.com/abhisek/hamexam/internal/grader"
	"github.com/abhisek/hamexam/internal/llm"
	"github.com/abhisek/hamexam/internal/session"
)

func missedOutcome() grader.Outcome {
	return grader.Outcome{
		Question: bank.Question{
			ID:            "T3A01",
			Text:          "¿Qué unidad mide la frecuencia?",
			Options:       []string{"A. Hertz", "B. Ohm", "C. Voltio"},
			CorrectAnswer: "A",
		},
		Answer: "B. Ohm",
	}
}

const explanationJSON = `{"summary":"Unidades","why_correct":"El hertz mide ciclos por segundo.","why_wrong":"El ohm mide resistencia.","tip":"Hertz, ondas."}`

func TestExplain(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(explanationJSON)})
	svc := NewService(mock, DefaultConfig())

	exp, err := svc.Explain(context.Background(), missedOutcome())
	require.NoError(t, err)
	assert.Equal(t, "T3A01", exp.QuestionID)
	assert.Equal(t, "El ohm mide resistencia.", exp.WhyWrong)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, ExplanationSchema, calls[0].Schema)
	assert.Contains(t, calls[0].System, "Technician (Element 2)")
	msg := calls[0].Messages[0].Content
	assert.Contains(t, msg, "Correct option: A. Hertz")
	assert.Contains(t, msg, "The student chose: B. Ohm")
	assert.Contains(t, msg, "Spanish")
}

func TestExplainUnanswered(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(explanationJSON)})
	svc := NewService(mock, Config{MaxTokens: 100})

	o := missedOutcome()
	o.Answer = ""
	_, err := svc.Explain(context.Background(), o)
	require.NoError(t, err)
	assert.True(t, strings.Contains(mock.Calls()[0].Messages[0].Content, "did not answer"))
}

func TestExplainErrors(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		var svc *Service
		assert.False(t, svc.Enabled())
		_, err := svc.Explain(context.Background(), missedOutcome())
		assert.ErrorIs(t, err, llm.ErrDisabled)

		_, err = NewService(nil, DefaultConfig()).Explain(context.Background(), missedOutcome())
		assert.ErrorIs(t, err, llm.ErrDisabled)
	})

	t.Run("correct outcome", func(t *testing.T) {
		mock := llm.NewMockProvider()
		o := missedOutcome()
		o.Correct = true
		_, err := NewService(mock, DefaultConfig()).Explain(context.Background(), o)
		assert.ErrorIs(t, err, ErrNothingToExplain)
		assert.Zero(t, mock.CallCount())
	})

	t.Run("provider failure", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
		_, err := NewService(mock, DefaultConfig()).Explain(context.Background(), missedOutcome())
		var rl *llm.ErrRateLimit
		assert.True(t, errors.As(err, &rl))
	})

	t.Run("invalid response", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"summary":"x"}`)})
		_, err := NewService(mock, DefaultConfig()).Explain(context.Background(), missedOutcome())
		var invalid *llm.ErrInvalidResponse
		assert.True(t, errors.As(err, &invalid))
	})
}

func TestPlan(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"focus":["T3 ondas"],"steps":["Repasar unidades","Practicar T3"]}`),
	})
	svc := NewService(mock, DefaultConfig())

	summary := &session.Summary{
		Mode:           session.ModeExam,
		TotalQuestions: 35,
		TotalCorrect:   20,
		PassMark:       26,
		WeakAreas:      []grader.WeakArea{{Section: "T3", Misses: 3}},
		Missed:         []grader.Outcome{missedOutcome()},
	}
	plan, err := svc.Plan(context.Background(), summary)
	require.NoError(t, err)
	assert.Equal(t, []string{"T3 ondas"}, plan.Focus)
	assert.Len(t, plan.Steps, 2)

	msg := mock.Calls()[0].Messages[0].Content
	assert.Contains(t, msg, "Score: 20/35")
	assert.Contains(t, msg, "Pass mark: 26 (passed: false)")
	assert.Contains(t, msg, "- T3: 3")

	_, err = svc.Plan(context.Background(), nil)
	assert.ErrorIs(t, err, session.ErrNoQuestions)
}

func TestCmds(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(explanationJSON)},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	svc := NewService(mock, DefaultConfig())

	msg := svc.ExplainCmd(context.Background(), missedOutcome())()
	em, ok := msg.(ExplanationMsg)
	require.True(t, ok)
	assert.NoError(t, em.Err)
	assert.Equal(t, "T3A01", em.QuestionID)
	require.NotNil(t, em.Explanation)

	msg = svc.PlanCmd(context.Background(), &session.Summary{Mode: session.ModePractice})()
	pm, ok := msg.(PlanMsg)
	require.True(t, ok)
	assert.Error(t, pm.Err)
	assert.Nil(t, pm.Plan)
}
