package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hamexam/internal/grader"
	"github.com/abhisek/hamexam/internal/llm"
	"github.com/abhisek/hamexam/internal/session"
)

// ErrNothingToExplain is returned for outcomes that were answered correctly.
var ErrNothingToExplain = errors.New("question was answered correctly")

// Service turns graded outcomes into LLM explanations.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a tutor backed by provider. A nil provider yields a
// disabled tutor.
func NewService(provider llm.Provider, cfg Config) *Service {
	if cfg.Language == "" {
		cfg.Language = DefaultConfig().Language
	}
	return &Service{provider: provider, cfg: cfg}
}

// Enabled reports whether explanations can be requested.
func (s *Service) Enabled() bool {
	return s != nil && s.provider != nil
}

type explanationOutput struct {
	Summary    string `json:"summary"`
	WhyCorrect string `json:"why_correct"`
	WhyWrong   string `json:"why_wrong"`
	Tip        string `json:"tip"`
}

// Explain asks for an explanation of a missed question.
func (s *Service) Explain(ctx context.Context, o grader.Outcome) (*Explanation, error) {
	if !s.Enabled() {
		return nil, llm.ErrDisabled
	}
	if o.Correct {
		return nil, ErrNothingToExplain
	}

	var out explanationOutput
	if err := s.generate(llm.WithPurpose(ctx, "explain"), explainMessage(o, s.cfg.Language), ExplanationSchema, &out); err != nil {
		return nil, fmt.Errorf("explain %s: %w", o.Question.ID, err)
	}
	return &Explanation{
		QuestionID: o.Question.ID,
		Summary:    out.Summary,
		WhyCorrect: out.WhyCorrect,
		WhyWrong:   out.WhyWrong,
		Tip:        out.Tip,
	}, nil
}

// Plan asks for a review plan from a graded session summary.
func (s *Service) Plan(ctx context.Context, summary *session.Summary) (*StudyPlan, error) {
	if !s.Enabled() {
		return nil, llm.ErrDisabled
	}
	if summary == nil {
		return nil, session.ErrNoQuestions
	}

	var out StudyPlan
	if err := s.generate(llm.WithPurpose(ctx, "plan"), planMessage(summary, s.cfg.Language), StudyPlanSchema, &out); err != nil {
		return nil, fmt.Errorf("study plan: %w", err)
	}
	return &StudyPlan{Focus: out.Focus, Steps: out.Steps}, nil
}

func (s *Service) generate(ctx context.Context, msg string, schema *llm.Schema, out any) error {
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: msg}},
		Schema:      schema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Content, out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}

// ExplanationMsg delivers the result of ExplainCmd to the TUI.
type ExplanationMsg struct {
	QuestionID  string
	Explanation *Explanation
	Err         error
}

// PlanMsg delivers the result of PlanCmd to the TUI.
type PlanMsg struct {
	Plan *StudyPlan
	Err  error
}

// ExplainCmd runs Explain off the UI goroutine.
func (s *Service) ExplainCmd(ctx context.Context, o grader.Outcome) tea.Cmd {
	return func() tea.Msg {
		exp, err := s.Explain(ctx, o)
		return ExplanationMsg{QuestionID: o.Question.ID, Explanation: exp, Err: err}
	}
}

// PlanCmd runs Plan off the UI goroutine.
func (s *Service) PlanCmd(ctx context.Context, summary *session.Summary) tea.Cmd {
	return func() tea.Msg {
		plan, err := s.Plan(ctx, summary)
		return PlanMsg{Plan: plan, Err: err}
	}
}
