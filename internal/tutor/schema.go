package tutor

import "github.com/abhisek/hamexam/internal/llm"

// ExplanationSchema is the structured output requested by Explain.
var ExplanationSchema = &llm.Schema{
	Name:        "question-explanation",
	Description: "Explanation of a missed amateur radio exam question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "One sentence naming the concept being tested",
			},
			"why_correct": map[string]any{
				"type":        "string",
				"description": "Why the correct option is right (2-4 sentences)",
			},
			"why_wrong": map[string]any{
				"type":        "string",
				"description": "Why the chosen option is wrong, or empty if nothing was chosen",
			},
			"tip": map[string]any{
				"type":        "string",
				"description": "A short memory aid",
			},
		},
		"required":             []any{"summary", "why_correct", "why_wrong", "tip"},
		"additionalProperties": false,
	},
}

// StudyPlanSchema is the structured output requested by Plan.
var StudyPlanSchema = &llm.Schema{
	Name:        "study-plan",
	Description: "Review plan built from the weak sections of a graded session",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"focus": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Topics to review, weakest first (1-4 items)",
			},
			"steps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Concrete next steps (2-5 items)",
			},
		},
		"required":             []any{"focus", "steps"},
		"additionalProperties": false,
	},
}
