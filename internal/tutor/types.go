// Package tutor asks an LLM to explain missed questions and to suggest
// what to study next. It is optional: without a provider the TUI simply
// hides the feature.
package tutor

// Explanation describes why the correct option of a missed question is
// right and the chosen one is wrong.
type Explanation struct {
	QuestionID string
	Summary    string
	WhyCorrect string
	WhyWrong   string
	Tip        string
}

// StudyPlan is a short list of things to review after a graded session.
type StudyPlan struct {
	Focus []string
	Steps []string
}
