package bank

import "strings"

// SectionLen is the number of leading id characters that name a section.
const SectionLen = 2

// Question is a single multiple-choice question from the pool.
type Question struct {
	// ID identifies the question, e.g. "T1A01". The first two characters
	// are the section code.
	ID string `json:"id" validate:"required,min=2"`

	// Text is the question prompt.
	Text string `json:"question" validate:"required"`

	// Options are the answer choices in display order. Each option starts
	// with its label (e.g. "A. 5 watts"), which is what CorrectAnswer keys on.
	Options []string `json:"options" validate:"required,min=1,dive,required"`

	// CorrectAnswer is the label prefix of the correct option, e.g. "A".
	CorrectAnswer string `json:"correct_answer" validate:"required"`

	// Image is an optional figure reference (path or URL).
	Image string `json:"image,omitempty"`
}

// Section returns the section code of the question.
func (q Question) Section() string {
	return SectionOf(q.ID)
}

// SectionOf returns the section code for a question id. Ids shorter than
// SectionLen are returned unchanged.
func SectionOf(id string) string {
	if len(id) < SectionLen {
		return id
	}
	return id[:SectionLen]
}

// HasOption reports whether option is one of the question's choices.
func (q Question) HasOption(option string) bool {
	for _, o := range q.Options {
		if o == option {
			return true
		}
	}
	return false
}

// CorrectOption returns the first option keyed by CorrectAnswer.
func (q Question) CorrectOption() (string, bool) {
	for _, o := range q.Options {
		if strings.HasPrefix(o, q.CorrectAnswer) {
			return o, true
		}
	}
	return "", false
}

// matchingOptions counts options that start with the correct answer key.
func (q Question) matchingOptions() int {
	n := 0
	for _, o := range q.Options {
		if strings.HasPrefix(o, q.CorrectAnswer) {
			n++
		}
	}
	return n
}
