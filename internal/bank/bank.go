package bank

import (
	"errors"
	"fmt"
	"sort"
)

// Bank is an immutable, validated question pool with a section index.
// It is safe to share across sessions without synchronization.
type Bank struct {
	questions []Question
	index     map[string]int
	bySection map[string][]int
	sections  []string
	meta      map[string]any
}

// New validates the questions and builds a Bank. All invalid questions are
// reported together. An empty slice yields an empty, usable bank.
func New(questions []Question) (*Bank, error) {
	b := &Bank{
		questions: make([]Question, len(questions)),
		index:     make(map[string]int, len(questions)),
		bySection: make(map[string][]int),
	}

	var errs []error
	for i, q := range questions {
		if err := Validate(q); err != nil {
			errs = append(errs, &ValidationError{Index: i, ID: q.ID, Err: err})
			continue
		}
		if _, dup := b.index[q.ID]; dup {
			errs = append(errs, &ValidationError{Index: i, ID: q.ID, Err: ErrDuplicateID})
			continue
		}

		// Copy options so callers cannot mutate the bank through their slice.
		q.Options = append([]string(nil), q.Options...)
		b.questions[i] = q
		b.index[q.ID] = i
		sec := q.Section()
		b.bySection[sec] = append(b.bySection[sec], i)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid question bank: %w", errors.Join(errs...))
	}

	b.sections = make([]string, 0, len(b.bySection))
	for sec := range b.bySection {
		b.sections = append(b.sections, sec)
	}
	sort.Strings(b.sections)

	return b, nil
}

// Len returns the number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Questions returns a copy of all questions in bank order.
func (b *Bank) Questions() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// Get returns the question with the given id.
func (b *Bank) Get(id string) (Question, bool) {
	i, ok := b.index[id]
	if !ok {
		return Question{}, false
	}
	return b.questions[i], true
}

// Sections returns the distinct section codes, sorted.
func (b *Bank) Sections() []string {
	out := make([]string, len(b.sections))
	copy(out, b.sections)
	return out
}

// Count returns the number of questions in a section.
func (b *Bank) Count(section string) int {
	return len(b.bySection[section])
}

// BySection returns the questions of one section in bank order.
func (b *Bank) BySection(section string) []Question {
	idx := b.bySection[section]
	out := make([]Question, len(idx))
	for i, j := range idx {
		out[i] = b.questions[j]
	}
	return out
}

// FilterBySections returns the questions whose section is in sections,
// preserving bank order. An empty set yields an empty result.
func (b *Bank) FilterBySections(sections []string) []Question {
	if len(sections) == 0 {
		return []Question{}
	}
	want := make(map[string]bool, len(sections))
	for _, s := range sections {
		want[s] = true
	}

	out := make([]Question, 0)
	for _, q := range b.questions {
		if want[q.Section()] {
			out = append(out, q)
		}
	}
	return out
}

// Meta returns the metadata block the bank was loaded with, if any.
func (b *Bank) Meta() map[string]any {
	if b.meta == nil {
		return nil
	}
	out := make(map[string]any, len(b.meta))
	for k, v := range b.meta {
		out[k] = v
	}
	return out
}

// withMeta returns b with its metadata set. Used by the loaders.
func (b *Bank) withMeta(meta map[string]any) *Bank {
	if len(meta) > 0 {
		b.meta = meta
	}
	return b
}
