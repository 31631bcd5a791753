package bank

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrDuplicateID is returned when two questions share an id.
	ErrDuplicateID = errors.New("duplicate question id")

	// ErrAmbiguousAnswer is returned when the correct answer key does not
	// select exactly one option.
	ErrAmbiguousAnswer = errors.New("correct answer must match exactly one option")
)

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// ValidationError describes one invalid question in a bank.
type ValidationError struct {
	Index int
	ID    string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("question #%d (%q): %v", e.Index+1, e.ID, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Validate checks a single question against the data model invariants.
func Validate(q Question) error {
	if err := structValidator.Struct(q); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return fieldError(fieldErrs)
		}
		return err
	}
	if n := q.matchingOptions(); n != 1 {
		return fmt.Errorf("%w: key %q matches %d", ErrAmbiguousAnswer, q.CorrectAnswer, n)
	}
	return nil
}

// fieldError flattens validator field errors into one readable error.
func fieldError(errs validator.ValidationErrors) error {
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("invalid fields: %s", strings.Join(parts, ", "))
}
