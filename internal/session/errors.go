package session

import "errors"

var (
	// ErrWrongMode is returned when a command does not apply to the active mode.
	ErrWrongMode = errors.New("command not available in current mode")

	// ErrUnknownQuestion is returned when an answer names a question outside the selection.
	ErrUnknownQuestion = errors.New("question not in current selection")

	// ErrInvalidOption is returned when an answer is not one of the question's options.
	ErrInvalidOption = errors.New("option not offered by question")

	// ErrExamNotStarted is returned for exam commands issued before StartExam.
	ErrExamNotStarted = errors.New("exam not started")

	// ErrExamInProgress is returned by StartExam while an exam is running.
	ErrExamInProgress = errors.New("exam already in progress")

	// ErrExamSubmitted is returned for changes after the exam was submitted.
	ErrExamSubmitted = errors.New("exam already submitted")

	// ErrNoQuestions is returned when an exam draw or study plan has no
	// questions to work with.
	ErrNoQuestions = errors.New("no questions selected")
)
