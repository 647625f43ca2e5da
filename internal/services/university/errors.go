package university

import "errors"

// University-related errors
var (
	// Validation errors
	ErrEmptyName      = errors.New("subject name cannot be empty")
	ErrEmptyTitle     = errors.New("title cannot be empty")
	ErrInvalidID      = errors.New("invalid ID")
	ErrInvalidSubject = errors.New("invalid subject")
	ErrInvalidExam    = errors.New("invalid exam")
	ErrInvalidEntry   = errors.New("invalid grade entry")

	// Business logic errors
	ErrSubjectNotFound = errors.New("subject not found")
	ErrExamNotFound    = errors.New("exam not found")
	ErrEntryNotFound   = errors.New("grade entry not found")
)
