package note

import "errors"

// Note-related errors
var (
	ErrEmptyTitle    = errors.New("note title cannot be empty")
	ErrInvalidNote   = errors.New("invalid note")
	ErrInvalidNoteID = errors.New("invalid note ID")
	ErrNoteNotFound  = errors.New("note not found")
)
