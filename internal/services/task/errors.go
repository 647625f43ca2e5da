package task

import "errors"

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle    = errors.New("task title cannot be empty")
	ErrInvalidTask   = errors.New("invalid task")
	ErrInvalidTaskID = errors.New("invalid task ID")
	ErrInvalidStatus = errors.New("invalid task status")

	// Business logic errors
	ErrTaskNotFound = errors.New("task not found")
)
