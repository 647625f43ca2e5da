package freelancing

import "errors"

// Project errors
var (
	ErrEmptyName        = errors.New("project name cannot be empty")
	ErrInvalidProject   = errors.New("invalid project")
	ErrInvalidProjectID = errors.New("invalid project ID")
	ErrProjectNotFound  = errors.New("project not found")
)

// Project task errors
var (
	ErrEmptyTitle    = errors.New("task title cannot be empty")
	ErrInvalidTask   = errors.New("invalid task")
	ErrInvalidTaskID = errors.New("invalid task ID")
	ErrInvalidStatus = errors.New("invalid task status")
	ErrTaskNotFound  = errors.New("task not found")
)
