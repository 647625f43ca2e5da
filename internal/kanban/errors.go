package kanban

import "errors"

// Board errors
var (
	ErrColumnNotFound  = errors.New("column not found")
	ErrIndexOutOfRange = errors.New("item index out of range")

	// Drag gesture errors
	ErrDragInProgress = errors.New("a drag is already in progress")
	ErrNotDragging    = errors.New("no drag in progress")
	ErrNothingToDrag  = errors.New("no item selected to drag")
)
