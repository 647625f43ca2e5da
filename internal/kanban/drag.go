package kanban

// DragPhase is the phase of the drag gesture state machine.
//
//	Idle -> Dragging -> (Dropped | Cancelled) -> Idle
//
// Dropped and Cancelled are outcomes reported by Drop and Cancel; the board
// is back in Idle as soon as either returns.
type DragPhase int

const (
	Idle DragPhase = iota
	Dragging
)

func (p DragPhase) String() string {
	switch p {
	case Dragging:
		return "dragging"
	default:
		return "idle"
	}
}

// DropResult is the outcome of a finished gesture
type DropResult int

const (
	// Dropped means the item landed somewhere new and OnDragEnd fired
	Dropped DropResult = iota + 1
	// Unchanged means the item was dropped at its original position
	Unchanged
	// Cancelled means the gesture was aborted or its target became invalid
	Cancelled
)

func (r DropResult) String() string {
	switch r {
	case Dropped:
		return "dropped"
	case Unchanged:
		return "unchanged"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// DragState is a snapshot of the gesture in progress.
// Column fields are indexes into the board's columns.
type DragState struct {
	Phase        DragPhase
	ItemID       string
	SourceColumn int
	SourceIndex  int
	TargetColumn int
	TargetIndex  int
}

// Active reports whether a gesture is in progress
func (d DragState) Active() bool {
	return d.Phase == Dragging
}

// OverlaySlot returns where the drag overlay should be drawn inside column col,
// as an index into that column's unmodified item list (the dimmed source card
// still occupies its own slot). ok is false when the overlay is not in col.
func (d DragState) OverlaySlot(col int) (slot int, ok bool) {
	if !d.Active() || col != d.TargetColumn {
		return 0, false
	}
	if d.TargetColumn == d.SourceColumn && d.TargetIndex > d.SourceIndex {
		return d.TargetIndex + 1, true
	}
	return d.TargetIndex, true
}

// ItemState tells a renderer how to draw one card
type ItemState struct {
	Selected bool
	// Dimmed marks the source card of an active drag
	Dimmed bool
}
