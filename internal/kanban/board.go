package kanban

// Board holds the columns handed to it by its owner, a selection cursor and the
// drag gesture. It never reorders or mutates the columns it was given; a
// completed drop is reported through OnDragEnd and the owner decides the new
// membership by handing back recomputed columns via SetColumns.
type Board[T any] struct {
	columns   []Column[T]
	getItemID func(T) string
	onDragEnd func(itemID, destinationColumnID string)

	cursorCol int
	cursorRow int

	drag DragState
}

// NewBoard creates an empty board. getItemID must return ids that are unique
// across the whole board. onDragEnd may be nil.
func NewBoard[T any](getItemID func(T) string, onDragEnd func(itemID, destinationColumnID string)) *Board[T] {
	return &Board[T]{
		getItemID: getItemID,
		onDragEnd: onDragEnd,
	}
}

// SetOnDragEnd replaces the drop callback
func (b *Board[T]) SetOnDragEnd(fn func(itemID, destinationColumnID string)) {
	b.onDragEnd = fn
}

// Columns returns the columns exactly as the owner provided them
func (b *Board[T]) Columns() []Column[T] {
	return b.columns
}

// SetColumns replaces the board's columns, typically with a projection of the
// owner's current state. The cursor is clamped to the new shape. A drag in
// progress survives only if its item still exists; otherwise it is cancelled.
func (b *Board[T]) SetColumns(columns []Column[T]) {
	b.columns = columns

	if b.drag.Active() {
		col, idx, ok := b.locate(b.drag.ItemID)
		if !ok {
			b.drag = DragState{}
		} else {
			b.drag.SourceColumn = col
			b.drag.SourceIndex = idx
			b.drag.TargetColumn = clamp(b.drag.TargetColumn, 0, len(columns)-1)
			b.drag.TargetIndex = clamp(b.drag.TargetIndex, 0, b.maxTargetIndex(b.drag.TargetColumn))
		}
	}

	b.clampCursor()
}

// Cursor returns the selected column and row
func (b *Board[T]) Cursor() (col, row int) {
	return b.cursorCol, b.cursorRow
}

// SetCursor moves the selection, clamped to the board's shape
func (b *Board[T]) SetCursor(col, row int) {
	b.cursorCol = col
	b.cursorRow = row
	b.clampCursor()
}

// SelectedColumn returns the column under the cursor
func (b *Board[T]) SelectedColumn() (Column[T], bool) {
	if len(b.columns) == 0 {
		return Column[T]{}, false
	}
	return b.columns[b.cursorCol], true
}

// Selected returns the item under the cursor
func (b *Board[T]) Selected() (T, bool) {
	var zero T
	col, ok := b.SelectedColumn()
	if !ok || b.cursorRow >= col.Len() {
		return zero, false
	}
	return col.Items[b.cursorRow], true
}

// SelectItem moves the cursor onto the item with id. It is ignored while a
// drag is in progress and reports whether the item was found.
func (b *Board[T]) SelectItem(id string) bool {
	if b.drag.Active() {
		return false
	}
	col, idx, ok := b.locate(id)
	if ok {
		b.cursorCol, b.cursorRow = col, idx
	}
	return ok
}

// Drag returns the current gesture state
func (b *Board[T]) Drag() DragState {
	return b.drag
}

// Dragged returns the item being dragged
func (b *Board[T]) Dragged() (T, bool) {
	var zero T
	if !b.drag.Active() {
		return zero, false
	}
	return b.columns[b.drag.SourceColumn].Items[b.drag.SourceIndex], true
}

// ItemState reports how the item at (col, row) should be drawn
func (b *Board[T]) ItemState(col, row int) ItemState {
	if b.drag.Active() {
		return ItemState{Dimmed: col == b.drag.SourceColumn && row == b.drag.SourceIndex}
	}
	return ItemState{Selected: col == b.cursorCol && row == b.cursorRow}
}

// MoveCursor moves the selection by (dCol, dRow). While dragging it moves the
// drop target instead, allowing the slot after the last item of other columns.
func (b *Board[T]) MoveCursor(dCol, dRow int) {
	if len(b.columns) == 0 {
		return
	}

	if b.drag.Active() {
		b.drag.TargetColumn = clamp(b.drag.TargetColumn+dCol, 0, len(b.columns)-1)
		b.drag.TargetIndex = clamp(b.drag.TargetIndex+dRow, 0, b.maxTargetIndex(b.drag.TargetColumn))
		return
	}

	b.cursorCol += dCol
	b.cursorRow += dRow
	b.clampCursor()
}

// Pick starts dragging the selected item.
// Only one gesture can be active at a time.
func (b *Board[T]) Pick() error {
	if b.drag.Active() {
		return ErrDragInProgress
	}
	item, ok := b.Selected()
	if !ok {
		return ErrNothingToDrag
	}

	b.drag = DragState{
		Phase:        Dragging,
		ItemID:       b.getItemID(item),
		SourceColumn: b.cursorCol,
		SourceIndex:  b.cursorRow,
		TargetColumn: b.cursorCol,
		TargetIndex:  b.cursorRow,
	}
	return nil
}

// Drop completes the gesture at the current target. OnDragEnd fires exactly
// once when the item changed column or position; a drop at the origin fires
// nothing. The cursor follows the dropped item.
func (b *Board[T]) Drop() (Move, DropResult, error) {
	if !b.drag.Active() {
		return Move{}, 0, ErrNotDragging
	}
	d := b.drag
	b.drag = DragState{}

	if d.TargetColumn < 0 || d.TargetColumn >= len(b.columns) {
		return Move{}, Cancelled, nil
	}

	mv := Move{
		ItemID:     d.ItemID,
		FromColumn: b.columns[d.SourceColumn].ID,
		FromIndex:  d.SourceIndex,
		ToColumn:   b.columns[d.TargetColumn].ID,
		ToIndex:    d.TargetIndex,
	}

	if mv.Noop() {
		return mv, Unchanged, nil
	}

	b.cursorCol = d.TargetColumn
	b.cursorRow = d.TargetIndex

	if b.onDragEnd != nil {
		b.onDragEnd(mv.ItemID, mv.ToColumn)
	}
	return mv, Dropped, nil
}

// Cancel aborts the gesture without notifying the owner
func (b *Board[T]) Cancel() error {
	if !b.drag.Active() {
		return ErrNotDragging
	}
	b.drag = DragState{}
	return nil
}

// locate finds the column and index of the item with the given id
func (b *Board[T]) locate(id string) (col, idx int, ok bool) {
	for c, column := range b.columns {
		for i, item := range column.Items {
			if b.getItemID(item) == id {
				return c, i, true
			}
		}
	}
	return 0, 0, false
}

// maxTargetIndex is the last valid drop index in col: one past the end for
// other columns, the last slot for the source column.
func (b *Board[T]) maxTargetIndex(col int) int {
	n := b.columns[col].Len()
	if col == b.drag.SourceColumn {
		return max(n-1, 0)
	}
	return n
}

func (b *Board[T]) clampCursor() {
	if len(b.columns) == 0 {
		b.cursorCol, b.cursorRow = 0, 0
		return
	}
	b.cursorCol = clamp(b.cursorCol, 0, len(b.columns)-1)
	b.cursorRow = clamp(b.cursorRow, 0, max(b.columns[b.cursorCol].Len()-1, 0))
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
