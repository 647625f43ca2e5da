// Package kanban implements the generic board model shared by every board in lifeos:
// ordered columns of items, a selection cursor and the keyboard drag gesture.
//
// The board never owns ordering. Owners hand it columns computed from their own
// state, receive OnDragEnd when a drop changes something, and hand back freshly
// computed columns on the next render.
package kanban

// Column is an ordered, named bucket of items. ID doubles as the status value
// items take on when they are dropped into the column. Color is a tone name
// or a literal color for the header.
type Column[T any] struct {
	ID    string
	Title string
	Items []T
	Color string
}

// Len returns the number of items in the column
func (c Column[T]) Len() int {
	return len(c.Items)
}

// Move describes a completed drag: where the item came from and where it landed.
// ToIndex is the item's index in the destination column after the move.
type Move struct {
	ItemID     string
	FromColumn string
	FromIndex  int
	ToColumn   string
	ToIndex    int
}

// CrossColumn reports whether the item changed columns
func (m Move) CrossColumn() bool {
	return m.FromColumn != m.ToColumn
}

// Noop reports whether the item was dropped back where it started
func (m Move) Noop() bool {
	return !m.CrossColumn() && m.FromIndex == m.ToIndex
}

// Reorder applies mv to columns and returns the resulting columns.
// The input slice and every Items slice in it are left untouched.
func Reorder[T any](columns []Column[T], mv Move) ([]Column[T], error) {
	src := indexOfColumn(columns, mv.FromColumn)
	if src < 0 {
		return nil, ErrColumnNotFound
	}
	dst := indexOfColumn(columns, mv.ToColumn)
	if dst < 0 {
		return nil, ErrColumnNotFound
	}
	if mv.FromIndex < 0 || mv.FromIndex >= columns[src].Len() {
		return nil, ErrIndexOutOfRange
	}

	maxTo := columns[dst].Len()
	if src == dst {
		maxTo--
	}
	if mv.ToIndex < 0 || mv.ToIndex > maxTo {
		return nil, ErrIndexOutOfRange
	}

	out := make([]Column[T], len(columns))
	copy(out, columns)

	item := columns[src].Items[mv.FromIndex]
	remaining := removeAt(columns[src].Items, mv.FromIndex)

	if src == dst {
		out[src].Items = insertAt(remaining, mv.ToIndex, item)
		return out, nil
	}

	out[src].Items = remaining
	out[dst].Items = insertAt(columns[dst].Items, mv.ToIndex, item)
	return out, nil
}

func indexOfColumn[T any](columns []Column[T], id string) int {
	for i, c := range columns {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// removeAt returns a new slice without the element at idx
func removeAt[T any](items []T, idx int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:idx]...)
	return append(out, items[idx+1:]...)
}

// insertAt returns a new slice with item inserted at idx
func insertAt[T any](items []T, idx int, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items[:idx]...)
	out = append(out, item)
	return append(out, items[idx:]...)
}
