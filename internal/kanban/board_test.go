package kanban

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type card struct {
	ID    string
	Title string
}

func cardID(c card) string { return c.ID }

type dragCall struct {
	itemID   string
	columnID string
}

// ============================================================================
// TEST HELPERS
// ============================================================================

func testColumns() []Column[card] {
	return []Column[card]{
		{ID: "todo", Title: "To Do", Items: []card{{"a", "A"}, {"b", "B"}, {"c", "C"}}},
		{ID: "in-progress", Title: "In Progress", Items: []card{{"d", "D"}}},
		{ID: "done", Title: "Done", Items: []card{}},
	}
}

func cloneColumns(cols []Column[card]) []Column[card] {
	out := make([]Column[card], len(cols))
	for i, c := range cols {
		out[i] = c
		out[i].Items = append(make([]card, 0, len(c.Items)), c.Items...)
	}
	return out
}

func newRecordingBoard(t *testing.T, cols []Column[card]) (*Board[card], *[]dragCall) {
	t.Helper()
	calls := &[]dragCall{}
	b := NewBoard(cardID, func(itemID, columnID string) {
		*calls = append(*calls, dragCall{itemID, columnID})
	})
	b.SetColumns(cols)
	return b, calls
}

// ============================================================================
// DRAG GESTURE
// ============================================================================

func TestDrop_CrossColumnFiresOnce(t *testing.T) {
	t.Parallel()

	b, calls := newRecordingBoard(t, testColumns())
	b.SetCursor(0, 1)

	require.NoError(t, b.Pick())
	b.MoveCursor(1, 0)

	mv, result, err := b.Drop()
	require.NoError(t, err)

	assert.Equal(t, Dropped, result)
	assert.Equal(t, []dragCall{{"b", "in-progress"}}, *calls)
	assert.Equal(t, Move{ItemID: "b", FromColumn: "todo", FromIndex: 1, ToColumn: "in-progress", ToIndex: 1}, mv)
	assert.Equal(t, Idle, b.Drag().Phase)
}

func TestDrop_EveryColumnPairFiresWithDestination(t *testing.T) {
	t.Parallel()

	cols := testColumns()
	for src := range cols {
		for dst := range cols {
			if src == dst || cols[src].Len() == 0 {
				continue
			}
			for i := range cols[src].Items {
				b, calls := newRecordingBoard(t, cloneColumns(cols))
				b.SetCursor(src, i)
				require.NoError(t, b.Pick())
				b.MoveCursor(dst-src, 0)

				_, result, err := b.Drop()
				require.NoError(t, err)
				assert.Equal(t, Dropped, result)
				require.Len(t, *calls, 1)
				assert.Equal(t, cols[src].Items[i].ID, (*calls)[0].itemID)
				assert.Equal(t, cols[dst].ID, (*calls)[0].columnID)
			}
		}
	}
}

func TestDrop_IntoEmptyColumn(t *testing.T) {
	t.Parallel()

	b, calls := newRecordingBoard(t, testColumns())
	b.SetCursor(1, 0)

	require.NoError(t, b.Pick())
	b.MoveCursor(1, 5)

	assert.Equal(t, 0, b.Drag().TargetIndex, "target index in an empty column clamps to 0")

	mv, result, err := b.Drop()
	require.NoError(t, err)
	assert.Equal(t, Dropped, result)
	assert.Equal(t, "done", mv.ToColumn)
	assert.Equal(t, []dragCall{{"d", "done"}}, *calls)
}

func TestDrop_AtOriginIsUnchanged(t *testing.T) {
	t.Parallel()

	cols := testColumns()
	before := cloneColumns(cols)
	b, calls := newRecordingBoard(t, cols)
	b.SetCursor(0, 2)

	require.NoError(t, b.Pick())
	b.MoveCursor(0, -1)
	b.MoveCursor(0, 1)

	_, result, err := b.Drop()
	require.NoError(t, err)

	assert.Equal(t, Unchanged, result)
	assert.Empty(t, *calls)
	if diff := cmp.Diff(before, b.Columns()); diff != "" {
		t.Errorf("columns changed after no-op drop (-want +got):\n%s", diff)
	}
}

func TestDrop_SameColumnReorderFiresWithSourceColumn(t *testing.T) {
	t.Parallel()

	b, calls := newRecordingBoard(t, testColumns())
	b.SetCursor(0, 0)

	require.NoError(t, b.Pick())
	b.MoveCursor(0, 2)

	mv, result, err := b.Drop()
	require.NoError(t, err)
	assert.Equal(t, Dropped, result)
	assert.Equal(t, 2, mv.ToIndex)
	assert.Equal(t, []dragCall{{"a", "todo"}}, *calls)
}

func TestCancel_FiresNothing(t *testing.T) {
	t.Parallel()

	b, calls := newRecordingBoard(t, testColumns())
	require.NoError(t, b.Pick())
	b.MoveCursor(2, 0)

	require.NoError(t, b.Cancel())
	assert.Empty(t, *calls)
	assert.False(t, b.Drag().Active())

	_, _, err := b.Drop()
	assert.ErrorIs(t, err, ErrNotDragging)
}

func TestPick_RejectsSecondGesture(t *testing.T) {
	t.Parallel()

	b, _ := newRecordingBoard(t, testColumns())
	require.NoError(t, b.Pick())
	assert.ErrorIs(t, b.Pick(), ErrDragInProgress)
}

func TestPick_EmptyColumn(t *testing.T) {
	t.Parallel()

	b, _ := newRecordingBoard(t, testColumns())
	b.SetCursor(2, 0)
	assert.ErrorIs(t, b.Pick(), ErrNothingToDrag)
}

func TestDrop_NeverMutatesInput(t *testing.T) {
	t.Parallel()

	cols := testColumns()
	before := cloneColumns(cols)
	b, _ := newRecordingBoard(t, cols)

	require.NoError(t, b.Pick())
	b.MoveCursor(1, 1)
	_, _, err := b.Drop()
	require.NoError(t, err)

	if diff := cmp.Diff(before, cols); diff != "" {
		t.Errorf("board mutated its input (-want +got):\n%s", diff)
	}
}

func TestSetColumns_CancelsDragWhenItemDisappears(t *testing.T) {
	t.Parallel()

	b, calls := newRecordingBoard(t, testColumns())
	require.NoError(t, b.Pick())

	cols := testColumns()
	cols[0].Items = cols[0].Items[1:]
	b.SetColumns(cols)

	assert.False(t, b.Drag().Active())
	assert.Empty(t, *calls)
}

func TestSetColumns_ClampsCursor(t *testing.T) {
	t.Parallel()

	b, _ := newRecordingBoard(t, testColumns())
	b.SetCursor(0, 2)

	cols := testColumns()
	cols[0].Items = cols[0].Items[:1]
	b.SetColumns(cols)

	col, row := b.Cursor()
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, row)
}

func TestSelectItem(t *testing.T) {
	t.Parallel()

	b, _ := newRecordingBoard(t, testColumns())

	require.True(t, b.SelectItem("d"))
	col, row := b.Cursor()
	assert.Equal(t, 1, col)
	assert.Equal(t, 0, row)

	assert.False(t, b.SelectItem("missing"))
	col, row = b.Cursor()
	assert.Equal(t, 1, col, "unknown id leaves the cursor alone")
	assert.Equal(t, 0, row)

	require.NoError(t, b.Pick())
	assert.False(t, b.SelectItem("a"), "selection is frozen while dragging")
}

func TestItemState_DimsSourceWhileDragging(t *testing.T) {
	t.Parallel()

	b, _ := newRecordingBoard(t, testColumns())
	b.SetCursor(0, 1)
	assert.True(t, b.ItemState(0, 1).Selected)

	require.NoError(t, b.Pick())
	assert.True(t, b.ItemState(0, 1).Dimmed)
	assert.False(t, b.ItemState(0, 0).Dimmed)

	item, ok := b.Dragged()
	require.True(t, ok)
	assert.Equal(t, "b", item.ID)
}

func TestOverlaySlot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		drag     DragState
		col      int
		wantSlot int
		wantOK   bool
	}{
		{"idle", DragState{}, 0, 0, false},
		{"other column", DragState{Phase: Dragging, TargetColumn: 1}, 0, 0, false},
		{"cross column", DragState{Phase: Dragging, SourceColumn: 0, SourceIndex: 2, TargetColumn: 1, TargetIndex: 1}, 1, 1, true},
		{"same column upward", DragState{Phase: Dragging, SourceIndex: 2, TargetIndex: 0}, 0, 0, true},
		{"same column downward", DragState{Phase: Dragging, SourceIndex: 0, TargetIndex: 1}, 0, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, ok := tt.drag.OverlaySlot(tt.col)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantSlot, slot)
		})
	}
}

// ============================================================================
// REORDER
// ============================================================================

func TestReorder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		move Move
		want map[string][]string
	}{
		{
			name: "within column downward",
			move: Move{ItemID: "a", FromColumn: "todo", FromIndex: 0, ToColumn: "todo", ToIndex: 2},
			want: map[string][]string{"todo": {"b", "c", "a"}, "in-progress": {"d"}, "done": {}},
		},
		{
			name: "within column upward",
			move: Move{ItemID: "c", FromColumn: "todo", FromIndex: 2, ToColumn: "todo", ToIndex: 0},
			want: map[string][]string{"todo": {"c", "a", "b"}, "in-progress": {"d"}, "done": {}},
		},
		{
			name: "across columns",
			move: Move{ItemID: "b", FromColumn: "todo", FromIndex: 1, ToColumn: "in-progress", ToIndex: 0},
			want: map[string][]string{"todo": {"a", "c"}, "in-progress": {"b", "d"}, "done": {}},
		},
		{
			name: "into empty column",
			move: Move{ItemID: "d", FromColumn: "in-progress", FromIndex: 0, ToColumn: "done", ToIndex: 0},
			want: map[string][]string{"todo": {"a", "b", "c"}, "in-progress": {}, "done": {"d"}},
		},
		{
			name: "no-op",
			move: Move{ItemID: "b", FromColumn: "todo", FromIndex: 1, ToColumn: "todo", ToIndex: 1},
			want: map[string][]string{"todo": {"a", "b", "c"}, "in-progress": {"d"}, "done": {}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols := testColumns()
			before := cloneColumns(cols)

			got, err := Reorder(cols, tt.move)
			require.NoError(t, err)

			ids := map[string][]string{}
			for _, c := range got {
				ids[c.ID] = []string{}
				for _, item := range c.Items {
					ids[c.ID] = append(ids[c.ID], item.ID)
				}
			}
			assert.Equal(t, tt.want, ids)

			if diff := cmp.Diff(before, cols); diff != "" {
				t.Errorf("Reorder mutated its input (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReorder_Errors(t *testing.T) {
	t.Parallel()

	cols := testColumns()

	_, err := Reorder(cols, Move{FromColumn: "nope", ToColumn: "todo"})
	assert.ErrorIs(t, err, ErrColumnNotFound)

	_, err = Reorder(cols, Move{FromColumn: "todo", FromIndex: 5, ToColumn: "done"})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = Reorder(cols, Move{FromColumn: "todo", FromIndex: 0, ToColumn: "todo", ToIndex: 3})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = Reorder(cols, Move{FromColumn: "todo", FromIndex: 0, ToColumn: "done", ToIndex: 1})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}
