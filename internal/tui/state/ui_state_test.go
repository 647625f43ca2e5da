package state

import (
	"testing"
)

// TestViewportSize_ZeroWidth ensures viewport defaults to 1 when terminal width is 0.
// Edge case: Terminal not fully initialized yet.
func TestViewportSize_ZeroWidth(t *testing.T) {
	state := NewUIState()
	state.SetWidth(0)

	if got := state.ViewportSize(40); got != 1 {
		t.Errorf("ViewportSize() with width=0 = %d, want 1", got)
	}
}

// TestViewportSize_NarrowTerminal ensures viewport is at least 1 even when
// the terminal is narrower than one column.
func TestViewportSize_NarrowTerminal(t *testing.T) {
	state := NewUIState()
	state.SetWidth(20)

	if got := state.ViewportSize(40); got != 1 {
		t.Errorf("ViewportSize() with width=20 = %d, want 1", got)
	}
}

func TestEnsureColumnVisible(t *testing.T) {
	state := NewUIState()
	state.SetWidth(80) // two 40-wide columns

	state.EnsureColumnVisible(0, 3, 40)
	if got := state.ViewportOffset(0); got != 2 {
		t.Errorf("ViewportOffset after showing column 3 = %d, want 2", got)
	}

	state.EnsureColumnVisible(0, 0, 40)
	if got := state.ViewportOffset(0); got != 0 {
		t.Errorf("ViewportOffset after showing column 0 = %d, want 0", got)
	}

	if got := state.ViewportOffset(1); got != 0 {
		t.Errorf("other tab offset = %d, want 0", got)
	}
}

func TestCycleTab_Wraps(t *testing.T) {
	state := NewUIState()

	state.CycleTab(-1, 5)
	if got := state.ActiveTab(); got != 4 {
		t.Errorf("ActiveTab after prev from 0 = %d, want 4", got)
	}
	state.CycleTab(1, 5)
	if got := state.ActiveTab(); got != 0 {
		t.Errorf("ActiveTab after next from 4 = %d, want 0", got)
	}
}

// TestCycleAction_IncludesBody ensures action focus passes through the card
// body between the last and first action.
func TestCycleAction_IncludesBody(t *testing.T) {
	state := NewUIState()

	want := []int{0, 1, 2, -1, 0}
	for i, w := range want {
		state.CycleAction(1, 3)
		if got := state.FocusedAction(); got != w {
			t.Fatalf("step %d: FocusedAction = %d, want %d", i, got, w)
		}
	}

	state.CycleAction(-1, 3)
	state.CycleAction(-1, 3)
	if got := state.FocusedAction(); got != 2 {
		t.Errorf("FocusedAction after two steps back = %d, want 2", got)
	}
}

func TestCycleAction_NoActions(t *testing.T) {
	state := NewUIState()
	state.CycleAction(1, 0)

	if got := state.FocusedAction(); got != -1 {
		t.Errorf("FocusedAction with no actions = %d, want -1", got)
	}
}

func TestMoveListCursor_Clamps(t *testing.T) {
	state := NewUIState()

	if state.MoveListCursor(1, -1, 3) {
		t.Error("MoveListCursor above first row reported a change")
	}
	state.MoveListCursor(1, 10, 3)
	if got := state.ListCursor(1); got != 2 {
		t.Errorf("ListCursor = %d, want 2", got)
	}

	state.ClampListCursor(1, 0)
	if got := state.ListCursor(1); got != 0 {
		t.Errorf("ListCursor after list emptied = %d, want 0", got)
	}
}

func TestMoveListCursor_ResetsActionFocus(t *testing.T) {
	state := NewUIState()
	state.CycleAction(1, 2)

	state.MoveListCursor(0, 1, 3)

	if got := state.FocusedAction(); got != -1 {
		t.Errorf("FocusedAction after moving = %d, want -1", got)
	}
}

func TestDeleteContext_ModeTransitions(t *testing.T) {
	state := NewUIState()

	state.SetDeleteContext(&DeleteContext{Message: "Delete?"})
	if state.Mode() != DeleteConfirmMode {
		t.Errorf("Mode = %v, want DeleteConfirmMode", state.Mode())
	}

	state.ClearDeleteContext()
	if state.Mode() != NormalMode || state.DeleteContext() != nil {
		t.Errorf("after clear: mode=%v ctx=%v, want NormalMode and nil", state.Mode(), state.DeleteContext())
	}
}

func TestNotificationState_Dismiss(t *testing.T) {
	ns := NewNotificationState()
	first := ns.Add(LevelInfo, "saved")
	ns.Add(LevelError, "failed")

	ns.Dismiss(first)

	latest, ok := ns.Latest()
	if !ok || latest.Message != "failed" {
		t.Fatalf("Latest() = %+v, %v; want the error", latest, ok)
	}
	if len(ns.All()) != 1 {
		t.Errorf("len(All()) = %d, want 1", len(ns.All()))
	}

	ns.ClearLevel(LevelError)
	if ns.HasAny() {
		t.Error("HasAny() after clearing errors = true, want false")
	}
}

func TestFormState_Confirmed(t *testing.T) {
	fs := NewFormState()
	if !fs.Confirmed() {
		t.Error("form without confirmation field should count as confirmed")
	}

	confirm := false
	fs.Open("Add", nil, &confirm, nil, DetailMode)
	if fs.Confirmed() {
		t.Error("Confirmed() = true with confirmation false")
	}

	if fs.ReturnMode != DetailMode {
		t.Errorf("ReturnMode = %v, want DetailMode", fs.ReturnMode)
	}

	fs.Clear()
	if fs.Form != nil || fs.Confirm != nil || fs.ReturnMode != NormalMode {
		t.Error("Clear() left form state behind")
	}
}
