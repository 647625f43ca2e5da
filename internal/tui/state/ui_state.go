package state

import tea "github.com/charmbracelet/bubbletea"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode, including drags
	FormMode                      // A huh form owns the keyboard
	DeleteConfirmMode             // Confirming a deletion
	HelpMode                      // Displaying help screen
	DetailMode                    // Reading a note, task or subject breakdown
)

// DeleteContext describes a pending deletion awaiting confirmation
type DeleteContext struct {
	Message string
	Confirm func() tea.Cmd
}

// UIState manages the user interface state.
// This includes tab and list selection, the horizontal board viewport,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	width  int
	height int
	mode   Mode

	activeTab int

	// focusedAction is the highlighted action of the selected card, or -1
	// when the card body has focus
	focusedAction int

	// listCursors holds the selected row of each list tab
	listCursors map[int]int

	// viewportOffsets holds the leftmost visible column of each board tab
	viewportOffsets map[int]int

	// openProjectID is the freelance project whose board is shown.
	// Empty means the project list is shown.
	openProjectID string

	deleteContext *DeleteContext
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:            NormalMode,
		focusedAction:   -1,
		listCursors:     make(map[int]int),
		viewportOffsets: make(map[int]int),
	}
}

// Width returns the terminal width
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the terminal height
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight is the height left for the active tab below the tab bar
// and above the status bar
func (s *UIState) ContentHeight() int {
	const chrome = 4 // tabs (3) + status bar (1)
	return max(s.height-chrome, 0)
}

// Mode returns the current interaction mode
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode changes the interaction mode
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ActiveTab returns the index of the visible tab
func (s *UIState) ActiveTab() int {
	return s.activeTab
}

// SetActiveTab selects a tab and resets card focus
func (s *UIState) SetActiveTab(tab int) {
	s.activeTab = tab
	s.focusedAction = -1
}

// CycleTab moves delta tabs forward, wrapping around count tabs
func (s *UIState) CycleTab(delta, count int) {
	if count <= 0 {
		return
	}
	s.SetActiveTab(((s.activeTab+delta)%count + count) % count)
}

// FocusedAction returns the highlighted card action, or -1 for the card body
func (s *UIState) FocusedAction() int {
	return s.focusedAction
}

// ResetFocusedAction moves focus back to the card body
func (s *UIState) ResetFocusedAction() {
	s.focusedAction = -1
}

// CycleAction moves action focus by delta through the body (-1) and count
// actions, wrapping at both ends
func (s *UIState) CycleAction(delta, count int) {
	if count <= 0 {
		s.focusedAction = -1
		return
	}
	// Positions 0..count map to body, action 0, ..., action count-1
	span := count + 1
	pos := ((s.focusedAction+1+delta)%span + span) % span
	s.focusedAction = pos - 1
}

// ListCursor returns the selected row of a list tab
func (s *UIState) ListCursor(tab int) int {
	return s.listCursors[tab]
}

// MoveListCursor moves a list tab's selection by delta, clamped to n rows.
// It reports whether the selection changed.
func (s *UIState) MoveListCursor(tab, delta, n int) bool {
	old := s.listCursors[tab]
	s.listCursors[tab] = clamp(old+delta, 0, n-1)
	if s.listCursors[tab] != old {
		s.focusedAction = -1
		return true
	}
	return false
}

// ClampListCursor keeps a list tab's selection inside n rows after a reload
func (s *UIState) ClampListCursor(tab, n int) {
	s.listCursors[tab] = clamp(s.listCursors[tab], 0, n-1)
}

// ViewportOffset returns the leftmost visible column of a board tab
func (s *UIState) ViewportOffset(tab int) int {
	return s.viewportOffsets[tab]
}

// ViewportSize returns how many columns of columnWidth fit on screen.
// Always at least 1.
func (s *UIState) ViewportSize(columnWidth int) int {
	if columnWidth <= 0 || s.width <= 0 {
		return 1
	}
	return max(s.width/columnWidth, 1)
}

// EnsureColumnVisible scrolls a board tab's viewport so col is on screen
func (s *UIState) EnsureColumnVisible(tab, col, columnWidth int) {
	size := s.ViewportSize(columnWidth)
	offset := s.viewportOffsets[tab]
	switch {
	case col < offset:
		offset = col
	case col >= offset+size:
		offset = col - size + 1
	}
	s.viewportOffsets[tab] = max(offset, 0)
}

// OpenProjectID returns the freelance project whose board is shown
func (s *UIState) OpenProjectID() string {
	return s.openProjectID
}

// SetOpenProjectID switches the freelancing tab between its project list
// (empty id) and a project's task board
func (s *UIState) SetOpenProjectID(id string) {
	s.openProjectID = id
	s.focusedAction = -1
}

// DeleteContext returns the pending deletion, if any
func (s *UIState) DeleteContext() *DeleteContext {
	return s.deleteContext
}

// SetDeleteContext stores a pending deletion and enters DeleteConfirmMode
func (s *UIState) SetDeleteContext(ctx *DeleteContext) {
	s.deleteContext = ctx
	s.mode = DeleteConfirmMode
}

// ClearDeleteContext drops the pending deletion and returns to NormalMode
func (s *UIState) ClearDeleteContext() {
	s.deleteContext = nil
	s.mode = NormalMode
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
