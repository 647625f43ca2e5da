package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/lifeos/internal/kanban"
	"github.com/thenoetrevino/lifeos/internal/tui/components"
	"github.com/thenoetrevino/lifeos/internal/tui/state"
	"github.com/thenoetrevino/lifeos/internal/viewmodel"
)

// progressStep is how far one increase/decrease moves a learning item
const progressStep = 10

// gesture is the part of a board the key handlers drive. It lets one set of
// handlers serve every board regardless of item type.
type gesture interface {
	MoveCursor(dCol, dRow int)
	Cursor() (col, row int)
	Pick() error
	Drop() (kanban.Move, kanban.DropResult, error)
	Cancel() error
	Drag() kanban.DragState
}

// activeBoard returns the board shown on the active tab
func (m Model) activeBoard() (gesture, bool) {
	switch m.uiState.ActiveTab() {
	case tasksTab:
		return m.taskBoard, true
	case programmingTab:
		return m.learningBoard, true
	case freelancingTab:
		if m.uiState.OpenProjectID() != "" {
			return m.projectBoard, true
		}
	}
	return nil, false
}

// handleNormalMode dispatches keys for boards and lists
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	board, isBoard := m.activeBoard()

	// A drag owns the keyboard until it is dropped or cancelled
	if isBoard && board.Drag().Active() {
		return m.handleDragKeys(board, msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.uiState.SetMode(state.HelpMode)
		return m, nil
	case key.Matches(msg, m.keys.NextTab):
		m.uiState.CycleTab(1, len(tabTitles))
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.uiState.CycleTab(-1, len(tabTitles))
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if m.uiState.ActiveTab() == freelancingTab && m.uiState.OpenProjectID() != "" {
			m.closeProject()
		}
		return m, nil
	case key.Matches(msg, m.keys.Add):
		return m, m.openAddForm()
	}

	if isBoard {
		if handled, cmd := m.handleBoardKeys(board, msg); handled {
			return m, cmd
		}
	} else if handled := m.handleListKeys(msg); handled {
		return m, nil
	}

	return m, m.handleItemKeys(msg)
}

// handleBoardKeys moves the cursor and starts drags
func (m Model) handleBoardKeys(board gesture, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		board.MoveCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		board.MoveCursor(1, 0)
	case key.Matches(msg, m.keys.Up):
		board.MoveCursor(0, -1)
	case key.Matches(msg, m.keys.Down):
		board.MoveCursor(0, 1)
	case key.Matches(msg, m.keys.PickUp):
		if err := board.Pick(); err != nil && !errors.Is(err, kanban.ErrNothingToDrag) {
			return true, m.notify(state.LevelWarning, err.Error())
		}
	default:
		return false, nil
	}
	m.uiState.ResetFocusedAction()
	col, _ := board.Cursor()
	m.uiState.EnsureColumnVisible(m.uiState.ActiveTab(), col, components.DefaultColumnWidth)
	return true, nil
}

// handleDragKeys moves the drop target, drops or cancels
func (m Model) handleDragKeys(board gesture, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		board.MoveCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		board.MoveCursor(1, 0)
	case key.Matches(msg, m.keys.Up):
		board.MoveCursor(0, -1)
	case key.Matches(msg, m.keys.Down):
		board.MoveCursor(0, 1)
	case key.Matches(msg, m.keys.CancelDrag, m.keys.Back):
		_ = board.Cancel()
		return m, nil
	case key.Matches(msg, m.keys.PickUp, m.keys.Open):
		mv, result, err := board.Drop()
		if err != nil {
			return m, m.notify(state.LevelError, err.Error())
		}
		if result == kanban.Dropped {
			m.followID = mv.ItemID
			m.reorderOptimistically(mv)
		}
		return m, m.queue.drain()
	case key.Matches(msg, m.keys.Quit):
		_ = board.Cancel()
		return m, tea.Quit
	}

	if drag := board.Drag(); drag.Active() {
		m.uiState.EnsureColumnVisible(m.uiState.ActiveTab(), drag.TargetColumn, components.DefaultColumnWidth)
	}
	return m, nil
}

// reorderOptimistically shows a drop immediately; the reload that follows
// the service write replaces these columns with the stored order
func (m Model) reorderOptimistically(mv kanban.Move) {
	switch m.uiState.ActiveTab() {
	case tasksTab:
		applyMove(m.taskBoard, mv)
	case programmingTab:
		applyMove(m.learningBoard, mv)
	case freelancingTab:
		applyMove(m.projectBoard, mv)
	}
}

func applyMove[T any](b *kanban.Board[T], mv kanban.Move) {
	cols, err := kanban.Reorder(b.Columns(), mv)
	if err != nil {
		return
	}
	col, row := b.Cursor()
	b.SetColumns(cols)
	b.SetCursor(col, row)
}

// handleListKeys moves the list cursor of list tabs
func (m Model) handleListKeys(msg tea.KeyMsg) bool {
	tab := m.uiState.ActiveTab()
	n := m.listLen(tab)
	switch {
	case key.Matches(msg, m.keys.Up):
		m.uiState.MoveListCursor(tab, -1, n)
	case key.Matches(msg, m.keys.Down):
		m.uiState.MoveListCursor(tab, 1, n)
	default:
		return false
	}
	return true
}

func (m Model) listLen(tab int) int {
	switch tab {
	case freelancingTab:
		return len(m.data.Projects)
	case universityTab:
		return len(m.data.Subjects)
	case notesTab:
		return len(m.data.Notes)
	}
	return 0
}

// handleItemKeys runs an operation on the selected item. Card actions and
// direct shortcuts end up in the same handlers.
func (m Model) handleItemKeys(msg tea.KeyMsg) tea.Cmd {
	sel, ok := m.selected()
	if !ok {
		return nil
	}

	var fn func()
	switch {
	case key.Matches(msg, m.keys.NextAction):
		m.uiState.CycleAction(1, len(sel.props.Actions))
		return nil
	case key.Matches(msg, m.keys.PrevAction):
		m.uiState.CycleAction(-1, len(sel.props.Actions))
		return nil
	case key.Matches(msg, m.keys.Open):
		target := m.uiState.FocusedAction()
		m.uiState.ResetFocusedAction()
		if !sel.props.Click(target) && target == viewmodel.BodyTarget && sel.edit != nil {
			// Cards without a body action open their edit form
			sel.edit()
		}
		return m.queue.drain()
	case key.Matches(msg, m.keys.Edit):
		fn = sel.edit
	case key.Matches(msg, m.keys.Advance):
		fn = sel.advance
	case key.Matches(msg, m.keys.Delete):
		fn = sel.remove
	case key.Matches(msg, m.keys.TogglePin):
		fn = sel.pin
	case key.Matches(msg, m.keys.Increase):
		fn = sel.increase
	case key.Matches(msg, m.keys.Decrease):
		fn = sel.decrease
	}
	if fn == nil {
		return nil
	}
	fn()
	return m.queue.drain()
}
