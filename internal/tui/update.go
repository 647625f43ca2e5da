package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/lifeos/internal/tui/state"
)

// notificationTTL is how long a notification stays on screen
var notificationTTL = 4 * time.Second

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.uiState.SetWidth(msg.Width)
		m.uiState.SetHeight(msg.Height)
		m.help.Width = msg.Width
		m.refreshDetail()
		if m.formState.Form != nil {
			m.formState.Form = m.formState.Form.WithWidth(m.formWidth())
		}
		return m, nil

	case dataLoadedMsg:
		if msg.err != nil {
			m.logger.Error("loading data failed", slog.String("error", msg.err.Error()))
			return m, m.notify(state.LevelError, "Could not load data: "+msg.err.Error())
		}
		m.applySnapshot(msg.data)
		return m, nil

	case dataChangedMsg:
		return m, tea.Batch(loadData(m.app), m.watcher.wait())

	case opResultMsg:
		if msg.err != nil {
			m.logger.Error("operation failed", slog.String("error", msg.err.Error()))
			return m, tea.Batch(m.notify(state.LevelError, msg.err.Error()), loadData(m.app))
		}
		if msg.followID != "" {
			m.followID = msg.followID
		}
		if msg.message == "" {
			return m, loadData(m.app)
		}
		return m, tea.Batch(m.notify(state.LevelInfo, msg.message), loadData(m.app))

	case dismissNotificationMsg:
		m.notifications.Dismiss(msg.id)
		return m, nil
	}

	// Forms receive every remaining message, not only keys
	if m.uiState.Mode() == state.FormMode {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.uiState.Mode() == state.DetailMode {
			var cmd tea.Cmd
			m.detail.viewport, cmd = m.detail.viewport.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch m.uiState.Mode() {
	case state.HelpMode:
		return m.handleHelpMode(keyMsg)
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirm(keyMsg)
	case state.DetailMode:
		return m.handleDetailMode(keyMsg)
	default:
		return m.handleNormalMode(keyMsg)
	}
}

// notify shows a notification and schedules its dismissal
func (m Model) notify(level state.NotificationLevel, message string) tea.Cmd {
	id := m.notifications.Add(level, message)
	return tea.Tick(notificationTTL, func(time.Time) tea.Msg {
		return dismissNotificationMsg{id: id}
	})
}

// ============================================================================
// HELP MODE HANDLERS
// ============================================================================

// handleHelpMode handles input in the help screen.
func (m Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help, m.keys.Quit, m.keys.CancelDrag, m.keys.Back):
		m.uiState.SetMode(state.NormalMode)
	case msg.String() == "enter":
		m.uiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// ============================================================================
// DELETE CONFIRMATION HANDLERS
// ============================================================================

// confirmDelete asks before running del
func (m Model) confirmDelete(message string, del tea.Cmd) {
	m.uiState.SetDeleteContext(&state.DeleteContext{
		Message: message,
		Confirm: func() tea.Cmd { return del },
	})
}

// handleDeleteConfirm handles y/n input for a pending deletion
func (m Model) handleDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := m.uiState.DeleteContext()
	switch msg.String() {
	case "y", "Y", "enter":
		m.uiState.ClearDeleteContext()
		if ctx != nil && ctx.Confirm != nil {
			return m, ctx.Confirm()
		}
	case "n", "N", "esc", "q":
		m.uiState.ClearDeleteContext()
	}
	return m, nil
}
