// Package tui implements the interactive lifeos terminal UI: one tab per
// area, kanban boards for tasks, learning items and freelance project tasks,
// and card lists for projects, subjects and notes.
package tui

import (
	"log/slog"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/lifeos/internal/adapters"
	"github.com/thenoetrevino/lifeos/internal/app"
	"github.com/thenoetrevino/lifeos/internal/config"
	"github.com/thenoetrevino/lifeos/internal/kanban"
	"github.com/thenoetrevino/lifeos/internal/models"
	"github.com/thenoetrevino/lifeos/internal/tui/components"
	"github.com/thenoetrevino/lifeos/internal/tui/huhforms"
	"github.com/thenoetrevino/lifeos/internal/tui/state"
)

// Tab indexes follow config.Tabs
const (
	tasksTab = iota
	freelancingTab
	programmingTab
	universityTab
	notesTab
)

var tabTitles = []string{"Tasks", "Freelancing", "Programming", "University", "Notes"}

// commandQueue collects commands produced by card handlers and drag
// callbacks, which cannot return commands themselves
type commandQueue struct {
	cmds []tea.Cmd
}

func (q *commandQueue) push(cmd tea.Cmd) {
	if cmd != nil {
		q.cmds = append(q.cmds, cmd)
	}
}

// drain returns every queued command as one batch and empties the queue
func (q *commandQueue) drain() tea.Cmd {
	cmds := q.cmds
	q.cmds = nil
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Model represents the application state for the TUI
type Model struct {
	app    *app.App
	config *config.Config
	logger *slog.Logger
	keys   keyMap
	help   help.Model
	theme  *huh.Theme

	data          *snapshot
	uiState       *state.UIState
	formState     *state.FormState
	notifications *state.NotificationState
	detail        *detailState
	queue         *commandQueue

	taskBoard     *kanban.Board[models.Task]
	learningBoard *kanban.Board[models.LearningItem]
	projectBoard  *kanban.Board[models.ProjectTask]

	watcher *watcher

	// followID is the item the cursor should land on after the next reload
	followID string
	loaded   bool
}

// New creates the TUI model. Data is loaded by Init.
func New(a *app.App, cfg *config.Config, opts ...Option) Model {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	components.InitStyles(cfg.ColorScheme)

	uiState := state.NewUIState()
	if i := slices.Index(config.Tabs, cfg.DefaultTab); i >= 0 {
		uiState.SetActiveTab(i)
	}

	m := Model{
		app:           a,
		config:        cfg,
		logger:        a.Logger(),
		keys:          newKeyMap(cfg.KeyMappings),
		help:          help.New(),
		theme:         huhforms.CreateLifeosTheme(cfg.ColorScheme),
		data:          emptySnapshot(),
		uiState:       uiState,
		formState:     state.NewFormState(),
		notifications: state.NewNotificationState(),
		detail:        &detailState{viewport: viewport.New(0, 0)},
		queue:         &commandQueue{},
		watcher:       o.watcher,
	}

	m.taskBoard = kanban.NewBoard(
		func(t models.Task) string { return t.ID },
		func(itemID, columnID string) {
			m.queue.push(m.moveTask(itemID, models.TaskStatus(columnID)))
		},
	)
	m.learningBoard = kanban.NewBoard(
		func(l models.LearningItem) string { return l.ID },
		func(itemID, columnID string) {
			m.queue.push(m.moveLearningItem(itemID, models.LearningStatus(columnID)))
		},
	)
	m.projectBoard = kanban.NewBoard(
		func(t models.ProjectTask) string { return t.ID },
		func(itemID, columnID string) {
			m.queue.push(m.moveProjectTask(m.uiState.OpenProjectID(), itemID, models.ProjectTaskStatus(columnID)))
		},
	)
	return m
}

// Init loads every document and starts listening for changes on disk
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{loadData(m.app)}
	if m.watcher != nil {
		cmds = append(cmds, m.watcher.wait())
	}
	return tea.Batch(cmds...)
}

// applySnapshot installs freshly loaded data and recomputes every board
func (m *Model) applySnapshot(data *snapshot) {
	m.data = data
	m.loaded = true

	m.taskBoard.SetColumns(adapters.StandaloneTaskColumns(data.Tasks, m.app.Now()))
	m.learningBoard.SetColumns(adapters.LearningItemColumns(data.Learning))

	if id := m.uiState.OpenProjectID(); id != "" {
		if p, ok := data.project(id); ok {
			m.projectBoard.SetColumns(adapters.ProjectTaskColumns(p))
		} else {
			m.uiState.SetOpenProjectID("")
			m.projectBoard.SetColumns(nil)
		}
	}

	m.uiState.ClampListCursor(freelancingTab, len(data.Projects))
	m.uiState.ClampListCursor(universityTab, len(data.Subjects))
	m.uiState.ClampListCursor(notesTab, len(data.Notes))

	if m.followID != "" {
		m.taskBoard.SelectItem(m.followID)
		m.learningBoard.SelectItem(m.followID)
		m.projectBoard.SelectItem(m.followID)
		m.followID = ""
	}

	m.refreshDetail()
}

// isBoardTab reports whether the active tab currently shows a board
func (m Model) isBoardTab() bool {
	switch m.uiState.ActiveTab() {
	case tasksTab, programmingTab:
		return true
	case freelancingTab:
		return m.uiState.OpenProjectID() != ""
	}
	return false
}

// dragging reports whether any board has a gesture in progress
func (m Model) dragging() bool {
	return m.taskBoard.Drag().Active() ||
		m.learningBoard.Drag().Active() ||
		m.projectBoard.Drag().Active()
}
