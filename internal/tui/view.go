package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/lifeos/internal/adapters"
	"github.com/thenoetrevino/lifeos/internal/kanban"
	"github.com/thenoetrevino/lifeos/internal/models"
	"github.com/thenoetrevino/lifeos/internal/tui/components"
	"github.com/thenoetrevino/lifeos/internal/tui/notifications"
	"github.com/thenoetrevino/lifeos/internal/tui/state"
	"github.com/thenoetrevino/lifeos/internal/viewmodel"
)

// progressWidth is the width of the grade bar in the subject detail view
const progressWidth = 20

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() string {
	if m.uiState.Width() == 0 {
		return "Loading..."
	}

	switch m.uiState.Mode() {
	case state.FormMode:
		return m.viewForm()
	case state.HelpMode:
		return m.viewHelp()
	case state.DeleteConfirmMode:
		return m.viewDeleteConfirm()
	}

	var body string
	switch {
	case m.uiState.Mode() == state.DetailMode:
		body = m.viewDetail()
	case !m.loaded:
		body = components.SubtleStyle.Render("Loading...")
	default:
		body = m.viewTab()
	}
	body = lipgloss.NewStyle().Height(m.uiState.ContentHeight()).MaxHeight(m.uiState.ContentHeight()).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewTabBar(),
		body,
		components.RenderStatusBar(components.StatusBarProps{
			Width: m.uiState.Width(),
			Hint:  m.statusHint(),
		}),
	)
}

func (m Model) viewTabBar() string {
	var notification string
	if n, ok := m.notifications.Latest(); ok {
		notification = notifications.RenderInlineFromState(n, m.uiState.Width()/2)
	}
	return components.RenderTabs(tabTitles, m.uiState.ActiveTab(), m.uiState.Width(), notification)
}

func (m Model) statusHint() string {
	switch {
	case m.dragging():
		return fmt.Sprintf("%s drop · %s cancel · move with arrows",
			m.keys.PickUp.Help().Key, m.keys.CancelDrag.Help().Key)
	case m.uiState.Mode() == state.DetailMode:
		return fmt.Sprintf("%s edit · %s back · scroll with arrows",
			m.keys.Edit.Help().Key, m.keys.Back.Help().Key)
	}
	return m.help.ShortHelpView(m.keys.ShortHelp())
}

// viewTab renders the body of the active tab
func (m Model) viewTab() string {
	height := m.uiState.ContentHeight()
	switch m.uiState.ActiveTab() {
	case tasksTab:
		return renderBoard(m, m.taskBoard, height, m.taskCard, func(t models.Task) viewmodel.CardProps {
			return adapters.TaskOverlay(t, m.app.Now())
		})
	case programmingTab:
		return renderBoard(m, m.learningBoard, height, m.learningCard, func(item models.LearningItem) viewmodel.CardProps {
			p := adapters.LearningItemCard(item, adapters.Handlers[models.LearningItem]{})
			p.Actions = nil
			return p
		})
	case freelancingTab:
		if id := m.uiState.OpenProjectID(); id != "" {
			return m.viewProjectBoard(id, height)
		}
		return renderList(m, m.data.Projects, height, "No freelance projects. Press "+m.keys.Add.Help().Key+" to add one.",
			func(p models.FreelanceProject) viewmodel.CardProps {
				return adapters.ProjectCard(p, m.projectHandlers())
			})
	case universityTab:
		return renderList(m, m.data.Subjects, height, "No subjects. Press "+m.keys.Add.Help().Key+" to add one.",
			func(s models.Subject) viewmodel.CardProps {
				return adapters.SubjectCard(s, m.data.Grades[s.ID], m.subjectHandlers())
			})
	case notesTab:
		return renderList(m, m.data.Notes, height, "No notes. Press "+m.keys.Add.Help().Key+" to write one.",
			func(n models.Note) viewmodel.CardProps {
				return adapters.NoteCard(n, m.noteHandlers())
			})
	}
	return ""
}

func (m Model) taskCard(t models.Task) viewmodel.CardProps {
	return adapters.TaskCard(t, m.app.Now(), m.taskHandlers())
}

func (m Model) learningCard(item models.LearningItem) viewmodel.CardProps {
	return adapters.LearningItemCard(item, m.learningHandlers())
}

func (m Model) projectTaskCard(t models.ProjectTask) viewmodel.CardProps {
	return adapters.ProjectTaskCard(t, m.projectTaskHandlers())
}

func (m Model) viewProjectBoard(id string, height int) string {
	p, ok := m.data.project(id)
	if !ok {
		return components.SubtleStyle.Render("Project not found")
	}
	crumb := components.SubtleStyle.Render("Projects › ") + components.TitleStyle.Render(p.Name) +
		components.SubtleStyle.Render(fmt.Sprintf("  (%s to go back)", m.keys.Back.Help().Key))
	board := renderBoard(m, m.projectBoard, height-1, m.projectTaskCard, func(t models.ProjectTask) viewmodel.CardProps {
		props := adapters.ProjectTaskCard(t, adapters.Handlers[models.ProjectTask]{})
		props.Actions = nil
		return props
	})
	return crumb + "\n" + board
}

// renderBoard draws a board with only the columns that fit on screen
func renderBoard[T any](m Model, b *kanban.Board[T], height int, card, overlay func(T) viewmodel.CardProps) string {
	tab := m.uiState.ActiveTab()
	return components.RenderBoard(b, components.BoardProps[T]{
		RenderItem: func(item T, st kanban.ItemState, width int) string {
			props := card(item)
			props.Width = width
			focused := viewmodel.BodyTarget
			if st.Selected {
				focused = m.uiState.FocusedAction()
			}
			return components.RenderKanbanCard(props, st, focused)
		},
		DragOverlay: func(item T, width int) string {
			props := overlay(item)
			props.Width = width
			return components.RenderDragOverlay(props)
		},
		Height:         height,
		ColumnWidth:    components.DefaultColumnWidth,
		FirstColumn:    m.uiState.ViewportOffset(tab),
		VisibleColumns: m.uiState.ViewportSize(components.DefaultColumnWidth),
	})
}

// renderList draws the run of list cards around the cursor that fits in
// height
func renderList[T any](m Model, items []T, height int, empty string, card func(T) viewmodel.CardProps) string {
	cursor := m.uiState.ListCursor(m.uiState.ActiveTab())
	width := min(m.uiState.Width()-2, 100)

	rendered := make([]string, len(items))
	for i, item := range items {
		props := card(item)
		props.Width = width
		rendered[i] = components.RenderListCard(props, i == cursor)
	}
	first, last := listWindow(rendered, cursor, height)

	return components.RenderListView(components.ListViewProps[string]{
		Items:        rendered[first:last],
		RenderItem:   func(s string, _ bool) string { return s },
		EmptyMessage: empty,
	})
}

// listWindow returns the [first, last) range of blocks that fits in height
// and contains cursor
func listWindow(blocks []string, cursor, height int) (int, int) {
	if len(blocks) == 0 {
		return 0, 0
	}
	cursor = min(max(cursor, 0), len(blocks)-1)

	first := cursor
	used := lipgloss.Height(blocks[cursor])
	for first > 0 && used+lipgloss.Height(blocks[first-1]) <= height {
		first--
		used += lipgloss.Height(blocks[first])
	}
	last := cursor + 1
	for last < len(blocks) && used+lipgloss.Height(blocks[last]) <= height {
		used += lipgloss.Height(blocks[last])
		last++
	}
	return first, last
}

// ============================================================================
// OVERLAYS
// ============================================================================

func (m Model) centered(content string) string {
	return lipgloss.Place(m.uiState.Width(), m.uiState.Height(), lipgloss.Center, lipgloss.Center, content)
}

func (m Model) viewForm() string {
	fs := m.formState
	if fs.Form == nil {
		return ""
	}
	hint := components.SubtleStyle.Render(fmt.Sprintf("%s save · esc discard", m.keys.SaveForm.Help().Key))
	return m.centered(components.FormBoxStyle.Render(
		components.TitleStyle.Render(fs.Title) + "\n\n" + fs.Form.View() + "\n" + hint,
	))
}

func (m Model) viewHelp() string {
	h := m.help
	h.ShowAll = true
	return m.centered(components.HelpBoxStyle.Render(
		components.TitleStyle.Render("Keyboard shortcuts") + "\n\n" + h.View(m.keys),
	))
}

func (m Model) viewDeleteConfirm() string {
	message := "Delete this item?"
	if ctx := m.uiState.DeleteContext(); ctx != nil {
		message = ctx.Message
	}
	return m.centered(components.DeleteConfirmBoxStyle.Render(
		message + "\n\n" + components.SubtleStyle.Render("[y] delete  [n] cancel"),
	))
}

func (m Model) viewDetail() string {
	d := m.detail
	header := components.TitleStyle.Render(d.title) +
		components.SubtleStyle.Render(fmt.Sprintf("  %3.0f%%", d.viewport.ScrollPercent()*100))
	return header + "\n" + d.viewport.View()
}
