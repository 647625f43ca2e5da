package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/lifeos/internal/models"
)

// opResultMsg reports a finished write. An empty message means nothing
// changed and no notification is shown.
type opResultMsg struct {
	message  string
	followID string
	err      error
}

// dismissNotificationMsg removes a notification after it has been shown
type dismissNotificationMsg struct {
	id int
}

// run executes op off the UI goroutine and reports its outcome
func (m Model) run(op func(ctx context.Context) (string, error)) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		message, err := op(ctx)
		return opResultMsg{message: message, err: err}
	}
}

// runFollow is run for writes that create or edit an item; the cursor
// moves onto the returned id once the reload lands
func (m Model) runFollow(op func(ctx context.Context) (id, message string, err error)) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		id, message, err := op(ctx)
		return opResultMsg{message: message, followID: id, err: err}
	}
}

// ============================================================================
// STANDALONE TASKS
// ============================================================================

// moveTask and the other moves follow the item into its new column
func (m Model) moveTask(id string, status models.TaskStatus) tea.Cmd {
	return m.runFollow(func(ctx context.Context) (string, string, error) {
		changed, err := m.app.TaskService.MoveToStatus(ctx, id, status)
		if err != nil || !changed {
			return id, "", err
		}
		return id, fmt.Sprintf("Moved to %s", status), nil
	})
}

func (m Model) deleteTask(t models.Task) tea.Cmd {
	return m.run(func(ctx context.Context) (string, error) {
		if err := m.app.TaskService.DeleteTask(ctx, t.ID); err != nil {
			return "", err
		}
		return fmt.Sprintf("Deleted %q", t.Title), nil
	})
}

// ============================================================================
// LEARNING ITEMS
// ============================================================================

func (m Model) moveLearningItem(id string, status models.LearningStatus) tea.Cmd {
	return m.runFollow(func(ctx context.Context) (string, string, error) {
		changed, err := m.app.ProgrammingService.MoveLearningItem(ctx, id, status)
		if err != nil || !changed {
			return id, "", err
		}
		return id, fmt.Sprintf("Moved to %s", status), nil
	})
}

// stepProgress changes an item's progress by delta, clamped to 0..100
func (m Model) stepProgress(item models.LearningItem, delta int) tea.Cmd {
	progress := min(max(item.Progress+delta, 0), 100)
	if progress == item.Progress {
		return nil
	}
	// starting or finishing an item changes its column
	return m.runFollow(func(ctx context.Context) (string, string, error) {
		updated, err := m.app.ProgrammingService.UpdateProgress(ctx, item.ID, progress)
		if err != nil {
			return item.ID, "", err
		}
		return item.ID, fmt.Sprintf("%s: %d%%", updated.Title, updated.Progress), nil
	})
}

func (m Model) deleteLearningItem(item models.LearningItem) tea.Cmd {
	return m.run(func(ctx context.Context) (string, error) {
		if err := m.app.ProgrammingService.DeleteLearningItem(ctx, item.ID); err != nil {
			return "", err
		}
		return fmt.Sprintf("Deleted %q", item.Title), nil
	})
}

// ============================================================================
// FREELANCING
// ============================================================================

func (m Model) moveProjectTask(projectID, taskID string, status models.ProjectTaskStatus) tea.Cmd {
	return m.runFollow(func(ctx context.Context) (string, string, error) {
		changed, err := m.app.FreelancingService.MoveTask(ctx, projectID, taskID, status)
		if err != nil || !changed {
			return taskID, "", err
		}
		return taskID, fmt.Sprintf("Moved to %s", status), nil
	})
}

func (m Model) deleteProjectTask(projectID string, t models.ProjectTask) tea.Cmd {
	return m.run(func(ctx context.Context) (string, error) {
		if err := m.app.FreelancingService.DeleteTask(ctx, projectID, t.ID); err != nil {
			return "", err
		}
		return fmt.Sprintf("Deleted %q", t.Title), nil
	})
}

func (m Model) deleteProject(p models.FreelanceProject) tea.Cmd {
	return m.run(func(ctx context.Context) (string, error) {
		if err := m.app.FreelancingService.DeleteProject(ctx, p.ID); err != nil {
			return "", err
		}
		return fmt.Sprintf("Deleted project %q", p.Name), nil
	})
}

// ============================================================================
// UNIVERSITY
// ============================================================================

func (m Model) deleteSubject(s models.Subject) tea.Cmd {
	return m.run(func(ctx context.Context) (string, error) {
		if err := m.app.UniversityService.DeleteSubject(ctx, s.ID); err != nil {
			return "", err
		}
		return fmt.Sprintf("Deleted %q with its exams and grades", s.Name), nil
	})
}

// ============================================================================
// NOTES
// ============================================================================

func (m Model) togglePin(n models.Note) tea.Cmd {
	return m.run(func(ctx context.Context) (string, error) {
		updated, err := m.app.NoteService.TogglePin(ctx, n.ID)
		if err != nil {
			return "", err
		}
		if updated.Pinned {
			return "Pinned note", nil
		}
		return "Unpinned note", nil
	})
}

func (m Model) deleteNote(n models.Note) tea.Cmd {
	return m.run(func(ctx context.Context) (string, error) {
		if err := m.app.NoteService.DeleteNote(ctx, n.ID); err != nil {
			return "", err
		}
		return fmt.Sprintf("Deleted %q", n.Title), nil
	})
}
