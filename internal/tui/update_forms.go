package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/lifeos/internal/models"
	"github.com/thenoetrevino/lifeos/internal/tui/huhforms"
	"github.com/thenoetrevino/lifeos/internal/tui/state"
)

// maxFormWidth keeps forms readable on wide terminals
const maxFormWidth = 72

func (m Model) formWidth() int {
	return max(min(m.uiState.Width()-8, maxFormWidth), 20)
}

// textLines sizes multi-line fields to the terminal
func (m Model) textLines() int {
	return max(min(m.uiState.Height()/4, 10), 3)
}

// openForm shows form until it is completed or discarded. submit runs only
// when the user confirms.
func (m Model) openForm(title string, form *huh.Form, confirm *bool, submit func() tea.Cmd) tea.Cmd {
	form = form.WithTheme(m.theme).WithWidth(m.formWidth())
	m.formState.Open(title, form, confirm, submit, m.uiState.Mode())
	m.uiState.SetMode(state.FormMode)
	return form.Init()
}

// updateForm handles all messages while a form is open
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	fs := m.formState
	if fs.Form == nil {
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.SaveForm):
			if fs.Confirm != nil {
				*fs.Confirm = true
			}
			fs.Form.State = huh.StateCompleted
			return m, m.closeForm()
		case keyMsg.String() == "esc":
			fs.Form.State = huh.StateAborted
			return m, m.closeForm()
		}
	}

	model, cmd := fs.Form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		fs.Form = form
	}

	switch fs.Form.State {
	case huh.StateCompleted, huh.StateAborted:
		return m, m.closeForm()
	}
	return m, cmd
}

// closeForm leaves FormMode and submits a completed, confirmed form
func (m Model) closeForm() tea.Cmd {
	fs := m.formState
	completed := fs.Form != nil && fs.Form.State == huh.StateCompleted
	submit := fs.Submit
	confirmed := fs.Confirmed()

	m.uiState.SetMode(fs.ReturnMode)
	fs.Clear()

	if completed && confirmed && submit != nil {
		return submit()
	}
	return nil
}

// openAddForm opens the add form of the active tab. On boards the new item
// starts in the selected column.
func (m Model) openAddForm() tea.Cmd {
	switch m.uiState.ActiveTab() {
	case tasksTab:
		status := models.TaskTodo
		if col, ok := m.taskBoard.SelectedColumn(); ok {
			status = models.TaskStatus(col.ID)
		}
		return m.openAddTask(status)
	case programmingTab:
		status := models.LearningPlanned
		if col, ok := m.learningBoard.SelectedColumn(); ok {
			status = models.LearningStatus(col.ID)
		}
		return m.openAddLearning(status)
	case freelancingTab:
		if id := m.uiState.OpenProjectID(); id != "" {
			status := models.ProjectTaskTodo
			if col, ok := m.projectBoard.SelectedColumn(); ok {
				status = models.ProjectTaskStatus(col.ID)
			}
			return m.openAddProjectTask(id, status)
		}
		return m.openAddProject()
	case universityTab:
		return m.openAddSubject()
	case notesTab:
		return m.openAddNote()
	}
	return nil
}

// ============================================================================
// TASK FORMS
// ============================================================================

func (m Model) openAddTask(status models.TaskStatus) tea.Cmd {
	d := huhforms.NewTaskDraft()
	return m.openForm("New Task", huhforms.CreateTaskForm(d, true, m.textLines()), &d.Confirm, func() tea.Cmd {
		return m.runFollow(func(ctx context.Context) (string, string, error) {
			req, err := d.CreateRequest(status)
			if err != nil {
				return "", "", err
			}
			t, err := m.app.TaskService.CreateTask(ctx, req)
			if err != nil {
				return "", "", err
			}
			return t.ID, fmt.Sprintf("Created %q", t.Title), nil
		})
	})
}

func (m Model) openEditTask(t models.Task) tea.Cmd {
	d := huhforms.TaskDraftFrom(t)
	return m.openForm("Edit Task", huhforms.CreateTaskForm(d, true, m.textLines()), &d.Confirm, func() tea.Cmd {
		return m.runFollow(func(ctx context.Context) (string, string, error) {
			req, err := d.UpdateRequest(t.ID)
			if err != nil {
				return "", "", err
			}
			if _, err := m.app.TaskService.UpdateTask(ctx, req); err != nil {
				return "", "", err
			}
			return t.ID, "Task updated", nil
		})
	})
}

func (m Model) openAddProjectTask(projectID string, status models.ProjectTaskStatus) tea.Cmd {
	d := huhforms.NewTaskDraft()
	return m.openForm("New Project Task", huhforms.CreateTaskForm(d, false, m.textLines()), &d.Confirm, func() tea.Cmd {
		return m.runFollow(func(ctx context.Context) (string, string, error) {
			t, err := m.app.FreelancingService.AddTask(ctx, d.AddProjectTaskRequest(projectID, status))
			if err != nil {
				return "", "", err
			}
			return t.ID, fmt.Sprintf("Created %q", t.Title), nil
		})
	})
}

func (m Model) openEditProjectTask(projectID string, t models.ProjectTask) tea.Cmd {
	d := huhforms.ProjectTaskDraftFrom(t)
	return m.openForm("Edit Project Task", huhforms.CreateTaskForm(d, false, m.textLines()), &d.Confirm, func() tea.Cmd {
		return m.runFollow(func(ctx context.Context) (string, string, error) {
			if _, err := m.app.FreelancingService.UpdateTask(ctx, d.UpdateProjectTaskRequest(projectID, t.ID)); err != nil {
				return "", "", err
			}
			return t.ID, "Task updated", nil
		})
	})
}

// ============================================================================
// PROJECT AND LEARNING FORMS
// ============================================================================

func (m Model) openAddProject() tea.Cmd {
	d := huhforms.NewProjectDraft()
	return m.openForm("New Project", huhforms.CreateProjectForm(d), &d.Confirm, func() tea.Cmd {
		return m.run(func(ctx context.Context) (string, error) {
			req, err := d.CreateRequest()
			if err != nil {
				return "", err
			}
			p, err := m.app.FreelancingService.CreateProject(ctx, req)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Created project %q", p.Name), nil
		})
	})
}

func (m Model) openEditProject(p models.FreelanceProject) tea.Cmd {
	d := huhforms.ProjectDraftFrom(p)
	return m.openForm("Edit Project", huhforms.CreateProjectForm(d), &d.Confirm, func() tea.Cmd {
		return m.run(func(ctx context.Context) (string, error) {
			req, err := d.UpdateRequest(p.ID)
			if err != nil {
				return "", err
			}
			if _, err := m.app.FreelancingService.UpdateProject(ctx, req); err != nil {
				return "", err
			}
			return "Project updated", nil
		})
	})
}

func (m Model) openAddLearning(status models.LearningStatus) tea.Cmd {
	d := huhforms.NewLearningDraft()
	return m.openForm("New Learning Item", huhforms.CreateLearningForm(d), &d.Confirm, func() tea.Cmd {
		return m.runFollow(func(ctx context.Context) (string, string, error) {
			item, err := m.app.ProgrammingService.CreateLearningItem(ctx, d.CreateRequest(status))
			if err != nil {
				return "", "", err
			}
			return item.ID, fmt.Sprintf("Created %q", item.Title), nil
		})
	})
}

func (m Model) openEditLearning(item models.LearningItem) tea.Cmd {
	d := huhforms.LearningDraftFrom(item)
	return m.openForm("Edit Learning Item", huhforms.CreateLearningForm(d), &d.Confirm, func() tea.Cmd {
		return m.runFollow(func(ctx context.Context) (string, string, error) {
			if _, err := m.app.ProgrammingService.UpdateLearningItem(ctx, d.UpdateRequest(item.ID)); err != nil {
				return "", "", err
			}
			return item.ID, "Learning item updated", nil
		})
	})
}

// ============================================================================
// UNIVERSITY FORMS
// ============================================================================

func (m Model) openAddSubject() tea.Cmd {
	d := huhforms.NewSubjectDraft()
	return m.openForm("New Subject", huhforms.CreateSubjectForm(d), &d.Confirm, func() tea.Cmd {
		return m.run(func(ctx context.Context) (string, error) {
			req, err := d.CreateRequest()
			if err != nil {
				return "", err
			}
			s, err := m.app.UniversityService.CreateSubject(ctx, req)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Created %q", s.Name), nil
		})
	})
}

func (m Model) openEditSubject(s models.Subject) tea.Cmd {
	d := huhforms.SubjectDraftFrom(s)
	return m.openForm("Edit Subject", huhforms.CreateSubjectForm(d), &d.Confirm, func() tea.Cmd {
		return m.run(func(ctx context.Context) (string, error) {
			req, err := d.UpdateRequest(s.ID)
			if err != nil {
				return "", err
			}
			if _, err := m.app.UniversityService.UpdateSubject(ctx, req); err != nil {
				return "", err
			}
			return "Subject updated", nil
		})
	})
}

func (m Model) openAddExam(subjectID string) tea.Cmd {
	d := huhforms.NewExamDraft()
	return m.openForm("New Exam", huhforms.CreateExamForm(d), &d.Confirm, func() tea.Cmd {
		return m.run(func(ctx context.Context) (string, error) {
			req, err := d.CreateRequest(subjectID)
			if err != nil {
				return "", err
			}
			e, err := m.app.UniversityService.CreateExam(ctx, req)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Added exam %q", e.Title), nil
		})
	})
}

func (m Model) openAddEntry(subjectID string) tea.Cmd {
	d := huhforms.NewEntryDraft()
	return m.openForm("New Grade Entry", huhforms.CreateEntryForm(d), &d.Confirm, func() tea.Cmd {
		return m.run(func(ctx context.Context) (string, error) {
			req, err := d.CreateRequest(subjectID)
			if err != nil {
				return "", err
			}
			g, err := m.app.UniversityService.CreateEntry(ctx, req)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Recorded %q", g.Title), nil
		})
	})
}

// ============================================================================
// NOTE FORMS
// ============================================================================

func (m Model) openAddNote() tea.Cmd {
	d := huhforms.NewNoteDraft()
	return m.openForm("New Note", huhforms.CreateNoteForm(d, m.textLines()*2), &d.Confirm, func() tea.Cmd {
		return m.run(func(ctx context.Context) (string, error) {
			n, err := m.app.NoteService.CreateNote(ctx, d.CreateRequest())
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Created %q", n.Title), nil
		})
	})
}

func (m Model) openEditNote(n models.Note) tea.Cmd {
	d := huhforms.NoteDraftFrom(n)
	return m.openForm("Edit Note", huhforms.CreateNoteForm(d, m.textLines()*2), &d.Confirm, func() tea.Cmd {
		return m.run(func(ctx context.Context) (string, error) {
			if _, err := m.app.NoteService.UpdateNote(ctx, d.UpdateRequest(n.ID)); err != nil {
				return "", err
			}
			return "Note updated", nil
		})
	})
}
