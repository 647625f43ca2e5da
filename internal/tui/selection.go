package tui

import (
	"fmt"
	"slices"

	"github.com/thenoetrevino/lifeos/internal/adapters"
	"github.com/thenoetrevino/lifeos/internal/models"
	"github.com/thenoetrevino/lifeos/internal/viewmodel"
)

// selection is the item under the cursor of the active tab with its card
// and the operations the item supports. Unsupported operations are nil.
type selection struct {
	id    string
	props viewmodel.CardProps

	open     func()
	edit     func()
	advance  func()
	pin      func()
	remove   func()
	increase func()
	decrease func()
}

func call[T any](fn func(T), v T) func() {
	if fn == nil {
		return nil
	}
	return func() { fn(v) }
}

// selected returns the item under the cursor of the active tab
func (m Model) selected() (selection, bool) {
	switch m.uiState.ActiveTab() {
	case tasksTab:
		t, ok := m.taskBoard.Selected()
		if !ok {
			return selection{}, false
		}
		h := m.taskHandlers()
		return selection{
			id:      t.ID,
			props:   adapters.TaskCard(t, m.app.Now(), h),
			open:    call(h.OnOpen, t),
			edit:    call(h.OnEdit, t),
			advance: call(h.OnAdvance, t),
			remove:  call(h.OnDelete, t),
		}, true

	case programmingTab:
		item, ok := m.learningBoard.Selected()
		if !ok {
			return selection{}, false
		}
		h := m.learningHandlers()
		return selection{
			id:       item.ID,
			props:    adapters.LearningItemCard(item, h),
			edit:     call(h.OnEdit, item),
			advance:  call(h.OnAdvance, item),
			remove:   call(h.OnDelete, item),
			increase: func() { m.queue.push(m.stepProgress(item, progressStep)) },
			decrease: func() { m.queue.push(m.stepProgress(item, -progressStep)) },
		}, true

	case freelancingTab:
		if m.uiState.OpenProjectID() != "" {
			t, ok := m.projectBoard.Selected()
			if !ok {
				return selection{}, false
			}
			h := m.projectTaskHandlers()
			return selection{
				id:      t.ID,
				props:   adapters.ProjectTaskCard(t, h),
				edit:    call(h.OnEdit, t),
				advance: call(h.OnAdvance, t),
				remove:  call(h.OnDelete, t),
			}, true
		}
		i := m.uiState.ListCursor(freelancingTab)
		if i >= len(m.data.Projects) {
			return selection{}, false
		}
		p := m.data.Projects[i]
		h := m.projectHandlers()
		return selection{
			id:     p.ID,
			props:  adapters.ProjectCard(p, h),
			open:   call(h.OnOpen, p),
			edit:   call(h.OnEdit, p),
			remove: call(h.OnDelete, p),
		}, true

	case universityTab:
		i := m.uiState.ListCursor(universityTab)
		if i >= len(m.data.Subjects) {
			return selection{}, false
		}
		s := m.data.Subjects[i]
		h := m.subjectHandlers()
		return selection{
			id:     s.ID,
			props:  adapters.SubjectCard(s, m.data.Grades[s.ID], h),
			open:   call(h.OnOpen, s),
			edit:   call(h.OnEdit, s),
			remove: call(h.OnDelete, s),
		}, true

	case notesTab:
		i := m.uiState.ListCursor(notesTab)
		if i >= len(m.data.Notes) {
			return selection{}, false
		}
		n := m.data.Notes[i]
		h := m.noteHandlers()
		return selection{
			id:     n.ID,
			props:  adapters.NoteCard(n, h),
			open:   call(h.OnOpen, n),
			edit:   call(h.OnEdit, n),
			pin:    call(h.OnTogglePin, n),
			remove: call(h.OnDelete, n),
		}, true
	}
	return selection{}, false
}

// ============================================================================
// CARD HANDLERS
// ============================================================================

func (m Model) taskHandlers() adapters.Handlers[models.Task] {
	return adapters.Handlers[models.Task]{
		OnOpen: func(t models.Task) { m.openDetail(detailTask, t.ID) },
		OnEdit: func(t models.Task) { m.queue.push(m.openEditTask(t)) },
		OnAdvance: func(t models.Task) {
			if next, ok := adapters.NextTaskStatus(t.Status); ok {
				m.queue.push(m.moveTask(t.ID, next))
			}
		},
		OnDelete: func(t models.Task) {
			m.confirmDelete(fmt.Sprintf("Delete task %q?", t.Title), m.deleteTask(t))
		},
	}
}

func (m Model) learningHandlers() adapters.Handlers[models.LearningItem] {
	return adapters.Handlers[models.LearningItem]{
		OnEdit:    func(item models.LearningItem) { m.queue.push(m.openEditLearning(item)) },
		OnAdvance: func(item models.LearningItem) { m.queue.push(m.stepProgress(item, progressStep)) },
		OnDelete: func(item models.LearningItem) {
			m.confirmDelete(fmt.Sprintf("Delete %q?", item.Title), m.deleteLearningItem(item))
		},
	}
}

func (m Model) projectTaskHandlers() adapters.Handlers[models.ProjectTask] {
	projectID := m.uiState.OpenProjectID()
	return adapters.Handlers[models.ProjectTask]{
		OnEdit: func(t models.ProjectTask) { m.queue.push(m.openEditProjectTask(projectID, t)) },
		OnAdvance: func(t models.ProjectTask) {
			i := slices.Index(models.ProjectTaskStatuses, t.Status)
			if i >= 0 && i < len(models.ProjectTaskStatuses)-1 {
				m.queue.push(m.moveProjectTask(projectID, t.ID, models.ProjectTaskStatuses[i+1]))
			}
		},
		OnDelete: func(t models.ProjectTask) {
			m.confirmDelete(fmt.Sprintf("Delete task %q?", t.Title), m.deleteProjectTask(projectID, t))
		},
	}
}

func (m Model) projectHandlers() adapters.Handlers[models.FreelanceProject] {
	return adapters.Handlers[models.FreelanceProject]{
		OnOpen: m.openProject,
		OnEdit: func(p models.FreelanceProject) { m.queue.push(m.openEditProject(p)) },
		OnDelete: func(p models.FreelanceProject) {
			m.confirmDelete(fmt.Sprintf("Delete project %q and its %d tasks?", p.Name, len(p.Tasks)), m.deleteProject(p))
		},
	}
}

func (m Model) subjectHandlers() adapters.Handlers[models.Subject] {
	return adapters.Handlers[models.Subject]{
		OnOpen: func(s models.Subject) { m.openDetail(detailSubject, s.ID) },
		OnEdit: func(s models.Subject) { m.queue.push(m.openEditSubject(s)) },
		OnDelete: func(s models.Subject) {
			m.confirmDelete(fmt.Sprintf("Delete %q with all its exams and grades?", s.Name), m.deleteSubject(s))
		},
	}
}

func (m Model) noteHandlers() adapters.Handlers[models.Note] {
	return adapters.Handlers[models.Note]{
		OnOpen:      func(n models.Note) { m.openDetail(detailNote, n.ID) },
		OnEdit:      func(n models.Note) { m.queue.push(m.openEditNote(n)) },
		OnTogglePin: func(n models.Note) { m.queue.push(m.togglePin(n)) },
		OnDelete: func(n models.Note) {
			m.confirmDelete(fmt.Sprintf("Delete note %q?", n.Title), m.deleteNote(n))
		},
	}
}

// openProject shows a freelance project's task board
func (m Model) openProject(p models.FreelanceProject) {
	m.uiState.SetOpenProjectID(p.ID)
	m.projectBoard.SetColumns(adapters.ProjectTaskColumns(p))
	m.projectBoard.SetCursor(0, 0)
}

// closeProject returns the freelancing tab to its project list
func (m Model) closeProject() {
	if m.projectBoard.Drag().Active() {
		_ = m.projectBoard.Cancel()
	}
	m.uiState.SetOpenProjectID("")
}
