package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/lifeos/internal/app"
	"github.com/thenoetrevino/lifeos/internal/grades"
	"github.com/thenoetrevino/lifeos/internal/models"
)

// loadTimeout bounds one full reload of every document
const loadTimeout = 5 * time.Second

// snapshot is everything the tabs render, loaded in one pass
type snapshot struct {
	Tasks    []models.Task
	Projects []models.FreelanceProject
	Learning []models.LearningItem
	Subjects []models.Subject
	Exams    map[string][]models.Exam
	Entries  map[string][]models.GradeEntry
	Grades   map[string]grades.Calculation
	Notes    []models.Note
}

func emptySnapshot() *snapshot {
	return &snapshot{
		Exams:   map[string][]models.Exam{},
		Entries: map[string][]models.GradeEntry{},
		Grades:  map[string]grades.Calculation{},
	}
}

// project returns the freelance project with id
func (s *snapshot) project(id string) (models.FreelanceProject, bool) {
	for _, p := range s.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return models.FreelanceProject{}, false
}

// dataLoadedMsg carries a fresh snapshot, or the error that stopped the load
type dataLoadedMsg struct {
	data *snapshot
	err  error
}

// loadData reads every document through the services
func loadData(a *app.App) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		data, err := fetchSnapshot(ctx, a)
		return dataLoadedMsg{data: data, err: err}
	}
}

func fetchSnapshot(ctx context.Context, a *app.App) (*snapshot, error) {
	data := emptySnapshot()
	var err error

	if data.Tasks, err = a.TaskService.ListTasks(ctx); err != nil {
		return nil, err
	}
	if data.Projects, err = a.FreelancingService.ListProjects(ctx); err != nil {
		return nil, err
	}
	if data.Learning, err = a.ProgrammingService.ListLearningItems(ctx); err != nil {
		return nil, err
	}
	if data.Subjects, err = a.UniversityService.ListSubjects(ctx); err != nil {
		return nil, err
	}
	exams, err := a.UniversityService.ListExams(ctx, "")
	if err != nil {
		return nil, err
	}
	entries, err := a.UniversityService.ListEntries(ctx, "")
	if err != nil {
		return nil, err
	}
	if data.Notes, err = a.NoteService.ListNotes(ctx); err != nil {
		return nil, err
	}

	for _, e := range exams {
		data.Exams[e.SubjectID] = append(data.Exams[e.SubjectID], e)
	}
	for _, g := range entries {
		data.Entries[g.SubjectID] = append(data.Entries[g.SubjectID], g)
	}
	for _, s := range data.Subjects {
		data.Grades[s.ID] = grades.Calculate(data.Exams[s.ID], data.Entries[s.ID])
	}
	return data, nil
}
