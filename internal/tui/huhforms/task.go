package huhforms

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/lifeos/internal/models"
	"github.com/thenoetrevino/lifeos/internal/services/freelancing"
	"github.com/thenoetrevino/lifeos/internal/services/task"
)

// TaskDraft holds the fields of a standalone task or a freelance project task
type TaskDraft struct {
	Title       string
	Description string
	Priority    string
	Due         string
	Confirm     bool
}

// NewTaskDraft returns an empty draft with medium priority
func NewTaskDraft() *TaskDraft {
	return &TaskDraft{Priority: string(models.PriorityMedium), Confirm: true}
}

// TaskDraftFrom prefills a draft from an existing task
func TaskDraftFrom(t models.Task) *TaskDraft {
	return &TaskDraft{
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		Due:         formatDate(t.DueDate),
		Confirm:     true,
	}
}

// ProjectTaskDraftFrom prefills a draft from a freelance project task
func ProjectTaskDraftFrom(t models.ProjectTask) *TaskDraft {
	return &TaskDraft{
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		Confirm:     true,
	}
}

// CreateTaskForm creates a huh form for adding/editing a task. Project
// tasks have no due date, so withDue hides that field.
func CreateTaskForm(d *TaskDraft, withDue bool, descriptionLines int) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter task title...").
			Validate(required("title")).
			Value(&d.Title),

		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Enter task description...").
			CharLimit(5000).
			Lines(descriptionLines).
			Value(&d.Description),

		huh.NewSelect[string]().
			Key("priority").
			Title("Priority").
			Options(options(models.Priorities)...).
			Value(&d.Priority),
	}
	if withDue {
		fields = append(fields,
			huh.NewInput().
				Key("due").
				Title("Due date (optional)").
				Placeholder(DateLayout).
				Validate(validDate).
				Value(&d.Due),
		)
	}
	return newForm("Save this task?", &d.Confirm, fields...)
}

// CreateRequest converts the draft into a new task in status
func (d *TaskDraft) CreateRequest(status models.TaskStatus) (task.CreateTaskRequest, error) {
	due, err := parseDate(d.Due)
	if err != nil {
		return task.CreateTaskRequest{}, err
	}
	return task.CreateTaskRequest{
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		Status:      status,
		Priority:    models.Priority(d.Priority),
		DueDate:     due,
	}, nil
}

// UpdateRequest converts the draft into an update of task id. An empty due
// field clears the due date.
func (d *TaskDraft) UpdateRequest(id string) (task.UpdateTaskRequest, error) {
	due, err := parseDate(d.Due)
	if err != nil {
		return task.UpdateTaskRequest{}, err
	}
	title := strings.TrimSpace(d.Title)
	description := strings.TrimSpace(d.Description)
	priority := models.Priority(d.Priority)
	return task.UpdateTaskRequest{
		ID:           id,
		Title:        &title,
		Description:  &description,
		Priority:     &priority,
		DueDate:      due,
		ClearDueDate: due == nil,
	}, nil
}

// AddProjectTaskRequest converts the draft into a new task on a project board
func (d *TaskDraft) AddProjectTaskRequest(projectID string, status models.ProjectTaskStatus) freelancing.AddTaskRequest {
	return freelancing.AddTaskRequest{
		ProjectID:   projectID,
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		Status:      status,
		Priority:    models.Priority(d.Priority),
	}
}

// UpdateProjectTaskRequest converts the draft into an update of a project task
func (d *TaskDraft) UpdateProjectTaskRequest(projectID, taskID string) freelancing.UpdateTaskRequest {
	title := strings.TrimSpace(d.Title)
	description := strings.TrimSpace(d.Description)
	priority := models.Priority(d.Priority)
	return freelancing.UpdateTaskRequest{
		ProjectID:   projectID,
		TaskID:      taskID,
		Title:       &title,
		Description: &description,
		Priority:    &priority,
	}
}
