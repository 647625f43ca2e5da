package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FreelanceStatus is the lifecycle stage of a client project
type FreelanceStatus string

const (
	FreelanceLead      FreelanceStatus = "lead"
	FreelanceActive    FreelanceStatus = "active"
	FreelanceOnHold    FreelanceStatus = "on-hold"
	FreelanceCompleted FreelanceStatus = "completed"
)

// FreelanceStatuses lists project statuses in lifecycle order
var FreelanceStatuses = []FreelanceStatus{FreelanceLead, FreelanceActive, FreelanceOnHold, FreelanceCompleted}

// ProjectTaskStatus is the board column a project task lives in
type ProjectTaskStatus string

const (
	ProjectTaskTodo       ProjectTaskStatus = "todo"
	ProjectTaskInProgress ProjectTaskStatus = "in-progress"
	ProjectTaskReview     ProjectTaskStatus = "review"
	ProjectTaskDone       ProjectTaskStatus = "done"
)

// ProjectTaskStatuses lists the statuses in board order
var ProjectTaskStatuses = []ProjectTaskStatus{ProjectTaskTodo, ProjectTaskInProgress, ProjectTaskReview, ProjectTaskDone}

// ProjectTask is a unit of work inside a freelancing project
type ProjectTask struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Status      ProjectTaskStatus `json:"status"`
	Priority    Priority          `json:"priority,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt,omitzero"`
}

// Validate checks the project task's fields
func (t ProjectTask) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&t.Status, validation.Required, validation.In(
			ProjectTaskTodo, ProjectTaskInProgress, ProjectTaskReview, ProjectTaskDone,
		)),
		validation.Field(&t.Priority, validation.In(PriorityLow, PriorityMedium, PriorityHigh)),
	)
}

// FreelanceProject is a client engagement with its own task board
type FreelanceProject struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Client      string          `json:"client,omitempty"`
	Description string          `json:"description,omitempty"`
	Status      FreelanceStatus `json:"status"`
	HourlyRate  float64         `json:"hourlyRate,omitempty"`
	Budget      float64         `json:"budget,omitempty"`
	Deadline    *time.Time      `json:"deadline,omitempty"`
	Tasks       []ProjectTask   `json:"tasks"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt,omitzero"`
}

// Validate checks the project's own fields; tasks validate separately
func (p FreelanceProject) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&p.Status, validation.Required, validation.In(
			FreelanceLead, FreelanceActive, FreelanceOnHold, FreelanceCompleted,
		)),
		validation.Field(&p.HourlyRate, validation.Min(0.0)),
		validation.Field(&p.Budget, validation.Min(0.0)),
	)
}

// Progress returns the share of done tasks as a percentage.
// A project without tasks has 0 progress.
func (p FreelanceProject) Progress() float64 {
	if len(p.Tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range p.Tasks {
		if t.Status == ProjectTaskDone {
			done++
		}
	}
	return float64(done) / float64(len(p.Tasks)) * 100
}

// FreelancingData is the document stored under FreelancingKey
type FreelancingData struct {
	Projects []FreelanceProject `json:"projects"`
}
