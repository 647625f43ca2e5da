package task

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/lifeos/internal/models"
	"github.com/thenoetrevino/lifeos/internal/storage"
)

// Service defines all standalone task operations
type Service interface {
	// Read operations
	ListTasks(ctx context.Context) ([]models.Task, error)
	GetTask(ctx context.Context, id string) (*models.Task, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, id string) error

	// MoveToStatus moves a task to another board column. It reports whether
	// anything changed; moving to the current status writes nothing.
	MoveToStatus(ctx context.Context, id string, status models.TaskStatus) (bool, error)
}

// CreateTaskRequest encapsulates data for creating a task
type CreateTaskRequest struct {
	Title       string
	Description string
	Status      models.TaskStatus // Optional: empty means todo
	Priority    models.Priority   // Optional: empty means medium
	DueDate     *time.Time
}

// UpdateTaskRequest encapsulates data for updating a task.
// Nil fields are left unchanged.
type UpdateTaskRequest struct {
	ID           string
	Title        *string
	Description  *string
	Status       *models.TaskStatus
	Priority     *models.Priority
	DueDate      *time.Time
	ClearDueDate bool
}

type service struct {
	doc *storage.Document[models.TasksData]
	now func() time.Time
}

// NewService creates a task service persisting to store. now may be nil.
func NewService(store storage.KV, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{
		doc: storage.NewDocument[models.TasksData](store, storage.TasksKey),
		now: now,
	}
}

// ListTasks returns every task in stored order
func (s *service) ListTasks(ctx context.Context) ([]models.Task, error) {
	data, err := s.doc.Load(ctx)
	if err != nil {
		return nil, err
	}
	return data.Tasks, nil
}

// GetTask retrieves a single task
func (s *service) GetTask(ctx context.Context, id string) (*models.Task, error) {
	if id == "" {
		return nil, ErrInvalidTaskID
	}
	data, err := s.doc.Load(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(data.Tasks, id)
	if i < 0 {
		return nil, ErrTaskNotFound
	}
	task := data.Tasks[i]
	return &task, nil
}

// CreateTask validates and stores a new task
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	task := models.Task{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		CreatedAt:   s.now(),
	}
	if task.Status == "" {
		task.Status = models.TaskTodo
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if err := validate(task); err != nil {
		return nil, err
	}

	err := s.doc.Update(ctx, func(data *models.TasksData) error {
		data.Tasks = append(data.Tasks, task)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &task, nil
}

// UpdateTask applies the non-nil fields of req
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error) {
	if req.ID == "" {
		return nil, ErrInvalidTaskID
	}

	var updated models.Task
	err := s.doc.Update(ctx, func(data *models.TasksData) error {
		i := indexOf(data.Tasks, req.ID)
		if i < 0 {
			return ErrTaskNotFound
		}
		task := data.Tasks[i]
		if req.Title != nil {
			task.Title = strings.TrimSpace(*req.Title)
		}
		if req.Description != nil {
			task.Description = *req.Description
		}
		if req.Status != nil {
			task.Status = *req.Status
		}
		if req.Priority != nil {
			task.Priority = *req.Priority
		}
		if req.DueDate != nil {
			task.DueDate = req.DueDate
		}
		if req.ClearDueDate {
			task.DueDate = nil
		}
		if err := validate(task); err != nil {
			return err
		}
		task.UpdatedAt = s.now()
		data.Tasks[i] = task
		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTask removes a task
func (s *service) DeleteTask(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidTaskID
	}
	return s.doc.Update(ctx, func(data *models.TasksData) error {
		i := indexOf(data.Tasks, id)
		if i < 0 {
			return ErrTaskNotFound
		}
		data.Tasks = slices.Delete(data.Tasks, i, i+1)
		return nil
	})
}

// MoveToStatus is the persistence side of a board drop
func (s *service) MoveToStatus(ctx context.Context, id string, status models.TaskStatus) (bool, error) {
	if id == "" {
		return false, ErrInvalidTaskID
	}
	if !slices.Contains(models.TaskStatuses, status) {
		return false, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	changed := false
	err := s.doc.Update(ctx, func(data *models.TasksData) error {
		i := indexOf(data.Tasks, id)
		if i < 0 {
			return ErrTaskNotFound
		}
		if data.Tasks[i].Status == status {
			return storage.ErrUnchanged
		}
		data.Tasks[i].Status = status
		data.Tasks[i].UpdatedAt = s.now()
		changed = true
		return nil
	})
	return changed, err
}

func validate(task models.Task) error {
	if task.Title == "" {
		return ErrEmptyTitle
	}
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTask, err)
	}
	return nil
}

func indexOf(tasks []models.Task, id string) int {
	return slices.IndexFunc(tasks, func(t models.Task) bool { return t.ID == id })
}
