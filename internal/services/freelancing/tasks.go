package freelancing

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/thenoetrevino/lifeos/internal/models"
	"github.com/thenoetrevino/lifeos/internal/storage"
)

// AddTask appends a task to a project's board
func (s *service) AddTask(ctx context.Context, req AddTaskRequest) (*models.ProjectTask, error) {
	task := models.ProjectTask{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		CreatedAt:   s.now(),
	}
	if task.Status == "" {
		task.Status = models.ProjectTaskTodo
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if err := validateTask(task); err != nil {
		return nil, err
	}

	err := s.withProject(ctx, req.ProjectID, func(p *models.FreelanceProject) error {
		p.Tasks = append(p.Tasks, task)
		p.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask applies the non-nil fields of req
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.ProjectTask, error) {
	var result models.ProjectTask
	err := s.withTask(ctx, req.ProjectID, req.TaskID, func(p *models.FreelanceProject, i int) error {
		task := p.Tasks[i]
		if req.Title != nil {
			task.Title = strings.TrimSpace(*req.Title)
		}
		if req.Description != nil {
			task.Description = *req.Description
		}
		if req.Priority != nil {
			task.Priority = *req.Priority
		}
		if err := validateTask(task); err != nil {
			return err
		}
		task.UpdatedAt = s.now()
		p.Tasks[i] = task
		result = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteTask removes a task from its project
func (s *service) DeleteTask(ctx context.Context, projectID, taskID string) error {
	return s.withTask(ctx, projectID, taskID, func(p *models.FreelanceProject, i int) error {
		p.Tasks = slices.Delete(p.Tasks, i, i+1)
		p.UpdatedAt = s.now()
		return nil
	})
}

// MoveTask changes a task's board column and reports whether anything changed
func (s *service) MoveTask(ctx context.Context, projectID, taskID string, status models.ProjectTaskStatus) (bool, error) {
	if !slices.Contains(models.ProjectTaskStatuses, status) {
		return false, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	changed := false
	err := s.withTask(ctx, projectID, taskID, func(p *models.FreelanceProject, i int) error {
		if p.Tasks[i].Status == status {
			return storage.ErrUnchanged
		}
		now := s.now()
		p.Tasks[i].Status = status
		p.Tasks[i].UpdatedAt = now
		p.UpdatedAt = now
		changed = true
		return nil
	})
	return changed, err
}

func (s *service) withTask(ctx context.Context, projectID, taskID string, fn func(*models.FreelanceProject, int) error) error {
	if taskID == "" {
		return ErrInvalidTaskID
	}
	return s.withProject(ctx, projectID, func(p *models.FreelanceProject) error {
		i := slices.IndexFunc(p.Tasks, func(t models.ProjectTask) bool { return t.ID == taskID })
		if i < 0 {
			return ErrTaskNotFound
		}
		return fn(p, i)
	})
}

func validateTask(task models.ProjectTask) error {
	if task.Title == "" {
		return ErrEmptyTitle
	}
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTask, err)
	}
	return nil
}
