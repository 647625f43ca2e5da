package freelancing

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

// Service defines all freelancing project operations. Every project owns
// its own task board.
type Service interface {
	// Read operations
	ListProjects(ctx context.Context) ([]models.FreelanceProject, error)
	GetProject(ctx context.Context, id string) (*models.FreelanceProject, error)
	Progress(ctx context.Context, id string) (float64, error)

	// Project write operations
	CreateProject(ctx context.Context, req CreateProjectRequest) (*models.FreelanceProject, error)
	UpdateProject(ctx context.Context, req UpdateProjectRequest) (*models.FreelanceProject, error)
	DeleteProject(ctx context.Context, id string) error

	// Task operations
	AddTask(ctx context.Context, req AddTaskRequest) (*models.ProjectTask, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.ProjectTask, error)
	DeleteTask(ctx context.Context, projectID, taskID string) error
	MoveTask(ctx context.Context, projectID, taskID string, status models.ProjectTaskStatus) (bool, error)
}

// CreateProjectRequest encapsulates data for creating a project
type CreateProjectRequest struct {
	Name        string
	Client      string
	Description string
	Status      models.FreelanceStatus // Optional: empty means lead
	HourlyRate  float64
	Budget      float64
	Deadline    *time.Time
}

// UpdateProjectRequest encapsulates data for updating a project
type UpdateProjectRequest struct {
	ID            string
	Name          *string
	Client        *string
	Description   *string
	Status        *models.FreelanceStatus
	HourlyRate    *float64
	Budget        *float64
	Deadline      *time.Time
	ClearDeadline bool
}

// AddTaskRequest encapsulates data for adding a task to a project
type AddTaskRequest struct {
	ProjectID   string
	Title       string
	Description string
	Status      models.ProjectTaskStatus // Optional: empty means todo
	Priority    models.Priority          // Optional: empty means medium
}

// UpdateTaskRequest encapsulates data for updating a project task
type UpdateTaskRequest struct {
	ProjectID   string
	TaskID      string
	Title       *string
	Description *string
	Priority    *models.Priority
}

type service struct {
	doc *storage.Document[models.FreelancingData]
	now func() time.Time
}

// NewService creates a freelancing service persisting to store. now may be nil.
func NewService(store storage.KV, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{
		doc: storage.NewDocument[models.FreelancingData](store, storage.FreelancingKey),
		now: now,
	}
}

// ListProjects returns every project with its tasks
func (s *service) ListProjects(ctx context.Context) ([]models.FreelanceProject, error) {
	data, err := s.doc.Load(ctx)
	if err != nil {
		return nil, err
	}
	return data.Projects, nil
}

// GetProject retrieves a single project
func (s *service) GetProject(ctx context.Context, id string) (*models.FreelanceProject, error) {
	if id == "" {
		return nil, ErrInvalidProjectID
	}
	data, err := s.doc.Load(ctx)
	if err != nil {
		return nil, err
	}
	i := projectIndex(data.Projects, id)
	if i < 0 {
		return nil, ErrProjectNotFound
	}
	project := data.Projects[i]
	return &project, nil
}

// Progress returns the percentage of the project's tasks that are done
func (s *service) Progress(ctx context.Context, id string) (float64, error) {
	project, err := s.GetProject(ctx, id)
	if err != nil {
		return 0, err
	}
	return project.Progress(), nil
}

// CreateProject validates and stores a new project
func (s *service) CreateProject(ctx context.Context, req CreateProjectRequest) (*models.FreelanceProject, error) {
	project := models.FreelanceProject{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Client:      strings.TrimSpace(req.Client),
		Description: req.Description,
		Status:      req.Status,
		HourlyRate:  req.HourlyRate,
		Budget:      req.Budget,
		Deadline:    req.Deadline,
		Tasks:       []models.ProjectTask{},
		CreatedAt:   s.now(),
	}
	if project.Status == "" {
		project.Status = models.FreelanceLead
	}
	if err := validateProject(project); err != nil {
		return nil, err
	}

	err := s.doc.Update(ctx, func(data *models.FreelancingData) error {
		data.Projects = append(data.Projects, project)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return &project, nil
}

// UpdateProject applies the non-nil fields of req
func (s *service) UpdateProject(ctx context.Context, req UpdateProjectRequest) (*models.FreelanceProject, error) {
	var result models.FreelanceProject
	err := s.withProject(ctx, req.ID, func(p *models.FreelanceProject) error {
		if req.Name != nil {
			p.Name = strings.TrimSpace(*req.Name)
		}
		if req.Client != nil {
			p.Client = strings.TrimSpace(*req.Client)
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.Status != nil {
			p.Status = *req.Status
		}
		if req.HourlyRate != nil {
			p.HourlyRate = *req.HourlyRate
		}
		if req.Budget != nil {
			p.Budget = *req.Budget
		}
		if req.Deadline != nil {
			p.Deadline = req.Deadline
		}
		if req.ClearDeadline {
			p.Deadline = nil
		}
		if err := validateProject(*p); err != nil {
			return err
		}
		p.UpdatedAt = s.now()
		result = *p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteProject removes a project together with its tasks
func (s *service) DeleteProject(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidProjectID
	}
	return s.doc.Update(ctx, func(data *models.FreelancingData) error {
		i := projectIndex(data.Projects, id)
		if i < 0 {
			return ErrProjectNotFound
		}
		data.Projects = slices.Delete(data.Projects, i, i+1)
		return nil
	})
}

// withProject runs fn against the stored project inside a document update
func (s *service) withProject(ctx context.Context, id string, fn func(*models.FreelanceProject) error) error {
	if id == "" {
		return ErrInvalidProjectID
	}
	return s.doc.Update(ctx, func(data *models.FreelancingData) error {
		i := projectIndex(data.Projects, id)
		if i < 0 {
			return ErrProjectNotFound
		}
		return fn(&data.Projects[i])
	})
}

func validateProject(p models.FreelanceProject) error {
	if p.Name == "" {
		return ErrEmptyName
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProject, err)
	}
	return nil
}

func projectIndex(projects []models.FreelanceProject, id string) int {
	return slices.IndexFunc(projects, func(p models.FreelanceProject) bool { return p.ID == id })
}
