package programming

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

// Service defines the programming area operations: learning items on a
// board, plus skills, tools and personal coding projects.
type Service interface {
	// Learning items
	ListLearningItems(ctx context.Context) ([]models.LearningItem, error)
	GetLearningItem(ctx context.Context, id string) (*models.LearningItem, error)
	CreateLearningItem(ctx context.Context, req CreateLearningItemRequest) (*models.LearningItem, error)
	UpdateLearningItem(ctx context.Context, req UpdateLearningItemRequest) (*models.LearningItem, error)
	DeleteLearningItem(ctx context.Context, id string) error
	MoveLearningItem(ctx context.Context, id string, status models.LearningStatus) (bool, error)
	UpdateProgress(ctx context.Context, id string, progress int) (*models.LearningItem, error)

	// Skills
	ListSkills(ctx context.Context) ([]models.Skill, error)
	CreateSkill(ctx context.Context, req CreateSkillRequest) (*models.Skill, error)
	UpdateSkill(ctx context.Context, req UpdateSkillRequest) (*models.Skill, error)
	DeleteSkill(ctx context.Context, id string) error

	// Tools
	ListTools(ctx context.Context) ([]models.Tool, error)
	CreateTool(ctx context.Context, req CreateToolRequest) (*models.Tool, error)
	UpdateTool(ctx context.Context, req UpdateToolRequest) (*models.Tool, error)
	DeleteTool(ctx context.Context, id string) error

	// Coding projects
	ListProjects(ctx context.Context) ([]models.CodingProject, error)
	CreateProject(ctx context.Context, req CreateProjectRequest) (*models.CodingProject, error)
	UpdateProject(ctx context.Context, req UpdateProjectRequest) (*models.CodingProject, error)
	DeleteProject(ctx context.Context, id string) error
}

type service struct {
	doc *storage.Document[models.ProgrammingData]
	now func() time.Time
}

// NewService creates a programming service persisting to store. now may be nil.
func NewService(store storage.KV, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{
		doc: storage.NewDocument[models.ProgrammingData](store, storage.ProgrammingKey),
		now: now,
	}
}

func (s *service) load(ctx context.Context) (models.ProgrammingData, error) {
	return s.doc.Load(ctx)
}

// indexByID finds the element whose id matches
func indexByID[T any](items []T, id string, getID func(T) string) int {
	return slices.IndexFunc(items, func(v T) bool { return getID(v) == id })
}

func wrapInvalid(sentinel error, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", sentinel, err)
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

func newID() string {
	return uuid.NewString()
}
