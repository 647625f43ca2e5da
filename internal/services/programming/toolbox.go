package programming

import (
	"context"
	"slices"
	"strings"

	"github.com/thenoetrevino/lifeos/internal/models"
)

// CreateSkillRequest encapsulates data for creating a skill
type CreateSkillRequest struct {
	Name     string
	Category string
	Level    int
	Notes    string
}

// UpdateSkillRequest encapsulates data for updating a skill
type UpdateSkillRequest struct {
	ID       string
	Name     *string
	Category *string
	Level    *int
	Notes    *string
}

// CreateToolRequest encapsulates data for creating a tool
type CreateToolRequest struct {
	Name        string
	Category    string
	Proficiency models.Proficiency
}

// UpdateToolRequest encapsulates data for updating a tool
type UpdateToolRequest struct {
	ID          string
	Name        *string
	Category    *string
	Proficiency *models.Proficiency
}

// CreateProjectRequest encapsulates data for creating a coding project
type CreateProjectRequest struct {
	Name        string
	Description string
	Status      models.CodingProjectStatus // Optional: empty means idea
	TechStack   []string
	RepoURL     string
}

// UpdateProjectRequest encapsulates data for updating a coding project
type UpdateProjectRequest struct {
	ID          string
	Name        *string
	Description *string
	Status      *models.CodingProjectStatus
	TechStack   []string // nil leaves the stack unchanged
	RepoURL     *string
}

// ============================================================================
// SKILLS
// ============================================================================

func skillID(s models.Skill) string { return s.ID }

// ListSkills returns every skill
func (s *service) ListSkills(ctx context.Context) ([]models.Skill, error) {
	data, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return data.Skills, nil
}

// CreateSkill validates and stores a new skill
func (s *service) CreateSkill(ctx context.Context, req CreateSkillRequest) (*models.Skill, error) {
	skill := models.Skill{
		ID:        newID(),
		Name:      strings.TrimSpace(req.Name),
		Category:  strings.TrimSpace(req.Category),
		Level:     req.Level,
		Notes:     req.Notes,
		CreatedAt: s.now(),
	}
	if err := validateSkill(skill); err != nil {
		return nil, err
	}
	err := s.doc.Update(ctx, func(data *models.ProgrammingData) error {
		data.Skills = append(data.Skills, skill)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// UpdateSkill applies the non-nil fields of req
func (s *service) UpdateSkill(ctx context.Context, req UpdateSkillRequest) (*models.Skill, error) {
	if req.ID == "" {
		return nil, ErrInvalidID
	}
	var result models.Skill
	err := s.doc.Update(ctx, func(data *models.ProgrammingData) error {
		i := indexByID(data.Skills, req.ID, skillID)
		if i < 0 {
			return ErrSkillNotFound
		}
		skill := data.Skills[i]
		if n := trimmed(req.Name); n != nil {
			skill.Name = *n
		}
		if c := trimmed(req.Category); c != nil {
			skill.Category = *c
		}
		if req.Level != nil {
			skill.Level = *req.Level
		}
		if req.Notes != nil {
			skill.Notes = *req.Notes
		}
		if err := validateSkill(skill); err != nil {
			return err
		}
		skill.UpdatedAt = s.now()
		data.Skills[i] = skill
		result = skill
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteSkill removes a skill
func (s *service) DeleteSkill(ctx context.Context, id string) error {
	return s.doc.Update(ctx, func(data *models.ProgrammingData) error {
		i := indexByID(data.Skills, id, skillID)
		if i < 0 {
			return ErrSkillNotFound
		}
		data.Skills = slices.Delete(data.Skills, i, i+1)
		return nil
	})
}

func validateSkill(skill models.Skill) error {
	if skill.Name == "" {
		return ErrEmptyName
	}
	return wrapInvalid(ErrInvalidSkill, skill.Validate())
}

// ============================================================================
// TOOLS
// ============================================================================

func toolID(t models.Tool) string { return t.ID }

// ListTools returns every tool
func (s *service) ListTools(ctx context.Context) ([]models.Tool, error) {
	data, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return data.Tools, nil
}

// CreateTool validates and stores a new tool
func (s *service) CreateTool(ctx context.Context, req CreateToolRequest) (*models.Tool, error) {
	tool := models.Tool{
		ID:          newID(),
		Name:        strings.TrimSpace(req.Name),
		Category:    strings.TrimSpace(req.Category),
		Proficiency: req.Proficiency,
		CreatedAt:   s.now(),
	}
	if err := validateTool(tool); err != nil {
		return nil, err
	}
	err := s.doc.Update(ctx, func(data *models.ProgrammingData) error {
		data.Tools = append(data.Tools, tool)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &tool, nil
}

// UpdateTool applies the non-nil fields of req
func (s *service) UpdateTool(ctx context.Context, req UpdateToolRequest) (*models.Tool, error) {
	if req.ID == "" {
		return nil, ErrInvalidID
	}
	var result models.Tool
	err := s.doc.Update(ctx, func(data *models.ProgrammingData) error {
		i := indexByID(data.Tools, req.ID, toolID)
		if i < 0 {
			return ErrToolNotFound
		}
		tool := data.Tools[i]
		if n := trimmed(req.Name); n != nil {
			tool.Name = *n
		}
		if c := trimmed(req.Category); c != nil {
			tool.Category = *c
		}
		if req.Proficiency != nil {
			tool.Proficiency = *req.Proficiency
		}
		if err := validateTool(tool); err != nil {
			return err
		}
		tool.UpdatedAt = s.now()
		data.Tools[i] = tool
		result = tool
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteTool removes a tool
func (s *service) DeleteTool(ctx context.Context, id string) error {
	return s.doc.Update(ctx, func(data *models.ProgrammingData) error {
		i := indexByID(data.Tools, id, toolID)
		if i < 0 {
			return ErrToolNotFound
		}
		data.Tools = slices.Delete(data.Tools, i, i+1)
		return nil
	})
}

func validateTool(tool models.Tool) error {
	if tool.Name == "" {
		return ErrEmptyName
	}
	return wrapInvalid(ErrInvalidTool, tool.Validate())
}

// ============================================================================
// CODING PROJECTS
// ============================================================================

func projectID(p models.CodingProject) string { return p.ID }

// ListProjects returns every coding project
func (s *service) ListProjects(ctx context.Context) ([]models.CodingProject, error) {
	data, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return data.Projects, nil
}

// CreateProject validates and stores a new coding project
func (s *service) CreateProject(ctx context.Context, req CreateProjectRequest) (*models.CodingProject, error) {
	project := models.CodingProject{
		ID:          newID(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Status:      req.Status,
		TechStack:   cleanStack(req.TechStack),
		RepoURL:     strings.TrimSpace(req.RepoURL),
		CreatedAt:   s.now(),
	}
	if project.Status == "" {
		project.Status = models.CodingIdea
	}
	if err := validateProject(project); err != nil {
		return nil, err
	}
	err := s.doc.Update(ctx, func(data *models.ProgrammingData) error {
		data.Projects = append(data.Projects, project)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject applies the non-nil fields of req
func (s *service) UpdateProject(ctx context.Context, req UpdateProjectRequest) (*models.CodingProject, error) {
	if req.ID == "" {
		return nil, ErrInvalidID
	}
	var result models.CodingProject
	err := s.doc.Update(ctx, func(data *models.ProgrammingData) error {
		i := indexByID(data.Projects, req.ID, projectID)
		if i < 0 {
			return ErrProjectNotFound
		}
		project := data.Projects[i]
		if n := trimmed(req.Name); n != nil {
			project.Name = *n
		}
		if req.Description != nil {
			project.Description = *req.Description
		}
		if req.Status != nil {
			project.Status = *req.Status
		}
		if req.TechStack != nil {
			project.TechStack = cleanStack(req.TechStack)
		}
		if u := trimmed(req.RepoURL); u != nil {
			project.RepoURL = *u
		}
		if err := validateProject(project); err != nil {
			return err
		}
		project.UpdatedAt = s.now()
		data.Projects[i] = project
		result = project
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteProject removes a coding project
func (s *service) DeleteProject(ctx context.Context, id string) error {
	return s.doc.Update(ctx, func(data *models.ProgrammingData) error {
		i := indexByID(data.Projects, id, projectID)
		if i < 0 {
			return ErrProjectNotFound
		}
		data.Projects = slices.Delete(data.Projects, i, i+1)
		return nil
	})
}

func validateProject(project models.CodingProject) error {
	if project.Name == "" {
		return ErrEmptyName
	}
	return wrapInvalid(ErrInvalidProject, project.Validate())
}

// cleanStack trims entries and drops empties and duplicates
func cleanStack(stack []string) []string {
	var out []string
	for _, tech := range stack {
		tech = strings.TrimSpace(tech)
		if tech != "" && !slices.Contains(out, tech) {
			out = append(out, tech)
		}
	}
	return out
}
