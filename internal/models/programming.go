package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// LearningStatus is the board column a learning item lives in
type LearningStatus string

const (
	LearningPlanned    LearningStatus = "planned"
	LearningInProgress LearningStatus = "in-progress"
	LearningCompleted  LearningStatus = "completed"
)

// LearningStatuses lists the statuses in board order
var LearningStatuses = []LearningStatus{LearningPlanned, LearningInProgress, LearningCompleted}

// LearningType is the kind of learning resource
type LearningType string

const (
	LearningCourse        LearningType = "course"
	LearningBook          LearningType = "book"
	LearningTutorial      LearningType = "tutorial"
	LearningVideo         LearningType = "video"
	LearningArticle       LearningType = "article"
	LearningDocumentation LearningType = "documentation"
)

// LearningTypes lists every kind of learning resource
var LearningTypes = []LearningType{
	LearningCourse, LearningBook, LearningTutorial, LearningVideo, LearningArticle, LearningDocumentation,
}

// LearningItem is a course, book or other resource being worked through
type LearningItem struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Type      LearningType   `json:"type"`
	Status    LearningStatus `json:"status"`
	URL       string         `json:"url,omitempty"`
	Progress  int            `json:"progress"`
	Notes     string         `json:"notes,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt,omitzero"`
}

// Validate checks the learning item's fields
func (l LearningItem) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&l.Type, validation.Required, validation.In(
			LearningCourse, LearningBook, LearningTutorial, LearningVideo, LearningArticle, LearningDocumentation,
		)),
		validation.Field(&l.Status, validation.Required, validation.In(LearningPlanned, LearningInProgress, LearningCompleted)),
		validation.Field(&l.URL, is.URL),
		validation.Field(&l.Progress, validation.Min(0), validation.Max(100)),
	)
}

// Skill is a programming skill with a self-assessed level from 1 to 5
type Skill struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category,omitempty"`
	Level     int       `json:"level"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// Validate checks the skill's fields
func (s Skill) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&s.Level, validation.Required, validation.Min(1), validation.Max(5)),
	)
}

// Proficiency grades how well a tool is known
type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyExpert       Proficiency = "expert"
)

// Proficiencies lists the proficiency levels from lowest to highest
var Proficiencies = []Proficiency{
	ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyExpert,
}

// Tool is an editor, framework or service in the toolbox
type Tool struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Category    string      `json:"category,omitempty"`
	Proficiency Proficiency `json:"proficiency,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt,omitzero"`
}

// Validate checks the tool's fields
func (t Tool) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&t.Proficiency, validation.In(
			ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyExpert,
		)),
	)
}

// CodingProjectStatus tracks a personal coding project
type CodingProjectStatus string

const (
	CodingIdea       CodingProjectStatus = "idea"
	CodingInProgress CodingProjectStatus = "in-progress"
	CodingCompleted  CodingProjectStatus = "completed"
	CodingArchived   CodingProjectStatus = "archived"
)

// CodingProjectStatuses lists every coding project status
var CodingProjectStatuses = []CodingProjectStatus{CodingIdea, CodingInProgress, CodingCompleted, CodingArchived}

// CodingProject is a personal programming project
type CodingProject struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Status      CodingProjectStatus `json:"status"`
	TechStack   []string            `json:"techStack,omitempty"`
	RepoURL     string              `json:"repoUrl,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt,omitzero"`
}

// Validate checks the coding project's fields
func (p CodingProject) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&p.Status, validation.Required, validation.In(CodingIdea, CodingInProgress, CodingCompleted, CodingArchived)),
		validation.Field(&p.RepoURL, is.URL),
	)
}

// ProgrammingData is the document stored under ProgrammingKey
type ProgrammingData struct {
	LearningItems []LearningItem  `json:"learningItems"`
	Skills        []Skill         `json:"skills"`
	Tools         []Tool          `json:"tools"`
	Projects      []CodingProject `json:"projects"`
}
