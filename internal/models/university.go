package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Subject is a university course being taken
type Subject struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code,omitempty"`
	Semester  string    `json:"semester,omitempty"`
	Credits   int       `json:"credits,omitempty"`
	Professor string    `json:"professor,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// Validate checks the subject's fields
func (s Subject) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&s.Credits, validation.Min(0)),
	)
}

// Exam is a scheduled or taken exam. Grade stays nil until the result is known.
type Exam struct {
	ID        string     `json:"id"`
	SubjectID string     `json:"subjectId"`
	Title     string     `json:"title"`
	Date      *time.Time `json:"date,omitempty"`
	Taken     bool       `json:"taken"`
	Grade     *float64   `json:"grade,omitempty"`
	MaxGrade  float64    `json:"maxGrade"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt,omitzero"`
}

// Validate checks the exam's fields
func (e Exam) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.SubjectID, validation.Required),
		validation.Field(&e.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&e.MaxGrade, validation.Required, validation.Min(0.0)),
		validation.Field(&e.Grade, validation.Min(0.0)),
	)
}

// Graded reports whether the exam counts toward the subject's grade
func (e Exam) Graded() bool {
	return e.Taken && e.Grade != nil
}

// GradeEntryType classifies a grade entry
type GradeEntryType string

const (
	EntryAssignment    GradeEntryType = "assignment"
	EntryQuiz          GradeEntryType = "quiz"
	EntryProject       GradeEntryType = "project"
	EntryParticipation GradeEntryType = "participation"
	EntryBonus         GradeEntryType = "bonus"
	EntryDeduction     GradeEntryType = "deduction"
)

// GradeEntryTypes lists every grade entry type
var GradeEntryTypes = []GradeEntryType{
	EntryAssignment, EntryQuiz, EntryProject, EntryParticipation, EntryBonus, EntryDeduction,
}

// GradeEntry is any gradable record other than an exam. Bonus entries add
// points without raising the maximum; deduction entries always subtract,
// whichever sign PointsEarned was stored with.
type GradeEntry struct {
	ID           string         `json:"id"`
	SubjectID    string         `json:"subjectId"`
	Title        string         `json:"title"`
	Type         GradeEntryType `json:"type"`
	PointsEarned float64        `json:"pointsEarned"`
	MaxPoints    float64        `json:"maxPoints"`
	Date         *time.Time     `json:"date,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt,omitzero"`
}

// Validate checks the entry's fields
func (g GradeEntry) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.SubjectID, validation.Required),
		validation.Field(&g.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&g.Type, validation.Required, validation.In(
			EntryAssignment, EntryQuiz, EntryProject, EntryParticipation, EntryBonus, EntryDeduction,
		)),
		validation.Field(&g.MaxPoints, validation.Min(0.0)),
	)
}

// UniversityData is the document stored under UniversityKey
type UniversityData struct {
	Subjects     []Subject    `json:"subjects"`
	Exams        []Exam       `json:"exams"`
	GradeEntries []GradeEntry `json:"gradeEntries"`
}
