package huhforms

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/lifeos/internal/models"
	"github.com/thenoetrevino/lifeos/internal/services/university"
)

// SubjectDraft holds the fields of a subject
type SubjectDraft struct {
	Name      string
	Code      string
	Semester  string
	Credits   string
	Professor string
	Confirm   bool
}

// NewSubjectDraft returns an empty draft
func NewSubjectDraft() *SubjectDraft {
	return &SubjectDraft{Confirm: true}
}

// SubjectDraftFrom prefills a draft from an existing subject
func SubjectDraftFrom(s models.Subject) *SubjectDraft {
	d := &SubjectDraft{
		Name:      s.Name,
		Code:      s.Code,
		Semester:  s.Semester,
		Professor: s.Professor,
		Confirm:   true,
	}
	if s.Credits > 0 {
		d.Credits = strconv.Itoa(s.Credits)
	}
	return d
}

// CreateSubjectForm creates a huh form for adding/editing a subject
func CreateSubjectForm(d *SubjectDraft) *huh.Form {
	return newForm("Save this subject?", &d.Confirm,
		huh.NewInput().
			Key("name").
			Title("Name").
			Validate(required("name")).
			Value(&d.Name),
		huh.NewInput().
			Key("code").
			Title("Code (optional)").
			Value(&d.Code),
		huh.NewInput().
			Key("semester").
			Title("Semester (optional)").
			Value(&d.Semester),
		huh.NewInput().
			Key("credits").
			Title("Credits (optional)").
			Validate(validWholeNumber).
			Value(&d.Credits),
		huh.NewInput().
			Key("professor").
			Title("Professor (optional)").
			Value(&d.Professor),
	)
}

// CreateRequest converts the draft into a new subject
func (d *SubjectDraft) CreateRequest() (university.CreateSubjectRequest, error) {
	credits, err := parseInt(d.Credits)
	if err != nil {
		return university.CreateSubjectRequest{}, err
	}
	return university.CreateSubjectRequest{
		Name:      strings.TrimSpace(d.Name),
		Code:      strings.TrimSpace(d.Code),
		Semester:  strings.TrimSpace(d.Semester),
		Credits:   credits,
		Professor: strings.TrimSpace(d.Professor),
	}, nil
}

// UpdateRequest converts the draft into an update of subject id
func (d *SubjectDraft) UpdateRequest(id string) (university.UpdateSubjectRequest, error) {
	req, err := d.CreateRequest()
	if err != nil {
		return university.UpdateSubjectRequest{}, err
	}
	return university.UpdateSubjectRequest{
		ID:        id,
		Name:      &req.Name,
		Code:      &req.Code,
		Semester:  &req.Semester,
		Credits:   &req.Credits,
		Professor: &req.Professor,
	}, nil
}

// ExamDraft holds the fields of an exam. An empty grade means not graded yet.
type ExamDraft struct {
	Title    string
	Date     string
	MaxGrade string
	Grade    string
	Confirm  bool
}

// NewExamDraft returns an empty draft graded out of 100
func NewExamDraft() *ExamDraft {
	return &ExamDraft{MaxGrade: "100", Confirm: true}
}

// CreateExamForm creates a huh form for scheduling or grading an exam
func CreateExamForm(d *ExamDraft) *huh.Form {
	return newForm("Save this exam?", &d.Confirm,
		huh.NewInput().
			Key("title").
			Title("Title").
			Validate(required("title")).
			Value(&d.Title),
		huh.NewInput().
			Key("date").
			Title("Date (optional)").
			Placeholder(DateLayout).
			Validate(validDate).
			Value(&d.Date),
		huh.NewInput().
			Key("max").
			Title("Maximum grade").
			Validate(func(s string) error {
				if err := required("maximum grade")(s); err != nil {
					return err
				}
				return validNumber(s)
			}).
			Value(&d.MaxGrade),
		huh.NewInput().
			Key("grade").
			Title("Grade (leave empty if not taken)").
			Validate(validNumber).
			Value(&d.Grade),
	)
}

// CreateRequest converts the draft into a new exam of subjectID
func (d *ExamDraft) CreateRequest(subjectID string) (university.CreateExamRequest, error) {
	date, err := parseDate(d.Date)
	if err != nil {
		return university.CreateExamRequest{}, err
	}
	maxGrade, err := parseFloat(d.MaxGrade)
	if err != nil {
		return university.CreateExamRequest{}, err
	}
	grade, err := parseFloat(d.Grade)
	if err != nil {
		return university.CreateExamRequest{}, err
	}
	req := university.CreateExamRequest{
		SubjectID: subjectID,
		Title:     strings.TrimSpace(d.Title),
		Date:      date,
		Grade:     grade,
	}
	if maxGrade != nil {
		req.MaxGrade = *maxGrade
	}
	return req, nil
}

// EntryDraft holds the fields of a grade entry
type EntryDraft struct {
	Title     string
	Type      string
	Points    string
	MaxPoints string
	Date      string
	Confirm   bool
}

// NewEntryDraft returns an empty assignment draft
func NewEntryDraft() *EntryDraft {
	return &EntryDraft{Type: string(models.EntryAssignment), Confirm: true}
}

// CreateEntryForm creates a huh form for recording a grade entry
func CreateEntryForm(d *EntryDraft) *huh.Form {
	return newForm("Save this entry?", &d.Confirm,
		huh.NewInput().
			Key("title").
			Title("Title").
			Validate(required("title")).
			Value(&d.Title),
		huh.NewSelect[string]().
			Key("type").
			Title("Type").
			Options(options(models.GradeEntryTypes)...).
			Value(&d.Type),
		huh.NewInput().
			Key("points").
			Title("Points earned").
			Description("Bonus adds and deduction subtracts these points").
			Validate(validNumber).
			Value(&d.Points),
		huh.NewInput().
			Key("max").
			Title("Maximum points").
			Validate(validNumber).
			Value(&d.MaxPoints),
		huh.NewInput().
			Key("date").
			Title("Date (optional)").
			Placeholder(DateLayout).
			Validate(validDate).
			Value(&d.Date),
	)
}

// CreateRequest converts the draft into a new entry of subjectID
func (d *EntryDraft) CreateRequest(subjectID string) (university.CreateEntryRequest, error) {
	date, err := parseDate(d.Date)
	if err != nil {
		return university.CreateEntryRequest{}, err
	}
	points, err := parseFloat(d.Points)
	if err != nil {
		return university.CreateEntryRequest{}, err
	}
	maxPoints, err := parseFloat(d.MaxPoints)
	if err != nil {
		return university.CreateEntryRequest{}, err
	}
	req := university.CreateEntryRequest{
		SubjectID: subjectID,
		Title:     strings.TrimSpace(d.Title),
		Type:      models.GradeEntryType(d.Type),
		Date:      date,
	}
	if points != nil {
		req.PointsEarned = *points
	}
	if maxPoints != nil {
		req.MaxPoints = *maxPoints
	}
	return req, nil
}
