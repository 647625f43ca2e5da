package university

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/lifeos/internal/grades"
	"github.com/thenoetrevino/lifeos/internal/models"
	"github.com/thenoetrevino/lifeos/internal/storage"
)

// Service defines subject, exam and grade entry operations
type Service interface {
	// Subjects
	ListSubjects(ctx context.Context) ([]models.Subject, error)
	GetSubject(ctx context.Context, id string) (*models.Subject, error)
	CreateSubject(ctx context.Context, req CreateSubjectRequest) (*models.Subject, error)
	UpdateSubject(ctx context.Context, req UpdateSubjectRequest) (*models.Subject, error)
	DeleteSubject(ctx context.Context, id string) error

	// Exams
	ListExams(ctx context.Context, subjectID string) ([]models.Exam, error)
	CreateExam(ctx context.Context, req CreateExamRequest) (*models.Exam, error)
	UpdateExam(ctx context.Context, req UpdateExamRequest) (*models.Exam, error)
	DeleteExam(ctx context.Context, id string) error

	// Grade entries
	ListEntries(ctx context.Context, subjectID string) ([]models.GradeEntry, error)
	CreateEntry(ctx context.Context, req CreateEntryRequest) (*models.GradeEntry, error)
	UpdateEntry(ctx context.Context, req UpdateEntryRequest) (*models.GradeEntry, error)
	DeleteEntry(ctx context.Context, id string) error

	// SubjectGrade computes the running grade for one subject
	SubjectGrade(ctx context.Context, subjectID string) (grades.Calculation, error)
}

// CreateSubjectRequest encapsulates data for creating a subject
type CreateSubjectRequest struct {
	Name      string
	Code      string
	Semester  string
	Credits   int
	Professor string
}

// UpdateSubjectRequest encapsulates data for updating a subject
type UpdateSubjectRequest struct {
	ID        string
	Name      *string
	Code      *string
	Semester  *string
	Credits   *int
	Professor *string
}

type service struct {
	doc *storage.Document[models.UniversityData]
	now func() time.Time
}

// NewService creates a university service persisting to store. now may be nil.
func NewService(store storage.KV, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{
		doc: storage.NewDocument[models.UniversityData](store, storage.UniversityKey),
		now: now,
	}
}

// ListSubjects returns every subject
func (s *service) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	data, err := s.doc.Load(ctx)
	if err != nil {
		return nil, err
	}
	return data.Subjects, nil
}

// GetSubject retrieves a single subject
func (s *service) GetSubject(ctx context.Context, id string) (*models.Subject, error) {
	if id == "" {
		return nil, ErrInvalidID
	}
	data, err := s.doc.Load(ctx)
	if err != nil {
		return nil, err
	}
	i := subjectIndex(data.Subjects, id)
	if i < 0 {
		return nil, ErrSubjectNotFound
	}
	subject := data.Subjects[i]
	return &subject, nil
}

// CreateSubject validates and stores a new subject
func (s *service) CreateSubject(ctx context.Context, req CreateSubjectRequest) (*models.Subject, error) {
	subject := models.Subject{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Code:      strings.TrimSpace(req.Code),
		Semester:  strings.TrimSpace(req.Semester),
		Credits:   req.Credits,
		Professor: strings.TrimSpace(req.Professor),
		CreatedAt: s.now(),
	}
	if err := validateSubject(subject); err != nil {
		return nil, err
	}
	err := s.doc.Update(ctx, func(data *models.UniversityData) error {
		data.Subjects = append(data.Subjects, subject)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create subject: %w", err)
	}
	return &subject, nil
}

// UpdateSubject applies the non-nil fields of req
func (s *service) UpdateSubject(ctx context.Context, req UpdateSubjectRequest) (*models.Subject, error) {
	if req.ID == "" {
		return nil, ErrInvalidID
	}
	var result models.Subject
	err := s.doc.Update(ctx, func(data *models.UniversityData) error {
		i := subjectIndex(data.Subjects, req.ID)
		if i < 0 {
			return ErrSubjectNotFound
		}
		subject := data.Subjects[i]
		if req.Name != nil {
			subject.Name = strings.TrimSpace(*req.Name)
		}
		if req.Code != nil {
			subject.Code = strings.TrimSpace(*req.Code)
		}
		if req.Semester != nil {
			subject.Semester = strings.TrimSpace(*req.Semester)
		}
		if req.Credits != nil {
			subject.Credits = *req.Credits
		}
		if req.Professor != nil {
			subject.Professor = strings.TrimSpace(*req.Professor)
		}
		if err := validateSubject(subject); err != nil {
			return err
		}
		subject.UpdatedAt = s.now()
		data.Subjects[i] = subject
		result = subject
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteSubject removes a subject along with its exams and grade entries
func (s *service) DeleteSubject(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidID
	}
	return s.doc.Update(ctx, func(data *models.UniversityData) error {
		i := subjectIndex(data.Subjects, id)
		if i < 0 {
			return ErrSubjectNotFound
		}
		data.Subjects = slices.Delete(data.Subjects, i, i+1)
		data.Exams = slices.DeleteFunc(data.Exams, func(e models.Exam) bool { return e.SubjectID == id })
		data.GradeEntries = slices.DeleteFunc(data.GradeEntries, func(g models.GradeEntry) bool { return g.SubjectID == id })
		return nil
	})
}

// SubjectGrade computes the grade from the subject's exams and entries
func (s *service) SubjectGrade(ctx context.Context, subjectID string) (grades.Calculation, error) {
	if subjectID == "" {
		return grades.Calculation{}, ErrInvalidID
	}
	data, err := s.doc.Load(ctx)
	if err != nil {
		return grades.Calculation{}, err
	}
	if subjectIndex(data.Subjects, subjectID) < 0 {
		return grades.Calculation{}, ErrSubjectNotFound
	}
	return grades.Calculate(
		filterBySubject(data.Exams, subjectID, examSubject),
		filterBySubject(data.GradeEntries, subjectID, entrySubject),
	), nil
}

func validateSubject(subject models.Subject) error {
	if subject.Name == "" {
		return ErrEmptyName
	}
	if err := subject.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSubject, err)
	}
	return nil
}

func subjectIndex(subjects []models.Subject, id string) int {
	return slices.IndexFunc(subjects, func(s models.Subject) bool { return s.ID == id })
}

func examSubject(e models.Exam) string        { return e.SubjectID }
func entrySubject(g models.GradeEntry) string { return g.SubjectID }

// filterBySubject keeps the records of one subject; an empty id keeps all
func filterBySubject[T any](items []T, subjectID string, subjectOf func(T) string) []T {
	if subjectID == "" {
		return items
	}
	var out []T
	for _, item := range items {
		if subjectOf(item) == subjectID {
			out = append(out, item)
		}
	}
	return out
}
