package university

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/lifeos/internal/models"
)

// CreateExamRequest encapsulates data for scheduling an exam
type CreateExamRequest struct {
	SubjectID string
	Title     string
	Date      *time.Time
	MaxGrade  float64
	Taken     bool
	Grade     *float64
}

// UpdateExamRequest encapsulates data for updating an exam.
// Setting Grade marks the exam as taken unless Taken says otherwise.
type UpdateExamRequest struct {
	ID         string
	Title      *string
	Date       *time.Time
	MaxGrade   *float64
	Taken      *bool
	Grade      *float64
	ClearGrade bool
}

// ListExams returns the exams of one subject, or all exams when subjectID is empty
func (s *service) ListExams(ctx context.Context, subjectID string) ([]models.Exam, error) {
	data, err := s.doc.Load(ctx)
	if err != nil {
		return nil, err
	}
	return filterBySubject(data.Exams, subjectID, examSubject), nil
}

// CreateExam validates and stores an exam for an existing subject
func (s *service) CreateExam(ctx context.Context, req CreateExamRequest) (*models.Exam, error) {
	exam := models.Exam{
		ID:        uuid.NewString(),
		SubjectID: req.SubjectID,
		Title:     strings.TrimSpace(req.Title),
		Date:      req.Date,
		Taken:     req.Taken || req.Grade != nil,
		Grade:     req.Grade,
		MaxGrade:  req.MaxGrade,
		CreatedAt: s.now(),
	}
	if err := validateExam(exam); err != nil {
		return nil, err
	}

	err := s.doc.Update(ctx, func(data *models.UniversityData) error {
		if subjectIndex(data.Subjects, exam.SubjectID) < 0 {
			return ErrSubjectNotFound
		}
		data.Exams = append(data.Exams, exam)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

// UpdateExam applies the non-nil fields of req
func (s *service) UpdateExam(ctx context.Context, req UpdateExamRequest) (*models.Exam, error) {
	if req.ID == "" {
		return nil, ErrInvalidID
	}
	var result models.Exam
	err := s.doc.Update(ctx, func(data *models.UniversityData) error {
		i := slices.IndexFunc(data.Exams, func(e models.Exam) bool { return e.ID == req.ID })
		if i < 0 {
			return ErrExamNotFound
		}
		exam := data.Exams[i]
		if req.Title != nil {
			exam.Title = strings.TrimSpace(*req.Title)
		}
		if req.Date != nil {
			exam.Date = req.Date
		}
		if req.MaxGrade != nil {
			exam.MaxGrade = *req.MaxGrade
		}
		if req.Grade != nil {
			exam.Grade = req.Grade
			exam.Taken = true
		}
		if req.ClearGrade {
			exam.Grade = nil
		}
		if req.Taken != nil {
			exam.Taken = *req.Taken
		}
		if err := validateExam(exam); err != nil {
			return err
		}
		exam.UpdatedAt = s.now()
		data.Exams[i] = exam
		result = exam
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteExam removes an exam
func (s *service) DeleteExam(ctx context.Context, id string) error {
	return s.doc.Update(ctx, func(data *models.UniversityData) error {
		i := slices.IndexFunc(data.Exams, func(e models.Exam) bool { return e.ID == id })
		if i < 0 {
			return ErrExamNotFound
		}
		data.Exams = slices.Delete(data.Exams, i, i+1)
		return nil
	})
}

func validateExam(exam models.Exam) error {
	if exam.SubjectID == "" {
		return ErrInvalidID
	}
	if exam.Title == "" {
		return ErrEmptyTitle
	}
	if err := exam.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidExam, err)
	}
	return nil
}
