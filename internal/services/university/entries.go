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

// CreateEntryRequest encapsulates data for recording a grade entry
type CreateEntryRequest struct {
	SubjectID    string
	Title        string
	Type         models.GradeEntryType
	PointsEarned float64
	MaxPoints    float64
	Date         *time.Time
}

// UpdateEntryRequest encapsulates data for updating a grade entry
type UpdateEntryRequest struct {
	ID           string
	Title        *string
	Type         *models.GradeEntryType
	PointsEarned *float64
	MaxPoints    *float64
	Date         *time.Time
}

// ListEntries returns the entries of one subject, or all entries when subjectID is empty
func (s *service) ListEntries(ctx context.Context, subjectID string) ([]models.GradeEntry, error) {
	data, err := s.doc.Load(ctx)
	if err != nil {
		return nil, err
	}
	return filterBySubject(data.GradeEntries, subjectID, entrySubject), nil
}

// CreateEntry validates and stores a grade entry for an existing subject
func (s *service) CreateEntry(ctx context.Context, req CreateEntryRequest) (*models.GradeEntry, error) {
	entry := models.GradeEntry{
		ID:           uuid.NewString(),
		SubjectID:    req.SubjectID,
		Title:        strings.TrimSpace(req.Title),
		Type:         req.Type,
		PointsEarned: req.PointsEarned,
		MaxPoints:    req.MaxPoints,
		Date:         req.Date,
		CreatedAt:    s.now(),
	}
	if err := validateEntry(entry); err != nil {
		return nil, err
	}

	err := s.doc.Update(ctx, func(data *models.UniversityData) error {
		if subjectIndex(data.Subjects, entry.SubjectID) < 0 {
			return ErrSubjectNotFound
		}
		data.GradeEntries = append(data.GradeEntries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateEntry applies the non-nil fields of req
func (s *service) UpdateEntry(ctx context.Context, req UpdateEntryRequest) (*models.GradeEntry, error) {
	if req.ID == "" {
		return nil, ErrInvalidID
	}
	var result models.GradeEntry
	err := s.doc.Update(ctx, func(data *models.UniversityData) error {
		i := slices.IndexFunc(data.GradeEntries, func(g models.GradeEntry) bool { return g.ID == req.ID })
		if i < 0 {
			return ErrEntryNotFound
		}
		entry := data.GradeEntries[i]
		if req.Title != nil {
			entry.Title = strings.TrimSpace(*req.Title)
		}
		if req.Type != nil {
			entry.Type = *req.Type
		}
		if req.PointsEarned != nil {
			entry.PointsEarned = *req.PointsEarned
		}
		if req.MaxPoints != nil {
			entry.MaxPoints = *req.MaxPoints
		}
		if req.Date != nil {
			entry.Date = req.Date
		}
		if err := validateEntry(entry); err != nil {
			return err
		}
		entry.UpdatedAt = s.now()
		data.GradeEntries[i] = entry
		result = entry
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteEntry removes a grade entry
func (s *service) DeleteEntry(ctx context.Context, id string) error {
	return s.doc.Update(ctx, func(data *models.UniversityData) error {
		i := slices.IndexFunc(data.GradeEntries, func(g models.GradeEntry) bool { return g.ID == id })
		if i < 0 {
			return ErrEntryNotFound
		}
		data.GradeEntries = slices.Delete(data.GradeEntries, i, i+1)
		return nil
	})
}

func validateEntry(entry models.GradeEntry) error {
	if entry.SubjectID == "" {
		return ErrInvalidID
	}
	if entry.Title == "" {
		return ErrEmptyTitle
	}
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEntry, err)
	}
	return nil
}
