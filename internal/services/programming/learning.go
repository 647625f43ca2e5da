package programming

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/thenoetrevino/lifeos/internal/models"
	"github.com/thenoetrevino/lifeos/internal/storage"
)

// CreateLearningItemRequest encapsulates data for creating a learning item
type CreateLearningItemRequest struct {
	Title  string
	Type   models.LearningType
	Status models.LearningStatus // Optional: empty means planned
	URL    string
	Notes  string
}

// UpdateLearningItemRequest encapsulates data for updating a learning item
type UpdateLearningItemRequest struct {
	ID    string
	Title *string
	Type  *models.LearningType
	URL   *string
	Notes *string
}

func learningID(l models.LearningItem) string { return l.ID }

// ListLearningItems returns every learning item
func (s *service) ListLearningItems(ctx context.Context) ([]models.LearningItem, error) {
	data, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return data.LearningItems, nil
}

// GetLearningItem retrieves a single learning item
func (s *service) GetLearningItem(ctx context.Context, id string) (*models.LearningItem, error) {
	data, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	i := indexByID(data.LearningItems, id, learningID)
	if i < 0 {
		return nil, ErrLearningItemNotFound
	}
	item := data.LearningItems[i]
	return &item, nil
}

// CreateLearningItem validates and stores a new learning item
func (s *service) CreateLearningItem(ctx context.Context, req CreateLearningItemRequest) (*models.LearningItem, error) {
	item := models.LearningItem{
		ID:        newID(),
		Title:     strings.TrimSpace(req.Title),
		Type:      req.Type,
		Status:    req.Status,
		URL:       strings.TrimSpace(req.URL),
		Notes:     req.Notes,
		CreatedAt: s.now(),
	}
	if item.Status == "" {
		item.Status = models.LearningPlanned
	}
	if item.Status == models.LearningCompleted {
		item.Progress = 100
	}
	if err := validateLearningItem(item); err != nil {
		return nil, err
	}

	err := s.doc.Update(ctx, func(data *models.ProgrammingData) error {
		data.LearningItems = append(data.LearningItems, item)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create learning item: %w", err)
	}
	return &item, nil
}

// UpdateLearningItem applies the non-nil fields of req
func (s *service) UpdateLearningItem(ctx context.Context, req UpdateLearningItemRequest) (*models.LearningItem, error) {
	return s.mutateLearningItem(ctx, req.ID, func(item *models.LearningItem) error {
		if t := trimmed(req.Title); t != nil {
			item.Title = *t
		}
		if req.Type != nil {
			item.Type = *req.Type
		}
		if u := trimmed(req.URL); u != nil {
			item.URL = *u
		}
		if req.Notes != nil {
			item.Notes = *req.Notes
		}
		return nil
	})
}

// DeleteLearningItem removes a learning item
func (s *service) DeleteLearningItem(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidID
	}
	return s.doc.Update(ctx, func(data *models.ProgrammingData) error {
		i := indexByID(data.LearningItems, id, learningID)
		if i < 0 {
			return ErrLearningItemNotFound
		}
		data.LearningItems = slices.Delete(data.LearningItems, i, i+1)
		return nil
	})
}

// MoveLearningItem changes the item's board column. Completing an item sets
// its progress to 100. It reports whether anything changed.
func (s *service) MoveLearningItem(ctx context.Context, id string, status models.LearningStatus) (bool, error) {
	if !slices.Contains(models.LearningStatuses, status) {
		return false, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	changed := false
	_, err := s.mutateLearningItem(ctx, id, func(item *models.LearningItem) error {
		if item.Status == status {
			return storage.ErrUnchanged
		}
		item.Status = status
		if status == models.LearningCompleted {
			item.Progress = 100
		}
		changed = true
		return nil
	})
	return changed, err
}

// UpdateProgress sets the completion percentage. Reaching 100 completes the
// item; starting progress on a planned item moves it to in-progress.
func (s *service) UpdateProgress(ctx context.Context, id string, progress int) (*models.LearningItem, error) {
	if progress < 0 || progress > 100 {
		return nil, ErrInvalidProgress
	}
	return s.mutateLearningItem(ctx, id, func(item *models.LearningItem) error {
		item.Progress = progress
		switch {
		case progress == 100:
			item.Status = models.LearningCompleted
		case progress > 0 && item.Status == models.LearningPlanned:
			item.Status = models.LearningInProgress
		}
		return nil
	})
}

// mutateLearningItem loads, modifies, validates, stamps and saves one item.
// When fn returns storage.ErrUnchanged the stored item is returned as is.
func (s *service) mutateLearningItem(ctx context.Context, id string, fn func(*models.LearningItem) error) (*models.LearningItem, error) {
	if id == "" {
		return nil, ErrInvalidID
	}

	var result models.LearningItem
	err := s.doc.Update(ctx, func(data *models.ProgrammingData) error {
		i := indexByID(data.LearningItems, id, learningID)
		if i < 0 {
			return ErrLearningItemNotFound
		}
		item := data.LearningItems[i]
		result = item
		if err := fn(&item); err != nil {
			return err
		}
		if err := validateLearningItem(item); err != nil {
			return err
		}
		item.UpdatedAt = s.now()
		data.LearningItems[i] = item
		result = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func validateLearningItem(item models.LearningItem) error {
	if item.Title == "" {
		return ErrEmptyTitle
	}
	return wrapInvalid(ErrInvalidLearningItem, item.Validate())
}
