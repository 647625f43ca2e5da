package note

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

// Service defines all note operations
type Service interface {
	// ListNotes returns notes with pinned ones first, most recently
	// modified first within each group
	ListNotes(ctx context.Context) ([]models.Note, error)
	GetNote(ctx context.Context, id string) (*models.Note, error)
	CreateNote(ctx context.Context, req CreateNoteRequest) (*models.Note, error)
	UpdateNote(ctx context.Context, req UpdateNoteRequest) (*models.Note, error)
	DeleteNote(ctx context.Context, id string) error
	TogglePin(ctx context.Context, id string) (*models.Note, error)
}

// CreateNoteRequest encapsulates data for creating a note
type CreateNoteRequest struct {
	Title   string
	Content string
	Tags    []string
	Pinned  bool
}

// UpdateNoteRequest encapsulates data for updating a note
type UpdateNoteRequest struct {
	ID      string
	Title   *string
	Content *string
	Tags    []string // nil leaves tags unchanged
}

type service struct {
	doc *storage.Document[models.NotesData]
	now func() time.Time
}

// NewService creates a note service persisting to store. now may be nil.
func NewService(store storage.KV, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{
		doc: storage.NewDocument[models.NotesData](store, storage.NotesKey),
		now: now,
	}
}

func (s *service) ListNotes(ctx context.Context) ([]models.Note, error) {
	data, err := s.doc.Load(ctx)
	if err != nil {
		return nil, err
	}
	notes := slices.Clone(data.Notes)
	slices.SortStableFunc(notes, func(a, b models.Note) int {
		if a.Pinned != b.Pinned {
			if a.Pinned {
				return -1
			}
			return 1
		}
		return b.LastModified().Compare(a.LastModified())
	})
	return notes, nil
}

func (s *service) GetNote(ctx context.Context, id string) (*models.Note, error) {
	if id == "" {
		return nil, ErrInvalidNoteID
	}
	data, err := s.doc.Load(ctx)
	if err != nil {
		return nil, err
	}
	i := noteIndex(data.Notes, id)
	if i < 0 {
		return nil, ErrNoteNotFound
	}
	note := data.Notes[i]
	return &note, nil
}

func (s *service) CreateNote(ctx context.Context, req CreateNoteRequest) (*models.Note, error) {
	note := models.Note{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(req.Title),
		Content:   req.Content,
		Tags:      normalizeTags(req.Tags),
		Pinned:    req.Pinned,
		CreatedAt: s.now(),
	}
	if err := validate(note); err != nil {
		return nil, err
	}
	err := s.doc.Update(ctx, func(data *models.NotesData) error {
		data.Notes = append(data.Notes, note)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return &note, nil
}

func (s *service) UpdateNote(ctx context.Context, req UpdateNoteRequest) (*models.Note, error) {
	return s.mutate(ctx, req.ID, func(note *models.Note) {
		if req.Title != nil {
			note.Title = strings.TrimSpace(*req.Title)
		}
		if req.Content != nil {
			note.Content = *req.Content
		}
		if req.Tags != nil {
			note.Tags = normalizeTags(req.Tags)
		}
	})
}

func (s *service) DeleteNote(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidNoteID
	}
	return s.doc.Update(ctx, func(data *models.NotesData) error {
		i := noteIndex(data.Notes, id)
		if i < 0 {
			return ErrNoteNotFound
		}
		data.Notes = slices.Delete(data.Notes, i, i+1)
		return nil
	})
}

func (s *service) TogglePin(ctx context.Context, id string) (*models.Note, error) {
	return s.mutate(ctx, id, func(note *models.Note) {
		note.Pinned = !note.Pinned
	})
}

func (s *service) mutate(ctx context.Context, id string, fn func(*models.Note)) (*models.Note, error) {
	if id == "" {
		return nil, ErrInvalidNoteID
	}
	var result models.Note
	err := s.doc.Update(ctx, func(data *models.NotesData) error {
		i := noteIndex(data.Notes, id)
		if i < 0 {
			return ErrNoteNotFound
		}
		note := data.Notes[i]
		fn(&note)
		if err := validate(note); err != nil {
			return err
		}
		note.UpdatedAt = s.now()
		data.Notes[i] = note
		result = note
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func validate(note models.Note) error {
	if note.Title == "" {
		return ErrEmptyTitle
	}
	if err := note.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidNote, err)
	}
	return nil
}

func noteIndex(notes []models.Note, id string) int {
	return slices.IndexFunc(notes, func(n models.Note) bool { return n.ID == id })
}

// normalizeTags lowercases, trims, dedupes and sorts tags
func normalizeTags(tags []string) []string {
	var out []string
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			out = append(out, tag)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
