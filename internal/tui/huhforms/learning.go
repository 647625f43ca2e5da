package huhforms

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/lifeos/internal/models"
	"github.com/thenoetrevino/lifeos/internal/services/programming"
)

// LearningDraft holds the fields of a learning item
type LearningDraft struct {
	Title   string
	Type    string
	URL     string
	Notes   string
	Confirm bool
}

// NewLearningDraft returns an empty draft for a course
func NewLearningDraft() *LearningDraft {
	return &LearningDraft{Type: string(models.LearningCourse), Confirm: true}
}

// LearningDraftFrom prefills a draft from an existing item
func LearningDraftFrom(item models.LearningItem) *LearningDraft {
	return &LearningDraft{
		Title:   item.Title,
		Type:    string(item.Type),
		URL:     item.URL,
		Notes:   item.Notes,
		Confirm: true,
	}
}

// CreateLearningForm creates a huh form for adding/editing a learning item
func CreateLearningForm(d *LearningDraft) *huh.Form {
	return newForm("Save this item?", &d.Confirm,
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("What are you learning?").
			Validate(required("title")).
			Value(&d.Title),

		huh.NewSelect[string]().
			Key("type").
			Title("Type").
			Options(options(models.LearningTypes)...).
			Value(&d.Type),

		huh.NewInput().
			Key("url").
			Title("URL (optional)").
			Validate(validURL).
			Value(&d.URL),

		huh.NewText().
			Key("notes").
			Title("Notes (optional)").
			Lines(3).
			Value(&d.Notes),
	)
}

// CreateRequest converts the draft into a new item in status
func (d *LearningDraft) CreateRequest(status models.LearningStatus) programming.CreateLearningItemRequest {
	return programming.CreateLearningItemRequest{
		Title:  strings.TrimSpace(d.Title),
		Type:   models.LearningType(d.Type),
		Status: status,
		URL:    strings.TrimSpace(d.URL),
		Notes:  d.Notes,
	}
}

// UpdateRequest converts the draft into an update of item id
func (d *LearningDraft) UpdateRequest(id string) programming.UpdateLearningItemRequest {
	title := strings.TrimSpace(d.Title)
	kind := models.LearningType(d.Type)
	url := strings.TrimSpace(d.URL)
	notes := d.Notes
	return programming.UpdateLearningItemRequest{
		ID:    id,
		Title: &title,
		Type:  &kind,
		URL:   &url,
		Notes: &notes,
	}
}
