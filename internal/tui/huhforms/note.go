package huhforms

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/lifeos/internal/models"
	"github.com/thenoetrevino/lifeos/internal/services/note"
)

// NoteDraft holds the fields of a note. Tags are comma separated.
type NoteDraft struct {
	Title   string
	Content string
	Tags    string
	Confirm bool
}

// NewNoteDraft returns an empty draft
func NewNoteDraft() *NoteDraft {
	return &NoteDraft{Confirm: true}
}

// NoteDraftFrom prefills a draft from an existing note
func NoteDraftFrom(n models.Note) *NoteDraft {
	return &NoteDraft{
		Title:   n.Title,
		Content: n.Content,
		Tags:    strings.Join(n.Tags, ", "),
		Confirm: true,
	}
}

// CreateNoteForm creates a huh form for adding/editing a note
func CreateNoteForm(d *NoteDraft, contentLines int) *huh.Form {
	return newForm("Save this note?", &d.Confirm,
		huh.NewInput().
			Key("title").
			Title("Title").
			Validate(required("title")).
			Value(&d.Title),

		huh.NewText().
			Key("content").
			Title("Content (markdown)").
			CharLimit(20000).
			Lines(contentLines).
			Value(&d.Content),

		huh.NewInput().
			Key("tags").
			Title("Tags (comma separated)").
			Value(&d.Tags),
	)
}

// CreateRequest converts the draft into a new note
func (d *NoteDraft) CreateRequest() note.CreateNoteRequest {
	return note.CreateNoteRequest{
		Title:   strings.TrimSpace(d.Title),
		Content: d.Content,
		Tags:    splitTags(d.Tags),
	}
}

// UpdateRequest converts the draft into an update of note id
func (d *NoteDraft) UpdateRequest(id string) note.UpdateNoteRequest {
	title := strings.TrimSpace(d.Title)
	content := d.Content
	return note.UpdateNoteRequest{
		ID:      id,
		Title:   &title,
		Content: &content,
		Tags:    splitTags(d.Tags),
	}
}
