package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Note is a markdown note
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags,omitempty"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// Validate checks the note's fields
func (n Note) Validate() error {
	return validation.ValidateStruct(&n,
		validation.Field(&n.Title, validation.Required, validation.Length(1, 255)),
	)
}

// LastModified returns UpdatedAt, or CreatedAt for notes never edited
func (n Note) LastModified() time.Time {
	if n.UpdatedAt.IsZero() {
		return n.CreatedAt
	}
	return n.UpdatedAt
}

// NotesData is the document stored under NotesKey
type NotesData struct {
	Notes []Note `json:"notes"`
}
