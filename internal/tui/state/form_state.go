package state

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// FormState holds the huh form currently on screen.
// Only one form is open at a time; every tab's add and edit forms share it.
type FormState struct {
	// Form is the active form, nil when none is open
	Form *huh.Form

	// Title is drawn above the form
	Title string

	// Confirm points at the form's confirmation field. A completed form
	// whose confirmation is false is discarded.
	Confirm *bool

	// Submit persists the form's values
	Submit func() tea.Cmd

	// ReturnMode is restored when the form closes
	ReturnMode Mode
}

// NewFormState creates an empty FormState.
func NewFormState() *FormState {
	return &FormState{}
}

// Open replaces the current form. Closing it returns to returnMode.
func (s *FormState) Open(title string, form *huh.Form, confirm *bool, submit func() tea.Cmd, returnMode Mode) {
	s.Form = form
	s.Title = title
	s.Confirm = confirm
	s.Submit = submit
	s.ReturnMode = returnMode
}

// Confirmed reports whether the user chose to submit
func (s *FormState) Confirmed() bool {
	return s.Confirm == nil || *s.Confirm
}

// Clear closes the form
func (s *FormState) Clear() {
	*s = FormState{}
}
