package huhforms

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/lifeos/internal/config"
)

// CreateLifeosTheme builds the form theme from the configured color scheme.
// Validation messages use the delete color so they read like the inline
// error notifications.
func CreateLifeosTheme(colorScheme config.ColorScheme) *huh.Theme {
	var (
		accent = lipgloss.Color(colorScheme.Accent)
		ok     = lipgloss.Color(colorScheme.Create)
		muted  = lipgloss.Color(colorScheme.Subtle)
		text   = lipgloss.Color(colorScheme.Normal)
		bad    = lipgloss.Color(colorScheme.Delete)
		head   = lipgloss.Color(colorScheme.Title)
	)

	t := huh.ThemeBase()
	f := &t.Focused

	f.Base = f.Base.BorderForeground(accent)
	f.Card = f.Base
	f.Title = f.Title.Foreground(head).Bold(true)
	f.NoteTitle = f.NoteTitle.Foreground(head).Bold(true).MarginBottom(1)
	f.Description = f.Description.Foreground(muted)
	f.ErrorIndicator = f.ErrorIndicator.Foreground(bad)
	f.ErrorMessage = f.ErrorMessage.Foreground(bad)

	f.SelectSelector = f.SelectSelector.Foreground(accent)
	f.Option = f.Option.Foreground(text)
	f.SelectedOption = f.SelectedOption.Foreground(ok)
	f.UnselectedOption = f.UnselectedOption.Foreground(text)

	f.FocusedButton = f.FocusedButton.Foreground(lipgloss.Color("#FFFFFF")).Background(accent).Bold(true)
	f.BlurredButton = f.BlurredButton.Foreground(text).Background(muted)

	f.TextInput.Cursor = f.TextInput.Cursor.Foreground(accent)
	f.TextInput.Placeholder = f.TextInput.Placeholder.Foreground(muted)
	f.TextInput.Prompt = f.TextInput.Prompt.Foreground(accent)
	f.TextInput.Text = f.TextInput.Text.Foreground(text)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Title = t.Blurred.Title.Foreground(muted)
	t.Blurred.TextInput.Prompt = t.Blurred.TextInput.Prompt.Foreground(muted)

	t.Help.ShortKey = t.Help.ShortKey.Foreground(accent)
	t.Help.ShortDesc = t.Help.ShortDesc.Foreground(muted)

	return t
}
