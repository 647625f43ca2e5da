// Package huhforms builds the add and edit forms of every tab. Each form is
// bound to a draft struct whose methods turn the entered text into service
// requests.
package huhforms

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// DateLayout is the format date fields accept
const DateLayout = "2006-01-02"

func required(label string) func(string) error {
	return func(s string) error {
		return validation.Validate(strings.TrimSpace(s), validation.Required.Error(label+" is required"))
	}
}

func validDate(s string) error {
	return validation.Validate(strings.TrimSpace(s), validation.Date(DateLayout).Error("use YYYY-MM-DD"))
}

func validNumber(s string) error {
	return validation.Validate(strings.TrimSpace(s), is.Float.Error("must be a number"))
}

func validWholeNumber(s string) error {
	return validation.Validate(strings.TrimSpace(s), is.Int.Error("must be a whole number"))
}

func validURL(s string) error {
	return validation.Validate(strings.TrimSpace(s), is.URL.Error("must be a valid URL"))
}

// parseDate returns nil for an empty field
func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseFloat returns nil for an empty field
func parseFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

func formatFloat(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// splitTags turns "go, tui ,,cli" into [go tui cli]
func splitTags(s string) []string {
	tags := []string{}
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func options[T ~string](values []T) []huh.Option[string] {
	opts := make([]huh.Option[string], len(values))
	for i, v := range values {
		opts[i] = huh.NewOption(string(v), string(v))
	}
	return opts
}

// newForm appends the confirmation field and applies the shared keymap
func newForm(confirmTitle string, confirm *bool, fields ...huh.Field) *huh.Form {
	fields = append(fields,
		huh.NewConfirm().
			Key("confirm").
			Title(confirmTitle).
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	)
	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(false)
}
