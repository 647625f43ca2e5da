// Package adapters maps domain records onto the generic board columns and
// card props the TUI renders. Every function here is pure.
package adapters

import (
	"fmt"
	"time"

	"github.com/thenoetrevino/lifeos/internal/models"
	"github.com/thenoetrevino/lifeos/internal/viewmodel"
)

// Handlers are the callbacks a card's actions invoke. Nil handlers leave the
// matching action inert; cards only list actions that make sense for T.
type Handlers[T any] struct {
	OnOpen      func(T)
	OnEdit      func(T)
	OnAdvance   func(T)
	OnTogglePin func(T)
	OnDelete    func(T)
}

func bind[T any](fn func(T), v T) func() {
	if fn == nil {
		return nil
	}
	return func() { fn(v) }
}

func deleteAction[T any](h Handlers[T], v T) viewmodel.CardAction {
	return viewmodel.CardAction{
		Label:     "Delete",
		Icon:      "✗",
		OnClick:   bind(h.OnDelete, v),
		Variant:   viewmodel.ActionDestructive,
		Separator: true,
	}
}

func priorityBadge(p models.Priority) (viewmodel.CardBadge, bool) {
	switch p {
	case models.PriorityHigh:
		return viewmodel.CardBadge{Label: "high", Variant: viewmodel.BadgeDanger, Icon: "▲"}, true
	case models.PriorityMedium:
		return viewmodel.CardBadge{Label: "medium", Variant: viewmodel.BadgeWarning}, true
	case models.PriorityLow:
		return viewmodel.CardBadge{Label: "low", Variant: viewmodel.BadgeSecondary, Icon: "▼"}, true
	}
	return viewmodel.CardBadge{}, false
}

func formatDate(t time.Time) string {
	return t.Format("Jan 2")
}

// statusColor names the tone a column header is drawn in
func statusColor(stage string) string {
	return string(viewmodel.StageTone(stage))
}

func money(v float64) string {
	return fmt.Sprintf("$%.0f", v)
}
