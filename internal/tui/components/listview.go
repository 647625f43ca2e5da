package components

import (
	"strings"
)

// ListViewProps configures RenderListView
type ListViewProps[T any] struct {
	Items        []T
	GetItemID    func(T) string
	RenderItem   func(item T, selected bool) string
	EmptyMessage string
	SelectedID   string
}

// RenderListView renders items one after another. With no items it shows
// the empty message and RenderItem is never called.
func RenderListView[T any](props ListViewProps[T]) string {
	if len(props.Items) == 0 {
		msg := props.EmptyMessage
		if msg == "" {
			msg = "Nothing here yet"
		}
		return SubtleStyle.Italic(true).Padding(1, 2).Render(msg)
	}

	rows := make([]string, len(props.Items))
	for i, item := range props.Items {
		selected := props.GetItemID != nil && props.SelectedID != "" && props.GetItemID(item) == props.SelectedID
		rows[i] = props.RenderItem(item, selected)
	}
	return strings.Join(rows, "\n")
}
