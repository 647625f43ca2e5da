package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/lifeos/internal/kanban"
	vm "github.com/thenoetrevino/lifeos/internal/viewmodel"
)

func TestRenderActionMenu_DividerPosition(t *testing.T) {
	actions := []vm.CardAction{
		{Label: "Edit"},
		{Label: "Delete", Separator: true, Variant: vm.ActionDestructive},
	}

	lines := strings.Split(RenderActionMenu(actions, -1, 10), "\n")

	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Edit")
	assert.Contains(t, lines[1], "─")
	assert.Contains(t, lines[2], "Delete")
}

func TestTruncateDescription(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantLines int
		wantTail  bool
	}{
		{"empty", "   ", 0, false},
		{"short", "one line", 1, false},
		{"long", strings.Repeat("word ", 40), 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateDescription(tt.text, 20, 2)
			if tt.wantLines == 0 {
				assert.Empty(t, got)
				return
			}
			lines := strings.Split(got, "\n")
			assert.Len(t, lines, tt.wantLines)
			for _, l := range lines {
				assert.LessOrEqual(t, lipgloss.Width(l), 20)
			}
			assert.Equal(t, tt.wantTail, strings.HasSuffix(got, "…"))
		})
	}
}

func TestRenderKanbanCard_ActionsOnlyWhenSelected(t *testing.T) {
	props := vm.CardProps{
		Title:   "Write report",
		Badges:  []vm.CardBadge{{Label: "high", Variant: vm.BadgeDanger}},
		Actions: []vm.CardAction{{Label: "Edit"}, {Label: "Delete", Separator: true}},
	}

	idle := RenderKanbanCard(props, kanban.ItemState{}, 0)
	selected := RenderKanbanCard(props, kanban.ItemState{Selected: true}, 0)

	assert.Contains(t, idle, "Write report")
	assert.Contains(t, idle, "high")
	assert.NotContains(t, idle, "Delete")
	assert.Contains(t, selected, "Delete")
}

func TestRenderListCard_ShowsActionHints(t *testing.T) {
	props := vm.CardProps{
		Title:       "Algebra",
		Description: "Linear maps",
		Actions:     []vm.CardAction{{Label: "Open"}, {Label: "Delete", Separator: true}},
	}

	out := RenderListCard(props, false)

	assert.Contains(t, out, "Algebra")
	assert.Contains(t, out, "Linear maps")
	assert.Contains(t, out, "Open")
	assert.Contains(t, out, "│")
}

func TestRenderKanbanCard_ProgressAndFooter(t *testing.T) {
	props := vm.CardProps{
		Title:    "Website",
		Progress: vm.Percent(140),
		Footer:   "1/2 tasks",
	}

	out := RenderKanbanCard(props, kanban.ItemState{}, -1)

	assert.Contains(t, out, "100%")
	assert.Contains(t, out, "1/2 tasks")
	assert.NotContains(t, RenderKanbanCard(vm.CardProps{Title: "bare"}, kanban.ItemState{}, -1), "%")
}
