package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/lifeos/internal/kanban"
	"github.com/thenoetrevino/lifeos/internal/tui/theme"
	vm "github.com/thenoetrevino/lifeos/internal/viewmodel"
)

// DescriptionLines is how many lines of description a card shows
const DescriptionLines = 2

// DefaultCardWidth is used when CardProps.Width is unset
const DefaultCardWidth = 36

// RenderActionMenu renders actions vertically, highlighting the focused one
func RenderActionMenu(actions []vm.CardAction, focused int, width int) string {
	if len(actions) == 0 {
		return ""
	}
	var lines []string
	for _, e := range vm.MenuEntries(actions) {
		if e.Divider {
			lines = append(lines, SubtleStyle.Render(strings.Repeat("─", max(width, 1))))
			continue
		}
		lines = append(lines, renderAction(actions[e.Action], e.Action == focused))
	}
	return strings.Join(lines, "\n")
}

// renderActionHints renders actions inline for ListCards
func renderActionHints(actions []vm.CardAction) string {
	var parts []string
	for _, e := range vm.MenuEntries(actions) {
		if e.Divider {
			parts = append(parts, SubtleStyle.Render("│"))
			continue
		}
		parts = append(parts, renderAction(actions[e.Action], false))
	}
	return strings.Join(parts, " ")
}

func renderAction(a vm.CardAction, focused bool) string {
	label := a.Label
	if a.Icon != "" {
		label = a.Icon + " " + label
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))
	if a.Variant == vm.ActionDestructive {
		style = style.Foreground(lipgloss.Color(theme.Delete))
	}
	if focused {
		return style.Bold(true).Reverse(true).Render(" " + label + " ")
	}
	return style.Render(label)
}

// RenderBadge renders a single badge
func RenderBadge(b vm.CardBadge) string {
	label := b.Label
	if b.Icon != "" {
		label = b.Icon + " " + label
	}

	style := lipgloss.NewStyle()
	switch b.Variant {
	case vm.BadgeSecondary:
		style = style.Foreground(lipgloss.Color(theme.Secondary))
	case vm.BadgeDestructive, vm.BadgeDanger:
		style = style.Foreground(lipgloss.Color(theme.Danger)).Bold(true)
	case vm.BadgeSuccess:
		style = style.Foreground(lipgloss.Color(theme.Success))
	case vm.BadgeWarning:
		style = style.Foreground(lipgloss.Color(theme.Warning))
	case vm.BadgeOutline:
		return style.Foreground(lipgloss.Color(theme.Subtle)).Render("[" + label + "]")
	default:
		style = style.Foreground(lipgloss.Color(theme.Highlight))
	}
	return style.Render(label)
}

func renderBadges(badges []vm.CardBadge) string {
	if len(badges) == 0 {
		return ""
	}
	parts := make([]string, len(badges))
	for i, b := range badges {
		parts[i] = RenderBadge(b)
	}
	return strings.Join(parts, " ")
}

// TruncateDescription wraps text to width and keeps at most maxLines lines,
// ending with an ellipsis when anything was cut
func TruncateDescription(text string, width, maxLines int) string {
	text = strings.TrimSpace(text)
	if text == "" || width <= 0 || maxLines <= 0 {
		return ""
	}

	wrapped := wordwrap.String(strings.Join(strings.Fields(text), " "), width)
	lines := strings.Split(wrapped, "\n")
	cut := len(lines) > maxLines
	if cut {
		lines = lines[:maxLines]
	}
	for i, line := range lines {
		// wordwrap leaves words longer than width intact
		lines[i] = truncate.StringWithTail(line, uint(width), "…")
	}
	if cut {
		last := lines[maxLines-1]
		lines[maxLines-1] = truncate.StringWithTail(last+" …", uint(width), "…")
	}
	return strings.Join(lines, "\n")
}

func innerWidth(p vm.CardProps) int {
	w := p.Width
	if w <= 0 {
		w = DefaultCardWidth
	}
	// border + horizontal padding
	return max(w-4, 4)
}

// cardBody renders the stacked title, description, badges and children
func cardBody(p vm.CardProps) []string {
	inner := innerWidth(p)
	title := truncate.StringWithTail(p.Title, uint(inner), "…")
	sections := []string{lipgloss.NewStyle().Bold(true).Render(title)}
	if desc := TruncateDescription(p.Description, inner, DescriptionLines); desc != "" {
		sections = append(sections, SubtleStyle.Render(desc))
	}
	if badges := renderBadges(p.Badges); badges != "" {
		sections = append(sections, badges)
	}
	if p.Progress != nil {
		sections = append(sections, RenderProgress(*p.Progress, inner))
	}
	if p.Footer != "" {
		sections = append(sections, SubtleStyle.Render(truncate.StringWithTail(p.Footer, uint(inner), "…")))
	}
	if p.Children != "" {
		sections = append(sections, p.Children)
	}
	return sections
}

// RenderKanbanCard renders a board card. A selected card shows its action
// menu with focusedAction highlighted; a dimmed card is the placeholder left
// behind by a dragged card.
func RenderKanbanCard(p vm.CardProps, state kanban.ItemState, focusedAction int) string {
	sections := cardBody(p)
	if state.Selected && len(p.Actions) > 0 && !state.Dimmed {
		sections = append(sections, RenderActionMenu(p.Actions, focusedAction, innerWidth(p)))
	}

	style := CardStyle.Width(innerWidth(p) + 2)
	switch {
	case state.Dimmed:
		style = style.Faint(true).BorderStyle(lipgloss.NormalBorder())
	case state.Selected:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	return style.Render(strings.Join(sections, "\n"))
}

// RenderDragOverlay renders the card being dragged at its drop target
func RenderDragOverlay(p vm.CardProps) string {
	return CardStyle.
		Width(innerWidth(p) + 2).
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(theme.DragBorder)).
		Render(strings.Join(cardBody(p), "\n"))
}

// RenderListCard renders a card for list views with inline action hints
func RenderListCard(p vm.CardProps, selected bool) string {
	sections := cardBody(p)
	if hints := renderActionHints(p.Actions); hints != "" {
		sections = append(sections, hints)
	}

	style := CardStyle.Width(innerWidth(p) + 2)
	if selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	return style.Render(strings.Join(sections, "\n"))
}
