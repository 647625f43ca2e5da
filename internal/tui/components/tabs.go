package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderTabs renders a tab bar with the given tab names
// selectedIdx indicates which tab is active (0-indexed)
// width is the total width to fill with the tab gap
//
// Layout:
//
//	╭───────╮╭─────────────╮             [Notification]
//	│ Tasks ││ Freelancing │──────────────────────────
func RenderTabs(tabs []string, selectedIdx int, width int, notification string) string {
	rendered := make([]string, len(tabs))
	for i, name := range tabs {
		if i == selectedIdx {
			rendered[i] = ActiveTabStyle.Render(name)
		} else {
			rendered[i] = TabStyle.Render(name)
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	gapWidth := max(width-lipgloss.Width(row)-lipgloss.Width(notification)-2, 0)
	gap := TabGapStyle.Render(strings.Repeat(" ", gapWidth))

	if notification != "" {
		return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap, notification)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap)
}
