package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type StatusBarProps struct {
	Width int
	// Hint replaces the right-hand text, e.g. while dragging
	Hint string
}

// RenderStatusBar renders a status bar with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	right := props.Hint
	if right == "" {
		right = "press ? for help"
	}

	left := SubtleStyle.Render("lifeos")
	rightRendered := SubtleStyle.Render(right)

	gapWidth := max(props.Width-lipgloss.Width(left)-lipgloss.Width(rightRendered), 1)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gapWidth), rightRendered)
}
