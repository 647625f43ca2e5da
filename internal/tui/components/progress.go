package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/lifeos/internal/tui/theme"
)

// RenderProgress renders a static progress bar for a 0-100 percentage,
// followed by the percentage. Out-of-range values are clamped.
func RenderProgress(percent float64, width int) string {
	percent = min(max(percent, 0), 100)
	label := fmt.Sprintf(" %3.0f%%", percent)

	bar := progress.New(
		progress.WithSolidFill(theme.Highlight),
		progress.WithoutPercentage(),
		progress.WithWidth(max(width-lipgloss.Width(label), 4)),
	)
	return bar.ViewAs(percent/100) + SubtleStyle.Render(label)
}
