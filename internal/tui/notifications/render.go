package notifications

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/thenoetrevino/lifeos/internal/tui/state"
)

// Render renders a bordered notification banner
func Render(severity Severity, message string) string {
	st := severity.style()

	headerText := st.icon + " " + st.title
	width := max(lipgloss.Width(headerText), lipgloss.Width(message))

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(st.foreground)).
		Bold(true).
		Width(width).
		Render(headerText)
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(st.foreground)).
		Width(width).
		Render(message)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(st.background)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

// RenderInline renders a compact single-line notification for the tab bar,
// truncated to maxWidth cells when maxWidth is positive
func RenderInline(severity Severity, message string, maxWidth int) string {
	st := severity.style()
	content := st.icon + " " + message
	if maxWidth > 2 {
		content = truncate.StringWithTail(content, uint(maxWidth-2), "…")
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(st.foreground)).
		Background(lipgloss.Color(st.background)).
		Padding(0, 1).
		Render(content)
}

// RenderFromState renders a notification banner from a state.Notification
func RenderFromState(n state.Notification) string {
	return Render(FromLevel(n.Level), n.Message)
}

// RenderInlineFromState renders a compact inline notification from state
func RenderInlineFromState(n state.Notification, maxWidth int) string {
	return RenderInline(FromLevel(n.Level), n.Message, maxWidth)
}
