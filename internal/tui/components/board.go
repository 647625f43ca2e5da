package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/lifeos/internal/kanban"
	"github.com/thenoetrevino/lifeos/internal/tui/theme"
	vm "github.com/thenoetrevino/lifeos/internal/viewmodel"
)

// DefaultColumnWidth is used when BoardProps.ColumnWidth is unset
const DefaultColumnWidth = 40

// BoardProps configures RenderBoard
type BoardProps[T any] struct {
	// RenderItem draws one card; width is the card's outer width
	RenderItem func(item T, state kanban.ItemState, width int) string

	// DragOverlay draws the dragged item at its drop target. When nil,
	// RenderItem is used with a selected state.
	DragOverlay func(item T, width int) string

	// EmptyMessage is shown in columns without items
	EmptyMessage string

	// Height is the total column height including borders; 0 means auto
	Height int

	ColumnWidth int

	// FirstColumn and VisibleColumns select the horizontal window of
	// columns to draw. VisibleColumns 0 draws every column.
	FirstColumn    int
	VisibleColumns int
}

// RenderBoard renders every column of the board side by side
//
// Layout:
//
//	╭ Todo (2) ─────╮ ╭ Done (0) ─────╮
//	│ ▲ more above  │ │               │
//	│ {card}        │ │ Nothing here  │
//	│ ▼ more below  │ │               │
//	╰───────────────╯ ╰───────────────╯
func RenderBoard[T any](b *kanban.Board[T], props BoardProps[T]) string {
	columns := b.Columns()
	if len(columns) == 0 {
		return SubtleStyle.Italic(true).Render("No columns")
	}
	if props.ColumnWidth <= 0 {
		props.ColumnWidth = DefaultColumnWidth
	}
	if props.EmptyMessage == "" {
		props.EmptyMessage = "Nothing here"
	}

	cursorCol, cursorRow := b.Cursor()
	drag := b.Drag()

	first, last := visibleRange(len(columns), props.FirstColumn, props.VisibleColumns)
	rendered := make([]string, 0, last-first)
	for c := first; c < last; c++ {
		focus := -1
		if c == cursorCol && !drag.Active() {
			focus = cursorRow
		}
		rendered = append(rendered, renderColumn(b, c, focus, props))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// renderColumn renders column c. focus is the row to keep scrolled into view,
// or -1 when the column has no cursor.
func renderColumn[T any](b *kanban.Board[T], c, focus int, props BoardProps[T]) string {
	column := b.Columns()[c]
	drag := b.Drag()
	cardWidth := props.ColumnWidth - 4

	header := TitleStyle.Render(fmt.Sprintf("%s (%d)", column.Title, column.Len()))
	if column.Color != "" {
		header = TitleStyle.Foreground(lipgloss.Color(toneColor(column.Color))).
			Render(fmt.Sprintf("%s (%d)", column.Title, column.Len()))
	}

	// Blocks are cards plus the overlay, in display order
	var blocks []string
	slot, hasOverlay := drag.OverlaySlot(c)
	for i, item := range column.Items {
		if hasOverlay && i == slot {
			blocks = append(blocks, overlayBlock(b, props, cardWidth))
			focus = len(blocks) - 1
		}
		blocks = append(blocks, props.RenderItem(item, b.ItemState(c, i), cardWidth))
	}
	if hasOverlay && slot >= column.Len() {
		blocks = append(blocks, overlayBlock(b, props, cardWidth))
		focus = len(blocks) - 1
	}

	var content string
	if len(blocks) == 0 {
		content = header + "\n" + SubtleStyle.Italic(true).Padding(1, 0).Render(props.EmptyMessage)
	} else {
		content = header + "\n" + scrollWindow(blocks, max(focus, 0), props.Height)
	}

	style := ColumnStyle.Width(props.ColumnWidth - 2)
	selectedCol, _ := b.Cursor()
	switch {
	case hasOverlay:
		style = style.BorderForeground(lipgloss.Color(theme.DragBorder))
	case c == selectedCol && !drag.Active():
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if props.Height > 0 {
		// Height sets the content area; borders take two lines
		style = style.Height(props.Height - 2)
	}
	return style.Render(content)
}

// visibleRange clamps the [first, first+count) window to n columns
func visibleRange(n, first, count int) (int, int) {
	if count <= 0 || count >= n {
		return 0, n
	}
	first = min(max(first, 0), n-count)
	return first, first + count
}

func overlayBlock[T any](b *kanban.Board[T], props BoardProps[T], width int) string {
	item, ok := b.Dragged()
	if !ok {
		return ""
	}
	if props.DragOverlay != nil {
		return props.DragOverlay(item, width)
	}
	return props.RenderItem(item, kanban.ItemState{Selected: true}, width)
}

// scrollWindow picks the run of blocks that fits in height and contains
// focus, adding indicators for hidden blocks. height 0 shows everything.
func scrollWindow(blocks []string, focus, height int) string {
	if height <= 0 {
		return strings.Join(blocks, "\n")
	}

	// Border(2) + header(1) + both indicators(2)
	const columnOverhead = 5
	available := max(height-columnOverhead, 1)

	start := 0
	for start < focus && linesIn(blocks[start:focus+1]) > available {
		start++
	}
	end := start
	used := 0
	for end < len(blocks) {
		h := lipgloss.Height(blocks[end])
		if end > start && used+h > available {
			break
		}
		used += h
		end++
	}

	var sb strings.Builder
	if start > 0 {
		sb.WriteString(IndicatorStyle.Render("▲ more above"))
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Join(blocks[start:end], "\n"))
	if end < len(blocks) {
		sb.WriteString("\n")
		sb.WriteString(IndicatorStyle.Render("▼ more below"))
	}
	return sb.String()
}

func linesIn(blocks []string) int {
	n := 0
	for _, b := range blocks {
		n += lipgloss.Height(b)
	}
	return n
}

// toneColor resolves a column tone against the active theme. Anything else
// is taken as a literal color.
func toneColor(c string) string {
	switch vm.Tone(c) {
	case vm.ToneFinished:
		return theme.Success
	case vm.ToneActive:
		return theme.Warning
	case vm.ToneWaiting:
		return theme.Secondary
	case vm.ToneNeutral:
		return theme.Title
	}
	return c
}
