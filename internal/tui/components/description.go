package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

type MarkdownProps struct {
	Content string
	Width   int
	// Empty is shown when Content is blank
	Empty string
}

// Glamour renderers are expensive to build, so keep one per width
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderMarkdown renders note content. It falls back to the raw text when
// glamour fails.
func RenderMarkdown(props MarkdownProps) string {
	if strings.TrimSpace(props.Content) == "" {
		empty := props.Empty
		if empty == "" {
			empty = "No content"
		}
		return SubtleStyle.Italic(true).Render(empty)
	}

	renderer, err := getRenderer(max(props.Width, 20))
	if err != nil {
		return props.Content
	}
	out, err := renderer.Render(props.Content)
	if err != nil {
		return props.Content
	}
	return strings.TrimSpace(out)
}
