package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress_Clamps(t *testing.T) {
	assert.Contains(t, RenderProgress(150, 30), "100%")
	assert.Contains(t, RenderProgress(-5, 30), "  0%")
	assert.Contains(t, RenderProgress(42, 30), " 42%")
}

func TestRenderMarkdown_EmptyFallback(t *testing.T) {
	assert.Contains(t, RenderMarkdown(MarkdownProps{Content: "  ", Empty: "Empty note"}), "Empty note")
	assert.Contains(t, RenderMarkdown(MarkdownProps{Content: "# Heading\n\nbody", Width: 40}), "body")
}
