package topics

import (
	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics with glamour. Style and wrap
// width come from the user's output configuration; non-markdown
// content passes through untouched.
type GlamourRenderer struct {
	style string
	width int
}

// NewGlamourRenderer creates a markdown renderer. An empty or "auto"
// style is auto-detected from the terminal; width 0 leaves wrapping to
// glamour's default.
func NewGlamourRenderer(style string, width int) *GlamourRenderer {
	return &GlamourRenderer{style: style, width: width}
}

// Render converts markdown to terminal output. Any glamour error falls
// back to the raw content.
func (r *GlamourRenderer) Render(content, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	switch r.style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	default:
		options = append(options, glamour.WithStylePath(r.style))
	}
	if r.width > 0 {
		options = append(options, glamour.WithWordWrap(r.width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
