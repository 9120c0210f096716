package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Renderer formats CLI output, styled or plain depending on the
// terminal and configuration.
type Renderer struct {
	color bool
}

// NewRenderer creates a renderer. With noColor set (or a non-terminal
// stdout), all output is plain text.
func NewRenderer(noColor bool) *Renderer {
	return &Renderer{color: UseColor(noColor)}
}

// Title renders a section heading
func (r *Renderer) Title(s string) string {
	if !r.color {
		return s
	}
	return TitleStyle.Render(s)
}

// Muted renders secondary text
func (r *Renderer) Muted(s string) string {
	if !r.color {
		return s
	}
	return MutedStyle.Render(s)
}

// Bold renders emphasized text using pterm
func (r *Renderer) Bold(s string) string {
	if !r.color {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// Item is one row in a rendered list
type Item struct {
	Name   string
	Detail string
}

// List renders a titled list of name/detail rows
func (r *Renderer) List(title string, items []Item) string {
	var b strings.Builder
	b.WriteString(r.Title(title) + "\n")

	if len(items) == 0 {
		b.WriteString(ListItemStyle.Render(r.Muted("(none)")) + "\n")
		return b.String()
	}

	width := 0
	for _, item := range items {
		if len(item.Name) > width {
			width = len(item.Name)
		}
	}

	for _, item := range items {
		name := fmt.Sprintf("%-*s", width, item.Name)
		line := r.Bold(name)
		if item.Detail != "" {
			line += "  " + r.Muted(item.Detail)
		}
		b.WriteString(ListItemStyle.Render(line) + "\n")
	}
	return b.String()
}
