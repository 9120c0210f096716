package topics

// Renderer formats raw topic content for terminal display.
type Renderer interface {
	Render(content, format string) string
}

// PlainRenderer passes content through untouched. It is the fallback
// when no renderer is configured.
type PlainRenderer struct{}

// Render returns the content as-is.
func (PlainRenderer) Render(content, format string) string {
	return content
}
