package topics

import (
	"os"

	"github.com/charmbracelet/glamour"
)

// Renderer formats raw topic content for display. ext is the topic file's
// extension including the dot.
type Renderer interface {
	Render(content string, ext string) string
}

// PlainRenderer prints topics exactly as written
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, ext string) string {
	return content
}

// MarkdownRenderer renders .md topics through glamour. Other topics and any
// glamour failure fall back to the raw content.
type MarkdownRenderer struct {
	// Style is a glamour style name or path; empty picks one from the terminal
	Style string
	// WrapWidth wraps rendered text, 0 keeps glamour's default
	WrapWidth int
}

// NewMarkdownRenderer returns a renderer that uses the plain "notty" style
// when NO_COLOR is set and detects the style from the terminal otherwise.
func NewMarkdownRenderer() *MarkdownRenderer {
	r := &MarkdownRenderer{}
	if os.Getenv("NO_COLOR") != "" {
		r.Style = "notty"
	}
	return r
}

func (r *MarkdownRenderer) Render(content string, ext string) string {
	if ext != ".md" {
		return content
	}

	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if r.Style != "" {
		opts = []glamour.TermRendererOption{glamour.WithStylePath(r.Style)}
	}
	if r.WrapWidth > 0 {
		opts = append(opts, glamour.WithWordWrap(r.WrapWidth))
	}

	term, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return content
	}
	out, err := term.Render(content)
	if err != nil {
		return content
	}
	return out
}
