package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
)

// Renderer turns markdown into styled terminal text.
type Renderer struct {
	tr    *glamour.TermRenderer
	width int
}

// NewRenderer builds a renderer that wraps output at width cells
// (0 disables wrapping). Extra options are applied after the style table and
// wrap width, so they can override both.
func NewRenderer(styles ansi.StyleConfig, width int, opts ...glamour.TermRendererOption) (*Renderer, error) {
	if width < 0 {
		width = 0
	}
	all := make([]glamour.TermRendererOption, 0, len(opts)+2)
	all = append(all, glamour.WithStyles(styles), glamour.WithWordWrap(width))
	all = append(all, opts...)

	tr, err := glamour.NewTermRenderer(all...)
	if err != nil {
		return nil, fmt.Errorf("create markdown renderer: %w", err)
	}
	return &Renderer{tr: tr, width: width}, nil
}

func (r *Renderer) Width() int { return r.width }

// Render renders text, or placeholder when text is empty.
// Trailing newlines are trimmed so the output can be stacked with other views.
func (r *Renderer) Render(text, placeholder string) (string, error) {
	src := text
	if src == "" {
		src = placeholder
	}
	out, err := r.tr.Render(src)
	if err != nil {
		return src, fmt.Errorf("render markdown: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}
