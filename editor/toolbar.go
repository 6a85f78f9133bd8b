package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/mdflourish/format"
)

const (
	toggleEditLabel    = "Preview"
	togglePreviewLabel = "Edit"
	separatorText      = "│"
)

// ButtonContext is passed to a ButtonRenderer for every format button.
type ButtonContext struct {
	Format format.Format
	Index  int
	// Disabled is set while previewing; clicks and bindings are ignored then.
	Disabled bool
	// Style is the editor's resolved style, including the foreground tint.
	Style Style
}

// ButtonRenderer renders one format button. The result must be a single
// line.
type ButtonRenderer func(ButtonContext) string

// DefaultButtonRenderer renders the format title with the format's own style
// layered over Style.Button.
func DefaultButtonRenderer(ctx ButtonContext) string {
	st := ctx.Style.Button
	if ctx.Disabled {
		st = st.Faint(true)
	}
	return st.Render(ctx.Format.Style.Render(ctx.Format.Title))
}

type segmentKind uint8

const (
	segmentToggle segmentKind = iota
	segmentSeparator
	segmentFormat
)

// segment is one laid out element of the button row.
type segment struct {
	kind   segmentKind
	index  int // into Model.formats for segmentFormat
	x0, x1 int
	text   string
}

func (m Model) toggleLabel() string {
	if m.mode == Previewing {
		return togglePreviewLabel
	}
	return toggleEditLabel
}

// toolbarSegments lays out the button row left to right. Elements that do
// not fit in the width are dropped.
func (m Model) toolbarSegments() []segment {
	var segs []segment
	x := 0
	add := func(kind segmentKind, index int, s string) bool {
		s = firstLine(s)
		w := lipgloss.Width(s)
		if m.width > 0 && x+w > m.width {
			return false
		}
		segs = append(segs, segment{kind: kind, index: index, x0: x, x1: x + w, text: s})
		x += w
		return true
	}

	toggle := m.style.Toggle
	if m.cfg.OnlyPreview {
		toggle = toggle.Faint(true)
	}
	if !add(segmentToggle, -1, toggle.Render(m.toggleLabel())) {
		return segs
	}
	if !add(segmentSeparator, -1, m.style.Separator.Render(separatorText)) {
		return segs
	}

	render := m.cfg.ButtonRenderer
	if render == nil {
		render = DefaultButtonRenderer
	}
	for i, f := range m.formats {
		ctx := ButtonContext{
			Format:   f,
			Index:    i,
			Disabled: m.mode != Editing,
			Style:    m.style,
		}
		if !add(segmentFormat, i, render(ctx)) {
			break
		}
	}
	return segs
}

func (m Model) toolbarView() string {
	if m.palette.open {
		return m.paletteView()
	}
	var sb strings.Builder
	for _, s := range m.toolbarSegments() {
		sb.WriteString(s.text)
	}
	return sb.String()
}

func (m Model) segmentAt(x int) (segment, bool) {
	for _, s := range m.toolbarSegments() {
		if x >= s.x0 && x < s.x1 {
			return s, true
		}
	}
	return segment{}, false
}

// clickToolbar triggers the button under column x.
func (m Model) clickToolbar(x int) Model {
	if m.palette.open {
		return m
	}
	s, ok := m.segmentAt(x)
	if !ok {
		return m
	}
	switch s.kind {
	case segmentToggle:
		return m.TogglePreview()
	case segmentFormat:
		return m.ApplyFormat(m.formats[s.index])
	}
	return m
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
