package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	overlay "github.com/rmhubbert/bubbletea-overlay"
	"go.uber.org/zap"

	"github.com/iw2rmb/mdflourish/format"
)

const (
	palettePrompt  = "format: "
	paletteMaxRows = 8
)

// paletteState is the one-line fuzzy format picker shown in place of the
// button row.
type paletteState struct {
	open     bool
	query    []rune
	matches  []format.Match
	selected int
}

func (m *Model) openPalette() {
	m.palette = paletteState{open: true, matches: format.Filter(m.formats, "")}
}

// PaletteOpen reports whether the format palette is shown.
func (m Model) PaletteOpen() bool { return m.palette.open }

func (m *Model) refilterPalette() {
	m.palette.matches = format.Filter(m.formats, string(m.palette.query))
	m.palette.selected = 0
}

func (m Model) updatePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	p := &m.palette
	switch {
	case key.Matches(msg, km.Cancel):
		m.palette = paletteState{}
	case key.Matches(msg, km.Enter):
		if p.selected >= len(p.matches) {
			return m, nil
		}
		f := p.matches[p.selected].Format
		m.palette = paletteState{}
		m.log.Debug("palette pick", zap.String("format", f.Key))
		return m.ApplyFormat(f), nil
	case key.Matches(msg, km.PaletteNext):
		if n := len(p.matches); n > 0 {
			p.selected = (p.selected + 1) % n
		}
	case key.Matches(msg, km.PalettePrev):
		if n := len(p.matches); n > 0 {
			p.selected = (p.selected - 1 + n) % n
		}
	case key.Matches(msg, km.Backspace):
		if len(p.query) > 0 {
			p.query = p.query[:len(p.query)-1]
			m.refilterPalette()
		}
	case msg.Type == tea.KeySpace:
		p.query = append(p.query, ' ')
		m.refilterPalette()
	case msg.Type == tea.KeyRunes && !msg.Alt:
		p.query = append(p.query, msg.Runes...)
		m.refilterPalette()
	}
	return m, nil
}

// paletteView renders the prompt line shown in place of the button row.
func (m Model) paletteView() string {
	st := m.style
	out := st.PalettePrompt.Render(palettePrompt) + string(m.palette.query) + st.Cursor.Render(" ")
	if len(m.palette.matches) == 0 {
		out += st.PaletteMatch.Render("  no match")
	}
	if m.width > 0 {
		out = xansi.Truncate(out, m.width, "…")
	}
	return out
}

func paletteLabel(f format.Format) string {
	if f.Help == "" {
		return f.Title
	}
	return f.Title + " " + f.Help
}

// paletteOverlay composites the match list over the bottom-left corner of
// the content area, just above the prompt line.
func (m Model) paletteOverlay(base string) string {
	matches := m.palette.matches
	rows := minInt(len(matches), minInt(paletteMaxRows, m.contentHeight()))
	if rows <= 0 || m.width <= 0 {
		return base
	}

	// Keep the selected match inside the visible window.
	first := 0
	if m.palette.selected >= rows {
		first = m.palette.selected - rows + 1
	}

	width := 0
	for _, mt := range matches[first : first+rows] {
		width = maxInt(width, lipgloss.Width(paletteLabel(mt.Format)))
	}
	width = minInt(width+2, m.width)

	lines := make([]string, 0, rows)
	for i := first; i < first+rows; i++ {
		label := xansi.Truncate(" "+paletteLabel(matches[i].Format), width, "…")
		label += strings.Repeat(" ", width-lipgloss.Width(label))
		st := m.style.PaletteMatch
		if i == m.palette.selected {
			st = m.style.PaletteSelected
		}
		lines = append(lines, st.Render(label))
	}

	return overlay.Composite(
		strings.Join(lines, "\n"),
		base,
		overlay.Left,
		overlay.Top,
		0,
		m.contentHeight()-rows,
	)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
