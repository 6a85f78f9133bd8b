package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/mdflourish/buffer"
	"github.com/iw2rmb/mdflourish/internal/grapheme"
)

// visualCell is one grapheme cluster placed on a visual row.
type visualCell struct {
	start, end int // rune offsets
	text       string
	col, width int // terminal cells
}

// visualRow is one soft-wrapped segment of a logical line.
type visualRow struct {
	start, end int
	cells      []visualCell
	// last is set on the row that ends its logical line.
	last bool
}

func layoutRows(text []rune, width, tabWidth int) []visualRow {
	var rows []visualRow
	ls := 0
	for {
		le := ls
		for le < len(text) && text[le] != '\n' {
			le++
		}
		rows = appendLineRows(rows, text, ls, le, width, tabWidth)
		if le >= len(text) {
			return rows
		}
		ls = le + 1
	}
}

func appendLineRows(rows []visualRow, text []rune, ls, le, width, tabWidth int) []visualRow {
	cur := visualRow{start: ls}
	col := 0
	for _, cl := range grapheme.Clusters(text[ls:le]) {
		start, end := ls+cl.Start, ls+cl.End
		w := grapheme.Width(cl.Text, col, tabWidth)
		if width > 0 && col+w > width && len(cur.cells) > 0 {
			cur.end = start
			rows = append(rows, cur)
			cur = visualRow{start: start}
			col = 0
			w = grapheme.Width(cl.Text, col, tabWidth)
		}
		s := cl.Text
		if s == "\t" {
			s = strings.Repeat(" ", w)
		}
		cur.cells = append(cur.cells, visualCell{start: start, end: end, text: s, col: col, width: w})
		col += w
	}
	cur.end = le
	cur.last = true
	return append(rows, cur)
}

// rowIndexAt returns the visual row that displays offset off. An offset on
// a soft wrap belongs to the following row.
func rowIndexAt(rows []visualRow, off int) int {
	for i, r := range rows {
		if off >= r.start && (off < r.end || (off == r.end && r.last)) {
			return i
		}
	}
	return len(rows) - 1
}

// wrapWidth leaves one column for a cursor at the end of a full row.
func (m Model) wrapWidth() int {
	if m.width > 1 {
		return m.width - 1
	}
	return m.width
}

func (m Model) layout() []visualRow {
	return layoutRows([]rune(m.buf.Text()), m.wrapWidth(), m.cfg.TabWidth)
}

type cellRole uint8

const (
	roleText cellRole = iota
	roleSelection
	roleCursor
)

func (st Style) forRole(r cellRole) lipgloss.Style {
	switch r {
	case roleSelection:
		return st.Selection
	case roleCursor:
		return st.Cursor
	default:
		return st.Text
	}
}

func renderRow(r visualRow, sel buffer.Selection, cursor int, showCursor bool, st Style) string {
	var sb strings.Builder
	var run strings.Builder
	role := roleText
	flush := func() {
		if run.Len() > 0 {
			sb.WriteString(st.forRole(role).Render(run.String()))
			run.Reset()
		}
	}
	for _, c := range r.cells {
		next := roleText
		switch {
		case showCursor && c.start == cursor:
			next = roleCursor
		case !sel.IsEmpty() && c.start >= sel.Start && c.end <= sel.End:
			next = roleSelection
		}
		if next != role {
			flush()
			role = next
		}
		run.WriteString(c.text)
	}
	flush()
	if showCursor && r.last && cursor == r.end {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func (m Model) renderPlaceholder(showCursor bool) string {
	ph := m.cfg.Placeholder
	if !showCursor {
		return m.style.Placeholder.Render(ph)
	}
	rs := []rune(ph)
	next := grapheme.Next(rs, 0)
	return m.style.Cursor.Render(string(rs[:next])) + m.style.Placeholder.Render(string(rs[next:]))
}

// inputLines renders every visual row of the input.
func (m Model) inputLines(rows []visualRow) []string {
	showCursor := m.InputFocused()
	if m.buf.Len() == 0 && m.cfg.Placeholder != "" {
		return []string{m.renderPlaceholder(showCursor)}
	}
	sel := m.buf.Selection()
	cursor := m.buf.Cursor()
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = renderRow(r, sel, cursor, showCursor, m.style)
	}
	return out
}

// refreshInput re-renders the input into the viewport and keeps the cursor
// row visible.
func (m *Model) refreshInput() {
	rows := m.layout()
	m.viewport.SetContent(strings.Join(m.inputLines(rows), "\n"))
	if m.viewport.Height <= 0 {
		return
	}
	cr := rowIndexAt(rows, m.buf.Cursor())
	switch {
	case cr < m.viewport.YOffset:
		m.viewport.SetYOffset(cr)
	case cr >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(cr - m.viewport.Height + 1)
	}
}

// offsetAt maps viewport-local cell coordinates to a rune offset. Points
// past the end of a row map to the end of its line.
func (m Model) offsetAt(x, y int) int {
	rows := m.layout()
	if len(rows) == 0 {
		return 0
	}
	i := clampInt(m.viewport.YOffset+y, 0, len(rows)-1)
	r := rows[i]
	if x < 0 {
		x = 0
	}
	for _, c := range r.cells {
		if x < c.col+c.width {
			return c.start
		}
	}
	if r.last || len(r.cells) == 0 {
		return r.end
	}
	return r.cells[len(r.cells)-1].start
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
