package format

import (
	"strings"
	"unicode/utf8"
)

// DefaultLinkPlaceholder is the URL text inserted and selected by Link.
const DefaultLinkPlaceholder = "url"

// Wrap surrounds the selection with left and right.
//
// For a selection [s, e) over text T the result is
// T[:s] + left + T[s:e] + right + T[e:] with the selection moved to
// (s+len(left), e+len(left)). An empty selection inserts the empty pair and
// leaves the cursor between the markers.
func Wrap(left, right string) Action {
	return func(s State) State {
		s = Clamp(s)
		rs := []rune(s.Text)
		sel := s.Selection

		var sb strings.Builder
		sb.Grow(len(s.Text) + len(left) + len(right))
		sb.WriteString(string(rs[:sel.Start]))
		sb.WriteString(left)
		sb.WriteString(string(rs[sel.Start:sel.End]))
		sb.WriteString(right)
		sb.WriteString(string(rs[sel.End:]))

		return State{Text: sb.String(), Selection: sel.Shift(runeLen(left))}
	}
}

// WrapBlock wraps a multi-line selection in fence lines and anything else in
// inline markers. The fenced selection keeps covering the original text.
func WrapBlock(inline, fence string) Action {
	wrapInline := Wrap(inline, inline)
	wrapFence := Wrap(fence+"\n", "\n"+fence)
	return func(s State) State {
		s = Clamp(s)
		rs := []rune(s.Text)
		if strings.ContainsRune(string(rs[s.Selection.Start:s.Selection.End]), '\n') {
			return wrapFence(s)
		}
		return wrapInline(s)
	}
}

// PrefixLine inserts marker at the start of the line containing the
// selection start. Both selection offsets move by len(marker).
func PrefixLine(marker string) Action {
	return func(s State) State {
		s = Clamp(s)
		rs := []rune(s.Text)
		at := lineStart(rs, s.Selection.Start)

		var sb strings.Builder
		sb.Grow(len(s.Text) + len(marker))
		sb.WriteString(string(rs[:at]))
		sb.WriteString(marker)
		sb.WriteString(string(rs[at:]))

		return State{Text: sb.String(), Selection: s.Selection.Shift(runeLen(marker))}
	}
}

// Link turns the selection into [selection](placeholder) and selects the
// placeholder so typing replaces it.
func Link(placeholder string) Action {
	if placeholder == "" {
		placeholder = DefaultLinkPlaceholder
	}
	return func(s State) State {
		s = Clamp(s)
		rs := []rune(s.Text)
		sel := s.Selection
		label := string(rs[sel.Start:sel.End])

		var sb strings.Builder
		sb.WriteString(string(rs[:sel.Start]))
		sb.WriteString("[")
		sb.WriteString(label)
		sb.WriteString("](")
		sb.WriteString(placeholder)
		sb.WriteString(")")
		sb.WriteString(string(rs[sel.End:]))

		start := sel.Start + 1 + sel.Len() + 2
		s.Text = sb.String()
		s.Selection.Start = start
		s.Selection.End = start + runeLen(placeholder)
		return s
	}
}

func lineStart(rs []rune, off int) int {
	for off > 0 && rs[off-1] != '\n' {
		off--
	}
	return off
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
