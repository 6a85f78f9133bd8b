package buffer

import "strings"

// Buffer is the pure document state: text, cursor, and selection.
//
// The selection is tracked as an anchor and a head. The head is the cursor;
// the normalized selection spans min(anchor, head) to max(anchor, head).
type Buffer struct {
	text []rune

	version     uint64
	textVersion uint64

	anchor int
	head   int

	lastChange    Change
	hasLastChange bool
}

func New(text string) *Buffer {
	return &Buffer{text: []rune(NormalizeNewlines(text))}
}

func (b *Buffer) Text() string { return string(b.text) }

// Len returns the document length in runes.
func (b *Buffer) Len() int { return len(b.text) }

// Version increments on every effective text, cursor, or selection change.
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion increments only when the text changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

// Cursor returns the head offset.
func (b *Buffer) Cursor() int { return b.head }

// Selection returns the normalized selection. It is empty when no text is
// selected, in which case Start == End == Cursor().
func (b *Buffer) Selection() Selection {
	return Selection{Start: b.anchor, End: b.head}.Normalize()
}

// SelectionRaw returns the anchor and head without normalization.
//
// This is useful for UI layers that need to preserve the selection direction
// (e.g. shift+click behavior).
func (b *Buffer) SelectionRaw() (anchor, head int) {
	return b.anchor, b.head
}

// SetCursor moves the cursor to off and clears the selection.
func (b *Buffer) SetCursor(off int) {
	off = clampInt(off, 0, len(b.text))
	b.setAnchorHead(off, off, ChangeSourceLocal)
}

// SetSelection sets a normalized selection. The cursor lands on End.
func (b *Buffer) SetSelection(s Selection) {
	s = ClampSelection(s, len(b.text))
	b.setAnchorHead(s.Start, s.End, ChangeSourceLocal)
}

// Select sets a directional selection from anchor to head.
func (b *Buffer) Select(anchor, head int) {
	anchor = clampInt(anchor, 0, len(b.text))
	head = clampInt(head, 0, len(b.text))
	b.setAnchorHead(anchor, head, ChangeSourceLocal)
}

func (b *Buffer) SelectAll() {
	b.setAnchorHead(0, len(b.text), ChangeSourceLocal)
}

// ClearSelection collapses the selection onto the cursor.
func (b *Buffer) ClearSelection() {
	b.setAnchorHead(b.head, b.head, ChangeSourceLocal)
}

func (b *Buffer) setAnchorHead(anchor, head int, src ChangeSource) {
	if anchor == b.anchor && head == b.head {
		return
	}
	change := b.beginChange(src)
	b.anchor, b.head = anchor, head
	b.version++
	b.commitChange(change)
}

// Slice returns the text in s after clamping.
func (b *Buffer) Slice(s Selection) string {
	s = ClampSelection(s, len(b.text))
	return string(b.text[s.Start:s.End])
}

// LineStart returns the offset of the first rune of the line containing off.
func (b *Buffer) LineStart(off int) int {
	off = clampInt(off, 0, len(b.text))
	for off > 0 && b.text[off-1] != '\n' {
		off--
	}
	return off
}

// LineEnd returns the offset of the '\n' ending the line containing off, or
// Len() for the last line.
func (b *Buffer) LineEnd(off int) int {
	off = clampInt(off, 0, len(b.text))
	for off < len(b.text) && b.text[off] != '\n' {
		off++
	}
	return off
}

// NormalizeNewlines converts "\r\n" and lone "\r" into "\n", the form the
// buffer stores.
func NormalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
