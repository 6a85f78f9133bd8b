package buffer

// InsertText inserts text at the cursor, or replaces the active selection.
func (b *Buffer) InsertText(s string) {
	s = NormalizeNewlines(s)
	sel := b.Selection()
	if s == "" {
		if !sel.IsEmpty() {
			b.DeleteSelection()
		}
		return
	}
	end := sel.Start + len([]rune(s))
	b.replace(sel, s, Caret(end), ChangeSourceLocal)
}

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	sel := b.Selection()
	if !sel.IsEmpty() {
		b.DeleteSelection()
		return
	}
	if b.head == 0 {
		return
	}
	start := b.prevGrapheme(b.head)
	b.replace(Selection{Start: start, End: b.head}, "", Caret(start), ChangeSourceLocal)
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	sel := b.Selection()
	if !sel.IsEmpty() {
		b.DeleteSelection()
		return
	}
	if b.head == len(b.text) {
		return
	}
	end := b.nextGrapheme(b.head)
	b.replace(Selection{Start: b.head, End: end}, "", Caret(b.head), ChangeSourceLocal)
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	sel := b.Selection()
	if sel.IsEmpty() {
		return
	}
	b.replace(sel, "", Caret(sel.Start), ChangeSourceLocal)
}

// SetState replaces the whole document and selection in one change.
//
// The recorded AppliedEdit covers only the differing middle of the old and
// new text. The selection is clamped into the new text.
func (b *Buffer) SetState(text string, sel Selection, src ChangeSource) {
	next := []rune(NormalizeNewlines(text))
	prefix := commonPrefix(b.text, next)
	suffix := commonSuffix(b.text[prefix:], next[prefix:])

	r := Selection{Start: prefix, End: len(b.text) - suffix}
	ins := string(next[prefix : len(next)-suffix])
	sel = ClampSelection(sel, len(next))
	b.replace(r, ins, sel, src)
}

// replace swaps the runes in r for text and sets the selection to next,
// which is interpreted against the resulting document.
func (b *Buffer) replace(r Selection, text string, next Selection, src ChangeSource) {
	r = ClampSelection(r, len(b.text))
	deleted := string(b.text[r.Start:r.End])
	textChanged := deleted != text

	ins := []rune(text)
	newLen := len(b.text) - r.Len() + len(ins)
	next = ClampSelection(next, newLen)
	if !textChanged && next.Start == b.anchor && next.End == b.head {
		return
	}

	change := b.beginChange(src)
	if textChanged {
		out := make([]rune, 0, newLen)
		out = append(out, b.text[:r.Start]...)
		out = append(out, ins...)
		out = append(out, b.text[r.End:]...)
		b.text = out
		b.textVersion++
		change.textChanged = true
		change.edit = AppliedEdit{At: r.Start, DeletedText: deleted, InsertText: text}
	}
	b.anchor, b.head = next.Start, next.End
	b.version++
	b.commitChange(change)
}

func commonPrefix(a, b []rune) int {
	n := minInt(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

func commonSuffix(a, b []rune) int {
	n := minInt(len(a), len(b))
	i := 0
	for i < n && a[len(a)-1-i] == b[len(b)-1-i] {
		i++
	}
	return i
}
