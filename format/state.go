package format

import "github.com/iw2rmb/mdflourish/buffer"

// State is the input and output of an Action.
type State struct {
	Text      string
	Selection buffer.Selection
}

// Action transforms a State. Implementations must return a selection that
// satisfies 0 <= Start <= End <= rune length of Text.
type Action func(State) State

// Host is the capability a formatting action needs from its editor: read the
// text, read the selection, and apply an edit.
type Host interface {
	Text() string
	Selection() buffer.Selection
	ApplyEdit(State)
}

// Clamp clamps the selection into the text and swaps a reversed pair.
func Clamp(s State) State {
	s.Selection = buffer.ClampSelection(s.Selection, runeLen(s.Text))
	return s
}

// Apply runs a against the host state and writes the result back.
// It reports whether the text or selection changed.
func Apply(h Host, a Action) bool {
	if h == nil || a == nil {
		return false
	}
	before := Clamp(State{Text: h.Text(), Selection: h.Selection()})
	after := Clamp(a(before))
	if after == before {
		return false
	}
	h.ApplyEdit(after)
	return true
}

// BufferHost adapts a buffer to Host. Edits are recorded with
// buffer.ChangeSourceFormat.
type BufferHost struct {
	Buf *buffer.Buffer
}

func (h BufferHost) Text() string { return h.Buf.Text() }

func (h BufferHost) Selection() buffer.Selection { return h.Buf.Selection() }

func (h BufferHost) ApplyEdit(s State) {
	h.Buf.SetState(s.Text, s.Selection, buffer.ChangeSourceFormat)
}
