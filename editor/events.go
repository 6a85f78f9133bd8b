package editor

import "github.com/iw2rmb/mdflourish/buffer"

// ChangeEvent is passed to Config.OnChange after every effective change.
type ChangeEvent struct {
	Version   uint64
	Source    buffer.ChangeSource
	Cursor    int
	Selection buffer.Selection

	TextChanged bool
	// Text is the full document; hosts can diff if needed.
	Text string
}

func buildChangeEvent(b *buffer.Buffer, textChanged bool) ChangeEvent {
	ev := ChangeEvent{
		Version:     b.Version(),
		Cursor:      b.Cursor(),
		Selection:   b.Selection(),
		TextChanged: textChanged,
		Text:        b.Text(),
	}
	if ch, ok := b.LastChange(); ok {
		ev.Source = ch.Source
	}
	return ev
}
