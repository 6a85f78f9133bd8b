package editor

// Mode is the editor's display state.
type Mode uint8

const (
	// Editing shows the input.
	Editing Mode = iota
	// Previewing shows the rendered markdown.
	Previewing
)

func (m Mode) String() string {
	switch m {
	case Editing:
		return "editing"
	case Previewing:
		return "previewing"
	default:
		return "unknown"
	}
}

// Event drives mode transitions.
type Event uint8

const (
	// EventToggle flips between Editing and Previewing.
	EventToggle Event = iota
)

// Transition returns the mode that follows ev in mode. Unknown events keep
// the current mode.
func Transition(mode Mode, ev Event) Mode {
	if ev != EventToggle {
		return mode
	}
	if mode == Previewing {
		return Editing
	}
	return Previewing
}
