package buffer

// ChangeSource identifies where a change originated.
type ChangeSource uint8

const (
	// ChangeSourceLocal covers typing, deletion, and cursor movement.
	ChangeSourceLocal ChangeSource = iota
	// ChangeSourceFormat covers edits produced by formatting actions.
	ChangeSourceFormat
	// ChangeSourceSync covers wholesale replacements from the host
	// (for example a new default text).
	ChangeSourceSync
)

func (s ChangeSource) String() string {
	switch s {
	case ChangeSourceLocal:
		return "local"
	case ChangeSourceFormat:
		return "format"
	case ChangeSourceSync:
		return "sync"
	default:
		return "unknown"
	}
}

// AppliedEdit describes one effective text replacement.
type AppliedEdit struct {
	// At is the rune offset where the replacement starts.
	At          int
	DeletedText string
	InsertText  string
}

// Change is a normalized, versioned mutation payload.
type Change struct {
	Source          ChangeSource
	VersionBefore   uint64
	VersionAfter    uint64
	SelectionBefore Selection
	SelectionAfter  Selection

	// Edit is set only when the text changed.
	Edit        AppliedEdit
	TextChanged bool
}

type changeBuilder struct {
	source          ChangeSource
	versionBefore   uint64
	selectionBefore Selection
	edit            AppliedEdit
	textChanged     bool
}

// LastChange returns the most recent effective change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return b.lastChange, true
}

func (b *Buffer) beginChange(source ChangeSource) changeBuilder {
	return changeBuilder{
		source:          source,
		versionBefore:   b.version,
		selectionBefore: b.Selection(),
	}
}

func (b *Buffer) commitChange(cb changeBuilder) {
	if b.version == cb.versionBefore {
		return
	}
	b.lastChange = Change{
		Source:          cb.source,
		VersionBefore:   cb.versionBefore,
		VersionAfter:    b.version,
		SelectionBefore: cb.selectionBefore,
		SelectionAfter:  b.Selection(),
		Edit:            cb.edit,
		TextChanged:     cb.textChanged,
	}
	b.hasLastChange = true
}
