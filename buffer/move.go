package buffer

import "github.com/iw2rmb/mdflourish/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, keeps the anchor and moves the head; if false collapses the selection
}

func (b *Buffer) Move(m Move) {
	sel := b.Selection()

	// Collapsing a selection with left/right lands on its edge, not one past it.
	if !m.Extend && !sel.IsEmpty() && m.Unit == MoveGrapheme {
		switch m.Dir {
		case DirLeft:
			b.setAnchorHead(sel.Start, sel.Start, ChangeSourceLocal)
			return
		case DirRight:
			b.setAnchorHead(sel.End, sel.End, ChangeSourceLocal)
			return
		}
	}

	next := clampInt(b.moveCursor(b.head, m), 0, len(b.text))
	if m.Extend {
		b.setAnchorHead(b.anchor, next, ChangeSourceLocal)
		return
	}
	b.setAnchorHead(next, next, ChangeSourceLocal)
}

func (b *Buffer) moveCursor(off int, m Move) int {
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(off, m.Dir)
	case MoveWord:
		return b.moveWord(off, m.Dir)
	case MoveLine:
		return b.moveLine(off, m.Dir)
	case MoveDoc:
		return b.moveDoc(off, m.Dir)
	default:
		return off
	}
}

func (b *Buffer) moveGrapheme(off int, dir MoveDir) int {
	switch dir {
	case DirLeft:
		return b.prevGrapheme(off)
	case DirRight:
		return b.nextGrapheme(off)
	default:
		return b.moveLine(off, dir)
	}
}

func (b *Buffer) moveWord(off int, dir MoveDir) int {
	switch dir {
	case DirLeft:
		return b.prevWordBoundary(off)
	case DirRight:
		return b.nextWordBoundary(off)
	default:
		return b.moveLine(off, dir)
	}
}

func (b *Buffer) moveLine(off int, dir MoveDir) int {
	start := b.LineStart(off)
	end := b.LineEnd(off)
	col := off - start

	switch dir {
	case DirHome:
		return start
	case DirEnd:
		return end
	case DirUp, DirLeft:
		if start == 0 {
			return off
		}
		prevStart := b.LineStart(start - 1)
		prevEnd := start - 1
		return b.snapOnLine(prevStart, prevStart+minInt(col, prevEnd-prevStart))
	case DirDown, DirRight:
		if end == len(b.text) {
			return off
		}
		nextStart := end + 1
		nextEnd := b.LineEnd(nextStart)
		return b.snapOnLine(nextStart, nextStart+minInt(col, nextEnd-nextStart))
	default:
		return off
	}
}

func (b *Buffer) snapOnLine(lineStart, off int) int {
	lineEnd := b.LineEnd(lineStart)
	return lineStart + grapheme.Snap(b.text[lineStart:lineEnd], off-lineStart)
}

func (b *Buffer) moveDoc(off int, dir MoveDir) int {
	switch dir {
	case DirHome, DirUp, DirLeft:
		return 0
	case DirEnd, DirDown, DirRight:
		return len(b.text)
	default:
		return off
	}
}

// prevGrapheme returns the cluster boundary before off. Clusters never span
// a '\n', so only the current line is segmented.
func (b *Buffer) prevGrapheme(off int) int {
	off = clampInt(off, 0, len(b.text))
	start := b.LineStart(off)
	if off == start {
		return maxInt(off-1, 0)
	}
	return start + grapheme.Prev(b.text[start:b.LineEnd(off)], off-start)
}

func (b *Buffer) nextGrapheme(off int) int {
	off = clampInt(off, 0, len(b.text))
	end := b.LineEnd(off)
	if off == end {
		return minInt(off+1, len(b.text))
	}
	start := b.LineStart(off)
	return start + grapheme.Next(b.text[start:end], off-start)
}

// Word boundary rules:
// - skip whitespace clusters, then skip non-whitespace clusters
// - a newline counts as whitespace, so word moves cross line ends
func (b *Buffer) prevWordBoundary(off int) int {
	i := clampInt(off, 0, len(b.text))
	skipSpace := true
	for i > 0 {
		start := b.LineStart(i)
		if i == start {
			if !skipSpace {
				return i
			}
			i--
			continue
		}
		cs := grapheme.Clusters(b.text[start:i])
		for k := len(cs) - 1; k >= 0; k-- {
			space := grapheme.IsSpace(cs[k].Text)
			if skipSpace && !space {
				skipSpace = false
			}
			if !skipSpace && space {
				return start + cs[k].End
			}
		}
		i = start
	}
	return i
}

func (b *Buffer) nextWordBoundary(off int) int {
	i := clampInt(off, 0, len(b.text))
	skipSpace := true
	for i < len(b.text) {
		end := b.LineEnd(i)
		if i == end {
			if !skipSpace {
				return i
			}
			i++
			continue
		}
		for _, c := range grapheme.Clusters(b.text[i:end]) {
			space := grapheme.IsSpace(c.Text)
			if skipSpace && !space {
				skipSpace = false
			}
			if !skipSpace && space {
				return i + c.Start
			}
		}
		i = end
	}
	return i
}
