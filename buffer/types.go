package buffer

// Selection is a half-open rune range [Start, End) in the document.
// An empty selection is a caret at Start.
type Selection struct {
	Start int
	End   int
}

// Caret returns an empty selection at off.
func Caret(off int) Selection {
	return Selection{Start: off, End: off}
}

func (s Selection) IsEmpty() bool {
	return s.Start == s.End
}

func (s Selection) Len() int {
	n := s.End - s.Start
	if n < 0 {
		return -n
	}
	return n
}

// Normalize swaps a reversed selection so that Start <= End.
func (s Selection) Normalize() Selection {
	if s.Start <= s.End {
		return s
	}
	return Selection{Start: s.End, End: s.Start}
}

// Shift moves both offsets by delta.
func (s Selection) Shift(delta int) Selection {
	return Selection{Start: s.Start + delta, End: s.End + delta}
}

// ClampSelection clamps both offsets into [0, n] and normalizes the result.
//
// The returned Selection always satisfies 0 <= Start <= End <= n
// (with n treated as at least 0).
func ClampSelection(s Selection, n int) Selection {
	return Selection{
		Start: clampInt(s.Start, 0, n),
		End:   clampInt(s.End, 0, n),
	}.Normalize()
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
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
