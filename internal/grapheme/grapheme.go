// Package grapheme maps rune offsets onto grapheme-cluster boundaries and
// terminal cell widths.
package grapheme

import (
	"sort"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cluster is one grapheme cluster spanning runes [Start, End).
type Cluster struct {
	Start int
	End   int
	Text  string
}

// Clusters splits rs into grapheme clusters with rune offsets.
func Clusters(rs []rune) []Cluster {
	if len(rs) == 0 {
		return nil
	}
	g := uniseg.NewGraphemes(string(rs))
	out := make([]Cluster, 0, len(rs))
	off := 0
	for g.Next() {
		n := len(g.Runes())
		out = append(out, Cluster{Start: off, End: off + n, Text: g.Str()})
		off += n
	}
	return out
}

// Boundaries returns the sorted rune offsets where clusters start, followed
// by len(rs). The result always contains 0.
func Boundaries(rs []rune) []int {
	cs := Clusters(rs)
	out := make([]int, 0, len(cs)+1)
	out = append(out, 0)
	for _, c := range cs {
		out = append(out, c.End)
	}
	return out
}

// Prev returns the closest cluster boundary strictly before off, or 0.
func Prev(rs []rune, off int) int {
	bs := Boundaries(rs)
	i := sort.SearchInts(bs, off)
	if i == 0 {
		return 0
	}
	return bs[i-1]
}

// Next returns the closest cluster boundary strictly after off, or len(rs).
func Next(rs []rune, off int) int {
	bs := Boundaries(rs)
	i := sort.SearchInts(bs, off+1)
	if i >= len(bs) {
		return len(rs)
	}
	return bs[i]
}

// Snap moves off back onto the cluster boundary at or before it.
func Snap(rs []rune, off int) int {
	if off <= 0 {
		return 0
	}
	if off >= len(rs) {
		return len(rs)
	}
	bs := Boundaries(rs)
	i := sort.SearchInts(bs, off)
	if i < len(bs) && bs[i] == off {
		return off
	}
	return bs[i-1]
}

// Width returns the terminal cell width of a cluster. Tabs advance to the
// next multiple of tabWidth from visualCol.
func Width(cluster string, visualCol, tabWidth int) int {
	if cluster == "\t" {
		if tabWidth <= 0 {
			tabWidth = 4
		}
		return tabWidth - visualCol%tabWidth
	}
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		w = 0
	}
	return w
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
