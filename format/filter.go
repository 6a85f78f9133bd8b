package format

import (
	"sort"
	"strings"
	"sync"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// Match is one format accepted by Filter.
type Match struct {
	// Index is the position of the format in the filtered list.
	Index  int
	Format Format
	Score  int
	// Positions are rune indexes into Title+" "+Help that matched the query.
	Positions []int
}

var initAlgo sync.Once

// Filter fuzzy-matches query against each format's title and help text.
//
// An empty query keeps every format in list order. Otherwise only matching
// formats are returned, best score first; ties keep list order.
func Filter(formats []Format, query string) []Match {
	query = strings.TrimSpace(query)
	out := make([]Match, 0, len(formats))
	if query == "" {
		for i, f := range formats {
			out = append(out, Match{Index: i, Format: f})
		}
		return out
	}

	initAlgo.Do(func() { algo.Init("default") })

	pattern := []rune(strings.ToLower(query))
	slab := util.MakeSlab(16384, 1024)
	for i, f := range formats {
		chars := util.ToChars([]byte(strings.ToLower(matchText(f))))
		res, pos := algo.FuzzyMatchV2(false, true, true, &chars, pattern, true, slab)
		if res.Start < 0 {
			continue
		}
		m := Match{Index: i, Format: f, Score: res.Score}
		if pos != nil {
			m.Positions = append([]int(nil), *pos...)
			sort.Ints(m.Positions)
		}
		out = append(out, m)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

func matchText(f Format) string {
	if f.Help == "" {
		return f.Title
	}
	return f.Title + " " + f.Help
}
