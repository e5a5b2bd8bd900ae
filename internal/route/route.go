package route

import (
	"math"
	"sort"
)

// UnresolvedPosition is the position reported for codes that are not in the
// directory. It is raised past the largest known position when a layout uses
// positions at or above it.
const UnresolvedPosition = 1_000_000

// Aisle is one entry of a store's aisle directory. A nil Position means the
// aisle has no explicit position and walks at its index in the directory.
type Aisle struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Position *int   `json:"position,omitempty"`
}

// Entry is one stop of a resolved route.
type Entry struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Position int    `json:"position"`
	Resolved bool   `json:"resolved"`
}

type directoryEntry struct {
	name     string
	position int
}

// Resolve orders the requested aisle codes by the directory's walking order.
//
// Duplicate codes collapse to their first occurrence. Codes missing from the
// directory are kept, named after themselves, and placed after every known
// aisle. Entries sharing a position keep their first-occurrence order.
// Resolve never mutates its arguments.
func Resolve(requested []string, directory []Aisle) []Entry {
	index := make(map[string]directoryEntry, len(directory))
	maxKnown := math.MinInt
	for i, a := range directory {
		pos := i
		if a.Position != nil {
			pos = *a.Position
		}
		if pos > maxKnown {
			maxKnown = pos
		}
		index[a.Code] = directoryEntry{name: a.Name, position: pos}
	}

	seen := make(map[string]struct{}, len(requested))
	out := make([]Entry, 0, len(requested))
	for _, code := range requested {
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		d, ok := index[code]
		if !ok {
			out = append(out, Entry{Code: code, Name: code})
			continue
		}
		out = append(out, Entry{Code: code, Name: d.name, Position: d.position, Resolved: true})
	}

	unresolved := unresolvedPosition(maxKnown)
	for i := range out {
		if !out[i].Resolved {
			out[i].Position = unresolved
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Resolved != b.Resolved {
			return a.Resolved
		}
		return a.Position < b.Position
	})
	return out
}

func unresolvedPosition(maxKnown int) int {
	if maxKnown < UnresolvedPosition {
		return UnresolvedPosition
	}
	if maxKnown == math.MaxInt {
		return math.MaxInt
	}
	return maxKnown + 1
}

// Stats counts how many entries of a route resolved against the directory.
type Stats struct {
	Total      int `json:"total"`
	Resolved   int `json:"resolved"`
	Unresolved int `json:"unresolved"`
}

func Summary(entries []Entry) Stats {
	s := Stats{Total: len(entries)}
	for _, e := range entries {
		if e.Resolved {
			s.Resolved++
		} else {
			s.Unresolved++
		}
	}
	return s
}

// Codes returns the aisle codes of entries in route order.
func Codes(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Code)
	}
	return out
}
