// SPDX-License-Identifier: MIT

package wires

import (
	"slices"
	"sort"
)

// Crossings returns every crossing of a and b, ordered with a's Runs as the
// outer loop and b's Runs as the inner loop. The result is nil if the wires
// never cross.
// Complexity: O(n×m) time; see WithIndex.
func Crossings(a, b Wire, opts ...Option) []Crossing {
	cfg := newConfig(opts)
	if cfg.indexed {
		return indexedCrossings(a, b)
	}

	var out []Crossing
	for _, ra := range a.runs {
		for _, rb := range b.runs {
			if c, ok := ra.Intersect(rb); ok {
				out = append(out, c)
			}
		}
	}

	return out
}

// Closest returns the crossing nearest the origin by Manhattan distance.
// Returns ErrNoIntersection if the wires never cross.
func Closest(a, b Wire, opts ...Option) (Crossing, error) {
	rep, err := Analyze(a, b, opts...)
	if err != nil {
		return Crossing{}, err
	}
	return rep.Closest, nil
}

// Fewest returns the crossing reached with the fewest combined steps.
// Returns ErrNoIntersection if the wires never cross.
func Fewest(a, b Wire, opts ...Option) (Crossing, error) {
	rep, err := Analyze(a, b, opts...)
	if err != nil {
		return Crossing{}, err
	}
	return rep.Fewest, nil
}

// Analyze enumerates crossings once and applies both reductions.
// Ties keep the first crossing in enumeration order.
func Analyze(a, b Wire, opts ...Option) (Report, error) {
	cs := Crossings(a, b, opts...)
	if len(cs) == 0 {
		return Report{}, ErrNoIntersection
	}

	rep := Report{Crossings: cs, Closest: cs[0], Fewest: cs[0]}
	for _, c := range cs[1:] {
		if c.Distance() < rep.Closest.Distance() {
			rep.Closest = c
		}
		if c.Steps() < rep.Fewest.Steps() {
			rep.Fewest = c
		}
	}

	return rep, nil
}

// indexEntry points at one of wire B's Runs by position.
type indexEntry struct {
	offset int
	pos    int
}

// offsetIndex holds wire B's Runs per axis, sorted by lateral offset.
type offsetIndex [2][]indexEntry

func buildIndex(w Wire) offsetIndex {
	var idx offsetIndex
	for i, r := range w.runs {
		idx[r.Axis] = append(idx[r.Axis], indexEntry{offset: r.Offset, pos: i})
	}
	for ax := range idx {
		sort.SliceStable(idx[ax], func(i, j int) bool {
			return idx[ax][i].offset < idx[ax][j].offset
		})
	}
	return idx
}

// candidates returns, in traversal order, the positions of Runs on axis ax
// whose offset lies strictly inside (lo, hi).
func (idx offsetIndex) candidates(ax Axis, lo, hi int) []int {
	entries := idx[ax]
	first := sort.Search(len(entries), func(i int) bool {
		return entries[i].offset > lo
	})
	var out []int
	for _, e := range entries[first:] {
		if e.offset >= hi {
			break
		}
		out = append(out, e.pos)
	}
	slices.Sort(out)
	return out
}

func indexedCrossings(a, b Wire) []Crossing {
	idx := buildIndex(b)
	var out []Crossing
	for _, ra := range a.runs {
		for _, pos := range idx.candidates(ra.Axis.Perpendicular(), ra.Start, ra.End()) {
			if c, ok := ra.Intersect(b.runs[pos]); ok {
				out = append(out, c)
			}
		}
	}
	return out
}
