// Package intervalset provides normalized disjoint collections of intervals
// on the real line. A Set is always held in its unique canonical form:
// sorted, pairwise disjoint and maximally merged, so structural equality is
// set equality.
package intervalset

import (
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/brunolnetto/interval-sets/pkg/interval"
)

// Set is an immutable normalized collection of intervals.
// The zero Set is empty.
type Set struct {
	items []interval.Interval
}

// New builds a Set from any intervals, normalizing them: empties are
// dropped, the rest are sorted and overlapping or adjacent neighbours are
// merged until no merge remains.
func New(ivs ...interval.Interval) Set {
	return Set{items: normalize(ivs)}
}

// normalize produces the canonical maximal-merged form: sort by the interval
// total order, then a single left-to-right sweep folding each element into
// the accumulator's last entry whenever they overlap or touch with a closed
// side.
func normalize(ivs []interval.Interval) []interval.Interval {
	sorted := make([]interval.Interval, 0, len(ivs))
	for _, iv := range ivs {
		if !iv.IsEmpty() {
			sorted = append(sorted, iv)
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Less(sorted[j])
	})

	var out []interval.Interval
	for _, iv := range sorted {
		if n := len(out); n > 0 {
			last := out[n-1]
			if merged := last.Union(iv); len(merged) == 1 {
				out[n-1] = merged[0]
				continue
			}
		}
		out = append(out, iv)
	}
	return out
}

// Intervals returns a copy of the canonical interval sequence.
func (s Set) Intervals() []interval.Interval {
	return slices.Clone(s.items)
}

// Len returns the number of disjoint intervals.
func (s Set) Len() int { return len(s.items) }

// IsEmpty reports whether the set contains no points.
func (s Set) IsEmpty() bool { return len(s.items) == 0 }

// Measure returns the total length of the set.
func (s Set) Measure() float64 {
	var m float64
	for _, iv := range s.items {
		m += iv.Length()
	}
	return m
}

// Equal reports set equality. Canonical form makes this a structural
// comparison.
func (s Set) Equal(o Set) bool {
	return slices.Equal(s.items, o.items)
}

// Contains reports whether x lies in the set.
func (s Set) Contains(x float64) bool {
	// First interval that could still reach x. Normalization guarantees at
	// most one candidate: a neighbour starting at the same point would have
	// been merged or is separated by a real gap.
	i := sort.Search(len(s.items), func(i int) bool {
		return s.items[i].End() >= x
	})
	return i < len(s.items) && s.items[i].Contains(x)
}

// ContainsInterval reports whether iv is a subset of the set. A normalized
// set can only contain iv inside a single element; an interval spanning two
// elements would cross the gap between them.
func (s Set) ContainsInterval(iv interval.Interval) bool {
	if iv.IsEmpty() {
		return true
	}
	i := sort.Search(len(s.items), func(i int) bool {
		return s.items[i].End() >= iv.Start()
	})
	// An element ending exactly where iv starts cannot contain an iv that is
	// open there, but its successor starting at that same point still can:
	// {[0,5), (5,10)} contains (5,7) inside the second element.
	if i < len(s.items) && s.items[i].End() == iv.Start() && !s.items[i].ContainsInterval(iv) {
		i++
	}
	return i < len(s.items) && s.items[i].ContainsInterval(iv)
}

// ContainsSet reports whether o is a subset of the set.
func (s Set) ContainsSet(o Set) bool {
	for _, iv := range o.items {
		if !s.ContainsInterval(iv) {
			return false
		}
	}
	return true
}

// Union returns the union of both sets.
func (s Set) Union(o Set) Set {
	return New(append(s.Intervals(), o.items...)...)
}

// Intersect returns the intersection of both sets.
func (s Set) Intersect(o Set) Set {
	var out []interval.Interval
	for _, a := range s.items {
		for _, b := range o.items {
			if b.EntirelyAfter(a) {
				break
			}
			if inter := a.Intersect(b); !inter.IsEmpty() {
				out = append(out, inter)
			}
		}
	}
	// Pairwise intersections of two disjoint families are disjoint; the
	// constructor only re-sorts and re-checks adjacency.
	return New(out...)
}

// Difference returns s minus o.
func (s Set) Difference(o Set) Set {
	var out []interval.Interval
	for _, a := range s.items {
		fragments := []interval.Interval{a}
		for _, b := range o.items {
			var next []interval.Interval
			for _, f := range fragments {
				next = append(next, f.Difference(b)...)
			}
			fragments = next
			if len(fragments) == 0 {
				break
			}
		}
		out = append(out, fragments...)
	}
	return New(out...)
}

// SymmetricDifference returns the points in exactly one of the sets.
func (s Set) SymmetricDifference(o Set) Set {
	return s.Difference(o).Union(o.Difference(s))
}

// Complement returns universe minus s. There is no default universe: the
// caller always states the bounds the complement is taken within.
func (s Set) Complement(universe interval.Interval) Set {
	return New(universe).Difference(s)
}

// ConvexHull returns the smallest single interval containing the set.
func (s Set) ConvexHull() interval.Interval {
	if s.IsEmpty() {
		return interval.Empty()
	}
	first, last := s.items[0], s.items[len(s.items)-1]
	return interval.Make(first.Start(), last.End(), first.OpenStart(), last.OpenEnd())
}

// Boundary returns the finite boundary points of the set as a set of
// degenerate intervals.
func (s Set) Boundary() Set {
	var pts []interval.Interval
	for _, iv := range s.items {
		for _, v := range []float64{iv.Start(), iv.End()} {
			if !math.IsInf(v, 0) {
				pts = append(pts, interval.Make(v, v, false, false))
			}
		}
	}
	return New(pts...)
}

// Shift translates every interval by d.
func (s Set) Shift(d float64) Set {
	out := make([]interval.Interval, 0, len(s.items))
	for _, iv := range s.items {
		out = append(out, iv.Shift(d))
	}
	return New(out...)
}

// String renders the set as {iv, iv, ...}, or ∅ when empty.
func (s Set) String() string {
	if s.IsEmpty() {
		return "∅"
	}
	parts := make([]string, 0, len(s.items))
	for _, iv := range s.items {
		parts = append(parts, iv.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
