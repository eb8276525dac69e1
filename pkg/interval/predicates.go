package interval

import "math"

// Contains reports whether x lies in the interval. NaN lies in nothing.
func (r Interval) Contains(x float64) bool {
	if r.IsEmpty() || math.IsNaN(x) {
		return false
	}
	if x < r.start || (x == r.start && r.openStart) {
		return false
	}
	if x > r.end || (x == r.end && r.openEnd) {
		return false
	}
	return true
}

// ContainsInterval reports whether o is a subset of r. The empty interval is
// a subset of everything.
func (r Interval) ContainsInterval(o Interval) bool {
	if o.IsEmpty() {
		return true
	}
	if r.IsEmpty() {
		return false
	}
	if o.start < r.start || (o.start == r.start && r.openStart && !o.openStart) {
		return false
	}
	if o.end > r.end || (o.end == r.end && r.openEnd && !o.openEnd) {
		return false
	}
	return true
}

// Overlaps reports whether r and o share at least one point.
func (r Interval) Overlaps(o Interval) bool {
	return !r.Intersect(o).IsEmpty()
}

// IsAdjacent reports whether r and o touch at a shared endpoint they do not
// both contain, with at least one side closed. Adjacent intervals merge into
// a single interval; two intervals both open at the touching point are NOT
// adjacent (a genuine gap of measure zero).
func (r Interval) IsAdjacent(o Interval) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	if r.Overlaps(o) {
		return false
	}
	if r.end == o.start && (!r.openEnd || !o.openStart) {
		return true
	}
	if o.end == r.start && (!o.openEnd || !r.openStart) {
		return true
	}
	return false
}

// startsBefore reports whether r's lower bound lies strictly before o's,
// counting a closed bound as before an open one at the same value.
func (r Interval) startsBefore(o Interval) bool {
	if r.start != o.start {
		return r.start < o.start
	}
	return !r.openStart && o.openStart
}

// endsAfter is the mirror of startsBefore for the upper bound.
func (r Interval) endsAfter(o Interval) bool {
	if r.end != o.end {
		return r.end > o.end
	}
	return !r.openEnd && o.openEnd
}

// EntirelyBefore reports whether every point of r lies before every point
// of o.
func (r Interval) EntirelyBefore(o Interval) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	if r.end != o.start {
		return r.end < o.start
	}
	return r.openEnd || o.openStart
}

// EntirelyAfter reports whether every point of r lies after every point
// of o.
func (r Interval) EntirelyAfter(o Interval) bool {
	return o.EntirelyBefore(r)
}

// CoveredBy reports whether r is a subset of o.
func (r Interval) CoveredBy(o Interval) bool {
	return o.ContainsInterval(r)
}

// OverlapsStartOf reports whether r overlaps o while extending past its
// lower bound only.
func (r Interval) OverlapsStartOf(o Interval) bool {
	return r.Overlaps(o) && r.startsBefore(o) && o.endsAfter(r)
}

// OverlapsEndOf reports whether r overlaps o while extending past its upper
// bound only.
func (r Interval) OverlapsEndOf(o Interval) bool {
	return r.Overlaps(o) && o.startsBefore(r) && r.endsAfter(o)
}

// InMiddleOf reports whether r lies strictly inside o, leaving room on both
// sides, so that o minus r splits in two.
func (r Interval) InMiddleOf(o Interval) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return o.startsBefore(r) && o.endsAfter(r)
}
