package interval

import "math"

// Interior returns the largest open interval inside r. The interior of a
// point is empty.
func (r Interval) Interior() Interval {
	if r.IsEmpty() {
		return r
	}
	return Make(r.start, r.end, true, true)
}

// Closure returns the smallest closed interval containing r. Infinite
// endpoints stay open, so the closure of an unbounded interval is closed in
// the topological sense even though its flag remains set.
func (r Interval) Closure() Interval {
	if r.IsEmpty() {
		return r
	}
	return Make(r.start, r.end,
		math.IsInf(r.start, -1),
		math.IsInf(r.end, 1))
}

// IsOpen reports whether r equals its own interior.
func (r Interval) IsOpen() bool {
	return !r.IsEmpty() && r == r.Interior()
}

// IsClosed reports whether r equals its own closure.
func (r Interval) IsClosed() bool {
	return !r.IsEmpty() && r == r.Closure()
}

// Shift translates the interval by d. A NaN delta yields the empty interval.
func (r Interval) Shift(d float64) Interval {
	if r.IsEmpty() {
		return r
	}
	return Make(r.start+d, r.end+d, r.openStart, r.openEnd)
}

// MinkowskiSum returns {x + y : x in r, y in o}. A bound of the sum is open
// iff either contributing bound is open.
func (r Interval) MinkowskiSum(o Interval) Interval {
	if r.IsEmpty() || o.IsEmpty() {
		return Empty()
	}
	return Make(r.start+o.start, r.end+o.end,
		r.openStart || o.openStart,
		r.openEnd || o.openEnd)
}

// MinkowskiDiff returns the erosion {x : x + o is a subset of r}. The result
// is empty when o does not fit inside r.
func (r Interval) MinkowskiDiff(o Interval) Interval {
	if r.IsEmpty() || o.IsEmpty() {
		return Empty()
	}

	var start, end float64
	switch {
	case math.IsInf(o.start, -1):
		// o reaches -inf, so r must too.
		if !math.IsInf(r.start, -1) {
			return Empty()
		}
		start = math.Inf(-1)
	default:
		start = r.start - o.start
	}
	switch {
	case math.IsInf(o.end, 1):
		if !math.IsInf(r.end, 1) {
			return Empty()
		}
		end = math.Inf(1)
	default:
		end = r.end - o.end
	}

	return Make(start, end,
		r.openStart && !o.openStart,
		r.openEnd && !o.openEnd)
}

// Distance returns the gap between r and o, 0 when they overlap or touch
// and +inf when either is empty.
func (r Interval) Distance(o Interval) float64 {
	if r.IsEmpty() || o.IsEmpty() {
		return math.Inf(1)
	}
	if r.Overlaps(o) || r.IsAdjacent(o) {
		return 0
	}
	if r.end <= o.start {
		return o.start - r.end
	}
	return r.start - o.end
}
