package interval

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalid is wrapped by every constructor failure.
var ErrInvalid = errors.New("invalid interval")

// Interval is a continuous interval on the real line with independently
// open or closed endpoints. It is an immutable value type: every operation
// returns a new Interval. Interval is comparable, so it can be used as a
// map key; two intervals are equal iff all four fields match.
//
// The zero Interval is the closed point [0, 0].
type Interval struct {
	start, end         float64
	openStart, openEnd bool
}

// New returns the interval from start to end with the given endpoint flags.
// Both bounds must be finite, start must not exceed end, and a degenerate
// interval (start == end) must be closed on both sides; use Empty for the
// canonical empty interval.
func New(start, end float64, openStart, openEnd bool) (Interval, error) {
	if math.IsNaN(start) || math.IsNaN(end) {
		return Empty(), fmt.Errorf("%w: NaN bound", ErrInvalid)
	}
	if math.IsInf(start, 0) || math.IsInf(end, 0) {
		return Empty(), fmt.Errorf("%w: infinite bound, use an unbounded constructor", ErrInvalid)
	}
	if start > end {
		return Empty(), fmt.Errorf("%w: start %v > end %v", ErrInvalid, start, end)
	}
	if start == end && (openStart || openEnd) {
		return Empty(), fmt.Errorf("%w: open degenerate interval at %v, use Empty", ErrInvalid, start)
	}
	return Interval{start: start, end: end, openStart: openStart, openEnd: openEnd}, nil
}

// Closed returns [a, b].
func Closed(a, b float64) (Interval, error) { return New(a, b, false, false) }

// Open returns (a, b).
func Open(a, b float64) (Interval, error) { return New(a, b, true, true) }

// ClosedOpen returns [a, b).
func ClosedOpen(a, b float64) (Interval, error) { return New(a, b, false, true) }

// OpenClosed returns (a, b].
func OpenClosed(a, b float64) (Interval, error) { return New(a, b, true, false) }

// Point returns the degenerate interval [v, v].
func Point(v float64) (Interval, error) { return New(v, v, false, false) }

// FromCenterRadius returns the closed interval [c-r, c+r].
func FromCenterRadius(c, r float64) (Interval, error) {
	if math.IsNaN(r) || r < 0 {
		return Empty(), fmt.Errorf("%w: radius %v", ErrInvalid, r)
	}
	return New(c-r, c+r, false, false)
}

// Empty returns the canonical empty interval. It is the only empty value
// ever produced: operations normalize any empty result to it.
func Empty() Interval {
	return Interval{start: 0, end: 0, openStart: true, openEnd: true}
}

// AtLeast returns [v, +inf).
func AtLeast(v float64) (Interval, error) {
	if err := finiteBound(v); err != nil {
		return Empty(), err
	}
	return Interval{start: v, end: math.Inf(1), openEnd: true}, nil
}

// Above returns (v, +inf).
func Above(v float64) (Interval, error) {
	if err := finiteBound(v); err != nil {
		return Empty(), err
	}
	return Interval{start: v, end: math.Inf(1), openStart: true, openEnd: true}, nil
}

// AtMost returns (-inf, v].
func AtMost(v float64) (Interval, error) {
	if err := finiteBound(v); err != nil {
		return Empty(), err
	}
	return Interval{start: math.Inf(-1), end: v, openStart: true}, nil
}

// Below returns (-inf, v).
func Below(v float64) (Interval, error) {
	if err := finiteBound(v); err != nil {
		return Empty(), err
	}
	return Interval{start: math.Inf(-1), end: v, openStart: true, openEnd: true}, nil
}

// Unbounded returns the whole real line (-inf, +inf).
func Unbounded() Interval {
	return Interval{start: math.Inf(-1), end: math.Inf(1), openStart: true, openEnd: true}
}

func finiteBound(v float64) error {
	if math.IsNaN(v) {
		return fmt.Errorf("%w: NaN bound", ErrInvalid)
	}
	if math.IsInf(v, 0) {
		return fmt.Errorf("%w: infinite finite-side bound", ErrInvalid)
	}
	return nil
}

// Make is the total, normalizing constructor: any combination of bounds that
// does not describe a non-empty interval (start > end, open degenerate
// interval, NaN) collapses to Empty. Infinite endpoints are forced open.
// Operations use Make internally so that every empty result is canonical.
func Make(start, end float64, openStart, openEnd bool) Interval {
	if math.IsNaN(start) || math.IsNaN(end) || start > end {
		return Empty()
	}
	if math.IsInf(start, -1) {
		openStart = true
	}
	if math.IsInf(end, 1) {
		openEnd = true
	}
	if start == end && (openStart || openEnd) {
		return Empty()
	}
	return Interval{start: start, end: end, openStart: openStart, openEnd: openEnd}
}

// Start returns the lower bound.
func (r Interval) Start() float64 { return r.start }

// End returns the upper bound.
func (r Interval) End() float64 { return r.end }

// OpenStart reports whether the lower bound is excluded.
func (r Interval) OpenStart() bool { return r.openStart }

// OpenEnd reports whether the upper bound is excluded.
func (r Interval) OpenEnd() bool { return r.openEnd }

// IsEmpty reports whether the interval contains no points.
func (r Interval) IsEmpty() bool {
	return r.start == r.end && (r.openStart || r.openEnd)
}

// IsPoint reports whether the interval is a single point.
func (r Interval) IsPoint() bool {
	return r.start == r.end && !r.openStart && !r.openEnd
}

// IsBounded reports whether both endpoints are finite.
func (r Interval) IsBounded() bool {
	if r.IsEmpty() {
		return true
	}
	return !math.IsInf(r.start, 0) && !math.IsInf(r.end, 0)
}

// Length returns end - start, 0 for the empty interval and +inf for
// unbounded intervals.
func (r Interval) Length() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.end - r.start
}

// Compare returns -1, 0 or +1 ordering intervals by (start, end) with a
// closed-before-open tie-break on each bound. The order is total and is the
// sort key for set normalization.
func (r Interval) Compare(o Interval) int {
	if r.start != o.start {
		if r.start < o.start {
			return -1
		}
		return 1
	}
	if r.openStart != o.openStart {
		if !r.openStart {
			return -1
		}
		return 1
	}
	if r.end != o.end {
		if r.end < o.end {
			return -1
		}
		return 1
	}
	if r.openEnd != o.openEnd {
		if !r.openEnd {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether r sorts before o.
func (r Interval) Less(o Interval) bool { return r.Compare(o) == -1 }

// String renders the interval in mathematical notation, e.g. [0, 5) or
// (-∞, 3]. The empty interval renders as ∅.
func (r Interval) String() string {
	if r.IsEmpty() {
		return "∅"
	}
	var b strings.Builder
	if math.IsInf(r.start, -1) {
		b.WriteString("(-∞")
	} else {
		if r.openStart {
			b.WriteByte('(')
		} else {
			b.WriteByte('[')
		}
		b.WriteString(fmtBound(r.start))
	}
	b.WriteString(", ")
	if math.IsInf(r.end, 1) {
		b.WriteString("∞)")
	} else {
		b.WriteString(fmtBound(r.end))
		if r.openEnd {
			b.WriteByte(')')
		} else {
			b.WriteByte(']')
		}
	}
	return b.String()
}

func fmtBound(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
