// Package box provides axis-aligned hyperrectangles: Cartesian products of
// one interval per axis. A Box is an immutable value; binary operations
// between boxes require equal dimension and fail before any per-axis work
// otherwise.
package box

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/brunolnetto/interval-sets/pkg/interval"
)

// ErrDimensionMismatch is wrapped by every failure caused by combining
// values of unequal axis count.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// Box is the Cartesian product of N intervals, N >= 1 fixed per instance.
type Box struct {
	axes []interval.Interval
}

// New returns the box spanned by the given axis intervals.
func New(axes ...interval.Interval) (Box, error) {
	if len(axes) == 0 {
		return Box{}, fmt.Errorf("%w: box needs at least 1 axis", ErrDimensionMismatch)
	}
	return Box{axes: slices.Clone(axes)}, nil
}

// Closed returns the closed box [lo[0], hi[0]] x ... x [lo[n-1], hi[n-1]].
func Closed(lo, hi []float64) (Box, error) {
	if len(lo) != len(hi) {
		return Box{}, fmt.Errorf("%w: %d lower vs %d upper bounds", ErrDimensionMismatch, len(lo), len(hi))
	}
	if len(lo) == 0 {
		return Box{}, fmt.Errorf("%w: box needs at least 1 axis", ErrDimensionMismatch)
	}
	axes := make([]interval.Interval, len(lo))
	for i := range lo {
		iv, err := interval.Closed(lo[i], hi[i])
		if err != nil {
			return Box{}, fmt.Errorf("axis %d: %w", i, err)
		}
		axes[i] = iv
	}
	return Box{axes: axes}, nil
}

// Point returns the degenerate box holding a single point.
func Point(coords ...float64) (Box, error) {
	return Closed(coords, coords)
}

// Empty returns the empty box of the given dimension. Dimensions below 1
// are clamped to 1.
func Empty(dim int) Box {
	if dim < 1 {
		dim = 1
	}
	axes := make([]interval.Interval, dim)
	for i := range axes {
		axes[i] = interval.Empty()
	}
	return Box{axes: axes}
}

// Cube returns the box with the same interval on every axis.
func Cube(iv interval.Interval, dim int) Box {
	if dim < 1 {
		dim = 1
	}
	axes := make([]interval.Interval, dim)
	for i := range axes {
		axes[i] = iv
	}
	return Box{axes: axes}
}

// Dimension returns the number of axes.
func (b Box) Dimension() int { return len(b.axes) }

// Axis returns the interval on axis i.
func (b Box) Axis(i int) interval.Interval { return b.axes[i] }

// Axes returns a copy of the component intervals.
func (b Box) Axes() []interval.Interval { return slices.Clone(b.axes) }

// IsEmpty reports whether the box contains no points. A box is empty iff
// any component interval is empty.
func (b Box) IsEmpty() bool {
	if len(b.axes) == 0 {
		return true
	}
	for _, ax := range b.axes {
		if ax.IsEmpty() {
			return true
		}
	}
	return false
}

// IsBounded reports whether every axis is bounded.
func (b Box) IsBounded() bool {
	if b.IsEmpty() {
		return true
	}
	for _, ax := range b.axes {
		if !ax.IsBounded() {
			return false
		}
	}
	return true
}

// Volume returns the product of the axis lengths: 0 for an empty or
// degenerate box, +inf when an axis with positive extent is unbounded.
func (b Box) Volume() float64 {
	if b.IsEmpty() {
		return 0
	}
	for _, ax := range b.axes {
		if ax.Length() == 0 {
			return 0
		}
	}
	vol := 1.0
	for _, ax := range b.axes {
		vol *= ax.Length()
	}
	return vol
}

// Equal reports whether both boxes have identical axes.
func (b Box) Equal(o Box) bool {
	return slices.Equal(b.axes, o.axes)
}

func (b Box) sameDim(o Box) error {
	if len(b.axes) != len(o.axes) {
		return fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(b.axes), len(o.axes))
	}
	return nil
}

// ContainsPoint reports whether the point lies in the box.
func (b Box) ContainsPoint(pt []float64) (bool, error) {
	if len(pt) != len(b.axes) {
		return false, fmt.Errorf("%w: point dimension %d vs box dimension %d", ErrDimensionMismatch, len(pt), len(b.axes))
	}
	if b.IsEmpty() {
		return false, nil
	}
	for i, ax := range b.axes {
		if !ax.Contains(pt[i]) {
			return false, nil
		}
	}
	return true, nil
}

// ContainsBox reports whether o is a subset of b. The empty box is a subset
// of everything.
func (b Box) ContainsBox(o Box) (bool, error) {
	if err := b.sameDim(o); err != nil {
		return false, err
	}
	if o.IsEmpty() {
		return true, nil
	}
	for i, ax := range b.axes {
		if !ax.ContainsInterval(o.axes[i]) {
			return false, nil
		}
	}
	return true, nil
}

// Intersect returns the intersection of both boxes: the product of the
// axis-wise interval intersections, empty as soon as any axis is.
func (b Box) Intersect(o Box) (Box, error) {
	if err := b.sameDim(o); err != nil {
		return Box{}, err
	}
	axes := make([]interval.Interval, len(b.axes))
	for i, ax := range b.axes {
		axes[i] = ax.Intersect(o.axes[i])
	}
	return Box{axes: axes}, nil
}

// Overlaps reports whether the boxes share at least one point, which
// requires overlap on every axis.
func (b Box) Overlaps(o Box) (bool, error) {
	if err := b.sameDim(o); err != nil {
		return false, err
	}
	if b.IsEmpty() || o.IsEmpty() {
		return false, nil
	}
	for i, ax := range b.axes {
		if !ax.Overlaps(o.axes[i]) {
			return false, nil
		}
	}
	return true, nil
}

// String renders the box as the product of its axes, or ∅ when empty.
func (b Box) String() string {
	if b.IsEmpty() {
		return "∅"
	}
	parts := make([]string, 0, len(b.axes))
	for _, ax := range b.axes {
		parts = append(parts, ax.String())
	}
	return strings.Join(parts, " × ")
}

// Interior returns the product of the axis interiors.
func (b Box) Interior() Box {
	if b.IsEmpty() {
		return b
	}
	axes := make([]interval.Interval, len(b.axes))
	for i, ax := range b.axes {
		axes[i] = ax.Interior()
	}
	return Box{axes: axes}
}

// Closure returns the product of the axis closures.
func (b Box) Closure() Box {
	if b.IsEmpty() {
		return b
	}
	axes := make([]interval.Interval, len(b.axes))
	for i, ax := range b.axes {
		axes[i] = ax.Closure()
	}
	return Box{axes: axes}
}

// ConvexHull returns the box itself: a box is already convex.
func (b Box) ConvexHull() Box { return b }

// Diameter returns the largest distance between two points of the box.
func (b Box) Diameter() float64 {
	if b.IsEmpty() {
		return 0
	}
	var sq float64
	for _, ax := range b.axes {
		l := ax.Length()
		sq += l * l
	}
	return math.Sqrt(sq)
}

// DistanceToPoint returns the shortest Euclidean distance from the point to
// the closure of the box, +inf for the empty box.
func (b Box) DistanceToPoint(pt []float64) (float64, error) {
	if len(pt) != len(b.axes) {
		return 0, fmt.Errorf("%w: point dimension %d vs box dimension %d", ErrDimensionMismatch, len(pt), len(b.axes))
	}
	if b.IsEmpty() {
		return math.Inf(1), nil
	}
	var sq float64
	for i, ax := range b.axes {
		switch {
		case pt[i] < ax.Start():
			d := ax.Start() - pt[i]
			sq += d * d
		case pt[i] > ax.End():
			d := pt[i] - ax.End()
			sq += d * d
		}
	}
	return math.Sqrt(sq), nil
}

// Distance returns the shortest Euclidean distance between the closures of
// both boxes, +inf when either is empty.
func (b Box) Distance(o Box) (float64, error) {
	if err := b.sameDim(o); err != nil {
		return 0, err
	}
	if b.IsEmpty() || o.IsEmpty() {
		return math.Inf(1), nil
	}
	var sq float64
	for i, ax := range b.axes {
		d := ax.Distance(o.axes[i])
		sq += d * d
	}
	return math.Sqrt(sq), nil
}

// Translate shifts the box by the given vector.
func (b Box) Translate(vec []float64) (Box, error) {
	if len(vec) != len(b.axes) {
		return Box{}, fmt.Errorf("%w: vector dimension %d vs box dimension %d", ErrDimensionMismatch, len(vec), len(b.axes))
	}
	if b.IsEmpty() {
		return b, nil
	}
	axes := make([]interval.Interval, len(b.axes))
	for i, ax := range b.axes {
		axes[i] = ax.Shift(vec[i])
	}
	return Box{axes: axes}, nil
}

// MinkowskiSum returns {x + y : x in b, y in o} (dilation).
func (b Box) MinkowskiSum(o Box) (Box, error) {
	if err := b.sameDim(o); err != nil {
		return Box{}, err
	}
	if b.IsEmpty() || o.IsEmpty() {
		return Empty(len(b.axes)), nil
	}
	axes := make([]interval.Interval, len(b.axes))
	for i, ax := range b.axes {
		axes[i] = ax.MinkowskiSum(o.axes[i])
	}
	return Box{axes: axes}, nil
}

// MinkowskiDiff returns the erosion {x : x + o is a subset of b}, empty as
// soon as o does not fit along some axis.
func (b Box) MinkowskiDiff(o Box) (Box, error) {
	if err := b.sameDim(o); err != nil {
		return Box{}, err
	}
	if b.IsEmpty() || o.IsEmpty() {
		return Empty(len(b.axes)), nil
	}
	axes := make([]interval.Interval, len(b.axes))
	for i, ax := range b.axes {
		axes[i] = ax.MinkowskiDiff(o.axes[i])
		if axes[i].IsEmpty() {
			return Empty(len(b.axes)), nil
		}
	}
	return Box{axes: axes}, nil
}
