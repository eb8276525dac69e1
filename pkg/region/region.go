// Package region provides normalized collections of disjoint same-dimension
// boxes. A Region is built by disjoint insertion: every incoming box is
// reduced to the fragments not already covered before it is appended, so
// elements are always pairwise disjoint. The fragment count is greedy, not
// minimal; minimal box decomposition is NP-hard and deliberately not
// attempted. Point-set equality is therefore checked by double difference,
// not by comparing fragment lists.
package region

import (
	"fmt"
	"slices"
	"strings"

	"github.com/brunolnetto/interval-sets/pkg/box"
	"github.com/brunolnetto/interval-sets/pkg/interval"
)

// Region is an immutable disjoint collection of boxes sharing one fixed
// dimension. The zero Region is empty and dimensionless: it combines with
// regions of any dimension.
type Region struct {
	dim   int
	boxes []box.Box
}

// New builds a Region from the given boxes by iterative disjoint insertion.
// Empty boxes are dropped; a box whose dimension disagrees with an earlier
// one fails the whole construction.
func New(boxes ...box.Box) (Region, error) {
	r := Region{}
	for _, b := range boxes {
		var err error
		if r, err = r.insert(b); err != nil {
			return Region{}, err
		}
	}
	return r, nil
}

// FromIntervals lifts 1D intervals into a one-dimensional Region.
func FromIntervals(ivs ...interval.Interval) Region {
	r := Region{}
	for _, iv := range ivs {
		if iv.IsEmpty() {
			continue
		}
		b, _ := box.New(iv)
		r, _ = r.insert(b)
	}
	return r
}

// insert returns a new Region additionally covering b. The incoming box is
// whittled down against every existing box; only the fragments not yet
// covered are appended, which keeps the collection pairwise disjoint.
func (r Region) insert(b box.Box) (Region, error) {
	if b.IsEmpty() {
		return r, nil
	}
	dim := r.dim
	if dim == 0 {
		dim = b.Dimension()
	} else if dim != b.Dimension() {
		return Region{}, dimError(dim, b.Dimension())
	}

	fragments := []box.Box{b}
	for _, existing := range r.boxes {
		if len(fragments) == 0 {
			break
		}
		var next []box.Box
		for _, f := range fragments {
			diff, err := f.Difference(existing)
			if err != nil {
				return Region{}, err
			}
			next = append(next, diff...)
		}
		fragments = next
	}

	out := Region{dim: dim, boxes: make([]box.Box, 0, len(r.boxes)+len(fragments))}
	out.boxes = append(out.boxes, r.boxes...)
	out.boxes = append(out.boxes, fragments...)
	return out, nil
}

func dimError(a, b int) error {
	return fmt.Errorf("%w: %d vs %d", box.ErrDimensionMismatch, a, b)
}

// fromDisjoint wraps boxes that are already known to be pairwise disjoint,
// skipping the insertion pass. Empty boxes are dropped.
func fromDisjoint(dim int, boxes []box.Box) Region {
	out := make([]box.Box, 0, len(boxes))
	for _, b := range boxes {
		if !b.IsEmpty() {
			out = append(out, b)
		}
	}
	if len(out) == 0 {
		return Region{}
	}
	return Region{dim: dim, boxes: out}
}

// compatible resolves the common dimension of both regions, tolerating
// dimensionless empties on either side.
func (r Region) compatible(o Region) (int, error) {
	switch {
	case r.dim == 0:
		return o.dim, nil
	case o.dim == 0:
		return r.dim, nil
	case r.dim != o.dim:
		return 0, dimError(r.dim, o.dim)
	}
	return r.dim, nil
}

// Dimension returns the axis count, 0 for the dimensionless empty Region.
func (r Region) Dimension() int { return r.dim }

// Len returns the number of disjoint boxes.
func (r Region) Len() int { return len(r.boxes) }

// IsEmpty reports whether the region contains no points.
func (r Region) IsEmpty() bool { return len(r.boxes) == 0 }

// Boxes returns a copy of the disjoint box list.
func (r Region) Boxes() []box.Box { return slices.Clone(r.boxes) }

// Volume returns the total volume. Disjointness makes the per-box sum
// exact.
func (r Region) Volume() float64 {
	var v float64
	for _, b := range r.boxes {
		v += b.Volume()
	}
	return v
}

// IsBounded reports whether every box is bounded.
func (r Region) IsBounded() bool {
	for _, b := range r.boxes {
		if !b.IsBounded() {
			return false
		}
	}
	return true
}

// Union returns the region covering both operands.
func (r Region) Union(o Region) (Region, error) {
	if _, err := r.compatible(o); err != nil {
		return Region{}, err
	}
	out := r
	for _, b := range o.boxes {
		var err error
		if out, err = out.insert(b); err != nil {
			return Region{}, err
		}
	}
	return out, nil
}

// Intersect returns the shared points of both operands. Pairwise box
// intersections of two disjoint families are already disjoint, so only
// empties need discarding.
func (r Region) Intersect(o Region) (Region, error) {
	dim, err := r.compatible(o)
	if err != nil {
		return Region{}, err
	}
	var out []box.Box
	for _, a := range r.boxes {
		for _, b := range o.boxes {
			inter, err := a.Intersect(b)
			if err != nil {
				return Region{}, err
			}
			if !inter.IsEmpty() {
				out = append(out, inter)
			}
		}
	}
	return fromDisjoint(dim, out), nil
}

// Difference returns r minus o. Each box of r is whittled against every box
// of o; the surviving fragments of disjoint inputs stay pairwise disjoint,
// so no renormalization pass is needed.
func (r Region) Difference(o Region) (Region, error) {
	dim, err := r.compatible(o)
	if err != nil {
		return Region{}, err
	}
	var out []box.Box
	for _, a := range r.boxes {
		fragments := []box.Box{a}
		for _, b := range o.boxes {
			if len(fragments) == 0 {
				break
			}
			var next []box.Box
			for _, f := range fragments {
				diff, err := f.Difference(b)
				if err != nil {
					return Region{}, err
				}
				next = append(next, diff...)
			}
			fragments = next
		}
		out = append(out, fragments...)
	}
	return fromDisjoint(dim, out), nil
}

// SymmetricDifference returns the points covered by exactly one operand.
// The two one-sided differences cannot share a point, so their boxes are
// appended directly.
func (r Region) SymmetricDifference(o Region) (Region, error) {
	dim, err := r.compatible(o)
	if err != nil {
		return Region{}, err
	}
	d1, err := r.Difference(o)
	if err != nil {
		return Region{}, err
	}
	d2, err := o.Difference(r)
	if err != nil {
		return Region{}, err
	}
	return fromDisjoint(dim, append(d1.Boxes(), d2.boxes...)), nil
}

// Complement returns universe minus r. The universe is always explicit;
// there is no default unbounded universe.
func (r Region) Complement(universe box.Box) (Region, error) {
	u, err := New(universe)
	if err != nil {
		return Region{}, err
	}
	return u.Difference(r)
}

// ContainsPoint reports whether the point lies in the region.
func (r Region) ContainsPoint(pt []float64) (bool, error) {
	if r.dim == 0 {
		return false, nil
	}
	if len(pt) != r.dim {
		return false, dimError(len(pt), r.dim)
	}
	for _, b := range r.boxes {
		ok, err := b.ContainsPoint(pt)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// ContainsBox reports whether b is covered by the region, i.e. nothing of b
// survives subtracting the region.
func (r Region) ContainsBox(b box.Box) (bool, error) {
	if b.IsEmpty() {
		return true, nil
	}
	if r.dim != 0 && r.dim != b.Dimension() {
		return false, dimError(r.dim, b.Dimension())
	}
	rb, err := New(b)
	if err != nil {
		return false, err
	}
	rest, err := rb.Difference(r)
	if err != nil {
		return false, err
	}
	return rest.IsEmpty(), nil
}

// ContainsRegion reports whether o is a subset of r.
func (r Region) ContainsRegion(o Region) (bool, error) {
	if _, err := r.compatible(o); err != nil {
		return false, err
	}
	rest, err := o.Difference(r)
	if err != nil {
		return false, err
	}
	return rest.IsEmpty(), nil
}

// Equal reports point-set equality. Different tilings of the same point set
// compare equal: both one-sided differences must vanish.
func (r Region) Equal(o Region) bool {
	if r.IsEmpty() && o.IsEmpty() {
		return true
	}
	if r.dim != o.dim {
		return false
	}
	d1, err := r.Difference(o)
	if err != nil || !d1.IsEmpty() {
		return false
	}
	d2, err := o.Difference(r)
	return err == nil && d2.IsEmpty()
}

// String renders the region as {box, box, ...}, or ∅ when empty.
func (r Region) String() string {
	if r.IsEmpty() {
		return "∅"
	}
	parts := make([]string, 0, len(r.boxes))
	for _, b := range r.boxes {
		parts = append(parts, b.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
