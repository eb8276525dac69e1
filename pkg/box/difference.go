package box

import "slices"

// Difference returns b minus o as a list of disjoint boxes, by recursive
// slicing: walk the axes in ascending order, slice off the parts of the
// remaining center that lie outside the overlap on that axis, then narrow
// the center to the overlap's extent and move to the next axis. Each slice
// inherits the boundary flip of the 1D interval difference, so the emitted
// fragments never overlap o and leave no gap between themselves and the
// removed overlap. At most 2N fragments are produced; their emission order
// (below before above, axis by axis) is deterministic.
//
// The union of the fragments is b minus o exactly, but the decomposition is
// not guaranteed to use the fewest possible boxes.
func (b Box) Difference(o Box) ([]Box, error) {
	if err := b.sameDim(o); err != nil {
		return nil, err
	}
	if b.IsEmpty() {
		return nil, nil
	}

	inter, err := b.Intersect(o)
	if err != nil {
		return nil, err
	}
	if inter.IsEmpty() {
		return []Box{b}, nil
	}

	var out []Box
	center := slices.Clone(b.axes)
	for d := range b.axes {
		for _, side := range center[d].Difference(inter.axes[d]) {
			axes := slices.Clone(center)
			axes[d] = side
			out = append(out, Box{axes: axes})
		}
		center[d] = inter.axes[d]
	}
	// The final center equals the overlap and is discarded.
	return out, nil
}
