package region

import (
	"math"

	"github.com/brunolnetto/interval-sets/pkg/box"
	"github.com/brunolnetto/interval-sets/pkg/interval"
)

// ConvexHull returns the smallest single box containing the region. On each
// axis the hull spans the least start to the greatest end; the hull bound is
// closed iff some box attains the extreme with a closed bound.
func (r Region) ConvexHull() box.Box {
	if r.IsEmpty() {
		return box.Empty(1)
	}
	axes := make([]interval.Interval, r.dim)
	for d := 0; d < r.dim; d++ {
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, b := range r.boxes {
			lo = math.Min(lo, b.Axis(d).Start())
			hi = math.Max(hi, b.Axis(d).End())
		}
		openLo, openHi := true, true
		for _, b := range r.boxes {
			if b.Axis(d).Start() == lo && !b.Axis(d).OpenStart() {
				openLo = false
			}
			if b.Axis(d).End() == hi && !b.Axis(d).OpenEnd() {
				openHi = false
			}
		}
		axes[d] = interval.Make(lo, hi, openLo, openHi)
	}
	b, _ := box.New(axes...)
	return b
}

// Diameter returns the largest distance between two points of the region.
func (r Region) Diameter() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.ConvexHull().Diameter()
}

// Distance returns the shortest Euclidean distance between both regions,
// +inf when either is empty.
func (r Region) Distance(o Region) (float64, error) {
	if _, err := r.compatible(o); err != nil {
		return 0, err
	}
	if r.IsEmpty() || o.IsEmpty() {
		return math.Inf(1), nil
	}
	min := math.Inf(1)
	for _, a := range r.boxes {
		for _, b := range o.boxes {
			d, err := a.Distance(b)
			if err != nil {
				return 0, err
			}
			min = math.Min(min, d)
		}
	}
	return min, nil
}

// DistanceToPoint returns the shortest Euclidean distance from the point to
// the region, +inf for the empty region.
func (r Region) DistanceToPoint(pt []float64) (float64, error) {
	if r.IsEmpty() {
		return math.Inf(1), nil
	}
	if len(pt) != r.dim {
		return 0, dimError(len(pt), r.dim)
	}
	min := math.Inf(1)
	for _, b := range r.boxes {
		d, err := b.DistanceToPoint(pt)
		if err != nil {
			return 0, err
		}
		min = math.Min(min, d)
	}
	return min, nil
}

// Interior returns the union of the box interiors. Interiors of disjoint
// boxes are disjoint.
func (r Region) Interior() Region {
	out := make([]box.Box, 0, len(r.boxes))
	for _, b := range r.boxes {
		out = append(out, b.Interior())
	}
	return fromDisjoint(r.dim, out)
}

// Closure returns the union of the box closures. Closures of disjoint boxes
// may touch, so they are re-inserted.
func (r Region) Closure() (Region, error) {
	closed := make([]box.Box, 0, len(r.boxes))
	for _, b := range r.boxes {
		closed = append(closed, b.Closure())
	}
	return New(closed...)
}

// Boundary returns the topological boundary, closure minus interior.
func (r Region) Boundary() (Region, error) {
	cl, err := r.Closure()
	if err != nil {
		return Region{}, err
	}
	return cl.Difference(r.Interior())
}

// ConnectedComponents splits the region into its connected components. Two
// boxes belong to the same component when their closures overlap; the
// component partition is found by depth-first search over that adjacency
// graph.
func (r Region) ConnectedComponents() []Region {
	if r.IsEmpty() {
		return nil
	}

	n := len(r.boxes)
	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			touching, _ := r.boxes[i].Closure().Overlaps(r.boxes[j].Closure())
			if touching {
				adj[i] = append(adj[i], j)
				adj[j] = append(adj[j], i)
			}
		}
	}

	var components []Region
	visited := make([]bool, n)
	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		var members []box.Box
		stack := []int{root}
		visited[root] = true
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			members = append(members, r.boxes[cur])
			for _, nb := range adj[cur] {
				if !visited[nb] {
					visited[nb] = true
					stack = append(stack, nb)
				}
			}
		}
		components = append(components, fromDisjoint(r.dim, members))
	}
	return components
}

// IsConnected reports whether the region has at most one connected
// component.
func (r Region) IsConnected() bool {
	if len(r.boxes) <= 1 {
		return true
	}
	return len(r.ConnectedComponents()) == 1
}

// Translate shifts every box by the given vector.
func (r Region) Translate(vec []float64) (Region, error) {
	if r.IsEmpty() {
		return r, nil
	}
	if len(vec) != r.dim {
		return Region{}, dimError(len(vec), r.dim)
	}
	out := make([]box.Box, 0, len(r.boxes))
	for _, b := range r.boxes {
		moved, err := b.Translate(vec)
		if err != nil {
			return Region{}, err
		}
		out = append(out, moved)
	}
	return fromDisjoint(r.dim, out), nil
}

// Dilate returns the Minkowski sum of the region with a structuring
// element: the union of all pairwise box sums. Sums of disjoint boxes can
// overlap, so the result is rebuilt by insertion.
func (r Region) Dilate(o Region) (Region, error) {
	if _, err := r.compatible(o); err != nil {
		return Region{}, err
	}
	if r.IsEmpty() || o.IsEmpty() {
		return Region{}, nil
	}
	var sums []box.Box
	for _, a := range r.boxes {
		for _, b := range o.boxes {
			sum, err := a.MinkowskiSum(b)
			if err != nil {
				return Region{}, err
			}
			sums = append(sums, sum)
		}
	}
	return New(sums...)
}

// Erode returns the Minkowski difference {x : x + o is a subset of r}.
// Erosion by a multi-box structuring element intersects the erosions by its
// parts.
func (r Region) Erode(o Region) (Region, error) {
	if _, err := r.compatible(o); err != nil {
		return Region{}, err
	}
	if r.IsEmpty() || o.IsEmpty() {
		return Region{}, nil
	}
	out := r
	for _, b := range o.boxes {
		eroded, err := r.erodeBox(b)
		if err != nil {
			return Region{}, err
		}
		out, err = out.Intersect(eroded)
		if err != nil {
			return Region{}, err
		}
		if out.IsEmpty() {
			break
		}
	}
	return out, nil
}

// erodeBox erodes every component box by b and rebuilds the result.
func (r Region) erodeBox(b box.Box) (Region, error) {
	var out []box.Box
	for _, a := range r.boxes {
		eroded, err := a.MinkowskiDiff(b)
		if err != nil {
			return Region{}, err
		}
		if !eroded.IsEmpty() {
			out = append(out, eroded)
		}
	}
	return New(out...)
}

// Opening erodes then dilates: removes features smaller than the
// structuring element.
func (r Region) Opening(o Region) (Region, error) {
	eroded, err := r.Erode(o)
	if err != nil {
		return Region{}, err
	}
	return eroded.Dilate(o)
}

// Closing dilates then erodes: fills gaps smaller than the structuring
// element.
func (r Region) Closing(o Region) (Region, error) {
	dilated, err := r.Dilate(o)
	if err != nil {
		return Region{}, err
	}
	return dilated.Erode(o)
}

// DilateEpsilon grows the region by eps in every direction, dilating by the
// centered cube [-eps, eps]^N.
func (r Region) DilateEpsilon(eps float64) (Region, error) {
	if eps == 0 || r.IsEmpty() {
		return r, nil
	}
	e, err := interval.Closed(-eps, eps)
	if err != nil {
		return Region{}, err
	}
	cube, err := New(box.Cube(e, r.dim))
	if err != nil {
		return Region{}, err
	}
	return r.Dilate(cube)
}
