package region

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brunolnetto/interval-sets/pkg/box"
	"github.com/brunolnetto/interval-sets/pkg/interval"
)

func closed2(x0, x1, y0, y1 float64) box.Box {
	b, _ := box.Closed([]float64{x0, y0}, []float64{x1, y1})
	return b
}

func mustRegion(t *testing.T, boxes ...box.Box) Region {
	t.Helper()
	r, err := New(boxes...)
	assert.NoError(t, err)
	return r
}

func TestNew(t *testing.T) {
	cases := map[string]struct {
		boxes          []box.Box
		expectedVolume float64
		expectedErr    bool
	}{
		"Empty": {boxes: nil, expectedVolume: 0},
		"Single": {
			boxes:          []box.Box{closed2(0, 1, 0, 1)},
			expectedVolume: 1,
		},
		"LShape": {
			// [0,2]x[0,1] and [0,1]x[0,2] overlap in the unit square:
			// total volume is 3, not 4.
			boxes:          []box.Box{closed2(0, 2, 0, 1), closed2(0, 1, 0, 2)},
			expectedVolume: 3,
		},
		"DuplicateInsert": {
			boxes:          []box.Box{closed2(0, 1, 0, 1), closed2(0, 1, 0, 1)},
			expectedVolume: 1,
		},
		"EmptyBoxesDropped": {
			boxes:          []box.Box{box.Empty(2), closed2(0, 1, 0, 1)},
			expectedVolume: 1,
		},
		"DimensionMismatch": {
			boxes:       []box.Box{closed2(0, 1, 0, 1), box.Cube(interval.Make(0, 1, false, false), 3)},
			expectedErr: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := New(tc.boxes...)
			if tc.expectedErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, box.ErrDimensionMismatch)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedVolume, r.Volume())
		})
	}
}

func TestInsertionKeepsDisjoint(t *testing.T) {
	r := mustRegion(t,
		closed2(0, 4, 0, 4),
		closed2(2, 6, 2, 6),
		closed2(5, 9, 0, 3),
	)
	boxes := r.Boxes()
	for i := range boxes {
		for j := i + 1; j < len(boxes); j++ {
			overlaps, err := boxes[i].Overlaps(boxes[j])
			assert.NoError(t, err)
			assert.False(t, overlaps, "boxes %d and %d overlap", i, j)
		}
	}
	// 16 + (16 - 4 covered by the first) + (12 - 1 covered by the second).
	assert.Equal(t, 39.0, r.Volume())
}

func TestRoundTrip(t *testing.T) {
	r := mustRegion(t, closed2(0, 2, 0, 1), closed2(0, 1, 0, 2))
	again := mustRegion(t, r.Boxes()...)
	assert.True(t, r.Equal(again))
	assert.Equal(t, r.Volume(), again.Volume())
}

func TestUnionProperties(t *testing.T) {
	a := mustRegion(t, closed2(0, 2, 0, 2))
	b := mustRegion(t, closed2(1, 3, 1, 3))
	c := mustRegion(t, closed2(10, 11, 10, 11))

	ab, err := a.Union(b)
	assert.NoError(t, err)
	ba, err := b.Union(a)
	assert.NoError(t, err)
	assert.True(t, ab.Equal(ba))
	assert.Equal(t, 7.0, ab.Volume())

	abc1, err := ab.Union(c)
	assert.NoError(t, err)
	bc, err := b.Union(c)
	assert.NoError(t, err)
	abc2, err := a.Union(bc)
	assert.NoError(t, err)
	assert.True(t, abc1.Equal(abc2))

	_, err = a.Union(mustRegion(t, box.Cube(interval.Make(0, 1, false, false), 3)))
	assert.ErrorIs(t, err, box.ErrDimensionMismatch)
}

func TestIntersect(t *testing.T) {
	a := mustRegion(t, closed2(0, 4, 0, 4))
	b := mustRegion(t, closed2(2, 6, 2, 6), closed2(-2, 1, -2, 1))

	got, err := a.Intersect(b)
	assert.NoError(t, err)
	want := mustRegion(t, closed2(2, 4, 2, 4), closed2(0, 1, 0, 1))
	assert.True(t, got.Equal(want))
	assert.Equal(t, 5.0, got.Volume())

	gotR, err := b.Intersect(a)
	assert.NoError(t, err)
	assert.True(t, got.Equal(gotR))
}

func TestPartitionLaw(t *testing.T) {
	a := mustRegion(t, closed2(0, 4, 0, 4), closed2(6, 8, 0, 1))
	b := mustRegion(t, closed2(2, 7, 2, 7))

	inter, err := a.Intersect(b)
	assert.NoError(t, err)
	diff, err := a.Difference(b)
	assert.NoError(t, err)

	// The two parts are disjoint and reassemble a exactly.
	overlap, err := inter.Intersect(diff)
	assert.NoError(t, err)
	assert.True(t, overlap.IsEmpty())

	together, err := inter.Union(diff)
	assert.NoError(t, err)
	assert.True(t, together.Equal(a))
	assert.Equal(t, a.Volume(), inter.Volume()+diff.Volume())
}

func TestSymmetricDifference(t *testing.T) {
	a := mustRegion(t, closed2(0, 2, 0, 2))
	b := mustRegion(t, closed2(1, 3, 1, 3))

	got, err := a.SymmetricDifference(b)
	assert.NoError(t, err)
	gotR, err := b.SymmetricDifference(a)
	assert.NoError(t, err)
	assert.True(t, got.Equal(gotR))
	assert.Equal(t, 6.0, got.Volume())

	self, err := a.SymmetricDifference(a)
	assert.NoError(t, err)
	assert.True(t, self.IsEmpty())
}

func TestComplementDeMorgan(t *testing.T) {
	u := closed2(0, 10, 0, 10)
	a := mustRegion(t, closed2(1, 4, 1, 4))
	b := mustRegion(t, closed2(3, 6, 3, 6))

	ab, err := a.Union(b)
	assert.NoError(t, err)
	left, err := ab.Complement(u)
	assert.NoError(t, err)

	ca, err := a.Complement(u)
	assert.NoError(t, err)
	cb, err := b.Complement(u)
	assert.NoError(t, err)
	right, err := ca.Intersect(cb)
	assert.NoError(t, err)

	assert.True(t, left.Equal(right))
}

func TestContains(t *testing.T) {
	r := mustRegion(t, closed2(0, 2, 0, 1), closed2(0, 1, 0, 2))

	ok, err := r.ContainsPoint([]float64{1.5, 0.5})
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.ContainsPoint([]float64{1.5, 1.5})
	assert.NoError(t, err)
	assert.False(t, ok)

	_, err = r.ContainsPoint([]float64{1})
	assert.ErrorIs(t, err, box.ErrDimensionMismatch)

	// The L corner spans both component boxes: covered even though no
	// single fragment holds it.
	ok, err = r.ContainsBox(closed2(0, 1, 0, 1))
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.ContainsBox(closed2(1, 2, 1, 2))
	assert.NoError(t, err)
	assert.False(t, ok)

	sub := mustRegion(t, closed2(0, 0.5, 0, 1.5))
	ok, err = r.ContainsRegion(sub)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestEqualAcrossTilings(t *testing.T) {
	// The same square assembled from different fragmentations.
	a := mustRegion(t, closed2(0, 2, 0, 2))
	b := mustRegion(t, closed2(0, 1, 0, 2), closed2(1, 2, 0, 2))
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	c := mustRegion(t, closed2(0, 2, 0, 1))
	assert.False(t, a.Equal(c))
	assert.True(t, Region{}.Equal(Region{}))
}

func TestConvexHullAndDiameter(t *testing.T) {
	r := mustRegion(t, closed2(0, 1, 0, 1), closed2(3, 4, 3, 4))
	hull := r.ConvexHull()
	assert.True(t, hull.Equal(closed2(0, 4, 0, 4)))
	assert.Equal(t, math.Sqrt(32), r.Diameter())
	assert.Equal(t, 0.0, Region{}.Diameter())
}

func TestDistance(t *testing.T) {
	a := mustRegion(t, closed2(0, 1, 0, 1))
	b := mustRegion(t, closed2(4, 5, 4, 5), closed2(1, 2, 1, 2))

	d, err := a.Distance(b)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, d)

	far := mustRegion(t, closed2(4, 5, 0, 1))
	d, err = a.Distance(far)
	assert.NoError(t, err)
	assert.Equal(t, 3.0, d)

	d, err = a.Distance(Region{})
	assert.NoError(t, err)
	assert.Equal(t, math.Inf(1), d)

	d, err = a.DistanceToPoint([]float64{4, 1})
	assert.NoError(t, err)
	assert.Equal(t, 3.0, d)
}

func TestTopology(t *testing.T) {
	r := mustRegion(t, closed2(0, 2, 0, 2))

	interior := r.Interior()
	assert.Equal(t, 4.0, interior.Volume())
	ok, err := interior.ContainsPoint([]float64{0, 1})
	assert.NoError(t, err)
	assert.False(t, ok)

	closure, err := interior.Closure()
	assert.NoError(t, err)
	assert.True(t, closure.Equal(r))

	boundary, err := r.Boundary()
	assert.NoError(t, err)
	assert.Equal(t, 0.0, boundary.Volume())
	ok, err = boundary.ContainsPoint([]float64{0, 1})
	assert.NoError(t, err)
	assert.True(t, ok)
	ok, err = boundary.ContainsPoint([]float64{1, 1})
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestConnectedComponents(t *testing.T) {
	r := mustRegion(t,
		closed2(0, 1, 0, 1),
		closed2(1, 2, 0, 1), // shares an edge with the first
		closed2(5, 6, 5, 6),
	)
	components := r.ConnectedComponents()
	assert.Len(t, components, 2)
	assert.False(t, r.IsConnected())

	var total float64
	for _, c := range components {
		total += c.Volume()
	}
	assert.Equal(t, r.Volume(), total)

	assert.True(t, mustRegion(t, closed2(0, 1, 0, 1)).IsConnected())
	assert.True(t, Region{}.IsConnected())
}

func TestMorphology(t *testing.T) {
	a := mustRegion(t, closed2(0, 2, 0, 2))
	ball := mustRegion(t, closed2(-1, 1, -1, 1))

	grown, err := a.Dilate(ball)
	assert.NoError(t, err)
	assert.True(t, grown.Equal(mustRegion(t, closed2(-1, 3, -1, 3))))

	shrunk, err := grown.Erode(ball)
	assert.NoError(t, err)
	assert.True(t, shrunk.Equal(a))

	opened, err := a.Opening(ball)
	assert.NoError(t, err)
	assert.True(t, opened.Equal(a))

	eps, err := a.DilateEpsilon(0.5)
	assert.NoError(t, err)
	assert.True(t, eps.Equal(mustRegion(t, closed2(-0.5, 2.5, -0.5, 2.5))))

	same, err := a.DilateEpsilon(0)
	assert.NoError(t, err)
	assert.True(t, same.Equal(a))
}

func TestFromIntervals(t *testing.T) {
	r := FromIntervals(
		interval.Make(0, 5, false, false),
		interval.Make(3, 8, false, false),
		interval.Make(10, 15, false, false),
	)
	assert.Equal(t, 1, r.Dimension())
	assert.Equal(t, 13.0, r.Volume())

	ok, err := r.ContainsPoint([]float64{6})
	assert.NoError(t, err)
	assert.True(t, ok)
	ok, err = r.ContainsPoint([]float64{9})
	assert.NoError(t, err)
	assert.False(t, ok)
}
