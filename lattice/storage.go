package lattice

import (
	"math"

	"github.com/boljen/go-bitmap"
)

// MapField stores one float64 per lattice point, sparsely.
// The zero value is not usable; construct with NewMapField.
type MapField map[Point]float64

// NewMapField returns an empty sparse field.
func NewMapField() MapField { return make(MapField) }

// Get returns the value stored at p, or NaN when p was never set.
// Complexity: O(1) expected.
func (f MapField) Get(p Point) float64 {
	v, ok := f[p]
	if !ok {
		return math.NaN()
	}

	return v
}

// Set stores v at p, overwriting any previous value.
// Complexity: O(1) expected.
func (f MapField) Set(p Point, v float64) { f[p] = v }

// Len returns the number of points holding a value.
func (f MapField) Len() int { return len(f) }

// DenseField stores one float64 per point of a fixed box in a
// contiguous slice. Points never set read as NaN.
type DenseField struct {
	bounds Box
	vals   []float64
}

// NewDenseField allocates a dense field covering box b, every point
// initialized to NaN.
// Complexity: O(Volume).
func NewDenseField(b Box) *DenseField {
	vals := make([]float64, b.Volume())
	nan := math.NaN()
	for i := range vals {
		vals[i] = nan
	}

	return &DenseField{bounds: b, vals: vals}
}

// Bounds returns the box the field covers.
func (f *DenseField) Bounds() Box { return f.bounds }

// Get returns the value stored at p. Points outside the bounds, like
// points never set, read as NaN.
// Complexity: O(1).
func (f *DenseField) Get(p Point) float64 {
	if !f.bounds.Contains(p) {
		return math.NaN()
	}

	return f.vals[f.bounds.Index(p)]
}

// Set stores v at p. The covered box is fixed at construction, so a
// write outside it panics with ErrOutOfBounds.
// Complexity: O(1).
func (f *DenseField) Set(p Point, v float64) {
	if !f.bounds.Contains(p) {
		panic(ErrOutOfBounds.Error())
	}
	f.vals[f.bounds.Index(p)] = v
}

// MapSet stores a set of lattice points, sparsely.
// The zero value is not usable; construct with NewMapSet.
type MapSet map[Point]struct{}

// NewMapSet returns a set holding the given points.
func NewMapSet(points ...Point) MapSet {
	s := make(MapSet, len(points))
	var p Point
	for _, p = range points {
		s.Add(p)
	}

	return s
}

// Contains reports whether p belongs to the set.
// Complexity: O(1) expected.
func (s MapSet) Contains(p Point) bool {
	_, ok := s[p]

	return ok
}

// Add inserts p into the set. Adding a member again is a no-op.
// Complexity: O(1) expected.
func (s MapSet) Add(p Point) { s[p] = struct{}{} }

// Len returns the number of points in the set.
func (s MapSet) Len() int { return len(s) }

// Each visits every point of the set in unspecified order. Visiting
// stops early when visit returns false.
// Complexity: O(Len).
func (s MapSet) Each(visit func(Point) bool) {
	for p := range s {
		if !visit(p) {
			return
		}
	}
}

// DenseSet stores membership for every point of a fixed box in a
// packed bitmap: one bit per lattice point plus a running count.
type DenseSet struct {
	bounds Box
	bits   bitmap.Bitmap
	n      int
}

// NewDenseSet allocates an empty dense set covering box b.
// Complexity: O(Volume) memory, one bit per point.
func NewDenseSet(b Box) *DenseSet {
	return &DenseSet{bounds: b, bits: bitmap.New(b.Volume())}
}

// Bounds returns the box the set covers.
func (s *DenseSet) Bounds() Box { return s.bounds }

// Contains reports whether p belongs to the set. Points outside the
// bounds are never members.
// Complexity: O(1).
func (s *DenseSet) Contains(p Point) bool {
	if !s.bounds.Contains(p) {
		return false
	}

	return s.bits.Get(s.bounds.Index(p))
}

// Add inserts p into the set. Adding a member again is a no-op.
// The covered box is fixed at construction, so adding a point outside
// it panics with ErrOutOfBounds.
// Complexity: O(1).
func (s *DenseSet) Add(p Point) {
	if !s.bounds.Contains(p) {
		panic(ErrOutOfBounds.Error())
	}
	idx := s.bounds.Index(p)
	if s.bits.Get(idx) {
		return
	}
	s.bits.Set(idx, true)
	s.n++
}

// Len returns the number of points in the set.
func (s *DenseSet) Len() int { return s.n }

// Each visits every member of the set in ascending Index order.
// Visiting stops early when visit returns false.
// Complexity: O(Volume).
func (s *DenseSet) Each(visit func(Point) bool) {
	n := s.bounds.Volume()
	for i := 0; i < n; i++ {
		if !s.bits.Get(i) {
			continue
		}
		if !visit(s.bounds.PointAt(i)) {
			return
		}
	}
}
