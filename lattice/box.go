package lattice

// NewBox returns the axis-aligned box spanning lo and hi, inclusive on
// every axis. The arguments may name any two opposite corners; the
// coordinates are reordered per axis.
// Complexity: O(1).
func NewBox(lo, hi Point) Box {
	var b Box
	for i := 0; i < MaxDim; i++ {
		if lo[i] <= hi[i] {
			b.Lo[i], b.Hi[i] = lo[i], hi[i]
		} else {
			b.Lo[i], b.Hi[i] = hi[i], lo[i]
		}
	}

	return b
}

// Contains reports whether p lies inside the box on every axis.
// Complexity: O(1).
func (b Box) Contains(p Point) bool {
	for i := 0; i < MaxDim; i++ {
		if p[i] < b.Lo[i] || p[i] > b.Hi[i] {
			return false
		}
	}

	return true
}

// Size returns the number of lattice points the box spans along one
// axis: Hi[axis] - Lo[axis] + 1.
func (b Box) Size(axis int) int { return b.Hi[axis] - b.Lo[axis] + 1 }

// Volume returns the total number of lattice points inside the box.
// Unused axes contribute a factor of 1.
func (b Box) Volume() int {
	v := 1
	for i := 0; i < MaxDim; i++ {
		v *= b.Size(i)
	}

	return v
}

// Index maps p to its row-major offset within the box, axis 0 varying
// fastest. The caller must ensure b.Contains(p).
// Complexity: O(1).
func (b Box) Index(p Point) int {
	idx := 0
	for i := MaxDim - 1; i >= 0; i-- {
		idx = idx*b.Size(i) + (p[i] - b.Lo[i])
	}

	return idx
}

// PointAt converts a row-major offset back into a lattice point, the
// inverse of Index for offsets in [0, Volume).
// Complexity: O(1).
func (b Box) PointAt(idx int) Point {
	var p Point
	var s int
	for i := 0; i < MaxDim; i++ {
		s = b.Size(i)
		p[i] = b.Lo[i] + idx%s
		idx /= s
	}

	return p
}

// Each visits every lattice point of the box in ascending Index order
// (axis 0 fastest). Visiting stops early when visit returns false.
// Complexity: O(Volume).
func (b Box) Each(visit func(Point) bool) {
	n := b.Volume()
	for i := 0; i < n; i++ {
		if !visit(b.PointAt(i)) {
			return
		}
	}
}
