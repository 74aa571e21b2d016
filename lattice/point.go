package lattice

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Pt1 returns the 1D lattice point (x).
func Pt1(x int) Point { return Point{x, 0, 0} }

// Pt2 returns the 2D lattice point (x, y).
func Pt2(x, y int) Point { return Point{x, y, 0} }

// Pt3 returns the 3D lattice point (x, y, z).
func Pt3(x, y, z int) Point { return Point{x, y, z} }

// Shift returns a copy of p with the given axis displaced by delta.
// Complexity: O(1).
func (p Point) Shift(axis, delta int) Point {
	p[axis] += delta

	return p
}

// Add returns the componentwise sum p + q.
// Complexity: O(1).
func (p Point) Add(q Point) Point {
	for i := 0; i < MaxDim; i++ {
		p[i] += q[i]
	}

	return p
}

// Compare orders two points lexicographically, axis 0 first.
// Returns -1 if a precedes b, 0 if equal, +1 if a follows b.
// Complexity: O(1).
func Compare(a, b Point) int {
	for i := 0; i < MaxDim; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}

	return 0
}

// Less reports whether p precedes q in lexicographic axis order.
func (p Point) Less(q Point) bool { return Compare(p, q) < 0 }

// String renders the point as "(x,y,z)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p[0], p[1], p[2])
}

// Vec embeds the lattice point into continuous space at grid spacing h,
// mapping coordinate i to h·p[i]. Lower-dimensional points keep zero on
// their unused axes.
func (p Point) Vec(h float64) r3.Vec {
	return r3.Vec{
		X: h * float64(p[0]),
		Y: h * float64(p[1]),
		Z: h * float64(p[2]),
	}
}

// Stencil returns the 2·dim unit offsets of the face-adjacency stencil
// in dimension dim, ordered axis by axis with the negative direction
// first: (-1,0,0), (+1,0,0), (0,-1,0), ...
// Traversals that apply the offsets in slice order therefore visit
// neighbors in a fixed, reproducible sequence.
// Panics with ErrDimension if dim is outside [1, MaxDim].
// Complexity: O(dim).
func Stencil(dim int) []Point {
	if dim < 1 || dim > MaxDim {
		panic(ErrDimension.Error())
	}
	offsets := make([]Point, 0, 2*dim)
	var minus, plus Point
	for axis := 0; axis < dim; axis++ {
		minus, plus = Point{}, Point{}
		minus[axis], plus[axis] = -1, +1
		offsets = append(offsets, minus, plus)
	}

	return offsets
}
