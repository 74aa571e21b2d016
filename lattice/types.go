// Package lattice defines core types and sentinel errors
// for the lattice subpackage of github.com/katalvlaran/fastmarch.
package lattice

import (
	"errors"
)

// Sentinel errors for lattice operations.
var (
	// ErrDimension indicates a requested dimension outside [1, MaxDim].
	ErrDimension = errors.New("lattice: dimension must be between 1 and MaxDim")
	// ErrOutOfBounds indicates a write to a point outside a dense container's box.
	ErrOutOfBounds = errors.New("lattice: point outside container bounds")
)

// MaxDim is the highest lattice dimension the package supports.
const MaxDim = 3

// Point is a lattice point with integer coordinates.
//
// A Point always carries MaxDim coordinates; code working in a lower
// dimension simply leaves the trailing coordinates at zero. This keeps
// Point a comparable value type, directly usable as a map key, while
// the same arithmetic serves 1D, 2D and 3D alike.
type Point [MaxDim]int

// Box is an axis-aligned bounding box over lattice points, inclusive
// on every axis: p belongs to the box iff Lo[i] ≤ p[i] ≤ Hi[i] for all
// axes. Build boxes with NewBox, which canonicalizes the corners; a
// hand-built Box with Lo > Hi on some axis has undefined indexing.
//
// The zero Box covers exactly the origin, which makes it the natural
// bounding box of lower-dimensional points on their unused axes.
type Box struct {
	Lo, Hi Point
}

// Surfel is a surface element of a digitized boundary: a unit-length
// link between an inner lattice point (negative side of the surface)
// and one of its face neighbors on the outer side.
type Surfel struct {
	Inner Point // point on the negative side of the surface
	Outer Point // face neighbor on the non-negative side
}
