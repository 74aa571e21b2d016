package lattice

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// ImplicitSurfels digitizes the zero level set of phi inside box b at
// grid spacing h. A lattice point p is inner when phi(p.Vec(h)) < 0;
// every face between an inner point and a non-inner neighbor inside b
// becomes one Surfel{Inner, Outer}. Neighbors outside b are skipped,
// clipping the digitized surface at the box boundary.
//
// Surfels are emitted with inner points in ascending b.Index order and
// faces in Stencil order, so the result is reproducible.
// phi is evaluated exactly once per point of b.
// Panics with ErrDimension if dim is outside [1, MaxDim].
// Complexity: O(Volume × dim) time, O(Volume) memory.
func ImplicitSurfels(dim int, phi func(r3.Vec) float64, b Box, h float64) []Surfel {
	if dim < 1 || dim > MaxDim {
		panic(ErrDimension.Error())
	}

	// 1) Classify every point of the box once: inner iff phi < 0.
	inner := NewDenseSet(b)
	b.Each(func(p Point) bool {
		if phi(p.Vec(h)) < 0 {
			inner.Add(p)
		}

		return true
	})

	// 2) Walk inner points in index order and emit one surfel per
	//    sign-changing face within the box.
	offsets := Stencil(dim)
	surfels := make([]Surfel, 0)
	var off, q Point
	inner.Each(func(p Point) bool {
		for _, off = range offsets {
			q = p.Add(off)
			if !b.Contains(q) || inner.Contains(q) {
				continue
			}
			surfels = append(surfels, Surfel{Inner: p, Outer: q})
		}

		return true
	})

	return surfels
}
