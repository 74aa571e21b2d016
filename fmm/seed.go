package fmm

import (
	"github.com/katalvlaran/fastmarch/lattice"
)

// Seed writes value at every given point and marks the point accepted,
// establishing the invariant New relies on: accepted points hold their
// final value. Points already accepted are re-valued, not re-added.
// Returns the number of points newly added to the set.
// Complexity: O(len(points)).
func Seed(field DistanceField, set PointSet, value float64, points ...lattice.Point) int {
	added := 0
	var p lattice.Point
	for _, p = range points {
		if !set.Contains(p) {
			set.Add(p)
			added++
		}
		field.Set(p, value)
	}

	return added
}

// SeedSamples writes each sample's value at its point and marks the
// point accepted. A point listed twice keeps the later value.
// Returns the number of points newly added to the set.
// Complexity: O(len(samples)).
func SeedSamples(field DistanceField, set PointSet, samples []PointValue) int {
	added := 0
	var s PointValue
	for _, s = range samples {
		if !set.Contains(s.Point) {
			set.Add(s.Point)
			added++
		}
		field.Set(s.Point, s.Value)
	}

	return added
}

// SeedBy writes rule(p) at every given point and marks the point
// accepted. Use it to seed analytic values, e.g. the exact distance on
// a thick band around a surface.
// Returns the number of points newly added to the set.
// Complexity: O(len(points)) rule evaluations.
func SeedBy(field DistanceField, set PointSet, rule func(p lattice.Point) float64, points ...lattice.Point) int {
	added := 0
	var p lattice.Point
	for _, p = range points {
		if !set.Contains(p) {
			set.Add(p)
			added++
		}
		field.Set(p, rule(p))
	}

	return added
}

// SeedInterface seeds both sides of a digitized surface: every
// surfel's inner point receives the inner value (conventionally
// negative, e.g. -0.5) and its outer point the outer value
// (conventionally positive, e.g. +0.5). A point incident to several
// surfels is written once per incidence, with the same value each time.
// Returns the number of points newly added to the set.
//
// Marching from such a seed set yields a signed field: the negative
// front sweeps the inside while the positive front sweeps the outside,
// interleaved by distance magnitude. Seeding every surfel of a closed
// surface keeps the two sign families insulated from each other, since
// each front only ever grows from its own side of the seed layers.
// Complexity: O(len(surfels)).
func SeedInterface(field DistanceField, set PointSet, surfels []lattice.Surfel, inner, outer float64) int {
	added := 0
	var sf lattice.Surfel
	for _, sf = range surfels {
		if !set.Contains(sf.Inner) {
			set.Add(sf.Inner)
			added++
		}
		field.Set(sf.Inner, inner)

		if !set.Contains(sf.Outer) {
			set.Add(sf.Outer)
			added++
		}
		field.Set(sf.Outer, outer)
	}

	return added
}
