// Package fastmarch is your in-memory toolkit for marching distance
// and arrival-time fields across integer lattices — from a single seed
// point to fully signed fields around digitized surfaces.
//
// 🚀 What is fastmarch?
//
//	A compact fast marching library that brings together:
//		• Lattice primitives: points, boxes, stencils, dense & sparse storage
//		• Surface digitization: surfels of an implicit zero level set
//		• The marching engine: ordered front, single stepping, stopping rules
//		• Estimators: Euclidean (first & second order), taxicab, chessboard
//		• Signed marches: inner & outer fronts from one seeded surface
//
// ✨ Why choose fastmarch?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – identical runs yield identical fields, on any storage
//   - Storage-agnostic – bring your own field & set, or use lattice's
//   - Extensible – drop in your own Estimator for custom metrics
//
// Under the hood, everything is organized under two subpackages:
//
//	lattice/ — Point, Box, stencils, MapField/DenseField, MapSet/DenseSet, surfels
//	fmm/     — Engine, estimators, options, seeding helpers
//
// Quick ASCII example:
//
//	1.71 1.00 1.71
//	1.00 0.00 1.00
//	1.71 1.00 1.71
//
//	a zero seed in the middle, Euclidean distance marching outward.
//
// Dive into README.md for full examples, and into the doc.go of each
// subpackage for tutorials, pitfalls and complexity notes.
//
//	go get github.com/katalvlaran/fastmarch
package fastmarch
