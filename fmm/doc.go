// Package fmm provides a precise, high-performance implementation of the
// fast marching method for arrival-time and signed-distance fields on
// integer lattices in 1, 2 or 3 dimensions.
//
// Overview:
//
//   - Fast marching propagates a front outward from an accepted seed set,
//     finalizing one lattice point per step in order of increasing distance
//     magnitude, much like Dijkstra's algorithm on an implicit grid graph.
//   - Each step pops the closest candidate from a min-heap, accepts it, and
//     re-estimates the tentative values of its not-yet-accepted neighbors.
//   - Estimates are upwind: they read only values of already-accepted points,
//     so every accepted value is final the moment it is written.
//   - Signed fields are supported throughout. Seeding a surface with negative
//     inner and positive outer values marches both sides at once, ordered by
//     distance magnitude.
//
// When to use:
//
//   - Distance transforms: Euclidean (first- or second-order), taxicab or
//     chessboard distance to any seed set.
//   - Signed distance to a digitized surface, inside negative, outside positive.
//   - Arrival-time fields for monotone front propagation, narrow-band level
//     set reinitialization, or geodesic seeding on regular grids.
//
// Key features:
//
//   - Pluggable local estimators: L2FirstOrder (default), L2SecondOrder,
//     L1 and LInf, all sharing one upwind quadratic solver.
//   - Functional options bound the march: WithMaxAccepted caps the accepted
//     set size; WithMaxDistance stops once the front passes a magnitude.
//   - Storage-agnostic: the engine speaks to any DistanceField and PointSet,
//     dense (lattice.DenseField/DenseSet) or sparse (lattice.MapField/MapSet).
//   - Point-by-point control: ComputeOneStep exposes each acceptance, Compute
//     runs the march to its stopping rule.
//   - Deterministic: equal-magnitude candidates break ties lexicographically,
//     so identical inputs always march in the same order.
//
// Performance and complexity:
//
//   - Time:  O(N·dim·log N) for N accepted points.
//   - Each step pops O(log N) and re-estimates at most 2·dim neighbors.
//   - Each estimate solves a closed-form quadratic over at most dim axes.
//   - Space: O(N + F) where F is the frontier size.
//   - Stale heap entries are pruned lazily at extraction, as in
//     lazy-decrease-key Dijkstra implementations.
//
// Error handling (sentinel errors):
//
//   - ErrNilField:    New was given a nil DistanceField.
//   - ErrNilSet:      New was given a nil PointSet.
//   - ErrNilPredicate: New was given a nil domain predicate.
//   - ErrDimension:   dimension outside [1, lattice.MaxDim].
//   - ErrEmptyAcceptedSet: the accepted set is empty, leaving the front nowhere
//     to start; seed at least one point before constructing the engine.
//   - ErrOptionViolation: an invalid option value was supplied (nil estimator,
//     negative cap, NaN or negative distance bound).
//
// API reference:
//
//	func New(
//	    dim int,
//	    field DistanceField,
//	    set PointSet,
//	    within PointPredicate,
//	    opts ...Option,
//	) (*Engine, error)
//
//	  - dim:    working dimension, 1 ≤ dim ≤ lattice.MaxDim.
//	  - field:  distance storage, seeded for every point of set.
//	  - set:    accepted set holding at least one seed point.
//	  - within: domain predicate; the march never leaves it.
//	  - opts:   zero or more functional options:
//	      • WithEstimator(Estimator):  local rule, default L2FirstOrder.
//	      • WithMaxAccepted(int):      cap on total accepted points (0 = none).
//	      • WithMaxDistance(float64):  stop once |value| reaches the bound.
//
//	Engine methods:
//	  - ComputeOneStep() (PointValue, bool): accept one point, false when done.
//	  - Compute():                           march until a stopping rule fires.
//	  - Min(), Max():                        extreme accepted values so far.
//	  - Accepted():                          points accepted by the engine.
//
// Seeding helpers:
//
//   - Seed:          uniform value over explicit points.
//   - SeedSamples:   explicit point/value pairs.
//   - SeedBy:        rule-computed values over explicit points.
//   - SeedInterface: inner/outer values over the incident points of surfels.
//
// Hazards:
//
//   - Every point of the accepted set must hold a finite field value before
//     New is called; the seeding helpers maintain this.
//   - Estimators orient each estimate by the sign of the accepted neighbor
//     values they read. A candidate exposed to both signs at once gets an
//     unspecified sign. Seeding every surfel of a closed surface (as
//     SeedInterface over ImplicitSurfels does) never exposes one: the two
//     seed layers insulate the fronts from each other.
//
// Thread safety:
//
//   - An Engine is not safe for concurrent use; it mutates field and set.
//     Run one march per goroutine or synchronize externally.
//
// See also:
//
//   - lattice: points, boxes, dense/sparse storage, surfel extraction.
//
// Thanks for choosing fastmarch! We aim to provide rock-solid front
// propagation that blends mathematical rigor, performance, and clarity.
// If you spot any issue or have suggestions, please open an issue or PR
// on GitHub.
package fmm
