// Package lattice provides the integer-grid geometry underneath the
// fastmarch solvers: points, axis-aligned boxes, dense and sparse
// field/set storage, and surfel extraction from implicit surfaces.
//
// What:
//
//   - Point is a comparable lattice point usable in 1, 2 or 3 dimensions.
//   - Box is an inclusive axis-aligned bounding box with row-major indexing.
//   - MapField/DenseField store one float64 per lattice point.
//   - MapSet/DenseSet store point membership (DenseSet packs it into a bitmap).
//   - Surfel and ImplicitSurfels digitize the zero level set of an implicit
//     function into inner/outer point pairs.
//
// Why:
//
//   - Front propagation needs O(1) neighbor arithmetic on grid points.
//   - Dense storage wins on compact domains; sparse storage wins on narrow
//     bands. Both satisfy the same tiny interfaces, so solvers take either.
//   - Surfels seed signed-distance computations on both sides of a surface.
//
// Complexity:
//
//   - Point and Box operations: O(1); Box.Each: O(Volume).
//   - MapField/MapSet: O(1) expected per operation.
//   - DenseField/DenseSet: O(1) per operation, O(Volume) memory.
//   - ImplicitSurfels: O(Volume × dim) evaluations of the implicit function.
//
// Errors:
//
//   - ErrDimension: requested dimension outside [1, MaxDim].
//   - ErrOutOfBounds: write to a point outside a dense container's box.
//
// See: fmm for the front-propagation engine built on these types.
package lattice
