// Package neighbors enumerates the cells adjacent to a coordinate of a
// grid.Grid under a configurable adjacency policy.
//
// What:
//
//   - Four connectivities: Conn4 (N, E, S, W), Conn8 (Conn4 then NE, SE, SW, NW),
//     Conn6 (Conn4 then up/down along Z) and Conn26 (every cell of the
//     surrounding 3×3×3 cube, in z, y, x reading order).
//   - Adjacent mode returns the immediate neighbors.
//   - Ray mode walks each direction, skips cells the Transparent predicate
//     accepts, and returns the first opaque cell ("visible seat" rules).
//
// Determinism:
//
//	Neighbors are always produced in the fixed offset order of the
//	connectivity, so "first available" tie-breaks downstream are reproducible.
//
// Bounds:
//
//	Out-of-range neighbors of a bounded grid are silently left out: edge
//	cells simply have fewer neighbors. Unbounded grids report every offset,
//	reading unset cells as the default value. A ray on an unbounded grid must
//	be capped with MaxRay, otherwise ErrUnboundedRay is returned.
//
// Complexity:
//
//   - Adjacent: O(d), d = 4, 6, 8 or 26.
//   - Ray:      O(d·L), L = distance to the first opaque cell or the boundary.
package neighbors
