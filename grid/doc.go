// Package grid provides the coordinate model and the sparse cell store that
// every other gridkit package builds on.
//
// What:
//
//   - Coord is an immutable (X, Y, Z) integer triple used as a map key.
//     Two-dimensional code simply leaves Z at zero.
//   - Grid[V] maps coordinates to comparable cell values. It comes in two
//     flavours:
//     – Bounded: fixed extents, every in-range cell populated up front.
//     Reads outside the extents return the configured outside value, or
//     ErrOutOfBounds when the grid was built WithStrict().
//     – Unbounded: any coordinate that was never written reads as the
//     default value. Reads never insert.
//   - Keys and Items iterate in insertion order, so results never depend on
//     Go's map iteration order.
//   - Snapshot hashes the full cell state independently of insertion order;
//     it is the key used by the simulate package for cycle detection.
//
// Why:
//
//   - Puzzle maps, seating charts, caverns and cellular automata all share
//     the same "sparse mapping from coordinates to small values" shape.
//   - Explicit get-with-default semantics keep read-only probing of an
//     infinite plane from growing the map.
//
// Complexity:
//
//   - Get / Set / Has: O(1) average.
//   - Bounds (unbounded grid): O(n) on the first call after a new key, O(1) after.
//   - Equal / Snapshot / Clone: O(n).
//
// Errors:
//
//   - ErrOutOfBounds:    access outside a bounded grid's extents.
//   - ErrEmptyGrid:      zero-sized extents or empty text input.
//   - ErrNonRectangular: ragged text rows for a bounded grid.
//   - ErrOptionViolation: an Option could not be applied (e.g. wrong outside type).
package grid
