// Package boxsearch finds the integer point in 3D space covered by the most
// L1 ranges, breaking ties by distance to the origin.
//
// What
//
//	Each Bot covers the octahedron |x-px|+|y-py|+|z-pz| ≤ R. Search returns
//	the point inside the most octahedra; among equally covered points, the
//	one with the smallest L1 distance to the origin.
//
// How
//
//  1. Enclosing builds a power-of-two cube around every range so repeated
//     bisection stays integer-aligned.
//  2. A max-heap holds (box, upper bound). UpperBound counts the bots that
//     can reach any point of the box: a corner within radius, a range
//     extremity inside the box, or box-to-center distance ≤ R. The bound
//     never undercounts, and is exact once the box is a single point.
//  3. Pop order: bound desc, size desc, origin distance asc. The first point
//     popped is optimal, since all remaining boxes bound their points by at
//     most its count and equal-bound boxes are fully split before points.
//  4. Non-point boxes split into 8 octants; octants with bound 0 are dropped.
//
// Complexity
//
//	Worst case visits every point of the enclosing cube; in practice the
//	bound prunes to a few thousand boxes for a thousand bots. Each push
//	costs O(bots + log queue).
//
// Errors
//
//   - ErrNoBots, ErrNegativeRadius, ErrOptionViolation for bad input.
//   - ErrExhausted when the queue empties without a point (a bound bug).
//   - ErrTimeLimit or the context error when interrupted.
package boxsearch
