// Package simulate runs cellular automata over a grid.Grid until a fixed
// point, a cycle or a tick limit.
//
// A Simulator pairs a Rule with a neighbors.Policy. Every tick is computed
// into a fresh grid from the previous tick only, so rule order never leaks
// into the result.
//
// Domains
//
//	Bounded grids evaluate every in-range cell. Unbounded grids evaluate the
//	stored cells plus their adjacent ring and keep only results that differ
//	from the default value, which is exact for rules where an all-default
//	neighborhood stays default (Life-like growth on an infinite plane).
//
// Runs
//
//   - Run(g, n):                     exactly n ticks.
//   - RunUntilStable(g):             until a tick changes nothing.
//   - RunWithCycleDetection(g, t):   state at tick t, jumping along the
//     first repeated state instead of stepping every tick.
//
// Built-in rules: LifeRule (birth/survival counts), SeatRule (occupancy with
// adjacent or visible neighbors), LumberRule and the Pinned wrapper.
//
// Errors
//
//   - ErrNilGrid, ErrNilRule, ErrNegativeTicks for invalid input.
//   - ErrOptionViolation for invalid options.
//   - ErrCycleInvariant if cycle bookkeeping is inconsistent.
//   - neighbors errors (ErrConnectivity, ErrUnboundedRay) from the policy.
package simulate
