// Package gridsearch runs shortest-path, flood-fill and region searches over
// a grid.Grid, plus a generic Dijkstra for weighted state spaces.
//
// What
//
//   - ShortestPath: unit-step BFS distance start→goal, or NotReachable.
//   - Path:         one shortest path as a coordinate list.
//   - FloodFill:    BFS distance to every reachable cell; absence = unreachable.
//   - NearestTargets: all targets at the minimal distance, tie-break left to
//     the caller through Nearest.Best (e.g. grid.ReadingLess).
//   - NextSteps:    every first move that starts a shortest path to a goal.
//   - Dijkstra:     min-heap expansion with lazy deletion over any comparable
//     state type and integer or float costs.
//   - Regions:      connected components of like cells via union-find.
//
// Passability
//
//	A Passable predicate decides whether a cell may be entered. Dynamic
//	obstacles (WithObstacles) block cells for one call only and are never
//	written to the grid. The goal of ShortestPath/Path/NextSteps and the
//	targets of NearestTargets are exempt from the obstacle set, so a unit's
//	own destination is never blocked by the unit standing on it. The start
//	cell is never checked.
//
// Determinism
//
//	Cells are expanded FIFO in the fixed offset order of the connectivity,
//	so visit order, parents and candidate order are reproducible.
//
// Complexity (n = cells explored, d = 4, 6, 8 or 26)
//
//   - BFS-based searches: O(n·d) time, O(n) memory.
//   - Dijkstra:           O((V + E) log E) time, O(V + E) memory.
//
// Options
//
//   - WithContext(ctx):       cancellation, checked once per dequeued cell.
//   - WithConnectivity(conn): step directions (default Conn4).
//   - WithObstacles(cs...):   per-call blocked cells.
//   - WithMaxDepth(d):        stop beyond depth d (>0); 0 = no limit.
//   - WithOnVisit(fn):        hook on dequeue; returning an error aborts.
//   - WithLogger(l):          Debug summary of every search.
//
// Errors
//
//   - ErrNilGrid, ErrNilPassable for missing inputs.
//   - ErrOptionViolation for invalid options.
//   - ErrNotReachable from Path only; every other search reports
//     unreachability as a result value.
//   - ErrNegativeCost from Dijkstra.
package gridsearch
