// Package gridkit is a toolkit for discrete 2D/3D space puzzles: sparse
// grids, neighbor lookup, grid searches, cellular automata and a 3D
// branch-and-bound point search.
//
// What is inside?
//
//	grid/        Coord, bounded and unbounded sparse Grid, text parsing, snapshots
//	neighbors/   Conn4/Conn8/Conn6/Conn26 offsets, adjacent and ray ("visible") policies
//	gridsearch/  BFS shortest path, flood fill, nearest targets, next steps,
//	             generic Dijkstra with lazy deletion, union-find regions
//	simulate/    synchronous automata: run, run until stable, cycle-skipping runs
//	boxsearch/   best-first octree search for the point covered by most L1 ranges
//	render/      text and PNG rendering of a grid
//
// The library packages never read files or print; cmd/gridkit wires them to
// YAML scenario files, logrus logging and PNG output.
//
// Quick example:
//
//	g, _ := grid.FromLines([]string{
//		".....",
//		"..##.",
//		".....",
//	})
//	res, _ := gridsearch.ShortestPath(grid.XY(0, 0), grid.XY(4, 2), g, gridsearch.Not('#'))
//	fmt.Println(res.Steps) // 6
//
// Run the samples:
//
//	go run ./cmd/gridkit -config examples/scenarios.yaml
package gridkit
