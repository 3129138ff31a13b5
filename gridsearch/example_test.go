package gridsearch_test

import (
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/gridsearch"
	"github.com/katalvlaran/gridkit/neighbors"
)

// ExampleShortestPath walks around a two-cell wall on a 5×3 map.
func ExampleShortestPath() {
	g, _ := grid.FromLines([]string{
		".....",
		"..##.",
		".....",
	})
	res, err := gridsearch.ShortestPath(grid.XY(0, 0), grid.XY(4, 2), g, gridsearch.Not('#'))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Reachable, res.Steps)
	// Output:
	// true 6
}

// ExampleNearestTargets returns both targets at distance 3 and lets the
// caller break the tie in reading order.
func ExampleNearestTargets() {
	g, _ := grid.NewBounded(5, 5, '.')
	targets := []grid.Coord{grid.XY(4, 4), grid.XY(0, 3), grid.XY(3, 0)}

	near, _ := gridsearch.NearestTargets(grid.XY(1, 1), targets, g, gridsearch.Not('#'))
	best, _ := near.Best(grid.ReadingLess)
	fmt.Println(near.Distance, len(near.Candidates), best)
	// Output:
	// 3 2 (3,0)
}

// ExampleNextSteps lists every first move that starts a shortest path.
func ExampleNextSteps() {
	g, _ := grid.NewBounded(3, 3, '.')
	steps, _ := gridsearch.NextSteps(grid.XY(0, 0), grid.XY(2, 2), g, gridsearch.Not('#'))
	fmt.Println(steps.Distance, steps.Moves)
	// Output:
	// 4 [(1,0) (0,1)]
}

// ExampleDijkstra finds the lowest-risk route through a digit map, where
// entering a cell costs its digit.
func ExampleDijkstra() {
	g, _ := grid.FromLines([]string{
		"116",
		"138",
		"213",
	})
	goal := grid.XY(2, 2)
	next := func(c grid.Coord) []gridsearch.Edge[grid.Coord, int] {
		var out []gridsearch.Edge[grid.Coord, int]
		for _, n := range neighbors.Coords(c, neighbors.Conn4) {
			if g.InBounds(n) {
				out = append(out, gridsearch.Edge[grid.Coord, int]{To: n, Cost: int(g.At(n) - '0')})
			}
		}
		return out
	}
	res, err := gridsearch.Dijkstra([]grid.Coord{grid.XY(0, 0)}, next, func(c grid.Coord) bool { return c == goal })
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(goal)
	fmt.Println(res.Dist[goal], path)
	// Output:
	// 7 [(0,0) (0,1) (0,2) (1,2) (2,2)]
}

// ExampleRegions counts the islands of '#' cells.
func ExampleRegions() {
	g, _ := grid.FromLines([]string{
		"##..#",
		"#...#",
		"..#..",
	})
	land := func(r rune) bool { return r == '#' }
	same := func(a, b rune) bool { return a == b }
	regions, _ := gridsearch.Regions(g, neighbors.Conn4, land, same)
	fmt.Println(len(regions))
	// Output:
	// 3
}
