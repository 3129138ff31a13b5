package gridsearch_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/gridsearch"
	"github.com/katalvlaran/gridkit/neighbors"
)

// benchMaze returns an n×n grid with roughly 20% walls and open corners.
func benchMaze(n int) *grid.Grid[rune] {
	rng := rand.New(rand.NewSource(7))
	g, _ := grid.NewBounded(n, n, '.')
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if rng.Intn(5) == 0 {
				_ = g.Set(grid.XY(x, y), '#')
			}
		}
	}
	_ = g.Set(grid.XY(0, 0), '.')
	_ = g.Set(grid.XY(n-1, n-1), '.')

	return g
}

// BenchmarkShortestPath_Maze measures corner-to-corner BFS on a 200×200 maze.
func BenchmarkShortestPath_Maze(b *testing.B) {
	const n = 200
	g := benchMaze(n)
	passable := gridsearch.Not('#')

	b.ReportAllocs()
	b.SetBytes(int64(n * n))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = gridsearch.ShortestPath(grid.XY(0, 0), grid.XY(n-1, n-1), g, passable)
	}
}

// BenchmarkFloodFill_Open floods an empty 200×200 grid.
func BenchmarkFloodFill_Open(b *testing.B) {
	const n = 200
	g, _ := grid.NewBounded(n, n, '.')
	passable := gridsearch.Not('#')

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = gridsearch.FloodFill(grid.XY(n/2, n/2), g, passable)
	}
}

// BenchmarkDijkstra_Weighted runs a full weighted expansion over a 100×100
// grid with costs 1..9.
func BenchmarkDijkstra_Weighted(b *testing.B) {
	const n = 100
	rng := rand.New(rand.NewSource(11))
	cost := make(map[grid.Coord]int, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			cost[grid.XY(x, y)] = 1 + rng.Intn(9)
		}
	}
	next := func(c grid.Coord) []gridsearch.Edge[grid.Coord, int] {
		out := make([]gridsearch.Edge[grid.Coord, int], 0, 4)
		for _, nb := range neighbors.Coords(c, neighbors.Conn4) {
			if w, ok := cost[nb]; ok {
				out = append(out, gridsearch.Edge[grid.Coord, int]{To: nb, Cost: w})
			}
		}
		return out
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = gridsearch.Dijkstra([]grid.Coord{grid.XY(0, 0)}, next, nil)
	}
}
