package simulate

import (
	"slices"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/neighbors"
)

// LifeRule is the outer-totalistic birth/survival rule: a dead cell with a
// live-neighbor count in born comes alive, a live cell with a count in
// survive stays alive, and every other cell becomes dead.
// Conway's Game of Life is LifeRule([]int{3}, []int{2, 3}, alive, dead).
func LifeRule[V comparable](born, survive []int, alive, dead V) Rule[V] {
	born, survive = slices.Clone(born), slices.Clone(survive)

	return func(_ grid.Coord, cur V, nbrs []neighbors.Cell[V]) V {
		n := neighbors.CountEqual(nbrs, alive)
		if cur == alive {
			if slices.Contains(survive, n) {
				return alive
			}
			return dead
		}
		if slices.Contains(born, n) {
			return alive
		}

		return dead
	}
}

// SeatRule models seat occupancy: an empty seat with no occupied neighbor
// fills, an occupied seat with at least tolerance occupied neighbors empties.
// Any other value (floor) never changes.
func SeatRule[V comparable](empty, occupied V, tolerance int) Rule[V] {
	return func(_ grid.Coord, cur V, nbrs []neighbors.Cell[V]) V {
		switch cur {
		case empty:
			if neighbors.CountEqual(nbrs, occupied) == 0 {
				return occupied
			}
		case occupied:
			if neighbors.CountEqual(nbrs, occupied) >= tolerance {
				return empty
			}
		}

		return cur
	}
}

// LumberRule is the open/trees/lumberyard cycle:
//
//	open → trees   when ≥3 neighbors are trees
//	trees → yard   when ≥3 neighbors are yards
//	yard stays     when ≥1 neighbor is a yard and ≥1 is trees, else → open
func LumberRule[V comparable](open, trees, yard V) Rule[V] {
	return func(_ grid.Coord, cur V, nbrs []neighbors.Cell[V]) V {
		switch cur {
		case open:
			if neighbors.CountEqual(nbrs, trees) >= 3 {
				return trees
			}
		case trees:
			if neighbors.CountEqual(nbrs, yard) >= 3 {
				return yard
			}
		case yard:
			if neighbors.CountEqual(nbrs, yard) == 0 || neighbors.CountEqual(nbrs, trees) == 0 {
				return open
			}
		}

		return cur
	}
}

// Pinned wraps rule so the given cells always hold their pinned value,
// e.g. permanently lit corners.
func Pinned[V comparable](rule Rule[V], pins map[grid.Coord]V) Rule[V] {
	fixed := make(map[grid.Coord]V, len(pins))
	for c, v := range pins {
		fixed[c] = v
	}

	return func(c grid.Coord, cur V, nbrs []neighbors.Cell[V]) V {
		if v, ok := fixed[c]; ok {
			return v
		}
		return rule(c, cur, nbrs)
	}
}

// Resolution multiplies trees by lumberyards, the usual score of a
// LumberRule landscape.
func Resolution[V comparable](g *grid.Grid[V], trees, yard V) int {
	return g.Count(trees) * g.Count(yard)
}
