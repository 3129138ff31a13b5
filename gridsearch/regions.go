package gridsearch

import (
	"github.com/spakin/disjoint"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/neighbors"
)

// Regions partitions the stored cells of g into connected components: two
// neighboring cells (under conn) belong to the same region when
// same(a, b) is true. include filters which cells take part at all
// (nil includes every stored cell).
//
// Regions are returned in order of their first cell in g's insertion order,
// and cells inside a region keep that order too.
//
// Complexity: O(n·d·α(n)) time, O(n) memory.
func Regions[V comparable](g *grid.Grid[V], conn neighbors.Connectivity, include func(V) bool, same func(a, b V) bool) ([][]grid.Coord, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if same == nil {
		same = func(a, b V) bool { return a == b }
	}

	elems := make(map[grid.Coord]*disjoint.Element, g.Len())
	keys := g.Keys()
	for _, c := range keys {
		if include == nil || include(g.At(c)) {
			elems[c] = disjoint.NewElement()
		}
	}
	offsets := neighbors.Offsets(conn)
	for _, c := range keys {
		e, ok := elems[c]
		if !ok {
			continue
		}
		v := g.At(c)
		for _, d := range offsets {
			n := c.Add(d)
			ne, ok := elems[n]
			if !ok || !same(v, g.At(n)) {
				continue
			}
			if e.Find() != ne.Find() {
				disjoint.Union(e, ne)
			}
		}
	}

	index := make(map[*disjoint.Element]int)
	var out [][]grid.Coord
	for _, c := range keys {
		e, ok := elems[c]
		if !ok {
			continue
		}
		root := e.Find()
		i, seen := index[root]
		if !seen {
			i = len(out)
			index[root] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], c)
	}

	return out, nil
}
