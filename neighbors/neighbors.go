package neighbors

import "github.com/katalvlaran/gridkit/grid"

// Neighbors returns the neighbor cells of c in g under p, in the fixed
// offset order of p.Conn. See AppendNeighbors.
func Neighbors[V comparable](c grid.Coord, g *grid.Grid[V], p Policy[V]) ([]Cell[V], error) {
	return AppendNeighbors(nil, c, g, p)
}

// AppendNeighbors appends the neighbors of c to dst and returns the extended
// slice, so hot loops can reuse one buffer across cells.
//
// Adjacent mode drops out-of-range offsets of a bounded grid. Ray mode walks
// each direction until a non-transparent cell (appended), the boundary, or
// MaxRay steps (nothing appended for that direction).
func AppendNeighbors[V comparable](dst []Cell[V], c grid.Coord, g *grid.Grid[V], p Policy[V]) ([]Cell[V], error) {
	if p.Conn < Conn4 || p.Conn > Conn26 {
		return dst, ErrConnectivity
	}
	if p.Ray && !g.Bounded() && p.MaxRay <= 0 {
		return dst, ErrUnboundedRay
	}
	for _, d := range Offsets(p.Conn) {
		if !p.Ray {
			n := c.Add(d)
			if g.InBounds(n) {
				dst = append(dst, Cell[V]{At: n, Value: g.At(n)})
			}
			continue
		}
		if cell, ok := cast(c, d, g, p); ok {
			dst = append(dst, cell)
		}
	}

	return dst, nil
}

// cast walks from c along d and returns the first opaque cell.
func cast[V comparable](c, d grid.Coord, g *grid.Grid[V], p Policy[V]) (Cell[V], bool) {
	n := c
	for step := 1; p.MaxRay <= 0 || step <= p.MaxRay; step++ {
		n = n.Add(d)
		if !g.InBounds(n) {
			break
		}
		v := g.At(n)
		if p.Transparent == nil || !p.Transparent(v) {
			return Cell[V]{At: n, Value: v}, true
		}
	}

	return Cell[V]{}, false
}

// Coords applies the offsets of conn to c without consulting any grid.
func Coords(c grid.Coord, conn Connectivity) []grid.Coord {
	offs := Offsets(conn)
	out := make([]grid.Coord, len(offs))
	for i, d := range offs {
		out[i] = c.Add(d)
	}

	return out
}

// CountEqual returns how many cells hold v.
func CountEqual[V comparable](cells []Cell[V], v V) int {
	n := 0
	for _, cell := range cells {
		if cell.Value == v {
			n++
		}
	}

	return n
}
