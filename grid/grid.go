package grid

import (
	"fmt"

	"golang.org/x/exp/maps"
	"tailscale.com/util/deephash"
)

// Grid maps coordinates to comparable cell values.
//
// A bounded grid owns every coordinate inside its extents from the moment it
// is built; an unbounded grid only stores what was explicitly written and
// answers every other read with its default value. Neither variant ever
// inserts on read and neither deletes a written coordinate.
//
// A Grid is not safe for concurrent mutation; it is owned by its creator.
type Grid[V comparable] struct {
	cells map[Coord]V
	order []Coord // insertion order of cells' keys

	background V // fill value (bounded) or default value (unbounded)
	outside    V
	bounded    bool
	strict     bool
	extent     Bounds

	// lazily computed extent of an unbounded grid
	cached   Bounds
	hasCache bool
}

// NewBounded builds a w×h grid over [0,w)×[0,h) with every cell set to fill,
// inserted in reading order. Returns ErrEmptyGrid for non-positive sizes and
// ErrOptionViolation for unusable options.
func NewBounded[V comparable](w, h int, fill V, opts ...Option) (*Grid[V], error) {
	return NewBounded3D(w, h, 1, fill, opts...)
}

// NewBounded3D builds a w×h×d grid over [0,w)×[0,h)×[0,d).
// See NewBounded.
func NewBounded3D[V comparable](w, h, d int, fill V, opts ...Option) (*Grid[V], error) {
	if w <= 0 || h <= 0 || d <= 0 {
		return nil, ErrEmptyGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	var outside V
	if o.Outside != nil {
		v, ok := o.Outside.(V)
		if !ok {
			return nil, fmt.Errorf("%w: outside value %v has type %T, want %T", ErrOptionViolation, o.Outside, o.Outside, outside)
		}
		outside = v
	}

	n := w * h * d
	g := &Grid[V]{
		cells:      make(map[Coord]V, n),
		order:      make([]Coord, 0, n),
		background: fill,
		outside:    outside,
		bounded:    true,
		strict:     o.Strict,
		extent:     Bounds{Max: Coord{X: w - 1, Y: h - 1, Z: d - 1}},
	}
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := Coord{X: x, Y: y, Z: z}
				g.cells[c] = fill
				g.order = append(g.order, c)
			}
		}
	}

	return g, nil
}

// NewUnbounded builds an empty grid where every unset coordinate reads as def.
func NewUnbounded[V comparable](def V) *Grid[V] {
	return &Grid[V]{
		cells:      make(map[Coord]V),
		background: def,
		outside:    def,
	}
}

// Bounded reports whether the grid has fixed extents.
func (g *Grid[V]) Bounded() bool { return g.bounded }

// Strict reports whether out-of-range reads fail instead of returning the outside value.
func (g *Grid[V]) Strict() bool { return g.strict }

// Default returns the value of an untouched in-range cell: the fill value of
// a bounded grid, the default value of an unbounded one.
func (g *Grid[V]) Default() V { return g.background }

// Outside returns the sentinel that non-strict out-of-range reads produce.
func (g *Grid[V]) Outside() V { return g.outside }

// InBounds reports whether c can be stored in g. Always true when unbounded.
func (g *Grid[V]) InBounds(c Coord) bool {
	return !g.bounded || g.extent.Contains(c)
}

// Get returns the value at c.
// Unbounded grids never fail. Bounded grids return ErrOutOfBounds for
// out-of-range reads in strict mode and the outside value otherwise.
func (g *Grid[V]) Get(c Coord) (V, error) {
	if v, ok := g.cells[c]; ok {
		return v, nil
	}
	if !g.bounded {
		return g.background, nil
	}
	if g.strict {
		var zero V
		return zero, fmt.Errorf("%w: %v outside %v..%v", ErrOutOfBounds, c, g.extent.Min, g.extent.Max)
	}

	return g.outside, nil
}

// At is Get without the error: out-of-range reads yield the outside value
// even on strict grids.
func (g *Grid[V]) At(c Coord) V {
	if v, ok := g.cells[c]; ok {
		return v
	}
	if g.bounded {
		return g.outside
	}

	return g.background
}

// Has reports whether c was explicitly stored (always true in range of a bounded grid).
func (g *Grid[V]) Has(c Coord) bool {
	_, ok := g.cells[c]
	return ok
}

// Set stores v at c. Bounded grids never grow: writes outside the extents
// return ErrOutOfBounds regardless of strictness and change nothing.
func (g *Grid[V]) Set(c Coord, v V) error {
	if g.bounded && !g.extent.Contains(c) {
		return fmt.Errorf("%w: %v outside %v..%v", ErrOutOfBounds, c, g.extent.Min, g.extent.Max)
	}
	if _, ok := g.cells[c]; !ok {
		g.order = append(g.order, c)
		if g.hasCache {
			g.cached = g.cached.extend(c)
		}
	}
	g.cells[c] = v

	return nil
}

// Len returns the number of stored coordinates.
func (g *Grid[V]) Len() int { return len(g.cells) }

// Keys returns the stored coordinates in insertion order.
// The returned slice is a copy.
func (g *Grid[V]) Keys() []Coord {
	out := make([]Coord, len(g.order))
	copy(out, g.order)

	return out
}

// Items calls fn for every stored cell in insertion order until fn returns false.
func (g *Grid[V]) Items(fn func(c Coord, v V) bool) {
	for _, c := range g.order {
		if !fn(c, g.cells[c]) {
			return
		}
	}
}

// Count returns how many stored cells hold v.
func (g *Grid[V]) Count(v V) int {
	n := 0
	for _, x := range g.cells {
		if x == v {
			n++
		}
	}

	return n
}

// Bounds returns the fixed extents of a bounded grid, or the min/max of all
// stored coordinates of an unbounded one (zero Bounds when empty). The latter
// says nothing about which part of the plane is reachable.
func (g *Grid[V]) Bounds() Bounds {
	if g.bounded {
		return g.extent
	}
	if len(g.order) == 0 {
		return Bounds{}
	}
	if !g.hasCache {
		b := Bounds{Min: g.order[0], Max: g.order[0]}
		for _, c := range g.order[1:] {
			b = b.extend(c)
		}
		g.cached, g.hasCache = b, true
	}

	return g.cached
}

// Clone returns a deep copy of g.
func (g *Grid[V]) Clone() *Grid[V] {
	out := *g
	out.cells = maps.Clone(g.cells)
	out.order = make([]Coord, len(g.order))
	copy(out.order, g.order)

	return &out
}

// EmptyLike returns a grid with g's configuration and no written cells.
// A bounded result is pre-filled with the fill value, as NewBounded does.
func (g *Grid[V]) EmptyLike() *Grid[V] {
	if !g.bounded {
		return NewUnbounded(g.background)
	}
	out := &Grid[V]{
		cells:      make(map[Coord]V, len(g.cells)),
		order:      make([]Coord, 0, len(g.order)),
		background: g.background,
		outside:    g.outside,
		bounded:    true,
		strict:     g.strict,
		extent:     g.extent,
	}
	for _, c := range g.order {
		out.cells[c] = g.background
		out.order = append(out.order, c)
	}

	return out
}

// Equal reports whether g and o describe the same logical state: same kind,
// same extents, and the same value at every coordinate either of them stores.
// Insertion order is irrelevant.
func (g *Grid[V]) Equal(o *Grid[V]) bool {
	if g == o {
		return true
	}
	if o == nil || g.bounded != o.bounded || g.extent != o.extent || g.background != o.background {
		return false
	}
	for c, v := range g.cells {
		if o.At(c) != v {
			return false
		}
	}
	for c, v := range o.cells {
		if _, ok := g.cells[c]; !ok && g.At(c) != v {
			return false
		}
	}

	return true
}

// Snapshot is an order-independent fingerprint of a grid's cell values.
// Equal grids always have equal snapshots.
type Snapshot struct {
	sum deephash.Sum
}

// Snapshot hashes g's logical state. Cells of an unbounded grid that hold
// the default value are left out, so they hash like never-written cells.
func (g *Grid[V]) Snapshot() Snapshot {
	state := snapshotState[V]{Bounded: g.bounded, Extent: g.extent, Background: g.background}
	if g.bounded {
		state.Cells = g.cells
	} else {
		state.Cells = make(map[Coord]V, len(g.cells))
		for c, v := range g.cells {
			if v != g.background {
				state.Cells[c] = v
			}
		}
	}

	return Snapshot{sum: deephash.Hash(&state)}
}

type snapshotState[V comparable] struct {
	Bounded    bool
	Extent     Bounds
	Background V
	Cells      map[Coord]V
}
