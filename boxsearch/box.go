package boxsearch

import (
	"github.com/katalvlaran/gridkit/grid"
)

// Box is an axis-aligned cube of integer points with inclusive bounds
// [Min, Min+Size-1] on every axis. Size is a power of two, so halving never
// leaves a remainder.
type Box struct {
	Min  grid.Coord
	Size int
}

// Max returns the inclusive far corner.
func (b Box) Max() grid.Coord {
	return b.Min.Add(grid.XYZ(b.Size-1, b.Size-1, b.Size-1))
}

// IsPoint reports whether b holds exactly one point.
func (b Box) IsPoint() bool { return b.Size == 1 }

// Contains reports whether p lies inside b.
func (b Box) Contains(p grid.Coord) bool {
	hi := b.Max()
	return p.X >= b.Min.X && p.X <= hi.X &&
		p.Y >= b.Min.Y && p.Y <= hi.Y &&
		p.Z >= b.Min.Z && p.Z <= hi.Z
}

// Corners returns the 8 corner points (fewer distinct ones for a point box).
func (b Box) Corners() [8]grid.Coord {
	hi := b.Max()
	var out [8]grid.Coord
	for i := range out {
		c := b.Min
		if i&1 != 0 {
			c.X = hi.X
		}
		if i&2 != 0 {
			c.Y = hi.Y
		}
		if i&4 != 0 {
			c.Z = hi.Z
		}
		out[i] = c
	}

	return out
}

// Split bisects every axis into 8 children of half the size.
// A point box cannot be split and yields nil.
func (b Box) Split() []Box {
	if b.IsPoint() {
		return nil
	}
	h := b.Size / 2
	out := make([]Box, 0, 8)
	for i := 0; i < 8; i++ {
		off := grid.XYZ((i&1)*h, (i>>1&1)*h, (i>>2&1)*h)
		out = append(out, Box{Min: b.Min.Add(off), Size: h})
	}

	return out
}

// Distance returns the L1 distance from p to the nearest point of b
// (0 when p is inside).
func (b Box) Distance(p grid.Coord) int {
	hi := b.Max()

	return gap(p.X, b.Min.X, hi.X) + gap(p.Y, b.Min.Y, hi.Y) + gap(p.Z, b.Min.Z, hi.Z)
}

func gap(v, lo, hi int) int {
	switch {
	case v < lo:
		return lo - v
	case v > hi:
		return v - hi
	default:
		return 0
	}
}

// Enclosing returns the smallest power-of-two cube, anchored at the minimum
// reach of the bots, that holds every bot's full range.
func Enclosing(bots []Bot) Box {
	if len(bots) == 0 {
		return Box{Size: 1}
	}
	lo := bots[0].Pos.Sub(grid.XYZ(bots[0].R, bots[0].R, bots[0].R))
	hi := bots[0].Pos.Add(grid.XYZ(bots[0].R, bots[0].R, bots[0].R))
	for _, b := range bots[1:] {
		r := grid.XYZ(b.R, b.R, b.R)
		lo = minCoord(lo, b.Pos.Sub(r))
		hi = maxCoord(hi, b.Pos.Add(r))
	}
	span := max(hi.X-lo.X, hi.Y-lo.Y, hi.Z-lo.Z) + 1
	size := 1
	for size < span {
		size <<= 1
	}

	return Box{Min: lo, Size: size}
}

func minCoord(a, b grid.Coord) grid.Coord {
	return grid.XYZ(min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z))
}

func maxCoord(a, b grid.Coord) grid.Coord {
	return grid.XYZ(max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z))
}

// extremities returns the 6 axis-aligned points at the edge of b's range.
func (b Bot) extremities() [6]grid.Coord {
	return [6]grid.Coord{
		b.Pos.Add(grid.XYZ(b.R, 0, 0)), b.Pos.Add(grid.XYZ(-b.R, 0, 0)),
		b.Pos.Add(grid.XYZ(0, b.R, 0)), b.Pos.Add(grid.XYZ(0, -b.R, 0)),
		b.Pos.Add(grid.XYZ(0, 0, b.R)), b.Pos.Add(grid.XYZ(0, 0, -b.R)),
	}
}

// touches reports whether bot's range reaches a point of box. The corner and
// extremity clauses are the classic octahedron-versus-box test; the box
// distance clause alone is exact and also covers a range that crosses a face
// without reaching a corner or putting an extremity inside, so the result
// always equals box.Distance(bot.Pos) <= bot.R.
func touches(box Box, bot Bot) bool {
	for _, c := range box.Corners() {
		if bot.InRange(c) {
			return true
		}
	}
	for _, e := range bot.extremities() {
		if box.Contains(e) {
			return true
		}
	}

	return box.Distance(bot.Pos) <= bot.R
}

// UpperBound counts the bots whose range reaches box. No point of box is
// covered by more bots, and for a point box the count is exact.
func UpperBound(box Box, bots []Bot) int {
	n := 0
	for _, b := range bots {
		if touches(box, b) {
			n++
		}
	}

	return n
}

// CountAt returns the exact number of bots covering p.
func CountAt(p grid.Coord, bots []Bot) int {
	n := 0
	for _, b := range bots {
		if b.InRange(p) {
			n++
		}
	}

	return n
}
