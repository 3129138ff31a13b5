package grid

import "fmt"

// Coord identifies a cell in 2D or 3D integer space.
// It is a plain value: equality and hashing are component-wise.
type Coord struct {
	X, Y, Z int
}

// XY returns the 2D coordinate (x, y, 0).
func XY(x, y int) Coord { return Coord{X: x, Y: y} }

// XYZ returns the 3D coordinate (x, y, z).
func XYZ(x, y, z int) Coord { return Coord{X: x, Y: y, Z: z} }

// Add returns c+d component-wise.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y, Z: c.Z + d.Z}
}

// Sub returns c-d component-wise.
func (c Coord) Sub(d Coord) Coord {
	return Coord{X: c.X - d.X, Y: c.Y - d.Y, Z: c.Z - d.Z}
}

// Scale returns c multiplied by k on every axis.
func (c Coord) Scale(k int) Coord {
	return Coord{X: c.X * k, Y: c.Y * k, Z: c.Z * k}
}

// Manhattan returns the L1 distance between c and o.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y) + abs(c.Z-o.Z)
}

// ReadingLess orders coordinates layer by layer, then top-to-bottom,
// then left-to-right (z, y, x). It is the usual tie-break for
// "first in reading order" puzzle rules.
func ReadingLess(a, b Coord) bool {
	if a.Z != b.Z {
		return a.Z < b.Z
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}

	return a.X < b.X
}

// String renders 2D coordinates as "(x,y)" and 3D ones as "(x,y,z)".
func (c Coord) String() string {
	if c.Z == 0 {
		return fmt.Sprintf("(%d,%d)", c.X, c.Y)
	}

	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
