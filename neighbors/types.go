package neighbors

import (
	"errors"

	"github.com/katalvlaran/gridkit/grid"
)

// Sentinel errors for neighbor enumeration.
var (
	// ErrUnboundedRay indicates a ray-mode query on an unbounded grid without MaxRay.
	ErrUnboundedRay = errors.New("neighbors: ray mode on an unbounded grid requires MaxRay > 0")
	// ErrConnectivity indicates an unknown Connectivity value.
	ErrConnectivity = errors.New("neighbors: unknown connectivity")
)

// Connectivity selects which relative offsets count as adjacent.
type Connectivity int

const (
	// Conn4 uses N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 adds the diagonals NE, SE, SW, NW after Conn4.
	Conn8
	// Conn6 adds Up (-Z) and Down (+Z) after Conn4.
	Conn6
	// Conn26 uses all 26 surrounding offsets in 3D.
	Conn26
)

// String returns the connectivity name used in logs and configs.
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	case Conn6:
		return "conn6"
	case Conn26:
		return "conn26"
	default:
		return "unknown"
	}
}

// ParseConnectivity maps "4", "8", "6", "26" or the String() names back to a Connectivity.
func ParseConnectivity(s string) (Connectivity, error) {
	switch s {
	case "4", "conn4":
		return Conn4, nil
	case "8", "conn8":
		return Conn8, nil
	case "6", "conn6":
		return Conn6, nil
	case "26", "conn26":
		return Conn26, nil
	default:
		return 0, ErrConnectivity
	}
}

// Cell pairs a neighbor coordinate with its current value.
type Cell[V comparable] struct {
	At    grid.Coord
	Value V
}

// Policy configures how neighbors are found.
type Policy[V comparable] struct {
	// Conn selects the direction set.
	Conn Connectivity

	// Ray walks each direction past Transparent cells instead of stopping
	// at the adjacent one.
	Ray bool

	// Transparent reports the cells a ray passes through. Nil makes every
	// cell opaque.
	Transparent func(V) bool

	// MaxRay caps the steps per ray. Zero means until the boundary, which
	// is only valid on bounded grids.
	MaxRay int
}

// Adjacent returns a Policy yielding the immediate neighbors under conn.
func Adjacent[V comparable](conn Connectivity) Policy[V] {
	return Policy[V]{Conn: conn}
}

// Visible returns a ray-mode Policy: in each direction of conn, skip cells for
// which transparent is true and yield the first other cell. maxRay caps the
// number of steps (0 = until the boundary of a bounded grid).
func Visible[V comparable](conn Connectivity, transparent func(V) bool, maxRay int) Policy[V] {
	return Policy[V]{Conn: conn, Ray: true, Transparent: transparent, MaxRay: maxRay}
}

var (
	offsets4 = []grid.Coord{{Y: -1}, {X: 1}, {Y: 1}, {X: -1}}
	offsets8 = []grid.Coord{
		{Y: -1}, {X: 1}, {Y: 1}, {X: -1},
		{X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1},
	}
	offsets6  = []grid.Coord{{Y: -1}, {X: 1}, {Y: 1}, {X: -1}, {Z: -1}, {Z: 1}}
	offsets26 = cube()
)

func cube() []grid.Coord {
	out := make([]grid.Coord, 0, 26)
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				out = append(out, grid.Coord{X: dx, Y: dy, Z: dz})
			}
		}
	}

	return out
}

// Offsets returns the direction vectors of conn in their fixed order.
// The returned slice must not be modified.
func Offsets(conn Connectivity) []grid.Coord {
	switch conn {
	case Conn8:
		return offsets8
	case Conn6:
		return offsets6
	case Conn26:
		return offsets26
	default:
		return offsets4
	}
}
