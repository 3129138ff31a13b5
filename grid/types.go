package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrOutOfBounds indicates access outside a bounded grid's extents.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrEmptyGrid indicates zero-sized extents or empty text input.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates text rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOptionViolation indicates an Option could not be applied.
	ErrOptionViolation = errors.New("grid: invalid option supplied")
)

// Option configures a bounded grid at construction time.
// Invalid options are recorded and surfaced as ErrOptionViolation
// by the constructor.
type Option func(*Options)

// Options holds the construction parameters of a bounded grid.
type Options struct {
	// Strict makes out-of-range reads fail with ErrOutOfBounds instead of
	// returning the outside value.
	Strict bool

	// Outside is the value returned by out-of-range reads in non-strict mode.
	// Nil means the zero value of the cell type.
	Outside any

	err error
}

// DefaultOptions returns non-strict options with a zero outside value.
func DefaultOptions() Options {
	return Options{}
}

// WithStrict makes out-of-range reads return ErrOutOfBounds.
func WithStrict() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// WithOutside sets the sentinel returned by out-of-range reads.
// The value must have the grid's cell type.
func WithOutside(v any) Option {
	return func(o *Options) {
		if v == nil {
			o.err = fmt.Errorf("%w: outside value cannot be nil", ErrOptionViolation)
			return
		}
		o.Outside = v
	}
}

// Bounds is an inclusive axis-aligned box of coordinates.
type Bounds struct {
	Min, Max Coord
}

// Contains reports whether c lies inside b (inclusive on both ends).
func (b Bounds) Contains(c Coord) bool {
	return c.X >= b.Min.X && c.X <= b.Max.X &&
		c.Y >= b.Min.Y && c.Y <= b.Max.Y &&
		c.Z >= b.Min.Z && c.Z <= b.Max.Z
}

// Width is the number of columns covered by b.
func (b Bounds) Width() int { return b.Max.X - b.Min.X + 1 }

// Height is the number of rows covered by b.
func (b Bounds) Height() int { return b.Max.Y - b.Min.Y + 1 }

// Depth is the number of layers covered by b.
func (b Bounds) Depth() int { return b.Max.Z - b.Min.Z + 1 }

// Size is the number of cells covered by b.
func (b Bounds) Size() int { return b.Width() * b.Height() * b.Depth() }

// extend grows b so that it covers c.
func (b Bounds) extend(c Coord) Bounds {
	b.Min.X, b.Max.X = min(b.Min.X, c.X), max(b.Max.X, c.X)
	b.Min.Y, b.Max.Y = min(b.Min.Y, c.Y), max(b.Max.Y, c.Y)
	b.Min.Z, b.Max.Z = min(b.Min.Z, c.Z), max(b.Max.Z, c.Z)

	return b
}
