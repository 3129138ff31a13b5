// Package gridsearch defines options, results and sentinel errors for
// breadth-first and weighted search over a grid.Grid.
package gridsearch

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/neighbors"
)

// Sentinel errors for grid search.
var (
	// ErrNilGrid is returned when a nil grid pointer is passed.
	ErrNilGrid = errors.New("gridsearch: grid is nil")

	// ErrNilPassable is returned when no passability predicate is supplied.
	ErrNilPassable = errors.New("gridsearch: passable predicate is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("gridsearch: invalid option supplied")

	// ErrNotReachable is returned by Path, which has no numeric result to
	// carry the NotReachable signal.
	ErrNotReachable = errors.New("gridsearch: goal not reachable")

	// ErrNegativeCost is returned when a weighted edge has a negative cost.
	ErrNegativeCost = errors.New("gridsearch: negative edge cost encountered")
)

// Passable reports whether the cell at c may be entered.
type Passable[V comparable] func(c grid.Coord, g *grid.Grid[V]) bool

// Not returns a Passable accepting every cell whose value differs from all of blocked.
func Not[V comparable](blocked ...V) Passable[V] {
	return func(c grid.Coord, g *grid.Grid[V]) bool {
		v := g.At(c)
		for _, b := range blocked {
			if v == b {
				return false
			}
		}
		return true
	}
}

// Is returns a Passable accepting only cells holding one of open.
func Is[V comparable](open ...V) Passable[V] {
	return func(c grid.Coord, g *grid.Grid[V]) bool {
		v := g.At(c)
		for _, o := range open {
			if v == o {
				return true
			}
		}
		return false
	}
}

// Option configures a search via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks of a search.
type Options struct {
	// Ctx allows cancellation; checked once per dequeued cell.
	Ctx context.Context

	// Conn selects the step directions. Defaults to Conn4.
	Conn neighbors.Connectivity

	// Obstacles are blocked for this call only (other moving entities).
	// Goals and targets are exempt.
	Obstacles map[grid.Coord]struct{}

	// MaxDepth, if > 0, stops exploring beyond this many steps.
	MaxDepth int

	// OnVisit is called when a cell is dequeued. Returning an error aborts
	// the search and propagates it.
	OnVisit func(c grid.Coord, depth int) error

	// Logger receives a Debug entry per finished search.
	Logger logrus.FieldLogger

	err error
}

// DefaultOptions returns background context, Conn4, no obstacles, no depth
// limit, a no-op visit hook and a discarding logger.
func DefaultOptions() Options {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	return Options{
		Ctx:     context.Background(),
		Conn:    neighbors.Conn4,
		OnVisit: func(grid.Coord, int) error { return nil },
		Logger:  silent,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithConnectivity selects the step directions.
func WithConnectivity(conn neighbors.Connectivity) Option {
	return func(o *Options) {
		if conn < neighbors.Conn4 || conn > neighbors.Conn26 {
			o.err = fmt.Errorf("%w: unknown connectivity %d", ErrOptionViolation, conn)
			return
		}
		o.Conn = conn
	}
}

// WithObstacles blocks the given coordinates for this call only.
// Repeated use accumulates.
func WithObstacles(cs ...grid.Coord) Option {
	return func(o *Options) {
		if o.Obstacles == nil {
			o.Obstacles = make(map[grid.Coord]struct{}, len(cs))
		}
		for _, c := range cs {
			o.Obstacles[c] = struct{}{}
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a callback run on every dequeued cell.
func WithOnVisit(fn func(c grid.Coord, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithLogger routes search diagnostics to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Result is the outcome of ShortestPath. A zero Result is NotReachable.
type Result struct {
	Steps     int
	Reachable bool
}

// NotReachable is the distinguished "no path" result. Callers must test
// Reachable before using Steps.
var NotReachable = Result{}

// Nearest is the outcome of a multi-target search: every target at the
// minimal distance, in discovery order. No candidates means none reachable.
type Nearest struct {
	Distance   int
	Candidates []grid.Coord
}

// Reachable reports whether any target was found.
func (n Nearest) Reachable() bool { return len(n.Candidates) > 0 }

// Best returns the first candidate under the caller's total order less
// (for example grid.ReadingLess).
func (n Nearest) Best(less func(a, b grid.Coord) bool) (grid.Coord, bool) {
	if len(n.Candidates) == 0 {
		return grid.Coord{}, false
	}
	best := n.Candidates[0]
	for _, c := range n.Candidates[1:] {
		if less(c, best) {
			best = c
		}
	}

	return best, true
}

// Steps is the outcome of NextSteps: every neighbor of the start that begins
// a shortest path to the goal, in connectivity order, plus the total length.
type Steps struct {
	Distance int
	Moves    []grid.Coord
}
