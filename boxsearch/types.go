package boxsearch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridkit/grid"
)

// Sentinel errors for box search.
var (
	// ErrNoBots is returned when Search or Strongest receive no bots.
	ErrNoBots = errors.New("boxsearch: no bots")

	// ErrNegativeRadius is returned for a bot with R < 0.
	ErrNegativeRadius = errors.New("boxsearch: negative radius")

	// ErrExhausted means the queue emptied before a single point was popped.
	// The upper bound is then not admissible: a logic error, never a valid
	// "no answer" result.
	ErrExhausted = errors.New("boxsearch: queue exhausted without a point")

	// ErrTimeLimit is returned when the WithTimeLimit budget runs out.
	ErrTimeLimit = errors.New("boxsearch: time limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("boxsearch: invalid option supplied")

	// ErrBadBot is returned by ParseBot for malformed lines.
	ErrBadBot = errors.New("boxsearch: malformed bot")
)

// Bot is a ranged object: it covers every point within L1 distance R of Pos.
type Bot struct {
	Pos grid.Coord
	R   int
}

// InRange reports whether p lies within b's range.
func (b Bot) InRange(p grid.Coord) bool { return b.Pos.Manhattan(p) <= b.R }

// String renders b in the "pos=<x,y,z>, r=n" form ParseBot accepts.
func (b Bot) String() string {
	return fmt.Sprintf("pos=<%d,%d,%d>, r=%d", b.Pos.X, b.Pos.Y, b.Pos.Z, b.R)
}

// Result is the optimum found by Search.
//
//   - Point:    the best integer point.
//   - Count:    exact number of bots covering Point.
//   - Distance: L1 distance from Point to the origin.
//   - Expanded: boxes popped from the queue.
type Result struct {
	Point    grid.Coord
	Count    int
	Distance int
	Expanded int
}

// Option configures Search via functional arguments.
type Option func(*Options)

// Options holds search settings.
type Options struct {
	// Ctx allows cancellation; checked every 1024 pops.
	Ctx context.Context

	// TimeLimit is a soft budget; 0 means none.
	TimeLimit time.Duration

	// Logger receives a Debug summary of each search.
	Logger logrus.FieldLogger

	err error
}

// DefaultOptions returns background context, no time limit and a discarding logger.
func DefaultOptions() Options {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	return Options{Ctx: context.Background(), Logger: silent}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTimeLimit bounds the search wall time (d > 0); negative d is invalid.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: TimeLimit cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.TimeLimit = d
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
