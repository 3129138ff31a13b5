package simulate

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/neighbors"
)

// Sentinel errors for simulation runs.
var (
	// ErrNilGrid is returned when a nil grid pointer is passed.
	ErrNilGrid = errors.New("simulate: grid is nil")

	// ErrNilRule is returned when New is given no transition rule.
	ErrNilRule = errors.New("simulate: rule is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("simulate: invalid option supplied")

	// ErrNegativeTicks is returned for a negative tick count or target.
	ErrNegativeTicks = errors.New("simulate: tick count must be non-negative")

	// ErrCycleInvariant signals an inconsistent cycle record (length ≤ 0).
	// It indicates a bug in snapshot bookkeeping and is never recoverable.
	ErrCycleInvariant = errors.New("simulate: cycle detection invariant violated")
)

// Rule computes the next value of the cell at c from its current value and
// its neighbors, all taken from the previous tick. It must be pure and
// defined for every cell of the domain.
type Rule[V comparable] func(c grid.Coord, cur V, nbrs []neighbors.Cell[V]) V

// Outcome is the terminal state of a run.
type Outcome int

const (
	// Running is the zero Outcome; no finished run reports it.
	Running Outcome = iota
	// Stabilized means one more tick would not change the grid.
	Stabilized
	// CycleDetected means a previously seen state recurred and the run
	// jumped ahead along the cycle.
	CycleDetected
	// IterationLimitReached means the requested tick count (or the
	// configured cap) was reached.
	IterationLimitReached
)

// String returns the outcome name used in logs.
func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Stabilized:
		return "stabilized"
	case CycleDetected:
		return "cycle_detected"
	case IterationLimitReached:
		return "iteration_limit_reached"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result describes a finished run.
//
//   - Grid:        state at Tick; never the grid passed in by the caller.
//   - Tick:        logical tick of Grid (the target tick after a cycle jump).
//   - Steps:       real transitions computed.
//   - CycleStart:  first tick of the detected cycle (CycleDetected only).
//   - CycleLength: period of the detected cycle (CycleDetected only).
type Result[V comparable] struct {
	Grid        *grid.Grid[V]
	Tick        int
	Steps       int
	Outcome     Outcome
	CycleStart  int
	CycleLength int
}

// Option configures a Simulator via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds Simulator settings.
type Options struct {
	// Ctx allows cancellation; checked once per tick.
	Ctx context.Context

	// MaxTicks caps RunUntilStable and RunWithCycleDetection. Zero means no
	// cap: termination is then the rule's responsibility.
	MaxTicks int

	// Logger receives one Debug entry per finished run.
	Logger logrus.FieldLogger

	err error
}

// DefaultOptions returns background context, no tick cap and a discarding logger.
func DefaultOptions() Options {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	return Options{
		Ctx:    context.Background(),
		Logger: silent,
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

// WithMaxTicks caps long runs.
//
//	n > 0: stop after n ticks with IterationLimitReached
//	n == 0: explicit no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxTicks(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxTicks cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxTicks = n
	}
}

// WithLogger routes run diagnostics to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
