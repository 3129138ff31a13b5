package simulate

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/neighbors"
)

// Simulator applies one transition rule to every cell of a grid, tick after
// tick. It keeps no reference to the grids it processes between calls.
type Simulator[V comparable] struct {
	rule   Rule[V]
	policy neighbors.Policy[V]
	opts   Options
}

// New builds a Simulator for rule, gathering neighbors under policy.
// Returns ErrNilRule or ErrOptionViolation for invalid input.
func New[V comparable](rule Rule[V], policy neighbors.Policy[V], opts ...Option) (*Simulator[V], error) {
	if rule == nil {
		return nil, ErrNilRule
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Simulator[V]{rule: rule, policy: policy, opts: o}, nil
}

// domain lists the cells a tick must evaluate: every cell of a bounded grid;
// for an unbounded grid, every stored cell plus its adjacent ring, so rules
// under which an all-default neighborhood stays default are simulated exactly.
func (s *Simulator[V]) domain(g *grid.Grid[V]) []grid.Coord {
	keys := g.Keys()
	if g.Bounded() {
		return keys
	}
	seen := make(map[grid.Coord]struct{}, len(keys)*3)
	out := make([]grid.Coord, 0, len(keys)*3)
	for _, c := range keys {
		seen[c] = struct{}{}
		out = append(out, c)
	}
	for _, c := range keys {
		for _, d := range neighbors.Offsets(s.policy.Conn) {
			n := c.Add(d)
			if _, ok := seen[n]; !ok {
				seen[n] = struct{}{}
				out = append(out, n)
			}
		}
	}

	return out
}

// Step computes the next tick into a fresh grid. Every rule input is read
// from g, which is left untouched. Unbounded results only store cells that
// differ from the default value.
func (s *Simulator[V]) Step(g *grid.Grid[V]) (*grid.Grid[V], error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	next := g.EmptyLike()
	var (
		buf []neighbors.Cell[V]
		err error
	)
	for _, c := range s.domain(g) {
		buf, err = neighbors.AppendNeighbors(buf[:0], c, g, s.policy)
		if err != nil {
			return nil, err
		}
		v := s.rule(c, g.At(c), buf)
		if !g.Bounded() && v == g.Default() {
			continue
		}
		if err = next.Set(c, v); err != nil {
			return nil, err
		}
	}

	return next, nil
}

// Run advances g exactly n ticks.
func (s *Simulator[V]) Run(g *grid.Grid[V], n int) (Result[V], error) {
	if g == nil {
		return Result[V]{}, ErrNilGrid
	}
	if n < 0 {
		return Result[V]{}, ErrNegativeTicks
	}
	cur := g
	for tick := 0; tick < n; tick++ {
		if err := s.opts.Ctx.Err(); err != nil {
			return Result[V]{}, err
		}
		next, err := s.Step(cur)
		if err != nil {
			return Result[V]{}, err
		}
		cur = next
	}
	res := Result[V]{Grid: detach(g, cur), Tick: n, Steps: n, Outcome: IterationLimitReached}
	s.report("run", res)

	return res, nil
}

// RunUntilStable steps until a tick leaves the grid unchanged and returns
// that fixed point with Outcome Stabilized. Tick is the first tick at which
// the fixed point held; Steps counts the confirming transition too.
//
// There is no built-in cap: a rule that never settles runs forever unless
// WithMaxTicks or WithContext bounds it (Outcome IterationLimitReached).
func (s *Simulator[V]) RunUntilStable(g *grid.Grid[V]) (Result[V], error) {
	if g == nil {
		return Result[V]{}, ErrNilGrid
	}
	cur := g
	for tick := 0; ; tick++ {
		if s.opts.MaxTicks > 0 && tick >= s.opts.MaxTicks {
			res := Result[V]{Grid: detach(g, cur), Tick: tick, Steps: tick, Outcome: IterationLimitReached}
			s.report("run_until_stable", res)
			return res, nil
		}
		if err := s.opts.Ctx.Err(); err != nil {
			return Result[V]{}, err
		}
		next, err := s.Step(cur)
		if err != nil {
			return Result[V]{}, err
		}
		if next.Equal(cur) {
			res := Result[V]{Grid: next, Tick: tick, Steps: tick + 1, Outcome: Stabilized}
			s.report("run_until_stable", res)
			return res, nil
		}
		cur = next
	}
}

// RunWithCycleDetection returns the state at tick target.
//
// After every tick the grid snapshot is looked up in a first-seen table.
// When the state at tick T repeats the state first seen at T0, the period is
// T−T0 and the answer is the state at T0 + (target−T0) mod (T−T0), which was
// already computed. Targets reached before any repetition are returned
// directly with Outcome IterationLimitReached, as is the state at the
// WithMaxTicks cap.
//
// Snapshot hits are confirmed with a full Equal, so a hash collision can
// only delay detection, never corrupt the answer.
func (s *Simulator[V]) RunWithCycleDetection(g *grid.Grid[V], target int) (Result[V], error) {
	if g == nil {
		return Result[V]{}, ErrNilGrid
	}
	if target < 0 {
		return Result[V]{}, ErrNegativeTicks
	}

	cur := g
	history := []*grid.Grid[V]{g} // history[t] is the state at tick t
	seen := map[grid.Snapshot]int{g.Snapshot(): 0}
	for tick := 0; tick < target; {
		if s.opts.MaxTicks > 0 && tick >= s.opts.MaxTicks {
			res := Result[V]{Grid: detach(g, cur), Tick: tick, Steps: tick, Outcome: IterationLimitReached}
			s.report("run_with_cycle_detection", res)
			return res, nil
		}
		if err := s.opts.Ctx.Err(); err != nil {
			return Result[V]{}, err
		}
		next, err := s.Step(cur)
		if err != nil {
			return Result[V]{}, err
		}
		cur = next
		tick++
		if tick == target {
			break
		}

		snap := cur.Snapshot()
		t0, ok := seen[snap]
		if ok && history[t0].Equal(cur) {
			cycle := tick - t0
			if cycle <= 0 {
				return Result[V]{}, ErrCycleInvariant
			}
			at := t0 + (target-t0)%cycle
			res := Result[V]{
				Grid:        detach(g, history[at]),
				Tick:        target,
				Steps:       tick,
				Outcome:     CycleDetected,
				CycleStart:  t0,
				CycleLength: cycle,
			}
			s.report("run_with_cycle_detection", res)
			return res, nil
		}
		if !ok {
			seen[snap] = tick
		}
		history = append(history, cur)
	}

	res := Result[V]{Grid: detach(g, cur), Tick: target, Steps: target, Outcome: IterationLimitReached}
	s.report("run_with_cycle_detection", res)

	return res, nil
}

// detach returns out, or a copy of it when it is the caller's input grid,
// so a Result never aliases the grid it was computed from.
func detach[V comparable](in, out *grid.Grid[V]) *grid.Grid[V] {
	if out == in {
		return in.Clone()
	}

	return out
}

func (s *Simulator[V]) report(op string, res Result[V]) {
	entry := s.opts.Logger.WithFields(logrus.Fields{
		"component": "simulate",
		"op":        op,
		"outcome":   res.Outcome.String(),
		"tick":      res.Tick,
		"steps":     res.Steps,
	})
	if res.Outcome == CycleDetected {
		entry = entry.WithFields(logrus.Fields{
			"cycle_start":  res.CycleStart,
			"cycle_length": res.CycleLength,
		})
	}
	entry.Debug("simulation finished")
}
