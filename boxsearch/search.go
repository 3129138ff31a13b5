package boxsearch

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridkit/grid"
)

var origin grid.Coord

// entry is a queued box with its bound and tie-break keys.
type entry struct {
	box   Box
	bound int
	dist  int // L1 distance from the origin to the box
}

// boxPQ orders entries by bound desc, size desc, origin distance asc.
type boxPQ []entry

func (pq boxPQ) Len() int { return len(pq) }
func (pq boxPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.bound != b.bound {
		return a.bound > b.bound
	}
	if a.box.Size != b.box.Size {
		return a.box.Size > b.box.Size
	}
	if a.dist != b.dist {
		return a.dist < b.dist
	}

	return grid.ReadingLess(a.box.Min, b.box.Min)
}
func (pq boxPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *boxPQ) Push(x any) { *pq = append(*pq, x.(entry)) }
func (pq *boxPQ) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}

// engine holds the bots, the queue and the run budget.
type engine struct {
	bots []Bot
	pq   boxPQ
	opts Options

	useDeadline bool
	deadline    time.Time
	popped      int
}

func (e *engine) push(b Box) {
	bound := UpperBound(b, e.bots)
	if bound == 0 {
		return
	}
	heap.Push(&e.pq, entry{box: b, bound: bound, dist: b.Distance(origin)})
}

// interrupted performs a sparse context and deadline check.
func (e *engine) interrupted() error {
	if e.popped&1023 != 0 {
		return nil
	}
	if err := e.opts.Ctx.Err(); err != nil {
		return err
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		return ErrTimeLimit
	}

	return nil
}

// run pops boxes until the first point box: that point is optimal, since
// every queued box bounds its own points from above and, at equal bound,
// larger boxes are split before any point is taken.
func (e *engine) run(start Box) (Result, error) {
	e.push(start)
	for e.pq.Len() > 0 {
		if err := e.interrupted(); err != nil {
			return Result{}, err
		}
		top := heap.Pop(&e.pq).(entry)
		e.popped++
		if top.box.IsPoint() {
			return Result{
				Point:    top.box.Min,
				Count:    top.bound,
				Distance: top.dist,
				Expanded: e.popped,
			}, nil
		}
		for _, child := range top.box.Split() {
			e.push(child)
		}
	}

	return Result{}, fmt.Errorf("%w after %d boxes", ErrExhausted, e.popped)
}

// Search finds the integer point covered by the most bots, preferring the
// one closest to the origin among equals.
//
// Best-first branch-and-bound: a power-of-two cube enclosing every range is
// bisected into octants; boxes are expanded in order of (upper bound desc,
// size desc, origin distance asc) and octants no bot reaches are dropped.
//
// Returns ErrNoBots, ErrNegativeRadius, ErrOptionViolation for bad input,
// ctx errors or ErrTimeLimit when interrupted, ErrExhausted on a broken bound.
func Search(bots []Bot, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if len(bots) == 0 {
		return Result{}, ErrNoBots
	}
	for _, b := range bots {
		if b.R < 0 {
			return Result{}, fmt.Errorf("%w: %v", ErrNegativeRadius, b)
		}
	}

	e := engine{bots: bots, opts: o}
	if o.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(o.TimeLimit)
	}
	start := Enclosing(bots)
	res, err := e.run(start)

	log := o.Logger.WithFields(logrus.Fields{
		"component": "boxsearch",
		"bots":      len(bots),
		"box_size":  start.Size,
		"expanded":  e.popped,
	})
	if err != nil {
		log.WithError(err).Warn("box search failed")
		return Result{}, err
	}
	log.WithFields(logrus.Fields{
		"point":    res.Point.String(),
		"count":    res.Count,
		"distance": res.Distance,
	}).Debug("box search finished")

	return res, nil
}

// Strongest returns the bot with the largest radius (first on ties) and how
// many bots lie within its range, itself included.
func Strongest(bots []Bot) (Bot, int, error) {
	if len(bots) == 0 {
		return Bot{}, 0, ErrNoBots
	}
	best := bots[0]
	for _, b := range bots[1:] {
		if b.R > best.R {
			best = b
		}
	}
	n := 0
	for _, b := range bots {
		if best.InRange(b.Pos) {
			n++
		}
	}

	return best, n, nil
}
