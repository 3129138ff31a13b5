package gridsearch

import (
	"container/heap"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// Cost is the numeric type of weighted edge costs.
type Cost interface {
	constraints.Integer | constraints.Float
}

// Edge is one weighted transition out of a search state.
type Edge[S comparable, C Cost] struct {
	To   S
	Cost C
}

// WeightedResult holds the outcome of Dijkstra.
//
//   - Dist: finalized minimum cost of every settled state.
//   - Prev: predecessor of each settled non-source state on its cheapest path.
//   - Goal: the first settled state accepted by isGoal (valid when Found).
type WeightedResult[S comparable, C Cost] struct {
	Dist  map[S]C
	Prev  map[S]S
	Goal  S
	Found bool
}

// PathTo reconstructs the cheapest path from a source to dest.
// Returns ErrNotReachable if dest was never settled.
func (r *WeightedResult[S, C]) PathTo(dest S) ([]S, error) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotReachable, dest)
	}
	path := []S{dest}
	for cur := dest; ; {
		prev, ok := r.Prev[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Dijkstra expands states in order of accumulated cost from sources, using
// next to enumerate weighted transitions. It stops at the first settled state
// accepted by isGoal, or explores everything reachable when isGoal is nil.
//
// States are generic so that searches over (coordinate, equipment) pairs and
// similar product spaces need no adapter. Decrease-key is lazy: improved
// entries are pushed again and stale ones are discarded when popped.
//
// Honors WithContext and WithLogger; other options are ignored.
// Returns ErrNegativeCost on the first negative edge.
//
// Complexity: O((V + E) log E) time, O(V + E) memory.
func Dijkstra[S comparable, C Cost](sources []S, next func(S) []Edge[S, C], isGoal func(S) bool, opts ...Option) (*WeightedResult[S, C], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	r := &runner[S, C]{
		next:    next,
		isGoal:  isGoal,
		opts:    o,
		res:     &WeightedResult[S, C]{Dist: make(map[S]C), Prev: make(map[S]S)},
		best:    make(map[S]C),
		settled: make(map[S]bool),
	}
	r.init(sources)
	if err = r.process(); err != nil {
		return nil, err
	}
	o.Logger.WithFields(logrus.Fields{
		"component": "gridsearch",
		"op":        "dijkstra",
		"settled":   len(r.res.Dist),
		"found":     r.res.Found,
	}).Debug("search finished")

	return r.res, nil
}

// runner holds the mutable state of one Dijkstra execution.
type runner[S comparable, C Cost] struct {
	next    func(S) []Edge[S, C]
	isGoal  func(S) bool
	opts    Options
	res     *WeightedResult[S, C]
	best    map[S]C    // best known tentative cost
	settled map[S]bool // finalized states
	pq      statePQ[S, C]
	seq     int // insertion counter; equal costs pop FIFO
}

func (r *runner[S, C]) init(sources []S) {
	heap.Init(&r.pq)
	for _, s := range sources {
		if _, dup := r.best[s]; dup {
			continue
		}
		r.best[s] = 0
		r.push(s, 0)
	}
}

func (r *runner[S, C]) push(s S, c C) {
	heap.Push(&r.pq, &stateItem[S, C]{state: s, cost: c, seq: r.seq})
	r.seq++
}

func (r *runner[S, C]) process() error {
	for r.pq.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*stateItem[S, C])
		u := item.state
		if r.settled[u] {
			continue // stale entry
		}
		r.settled[u] = true
		r.res.Dist[u] = item.cost
		if r.isGoal != nil && r.isGoal(u) {
			r.res.Goal, r.res.Found = u, true
			return nil
		}
		if err := r.relax(u, item.cost); err != nil {
			return err
		}
	}

	return nil
}

func (r *runner[S, C]) relax(u S, du C) error {
	for _, e := range r.next(u) {
		if e.Cost < 0 {
			return fmt.Errorf("%w: %v→%v cost=%v", ErrNegativeCost, u, e.To, e.Cost)
		}
		if r.settled[e.To] {
			continue
		}
		nd := du + e.Cost
		if cur, ok := r.best[e.To]; ok && nd >= cur {
			continue
		}
		r.best[e.To] = nd
		r.res.Prev[e.To] = u
		r.push(e.To, nd)
	}

	return nil
}

// stateItem is one (possibly stale) heap entry.
type stateItem[S comparable, C Cost] struct {
	state S
	cost  C
	seq   int
}

// statePQ is a min-heap of *stateItem ordered by cost, then insertion.
type statePQ[S comparable, C Cost] []*stateItem[S, C]

func (pq statePQ[S, C]) Len() int { return len(pq) }

func (pq statePQ[S, C]) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}

func (pq statePQ[S, C]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *statePQ[S, C]) Push(x any) { *pq = append(*pq, x.(*stateItem[S, C])) }

func (pq *statePQ[S, C]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
