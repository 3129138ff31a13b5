package gridsearch

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/neighbors"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	at    grid.Coord
	depth int
}

// walker encapsulates mutable BFS state for a single call.
type walker[V comparable] struct {
	g        *grid.Grid[V]
	passable Passable[V]
	opts     Options
	offsets  []grid.Coord
	exempt   map[grid.Coord]struct{} // goals/targets that ignore Obstacles
	queue    []queueItem
	dist     map[grid.Coord]int
	parent   map[grid.Coord]grid.Coord
}

func newWalker[V comparable](g *grid.Grid[V], passable Passable[V], opts []Option) (*walker[V], error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if passable == nil {
		return nil, ErrNilPassable
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return &walker[V]{
		g:        g,
		passable: passable,
		opts:     o,
		offsets:  neighbors.Offsets(o.Conn),
		exempt:   map[grid.Coord]struct{}{},
		dist:     make(map[grid.Coord]int),
		parent:   make(map[grid.Coord]grid.Coord),
	}, nil
}

// canEnter applies bounds, dynamic obstacles (unless exempt) and passability.
func (w *walker[V]) canEnter(c grid.Coord) bool {
	if !w.g.InBounds(c) {
		return false
	}
	if _, blocked := w.opts.Obstacles[c]; blocked {
		if _, ok := w.exempt[c]; !ok {
			return false
		}
	}

	return w.passable(c, w.g)
}

func (w *walker[V]) enqueue(c grid.Coord, depth int) {
	w.dist[c] = depth
	w.queue = append(w.queue, queueItem{at: c, depth: depth})
}

// run expands cells in FIFO order from start. visit is called for every
// dequeued cell; returning true stops the walk. The start cell itself is
// never checked against passability or obstacles.
func (w *walker[V]) run(start grid.Coord, visit func(c grid.Coord, depth int) bool) error {
	w.enqueue(start, 0)
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.opts.OnVisit(item.at, item.depth); err != nil {
			return fmt.Errorf("gridsearch: OnVisit error at %v: %w", item.at, err)
		}
		if visit(item.at, item.depth) {
			return nil
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, d := range w.offsets {
			n := item.at.Add(d)
			if _, seen := w.dist[n]; seen {
				continue
			}
			if !w.canEnter(n) {
				continue
			}
			w.parent[n] = item.at
			w.enqueue(n, next)
		}
	}

	return nil
}

func (w *walker[V]) log(op string, fields logrus.Fields) {
	w.opts.Logger.WithFields(logrus.Fields{
		"component": "gridsearch",
		"op":        op,
		"expanded":  len(w.dist),
	}).WithFields(fields).Debug("search finished")
}

// ShortestPath returns the number of unit steps from start to goal, or
// NotReachable. Dynamic obstacles never block the goal itself; passable is
// still applied to it. start == goal yields zero steps.
//
// Complexity: O(W·H·d) time, O(W·H) memory on a bounded grid.
func ShortestPath[V comparable](start, goal grid.Coord, g *grid.Grid[V], passable Passable[V], opts ...Option) (Result, error) {
	w, err := newWalker(g, passable, opts)
	if err != nil {
		return NotReachable, err
	}
	w.exempt[goal] = struct{}{}

	res := NotReachable
	err = w.run(start, func(c grid.Coord, depth int) bool {
		if c == goal {
			res = Result{Steps: depth, Reachable: true}
			return true
		}
		return false
	})
	w.log("shortest_path", logrus.Fields{"reachable": res.Reachable, "steps": res.Steps})

	return res, err
}

// Path returns one shortest path from start to goal, both included. Among
// equal-length paths, the one found first under the connectivity order wins.
// Returns ErrNotReachable when no path exists.
func Path[V comparable](start, goal grid.Coord, g *grid.Grid[V], passable Passable[V], opts ...Option) ([]grid.Coord, error) {
	w, err := newWalker(g, passable, opts)
	if err != nil {
		return nil, err
	}
	w.exempt[goal] = struct{}{}

	found := false
	if err = w.run(start, func(c grid.Coord, _ int) bool {
		found = c == goal
		return found
	}); err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %v from %v", ErrNotReachable, goal, start)
	}

	path := make([]grid.Coord, w.dist[goal]+1)
	for i, at := len(path)-1, goal; i >= 0; i-- {
		path[i] = at
		at = w.parent[at]
	}

	return path, nil
}

// FloodFill returns the BFS distance from start to every reachable cell,
// start included at 0. Cells absent from the map are unreachable.
// On an unbounded grid the caller must bound the walk (passable or MaxDepth).
func FloodFill[V comparable](start grid.Coord, g *grid.Grid[V], passable Passable[V], opts ...Option) (map[grid.Coord]int, error) {
	w, err := newWalker(g, passable, opts)
	if err != nil {
		return nil, err
	}
	if err = w.run(start, func(grid.Coord, int) bool { return false }); err != nil {
		return nil, err
	}
	w.log("flood_fill", nil)

	return w.dist, nil
}

// NearestTargets searches outward from start and returns every target at the
// smallest reachable distance. The tie-break is left to the caller
// (Nearest.Best). Targets are exempt from dynamic obstacles.
func NearestTargets[V comparable](start grid.Coord, targets []grid.Coord, g *grid.Grid[V], passable Passable[V], opts ...Option) (Nearest, error) {
	w, err := newWalker(g, passable, opts)
	if err != nil {
		return Nearest{}, err
	}
	want := make(map[grid.Coord]struct{}, len(targets))
	for _, t := range targets {
		want[t] = struct{}{}
		w.exempt[t] = struct{}{}
	}

	res := Nearest{Distance: -1}
	err = w.run(start, func(c grid.Coord, depth int) bool {
		if res.Distance >= 0 && depth > res.Distance {
			return true
		}
		if _, ok := want[c]; ok {
			res.Distance = depth
			res.Candidates = append(res.Candidates, c)
		}
		return false
	})
	if err != nil {
		return Nearest{}, err
	}
	if len(res.Candidates) == 0 {
		res.Distance = 0
	}
	w.log("nearest", logrus.Fields{"candidates": len(res.Candidates), "distance": res.Distance})

	return res, nil
}

// NextSteps returns every neighbor of start that lies on some shortest path
// to goal, in connectivity order, together with the path length. It searches
// backwards from goal, so passable must be symmetric. A start equal to goal,
// a goal that cannot be entered, or an unreachable goal yields no moves.
func NextSteps[V comparable](start, goal grid.Coord, g *grid.Grid[V], passable Passable[V], opts ...Option) (Steps, error) {
	if start == goal {
		return Steps{}, nil
	}
	w, err := newWalker(g, passable, opts)
	if err != nil {
		return Steps{}, err
	}
	if !w.g.InBounds(goal) || !w.passable(goal, w.g) {
		return Steps{}, nil
	}
	w.exempt[goal] = struct{}{}
	if err = w.run(goal, func(grid.Coord, int) bool { return false }); err != nil {
		return Steps{}, err
	}

	best := -1
	var moves []grid.Coord
	for _, d := range w.offsets {
		n := start.Add(d)
		dist, ok := w.dist[n]
		if !ok || (n != goal && !w.canEnter(n)) {
			continue
		}
		switch {
		case best < 0 || dist < best:
			best, moves = dist, []grid.Coord{n}
		case dist == best:
			moves = append(moves, n)
		}
	}
	if best < 0 {
		return Steps{}, nil
	}

	return Steps{Distance: best + 1, Moves: moves}, nil
}
