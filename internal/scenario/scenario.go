// Package scenario turns a config.Scenario into calls of the gridkit
// packages and reports the puzzle answer.
package scenario

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"

	"github.com/katalvlaran/gridkit/boxsearch"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/gridsearch"
	"github.com/katalvlaran/gridkit/internal/config"
	"github.com/katalvlaran/gridkit/neighbors"
	"github.com/katalvlaran/gridkit/simulate"
)

var (
	// ErrMarker is returned when a start or goal marker is missing from the map.
	ErrMarker = errors.New("scenario: marker not found")

	// ErrNotDigit is returned when a risk map holds a non-digit cell.
	ErrNotDigit = errors.New("scenario: risk cell is not a digit")
)

// Glyphs used by the automaton kinds.
const (
	Alive    = '#'
	Dead     = '.'
	Empty    = 'L'
	Occupied = '#'
	Floor    = '.'
	Open     = '.'
	Trees    = '|'
	Yard     = '#'
)

// Report is the outcome of one scenario.
type Report struct {
	Name   string
	Kind   string
	Answer int
	Detail string
	// Grid is the final map for kinds that have one; nil otherwise.
	Grid *grid.Grid[rune]
}

// String renders the report as one line.
func (r Report) String() string {
	if r.Detail == "" {
		return fmt.Sprintf("%s [%s]: %d", r.Name, r.Kind, r.Answer)
	}

	return fmt.Sprintf("%s [%s]: %d (%s)", r.Name, r.Kind, r.Answer, r.Detail)
}

// Runner executes scenarios with shared settings.
type Runner struct {
	Log      logrus.FieldLogger
	MaxTicks int
}

// Run executes sc. Cancellation of ctx aborts long searches and simulations.
func (r Runner) Run(ctx context.Context, sc config.Scenario) (Report, error) {
	log := r.Log.WithFields(logrus.Fields{"component": "scenario", "scenario": sc.Name, "kind": sc.Kind})
	log.Debug("scenario started")

	var (
		rep Report
		err error
	)
	switch sc.Kind {
	case config.KindPath:
		rep, err = r.path(ctx, sc, log)
	case config.KindFlood:
		rep, err = r.flood(ctx, sc, log)
	case config.KindRegions:
		rep, err = r.regions(sc)
	case config.KindLife:
		rep, err = r.life(ctx, sc, log)
	case config.KindSeats:
		rep, err = r.seats(ctx, sc, log)
	case config.KindLumber:
		rep, err = r.lumber(ctx, sc, log)
	case config.KindRisk:
		rep, err = r.risk(ctx, sc, log)
	case config.KindBots:
		rep, err = r.bots(ctx, sc, log)
	default:
		err = fmt.Errorf("%w: %q", config.ErrUnknownKind, sc.Kind)
	}
	if err != nil {
		log.WithError(err).Error("scenario failed")
		return Report{}, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	rep.Name, rep.Kind = sc.Name, sc.Kind
	log.WithField("answer", rep.Answer).Info("scenario finished")

	return rep, nil
}

func connectivity(s string, def neighbors.Connectivity) (neighbors.Connectivity, error) {
	if s == "" {
		return def, nil
	}
	return neighbors.ParseConnectivity(s)
}

// find returns the first cell in reading order holding marker.
func find(g *grid.Grid[rune], marker string) (grid.Coord, error) {
	want := []rune(marker)
	if len(want) != 1 {
		return grid.Coord{}, fmt.Errorf("%w: %q", ErrMarker, marker)
	}
	var (
		at    grid.Coord
		found bool
	)
	g.Items(func(c grid.Coord, v rune) bool {
		if v == want[0] {
			at, found = c, true
			return false
		}
		return true
	})
	if !found {
		return grid.Coord{}, fmt.Errorf("%w: %q", ErrMarker, marker)
	}

	return at, nil
}

func wallRunes(sc config.Scenario) []rune {
	if sc.Wall == "" {
		return []rune{'#'}
	}
	return []rune(sc.Wall)
}

func walls(sc config.Scenario) gridsearch.Passable[rune] {
	return gridsearch.Not(wallRunes(sc)...)
}

func (r Runner) path(ctx context.Context, sc config.Scenario, log logrus.FieldLogger) (Report, error) {
	g, err := grid.FromLines(sc.Lines)
	if err != nil {
		return Report{}, err
	}
	conn, err := connectivity(sc.Connectivity, neighbors.Conn4)
	if err != nil {
		return Report{}, err
	}
	start, err := find(g, sc.Start)
	if err != nil {
		return Report{}, err
	}
	goal, err := find(g, sc.Goal)
	if err != nil {
		return Report{}, err
	}

	path, err := gridsearch.Path(start, goal, g, walls(sc),
		gridsearch.WithConnectivity(conn), gridsearch.WithContext(ctx), gridsearch.WithLogger(log))
	if errors.Is(err, gridsearch.ErrNotReachable) {
		return Report{Answer: -1, Detail: "not reachable", Grid: g}, nil
	}
	if err != nil {
		return Report{}, err
	}
	out := g.Clone()
	for i := 1; i < len(path)-1; i++ {
		_ = out.Set(path[i], 'o')
	}

	return Report{Answer: len(path) - 1, Detail: fmt.Sprintf("%v→%v", start, goal), Grid: out}, nil
}

func (r Runner) flood(ctx context.Context, sc config.Scenario, log logrus.FieldLogger) (Report, error) {
	g, err := grid.FromLines(sc.Lines)
	if err != nil {
		return Report{}, err
	}
	conn, err := connectivity(sc.Connectivity, neighbors.Conn4)
	if err != nil {
		return Report{}, err
	}
	start, err := find(g, sc.Start)
	if err != nil {
		return Report{}, err
	}
	dist, err := gridsearch.FloodFill(start, g, walls(sc),
		gridsearch.WithConnectivity(conn), gridsearch.WithContext(ctx), gridsearch.WithLogger(log))
	if err != nil {
		return Report{}, err
	}
	far := 0
	for _, d := range maps.Values(dist) {
		far = max(far, d)
	}

	return Report{Answer: far, Detail: fmt.Sprintf("%d cells reached", len(dist)), Grid: g}, nil
}

func (r Runner) regions(sc config.Scenario) (Report, error) {
	g, err := grid.FromLines(sc.Lines)
	if err != nil {
		return Report{}, err
	}
	conn, err := connectivity(sc.Connectivity, neighbors.Conn4)
	if err != nil {
		return Report{}, err
	}
	blocked := wallRunes(sc)
	include := func(v rune) bool { return !slices.Contains(blocked, v) }
	regions, err := gridsearch.Regions(g, conn, include, nil)
	if err != nil {
		return Report{}, err
	}
	largest := 0
	for _, reg := range regions {
		largest = max(largest, len(reg))
	}

	return Report{Answer: len(regions), Detail: fmt.Sprintf("largest %d", largest), Grid: g}, nil
}

func (r Runner) risk(ctx context.Context, sc config.Scenario, log logrus.FieldLogger) (Report, error) {
	g, err := grid.FromLines(sc.Lines)
	if err != nil {
		return Report{}, err
	}
	for _, c := range g.Keys() {
		if v := g.At(c); v < '0' || v > '9' {
			return Report{}, fmt.Errorf("%w: %q at %v", ErrNotDigit, v, c)
		}
	}
	b := g.Bounds()
	start, goal := b.Min, b.Max
	next := func(c grid.Coord) []gridsearch.Edge[grid.Coord, int] {
		out := make([]gridsearch.Edge[grid.Coord, int], 0, 4)
		for _, n := range neighbors.Coords(c, neighbors.Conn4) {
			if g.InBounds(n) {
				out = append(out, gridsearch.Edge[grid.Coord, int]{To: n, Cost: int(g.At(n) - '0')})
			}
		}
		return out
	}
	res, err := gridsearch.Dijkstra([]grid.Coord{start}, next,
		func(c grid.Coord) bool { return c == goal },
		gridsearch.WithContext(ctx), gridsearch.WithLogger(log))
	if err != nil {
		return Report{}, err
	}
	if !res.Found {
		return Report{}, gridsearch.ErrNotReachable
	}
	path, err := res.PathTo(goal)
	if err != nil {
		return Report{}, err
	}
	out := g.Clone()
	for _, c := range path {
		_ = out.Set(c, '*')
	}

	return Report{Answer: res.Dist[goal], Detail: fmt.Sprintf("%d cells on path", len(path)), Grid: out}, nil
}

func (r Runner) simOptions(ctx context.Context, log logrus.FieldLogger) []simulate.Option {
	return []simulate.Option{
		simulate.WithContext(ctx),
		simulate.WithMaxTicks(r.MaxTicks),
		simulate.WithLogger(log),
	}
}

func (r Runner) life(ctx context.Context, sc config.Scenario, log logrus.FieldLogger) (Report, error) {
	born, survive := sc.Born, sc.Survive
	if len(born) == 0 {
		born = []int{3}
	}
	if len(survive) == 0 {
		survive = []int{2, 3}
	}
	rule := simulate.LifeRule(born, survive, Alive, Dead)
	sim, err := simulate.New(rule, neighbors.Adjacent[rune](neighbors.Conn8), r.simOptions(ctx, log)...)
	if err != nil {
		return Report{}, err
	}

	var res simulate.Result[rune]
	if sc.Unbounded {
		res, err = sim.RunWithCycleDetection(grid.FromLinesSparse(sc.Lines, Dead), sc.Ticks)
	} else {
		var g *grid.Grid[rune]
		if g, err = grid.FromLines(sc.Lines); err != nil {
			return Report{}, err
		}
		res, err = sim.RunWithCycleDetection(g, sc.Ticks)
	}
	if err != nil {
		return Report{}, err
	}

	return Report{Answer: res.Grid.Count(Alive), Detail: describe(res), Grid: res.Grid}, nil
}

func (r Runner) seats(ctx context.Context, sc config.Scenario, log logrus.FieldLogger) (Report, error) {
	g, err := grid.FromLines(sc.Lines)
	if err != nil {
		return Report{}, err
	}
	policy := neighbors.Adjacent[rune](neighbors.Conn8)
	tolerance := 4
	if sc.Visible {
		policy = neighbors.Visible(neighbors.Conn8, func(v rune) bool { return v == Floor }, 0)
		tolerance = 5
	}
	if sc.Tolerance > 0 {
		tolerance = sc.Tolerance
	}
	sim, err := simulate.New(simulate.SeatRule(Empty, Occupied, tolerance), policy, r.simOptions(ctx, log)...)
	if err != nil {
		return Report{}, err
	}
	res, err := sim.RunUntilStable(g)
	if err != nil {
		return Report{}, err
	}

	return Report{Answer: res.Grid.Count(Occupied), Detail: describe(res), Grid: res.Grid}, nil
}

func (r Runner) lumber(ctx context.Context, sc config.Scenario, log logrus.FieldLogger) (Report, error) {
	g, err := grid.FromLines(sc.Lines)
	if err != nil {
		return Report{}, err
	}
	sim, err := simulate.New(simulate.LumberRule(Open, Trees, Yard), neighbors.Adjacent[rune](neighbors.Conn8), r.simOptions(ctx, log)...)
	if err != nil {
		return Report{}, err
	}
	res, err := sim.RunWithCycleDetection(g, sc.Ticks)
	if err != nil {
		return Report{}, err
	}

	return Report{Answer: simulate.Resolution(res.Grid, Trees, Yard), Detail: describe(res), Grid: res.Grid}, nil
}

func (r Runner) bots(ctx context.Context, sc config.Scenario, log logrus.FieldLogger) (Report, error) {
	bots, err := boxsearch.ParseBots(sc.Lines)
	if err != nil {
		return Report{}, err
	}
	strongest, inRange, err := boxsearch.Strongest(bots)
	if err != nil {
		return Report{}, err
	}
	res, err := boxsearch.Search(bots, boxsearch.WithContext(ctx), boxsearch.WithLogger(log))
	if err != nil {
		return Report{}, err
	}
	detail := fmt.Sprintf("point %v covered by %d; strongest r=%d reaches %d", res.Point, res.Count, strongest.R, inRange)

	return Report{Answer: res.Distance, Detail: detail}, nil
}

func describe[V comparable](res simulate.Result[V]) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at tick %d after %d steps", res.Outcome, res.Tick, res.Steps)
	if res.Outcome == simulate.CycleDetected {
		fmt.Fprintf(&sb, ", cycle %d from %d", res.CycleLength, res.CycleStart)
	}

	return sb.String()
}
