package simulate

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gridmap/bfs"
	"github.com/katalvlaran/gridmap/core"
	"github.com/katalvlaran/gridmap/navigator"
	"github.com/katalvlaran/gridmap/scenario"
)

// Runner drives a navigator over a fully known world, answering its scans
// from the world's exits and its moves with the world's edges.
type Runner struct {
	world *core.Graph
	start core.Endpoint
	opts  Options
}

// NewRunner returns a Runner that starts at start in world.
func NewRunner(world *core.Graph, start core.Endpoint, opts ...Option) (*Runner, error) {
	if world == nil {
		return nil, ErrNilWorld
	}
	if !start.Direction.Valid() {
		return nil, fmt.Errorf("%w: start heading %d", core.ErrInvalidDirection, start.Direction)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Runner{world: world, start: start, opts: o}, nil
}

// FromScenario builds a Runner from a parsed scenario. Scenario settings
// come first so opts can override them.
func FromScenario(sc *scenario.Scenario, opts ...Option) (*Runner, error) {
	world, err := sc.World()
	if err != nil {
		return nil, err
	}
	base := []Option{WithMaxSteps(sc.Settings.MaxSteps)}
	if sc.Target != nil {
		base = append(base, WithTarget(*sc.Target))
	}
	for _, e := range sc.Unveiled {
		base = append(base, WithUnveiled(navigator.PathReport{Start: e.From, End: e.To, Weight: e.Weight}))
	}

	return NewRunner(world, sc.Start, append(base, opts...)...)
}

// Run explores until the navigator is done, ctx is cancelled, or the step
// limit is hit. The partial Result is returned alongside any error.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	navOpts := []navigator.Option{navigator.WithLogger(r.opts.Logger)}
	if r.opts.Target != nil {
		navOpts = append(navOpts, navigator.WithTarget(*r.opts.Target))
	}
	nav, err := navigator.New(r.start, navOpts...)
	if err != nil {
		return nil, err
	}
	for _, p := range r.opts.Unveiled {
		if err := nav.Unveil(p); err != nil {
			return nil, err
		}
	}

	res := &Result{Map: nav.Graph()}
	defer r.summarize(nav, res)

	for {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}

		if err := r.scan(nav); err != nil {
			return res, err
		}
		dec := nav.Next()
		if dec.Mode == navigator.ModeDone {
			r.opts.Logger.Info("run finished", "steps", res.Steps, "pose", nav.Pose())

			return res, nil
		}
		if res.Steps >= r.opts.MaxSteps {
			return res, fmt.Errorf("%w: %d", ErrStepLimit, r.opts.MaxSteps)
		}
		if err := r.move(nav, dec, res); err != nil {
			return res, err
		}
	}
}

// scan reports the world exits of the current node once.
func (r *Runner) scan(nav *navigator.Navigator) error {
	at := nav.Pose().Node
	if nav.Tracker().IsScanned(at) {
		return nil
	}
	var exits []core.Direction
	links := r.world.Neighbors(at)
	for _, d := range core.Directions() {
		if _, ok := links[d]; ok {
			exits = append(exits, d)
		}
	}

	return nav.Scan(exits...)
}

// move travels the chosen exit in the world and reports it.
func (r *Runner) move(nav *navigator.Navigator, dec navigator.Decision, res *Result) error {
	if err := nav.Depart(dec.Direction); err != nil {
		return err
	}
	from := nav.Pose()
	link, ok := r.world.Link(from)
	if !ok {
		return fmt.Errorf("%w: %v", ErrOffTheMap, from)
	}

	report := navigator.PathReport{Start: from, End: link.Endpoint(), Weight: link.Weight}
	if !link.Weight.Passable() {
		report.End = from
	}
	nav.Estimate(r.opts.Drift(res.Steps, odometryOf(from, report.End, report.Blocked())))

	out, err := nav.Travel(report)
	if err != nil {
		return err
	}
	res.Steps++
	m := Move{Step: res.Steps, Mode: dec.Mode, Report: report, Pose: out.Pose, Corrected: out.Corrected}
	res.Moves = append(res.Moves, m)
	if out.Corrected {
		res.Corrections++
	}
	if out.TargetReached {
		res.TargetReached = true
	}
	r.opts.Logger.Debug("move", "step", m.Step, "mode", m.Mode, "path", report)
	r.opts.OnMove(m)

	return nil
}

func (r *Runner) summarize(nav *navigator.Navigator, res *Result) {
	res.Final = nav.Pose()
	tr := nav.Tracker()
	reach, err := bfs.Reachable(r.world, r.start.Node)
	if err != nil {
		r.opts.Logger.Warn("start is not on the world map", "start", r.start.Node, "err", err)
	}
	for _, n := range r.world.Nodes() {
		if tr.IsScanned(n) {
			res.Scanned = append(res.Scanned, n)
		}
		if reach != nil && reach.Reached(n) {
			res.Reachable = append(res.Reachable, n)
		}
	}
	res.Frontier = tr.Frontier()
	res.Pending = make(map[core.Node][]core.Direction, len(res.Frontier))
	for _, n := range res.Frontier {
		res.Pending[n] = tr.Pending(n)
	}
	r.opts.Logger.Log(levelOf(res), "coverage", "scanned", len(res.Scanned), "reachable", len(res.Reachable))
}

func levelOf(res *Result) log.Level {
	if res.Corrections > 0 {
		return log.WarnLevel
	}

	return log.DebugLevel
}
