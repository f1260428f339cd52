package navigator

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gridmap/core"
	"github.com/katalvlaran/gridmap/dijkstra"
	"github.com/katalvlaran/gridmap/frontier"
)

// Navigator turns the reports of an explorer (scans, traveled edges,
// corrections, unveiled paths) into updates of its map and tracker, keeps
// the explorer's pose, and decides where to go next.
type Navigator struct {
	mu      sync.Mutex
	g       *core.Graph
	tracker *frontier.Tracker
	router  *dijkstra.Router
	log     *log.Logger

	pose     core.Endpoint
	estimate *PathReport
	target   *core.Node
	reached  bool
}

// New returns a Navigator standing at start (start.Direction is the heading).
func New(start core.Endpoint, opts ...Option) (*Navigator, error) {
	if !start.Direction.Valid() {
		return nil, fmt.Errorf("%w: start heading %d", core.ErrInvalidDirection, start.Direction)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Graph == nil {
		o.Graph = core.NewGraph()
	}
	router := dijkstra.NewRouter(o.Graph)
	tr, err := frontier.NewTracker(o.Graph, frontier.WithLogger(o.Logger), frontier.WithRouteFinder(router))
	if err != nil {
		return nil, err
	}

	return &Navigator{
		g:       o.Graph,
		tracker: tr,
		router:  router,
		log:     o.Logger,
		pose:    start,
		target:  o.Target,
	}, nil
}

// Graph returns the map being built.
func (n *Navigator) Graph() *core.Graph { return n.g }

// Tracker returns the discovery tracker.
func (n *Navigator) Tracker() *frontier.Tracker { return n.tracker }

// Pose returns the current node and heading.
func (n *Navigator) Pose() core.Endpoint {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.pose
}

// SetTarget switches to target mode.
func (n *Navigator) SetTarget(t core.Node) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.target = &t
	n.reached = false
	n.log.Info("target set", "target", t)
}

// Target returns the current target, if any.
func (n *Navigator) Target() (core.Node, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.target == nil {
		return core.Node{}, false
	}

	return *n.target, true
}

// Scan records the absolute exits seen at the current node. Exits that
// already have an edge in the map, such as the one just arrived by, are
// marked discovered right away.
func (n *Navigator) Scan(exits ...core.Direction) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	at := n.pose.Node
	if err := n.tracker.RecordScan(at, exits...); err != nil {
		return err
	}
	for d := range n.g.Neighbors(at) {
		n.tracker.RecordTraversal(at, d)
	}
	n.log.Debug("scanned", "node", at, "exits", exits)

	return nil
}

// ScanRelative is Scan with exits given relative to the current heading.
func (n *Navigator) ScanRelative(rel ...core.Direction) error {
	heading := n.Pose().Direction
	abs := make([]core.Direction, len(rel))
	for i, d := range rel {
		if !d.Valid() {
			return fmt.Errorf("%w: relative exit %d", core.ErrInvalidDirection, d)
		}
		abs[i] = heading.Add(d)
	}

	return n.Scan(abs...)
}

// Depart turns the pose toward exit d of the current node.
func (n *Navigator) Depart(d core.Direction) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.g.Link(core.Endpoint{Node: n.pose.Node, Direction: d}); !ok && !n.tracker.Knows(n.pose.Node, d) {
		return fmt.Errorf("%w: %v %v", ErrUnknownExit, n.pose.Node, d.Short())
	}
	n.pose.Direction = d

	return nil
}

// Estimate derives the path report expected from local odometry and
// remembers it so Travel can detect a correction. The weight of a passable
// estimate is unknown and left at zero.
func (n *Navigator) Estimate(o Odometry) PathReport {
	n.mu.Lock()
	defer n.mu.Unlock()

	est := PathReport{Start: n.pose, End: n.pose, Weight: core.Blocked}
	if !o.Blocked {
		est.End = n.pose.Advance(o.DX, o.DY, o.Turn).Turned()
		est.Weight = 0
	}
	n.estimate = &est

	return est
}

// Travel applies the authoritative report of the edge just traveled. The
// edge is written to the map, both ends are marked discovered and the pose
// moves to End facing away from it. A report that disagrees with the last
// Estimate (or, without one, starts elsewhere than the pose) is logged as a
// correction; the report always wins.
func (n *Navigator) Travel(r PathReport) (Outcome, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.g.AddEdge(r.Start, r.End, r.Weight); err != nil {
		return Outcome{}, err
	}
	n.tracker.RecordTraversal(r.Start.Node, r.Start.Direction)
	n.tracker.RecordTraversal(r.End.Node, r.End.Direction)

	out := Outcome{Pose: r.End.Turned()}
	if n.estimate != nil {
		out.Corrected = n.estimate.Start != r.Start || n.estimate.End != r.End
	} else {
		out.Corrected = n.pose != r.Start
	}
	if out.Corrected {
		n.log.Warn("odometry corrected", "estimated", n.pose, "reported", r)
	}
	n.estimate = nil
	n.pose = out.Pose
	n.log.Debug("traveled", "path", r, "pose", n.pose)

	if n.target != nil && *n.target == n.pose.Node {
		n.log.Info("target reached", "target", *n.target)
		n.target = nil
		n.reached = true
		out.TargetReached = true
	}

	return out, nil
}

// Correct overwrites the weight of an already reported edge.
func (n *Navigator) Correct(r PathReport) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.g.AddEdge(r.Start, r.End, r.Weight); err != nil {
		return err
	}
	n.log.Debug("corrected", "path", r)

	return nil
}

// Unveil records a path revealed by a remote party: it enters the map and
// both of its ends count as discovered.
func (n *Navigator) Unveil(r PathReport) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.g.AddEdge(r.Start, r.End, r.Weight); err != nil {
		return err
	}
	n.tracker.RecordUnveiled(r.Start, r.End)
	n.log.Debug("unveiled", "path", r)

	return nil
}

// Next decides the exit to take from the current node. With a target it
// follows the shortest route when one exists and otherwise explores. It
// returns ModeDone once the target has been reached or nothing reachable is
// left to explore. Exploring claims the chosen exit in the tracker.
func (n *Navigator) Next() Decision {
	n.mu.Lock()
	defer n.mu.Unlock()

	at := n.pose.Node
	if n.reached {
		return Decision{Mode: ModeDone}
	}
	if n.target != nil {
		if *n.target == at {
			n.log.Info("target reached", "target", at)
			n.target = nil
			n.reached = true

			return Decision{Mode: ModeDone}
		}
		route, err := n.router.ShortestRoute(at, *n.target)
		if first, ok := route.First(); err == nil && ok {
			return Decision{Direction: first.Direction, Mode: ModeTarget}
		}
		n.log.Debug("target not reachable yet", "node", at, "target", *n.target)
	}
	if d, ok := n.tracker.NextDirection(at); ok {
		return Decision{Direction: d, Mode: ModeExplore}
	}
	n.log.Info("exploration complete", "node", at)

	return Decision{Mode: ModeDone}
}
