package frontier

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gridmap/core"
	"github.com/katalvlaran/gridmap/dijkstra"
)

// Tracker records which exits of which nodes have been explored and picks
// the next direction to travel. All methods are safe for concurrent use;
// NextDirection runs its read-decide-claim sequence under one lock so a
// direction is never claimed twice.
type Tracker struct {
	mu        sync.Mutex
	g         *core.Graph
	routes    RouteFinder
	log       *log.Logger
	discovery map[core.Node]map[core.Direction]bool
	scanned   map[core.Node]struct{}
}

// NewTracker returns a Tracker whose fallback search runs over g.
func NewTracker(g *core.Graph, opts ...Option) (*Tracker, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Routes == nil {
		o.Routes = dijkstra.NewRouter(g)
	}

	return &Tracker{
		g:         g,
		routes:    o.Routes,
		log:       o.Logger,
		discovery: make(map[core.Node]map[core.Direction]bool),
		scanned:   make(map[core.Node]struct{}),
	}, nil
}

// RecordScan marks n fully scanned and adds every exit not yet known for n
// as undiscovered. Known exits keep their flag. An invalid direction
// rejects the whole scan.
func (t *Tracker) RecordScan(n core.Node, exits ...core.Direction) error {
	for _, d := range exits {
		if !d.Valid() {
			return fmt.Errorf("%w: scan of %v: %d", core.ErrInvalidDirection, n, d)
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.scanned[n] = struct{}{}
	dirs := t.entry(n)
	for _, d := range exits {
		if _, ok := dirs[d]; !ok {
			dirs[d] = false
		}
	}
	t.log.Debug("scan", "node", n, "exits", len(exits), "pending", len(pendingOf(dirs)))

	return nil
}

// RecordTraversal marks (n, d) discovered. Unknown pairs are ignored.
func (t *Tracker) RecordTraversal(n core.Node, d core.Direction) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if dirs, ok := t.discovery[n]; ok {
		if _, ok := dirs[d]; ok {
			dirs[d] = true
		}
	}
}

// RecordUnveiled marks both endpoints of a path revealed by a remote party
// as discovered, creating entries when needed. The nodes are not marked
// scanned, so an unveiled node stays a target until someone scans it.
func (t *Tracker) RecordUnveiled(a, b core.Endpoint) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entry(a.Node)[a.Direction] = true
	t.entry(b.Node)[b.Direction] = true
	t.log.Debug("unveiled", "from", a, "to", b)
}

// NextDirection returns the direction to leave cur by, and false once
// exploration of everything reachable from cur is complete.
//
// If cur has undiscovered exits, the smallest one is claimed (marked
// discovered) and returned. Otherwise every other node that has an
// undiscovered exit, or that appears in the graph without having been
// scanned, is a candidate; the first step of the shortest usable route to
// the nearest candidate is returned. Equal lengths go to the candidate with
// the smallest (x, y).
func (t *Tracker) NextDirection(cur core.Node) (core.Direction, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if pending := pendingOf(t.discovery[cur]); len(pending) > 0 {
		d := pending[0]
		t.discovery[cur][d] = true
		t.log.Debug("claim", "node", cur, "dir", d)

		return d, true
	}

	var (
		best    core.Direction
		bestLen = -1
		target  core.Node
	)
	for _, c := range t.candidates() {
		if c == cur {
			continue
		}
		route, err := t.routes.ShortestRoute(cur, c)
		if err != nil {
			continue
		}
		first, ok := route.First()
		if !ok {
			continue
		}
		l := t.routes.RouteLength(route)
		if l < 0 {
			continue
		}
		if bestLen < 0 || l < bestLen {
			best, bestLen, target = first.Direction, l, c
		}
	}
	if bestLen < 0 {
		t.log.Debug("exploration complete", "node", cur)

		return 0, false
	}
	t.log.Debug("heading to frontier", "node", cur, "target", target, "dir", best, "len", bestLen)

	return best, true
}

// Status reports the discovery state of n. A known node that was never
// scanned is Pending, matching Frontier.
func (t *Tracker) Status(n core.Node) Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	dirs, ok := t.discovery[n]
	_, scanned := t.scanned[n]
	switch {
	case !ok:
		return Unknown
	case !scanned || len(pendingOf(dirs)) > 0:
		return Pending
	default:
		return Discovered
	}
}

// Pending returns the undiscovered exits of n in ascending order.
func (t *Tracker) Pending(n core.Node) []core.Direction {
	t.mu.Lock()
	defer t.mu.Unlock()

	return pendingOf(t.discovery[n])
}

// Knows reports whether (n, d) has a discovery entry.
func (t *Tracker) Knows(n core.Node, d core.Direction) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, ok := t.discovery[n][d]

	return ok
}

// IsScanned reports whether a scan of n has been recorded.
func (t *Tracker) IsScanned(n core.Node) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, ok := t.scanned[n]

	return ok
}

// Frontier returns every node that still needs a visit, sorted by (x, y).
func (t *Tracker) Frontier() []core.Node {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.candidates()
}

// Snapshot returns a copy of the discovery map.
func (t *Tracker) Snapshot() map[core.Node]map[core.Direction]bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[core.Node]map[core.Direction]bool, len(t.discovery))
	for n, dirs := range t.discovery {
		cp := make(map[core.Direction]bool, len(dirs))
		for d, v := range dirs {
			cp[d] = v
		}
		out[n] = cp
	}

	return out
}

// entry returns the direction map of n, creating it. Caller holds t.mu.
func (t *Tracker) entry(n core.Node) map[core.Direction]bool {
	dirs, ok := t.discovery[n]
	if !ok {
		dirs = make(map[core.Direction]bool, 4)
		t.discovery[n] = dirs
	}

	return dirs
}

// candidates lists nodes with undiscovered exits plus graph nodes that were
// never scanned, sorted by (x, y). Caller holds t.mu.
func (t *Tracker) candidates() []core.Node {
	seen := make(map[core.Node]struct{})
	for n, dirs := range t.discovery {
		if len(pendingOf(dirs)) > 0 {
			seen[n] = struct{}{}
		}
	}
	for _, n := range t.g.Nodes() {
		if _, ok := t.scanned[n]; !ok {
			seen[n] = struct{}{}
		}
	}

	out := make([]core.Node, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// pendingOf returns the false-flagged directions of dirs in ascending order.
func pendingOf(dirs map[core.Direction]bool) []core.Direction {
	var out []core.Direction
	for _, d := range core.Directions() {
		if discovered, ok := dirs[d]; ok && !discovered {
			out = append(out, d)
		}
	}

	return out
}
