// Package dijkstra implements deterministic shortest-route computation on a
// grid map whose nodes may be joined by several edges and whose edges may be
// known-blocked.
//
// Notes on implementation choices:
//
//   - Blocked edges (weight -1) are excluded from relaxation entirely.
//   - When several passable half-edges lead from a settled node to the same
//     neighbor, only the cheapest one is relaxed; equal weights keep the
//     smallest exit direction.
//   - The priority queue orders by (distance, x, y), so among nodes with the
//     same tentative distance the smallest coordinate is settled first.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries of already settled nodes.
//   - The search runs on a Paths() snapshot, so it never holds the graph lock
//     while computing and never observes a half-applied edge.
package dijkstra

import (
	"fmt"

	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/katalvlaran/gridmap/core"
)

// ShortestRoute computes a minimum-weight route from start to target.
//
// Returns:
//
//   - route: the (node, exit) steps from start up to, but excluding, target.
//     An empty, non-nil route means start == target.
//   - err:   ErrNilGraph, or ErrUnreachable (wrapping ErrNodeNotFound when
//     start or target is unknown).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func ShortestRoute(g *core.Graph, start, target core.Node, opts ...Option) (core.Route, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph and endpoints
	if g == nil {
		return nil, ErrNilGraph
	}
	paths := g.Paths()
	if _, ok := paths[start]; !ok {
		return nil, fmt.Errorf("%w: %w: start %v", ErrUnreachable, ErrNodeNotFound, start)
	}
	if _, ok := paths[target]; !ok {
		return nil, fmt.Errorf("%w: %w: target %v", ErrUnreachable, ErrNodeNotFound, target)
	}

	// 3) Zero-step route
	if start == target {
		return core.Route{}, nil
	}

	// 4) Run until target is settled
	r := newRunner(paths, cfg)
	r.init(start)
	if !r.process(&target) {
		return nil, fmt.Errorf("%w: %v -> %v", ErrUnreachable, start, target)
	}

	return r.route(start, target), nil
}

// Distances computes the shortest distance from source to every known node.
// Unreachable nodes map to Infinity.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func Distances(g *core.Graph, source core.Node, opts ...Option) (map[core.Node]int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	paths := g.Paths()
	if _, ok := paths[source]; !ok {
		return nil, fmt.Errorf("%w: source %v", ErrNodeNotFound, source)
	}

	r := newRunner(paths, cfg)
	r.init(source)
	r.process(nil)

	return r.dist, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	paths   map[core.Node]map[core.Direction]core.Link // read-only snapshot
	options Options
	dist    map[core.Node]int           // current best distance from the source
	prev    map[core.Node]core.Endpoint // prev[v] = (u, exit) on the best route to v
	settled map[core.Node]bool          // distance is final
	pq      *binaryheap.Heap            // *nodeItem ordered by (dist, x, y)
}

func newRunner(paths map[core.Node]map[core.Direction]core.Link, cfg Options) *runner {
	v := len(paths)

	return &runner{
		paths:   paths,
		options: cfg,
		dist:    make(map[core.Node]int, v),
		prev:    make(map[core.Node]core.Endpoint, v),
		settled: make(map[core.Node]bool, v),
		pq:      binaryheap.NewWith(byDistanceThenNode),
	}
}

// init sets every known node to Infinity and pushes source=0.
func (r *runner) init(source core.Node) {
	for n := range r.paths {
		r.dist[n] = Infinity
	}
	r.dist[source] = 0
	r.pq.Push(&nodeItem{node: source, dist: 0})
}

// process settles nodes in (distance, x, y) order. With a non-nil stop it
// returns as soon as *stop is settled and reports whether that happened.
// With a nil stop it drains the queue and returns false.
//
// An empty queue before the target is settled means every remaining node
// has infinite distance: the target is unreachable.
func (r *runner) process(stop *core.Node) bool {
	for !r.pq.Empty() {
		v, _ := r.pq.Pop()
		item := v.(*nodeItem)

		// Skip stale heap entries.
		if r.settled[item.node] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.settled[item.node] = true

		if stop != nil && item.node == *stop {
			return true
		}
		r.relax(item.node)
	}

	return false
}

// hop is the cheapest passable half-edge from a settled node to one neighbor.
type hop struct {
	exit   core.Direction
	weight int
}

// relax collapses parallel half-edges per neighbor (minimum weight, then
// smallest exit), then improves each unsettled neighbor's distance.
func (r *runner) relax(u core.Node) {
	best := make(map[core.Node]hop, 4)
	links := r.paths[u]
	for _, d := range core.Directions() { // ascending: strict < keeps the smallest exit on ties
		l, ok := links[d]
		if !ok || !l.Weight.Passable() || l.Node == u || r.settled[l.Node] {
			continue
		}
		if cur, seen := best[l.Node]; !seen || int(l.Weight) < cur.weight {
			best[l.Node] = hop{exit: d, weight: int(l.Weight)}
		}
	}

	base := r.dist[u]
	for v, h := range best {
		newDist := base + h.weight
		if newDist > r.options.MaxDistance {
			continue
		}
		old, ok := r.dist[v]
		if ok && newDist >= old {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = core.Endpoint{Node: u, Direction: h.exit}
		r.pq.Push(&nodeItem{node: v, dist: newDist})
	}
}

// route walks predecessors from target back to start.
func (r *runner) route(start, target core.Node) core.Route {
	var rev core.Route
	for at := target; at != start; {
		step := r.prev[at]
		rev = append(rev, step)
		at = step.Node
	}
	out := make(core.Route, len(rev))
	for i := range rev {
		out[i] = rev[len(rev)-1-i]
	}

	return out
}

// nodeItem represents a node and its tentative distance from the source.
type nodeItem struct {
	node core.Node
	dist int
}

// byDistanceThenNode orders heap items by distance, then by (x, y).
func byDistanceThenNode(a, b interface{}) int {
	ia, ib := a.(*nodeItem), b.(*nodeItem)
	switch {
	case ia.dist < ib.dist:
		return -1
	case ia.dist > ib.dist:
		return 1
	}

	return ia.node.Compare(ib.node)
}
