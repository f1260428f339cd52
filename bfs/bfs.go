package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridmap/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  core.Node
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	paths   map[core.Node]map[core.Direction]core.Link
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[core.Node]bool
	res     *BFSResult
}

// Reachable runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation,
// or any user-supplied hook error.
func Reachable(g *core.Graph, start core.Node, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	paths := g.Paths()
	if _, ok := paths[start]; !ok {
		return nil, ErrStartNodeNotFound
	}

	n := len(paths)
	w := &walker{
		paths:   paths,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.Node]bool, n),
		res: &BFSResult{
			Order:  make([]core.Node, 0, n),
			Depth:  make(map[core.Node]int, n),
			Parent: make(map[core.Node]core.Endpoint, n),
		},
	}

	// Seed queue with start node (no parent)
	w.visited[start] = true
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem{node: start})

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.node)
		if err := w.opts.OnVisit(item.node, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.node, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor reachable over a passable half-edge.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	links := w.paths[item.node]
	for _, d := range core.Directions() {
		l, ok := links[d]
		if !ok || !l.Weight.Passable() || w.visited[l.Node] {
			continue
		}
		from := core.Endpoint{Node: item.node, Direction: d}
		if !w.opts.FilterLink(from, l) {
			continue
		}
		w.visited[l.Node] = true
		w.res.Depth[l.Node] = nextDepth
		w.res.Parent[l.Node] = from
		w.queue = append(w.queue, queueItem{node: l.Node, depth: nextDepth})
	}
}
