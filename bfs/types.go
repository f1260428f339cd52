// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridmap/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNodeNotFound is returned when the start node is absent.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(n core.Node, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterLink can skip passable half-edges by returning false.
	// Blocked half-edges are always skipped.
	FilterLink func(from core.Endpoint, to core.Link) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering beyond blocked edges
//   - no-op OnVisit hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:        context.Background(),
		OnVisit:    func(core.Node, int) error { return nil },
		MaxDepth:   0,
		FilterLink: func(core.Endpoint, core.Link) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(n core.Node, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterLink skips half-edges when fn returns false.
func WithFilterLink(fn func(from core.Endpoint, to core.Link) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterLink = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: hop count from the start.
//   - Parent: for every reached node except the start, the (node, exit)
//     step that first reached it.
type BFSResult struct {
	Order  []core.Node
	Depth  map[core.Node]int
	Parent map[core.Node]core.Endpoint
}

// Reached reports whether n was visited.
func (r *BFSResult) Reached(n core.Node) bool {
	_, ok := r.Depth[n]

	return ok
}

// RouteTo reconstructs the fewest-hops route from the start to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) RouteTo(dest core.Node) (core.Route, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no route to %v", dest)
	}
	route := core.Route{}
	for cur := dest; ; {
		step, ok := r.Parent[cur]
		if !ok {
			break
		}
		route = append(route, step)
		cur = step.Node
	}
	// reverse to get start → dest
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	return route, nil
}
