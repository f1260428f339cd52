// Package dijkstra defines core types and configuration options
// for shortest-route computation over a core.Graph.
//
// Errors (sentinel):
//
//	– ErrNilGraph      if the provided graph pointer is nil.
//	– ErrUnreachable   if no route exists (including unknown start/target).
//	– ErrNodeNotFound  additionally wrapped when start or target is unknown.
//	– ErrBadMaxDistance if MaxDistance < 0 (raised via panic in WithMaxDistance).
//
// Example usage:
//
//	route, err := dijkstra.ShortestRoute(g, from, to)
//	if errors.Is(err, dijkstra.ErrUnreachable) {
//	    // explore elsewhere
//	}
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridmap/core"
)

// Sentinel errors returned by the router.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnreachable indicates that no non-blocked route connects start and target.
	ErrUnreachable = errors.New("dijkstra: target unreachable")

	// ErrNodeNotFound indicates that start or target is not a known node.
	// It is always reported together with ErrUnreachable.
	ErrNodeNotFound = errors.New("dijkstra: node not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Infinity is the distance reported for nodes that cannot be reached.
const Infinity = math.MaxInt

// Options configures the behavior of the router.
//
// MaxDistance – optional cap on route length; nodes farther away are treated
//
//	as unreachable. Must be ≥ 0. Default is Infinity (no cap).
type Options struct {
	MaxDistance int // Maximum route length to explore
}

// Option represents a functional option for configuring the router.
type Option func(*Options)

// WithMaxDistance sets a maximum route length.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: Infinity}
}

// Router binds a graph and options so repeated queries share configuration.
// It is safe for concurrent use when the underlying graph is.
type Router struct {
	g    *core.Graph
	opts []Option
}

// NewRouter returns a Router over g.
func NewRouter(g *core.Graph, opts ...Option) *Router {
	return &Router{g: g, opts: opts}
}

// ShortestRoute is ShortestRoute(r.g, start, target, r.opts...).
func (r *Router) ShortestRoute(start, target core.Node) (core.Route, error) {
	return ShortestRoute(r.g, start, target, r.opts...)
}

// RouteLength delegates to the bound graph.
func (r *Router) RouteLength(route core.Route) int {
	return r.g.RouteLength(route)
}
