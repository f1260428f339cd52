package frontier

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gridmap/core"
)

// Sentinel errors for the frontier tracker.
var (
	// ErrNilGraph is returned when NewTracker is given a nil graph.
	ErrNilGraph = errors.New("frontier: graph is nil")
)

// Status is the discovery state of a node.
type Status int

const (
	// Unknown: the node has no discovery entry yet.
	Unknown Status = iota
	// Pending: the node is unscanned or has at least one undiscovered direction.
	Pending
	// Discovered: every known direction of the node has been discovered.
	Discovered
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Discovered:
		return "discovered"
	default:
		return "unknown"
	}
}

// RouteFinder computes routes and their lengths for the fallback search of
// NextDirection. *dijkstra.Router satisfies it.
type RouteFinder interface {
	ShortestRoute(start, target core.Node) (core.Route, error)
	RouteLength(r core.Route) int
}

// Options configures a Tracker.
type Options struct {
	// Logger receives Debug records for scans, claims and fallback choices.
	Logger *log.Logger

	// Routes answers shortest-route queries. Nil means a dijkstra.Router
	// over the tracker's graph.
	Routes RouteFinder
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a silent logger and no explicit RouteFinder.
func DefaultOptions() Options {
	return Options{
		Logger: log.New(io.Discard),
	}
}

// WithLogger sets the logger. Panics if l is nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("frontier: WithLogger(nil)")
	}

	return func(o *Options) { o.Logger = l }
}

// WithRouteFinder replaces the default router. Panics if r is nil.
func WithRouteFinder(r RouteFinder) Option {
	if r == nil {
		panic("frontier: WithRouteFinder(nil)")
	}

	return func(o *Options) { o.Routes = r }
}
