package navigator

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gridmap/core"
)

// Sentinel errors for navigator operations.
var (
	// ErrUnknownExit is returned by Depart for a direction the current node
	// has neither scanned nor traveled.
	ErrUnknownExit = errors.New("navigator: exit not known at current node")
)

// PathReport describes one traveled, corrected or unveiled edge.
// A blocked traversal is reported with End == Start and Weight == core.Blocked.
type PathReport struct {
	Start  core.Endpoint
	End    core.Endpoint
	Weight core.Weight
}

// Blocked reports whether the path is known to be impassable.
func (r PathReport) Blocked() bool { return r.Weight == core.Blocked }

func (r PathReport) String() string {
	if r.Blocked() {
		return fmt.Sprintf("%v -> %v : blocked", r.Start, r.End)
	}

	return fmt.Sprintf("%v -> %v : %d", r.Start, r.End, r.Weight)
}

// Odometry is the locally measured outcome of following a line: the
// displacement in the robot frame (DX lateral, DY forward), the heading
// change, and whether an obstacle forced a return.
type Odometry struct {
	DX, DY  int
	Turn    core.Direction
	Blocked bool
}

// Mode says why Next chose its direction.
type Mode int

const (
	// ModeExplore: heading to an undiscovered exit.
	ModeExplore Mode = iota
	// ModeTarget: following the shortest route to the target.
	ModeTarget
	// ModeDone: target reached or nothing left to explore.
	ModeDone
)

func (m Mode) String() string {
	switch m {
	case ModeExplore:
		return "explore"
	case ModeTarget:
		return "target"
	default:
		return "done"
	}
}

// Decision is the result of Next. Direction is meaningful unless Mode is ModeDone.
type Decision struct {
	Direction core.Direction
	Mode      Mode
}

// Outcome is the result of Travel.
type Outcome struct {
	// Pose is the pose after arrival: at End's node, facing away from End.
	Pose core.Endpoint
	// Corrected is true when the report disagreed with the local estimate.
	Corrected bool
	// TargetReached is true when Pose is on the target node.
	TargetReached bool
}

// Options configures a Navigator.
type Options struct {
	Logger *log.Logger
	Graph  *core.Graph
	Target *core.Node
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a silent logger, a fresh graph and no target.
func DefaultOptions() Options {
	return Options{Logger: log.New(io.Discard)}
}

// WithLogger sets the logger. Panics if l is nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("navigator: WithLogger(nil)")
	}

	return func(o *Options) { o.Logger = l }
}

// WithGraph makes the navigator record into g instead of a new graph.
func WithGraph(g *core.Graph) Option {
	if g == nil {
		panic("navigator: WithGraph(nil)")
	}

	return func(o *Options) { o.Graph = g }
}

// WithTarget starts the navigator in target mode.
func WithTarget(n core.Node) Option {
	return func(o *Options) { o.Target = &n }
}
