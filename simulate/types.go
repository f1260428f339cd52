package simulate

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gridmap/core"
	"github.com/katalvlaran/gridmap/navigator"
)

// Sentinel errors for a simulation run.
var (
	ErrNilWorld  = errors.New("simulate: world is nil")
	ErrStepLimit = errors.New("simulate: step limit reached")
	ErrOffTheMap = errors.New("simulate: chosen exit does not exist in the world")
)

// DefaultMaxSteps bounds a run unless WithMaxSteps says otherwise.
const DefaultMaxSteps = 1000

// Move is one traveled path.
type Move struct {
	Step      int
	Mode      navigator.Mode
	Report    navigator.PathReport
	Pose      core.Endpoint
	Corrected bool
}

// Result summarizes a run.
type Result struct {
	Steps         int
	Moves         []Move
	Corrections   int
	TargetReached bool
	Final         core.Endpoint
	// Scanned lists the world nodes the explorer scanned, sorted by (x, y).
	Scanned []core.Node
	// Reachable lists the world nodes reachable from the start over
	// passable edges, sorted by (x, y). A finished exploration scans them all.
	Reachable []core.Node
	// Frontier lists nodes still waiting for a visit when the run stopped.
	Frontier []core.Node
	// Pending holds the undiscovered exits of each frontier node.
	Pending map[core.Node][]core.Direction
	// Map is the graph the explorer built.
	Map *core.Graph
}

// Options configures a Runner.
type Options struct {
	MaxSteps int
	Logger   *log.Logger
	Target   *core.Node
	Unveiled []navigator.PathReport
	// Drift distorts the odometry of a move before it is estimated.
	Drift  func(step int, o navigator.Odometry) navigator.Odometry
	OnMove func(Move)
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns DefaultMaxSteps, a silent logger and exact odometry.
func DefaultOptions() Options {
	return Options{
		MaxSteps: DefaultMaxSteps,
		Logger:   log.New(io.Discard),
		Drift:    func(_ int, o navigator.Odometry) navigator.Odometry { return o },
		OnMove:   func(Move) {},
	}
}

// WithMaxSteps caps the number of traveled paths. Panics if n <= 0.
func WithMaxSteps(n int) Option {
	if n <= 0 {
		panic("simulate: WithMaxSteps requires n > 0")
	}

	return func(o *Options) { o.MaxSteps = n }
}

// WithLogger sets the logger shared with the navigator.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("simulate: WithLogger(nil)")
	}

	return func(o *Options) { o.Logger = l }
}

// WithTarget runs in target mode toward n.
func WithTarget(n core.Node) Option {
	return func(o *Options) { o.Target = &n }
}

// WithUnveiled delivers paths to the explorer before the first move.
func WithUnveiled(paths ...navigator.PathReport) Option {
	return func(o *Options) { o.Unveiled = append(o.Unveiled, paths...) }
}

// WithDrift installs an odometry distortion.
func WithDrift(fn func(step int, o navigator.Odometry) navigator.Odometry) Option {
	return func(o *Options) {
		if fn != nil {
			o.Drift = fn
		}
	}
}

// WithOnMove registers a callback run after every move.
func WithOnMove(fn func(Move)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMove = fn
		}
	}
}
