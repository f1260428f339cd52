package scenario

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridmap/core"
	"github.com/katalvlaran/gridmap/gridgraph"
)

// DefaultMaxSteps bounds a run when the file does not set max_steps.
const DefaultMaxSteps = 1000

// Sentinel errors for scenario parsing.
var (
	ErrSyntax       = errors.New("scenario: syntax error")
	ErrMissingStart = errors.New("scenario: start pose is required")
	ErrNoEdges      = errors.New("scenario: at least one edge or grid row is required")
	ErrBadSettings  = errors.New("scenario: bad settings")
)

// File is the YAML shape of a scenario.
type File struct {
	Name     string   `yaml:"name"`
	Start    string   `yaml:"start"`
	Target   string   `yaml:"target,omitempty"`
	Settings Settings `yaml:"settings"`
	Edges    []string `yaml:"edges,omitempty"`
	Unveiled []string `yaml:"unveiled,omitempty"`
	// Grid draws the world as text rows (see gridgraph.ParseRows); edges
	// listed in Edges are applied on top of it.
	Grid       []string `yaml:"grid,omitempty"`
	GridOrigin string   `yaml:"grid_origin,omitempty"`
}

// Settings tune a run; command-line flags override them.
type Settings struct {
	MaxSteps int    `yaml:"max_steps,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
}

// Edge is one parsed edge.
type Edge struct {
	From   core.Endpoint
	To     core.Endpoint
	Weight core.Weight
}

func (e Edge) String() string {
	if e.Weight == core.Blocked {
		return fmt.Sprintf("%v -> %v : blocked", e.From, e.To)
	}

	return fmt.Sprintf("%v -> %v : %d", e.From, e.To, e.Weight)
}

// Scenario is a parsed, validated scenario: a fully known world, the start
// pose of the explorer, an optional target and paths unveiled up front.
type Scenario struct {
	Name     string
	Start    core.Endpoint
	Target   *core.Node
	Settings Settings
	Edges    []Edge
	Unveiled []Edge
	Grid     *gridgraph.GridGraph
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read scenario %s", path)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse scenario %s", path)
	}

	return sc, nil
}

// Parse decodes YAML scenario data.
func Parse(data []byte) (*Scenario, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "yaml unmarshal")
	}

	return f.Build()
}

// Build validates f and parses its text fields.
func (f *File) Build() (*Scenario, error) {
	if f.Start == "" {
		return nil, ErrMissingStart
	}
	if len(f.Edges) == 0 && len(f.Grid) == 0 {
		return nil, ErrNoEdges
	}
	if f.Settings.MaxSteps < 0 {
		return nil, errors.Wrapf(ErrBadSettings, "max_steps %d", f.Settings.MaxSteps)
	}

	sc := &Scenario{Name: f.Name, Settings: f.Settings}
	if sc.Settings.MaxSteps == 0 {
		sc.Settings.MaxSteps = DefaultMaxSteps
	}
	var err error
	if sc.Start, err = ParseEndpoint(f.Start); err != nil {
		return nil, errors.Wrap(err, "start")
	}
	if f.Target != "" {
		t, err := ParseNode(f.Target)
		if err != nil {
			return nil, errors.Wrap(err, "target")
		}
		sc.Target = &t
	}
	if sc.Edges, err = parseEdges(f.Edges); err != nil {
		return nil, errors.Wrap(err, "edges")
	}
	if sc.Unveiled, err = parseEdges(f.Unveiled); err != nil {
		return nil, errors.Wrap(err, "unveiled")
	}
	if len(f.Grid) > 0 {
		if sc.Grid, err = f.buildGrid(); err != nil {
			return nil, errors.Wrap(err, "grid")
		}
	}

	return sc, nil
}

func (f *File) buildGrid() (*gridgraph.GridGraph, error) {
	opts := gridgraph.DefaultGridOptions()
	if f.GridOrigin != "" {
		origin, err := ParseNode(f.GridOrigin)
		if err != nil {
			return nil, errors.Wrap(err, "origin")
		}
		opts.Origin = origin
	}
	values, err := gridgraph.ParseRows(f.Grid)
	if err != nil {
		return nil, err
	}

	return gridgraph.NewGridGraph(values, opts)
}

func parseEdges(lines []string) ([]Edge, error) {
	out := make([]Edge, 0, len(lines))
	for i, s := range lines {
		e, err := ParseEdge(s)
		if err != nil {
			return nil, errors.Wrapf(err, "#%d", i)
		}
		out = append(out, e)
	}

	return out, nil
}

// World builds the full map: the grid, if any, then every edge and every
// unveiled path. Later entries overwrite earlier ones on the same endpoints.
func (s *Scenario) World() (*core.Graph, error) {
	g := core.NewGraph()
	if s.Grid != nil {
		g = s.Grid.ToGraph()
	}
	for _, e := range append(append([]Edge(nil), s.Edges...), s.Unveiled...) {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, errors.Wrapf(err, "edge %v", e)
		}
	}
	if !g.HasNode(s.Start.Node) {
		return nil, errors.Errorf("scenario: start %v is not on the map", s.Start.Node)
	}

	return g, nil
}
