package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/gridmap/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs and ErrBadThreshold if
// opts.LandThreshold < 1.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.LandThreshold < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadThreshold, opts.LandThreshold)
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	return &GridGraph{
		Width:         w,
		Height:        h,
		CellValues:    cells,
		LandThreshold: opts.LandThreshold,
		Origin:        opts.Origin,
	}, nil
}

// ParseRows turns text rows into cell values: '1'..'9' are land of that
// cost, '.' and ' ' are void, 'x' and '#' are obstacles. The result is
// ready for NewGridGraph.
func ParseRows(rows []string) ([][]int, error) {
	out := make([][]int, len(rows))
	for r, line := range rows {
		out[r] = make([]int, 0, len(line))
		for c, ch := range line {
			switch {
			case ch >= '1' && ch <= '9':
				out[r] = append(out[r], int(ch-'0'))
			case ch == '.' || ch == ' ':
				out[r] = append(out[r], 0)
			case ch == 'x' || ch == '#':
				out[r] = append(out[r], Obstacle)
			default:
				return nil, fmt.Errorf("%w: %q at row %d column %d", ErrBadCell, ch, r, c)
			}
		}
	}

	return out, nil
}

// InBounds reports whether (col,row) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(col, row int) bool {
	return col >= 0 && col < gg.Width && row >= 0 && row < gg.Height
}

// NodeAt returns the map node of the cell at (col,row).
func (gg *GridGraph) NodeAt(col, row int) core.Node {
	return core.Node{X: gg.Origin.X + col, Y: gg.Origin.Y + gg.Height - 1 - row}
}

// CellAt returns the cell lying on map node n.
func (gg *GridGraph) CellAt(n core.Node) (Cell, bool) {
	col, row := n.X-gg.Origin.X, gg.Origin.Y+gg.Height-1-n.Y
	if !gg.InBounds(col, row) {
		return Cell{}, false
	}

	return Cell{Node: n, Value: gg.CellValues[row][col]}, true
}

// IsLand reports whether the cell at (col,row) can be entered.
func (gg *GridGraph) IsLand(col, row int) bool {
	return gg.CellValues[row][col] >= gg.LandThreshold
}

// ToGraph converts the grid into a map. Orthogonally adjacent land cells
// are joined by an edge weighing the larger of their two values; a land
// cell next to an Obstacle gets a blocked edge toward it. Land cells with
// no land or obstacle neighbor do not appear in the map.
// Complexity: O(W×H) time and memory.
func (gg *GridGraph) ToGraph() *core.Graph {
	g := core.NewGraph()
	for row := 0; row < gg.Height; row++ {
		for col := 0; col < gg.Width; col++ {
			if col+1 < gg.Width {
				gg.join(g, col, row, col+1, row, core.East)
			}
			if row > 0 {
				gg.join(g, col, row, col, row-1, core.North)
			}
		}
	}

	return g
}

// join adds the edge leaving (c1,r1) by d toward (c2,r2), if any.
func (gg *GridGraph) join(g *core.Graph, c1, r1, c2, r2 int, d core.Direction) {
	w, ok := gg.weight(gg.CellValues[r1][c1], gg.CellValues[r2][c2])
	if !ok {
		return
	}
	a := core.Endpoint{Node: gg.NodeAt(c1, r1), Direction: d}
	b := core.Endpoint{Node: gg.NodeAt(c2, r2), Direction: d.Turned()}
	// weight only yields positive or Blocked values
	_ = g.AddEdge(a, b, w)
}

func (gg *GridGraph) weight(a, b int) (core.Weight, bool) {
	landA, landB := a >= gg.LandThreshold, b >= gg.LandThreshold
	switch {
	case landA && landB:
		return core.Weight(max(a, b)), true
	case landA && b == Obstacle, landB && a == Obstacle:
		return core.Blocked, true
	default:
		return 0, false
	}
}
