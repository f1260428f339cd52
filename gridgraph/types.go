package gridgraph

import (
	"errors"

	"github.com/katalvlaran/gridmap/core"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadThreshold indicates a LandThreshold below 1.
	ErrBadThreshold = errors.New("gridgraph: land threshold must be at least 1")
	// ErrBadCell indicates a character ParseRows does not understand.
	ErrBadCell = errors.New("gridgraph: unknown cell character")
)

// Obstacle marks a cell the explorer can see but not enter: every edge
// between it and a land neighbor is blocked.
const Obstacle = -1

// Cell is one grid cell placed on the map.
type Cell struct {
	Node  core.Node
	Value int
}

// GridOptions contains tunable parameters for grid conversion.
type GridOptions struct {
	// LandThreshold is the minimum cell value considered land.
	LandThreshold int
	// Origin is the map node of the bottom-left cell.
	Origin core.Node
}

// DefaultGridOptions returns LandThreshold=1 and Origin=(0,0).
func DefaultGridOptions() GridOptions {
	return GridOptions{LandThreshold: 1}
}

// GridGraph is an immutable rectangular cell matrix laid over the map.
// CellValues[row][col] holds the input value; row 0 is the northmost line,
// so the matrix reads the way the map is drawn.
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
	LandThreshold int
	Origin        core.Node
}
