// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for gridmap/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep the reference map in one place so every test reads the same planet.

package core_test

import (
	"testing"

	"github.com/katalvlaran/gridmap/core"
	"github.com/stretchr/testify/require"
)

// Common concurrency sizes used across core tests (avoid magic numbers in test bodies).
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// referenceEdge is one report of the reference map.
type referenceEdge struct {
	from, to core.Endpoint
	w        core.Weight
}

// referenceEdges RETURNS the nine edges of the reference map:
//
//	+--+
//	|  |
//	+-0,3------+
//	   |       |
//	  0,2-----2,2
//	   |      /
//	+-0,1    /
//	|  |    /
//	+-0,0-1,0
func referenceEdges() []referenceEdge {
	return []referenceEdge{
		{core.At(0, 0, core.North), core.At(0, 1, core.South), 1},
		{core.At(0, 0, core.East), core.At(1, 0, core.West), 2},
		{core.At(0, 0, core.West), core.At(0, 1, core.West), 3},
		{core.At(0, 1, core.North), core.At(0, 2, core.South), 17},
		{core.At(1, 0, core.North), core.At(2, 2, core.South), 3},
		{core.At(2, 2, core.West), core.At(0, 2, core.East), 4},
		{core.At(0, 2, core.North), core.At(0, 3, core.South), 2},
		{core.At(2, 2, core.North), core.At(0, 3, core.East), 18},
		{core.At(0, 3, core.North), core.At(0, 3, core.West), 4},
	}
}

// NewReferenceGraph BUILDS the reference map and fails the test on any error.
func NewReferenceGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range referenceEdges() {
		require.NoError(t, g.AddEdge(e.from, e.to, e.w), "AddEdge(%v, %v, %d)", e.from, e.to, e.w)
	}

	return g
}

// N is shorthand for core.Node{X: x, Y: y}.
func N(x, y int) core.Node { return core.Node{X: x, Y: y} }
