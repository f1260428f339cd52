// SPDX-License-Identifier: MIT
// Package core_test verifies half-edge storage, symmetric overwrite,
// blocked lookups and route length computation.

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gridmap/core"
	"github.com/stretchr/testify/require"
)

// TestGraph_Integrity ASSERTS the full half-edge map of the reference planet.
func TestGraph_Integrity(t *testing.T) {
	g := NewReferenceGraph(t)

	want := map[core.Node]map[core.Direction]core.Link{
		N(0, 0): {
			core.North: {Node: N(0, 1), Direction: core.South, Weight: 1},
			core.East:  {Node: N(1, 0), Direction: core.West, Weight: 2},
			core.West:  {Node: N(0, 1), Direction: core.West, Weight: 3},
		},
		N(0, 1): {
			core.South: {Node: N(0, 0), Direction: core.North, Weight: 1},
			core.West:  {Node: N(0, 0), Direction: core.West, Weight: 3},
			core.North: {Node: N(0, 2), Direction: core.South, Weight: 17},
		},
		N(0, 2): {
			core.South: {Node: N(0, 1), Direction: core.North, Weight: 17},
			core.North: {Node: N(0, 3), Direction: core.South, Weight: 2},
			core.East:  {Node: N(2, 2), Direction: core.West, Weight: 4},
		},
		N(0, 3): {
			core.South: {Node: N(0, 2), Direction: core.North, Weight: 2},
			core.North: {Node: N(0, 3), Direction: core.West, Weight: 4},
			core.West:  {Node: N(0, 3), Direction: core.North, Weight: 4},
			core.East:  {Node: N(2, 2), Direction: core.North, Weight: 18},
		},
		N(1, 0): {
			core.West:  {Node: N(0, 0), Direction: core.East, Weight: 2},
			core.North: {Node: N(2, 2), Direction: core.South, Weight: 3},
		},
		N(2, 2): {
			core.West:  {Node: N(0, 2), Direction: core.East, Weight: 4},
			core.North: {Node: N(0, 3), Direction: core.East, Weight: 18},
			core.South: {Node: N(1, 0), Direction: core.North, Weight: 3},
		},
	}
	require.Equal(t, want, g.Paths())
	require.Equal(t, []core.Node{N(0, 0), N(0, 1), N(0, 2), N(0, 3), N(1, 0), N(2, 2)}, g.Nodes())
	require.Equal(t, 6, g.NodeCount())
	require.Equal(t, 9, g.EdgeCount())

	stats := g.Stats()
	require.Equal(t, 6, stats.NodeCount)
	require.Equal(t, 9, stats.EdgeCount)
	require.Equal(t, 18, stats.HalfEdgeCount)
	require.Zero(t, stats.BlockedEdgeCount)
}

func TestGraph_Empty(t *testing.T) {
	g := core.NewGraph()
	require.Empty(t, g.Paths())
	require.Empty(t, g.Nodes())
	require.False(t, g.HasNode(N(0, 0)))

	nbs := g.Neighbors(N(0, 0))
	require.NotNil(t, nbs)
	require.Empty(t, nbs)
	require.False(t, g.IsBlocked(N(0, 0), core.North))
}

// TestAddEdge_Idempotent ASSERTS duplicate reports do not change the map,
// and a new weight rewrites both halves.
func TestAddEdge_Idempotent(t *testing.T) {
	g := core.NewGraph()
	a, b := core.At(0, 0, core.North), core.At(0, 1, core.South)

	require.NoError(t, g.AddEdge(a, b, 5))
	once := g.Paths()
	require.NoError(t, g.AddEdge(a, b, 5))
	require.Equal(t, once, g.Paths())
	require.Equal(t, 1, g.EdgeCount())

	// Correction: the remote authority reports the edge blocked.
	require.NoError(t, g.AddEdge(a, b, core.Blocked))
	la, ok := g.Link(a)
	require.True(t, ok)
	lb, ok := g.Link(b)
	require.True(t, ok)
	require.Equal(t, core.Blocked, la.Weight)
	require.Equal(t, core.Blocked, lb.Weight)
	require.True(t, g.IsBlocked(a.Node, a.Direction))
	require.True(t, g.IsBlocked(b.Node, b.Direction))

	// Reported from the other side with a positive weight: reopened symmetrically.
	require.NoError(t, g.AddEdge(b, a, 7))
	la, _ = g.Link(a)
	lb, _ = g.Link(b)
	require.Equal(t, core.Weight(7), la.Weight)
	require.Equal(t, core.Weight(7), lb.Weight)
	require.Equal(t, 1, g.EdgeCount())
}

// TestAddEdge_RepointDropsStaleReciprocal ASSERTS symmetry survives when an
// endpoint is re-pointed at a different neighbor.
func TestAddEdge_RepointDropsStaleReciprocal(t *testing.T) {
	g := core.NewGraph()
	a := core.At(0, 0, core.East)
	require.NoError(t, g.AddEdge(a, core.At(1, 0, core.West), 2))
	require.NoError(t, g.AddEdge(a, core.At(2, 0, core.West), 4))

	l, ok := g.Link(a)
	require.True(t, ok)
	require.Equal(t, N(2, 0), l.Node)

	_, ok = g.Link(core.At(1, 0, core.West))
	require.False(t, ok, "stale reciprocal must be dropped")
	require.True(t, g.HasNode(N(1, 0)), "nodes are never removed")

	for n, m := range g.Paths() {
		for d, link := range m {
			back, ok := g.Link(link.Endpoint())
			require.True(t, ok, "reciprocal of %v %v missing", n, d)
			require.Equal(t, core.Endpoint{Node: n, Direction: d}, back.Endpoint())
			require.Equal(t, link.Weight, back.Weight)
		}
	}
}

func TestAddEdge_BlockedSelfReport(t *testing.T) {
	g := core.NewGraph()
	e := core.At(3, 3, core.North)
	require.NoError(t, g.AddEdge(e, e, core.Blocked))

	require.True(t, g.IsBlocked(e.Node, e.Direction))
	require.False(t, g.IsBlocked(e.Node, core.South))
	require.Equal(t, map[core.Direction]core.Link{
		core.North: {Node: e.Node, Direction: core.North, Weight: core.Blocked},
	}, g.Neighbors(e.Node))
	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, 1, g.Stats().BlockedEdgeCount)
}

func TestAddEdge_Errors(t *testing.T) {
	g := core.NewGraph()
	a, b := core.At(0, 0, core.North), core.At(0, 1, core.South)

	for _, w := range []core.Weight{0, -2, -100} {
		err := g.AddEdge(a, b, w)
		require.True(t, errors.Is(err, core.ErrInvalidWeight), "weight %d: err = %v", w, err)
	}
	err := g.AddEdge(core.At(0, 0, core.Direction(45)), b, 1)
	require.True(t, errors.Is(err, core.ErrInvalidDirection))
	err = g.AddEdge(a, core.At(0, 1, core.Direction(360)), 1)
	require.True(t, errors.Is(err, core.ErrInvalidDirection))

	require.Empty(t, g.Paths(), "rejected reports must not write anything")
}

func TestNeighbors_ReturnsCopy(t *testing.T) {
	g := NewReferenceGraph(t)
	nbs := g.Neighbors(N(1, 0))
	require.Len(t, nbs, 2)
	delete(nbs, core.West)
	require.Len(t, g.Neighbors(N(1, 0)), 2, "caller mutation must not leak into the graph")

	paths := g.Paths()
	paths[N(1, 0)][core.West] = core.Link{}
	l, _ := g.Link(core.At(1, 0, core.West))
	require.Equal(t, N(0, 0), l.Node)
}

func TestRouteLength(t *testing.T) {
	g := NewReferenceGraph(t)

	cases := []struct {
		name  string
		route core.Route
		want  int
	}{
		{"Empty", core.Route{}, 0},
		{"Nil", nil, 0},
		{"Single", core.Route{core.At(0, 0, core.North)}, 1},
		{"Shortest", core.Route{core.At(0, 0, core.East), core.At(1, 0, core.North), core.At(2, 2, core.West)}, 9},
		{"Detour", core.Route{core.At(0, 0, core.West), core.At(0, 1, core.North)}, 20},
		{"UnknownEndpoint", core.Route{core.At(0, 0, core.South)}, core.NoLength},
		{"UnknownNode", core.Route{core.At(9, 9, core.North)}, core.NoLength},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, g.RouteLength(tc.route))
		})
	}

	// Blocking a step short-circuits the whole route to -1.
	require.NoError(t, g.AddEdge(core.At(1, 0, core.North), core.At(2, 2, core.South), core.Blocked))
	require.Equal(t, core.NoLength, g.RouteLength(core.Route{
		core.At(0, 0, core.East), core.At(1, 0, core.North), core.At(2, 2, core.West),
	}))
}

func TestClone_Independent(t *testing.T) {
	g := NewReferenceGraph(t)
	c := g.Clone()
	require.Equal(t, g.Paths(), c.Paths())

	require.NoError(t, c.AddEdge(core.At(5, 5, core.North), core.At(5, 6, core.South), 1))
	require.False(t, g.HasNode(N(5, 5)))
	require.True(t, c.HasNode(N(5, 5)))
}
