// Package dijkstra_test contains unit tests for the router.
// These tests validate the reference routes, unreachable targets, blocked
// shortcuts, tie-break rules, parallel edges and option handling.
package dijkstra_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridmap/core"
	"github.com/katalvlaran/gridmap/dijkstra"
)

func N(x, y int) core.Node { return core.Node{X: x, Y: y} }

type edge struct {
	from, to core.Endpoint
	w        core.Weight
}

// build creates a graph from edges and fails the test on any error.
func build(t *testing.T, edges []edge) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.from, e.to, e.w))
	}

	return g
}

// planet returns the reference planet with the weights that vary between
// the scenarios of the tests below.
func planet(w00N, w01N, w22W, w02N, w22N core.Weight) []edge {
	return []edge{
		{core.At(0, 0, core.North), core.At(0, 1, core.South), w00N},
		{core.At(0, 0, core.East), core.At(1, 0, core.West), 2},
		{core.At(0, 0, core.West), core.At(0, 1, core.West), 3},
		{core.At(0, 1, core.North), core.At(0, 2, core.South), w01N},
		{core.At(1, 0, core.North), core.At(2, 2, core.South), 3},
		{core.At(2, 2, core.West), core.At(0, 2, core.East), w22W},
		{core.At(0, 2, core.North), core.At(0, 3, core.South), w02N},
		{core.At(2, 2, core.North), core.At(0, 3, core.East), w22N},
		{core.At(0, 3, core.North), core.At(0, 3, core.West), 4},
	}
}

// ------------------------------------------------------------------------
// 1. Reference scenarios
// ------------------------------------------------------------------------

func TestShortestRoute_Reference(t *testing.T) {
	g := build(t, planet(1, 17, 4, 2, 18))

	route, err := dijkstra.ShortestRoute(g, N(0, 0), N(0, 2))
	require.NoError(t, err)
	require.Equal(t, core.Route{
		core.At(0, 0, core.East),
		core.At(1, 0, core.North),
		core.At(2, 2, core.West),
	}, route)
	require.Equal(t, 9, g.RouteLength(route))
}

func TestShortestRoute_TargetNotReachable(t *testing.T) {
	g := build(t, planet(1, 17, 4, 2, 18))

	route, err := dijkstra.ShortestRoute(g, N(0, 0), N(0, 4))
	require.Nil(t, route)
	require.True(t, errors.Is(err, dijkstra.ErrUnreachable))
	require.True(t, errors.Is(err, dijkstra.ErrNodeNotFound))

	_, err = dijkstra.ShortestRoute(g, N(7, 7), N(0, 0))
	require.True(t, errors.Is(err, dijkstra.ErrUnreachable))
	require.True(t, errors.Is(err, dijkstra.ErrNodeNotFound))
}

// TestShortestRoute_SameLength checks the tie-break rules on routes of equal cost.
func TestShortestRoute_SameLength(t *testing.T) {
	// (0,1)→(0,0) via S or W both cost 3: the smaller exit (S) wins.
	g3 := build(t, planet(3, 17, 4, 2, 18))
	route, err := dijkstra.ShortestRoute(g3, N(0, 1), N(2, 2))
	require.NoError(t, err)
	require.Equal(t, core.Route{
		core.At(0, 1, core.South),
		core.At(0, 0, core.East),
		core.At(1, 0, core.North),
	}, route)

	// (0,2) is reached at cost 18 both via (0,1) and via (2,2): the first
	// strictly better relaxation is kept.
	g4 := build(t, planet(1, 17, 13, 2, 18))
	route, err = dijkstra.ShortestRoute(g4, N(0, 0), N(0, 3))
	require.NoError(t, err)
	require.Equal(t, core.Route{
		core.At(0, 0, core.North),
		core.At(0, 1, core.North),
		core.At(0, 2, core.North),
	}, route)
	require.Equal(t, 20, g4.RouteLength(route))
}

func TestShortestRoute_TargetWithLoop(t *testing.T) {
	g5 := build(t, planet(1, 1, 4, core.Blocked, core.Blocked))

	route, err := dijkstra.ShortestRoute(g5, N(1, 0), N(0, 2))
	require.NoError(t, err)
	require.Equal(t, core.Route{
		core.At(1, 0, core.West),
		core.At(0, 0, core.North),
		core.At(0, 1, core.North),
	}, route)
}

// TestShortestRoute_BlockedShortcut ASSERTS a structural path made only of
// blocked edges does not count.
func TestShortestRoute_BlockedShortcut(t *testing.T) {
	g5 := build(t, planet(1, 1, 4, core.Blocked, core.Blocked))

	route, err := dijkstra.ShortestRoute(g5, N(0, 0), N(0, 3))
	require.Nil(t, route)
	require.True(t, errors.Is(err, dijkstra.ErrUnreachable))
	require.False(t, errors.Is(err, dijkstra.ErrNodeNotFound), "(0,3) is known")
}

// ------------------------------------------------------------------------
// 2. Edge cases
// ------------------------------------------------------------------------

func TestShortestRoute_SameNode(t *testing.T) {
	g := build(t, planet(1, 17, 4, 2, 18))
	for _, n := range g.Nodes() {
		route, err := dijkstra.ShortestRoute(g, n, n)
		require.NoError(t, err)
		require.NotNil(t, route)
		require.Empty(t, route)
	}
}

func TestShortestRoute_NilGraph(t *testing.T) {
	_, err := dijkstra.ShortestRoute(nil, N(0, 0), N(0, 1))
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

// TestShortestRoute_ParallelEdges ASSERTS the cheapest of several half-edges
// toward the same neighbor is used, with ties broken by exit direction.
func TestShortestRoute_ParallelEdges(t *testing.T) {
	g := build(t, []edge{
		{core.At(0, 0, core.West), core.At(1, 0, core.East), 9},
		{core.At(0, 0, core.North), core.At(1, 0, core.North), 5},
		{core.At(0, 0, core.East), core.At(1, 0, core.West), 2},
		{core.At(0, 0, core.South), core.At(1, 0, core.South), 2},
	})

	route, err := dijkstra.ShortestRoute(g, N(0, 0), N(1, 0))
	require.NoError(t, err)
	require.Equal(t, core.Route{core.At(0, 0, core.East)}, route, "E(90) beats S(180) at equal weight 2")

	// Blocking the winner falls back to the next cheapest passable half-edge.
	require.NoError(t, g.AddEdge(core.At(0, 0, core.East), core.At(1, 0, core.West), core.Blocked))
	route, err = dijkstra.ShortestRoute(g, N(0, 0), N(1, 0))
	require.NoError(t, err)
	require.Equal(t, core.Route{core.At(0, 0, core.South)}, route)
}

// TestShortestRoute_NodeTieBreak ASSERTS equal tentative distances settle the
// smaller coordinate first, which fixes the predecessor of a shared target.
func TestShortestRoute_NodeTieBreak(t *testing.T) {
	//   (0,1)─1─(1,1)
	//     1       1
	//   (0,0)─1─(1,0)
	g := build(t, []edge{
		{core.At(0, 0, core.East), core.At(1, 0, core.West), 1},
		{core.At(0, 0, core.North), core.At(0, 1, core.South), 1},
		{core.At(1, 0, core.North), core.At(1, 1, core.South), 1},
		{core.At(0, 1, core.East), core.At(1, 1, core.West), 1},
	})

	route, err := dijkstra.ShortestRoute(g, N(0, 0), N(1, 1))
	require.NoError(t, err)
	require.Equal(t, core.Route{core.At(0, 0, core.North), core.At(0, 1, core.East)}, route,
		"(0,1) is settled before (1,0) and relaxes (1,1) first")
}

func TestShortestRoute_CorrectionChangesRoute(t *testing.T) {
	g := build(t, planet(1, 17, 4, 2, 18))
	require.NoError(t, g.AddEdge(core.At(1, 0, core.North), core.At(2, 2, core.South), core.Blocked))

	route, err := dijkstra.ShortestRoute(g, N(0, 0), N(0, 2))
	require.NoError(t, err)
	require.Equal(t, core.Route{core.At(0, 0, core.North), core.At(0, 1, core.North)}, route)
	require.Equal(t, 18, g.RouteLength(route))
}

// TestShortestRoute_NeverBlocked ASSERTS every returned route has a usable length.
func TestShortestRoute_NeverBlocked(t *testing.T) {
	g := build(t, planet(1, 1, 4, core.Blocked, 18))
	nodes := g.Nodes()
	for _, a := range nodes {
		for _, b := range nodes {
			route, err := dijkstra.ShortestRoute(g, a, b)
			if err != nil {
				require.ErrorIs(t, err, dijkstra.ErrUnreachable)
				continue
			}
			require.GreaterOrEqual(t, g.RouteLength(route), 0, "%v -> %v: %v", a, b, route)
		}
	}
}

// ------------------------------------------------------------------------
// 3. Options and Distances
// ------------------------------------------------------------------------

func TestWithMaxDistance(t *testing.T) {
	g := build(t, planet(1, 17, 4, 2, 18))

	_, err := dijkstra.ShortestRoute(g, N(0, 0), N(0, 2), dijkstra.WithMaxDistance(8))
	require.ErrorIs(t, err, dijkstra.ErrUnreachable)

	route, err := dijkstra.ShortestRoute(g, N(0, 0), N(0, 2), dijkstra.WithMaxDistance(9))
	require.NoError(t, err)
	require.Len(t, route, 3)

	require.Panics(t, func() {
		_, _ = dijkstra.ShortestRoute(g, N(0, 0), N(0, 2), dijkstra.WithMaxDistance(-1))
	})
}

func TestDistances(t *testing.T) {
	g := build(t, planet(1, 1, 4, core.Blocked, core.Blocked))

	dist, err := dijkstra.Distances(g, N(0, 0))
	require.NoError(t, err)
	require.Equal(t, map[core.Node]int{
		N(0, 0): 0,
		N(0, 1): 1,
		N(0, 2): 2,
		N(1, 0): 2,
		N(2, 2): 5,
		N(0, 3): dijkstra.Infinity,
	}, dist)

	_, err = dijkstra.Distances(g, N(9, 9))
	require.ErrorIs(t, err, dijkstra.ErrNodeNotFound)
	_, err = dijkstra.Distances(nil, N(0, 0))
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

// TestDistances_AgreeWithRoutes ASSERTS the early-stopping search and the
// full table produce the same lengths.
func TestDistances_AgreeWithRoutes(t *testing.T) {
	g := build(t, planet(3, 17, 13, 2, 18))
	for _, src := range g.Nodes() {
		dist, err := dijkstra.Distances(g, src)
		require.NoError(t, err)
		for _, dst := range g.Nodes() {
			route, err := dijkstra.ShortestRoute(g, src, dst)
			if dist[dst] == dijkstra.Infinity {
				require.ErrorIs(t, err, dijkstra.ErrUnreachable)
				continue
			}
			require.NoError(t, err)
			require.Equal(t, dist[dst], g.RouteLength(route), "%v -> %v", src, dst)
		}
	}
}

func TestRouter(t *testing.T) {
	g := build(t, planet(1, 17, 4, 2, 18))
	r := dijkstra.NewRouter(g)

	route, err := r.ShortestRoute(N(0, 0), N(0, 2))
	require.NoError(t, err)
	require.Equal(t, 9, r.RouteLength(route))

	capped := dijkstra.NewRouter(g, dijkstra.WithMaxDistance(3))
	_, err = capped.ShortestRoute(N(0, 0), N(0, 2))
	require.ErrorIs(t, err, dijkstra.ErrUnreachable)
}
