package core_test

import (
	"fmt"

	"github.com/katalvlaran/gridmap/core"
)

// ExampleGraph demonstrates reporting edges, correcting one, and querying.
func ExampleGraph() {
	// 1) Create an empty map.
	g := core.NewGraph()

	// 2) Report two traveled edges (auto-adds nodes):
	_ = g.AddEdge(core.At(0, 0, core.North), core.At(0, 1, core.South), 1)
	_ = g.AddEdge(core.At(0, 1, core.East), core.At(1, 1, core.West), 3)

	// 3) Inspect nodes and the length of a route:
	fmt.Println("Nodes:", g.Nodes())
	route := core.Route{core.At(0, 0, core.North), core.At(0, 1, core.East)}
	fmt.Println("Length:", g.RouteLength(route))

	// 4) A correction marks the second edge blocked on both ends:
	_ = g.AddEdge(core.At(0, 1, core.East), core.At(1, 1, core.West), core.Blocked)
	fmt.Println("Blocked from (1,1)?", g.IsBlocked(core.Node{X: 1, Y: 1}, core.West))
	fmt.Println("Length:", g.RouteLength(route))

	// Output:
	// Nodes: [(0,0) (0,1) (1,1)]
	// Length: 4
	// Blocked from (1,1)? true
	// Length: -1
}

// ExampleEndpoint_Advance shows how a grid displacement measured by the
// odometry is turned into the arrival pose and the traveled edge endpoints.
func ExampleEndpoint_Advance() {
	start := core.At(0, 0, core.East)
	// Two cells ahead, one to the left, arriving after a left turn.
	arrival := start.Advance(-1, 2, core.West)

	fmt.Println("arrival:", arrival)
	fmt.Println("edge:", start, "->", arrival.Turned())

	// Output:
	// arrival: (2,1) N
	// edge: (0,0) E -> (2,1) S
}
