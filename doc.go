// Package gridmap maps and explores worlds made of grid nodes joined by
// weighted paths, the way a line-following rover learns a planet: scan the
// exits of a node, travel one, report what was found, decide where to go next.
//
// What is in the box:
//
//	core/       - Node, Direction, Endpoint, Weight, Route and the thread-safe Graph
//	dijkstra/   - deterministic shortest routes that never cross blocked paths
//	bfs/        - hop-count reachability over passable paths
//	frontier/   - which exits are still undiscovered, and which one to take next
//	navigator/  - pose keeping, odometry correction, target mode
//	gridgraph/  - worlds drawn as text grids, islands
//	scenario/   - YAML worlds with a compact edge notation or a grid
//	simulate/   - drives a navigator over a known world
//	cmd/gridmap - the command-line front end
//
// Quick ASCII example (the reference world):
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
//
// The shortest route from (0,0) to (0,2) leaves East, goes North at (1,0)
// and West at (2,2), nine units in total.
//
//	go install github.com/katalvlaran/gridmap/cmd/gridmap@latest
package gridmap
