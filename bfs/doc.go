// Package bfs walks the passable part of a grid map breadth-first.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: node → hops from the start
//   - Parent: node → the (node, exit) step that first reached it
//   - Blocked half-edges (weight -1) are never followed; WithFilterLink can
//     skip more.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Compute the set of nodes exploration can ever reach from a start, which
//     is what a finished exploration must have scanned.
//   - Fewest-hops routes, ignoring weights, via BFSResult.RouteTo.
//
// Determinism
//
//	Exits are scanned in ascending direction order (North, East, South, West),
//	so the visit sequence is fully reproducible.
//
// Complexity
//
//	Time O(V + E), memory O(V) plus one Paths() snapshot of the graph.
package bfs
