// Package core provides the grid map that an exploring robot builds one
// observation at a time, with a minimal, composable API surface.
//
// The map G stores undirected edges as two directed half-edges:
//
//	paths[A][dA] = (B, dB, w)   and   paths[B][dB] = (A, dA, w)
//
//   - Nodes are integer grid coordinates (value types, comparable, hashable).
//   - Each node has at most four exits (North, East, South, West).
//   - Two nodes may be joined by several edges through different exits.
//   - A self half-edge (n,d) → (n,d) records a path that turned out blocked.
//   - Weight > 0 is a traversal cost; Blocked (-1) marks a known-blocked edge.
//
// Why a dedicated map instead of a generic graph?
//
//   - Edges are identified by their (node, exit) endpoints, not by opaque IDs.
//   - Re-reporting the same edge is idempotent; reporting a new weight corrects
//     both halves at once (a remote authority may fix an earlier guess).
//   - Nodes() is sorted by (X, Y), so every algorithm built on top can break
//     ties deterministically.
//
// Core Methods:
//
//	// Mutation
//	AddEdge(from, to Endpoint, w Weight) error   // O(1)
//
//	// Query
//	Link(e Endpoint) (Link, bool)                // O(1)
//	Neighbors(n Node) map[Direction]Link         // O(1), copy
//	IsBlocked(n Node, d Direction) bool          // O(1)
//	RouteLength(r Route) int                     // O(len r), -1 if blocked/unknown
//	HasNode(n Node) bool                         // O(1)
//	Nodes() []Node                               // O(V log V), sorted
//	Paths() map[Node]map[Direction]Link          // O(V), deep copy
//	Stats() *GraphStats                          // O(V)
//
// Value types:
//
//	Direction.Turned()          // +180 mod 360
//	Endpoint.Turned()           // same node, opposite exit
//	Endpoint.Advance(dx,dy,t)   // apply a robot-frame grid displacement
//
// Errors:
//
//	ErrInvalidWeight     – weight 0 or below -1 (caller contract violation)
//	ErrInvalidDirection  – direction outside {0, 90, 180, 270}
//
// Absence is never an error here: an unknown node has no neighbors and no
// blocked exits, which is the everyday state of an unexplored map.
package core
