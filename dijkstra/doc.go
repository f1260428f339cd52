// Package dijkstra provides a deterministic implementation of Dijkstra's
// shortest-route algorithm on the grid map of package core.
//
// Overview:
//
//   - ShortestRoute computes the minimum-weight route between two known nodes,
//     ignoring blocked edges (weight -1), and returns it as (node, exit) steps.
//   - Distances computes the full single-source distance table.
//   - Router binds a graph and options so callers (such as the frontier
//     tracker) can depend on a small interface instead of this package.
//
// Determinism:
//
//   - Among unsettled nodes with the same tentative distance, the one with the
//     lexicographically smallest (x, y) is settled first.
//   - Among parallel half-edges from a settled node to the same neighbor, the
//     cheapest is relaxed; equal weights keep the smallest exit direction
//     (North < East < South < West).
//   - A run that stops at the target settles exactly the prefix of nodes a full
//     run would settle, so ShortestRoute and Distances agree on every route.
//
// Edge cases:
//
//   - start == target (and known): empty, non-nil route, nil error.
//   - unknown start or target: ErrUnreachable wrapping ErrNodeNotFound.
//   - known target separated by blocked edges only: ErrUnreachable.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V), with a binary heap and lazy decrease-key.
//   - Space: O(V) for distance, predecessor and settled maps plus the snapshot.
//
// Thread safety:
//
//   - Each call works on a Paths() snapshot taken under the graph's read lock,
//     so queries may run concurrently with AddEdge on the same graph.
package dijkstra
