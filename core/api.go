// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostics facade over Graph.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	NodeCount        int // known nodes
	EdgeCount        int // undirected edges (symmetric pairs)
	BlockedEdgeCount int // edges with weight Blocked
	HalfEdgeCount    int // stored directed half-edges
}

// Stats produces a deterministic snapshot of node and edge counts.
//
// Implementation:
//   - Stage 1: Acquire mu.RLock once.
//   - Stage 2: Walk every half-edge, counting each symmetric pair once
//     (the pair is attributed to its smaller endpoint).
//
// Complexity:
//   - Time O(V), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{NodeCount: len(g.paths)}
	for n, m := range g.paths {
		for d, l := range m {
			stats.HalfEdgeCount++
			if (Endpoint{Node: n, Direction: d}).Compare(l.Endpoint()) > 0 {
				continue // counted from the other side
			}
			stats.EdgeCount++
			if l.Weight == Blocked {
				stats.BlockedEdgeCount++
			}
		}
	}

	return &stats
}
