// File: methods_nodes.go
// Role: Node queries and whole-map snapshots: HasNode, Nodes, NodeCount, Paths, Clone.
// Determinism:
//   - Nodes() returns nodes sorted by (X, Y) asc.
// Concurrency:
//   - Read lock on mu; every result is a fresh copy owned by the caller.

package core

import "sort"

// HasNode reports whether n appears in the map (as the origin of at least
// one reported half-edge, past or present).
// Complexity: O(1).
func (g *Graph) HasNode(n Node) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.paths[n]

	return ok
}

// Nodes returns every known node sorted by (X, Y).
// Complexity: O(V log V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	out := make([]Node, 0, len(g.paths))
	for n := range g.paths {
		out = append(out, n)
	}
	g.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// NodeCount returns the number of known nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.paths)
}

// Paths returns a deep copy of the whole half-edge map.
// Algorithms use it to work on a consistent snapshot without holding the lock.
// Complexity: O(V).
func (g *Graph) Paths() map[Node]map[Direction]Link {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[Node]map[Direction]Link, len(g.paths))
	for n, m := range g.paths {
		cp := make(map[Direction]Link, len(m))
		for d, l := range m {
			cp[d] = l
		}
		out[n] = cp
	}

	return out
}

// Clone returns an independent Graph holding the same half-edges.
// Complexity: O(V).
func (g *Graph) Clone() *Graph {
	return &Graph{paths: g.Paths()}
}
