// File: methods_edges.go
// Role: Half-edge lifecycle & queries: AddEdge, Link, Neighbors, IsBlocked, EdgeCount.
// Determinism:
//   - AddEdge is idempotent for identical arguments; a new weight overwrites both halves.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock; results are copies.
// AI-HINT (file):
//   - Weight 0 (or < -1) returns ErrInvalidWeight; nothing is written.
//   - Absence of an endpoint is "unknown", never "blocked".

package core

import "fmt"

// AddEdge stores the undirected edge from↔to with weight w as two
// symmetric half-edges, overwriting any previous half-edge at either
// endpoint.
//
// Steps:
//  1. Validate weight and both directions.
//  2. Lock mu.
//  3. Drop stale reciprocals: if (from) or (to) previously pointed elsewhere,
//     the old far side no longer points back.
//  4. Write (from) → (to, w) and (to) → (from, w).
//
// Geometric consistency (that w units along from.Direction reach to.Node)
// is the caller's responsibility.
//
// Complexity: O(1).
func (g *Graph) AddEdge(from, to Endpoint, w Weight) error {
	// 1) Input validation
	if !w.Valid() {
		return fmt.Errorf("%w: got %d for %v -> %v", ErrInvalidWeight, w, from, to)
	}
	if !from.Direction.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidDirection, from)
	}
	if !to.Direction.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidDirection, to)
	}

	// 2) Insert under lock
	g.mu.Lock()
	defer g.mu.Unlock()

	g.unlinkStale(from, to)
	g.unlinkStale(to, from)

	g.ensureNode(from.Node)[from.Direction] = Link{Node: to.Node, Direction: to.Direction, Weight: w}
	g.ensureNode(to.Node)[to.Direction] = Link{Node: from.Node, Direction: from.Direction, Weight: w}

	return nil
}

// unlinkStale removes the reciprocal of the half-edge currently stored at
// at, if that half-edge is about to be re-pointed somewhere other than
// next. Caller holds mu.
func (g *Graph) unlinkStale(at, next Endpoint) {
	old, ok := g.paths[at.Node][at.Direction]
	if !ok || old.Endpoint() == next {
		return
	}
	far := g.paths[old.Node]
	if back, ok := far[old.Direction]; ok && back.Endpoint() == at {
		delete(far, old.Direction)
	}
}

// ensureNode returns the direction map of n, creating it if needed.
// Caller holds mu.
func (g *Graph) ensureNode(n Node) map[Direction]Link {
	m, ok := g.paths[n]
	if !ok {
		m = make(map[Direction]Link, 4)
		g.paths[n] = m
	}

	return m
}

// Link returns the far side of the half-edge leaving e, if known.
// Complexity: O(1).
func (g *Graph) Link(e Endpoint) (Link, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	l, ok := g.paths[e.Node][e.Direction]

	return l, ok
}

// Neighbors returns a copy of all half-edges leaving n, keyed by exit
// direction. An unknown node yields an empty (non-nil) map.
// Complexity: O(1) (at most four entries).
func (g *Graph) Neighbors(n Node) map[Direction]Link {
	g.mu.RLock()
	defer g.mu.RUnlock()
	src := g.paths[n]
	out := make(map[Direction]Link, len(src))
	for d, l := range src {
		out[d] = l
	}

	return out
}

// IsBlocked reports whether the edge leaving n via d is known to be
// blocked. Unknown nodes and endpoints are not blocked.
// Complexity: O(1).
func (g *Graph) IsBlocked(n Node, d Direction) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	l, ok := g.paths[n][d]

	return ok && l.Weight == Blocked
}

// EdgeCount returns the number of undirected edges (each symmetric pair
// of half-edges counts once; a self half-edge counts once).
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	count := 0
	for n, m := range g.paths {
		for d, l := range m {
			if (Endpoint{Node: n, Direction: d}).Compare(l.Endpoint()) <= 0 {
				count++
			}
		}
	}

	return count
}
