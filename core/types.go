// Package core defines the value types of the grid map (Node, Direction,
// Endpoint, Weight, Link, Route) and the thread-safe Graph that stores the
// discovered half-edges.
//
// All Graph APIs take an internal sync.RWMutex (write lock for AddEdge,
// read lock for every query), so a Graph can be shared across goroutines.
//
// Errors:
//
//	ErrInvalidWeight    - weight is 0 or a negative value other than Blocked.
//	ErrInvalidDirection - direction is not one of North, East, South, West.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidWeight indicates a weight that is neither positive nor the Blocked sentinel.
	ErrInvalidWeight = errors.New("core: weight must be positive or -1 (blocked)")

	// ErrInvalidDirection indicates a direction outside {0, 90, 180, 270}.
	ErrInvalidDirection = errors.New("core: direction must be one of 0, 90, 180, 270")
)

// Node is a discrete grid coordinate. Nodes compare and hash by value.
type Node struct {
	X int
	Y int
}

// Compare orders nodes lexicographically by (X, Y).
// It returns -1, 0 or +1.
func (n Node) Compare(o Node) int {
	switch {
	case n.X < o.X:
		return -1
	case n.X > o.X:
		return 1
	case n.Y < o.Y:
		return -1
	case n.Y > o.Y:
		return 1
	}

	return 0
}

// Less reports whether n sorts before o in (X, Y) order.
func (n Node) Less(o Node) bool { return n.Compare(o) < 0 }

// String renders the node as "(x,y)".
func (n Node) String() string { return fmt.Sprintf("(%d,%d)", n.X, n.Y) }

// Weight is the traversal cost of an edge. Positive values are passable,
// Blocked marks a known-blocked edge, 0 never occurs.
type Weight int

// Blocked is the sentinel weight of a known-blocked edge.
const Blocked Weight = -1

// Valid reports whether w is a legal edge weight (positive or Blocked).
func (w Weight) Valid() bool { return w > 0 || w == Blocked }

// Passable reports whether an edge with this weight can be traveled.
func (w Weight) Passable() bool { return w > 0 }

// Endpoint is one side of an edge: a node together with the exit
// direction used to leave it along that edge. Route steps and robot
// poses use the same shape.
type Endpoint struct {
	Node      Node
	Direction Direction
}

// At is shorthand for Endpoint{Node{x, y}, d}.
func At(x, y int, d Direction) Endpoint {
	return Endpoint{Node: Node{X: x, Y: y}, Direction: d}
}

// Compare orders endpoints by node, then by direction.
func (e Endpoint) Compare(o Endpoint) int {
	if c := e.Node.Compare(o.Node); c != 0 {
		return c
	}
	switch {
	case e.Direction < o.Direction:
		return -1
	case e.Direction > o.Direction:
		return 1
	}

	return 0
}

// String renders the endpoint as "(x,y) N".
func (e Endpoint) String() string { return e.Node.String() + " " + e.Direction.Short() }

// Link is the far side of a stored half-edge: the neighbor node, the
// direction at which the edge enters it, and the shared edge weight.
type Link struct {
	Node      Node
	Direction Direction
	Weight    Weight
}

// Endpoint returns the neighbor side of the link as an Endpoint.
func (l Link) Endpoint() Endpoint { return Endpoint{Node: l.Node, Direction: l.Direction} }

// Route is an ordered sequence of (node, exit direction) steps from a
// start node toward a target. The target itself is not a step.
// An empty, non-nil Route is the zero-step route (start == target).
type Route []Endpoint

// First returns the first step of the route, if any.
func (r Route) First() (Endpoint, bool) {
	if len(r) == 0 {
		return Endpoint{}, false
	}

	return r[0], true
}

// Graph is the discovered grid map: a mapping Node → Direction → Link.
//
// Invariant: if (A,dA) → (B,dB,w) is stored, (B,dB) → (A,dA,w) is stored too.
// Each node holds at most one half-edge per direction. Nodes are never
// removed; half-edges are only overwritten by later reports.
type Graph struct {
	mu sync.RWMutex // guards paths

	// paths[node][exit] = far side of the half-edge leaving node via exit.
	paths map[Node]map[Direction]Link
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{paths: make(map[Node]map[Direction]Link)}
}
