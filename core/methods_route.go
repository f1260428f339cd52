package core

// NoLength is returned by RouteLength when a route cannot be used:
// it crosses a blocked edge or an endpoint the map does not know.
const NoLength = -1

// RouteLength sums the weights of the half-edges leaving each step of r.
// It returns NoLength (-1) as soon as a step is blocked or unknown, so
// callers can treat -1 uniformly at the edge and the route level.
// The empty route has length 0.
//
// Steps are not checked for continuity; each step is looked up on its own.
// Complexity: O(len(r)).
func (g *Graph) RouteLength(r Route) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	total := 0
	for _, step := range r {
		l, ok := g.paths[step.Node][step.Direction]
		if !ok || !l.Weight.Passable() {
			return NoLength
		}
		total += int(l.Weight)
	}

	return total
}
