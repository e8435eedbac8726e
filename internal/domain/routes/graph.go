// Package routes models direct connectivity between base locations.
package routes

// LocationGraph holds symmetric direct-connectivity edges between named
// locations. Reachability checks only direct adjacency; no multi-hop search
// is performed, because the graph is pre-populated as a complete graph over
// the configured location set.
type LocationGraph struct {
	adjacency map[string]map[string]bool
}

// NewLocationGraph returns an empty graph.
func NewLocationGraph() *LocationGraph {
	return &LocationGraph{
		adjacency: make(map[string]map[string]bool),
	}
}

// NewComplete returns a graph with a direct edge between every pair of
// distinct locations. This is the production configuration; it isolates the
// everything-reaches-everything assumption in one constructor.
func NewComplete(locations []string) *LocationGraph {
	g := NewLocationGraph()
	for _, a := range locations {
		for _, b := range locations {
			if a != b {
				g.AddRoute(a, b)
			}
		}
	}
	return g
}

// AddRoute registers a bidirectional edge between a and b.
func (g *LocationGraph) AddRoute(a, b string) {
	if g.adjacency[a] == nil {
		g.adjacency[a] = make(map[string]bool)
	}
	if g.adjacency[b] == nil {
		g.adjacency[b] = make(map[string]bool)
	}
	g.adjacency[a][b] = true
	g.adjacency[b][a] = true
}

// CanReach reports whether from has direct connectivity to to. A location
// always reaches itself if it is known to the graph; unknown locations are
// unreachable.
func (g *LocationGraph) CanReach(from, to string) bool {
	neighbors, ok := g.adjacency[from]
	if !ok {
		return false
	}
	if from == to {
		return true
	}
	return neighbors[to]
}

// Locations returns the number of known locations.
func (g *LocationGraph) Locations() int {
	return len(g.adjacency)
}
