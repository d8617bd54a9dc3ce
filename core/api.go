// Thin public facade: configuration getters and the Stats snapshot.
// No algorithms or hidden state here; flags are immutable after NewGraph.

package core

// Weighted reports whether non-zero edge weights are permitted.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
// Complexity: O(1).
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}

// Directed reports the graph-wide default directedness applied to new edges.
// Per-edge overrides require MixedEdges() == true.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Looped reports whether self-loops (from == to) are permitted.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are
// permitted. This is a policy flag: it reports the graph kind, not whether
// any parallel edge currently exists.
// Complexity: O(1).
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}

// MixedEdges reports whether per-edge Directed overrides are permitted
// via WithEdgeDirected during AddEdge.
// Complexity: O(1).
func (g *Graph) MixedEdges() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMixed
}

// Stats produces a deterministic, read-only snapshot of configuration flags
// and catalog sizes, classifying edges by their Directed flag.
// Complexity: O(V + E).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		DirectedDefault: g.directed,
		Weighted:        g.weighted,
		AllowsMulti:     g.allowMulti,
		AllowsLoops:     g.allowLoops,
		MixedMode:       g.allowMixed,
		VertexCount:     len(g.vertices),
		EdgeCount:       len(g.edges),
	}
	for _, e := range g.edges {
		if e.Directed {
			stats.DirectedEdgeCount++
		} else {
			stats.UndirectedEdgeCount++
		}
	}

	return &stats
}
