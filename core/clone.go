// Cloning and clearing graph instances. CloneEmpty/Clone carry over the
// edge-ID counter so textual IDs stay monotonic on the clone.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with identical configuration and vertices,
// but no edges. Vertex Metadata maps are shared, not deep-copied.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	if g.allowMixed {
		opts = append(opts, WithMixedEdges())
	}
	clone := NewGraph(opts...)
	// Preserve the edge-ID sequence so future AddEdge calls on the clone
	// never collide with IDs copied by Clone.
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		clone.adjacency[id] = make(map[string]map[string]struct{})
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges,
// and adjacency. Edge IDs and directedness are preserved.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.mu.RLock()
	defer g.mu.RUnlock()

	for eid, e := range g.edges {
		ne := &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight, Directed: e.Directed}
		clone.edges[eid] = ne
		ensureAdjacency(clone, e.From, e.To)
		clone.adjacency[e.From][e.To][eid] = struct{}{}
		if !e.Directed && e.From != e.To {
			ensureAdjacency(clone, e.To, e.From)
			clone.adjacency[e.To][e.From][eid] = struct{}{}
		}
	}

	return clone
}

// Clear resets the graph to an empty state while preserving configuration
// flags. The edge-ID counter restarts from "e1".
// Complexity: O(1).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[string]map[string]map[string]struct{})
	atomic.StoreUint64(&g.nextEdgeID, 0)
}
