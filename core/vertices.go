// Vertex lifecycle and queries. Vertices() returns IDs sorted
// lexicographically ascending; rely on it for reproducible iteration.

package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
// Returns ErrEmptyVertexID when id == "".
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	// Bootstrap the adjacency bucket so edge methods can rely on it.
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[string]map[string]struct{})
	}

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes the vertex and every edge incident to it.
// Returns ErrVertexNotFound when the vertex is absent.
// Complexity: O(V + E) in the worst case.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}

	// Drop every edge touching id from the catalog, then unlink adjacency.
	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}
	delete(g.adjacency, id)
	delete(g.vertices, id)
	cleanupAdjacency(g)

	return nil
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// VerticesMap returns a shallow copy of the vertex catalog keyed by ID.
// The returned map is safe to retain; the *Vertex values are shared and
// must be treated as read-only.
// Complexity: O(V).
func (g *Graph) VerticesMap() map[string]*Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]*Vertex, len(g.vertices))
	for id, v := range g.vertices {
		out[id] = v
	}

	return out
}
