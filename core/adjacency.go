// Neighborhood APIs (Neighbors, NeighborIDs, AdjacencyList) plus the
// adjacency-bucket helpers used by mutating code under the write lock.

package core

import "sort"

// Neighbors returns all edges incident to the given vertex ID.
//
// Policy:
//   - Directed edges: included only when e.From == id (outgoing).
//   - Undirected edges: included from either side; self-loops appear once.
//
// The result is sorted by Edge.ID ascending (insertion order) for
// reproducible iteration. Returned *Edge values are read-only by convention.
// Complexity: O(d log d) where d is the incident-edge count.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, edgeSet := range g.adjacency[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			if e.IsNil() {
				continue
			}
			// Directed policy: only outgoing edges.
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return edgeIDLess(out[i].ID, out[j].ID) })

	return out, nil
}

// NeighborIDs returns the unique vertex IDs adjacent to id, sorted
// lexicographically ascending.
// Complexity: O(d + k log k) where k is the unique-neighbor count.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if e.From == id {
			seen[e.To] = struct{}{}
			continue
		}
		if !e.Directed && e.To == id {
			seen[e.From] = struct{}{}
		}
	}

	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// AdjacencyList returns a snapshot mapping each "from" vertex ID to its
// incident edge IDs, each slice sorted ascending. The slices are freshly
// allocated and safe for the caller to retain.
// Complexity: O(V + E + Σ sort(deg(v))).
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	result := make(map[string][]string, len(g.adjacency))
	for from, toMap := range g.adjacency {
		var buf []string
		for _, edgeSet := range toMap {
			for eid := range edgeSet {
				buf = append(buf, eid)
			}
		}
		sort.Slice(buf, func(i, j int) bool { return edgeIDLess(buf[i], buf[j]) })
		result[from] = buf
	}

	return result
}

// ensureAdjacency initializes the nested adjacency buckets for (from, to).
// Must be called under the write lock.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency unlinks e.ID from its endpoint buckets (mirror included
// for undirected non-loop edges). Must be called under the write lock.
func removeAdjacency(g *Graph, e *Edge) {
	if m := g.adjacency[e.From][e.To]; m != nil {
		delete(m, e.ID)
		if len(m) == 0 {
			delete(g.adjacency[e.From], e.To)
		}
	}
	if !e.Directed && e.From != e.To {
		if m := g.adjacency[e.To][e.From]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacency[e.To], e.From)
			}
		}
	}
}

// cleanupAdjacency prunes empty nested buckets after bulk removals, keeping
// HasEdge and scans fast. Must be called under the write lock. The top-level
// bucket of a still-present vertex is kept even when empty.
func cleanupAdjacency(g *Graph) {
	for u, toMap := range g.adjacency {
		for v, edgeSet := range toMap {
			if len(edgeSet) == 0 {
				delete(toMap, v)
			}
		}
		if _, live := g.vertices[u]; !live && len(toMap) == 0 {
			delete(g.adjacency, u)
		}
	}
}
