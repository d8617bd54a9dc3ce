// Edge lifecycle and queries. Edges() returns edges sorted by Edge.ID
// ascending; edge IDs are monotonic textual identifiers ("e1", "e2", ...).

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for generated edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates a new edge, optionally directed in a mixed graph, and
// returns its generated ID.
//
// Constraints enforced before any mutation:
//   - empty endpoint IDs ⇒ ErrEmptyVertexID
//   - non-zero weight on an unweighted graph ⇒ ErrBadWeight
//   - from == to without WithLoops ⇒ ErrLoopNotAllowed
//   - per-edge options without WithMixedEdges ⇒ ErrMixedEdgesNotAllowed
//   - duplicate (from,to) without WithMultiEdges ⇒ ErrMultiEdgeNotAllowed
//
// Missing endpoints are created automatically. Undirected edges are mirrored
// in the adjacency index so HasEdge and Neighbors work from both sides.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	// Per-edge overrides are only legal in mixed graphs.
	if len(opts) > 0 && !g.allowMixed {
		return "", ErrMixedEdgesNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.allowMulti {
		if inner := g.adjacency[from][to]; len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}
	for _, opt := range opts {
		opt(e)
	}

	g.edges[eid] = e
	ensureAdjacency(g, from, to)
	g.adjacency[from][to][eid] = struct{}{}
	if !e.Directed && from != to {
		ensureAdjacency(g, to, from)
		g.adjacency[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// RemoveEdge deletes one edge (and its undirected mirror) by ID.
// Returns ErrEdgeNotFound when the edge is absent.
// Complexity: O(1) removal + adjacency cleanup.
func (g *Graph) RemoveEdge(eid string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)
	cleanupAdjacency(g)

	return nil
}

// HasEdge reports whether at least one edge from→to exists. Undirected
// edges are mirrored, so HasEdge works from either endpoint.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// GetEdge returns the Edge with the given ID, or ErrEdgeNotFound.
// The returned *Edge is read-only by convention.
// Complexity: O(1).
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by Edge.ID ascending (stable order).
// Each edge appears exactly once regardless of directedness.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeIDLess(out[i].ID, out[j].ID) })

	return out
}

// edgeIDLess orders generated edge IDs numerically: shorter IDs first, ties
// broken lexicographically, so "e2" sorts before "e10".
func edgeIDLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// HasDirectedEdges reports whether at least one edge has Directed == true.
// Complexity: O(E).
func (g *Graph) HasDirectedEdges() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.edges {
		if e.Directed {
			return true
		}
	}

	return false
}

// FilterEdges removes all edges failing the predicate. pred must be pure
// and must not mutate the graph.
// Complexity: O(E) scan + adjacency cleanup.
func (g *Graph) FilterEdges(pred func(*Edge) bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for eid, e := range g.edges {
		if !pred(e) {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}
	cleanupAdjacency(g)
}

// nextEdgeID returns a new unique textual edge ID ("e" + decimal).
// The monotonic counter keeps Edges() ordering equal to insertion order.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
