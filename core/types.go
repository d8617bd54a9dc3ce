// This file declares Vertex, Edge, Graph, GraphOption, EdgeOption,
// sentinel errors, and the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrMixedEdgesNotAllowed indicates a per-edge direction override on a non-mixed graph.
	ErrMixedEdgesNotAllowed = errors.New("core: mixed-mode per-edge overrides not allowed")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data and is shared on shallow clones.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// IsNil reports whether the receiver is a typed nil; safe to call through
// interfaces without a panic.
func (v *Vertex) IsNil() bool { return v == nil }

// Edge represents a connection between two vertices.
//
// Each Edge has a unique ID, endpoints From→To, integer Weight, and a
// Directed flag that overrides the Graph's default directedness when mixed
// edges are enabled.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of the edge. Always 0 on unweighted graphs.
	Weight int64

	// Directed indicates this edge is one-way (true) or bidirectional (false)
	// when the Graph was constructed with mixed edge support.
	Directed bool
}

// IsNil reports whether the receiver is a typed nil.
func (e *Edge) IsNil() bool { return e == nil }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for all new edges
// (true = directed, false = undirected).
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMixedEdges lets per-edge directedness overrides take effect.
func WithMixedEdges() GraphOption {
	return func(g *Graph) { g.allowMixed = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeDirected overrides the Graph's default directedness for this edge.
// Only legal on graphs constructed with WithMixedEdges.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// Graph is the core in-memory graph data structure.
//
// It supports: directed vs. undirected, weighted vs. unweighted,
// parallel edges (multi-edges) and self-loops, all chosen at construction.
// A single RWMutex guards the vertex catalog, the edge catalog, and the
// adjacency index; mutations take the write lock, queries the read lock.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags (immutable after NewGraph).
	directed   bool // default directedness
	weighted   bool // allow non-zero weights
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops
	allowMixed bool // allow per-edge directedness overrides

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[(from)Vertex.ID][(to)Vertex.ID][Edge.ID] = struct{}{}
	adjacency map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default, a Graph is undirected, unweighted, no loops, no multi-edges.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	DirectedDefault     bool
	Weighted            bool
	AllowsMulti         bool
	AllowsLoops         bool
	MixedMode           bool
	VertexCount         int
	EdgeCount           int
	DirectedEdgeCount   int
	UndirectedEdgeCount int
}
