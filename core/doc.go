// Package core provides the fundamental in-memory Graph implementation
// consumed by the matching solver.
//
// It offers thread-safe methods to mutate and query vertices and edges.
// All mutations acquire a write lock; queries acquire a read lock, so a
// graph may be read concurrently by several solver invocations.
//
// # Determinism
//
// Enumeration surfaces are deterministic by contract:
//
//   - Vertices() returns IDs sorted lexicographically ascending.
//   - Edges() returns edges sorted by Edge.ID ascending; edge IDs are
//     monotonic textual identifiers ("e1", "e2", ...).
//   - Neighbors(id) sorts incident edges by Edge.ID ascending.
//
// Algorithms that iterate these surfaces therefore behave identically on
// identical inputs, which the matching solver relies on.
//
// # Configuration
//
// A Graph is configured once at construction through functional options:
//
//	g := core.NewGraph(core.WithWeighted())          // undirected, weighted
//	g := core.NewGraph(core.WithDirected(true))      // directed
//	g := core.NewGraph(core.WithMultiEdges())        // parallel edges allowed
//	g := core.NewGraph(core.WithLoops())             // self-loops allowed
//
// The flags are immutable afterwards and queryable via Directed(),
// Weighted(), Multigraph(), Looped() and MixedEdges(); consumers such as
// the matching package use them to reject unsupported graph kinds before
// doing any work.
//
// # Errors
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//	ErrMixedEdgesNotAllowed - per-edge direction override without mixed mode.
package core
