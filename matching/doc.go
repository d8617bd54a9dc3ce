// Package matching implements maximum-weight matching on general
// (non-bipartite) undirected weighted graphs represented by *core.Graph,
// using Edmonds' blossom algorithm expressed as a primal-dual
// linear-programming method (Galil's formulation).
//
// The solver maintains dual feasibility and complementary slackness while
// growing alternating trees from every exposed vertex, contracting
// odd-length cycles ("blossoms") into super-vertices and expanding them
// again when their dual value reaches zero. An outer loop of stages (one
// matching-size increment each) drives an inner loop of substages (label
// propagation interleaved with dual-adjustment steps) until either an
// augmenting path is found or no further dual improvement is possible.
//
//   - Method: primal-dual blossom search with least-slack edge caches.
//
//   - Time:   O(V³) for a graph with V vertices.
//
//   - Memory: O(V + E) for the blossom arena, duals and adjacency.
//
// # Graph Support
//
// The algorithms operate on undirected simple *core.Graph instances:
//
//	– Weighted or unweighted graphs (unweighted edges count as weight 1).
//	– Self-loops, when the graph permits them, are ignored.
//	– Directed graphs and multigraphs are rejected before any computation.
//
// # API
//
// Options configures both entry points:
//
//	type Options struct {
//	    MaxCardinality bool       // maximize cardinality first, weight second
//	    Weight         WeightFunc // edge weight accessor (nil = Edge.Weight, or 1 when unweighted)
//	    Epsilon        float64    // near-zero slack tolerance (default 1e-9)
//	    IntegerWeights bool       // declare a custom accessor integral
//	    Verify         bool       // run the complementary-slackness self-test
//	    Verbose        bool       // debug-log stages and dual adjustments
//	}
//
// Use DefaultOptions() to obtain production-safe defaults. The entry points
// share the same signature:
//
//	func MaxWeightMatching(g *core.Graph, opts Options) (Result, error)
//	func MinWeightMatching(g *core.Graph, opts Options) (Result, error)
//
// MaxWeightMatching returns a matching of maximum total weight; with
// MaxCardinality it returns the maximum-weight matching among all
// maximum-cardinality matchings. MinWeightMatching substitutes each weight
// w with (1 + maxWeight) − w and delegates with MaxCardinality forced,
// yielding the minimum-weight matching among maximum-cardinality matchings.
//
// Each Result lists every matched pair exactly once (Pairs, normalized and
// sorted), the symmetric partner map (Mate) and the total matched weight.
//
// # Determinism
//
// Vertices are indexed in lexicographic ID order and edges scanned in
// insertion order, so repeated runs on identical input produce identical
// results. When several matchings share the optimum weight, the returned
// edge set is one fixed representative of that optimum.
//
// # Precision
//
// With non-integer weights, near-zero slack comparisons use Options.Epsilon;
// a slightly suboptimal matching may be accepted within that tolerance.
// This is a documented approximation, not an error. With integer weights
// the computation is exact and Options.Verify can certify optimality
// post-hoc via complementary slackness.
//
// # Errors
//
//	ErrDirectedGraph     - the graph kind permits directed edges.
//	ErrMultigraph        - the graph kind permits parallel edges.
//	ErrVerifyNonInteger  - Verify requested for non-integer weights.
//	ErrOptimalityViolated - the self-test found an implementation defect.
//
// # Concurrency
//
// The solver is a pure function: all mutable state lives in one solver
// value constructed per call, so independent graphs can be matched
// concurrently by an external worker pool with zero shared mutation.
// Cancellation, if needed, is the caller's responsibility; the algorithm
// terminates in bounded time for any finite input.
package matching
