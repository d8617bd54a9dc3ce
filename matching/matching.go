package matching

import (
	"sort"

	"github.com/katalvlaran/lvlmatch/core"
)

// edgeRec is one undirected edge of the matching problem after adaptation:
// endpoints as dense vertex indices, the objective weight wt (possibly
// substituted by MinWeightMatching) and the original weight for reporting.
type edgeRec struct {
	i, j     int
	wt, orig float64
}

// problem is the validated, index-addressed form of the input graph.
type problem struct {
	ids        []string  // dense index → vertex ID, lexicographic order
	edges      []edgeRec // self-loops dropped, weights resolved
	allinteger bool      // every wt is an exact integer
}

// MaxWeightMatching computes a maximum-weight matching of g.
//
// With opts.MaxCardinality it computes the maximum-weight matching among
// all maximum-cardinality matchings instead. Directed graphs and
// multigraphs are rejected before any computation; self-loops are ignored.
//
// Steps:
//  1. Normalize options and validate the graph kind (O(E)).
//  2. Index vertices (sorted) and collect edge records via the weight
//     accessor, dropping self-loops (O(V log V + E)).
//  3. Run the primal-dual blossom search (O(V³)).
//  4. Optionally verify complementary slackness (integer weights only).
//  5. Assemble the deterministic Result (O(V log V)).
//
// Complexity:
//
//	Time:   O(V³).
//	Memory: O(V + E).
func MaxWeightMatching(g *core.Graph, opts Options) (Result, error) {
	opts.normalize()

	if err := validateKind(g); err != nil {
		return Result{}, err
	}

	prob := buildProblem(g, opts)
	if opts.Verify && !prob.allinteger {
		return Result{}, ErrVerifyNonInteger
	}

	s := newSolver(prob, opts)
	s.run()

	if opts.Verify {
		if err := s.verifyOptimum(); err != nil {
			return Result{}, err
		}
	}

	return assemble(prob, s), nil
}

// MinWeightMatching computes the minimum-weight matching among all
// maximum-cardinality matchings of g.
//
// Each weight w is substituted with (1 + maxWeight) − w, which keeps every
// weight positive, and the result is delegated to the maximum-weight search
// with MaxCardinality forced. Result.Weight reports the original weights.
//
// Complexity: identical to MaxWeightMatching.
func MinWeightMatching(g *core.Graph, opts Options) (Result, error) {
	opts.normalize()
	opts.MaxCardinality = true

	if err := validateKind(g); err != nil {
		return Result{}, err
	}

	prob := buildProblem(g, opts)
	if opts.Verify && !prob.allinteger {
		return Result{}, ErrVerifyNonInteger
	}

	// Substitute weights; integrality is preserved because the offset
	// 1 + maxWeight is itself an integer whenever all weights are.
	var maxW float64
	for _, e := range prob.edges {
		if e.wt > maxW {
			maxW = e.wt
		}
	}
	for k := range prob.edges {
		prob.edges[k].wt = (1 + maxW) - prob.edges[k].orig
	}

	s := newSolver(prob, opts)
	s.run()

	if opts.Verify {
		if err := s.verifyOptimum(); err != nil {
			return Result{}, err
		}
	}

	return assemble(prob, s), nil
}

// validateKind rejects unsupported graph kinds before any state exists.
// The checks are kind-level: a mixed graph is acceptable only while it
// contains no directed edge, a multigraph is rejected outright.
func validateKind(g *core.Graph) error {
	if g.Directed() || g.HasDirectedEdges() {
		return ErrDirectedGraph
	}
	if g.Multigraph() {
		return ErrMultigraph
	}

	return nil
}

// buildProblem adapts the graph into dense indices and edge records.
//
// Vertices are indexed in lexicographic ID order and edges collected in
// insertion order — both deterministic surfaces of core.Graph — so the
// whole computation is reproducible. Self-loops are dropped here, which
// also keeps them out of the maxweight computation.
func buildProblem(g *core.Graph, opts Options) *problem {
	ids := g.Vertices()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	weight := opts.Weight
	allinteger := true
	if weight == nil {
		if g.Weighted() {
			weight = func(e *core.Edge) float64 { return float64(e.Weight) }
		} else {
			weight = func(*core.Edge) float64 { return 1 }
		}
	} else {
		// A custom accessor may return arbitrary reals; the caller opts
		// into the integer fast path explicitly.
		allinteger = opts.IntegerWeights
	}

	all := g.Edges()
	recs := make([]edgeRec, 0, len(all))
	for _, e := range all {
		if e.From == e.To {
			continue // self-loops never participate in a matching
		}
		w := weight(e)
		recs = append(recs, edgeRec{i: index[e.From], j: index[e.To], wt: w, orig: w})
	}

	return &problem{ids: ids, edges: recs, allinteger: allinteger}
}

// assemble converts the solver's endpoint-based mate array into the public
// Result: symmetric partner map, sorted pair list, total original weight.
func assemble(prob *problem, s *solver) Result {
	res := Result{Mate: make(map[string]string)}

	for v := 0; v < s.nvertex; v++ {
		p := s.mate[v]
		if p < 0 {
			continue // exposed vertex
		}
		w := s.endpoint[p]
		res.Mate[prob.ids[v]] = prob.ids[w]
		if v < w {
			res.Weight += prob.edges[p/2].orig
			a, b := prob.ids[v], prob.ids[w]
			if a > b {
				a, b = b, a
			}
			res.Pairs = append(res.Pairs, [2]string{a, b})
		}
	}
	sort.Slice(res.Pairs, func(i, j int) bool {
		if res.Pairs[i][0] != res.Pairs[j][0] {
			return res.Pairs[i][0] < res.Pairs[j][0]
		}

		return res.Pairs[i][1] < res.Pairs[j][1]
	})

	return res
}
