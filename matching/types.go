package matching

import (
	"errors"

	"github.com/katalvlaran/lvlmatch/core"
)

// ErrDirectedGraph is returned when the input graph kind permits directed
// edges (default-directed, or a mixed graph containing directed edges).
var ErrDirectedGraph = errors.New("matching: directed graphs are not supported")

// ErrMultigraph is returned when the input graph kind permits parallel edges.
var ErrMultigraph = errors.New("matching: multigraphs are not supported")

// ErrVerifyNonInteger is returned when Options.Verify is set but the edge
// weights are not declared integral (custom accessor without IntegerWeights).
var ErrVerifyNonInteger = errors.New("matching: optimality verification requires integer weights")

// ErrOptimalityViolated is wrapped by the self-test diagnostics; it signals
// an implementation defect, never a property of the input graph.
var ErrOptimalityViolated = errors.New("matching: optimality verification failed")

// defaultEpsilon is the near-zero slack tolerance applied when the caller
// does not set Options.Epsilon.
const defaultEpsilon = 1e-9

// WeightFunc maps an edge to its weight in the matching objective.
type WeightFunc func(e *core.Edge) float64

// Options configures MaxWeightMatching and MinWeightMatching.
//
//   - MaxCardinality: maximize the number of matched pairs first and the
//     total weight only among maximum-cardinality matchings.
//   - Weight: edge weight accessor. When nil, Edge.Weight is used on
//     weighted graphs and every edge counts as 1 on unweighted graphs.
//   - Epsilon: slack values within ±Epsilon of zero are treated as tight
//     (default 1e-9). Irrelevant for integer weights.
//   - IntegerWeights: declares that a custom Weight accessor returns exact
//     integers, enabling the integer fast path and the optional verifier.
//     Ignored when Weight is nil (built-in accessors are integral).
//   - Verify: run the complementary-slackness self-test after solving and
//     surface any violation as an error. Requires integer weights.
//   - Verbose: emit debug-level log events for stages, dual adjustments
//     and augmentations.
type Options struct {
	MaxCardinality bool
	Weight         WeightFunc
	Epsilon        float64
	IntegerWeights bool
	Verify         bool
	Verbose        bool
}

// DefaultOptions returns production-safe defaults: pure maximum-weight
// objective, built-in weight accessor, Epsilon 1e-9, no verification.
func DefaultOptions() Options {
	return Options{Epsilon: defaultEpsilon}
}

// normalize fills zero-valued fields with their defaults.
func (o *Options) normalize() {
	if o.Epsilon <= 0 {
		o.Epsilon = defaultEpsilon
	}
}

// Result holds the outcome of a matching computation.
type Result struct {
	// Mate maps every matched vertex to its partner; Mate[Mate[v]] == v.
	// Exposed (unmatched) vertices are absent.
	Mate map[string]string

	// Pairs lists each matched pair exactly once, endpoints in ascending
	// order within a pair and pairs sorted ascending. Deterministic.
	Pairs [][2]string

	// Weight is the total weight of the matched edges under the original
	// weight accessor (the pre-substitution weights for MinWeightMatching).
	Weight float64
}

// Size returns the number of matched pairs.
func (r Result) Size() int { return len(r.Pairs) }
