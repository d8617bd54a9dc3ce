package matching_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlmatch/core"
	"github.com/katalvlaran/lvlmatch/matching"
)

// weightedGraph builds an undirected weighted graph from (u, v, w) triples.
func weightedGraph(t *testing.T, triples [][3]int64, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(append([]core.GraphOption{core.WithWeighted()}, opts...)...)
	for _, tr := range triples {
		_, err := g.AddEdge(itoa(tr[0]), itoa(tr[1]), tr[2])
		require.NoError(t, err)
	}

	return g
}

func itoa(n int64) string {
	if n < 0 {
		return "-" + itoa(-n)
	}
	if n < 10 {
		return string(rune('0' + n))
	}

	return itoa(n/10) + string(rune('0'+n%10))
}

// requireMatching asserts the fundamental matching property: no vertex
// appears in more than one pair, and Mate is involutive.
func requireMatching(t *testing.T, res matching.Result) {
	t.Helper()
	seen := make(map[string]bool)
	for _, pr := range res.Pairs {
		require.False(t, seen[pr[0]], "vertex %s matched twice", pr[0])
		require.False(t, seen[pr[1]], "vertex %s matched twice", pr[1])
		seen[pr[0]], seen[pr[1]] = true, true
	}
	for v, w := range res.Mate {
		require.Equal(t, v, res.Mate[w], "Mate must be involutive")
	}
}

// MatchingSuite exercises MaxWeightMatching on the canonical fixtures.
type MatchingSuite struct {
	suite.Suite
}

// TestWeightedPath verifies the path 1–2(5)–3(11)–4(5): the pure
// maximum-weight matching takes the single heavy middle edge, while the
// max-cardinality variant is forced onto the two outer edges.
func (s *MatchingSuite) TestWeightedPath() {
	require := require.New(s.T())
	g := weightedGraph(s.T(), [][3]int64{{1, 2, 5}, {2, 3, 11}, {3, 4, 5}})

	res, err := matching.MaxWeightMatching(g, matching.DefaultOptions())
	require.NoError(err)
	requireMatching(s.T(), res)
	require.Equal([][2]string{{"2", "3"}}, res.Pairs)
	require.Equal(11.0, res.Weight)

	opts := matching.DefaultOptions()
	opts.MaxCardinality = true
	res, err = matching.MaxWeightMatching(g, opts)
	require.NoError(err)
	requireMatching(s.T(), res)
	require.Equal([][2]string{{"1", "2"}, {"3", "4"}}, res.Pairs)
	require.Equal(10.0, res.Weight)
}

// TestSquare verifies the 4-cycle with edges (1,4,2),(2,3,2),(1,2,1),(3,4,4):
// the optimum pairs (1,2) with (3,4) for total weight 5.
func (s *MatchingSuite) TestSquare() {
	require := require.New(s.T())
	g := weightedGraph(s.T(), [][3]int64{{1, 4, 2}, {2, 3, 2}, {1, 2, 1}, {3, 4, 4}})

	res, err := matching.MaxWeightMatching(g, matching.DefaultOptions())
	require.NoError(err)
	requireMatching(s.T(), res)
	require.Equal([][2]string{{"1", "2"}, {"3", "4"}}, res.Pairs)
	require.Equal(5.0, res.Weight)
}

// TestTriangleMaxCardinality verifies that an odd cycle with uniform
// weights yields exactly one matched pair under max-cardinality.
func (s *MatchingSuite) TestTriangleMaxCardinality() {
	require := require.New(s.T())
	g := weightedGraph(s.T(), [][3]int64{{1, 2, 1}, {2, 3, 1}, {1, 3, 1}})

	opts := matching.DefaultOptions()
	opts.MaxCardinality = true
	res, err := matching.MaxWeightMatching(g, opts)
	require.NoError(err)
	requireMatching(s.T(), res)
	require.Equal(1, res.Size(), "a triangle admits exactly one matched pair")
	require.Equal(1.0, res.Weight)
}

// TestNestedBlossom runs the 10-node fixture whose search contracts and
// re-expands nested blossoms before finding the optimum. Vertex IDs are
// zero-padded so their lexicographic order equals numeric order.
func (s *MatchingSuite) TestNestedBlossom() {
	require := require.New(s.T())
	pad := func(n int64) string {
		if n < 10 {
			return "0" + itoa(n)
		}

		return itoa(n)
	}

	g := core.NewGraph(core.WithWeighted())
	for _, tr := range [][3]int64{
		{1, 2, 45}, {1, 5, 45}, {2, 3, 50}, {3, 4, 45}, {4, 5, 50},
		{1, 6, 30}, {3, 9, 35}, {4, 8, 35}, {5, 7, 26}, {9, 10, 5},
	} {
		_, err := g.AddEdge(pad(tr[0]), pad(tr[1]), tr[2])
		require.NoError(err)
	}

	res, err := matching.MaxWeightMatching(g, matching.DefaultOptions())
	require.NoError(err)
	requireMatching(s.T(), res)
	require.Equal([][2]string{{"01", "06"}, {"02", "03"}, {"04", "08"}, {"05", "07"}, {"09", "10"}}, res.Pairs)
	require.Equal(30.0+50+35+26+5, res.Weight)
}

// TestSelfLoopIgnored verifies that a heavy self-loop neither appears in
// the matching nor influences the dual initialization.
func (s *MatchingSuite) TestSelfLoopIgnored() {
	require := require.New(s.T())
	g := weightedGraph(s.T(), [][3]int64{{1, 2, 5}, {2, 3, 11}, {3, 4, 5}}, core.WithLoops())
	_, err := g.AddEdge("2", "2", 1000000)
	require.NoError(err)

	res, err := matching.MaxWeightMatching(g, matching.DefaultOptions())
	require.NoError(err)
	requireMatching(s.T(), res)
	require.Equal([][2]string{{"2", "3"}}, res.Pairs, "self-loop must not disturb the optimum")
	require.Equal(11.0, res.Weight)
}

// TestEmptyGraph verifies the trivial cases: no vertices, and vertices
// without edges.
func (s *MatchingSuite) TestEmptyGraph() {
	require := require.New(s.T())

	res, err := matching.MaxWeightMatching(core.NewGraph(), matching.DefaultOptions())
	require.NoError(err)
	require.Empty(res.Pairs)
	require.Empty(res.Mate)
	require.Zero(res.Weight)

	g := core.NewGraph()
	require.NoError(g.AddVertex("A"))
	require.NoError(g.AddVertex("B"))
	res, err = matching.MaxWeightMatching(g, matching.DefaultOptions())
	require.NoError(err)
	require.Empty(res.Pairs)
}

// TestUnweightedGraphDefaultsToUnitWeights verifies that every edge of an
// unweighted graph counts as weight 1, making the optimum a maximum-
// cardinality matching.
func (s *MatchingSuite) TestUnweightedGraphDefaultsToUnitWeights() {
	require := require.New(s.T())
	g := core.NewGraph()
	for _, pr := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}} {
		_, err := g.AddEdge(pr[0], pr[1], 0)
		require.NoError(err)
	}

	res, err := matching.MaxWeightMatching(g, matching.DefaultOptions())
	require.NoError(err)
	requireMatching(s.T(), res)
	require.Equal([][2]string{{"a", "b"}, {"c", "d"}}, res.Pairs)
	require.Equal(2.0, res.Weight)
}

// TestRejectsUnsupportedGraphKinds verifies the fail-fast precondition
// checks: directed graphs and multigraphs are type errors, raised before
// any computation.
func (s *MatchingSuite) TestRejectsUnsupportedGraphKinds() {
	require := require.New(s.T())

	directed := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, err := matching.MaxWeightMatching(directed, matching.DefaultOptions())
	require.ErrorIs(err, matching.ErrDirectedGraph)

	mixed := core.NewGraph(core.WithMixedEdges(), core.WithWeighted())
	_, err = mixed.AddEdge("A", "B", 1, core.WithEdgeDirected(true))
	require.NoError(err)
	_, err = matching.MaxWeightMatching(mixed, matching.DefaultOptions())
	require.ErrorIs(err, matching.ErrDirectedGraph, "mixed graph with a directed edge")

	multi := core.NewGraph(core.WithMultiEdges(), core.WithWeighted())
	_, err = matching.MaxWeightMatching(multi, matching.DefaultOptions())
	require.ErrorIs(err, matching.ErrMultigraph, "multigraph kind is rejected even when empty")

	_, err = matching.MinWeightMatching(directed, matching.DefaultOptions())
	require.ErrorIs(err, matching.ErrDirectedGraph)
}

// TestMinWeightMatching verifies the negation trick on the square fixture:
// among the two perfect matchings the lighter one wins, and Result.Weight
// reports original weights.
func (s *MatchingSuite) TestMinWeightMatching() {
	require := require.New(s.T())
	g := weightedGraph(s.T(), [][3]int64{{1, 4, 2}, {2, 3, 2}, {1, 2, 1}, {3, 4, 4}})

	res, err := matching.MinWeightMatching(g, matching.DefaultOptions())
	require.NoError(err)
	requireMatching(s.T(), res)
	require.Equal([][2]string{{"1", "4"}, {"2", "3"}}, res.Pairs)
	require.Equal(4.0, res.Weight, "weight must be reported in original units")
}

// TestDeterminism verifies that repeated runs on identical input yield
// identical results, pair lists included.
func (s *MatchingSuite) TestDeterminism() {
	require := require.New(s.T())
	g := weightedGraph(s.T(), [][3]int64{
		{1, 2, 45}, {1, 5, 45}, {2, 3, 50}, {3, 4, 45}, {4, 5, 50},
		{1, 6, 30}, {3, 9, 35}, {4, 8, 35}, {5, 7, 26}, {9, 10, 5},
	})

	first, err := matching.MaxWeightMatching(g, matching.DefaultOptions())
	require.NoError(err)
	for i := 0; i < 5; i++ {
		again, err := matching.MaxWeightMatching(g, matching.DefaultOptions())
		require.NoError(err)
		require.Equal(first.Pairs, again.Pairs)
		require.Equal(first.Weight, again.Weight)
	}
}

// TestCustomWeightAccessor verifies that a caller-provided accessor
// overrides Edge.Weight entirely.
func (s *MatchingSuite) TestCustomWeightAccessor() {
	require := require.New(s.T())
	g := weightedGraph(s.T(), [][3]int64{{1, 2, 5}, {2, 3, 11}, {3, 4, 5}})

	// Invert the objective: prefer light edges.
	opts := matching.DefaultOptions()
	opts.MaxCardinality = true
	opts.Weight = func(e *core.Edge) float64 { return 100 - float64(e.Weight) }
	res, err := matching.MaxWeightMatching(g, opts)
	require.NoError(err)
	requireMatching(s.T(), res)
	require.Equal([][2]string{{"1", "2"}, {"3", "4"}}, res.Pairs)
}

// TestFractionalWeights verifies the float path on a fixture where halving
// deltas produce fractional duals.
func (s *MatchingSuite) TestFractionalWeights() {
	require := require.New(s.T())
	g := weightedGraph(s.T(), [][3]int64{{1, 2, 0}, {2, 3, 0}, {1, 3, 0}, {3, 4, 0}})

	opts := matching.DefaultOptions()
	weights := map[string]float64{"1|2": 2.5, "2|3": 2.5, "1|3": 2.5, "3|4": 1.5}
	opts.Weight = func(e *core.Edge) float64 { return weights[e.From+"|"+e.To] }
	res, err := matching.MaxWeightMatching(g, opts)
	require.NoError(err)
	requireMatching(s.T(), res)
	// (1,2)+(3,4) totals 4.0, beating any single triangle edge.
	require.Equal([][2]string{{"1", "2"}, {"3", "4"}}, res.Pairs)
	require.InDelta(4.0, res.Weight, 1e-9)
}

func TestMatchingSuite(t *testing.T) {
	suite.Run(t, new(MatchingSuite))
}
