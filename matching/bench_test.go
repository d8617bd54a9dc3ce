package matching_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/katalvlaran/lvlmatch/core"
	"github.com/katalvlaran/lvlmatch/matching"
)

// buildRandomGraph creates a random undirected weighted graph with v
// vertices and edge probability p, seeded for reproducible benchmarks.
func buildRandomGraph(b *testing.B, v int, p float64, seed int64) *core.Graph {
	b.Helper()
	r := rand.New(rand.NewSource(seed))
	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < v; i++ {
		if err := g.AddVertex(strconv.Itoa(i)); err != nil {
			b.Fatal(err)
		}
	}
	for u := 0; u < v; u++ {
		for w := u + 1; w < v; w++ {
			if r.Float64() < p {
				if _, err := g.AddEdge(strconv.Itoa(u), strconv.Itoa(w), int64(r.Intn(100)+1)); err != nil {
					b.Fatal(err)
				}
			}
		}
	}

	return g
}

// BenchmarkMaxWeightMatching measures the solver on graphs of increasing
// size; the cubic growth in vertices dominates.
func BenchmarkMaxWeightMatching(b *testing.B) {
	cases := []struct {
		name     string
		vertices int
		edgeProb float64
		seed     int64
	}{
		{"Small", 50, 0.20, 42},
		{"Medium", 150, 0.10, 4242},
		{"Large", 300, 0.05, 424242},
	}

	for _, tc := range cases {
		tc := tc
		b.Run(tc.name, func(b *testing.B) {
			g := buildRandomGraph(b, tc.vertices, tc.edgeProb, tc.seed)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := matching.MaxWeightMatching(g, matching.DefaultOptions()); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkMaxCardinalityMatching measures the cardinality-first objective,
// which runs more stages than the pure weight objective.
func BenchmarkMaxCardinalityMatching(b *testing.B) {
	g := buildRandomGraph(b, 150, 0.10, 4242)
	opts := matching.DefaultOptions()
	opts.MaxCardinality = true
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matching.MaxWeightMatching(g, opts); err != nil {
			b.Fatal(err)
		}
	}
}
