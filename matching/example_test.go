package matching_test

import (
	"fmt"

	"github.com/katalvlaran/lvlmatch/core"
	"github.com/katalvlaran/lvlmatch/matching"
)

// ExampleMaxWeightMatching pairs the vertices of a weighted path. The heavy
// middle edge outweighs the two outer edges combined.
func ExampleMaxWeightMatching() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("1", "2", 5)
	_, _ = g.AddEdge("2", "3", 11)
	_, _ = g.AddEdge("3", "4", 5)

	res, err := matching.MaxWeightMatching(g, matching.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("pairs: ", res.Pairs)
	fmt.Println("weight:", res.Weight)
	// Output:
	// pairs:  [[2 3]]
	// weight: 11
}

// ExampleMaxWeightMatching_maxCardinality shows the cardinality-first
// objective on the same path: two lighter pairs beat one heavy pair.
func ExampleMaxWeightMatching_maxCardinality() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("1", "2", 5)
	_, _ = g.AddEdge("2", "3", 11)
	_, _ = g.AddEdge("3", "4", 5)

	opts := matching.DefaultOptions()
	opts.MaxCardinality = true
	res, err := matching.MaxWeightMatching(g, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("pairs: ", res.Pairs)
	fmt.Println("weight:", res.Weight)
	// Output:
	// pairs:  [[1 2] [3 4]]
	// weight: 10
}

// ExampleMinWeightMatching selects the cheaper of the two perfect matchings
// of a 4-cycle; the reported weight uses the original edge weights.
func ExampleMinWeightMatching() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("1", "4", 2)
	_, _ = g.AddEdge("2", "3", 2)
	_, _ = g.AddEdge("1", "2", 1)
	_, _ = g.AddEdge("3", "4", 4)

	res, err := matching.MinWeightMatching(g, matching.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("pairs: ", res.Pairs)
	fmt.Println("weight:", res.Weight)
	// Output:
	// pairs:  [[1 4] [2 3]]
	// weight: 4
}

// ExampleResult_Size reads the partner map directly: Mate is symmetric and
// omits exposed vertices.
func ExampleResult_Size() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("a", "b", 6)
	_, _ = g.AddEdge("b", "c", 2)

	res, err := matching.MaxWeightMatching(g, matching.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("size:      ", res.Size())
	fmt.Println("mate of a: ", res.Mate["a"])
	_, matched := res.Mate["c"]
	fmt.Println("c matched: ", matched)
	// Output:
	// size:       1
	// mate of a:  b
	// c matched:  false
}
