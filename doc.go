// Package lvlmatch computes optimal matchings on general weighted graphs.
//
// 🚀 What is lvlmatch?
//
//	A focused library built around one hard algorithm:
//		• Core primitives: create vertices & edges, mutate safely under locks
//		• Maximum-weight matching: Edmonds' blossom algorithm in Galil's
//		  primal-dual formulation, O(V³), deterministic
//		• Maximum-cardinality and minimum-weight variants on top of it
//		• Optional complementary-slackness self-verification (integer weights)
//
// ✨ Why choose lvlmatch?
//
//   - Faithful – a full blossom implementation, not a greedy approximation
//   - Deterministic – identical inputs always yield the same optimum weight
//   - Pure Go – no cgo; each call owns its solver state, so independent
//     graphs can be solved concurrently
//   - Extensible – custom weight accessors, epsilon tuning, verbose tracing
//
// Everything is organized under two subpackages:
//
//	core/     — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	matching/ — the blossom solver: MaxWeightMatching, MinWeightMatching
//
// Quick ASCII example:
//
//	1──5──2──11──3──5──4
//
//	a weighted path; the maximum-weight matching is {(2,3)}, while the
//	maximum-cardinality one is {(1,2),(3,4)}.
//
//	go get github.com/katalvlaran/lvlmatch
package lvlmatch
