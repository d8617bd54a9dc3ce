package matching

import (
	"fmt"
	"math"
)

// verifyOptimum checks complementary slackness and dual feasibility of the
// finished computation. Integer weights only: every comparison is exact.
//
// Conditions checked:
//  1. All vertex duals are non-negative (after the max-cardinality offset)
//     and all blossom duals are non-negative.
//  2. Every edge has non-negative slack, counting 2·dual of each blossom
//     enclosing both endpoints; matched edges have zero slack.
//  3. The mate mapping is involutive and consistent with the edge list.
//  4. Every exposed vertex has zero dual.
//  5. Every blossom with positive dual has an odd cycle whose non-base
//     connecting edges are all matched.
//
// A failure is an implementation defect and is surfaced as a diagnostic
// error wrapping ErrOptimalityViolated — never swallowed.
// Complexity: O(V·E).
func (s *solver) verifyOptimum() error {
	assertf(s.allinteger, "verifier invoked for non-integer weights")
	if s.nvertex == 0 {
		return nil
	}

	// Under max-cardinality the final forced delta1 may drive vertex duals
	// negative; a uniform offset restores feasibility.
	var vdualoffset float64
	if s.maxcard {
		vdualoffset = math.Max(0, -s.minVertexDual())
	}

	if s.minVertexDual()+vdualoffset < 0 {
		return fmt.Errorf("%w: negative vertex dual %g", ErrOptimalityViolated, s.minVertexDual())
	}
	for b := s.nvertex; b < 2*s.nvertex; b++ {
		if s.dualvar[b] < 0 {
			return fmt.Errorf("%w: negative blossom dual %g", ErrOptimalityViolated, s.dualvar[b])
		}
	}

	for k := 0; k < s.nedge; k++ {
		e := s.edges[k]
		slack := s.dualvar[e.i] + s.dualvar[e.j] - 2*e.wt

		// Add 2·dual of every blossom enclosing both endpoints: walk both
		// ancestor chains top-down and sum while they coincide.
		ichain := ancestorChain(s, e.i)
		jchain := ancestorChain(s, e.j)
		for x := 0; x < len(ichain) && x < len(jchain); x++ {
			if ichain[x] != jchain[x] {
				break
			}
			slack += 2 * s.dualvar[ichain[x]]
		}

		if slack < 0 {
			return fmt.Errorf("%w: edge (%d,%d) has negative slack %g",
				ErrOptimalityViolated, e.i, e.j, slack)
		}
		imatched := s.mate[e.i] >= 0 && s.mate[e.i]/2 == k
		jmatched := s.mate[e.j] >= 0 && s.mate[e.j]/2 == k
		if imatched || jmatched {
			if !imatched || !jmatched {
				return fmt.Errorf("%w: edge (%d,%d) matched on one side only",
					ErrOptimalityViolated, e.i, e.j)
			}
			if slack != 0 {
				return fmt.Errorf("%w: matched edge (%d,%d) has slack %g",
					ErrOptimalityViolated, e.i, e.j, slack)
			}
		}
	}

	for v := 0; v < s.nvertex; v++ {
		if s.mate[v] == noEndpoint && s.dualvar[v]+vdualoffset != 0 {
			return fmt.Errorf("%w: exposed vertex %d has dual %g",
				ErrOptimalityViolated, v, s.dualvar[v])
		}
	}

	for b := s.nvertex; b < 2*s.nvertex; b++ {
		if s.blossombase[b] < 0 || s.dualvar[b] <= 0 {
			continue
		}
		if len(s.blossomendps[b])%2 != 1 {
			return fmt.Errorf("%w: blossom %d has even cycle length", ErrOptimalityViolated, b)
		}
		for x := 1; x < len(s.blossomendps[b]); x += 2 {
			p := s.blossomendps[b][x]
			if s.mate[s.endpoint[p]] != p^1 || s.mate[s.endpoint[p^1]] != p {
				return fmt.Errorf("%w: blossom %d cycle edge not matched", ErrOptimalityViolated, b)
			}
		}
	}

	return nil
}

// ancestorChain returns the blossom chain of vertex v from the outermost
// enclosing blossom down to v itself.
func ancestorChain(s *solver, v int) []int {
	chain := []int{v}
	for s.blossomparent[chain[len(chain)-1]] != -1 {
		chain = append(chain, s.blossomparent[chain[len(chain)-1]])
	}
	reverseInts(chain)

	return chain
}
