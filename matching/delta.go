package matching

import (
	"math"

	"github.com/rs/zerolog/log"
)

// Delta-step cases of the primal-dual update, in evaluation order.
const (
	deltaNone     = iota // no finite candidate found yet
	deltaExpose          // delta1: minimum vertex dual; terminates the search
	deltaFreeEdge        // delta2: least slack from an S-vertex to a free vertex
	deltaSSEdge          // delta3: half the least slack between two S-blossoms
	deltaTDual           // delta4: minimum dual among top-level T-blossoms
)

// deltaStep performs one primal-dual adjustment when label propagation has
// stalled without finding an augmenting path.
//
// Four mutually exclusive candidate deltas are computed and the minimum
// finite one applied to all duals: S-vertices −delta, T-vertices +delta,
// top-level S-blossoms +2·delta, top-level T-blossoms −2·delta. Blossom
// duals are stored at half scale (dualvar[b] holds z_b/2, matching the ×2
// factor in the slack formula), so the stored values move by ±delta and
// the delta4 candidate is read unhalved. Depending
// on the winning case a new edge becomes allowed (its S endpoint is
// re-enqueued) or a T-blossom is expanded. A delta1 step certifies that no
// further improvement is possible; deltaStep then returns false and the
// stage ends without augmentation.
// Complexity: O(V) per step.
func (s *solver) deltaStep() bool {
	dtype := deltaNone
	var delta float64
	deltaedge, deltablossom := -1, -1

	// delta1: only without the max-cardinality constraint; relaxing every
	// vertex dual to zero ends the search at the global optimum.
	if !s.maxcard {
		dtype = deltaExpose
		delta = math.Max(0, s.minVertexDual())
	}

	// delta2: least slack of an edge from an S-vertex to a free vertex.
	for v := 0; v < s.nvertex; v++ {
		if s.label[s.inblossom[v]] == labelFree && s.bestedge[v] != -1 {
			d := s.slack(s.bestedge[v])
			if dtype == deltaNone || d < delta {
				delta = d
				dtype = deltaFreeEdge
				deltaedge = s.bestedge[v]
			}
		}
	}

	// delta3: half the least slack between two distinct top-level
	// S-blossoms, via the cached best edges.
	for b := 0; b < 2*s.nvertex; b++ {
		if s.blossomparent[b] == -1 && s.label[b] == labelS && s.bestedge[b] != -1 {
			kslack := s.slack(s.bestedge[b])
			if s.allinteger {
				assertf(math.Mod(kslack, 2) == 0, "odd S-S slack with integral duals")
			}
			d := kslack / 2
			if dtype == deltaNone || d < delta {
				delta = d
				dtype = deltaSSEdge
				deltaedge = s.bestedge[b]
			}
		}
	}

	// delta4: minimum dual among top-level T-blossoms; hitting zero forces
	// an expansion.
	for b := s.nvertex; b < 2*s.nvertex; b++ {
		if s.blossombase[b] >= 0 && s.blossomparent[b] == -1 &&
			s.label[b] == labelT &&
			(dtype == deltaNone || s.dualvar[b] < delta) {
			delta = s.dualvar[b]
			dtype = deltaTDual
			deltablossom = b
		}
	}

	if dtype == deltaNone {
		// No finite delta at all: force a final delta1 to certify
		// max-cardinality optimality and end the stage.
		dtype = deltaExpose
		delta = math.Max(0, s.minVertexDual())
	}

	// Apply the dual adjustment.
	for v := 0; v < s.nvertex; v++ {
		switch s.label[s.inblossom[v]] {
		case labelS:
			s.dualvar[v] -= delta
		case labelT:
			s.dualvar[v] += delta
		}
	}
	for b := s.nvertex; b < 2*s.nvertex; b++ {
		if s.blossombase[b] >= 0 && s.blossomparent[b] == -1 {
			switch s.label[b] {
			case labelS:
				s.dualvar[b] += delta
			case labelT:
				s.dualvar[b] -= delta
			}
		}
	}

	if s.verbose {
		log.Debug().Int("case", dtype).Float64("delta", delta).
			Msg("matching: dual adjustment")
	}

	switch dtype {
	case deltaExpose:
		return false // stage ends; the matching is optimal

	case deltaFreeEdge:
		// The edge became tight; scan it again from its S endpoint.
		s.allowedge[deltaedge] = true
		i := s.edges[deltaedge].i
		if s.label[s.inblossom[i]] == labelFree {
			i = s.edges[deltaedge].j
		}
		assertf(s.label[s.inblossom[i]] == labelS, "delta2 edge without S endpoint")
		s.queue = append(s.queue, i)

	case deltaSSEdge:
		s.allowedge[deltaedge] = true
		i := s.edges[deltaedge].i
		assertf(s.label[s.inblossom[i]] == labelS, "delta3 edge without S endpoint")
		s.queue = append(s.queue, i)

	case deltaTDual:
		s.expandBlossom(deltablossom, false)
	}

	return true
}

// minVertexDual returns the minimum dual value over all vertices.
func (s *solver) minVertexDual() float64 {
	min := s.dualvar[0]
	for v := 1; v < s.nvertex; v++ {
		if s.dualvar[v] < min {
			min = s.dualvar[v]
		}
	}

	return min
}
