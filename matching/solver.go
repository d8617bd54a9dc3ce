package matching

import (
	"github.com/rs/zerolog/log"
)

// Labels of top-level blossoms during a stage. The visited bit is a
// transient marker used only inside scanBlossom.
const (
	labelFree = 0 // unlabeled, outside every alternating tree
	labelS    = 1 // outer: reached through an even-length alternating path
	labelT    = 2 // inner: reached through an odd-length alternating path
	labelBit  = 4 // visited marker OR-ed onto labelS during ancestor scans
)

// noEndpoint marks the absence of an edge endpoint (tree roots, cleared
// best-edge caches, unmatched vertices).
const noEndpoint = -1

// assertf panics with a solver-internal diagnostic. The solver is a
// deterministic pure function with no external fault sources, so a trip
// always indicates an implementation defect.
func assertf(cond bool, msg string) {
	if !cond {
		panic("matching: internal: " + msg)
	}
}

// solver owns every piece of mutable state for one matching computation.
// A fresh instance is constructed per call and discarded afterwards, so
// independent computations never share mutation.
//
// The blossom forest is an arena: slots 0..nvertex-1 are the trivial
// blossoms (the vertices themselves), slots nvertex..2*nvertex-1 hold
// contracted blossoms and are recycled through unusedblossoms. Children and
// parents are plain indices into the same arena, so nested blossoms form a
// forest without reference cycles.
type solver struct {
	edges   []edgeRec
	nvertex int
	nedge   int

	maxweight  float64
	allinteger bool
	maxcard    bool
	eps        float64
	verbose    bool

	// endpoint[p] is the vertex at endpoint p; p encodes edge p/2, side p%2.
	// p^1 is always the opposite endpoint of the same edge.
	endpoint []int

	// neighbend[v] lists the remote endpoints of edges incident to v.
	neighbend [][]int

	// mate[v] is the remote endpoint of v's matched edge, or noEndpoint.
	mate []int

	// label and labelend cover the whole arena; labelend[b] is the endpoint
	// through which b acquired its label (noEndpoint at tree roots).
	label    []int
	labelend []int

	// inblossom[v] is the top-level blossom containing vertex v (v itself
	// when trivial).
	inblossom []int

	// Blossom arena records.
	blossomparent []int   // immediate enclosing blossom, or -1 when top-level
	blossomchilds [][]int // ordered cyclic child sequence (nil for vertices)
	blossombase   []int   // base vertex; -1 marks an unused arena slot
	blossomendps  [][]int // endpoints pairing consecutive children

	// Least-slack edge caches toward S-blossoms.
	bestedge         []int   // single best edge per arena slot, or -1
	blossombestedges [][]int // per non-trivial S-blossom: best edge per other S-blossom

	unusedblossoms []int // free list of arena slots nvertex..2*nvertex-1

	// dualvar[v] for vertices, dualvar[b] for blossoms; weights enter the
	// slack formula scaled ×2 so integer problems keep integral duals.
	// Blossom slots hold half the LP dual z_b, compensating the ×2 factor.
	dualvar []float64

	allowedge []bool // per edge: slack known to be zero (tight)
	queue     []int  // freshly labeled S-vertices awaiting a scan
}

// newSolver allocates the full solver state for the given problem.
// Complexity: O(V + E).
func newSolver(prob *problem, opts Options) *solver {
	n := len(prob.ids)
	m := len(prob.edges)

	s := &solver{
		edges:      prob.edges,
		nvertex:    n,
		nedge:      m,
		allinteger: prob.allinteger,
		maxcard:    opts.MaxCardinality,
		eps:        opts.Epsilon,
		verbose:    opts.Verbose,
	}

	for _, e := range s.edges {
		if e.wt > s.maxweight {
			s.maxweight = e.wt
		}
	}

	s.endpoint = make([]int, 2*m)
	for p := range s.endpoint {
		if p%2 == 0 {
			s.endpoint[p] = s.edges[p/2].i
		} else {
			s.endpoint[p] = s.edges[p/2].j
		}
	}

	s.neighbend = make([][]int, n)
	for k, e := range s.edges {
		s.neighbend[e.i] = append(s.neighbend[e.i], 2*k+1)
		s.neighbend[e.j] = append(s.neighbend[e.j], 2*k)
	}

	s.mate = make([]int, n)
	for v := range s.mate {
		s.mate[v] = noEndpoint
	}

	s.label = make([]int, 2*n)
	s.labelend = make([]int, 2*n)
	s.inblossom = make([]int, n)
	s.blossomparent = make([]int, 2*n)
	s.blossomchilds = make([][]int, 2*n)
	s.blossombase = make([]int, 2*n)
	s.blossomendps = make([][]int, 2*n)
	s.bestedge = make([]int, 2*n)
	s.blossombestedges = make([][]int, 2*n)
	s.dualvar = make([]float64, 2*n)

	for b := 0; b < 2*n; b++ {
		s.labelend[b] = noEndpoint
		s.blossomparent[b] = -1
		s.bestedge[b] = -1
		if b < n {
			s.inblossom[b] = b
			s.blossombase[b] = b
			s.dualvar[b] = s.maxweight
		} else {
			s.blossombase[b] = -1
		}
	}

	s.unusedblossoms = make([]int, 0, n)
	for b := n; b < 2*n; b++ {
		s.unusedblossoms = append(s.unusedblossoms, b)
	}

	s.allowedge = make([]bool, m)
	s.queue = make([]int, 0, n)

	return s
}

// slack returns the slack of edge k: dualvar[i] + dualvar[j] − 2·weight.
// Positive slack means the edge is not yet usable; zero marks it tight.
// Contributions of enclosing blossoms cancel for intra-blossom edges and
// are accounted for separately by the verifier.
func (s *solver) slack(k int) float64 {
	e := s.edges[k]

	return s.dualvar[e.i] + s.dualvar[e.j] - 2*e.wt
}

// blossomLeaves appends all leaf vertices of blossom b to buf and returns it.
func (s *solver) blossomLeaves(b int, buf []int) []int {
	if b < s.nvertex {
		return append(buf, b)
	}
	for _, t := range s.blossomchilds[b] {
		buf = s.blossomLeaves(t, buf)
	}

	return buf
}

// run executes the outer stage loop: each stage attempts to increase the
// matching size by one via an augmenting path; the algorithm terminates
// when a stage completes without augmenting.
func (s *solver) run() {
	if s.nvertex == 0 {
		return
	}

	for t := 0; t < s.nvertex; t++ {
		// Each stage rebuilds labels, best-edge caches, the allowed-edge
		// set and the queue from scratch; blossoms and duals persist.
		for b := 0; b < 2*s.nvertex; b++ {
			s.label[b] = labelFree
			s.bestedge[b] = -1
		}
		for b := s.nvertex; b < 2*s.nvertex; b++ {
			s.blossombestedges[b] = nil
		}
		for k := range s.allowedge {
			s.allowedge[k] = false
		}
		s.queue = s.queue[:0]

		// Every exposed vertex roots an alternating tree as an S-vertex.
		for v := 0; v < s.nvertex; v++ {
			if s.mate[v] == noEndpoint && s.label[s.inblossom[v]] == labelFree {
				s.assignLabel(v, labelS, noEndpoint)
			}
		}

		if s.verbose {
			log.Debug().Int("stage", t).Int("roots", len(s.queue)).
				Msg("matching: stage started")
		}

		if !s.runStage() {
			break // no augmenting path exists; the matching is optimal
		}

		// End-of-stage cleanup: expand S-blossoms whose dual fell to zero,
		// discarding all label and tree state.
		for b := s.nvertex; b < 2*s.nvertex; b++ {
			if s.blossomparent[b] == -1 && s.blossombase[b] >= 0 &&
				s.label[b] == labelS && s.dualvar[b] == 0 {
				s.expandBlossom(b, true)
			}
		}
	}
}

// runStage drives the substage loop of a single stage: label propagation
// until the queue empties, then one delta step, repeated until an
// augmenting path is found (true) or the duals certify optimality (false).
func (s *solver) runStage() bool {
	for {
		if s.scanQueue() {
			return true
		}

		// The queue is empty and no augmenting path was found: adjust the
		// duals. A delta1 step ends the whole computation.
		if !s.deltaStep() {
			return false
		}
	}
}

// scanQueue propagates labels from queued S-vertices, handling free-vertex
// attachment, blossom formation and augmenting-path completion. Returns
// true as soon as the matching has been augmented.
func (s *solver) scanQueue() bool {
	for len(s.queue) > 0 {
		// Pop the most recently labeled S-vertex.
		v := s.queue[len(s.queue)-1]
		s.queue = s.queue[:len(s.queue)-1]
		assertf(s.label[s.inblossom[v]] == labelS, "queued vertex lost its S-label")

		for _, p := range s.neighbend[v] {
			k := p / 2
			w := s.endpoint[p]
			if s.inblossom[v] == s.inblossom[w] {
				continue // intra-blossom edges carry no information
			}

			var kslack float64
			if !s.allowedge[k] {
				kslack = s.slack(k)
				if kslack <= s.eps {
					s.allowedge[k] = true
				}
			}

			if s.allowedge[k] {
				switch {
				case s.label[s.inblossom[w]] == labelFree:
					// (C1) w is free: graft it as a T-vertex; its mate
					// becomes an S-vertex inside assignLabel.
					s.assignLabel(w, labelT, p^1)

				case s.label[s.inblossom[w]] == labelS:
					// (C2) both ends are S: either a new blossom or an
					// augmenting path between two trees.
					base := s.scanBlossom(v, w)
					if base >= 0 {
						s.addBlossom(base, k)
					} else {
						s.augmentMatching(k)

						return true
					}

				case s.label[w] == labelFree:
					// (C3) w sits inside a T-blossom but carries no label
					// of its own yet; record the entry for a later expand.
					assertf(s.label[s.inblossom[w]] == labelT, "inner vertex outside T-blossom")
					s.label[w] = labelT
					s.labelend[w] = p ^ 1
				}

				continue
			}

			// Edge not yet allowed: remember it as a least-slack candidate
			// for the delta2/delta3 computations.
			if s.label[s.inblossom[w]] == labelS {
				b := s.inblossom[v]
				if s.bestedge[b] == -1 || kslack < s.slack(s.bestedge[b]) {
					s.bestedge[b] = k
				}
			} else if s.label[w] == labelFree {
				if s.bestedge[w] == -1 || kslack < s.slack(s.bestedge[w]) {
					s.bestedge[w] = k
				}
			}
		}
	}

	return false
}
