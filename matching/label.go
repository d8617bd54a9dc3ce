package matching

// assignLabel labels the top-level blossom containing vertex w.
//
// An S-label enqueues every leaf vertex of the blossom for scanning. A
// T-label immediately propagates an S-label to the mate of the blossom's
// base: a T-blossom's base is always matched (exposed vertices root trees
// as S), so the alternating tree grows two levels at a time.
// Complexity: O(size of the labeled blossom) per call.
func (s *solver) assignLabel(w, t, p int) {
	b := s.inblossom[w]
	assertf(s.label[w] == labelFree && s.label[b] == labelFree, "relabeling a labeled blossom")

	s.label[w] = t
	s.label[b] = t
	s.labelend[w] = p
	s.labelend[b] = p
	s.bestedge[w] = -1
	s.bestedge[b] = -1

	if t == labelS {
		// Every vertex inside an S-blossom becomes scannable.
		s.queue = s.blossomLeaves(b, s.queue)

		return
	}

	base := s.blossombase[b]
	assertf(s.mate[base] != noEndpoint, "T-blossom with exposed base")
	s.assignLabel(s.endpoint[s.mate[base]], labelS, s.mate[base]^1)
}

// scanBlossom walks the label-edge chains from v and w toward their tree
// roots in lock-step, marking visited top-level blossoms with a transient
// bit. It returns the base of the first common ancestor blossom (the new
// blossom case) or -1 when the trees are distinct (augmenting-path case).
//
// Pure traversal bounded by tree depth; the markers are removed before
// returning. Complexity: O(tree depth).
func (s *solver) scanBlossom(v, w int) int {
	path := []int{}
	base := -1

	for v != -1 || w != -1 {
		b := s.inblossom[v]
		if s.label[b]&labelBit != 0 {
			base = s.blossombase[b]
			break
		}
		assertf(s.label[b] == labelS, "ancestor chain through non-S blossom")
		path = append(path, b)
		s.label[b] = labelS | labelBit

		// Step to the previous S-blossom on v's side: through the matched
		// edge to the T-blossom, then through its label edge.
		assertf(s.labelend[b] == s.mate[s.blossombase[b]], "S-blossom label edge mismatch")
		if s.labelend[b] == noEndpoint {
			v = -1 // reached a tree root (exposed vertex)
		} else {
			v = s.endpoint[s.labelend[b]]
			b = s.inblossom[v]
			assertf(s.label[b] == labelT, "expected T-blossom on ancestor chain")
			assertf(s.labelend[b] >= 0, "T-blossom without label edge")
			v = s.endpoint[s.labelend[b]]
		}

		// Swap sides to advance the two chains alternately.
		if w != -1 {
			v, w = w, v
		}
	}

	for _, b := range path {
		s.label[b] = labelS
	}

	return base
}
