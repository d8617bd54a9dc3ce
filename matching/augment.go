package matching

// augmentBlossom flips the matching along the path from vertex v to the
// base of blossom b, recursively augmenting any nested blossoms it passes
// through, then re-bases b on v by rotating its child and edge sequences.
// After the call v is the base of b and the only vertex of b whose matched
// edge leaves the blossom.
// Complexity: O(size of b) per level of nesting.
func (s *solver) augmentBlossom(b, v int) {
	// Find the immediate child of b that contains v.
	t := v
	for s.blossomparent[t] != b {
		t = s.blossomparent[t]
	}
	if t >= s.nvertex {
		s.augmentBlossom(t, v)
	}

	childs := s.blossomchilds[b]
	endps := s.blossomendps[b]
	nc := len(childs)
	cyc := func(idx int) int {
		idx %= nc
		if idx < 0 {
			idx += nc
		}

		return idx
	}

	i := 0
	for idx, child := range childs {
		if child == t {
			i = idx
			break
		}
	}

	// Walk from t's position around to the base (position 0), pairing the
	// traversed connecting edges into the matching. Odd positions walk
	// forward, even positions walk backward with endpoints mirrored.
	j := i
	var jstep, endptrick int
	if i%2 == 1 {
		j -= nc
		jstep = 1
		endptrick = 0
	} else {
		jstep = -1
		endptrick = 1
	}

	for j != 0 {
		j += jstep
		t = childs[cyc(j)]
		p := endps[cyc(j-endptrick)] ^ endptrick
		if t >= s.nvertex {
			s.augmentBlossom(t, s.endpoint[p])
		}
		j += jstep
		t = childs[cyc(j)]
		if t >= s.nvertex {
			s.augmentBlossom(t, s.endpoint[p^1])
		}
		// Match the connecting edge.
		s.mate[s.endpoint[p]] = p ^ 1
		s.mate[s.endpoint[p^1]] = p
	}

	// Rotate the child/edge sequences so the former v-side becomes the
	// front, making v the new base.
	s.blossomchilds[b] = append(childs[i:], childs[:i]...)
	s.blossomendps[b] = append(endps[i:], endps[:i]...)
	s.blossombase[b] = s.blossombase[s.blossomchilds[b][0]]
	assertf(s.blossombase[b] == v, "re-based blossom base mismatch")
}

// augmentMatching flips matched/unmatched status along the augmenting path
// through the tight edge k, from each endpoint back to the root of its
// alternating tree. The matching grows by exactly one pair.
// Complexity: O(V) along the path including nested blossoms.
func (s *solver) augmentMatching(k int) {
	v, w := s.edges[k].i, s.edges[k].j

	for _, side := range [2][2]int{{v, 2*k + 1}, {w, 2 * k}} {
		sv, p := side[0], side[1]
		// Match vertex sv to remote endpoint p, then ascend the tree:
		// augment through sv's S-blossom toward its base, step over the
		// tree edge into the T-blossom below, and repeat until a root
		// (an exposed vertex with no label edge) is reached.
		for {
			bs := s.inblossom[sv]
			assertf(s.label[bs] == labelS, "augmenting path through non-S blossom")
			assertf(s.labelend[bs] == s.mate[s.blossombase[bs]], "S-blossom label edge mismatch")
			if bs >= s.nvertex {
				s.augmentBlossom(bs, sv)
			}
			s.mate[sv] = p

			if s.labelend[bs] == noEndpoint {
				break // reached an exposed tree root
			}

			t := s.endpoint[s.labelend[bs]]
			bt := s.inblossom[t]
			assertf(s.label[bt] == labelT, "tree edge does not lead to a T-blossom")

			// Step one tree edge further back.
			assertf(s.labelend[bt] >= 0, "T-blossom without label edge")
			sv = s.endpoint[s.labelend[bt]]
			j := s.endpoint[s.labelend[bt]^1]
			assertf(s.blossombase[bt] == t, "T-blossom base mismatch on augmenting path")
			if bt >= s.nvertex {
				s.augmentBlossom(bt, j)
			}
			s.mate[j] = s.labelend[bt]
			p = s.labelend[bt] ^ 1
		}
	}
}
