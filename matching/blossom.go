package matching

// addBlossom contracts a new blossom with the given base, formed by the
// tight edge k between two S-blossoms and the two tree paths from its
// endpoints back to base.
//
// The new blossom takes an arena slot from the free list, becomes an
// S-blossom with dual 0, and absorbs every child on both paths. Vertices
// that were T-labeled before the merge become scannable S-vertices and are
// enqueued. Finally the least-slack edge cache toward every other
// S-blossom is rebuilt by merging the children's caches (fresh neighbor
// scans for children that never had one).
// Complexity: O(V) per contraction plus the cache merge.
func (s *solver) addBlossom(base, k int) {
	v, w := s.edges[k].i, s.edges[k].j
	bb := s.inblossom[base]
	bv := s.inblossom[v]
	bw := s.inblossom[w]

	b := s.unusedblossoms[len(s.unusedblossoms)-1]
	s.unusedblossoms = s.unusedblossoms[:len(s.unusedblossoms)-1]

	s.blossombase[b] = base
	s.blossomparent[b] = -1
	s.blossomparent[bb] = b

	// Collect v's path down to the base...
	var path, endps []int
	for bv != bb {
		s.blossomparent[bv] = b
		path = append(path, bv)
		endps = append(endps, s.labelend[bv])
		assertf(s.label[bv] == labelT ||
			(s.label[bv] == labelS && s.labelend[bv] == s.mate[s.blossombase[bv]]),
			"blossom path child with inconsistent label")
		assertf(s.labelend[bv] >= 0, "blossom path child without label edge")
		v = s.endpoint[s.labelend[bv]]
		bv = s.inblossom[v]
	}
	// ...reverse it so the cycle starts at the base, and close the front
	// half with the triggering edge k.
	path = append(path, bb)
	reverseInts(path)
	reverseInts(endps)
	endps = append(endps, 2*k)

	// Append w's path back up from the base.
	for bw != bb {
		s.blossomparent[bw] = b
		path = append(path, bw)
		endps = append(endps, s.labelend[bw]^1)
		assertf(s.label[bw] == labelT ||
			(s.label[bw] == labelS && s.labelend[bw] == s.mate[s.blossombase[bw]]),
			"blossom path child with inconsistent label")
		assertf(s.labelend[bw] >= 0, "blossom path child without label edge")
		w = s.endpoint[s.labelend[bw]]
		bw = s.inblossom[w]
	}

	assertf(s.label[bb] == labelS, "blossom base lost its S-label")
	s.blossomchilds[b] = path
	s.blossomendps[b] = endps
	s.label[b] = labelS
	s.labelend[b] = s.labelend[bb]
	s.dualvar[b] = 0

	// Re-home every leaf; absorbed T-vertices flip to S and get enqueued,
	// since merging into an S-blossom makes them reachable.
	for _, u := range s.blossomLeaves(b, nil) {
		if s.label[s.inblossom[u]] == labelT {
			s.queue = append(s.queue, u)
		}
		s.inblossom[u] = b
	}

	// Rebuild the least-slack edge cache toward every other S-blossom.
	bestedgeto := make([]int, 2*s.nvertex)
	for i := range bestedgeto {
		bestedgeto[i] = -1
	}
	for _, child := range path {
		if s.blossombestedges[child] == nil {
			// Child never cached: scan the neighborhoods of its leaves.
			for _, u := range s.blossomLeaves(child, nil) {
				for _, p := range s.neighbend[u] {
					mergeBestEdge(s, b, p/2, bestedgeto)
				}
			}
		} else {
			for _, ek := range s.blossombestedges[child] {
				mergeBestEdge(s, b, ek, bestedgeto)
			}
		}
		s.blossombestedges[child] = nil
		s.bestedge[child] = -1
	}

	s.blossombestedges[b] = make([]int, 0, len(bestedgeto))
	for _, ek := range bestedgeto {
		if ek != -1 {
			s.blossombestedges[b] = append(s.blossombestedges[b], ek)
		}
	}
	s.bestedge[b] = -1
	for _, ek := range s.blossombestedges[b] {
		if s.bestedge[b] == -1 || s.slack(ek) < s.slack(s.bestedge[b]) {
			s.bestedge[b] = ek
		}
	}
}

// mergeBestEdge folds edge ek into the per-destination least-slack table
// for the freshly contracted blossom b.
func mergeBestEdge(s *solver, b, ek int, bestedgeto []int) {
	i, j := s.edges[ek].i, s.edges[ek].j
	if s.inblossom[j] == b {
		i, j = j, i
	}
	bj := s.inblossom[j]
	if bj != b && s.label[bj] == labelS &&
		(bestedgeto[bj] == -1 || s.slack(ek) < s.slack(bestedgeto[bj])) {
		bestedgeto[bj] = ek
	}
}

// expandBlossom dissolves blossom b, promoting its children to top level.
//
// At end of stage (endStage true) the blossom is simply taken apart —
// label and tree state are being discarded anyway — and zero-dual child
// blossoms are expanded recursively. Mid-stage (a T-blossom whose dual hit
// zero during a delta4 step) the children along the path from the entry
// child to the base are relabeled so that every child reachable from
// outside keeps a label consistent with its tree position: T and S labels
// alternate along the cycle in the direction that keeps one side matched,
// and the traversed connecting edges become allowed.
// Complexity: O(size of b).
func (s *solver) expandBlossom(b int, endStage bool) {
	// Promote children to top level.
	for _, child := range s.blossomchilds[b] {
		s.blossomparent[child] = -1
		if child < s.nvertex {
			s.inblossom[child] = child
		} else if endStage && s.dualvar[child] == 0 {
			// Recursively expand child blossoms freed by this stage.
			s.expandBlossom(child, endStage)
		} else {
			for _, u := range s.blossomLeaves(child, nil) {
				s.inblossom[u] = child
			}
		}
	}

	if !endStage && s.label[b] == labelT {
		s.relabelExpanded(b)
	}

	// Recycle the arena slot.
	s.label[b] = labelFree
	s.labelend[b] = noEndpoint
	s.blossomchilds[b] = nil
	s.blossomendps[b] = nil
	s.blossombase[b] = -1
	s.blossombestedges[b] = nil
	s.bestedge[b] = -1
	s.unusedblossoms = append(s.unusedblossoms, b)
}

// relabelExpanded walks the cycle of the just-dissolved T-blossom b from
// the child through which b was reached down to the base child, alternately
// assigning T-labels and marking the traversed edges allowed; the remaining
// children are detached or relabeled according to which of their vertices
// still carry labels.
func (s *solver) relabelExpanded(b int) {
	childs := s.blossomchilds[b]
	endps := s.blossomendps[b]
	nc := len(childs)

	// cyc maps a possibly negative walk position onto the cycle.
	cyc := func(idx int) int {
		idx %= nc
		if idx < 0 {
			idx += nc
		}

		return idx
	}

	// Locate the child through which the blossom acquired its T-label.
	entrychild := s.inblossom[s.endpoint[s.labelend[b]^1]]
	j := 0
	for i, child := range childs {
		if child == entrychild {
			j = i
			break
		}
	}

	// Walk toward the base in the direction that keeps the matched pairs
	// of the cycle consistent with the entry parity: an odd entry index
	// walks forward, an even one walks backward with endpoints flipped.
	var jstep, endptrick int
	if j%2 == 1 {
		j -= nc
		jstep = 1
		endptrick = 0
	} else {
		jstep = -1
		endptrick = 1
	}

	p := s.labelend[b]
	for j != 0 {
		// Relabel the T-sub-blossom at this step; both edge endpoints are
		// cleared first so assignLabel sees fresh state.
		s.label[s.endpoint[p^1]] = labelFree
		s.label[s.endpoint[cycEndp(endps, cyc(j-endptrick), endptrick)^1]] = labelFree
		s.assignLabel(s.endpoint[p^1], labelT, p)

		// The connecting edge just traversed is tight by construction.
		s.allowedge[cycEndp(endps, cyc(j-endptrick), endptrick)/2] = true
		j += jstep
		p = cycEndp(endps, cyc(j-endptrick), endptrick)
		s.allowedge[p/2] = true
		j += jstep
	}

	// The base child keeps the blossom's original T-label and label edge.
	bv := childs[cyc(j)]
	s.label[s.endpoint[p^1]] = labelT
	s.label[bv] = labelT
	s.labelend[s.endpoint[p^1]] = p
	s.labelend[bv] = p
	s.bestedge[bv] = -1

	// Continue around the cycle: children that carry no label from outside
	// are detached; a labeled vertex inside an unlabeled child re-triggers
	// T-labeling through its recorded label edge.
	j += jstep
	for childs[cyc(j)] != entrychild {
		bv = childs[cyc(j)]
		if s.label[bv] == labelS {
			j += jstep
			continue
		}
		labeled := -1
		for _, u := range s.blossomLeaves(bv, nil) {
			if s.label[u] != labelFree {
				labeled = u
				break
			}
		}
		if labeled >= 0 {
			assertf(s.label[labeled] == labelT, "expanded child with non-T labeled vertex")
			assertf(s.inblossom[labeled] == bv, "labeled vertex outside its child blossom")
			s.label[labeled] = labelFree
			s.label[s.endpoint[s.mate[s.blossombase[bv]]]] = labelFree
			s.assignLabel(labeled, labelT, s.labelend[labeled])
		}
		j += jstep
	}
}

// cycEndp reads the endpoint at cyclic position idx, flipping its side when
// the walk direction requires the mirrored endpoint.
func cycEndp(endps []int, idx, endptrick int) int {
	return endps[idx] ^ endptrick
}

// reverseInts reverses s in place.
func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
