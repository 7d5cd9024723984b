package matching

import (
	"context"
	"slices"
)

// wedge is an input edge of the blossom solver.
type wedge struct {
	i, j int
	w    int64
}

// blossomSolver is the primal-dual state of one maximum-weight matching run.
//
// Vertices are 0..n-1, blossoms n..2n-1. Edge k has endpoints 2k (its i side)
// and 2k+1 (its j side); mate[v] holds the remote endpoint of v's matched edge.
// Labels: 0 free, 1 S (outer), 2 T (inner); 4|5 mark a breadcrumb during scans.
// Vertex duals are stored doubled so that slack(k) = dual[i]+dual[j]-2w stays
// integral.
type blossomSolver struct {
	n        int
	edges    []wedge
	endpoint []int
	neighb   [][]int // endpoints p whose remote end is endpoint[p]

	mate      []int
	label     []int
	labelend  []int
	inblossom []int
	parent    []int
	childs    [][]int
	base      []int
	endps     [][]int
	bestedge  []int
	bestlist  [][]int // per blossom candidate edges; nil when not computed
	unused    []int
	dual      []int64
	allow     []bool
	queue     []int
}

func newBlossomSolver(n int, edges []wedge) *blossomSolver {
	s := &blossomSolver{
		n:         n,
		edges:     edges,
		endpoint:  make([]int, 2*len(edges)),
		neighb:    make([][]int, n),
		mate:      make([]int, n),
		label:     make([]int, 2*n),
		labelend:  make([]int, 2*n),
		inblossom: make([]int, n),
		parent:    make([]int, 2*n),
		childs:    make([][]int, 2*n),
		base:      make([]int, 2*n),
		endps:     make([][]int, 2*n),
		bestedge:  make([]int, 2*n),
		bestlist:  make([][]int, 2*n),
		dual:      make([]int64, 2*n),
		allow:     make([]bool, len(edges)),
	}
	var maxw int64
	for k, e := range edges {
		s.endpoint[2*k] = e.i
		s.endpoint[2*k+1] = e.j
		s.neighb[e.i] = append(s.neighb[e.i], 2*k+1)
		s.neighb[e.j] = append(s.neighb[e.j], 2*k)
		maxw = max(maxw, e.w)
	}
	var v int
	for v = 0; v < 2*n; v++ {
		s.labelend[v] = -1
		s.parent[v] = -1
		s.bestedge[v] = -1
		if v < n {
			s.mate[v] = -1
			s.inblossom[v] = v
			s.base[v] = v
			s.dual[v] = maxw
		} else {
			s.base[v] = -1
			s.unused = append(s.unused, v)
		}
	}

	return s
}

func (s *blossomSolver) slack(k int) int64 {
	e := s.edges[k]

	return s.dual[e.i] + s.dual[e.j] - 2*e.w
}

// leaves appends the vertices contained in blossom b.
func (s *blossomSolver) leaves(b int, out []int) []int {
	if b < s.n {
		return append(out, b)
	}
	for _, t := range s.childs[b] {
		if t < s.n {
			out = append(out, t)
		} else {
			out = s.leaves(t, out)
		}
	}

	return out
}

// wrap maps a possibly negative cyclic index into 0..size-1.
func wrap(j, size int) int { return ((j % size) + size) % size }

// assignLabel labels the top-level blossom of w with t reached through endpoint p.
func (s *blossomSolver) assignLabel(w, t, p int) {
	b := s.inblossom[w]
	s.label[w], s.label[b] = t, t
	s.labelend[w], s.labelend[b] = p, p
	s.bestedge[w], s.bestedge[b] = -1, -1
	if t == 1 {
		s.queue = s.leaves(b, s.queue)

		return
	}
	mb := s.mate[s.base[b]]
	s.assignLabel(s.endpoint[mb], 1, mb^1)
}

// scanBlossom traces back from v and w to find a common S-ancestor (the base
// of a new blossom) or -1 when the paths reach two different roots.
func (s *blossomSolver) scanBlossom(v, w int) int {
	var path []int
	base := -1
	for v != -1 || w != -1 {
		b := s.inblossom[v]
		if s.label[b]&4 != 0 {
			base = s.base[b]

			break
		}
		path = append(path, b)
		s.label[b] = 5
		if s.labelend[b] == -1 {
			v = -1
		} else {
			v = s.endpoint[s.labelend[b]]
			b = s.inblossom[v]
			v = s.endpoint[s.labelend[b]]
		}
		if w != -1 {
			v, w = w, v
		}
	}
	for _, b := range path {
		s.label[b] = 1
	}

	return base
}

// addBlossom shrinks the odd cycle closed by edge k into a new S-blossom.
func (s *blossomSolver) addBlossom(base, k int) {
	v, w := s.edges[k].i, s.edges[k].j
	bb := s.inblossom[base]
	bv := s.inblossom[v]
	bw := s.inblossom[w]

	b := s.unused[len(s.unused)-1]
	s.unused = s.unused[:len(s.unused)-1]
	s.base[b] = base
	s.parent[b] = -1
	s.parent[bb] = b

	var path, endps []int
	for bv != bb {
		s.parent[bv] = b
		path = append(path, bv)
		endps = append(endps, s.labelend[bv])
		v = s.endpoint[s.labelend[bv]]
		bv = s.inblossom[v]
	}
	path = append(path, bb)
	slices.Reverse(path)
	slices.Reverse(endps)
	endps = append(endps, 2*k)
	for bw != bb {
		s.parent[bw] = b
		path = append(path, bw)
		endps = append(endps, s.labelend[bw]^1)
		w = s.endpoint[s.labelend[bw]]
		bw = s.inblossom[w]
	}
	s.childs[b] = path
	s.endps[b] = endps

	s.label[b] = 1
	s.labelend[b] = s.labelend[bb]
	s.dual[b] = 0
	for _, lv := range s.leaves(b, nil) {
		if s.label[s.inblossom[lv]] == 2 {
			// Former T-vertices become S-vertices inside the new blossom.
			s.queue = append(s.queue, lv)
		}
		s.inblossom[lv] = b
	}

	// Least-slack edges from the new blossom to every neighbouring S-blossom.
	bestto := make([]int, 2*s.n)
	for i := range bestto {
		bestto[i] = -1
	}
	for _, sub := range path {
		var lists [][]int
		if s.bestlist[sub] == nil {
			for _, lv := range s.leaves(sub, nil) {
				ks := make([]int, len(s.neighb[lv]))
				for x, p := range s.neighb[lv] {
					ks[x] = p / 2
				}
				lists = append(lists, ks)
			}
		} else {
			lists = [][]int{s.bestlist[sub]}
		}
		for _, ks := range lists {
			for _, kk := range ks {
				j := s.edges[kk].j
				if s.inblossom[j] == b {
					j = s.edges[kk].i
				}
				bj := s.inblossom[j]
				if bj != b && s.label[bj] == 1 && (bestto[bj] == -1 || s.slack(kk) < s.slack(bestto[bj])) {
					bestto[bj] = kk
				}
			}
		}
		s.bestlist[sub] = nil
		s.bestedge[sub] = -1
	}
	best := make([]int, 0, len(bestto))
	for _, kk := range bestto {
		if kk != -1 {
			best = append(best, kk)
		}
	}
	s.bestlist[b] = best
	s.bestedge[b] = -1
	for _, kk := range best {
		if s.bestedge[b] == -1 || s.slack(kk) < s.slack(s.bestedge[b]) {
			s.bestedge[b] = kk
		}
	}
}

// expandBlossom dissolves blossom b into its sub-blossoms. Mid-stage expansion
// of a T-blossom relabels the even-length path through it.
func (s *blossomSolver) expandBlossom(b int, endstage bool) {
	for _, sub := range s.childs[b] {
		s.parent[sub] = -1
		switch {
		case sub < s.n:
			s.inblossom[sub] = sub
		case endstage && s.dual[sub] == 0:
			s.expandBlossom(sub, endstage)
		default:
			for _, lv := range s.leaves(sub, nil) {
				s.inblossom[lv] = sub
			}
		}
	}

	if !endstage && s.label[b] == 2 {
		childs, endps := s.childs[b], s.endps[b]
		size := len(childs)
		entry := s.inblossom[s.endpoint[s.labelend[b]^1]]
		j := slices.Index(childs, entry)
		var jstep, trick int
		if j&1 != 0 {
			j -= size
			jstep, trick = 1, 0
		} else {
			jstep, trick = -1, 1
		}

		// Relabel the even path from the entry child to the base.
		p := s.labelend[b]
		for j != 0 {
			s.label[s.endpoint[p^1]] = 0
			s.label[s.endpoint[endps[wrap(j-trick, size)]^trick^1]] = 0
			s.assignLabel(s.endpoint[p^1], 2, p)
			s.allow[endps[wrap(j-trick, size)]/2] = true
			j += jstep
			p = endps[wrap(j-trick, size)] ^ trick
			s.allow[p/2] = true
			j += jstep
		}
		bv := childs[wrap(j, size)]
		s.label[s.endpoint[p^1]], s.label[bv] = 2, 2
		s.labelend[s.endpoint[p^1]], s.labelend[bv] = p, p
		s.bestedge[bv] = -1

		// Children on the odd path that are reachable keep a T label.
		j += jstep
		for childs[wrap(j, size)] != entry {
			bv = childs[wrap(j, size)]
			if s.label[bv] == 1 {
				j += jstep

				continue
			}
			found := -1
			for _, lv := range s.leaves(bv, nil) {
				if s.label[lv] != 0 {
					found = lv

					break
				}
			}
			if found >= 0 {
				s.label[found] = 0
				s.label[s.endpoint[s.mate[s.base[bv]]]] = 0
				s.assignLabel(found, 2, s.labelend[found])
			}
			j += jstep
		}
	}

	s.label[b], s.labelend[b] = -1, -1
	s.childs[b], s.endps[b] = nil, nil
	s.base[b] = -1
	s.bestlist[b] = nil
	s.bestedge[b] = -1
	s.unused = append(s.unused, b)
}

// augmentBlossom swaps matched and unmatched edges along the even path from
// vertex v to the base of blossom b, then rotates b so v becomes its base.
func (s *blossomSolver) augmentBlossom(b, v int) {
	t := v
	for s.parent[t] != b {
		t = s.parent[t]
	}
	if t >= s.n {
		s.augmentBlossom(t, v)
	}
	childs, endps := s.childs[b], s.endps[b]
	size := len(childs)
	i := slices.Index(childs, t)
	j := i
	var jstep, trick int
	if i&1 != 0 {
		j -= size
		jstep, trick = 1, 0
	} else {
		jstep, trick = -1, 1
	}
	for j != 0 {
		j += jstep
		t = childs[wrap(j, size)]
		p := endps[wrap(j-trick, size)] ^ trick
		if t >= s.n {
			s.augmentBlossom(t, s.endpoint[p])
		}
		j += jstep
		t = childs[wrap(j, size)]
		if t >= s.n {
			s.augmentBlossom(t, s.endpoint[p^1])
		}
		s.mate[s.endpoint[p]] = p ^ 1
		s.mate[s.endpoint[p^1]] = p
	}
	s.childs[b] = append(slices.Clone(childs[i:]), childs[:i]...)
	s.endps[b] = append(slices.Clone(endps[i:]), endps[:i]...)
	s.base[b] = s.base[s.childs[b][0]]
}

// augmentMatching flips the augmenting path through edge k between two roots.
func (s *blossomSolver) augmentMatching(k int) {
	ends := [2][2]int{{s.edges[k].i, 2*k + 1}, {s.edges[k].j, 2 * k}}
	for _, sp := range ends {
		sv, p := sp[0], sp[1]
		for {
			bs := s.inblossom[sv]
			if bs >= s.n {
				s.augmentBlossom(bs, sv)
			}
			s.mate[sv] = p
			if s.labelend[bs] == -1 {
				break // reached a root
			}
			t := s.endpoint[s.labelend[bs]]
			bt := s.inblossom[t]
			sv = s.endpoint[s.labelend[bt]]
			j := s.endpoint[s.labelend[bt]^1]
			if bt >= s.n {
				s.augmentBlossom(bt, j)
			}
			s.mate[j] = s.labelend[bt]
			p = s.labelend[bt] ^ 1
		}
	}
}

// solve runs stages until no augmenting path remains and returns mate as
// vertex indices (-1 = unmatched). maxCardinality forces a maximum-cardinality
// matching among the maximum-weight ones.
func (s *blossomSolver) solve(ctx context.Context, maxCardinality bool) ([]int, error) {
	n := s.n
	var (
		v, b, stage int
		kslack      int64
	)
	for stage = 0; stage < n; stage++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// Reset labels for a new stage.
		for b = 0; b < 2*n; b++ {
			s.label[b] = 0
			s.bestedge[b] = -1
			if b >= n {
				s.bestlist[b] = nil
			}
		}
		clear(s.allow)
		s.queue = s.queue[:0]
		for v = 0; v < n; v++ {
			if s.mate[v] == -1 && s.label[s.inblossom[v]] == 0 {
				s.assignLabel(v, 1, -1)
			}
		}

		augmented := false
		for {
			// Grow alternating trees from the queue of S-vertices.
			for len(s.queue) > 0 && !augmented {
				v = s.queue[len(s.queue)-1]
				s.queue = s.queue[:len(s.queue)-1]
				for _, p := range s.neighb[v] {
					k := p / 2
					w := s.endpoint[p]
					if s.inblossom[v] == s.inblossom[w] {
						continue
					}
					if !s.allow[k] {
						kslack = s.slack(k)
						if kslack <= 0 {
							s.allow[k] = true
						}
					}
					switch {
					case s.allow[k]:
						switch {
						case s.label[s.inblossom[w]] == 0:
							s.assignLabel(w, 2, p^1)
						case s.label[s.inblossom[w]] == 1:
							if base := s.scanBlossom(v, w); base >= 0 {
								s.addBlossom(base, k)
							} else {
								s.augmentMatching(k)
								augmented = true
							}
						case s.label[w] == 0:
							s.label[w] = 2
							s.labelend[w] = p ^ 1
						}
					case s.label[s.inblossom[w]] == 1:
						bv := s.inblossom[v]
						if s.bestedge[bv] == -1 || kslack < s.slack(s.bestedge[bv]) {
							s.bestedge[bv] = k
						}
					case s.label[w] == 0:
						if s.bestedge[w] == -1 || kslack < s.slack(s.bestedge[w]) {
							s.bestedge[w] = k
						}
					}
					if augmented {
						break
					}
				}
			}
			if augmented {
				break
			}

			// Dual adjustment: pick the smallest admissible delta.
			deltaType := -1
			var delta int64
			deltaEdge, deltaBlossom := -1, -1
			if !maxCardinality {
				deltaType = 1
				delta = slices.Min(s.dual[:n])
			}
			for v = 0; v < n; v++ {
				if s.label[s.inblossom[v]] == 0 && s.bestedge[v] != -1 {
					d := s.slack(s.bestedge[v])
					if deltaType == -1 || d < delta {
						delta, deltaType, deltaEdge = d, 2, s.bestedge[v]
					}
				}
			}
			for b = 0; b < 2*n; b++ {
				if s.parent[b] == -1 && s.label[b] == 1 && s.bestedge[b] != -1 {
					d := s.slack(s.bestedge[b]) / 2
					if deltaType == -1 || d < delta {
						delta, deltaType, deltaEdge = d, 3, s.bestedge[b]
					}
				}
			}
			for b = n; b < 2*n; b++ {
				if s.base[b] >= 0 && s.parent[b] == -1 && s.label[b] == 2 &&
					(deltaType == -1 || s.dual[b] < delta) {
					delta, deltaType, deltaBlossom = s.dual[b], 4, b
				}
			}
			if deltaType == -1 {
				// No further improvement possible; optimum reached.
				deltaType = 1
				delta = max(0, slices.Min(s.dual[:n]))
			}

			for v = 0; v < n; v++ {
				switch s.label[s.inblossom[v]] {
				case 1:
					s.dual[v] -= delta
				case 2:
					s.dual[v] += delta
				}
			}
			for b = n; b < 2*n; b++ {
				if s.base[b] >= 0 && s.parent[b] == -1 {
					switch s.label[b] {
					case 1:
						s.dual[b] += delta
					case 2:
						s.dual[b] -= delta
					}
				}
			}

			switch deltaType {
			case 1:
				// Stop this stage.
			case 2:
				s.allow[deltaEdge] = true
				i := s.edges[deltaEdge].i
				if s.label[s.inblossom[i]] == 0 {
					i = s.edges[deltaEdge].j
				}
				s.queue = append(s.queue, i)
			case 3:
				s.allow[deltaEdge] = true
				s.queue = append(s.queue, s.edges[deltaEdge].i)
			case 4:
				s.expandBlossom(deltaBlossom, false)
			}
			if deltaType == 1 {
				break
			}
		}
		if !augmented {
			break
		}

		// End of stage: expand S-blossoms whose dual reached zero.
		for b = n; b < 2*n; b++ {
			if s.parent[b] == -1 && s.base[b] >= 0 && s.label[b] == 1 && s.dual[b] == 0 {
				s.expandBlossom(b, true)
			}
		}
	}

	out := make([]int, n)
	for v = 0; v < n; v++ {
		out[v] = -1
		if s.mate[v] >= 0 {
			out[v] = s.endpoint[s.mate[v]]
		}
	}

	return out, nil
}
