package matching

import (
	"fmt"
)

// MinWeightPerfect returns a minimum-weight perfect matching on vertices 0..n-1.
//
// Implementation:
//   - Stage 1: Validate n (even) and collect every pair (i < j) weight reports.
//   - Stage 2: Run the selected algorithm (blossom on transformed weights W+1-w
//     with maximum cardinality, or greedy).
//   - Stage 3: Verify the matching is perfect and sum the original weights.
//
// Behavior highlights:
//   - n == 0 yields an empty matching with zero weight.
//   - Negative weights are allowed.
//
// Errors:
//   - ErrNilWeight, ErrOddVertexCount, ErrNoPerfectMatching, ctx.Err().
//
// Complexity:
//   - Blossom: Time O(n³), Space O(n²). Greedy: Time O(n²).
func MinWeightPerfect(n int, weight WeightFunc, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if weight == nil {
		return nil, ErrNilWeight
	}
	if n%2 != 0 || n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrOddVertexCount, n)
	}
	if n == 0 {
		return &Result{Mate: []int{}, Pairs: [][2]int{}}, nil
	}

	var mate []int
	var err error
	switch o.Algorithm {
	case Greedy:
		mate = greedy(n, weight)
	default:
		mate, err = blossomPerfect(o, n, weight)
		if err != nil {
			return nil, err
		}
	}

	return buildResult(n, mate, weight)
}

func blossomPerfect(o Options, n int, weight WeightFunc) ([]int, error) {
	var (
		edges []wedge
		maxw  int64
		i, j  int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w, ok := weight(i, j)
			if !ok {
				continue
			}
			if len(edges) == 0 || w > maxw {
				maxw = w
			}
			edges = append(edges, wedge{i: i, j: j, w: w})
		}
	}
	if len(edges) == 0 {
		return nil, fmt.Errorf("%w: no pairs available among %d vertices", ErrNoPerfectMatching, n)
	}
	for k := range edges {
		edges[k].w = maxw + 1 - edges[k].w
	}

	return newBlossomSolver(n, edges).solve(o.Ctx, true)
}

func buildResult(n int, mate []int, weight WeightFunc) (*Result, error) {
	res := &Result{Mate: mate, Pairs: make([][2]int, 0, n/2)}
	var i int
	for i = 0; i < n; i++ {
		j := mate[i]
		if j < 0 {
			return nil, fmt.Errorf("%w: vertex %d unmatched", ErrNoPerfectMatching, i)
		}
		if i < j {
			w, _ := weight(i, j)
			res.Pairs = append(res.Pairs, [2]int{i, j})
			res.Weight += w
		}
	}

	return res, nil
}
