// SPDX-License-Identifier: MIT
// Package: shortest
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) with vertex and link predecessor tables.
//
// Contract:
//   - Tables are (n+1)×(n+1); row and column 0 are unused.
//   - Unreachable marks "no path"; the diagonal starts at 0.
package shortest

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/arcroute/core"
)

// AllPairs holds the Floyd–Warshall tables of one graph version.
//
// Dist[i][j] is the least cost i→j, Pred[i][j] the vertex preceding j on that
// path and Edge[i][j] the link entering j on that path (0 when none).
type AllPairs struct {
	N    int
	Dist [][]int64
	Pred [][]int
	Edge [][]int

	version uint64
}

// Version returns the graph version the tables were computed against.
func (ap *AllPairs) Version() uint64 { return ap.version }

// FloydWarshall computes all-pairs least costs over g.
//
// Implementation:
//   - Stage 1: Seed Dist/Pred/Edge from every allowed link traversal, keeping the
//     cheapest of parallel links (strict improvement, so the lowest id wins ties).
//   - Stage 2: Relax in fixed k → i → j order with strict improvement only.
//   - Stage 3: Report any negative diagonal as an infeasibility.
//
// Errors:
//   - ErrNilGraph.
//   - ctx.Err() when cancelled (checked once per k).
//   - *core.InfeasibleError wrapping ErrNegativeCycle.
//
// Determinism:
//   - Loop order and tie rule are fixed; equal inputs yield equal tables.
//
// Complexity:
//   - Time O(V³ + L), Space O(V²).
func FloydWarshall(ctx context.Context, g *core.Graph, opts ...Option) (*AllPairs, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := buildOptions(opts)

	// 1) Seed.
	ap := newAllPairs(g.VertexCount())
	ap.version = g.Version()
	for _, l := range g.Links() {
		ap.seed(l, l.From, l.To, o.Cost)
		if !l.IsLoop() {
			ap.seed(l, l.To, l.From, o.Cost)
		}
	}

	// 2) Relax.
	n := ap.N
	var (
		k, i, j  int
		dik, dkj int64
		cand     int64
		rowK     []int64
		rowI     []int64
	)
	for k = 1; k <= n; k++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rowK = ap.Dist[k]
		for i = 1; i <= n; i++ {
			dik = ap.Dist[i][k]
			if dik == Unreachable {
				continue
			}
			rowI = ap.Dist[i]
			for j = 1; j <= n; j++ {
				dkj = rowK[j]
				if dkj == Unreachable {
					continue
				}
				cand = dik + dkj
				if cand < rowI[j] {
					rowI[j] = cand
					ap.Pred[i][j] = ap.Pred[k][j]
					ap.Edge[i][j] = ap.Edge[k][j]
				}
			}
		}
	}

	// 3) Negative cycles.
	for i = 1; i <= n; i++ {
		if ap.Dist[i][i] < 0 {
			return nil, core.Infeasible(core.PhaseShortestPaths, ErrNegativeCycle,
				"vertex %d lies on a negative-cost cycle", i)
		}
	}

	return ap, nil
}

func newAllPairs(n int) *AllPairs {
	ap := &AllPairs{
		N:    n,
		Dist: make([][]int64, n+1),
		Pred: make([][]int, n+1),
		Edge: make([][]int, n+1),
	}
	var i, j int
	for i = 0; i <= n; i++ {
		ap.Dist[i] = make([]int64, n+1)
		ap.Pred[i] = make([]int, n+1)
		ap.Edge[i] = make([]int, n+1)
		for j = 0; j <= n; j++ {
			if i != j {
				ap.Dist[i][j] = Unreachable
			}
		}
	}

	return ap
}

// seed records the traversal from→to of l when it improves the direct entry.
func (ap *AllPairs) seed(l core.Link, from, to int, cost CostFunc) {
	c, ok := cost(l, from)
	if !ok || c >= ap.Dist[from][to] {
		return
	}
	ap.Dist[from][to] = c
	ap.Pred[from][to] = from
	ap.Edge[from][to] = l.ID
}

// Distance returns Dist[i][j] or Unreachable for out-of-range vertices.
func (ap *AllPairs) Distance(i, j int) int64 {
	if !ap.valid(i) || !ap.valid(j) {
		return Unreachable
	}

	return ap.Dist[i][j]
}

// Reachable reports whether a path i→j exists.
func (ap *AllPairs) Reachable(i, j int) bool { return ap.Distance(i, j) != Unreachable }

func (ap *AllPairs) valid(v int) bool { return v >= 1 && v <= ap.N }

// PathLinks returns the link ids of the least-cost path i→j in travel order.
// i == j yields an empty path.
func (ap *AllPairs) PathLinks(i, j int) ([]int, error) {
	links, _, err := ap.path(i, j)

	return links, err
}

// PathVertices returns the vertices of the least-cost path i→j, both ends included.
func (ap *AllPairs) PathVertices(i, j int) ([]int, error) {
	_, verts, err := ap.path(i, j)

	return verts, err
}

func (ap *AllPairs) path(i, j int) ([]int, []int, error) {
	if !ap.valid(i) || !ap.valid(j) {
		return nil, nil, fmt.Errorf("%w: %d or %d", ErrVertexNotFound, i, j)
	}
	if i == j {
		return []int{}, []int{i}, nil
	}
	if ap.Dist[i][j] == Unreachable {
		return nil, nil, fmt.Errorf("%w: %d→%d", ErrNoPath, i, j)
	}

	var links, verts []int
	cur := j
	for steps := 0; cur != i; steps++ {
		if steps > ap.N {
			return nil, nil, fmt.Errorf("%w: predecessor chain %d→%d does not terminate", ErrNoPath, i, j)
		}
		links = append(links, ap.Edge[i][cur])
		verts = append(verts, cur)
		cur = ap.Pred[i][cur]
	}
	verts = append(verts, i)
	slices.Reverse(links)
	slices.Reverse(verts)

	return links, verts, nil
}
