package balance

import (
	"context"
	"errors"
	"slices"

	"github.com/katalvlaran/arcroute/core"
	"github.com/katalvlaran/arcroute/matching"
	"github.com/katalvlaran/arcroute/shortest"
)

// Undirected makes every vertex of g even by duplicating shortest paths
// between optimally paired odd vertices.
//
// Implementation:
//   - Stage 1: Collect the odd vertex set O; |O| = 0 is a no-op.
//   - Stage 2: All-pairs shortest paths on the path graph.
//   - Stage 3: Minimum-weight perfect matching over O weighted by distance.
//   - Stage 4: Duplicate every link on each matched path.
//
// Postconditions: no existing link changes, g has no odd vertex, and
// Augmentation.Cost equals the matching weight.
//
// Errors:
//   - ErrNilGraph, core.ErrWrongLinkType (g is not Undirected), ErrPathGraphMismatch.
//   - *core.InfeasibleError (PhaseMatching) when the odd vertices cannot be paired.
//   - ctx.Err().
//
// Complexity:
//   - Time O(n³ + |O|³ + Σ path lengths), Space O(n²).
func Undirected(ctx context.Context, g *core.Graph, opts ...Option) (*Augmentation, error) {
	r, err := newRun(g, opts, core.Undirected)
	if err != nil {
		return nil, err
	}
	aug := &Augmentation{}
	if err = r.pairOdd(ctx, aug, nil); err != nil {
		return nil, err
	}
	r.opts.Logger.V(1).Info("undirected balancing done",
		"pairs", len(aug.Pairs), "added", len(aug.Added), "cost", aug.Cost)

	return aug, nil
}

// pairOdd matches the current odd vertices of r.g and duplicates the matched
// paths. Links present in toggle already have a duplicate (id toggle[pid]);
// crossing one again removes that duplicate instead of adding another copy.
func (r *run) pairOdd(ctx context.Context, aug *Augmentation, toggle map[int]int, spOpts ...shortest.Option) error {
	odd := r.g.OddVertices()
	if len(odd) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	ap, err := shortest.FloydWarshall(ctx, r.path, spOpts...)
	if err != nil {
		return err
	}
	weight := func(i, j int) (int64, bool) {
		d := ap.Dist[odd[i]][odd[j]]

		return d, d != shortest.Unreachable
	}
	m, err := matching.MinWeightPerfect(len(odd), weight,
		matching.WithContext(ctx), matching.WithAlgorithm(r.opts.Matching))
	if err != nil {
		if errors.Is(err, matching.ErrNoPerfectMatching) {
			return core.Infeasible(core.PhaseMatching, err,
				"%d odd vertices cannot all be paired along links", len(odd))
		}

		return err
	}
	aug.Cost += m.Weight

	var (
		u, v  int
		links []int
		id    int
	)
	for _, p := range m.Pairs {
		u, v = odd[p[0]], odd[p[1]]
		aug.Pairs = append(aug.Pairs, [2]int{u, v})
		if links, err = ap.PathLinks(u, v); err != nil {
			return err
		}
		for _, id = range links {
			if err = r.cross(id, toggle, aug); err != nil {
				return err
			}
		}
		r.opts.Logger.V(2).Info("odd pair joined", "u", u, "v", v, "links", len(links), "cost", ap.Dist[u][v])
	}
	aug.Added = slices.DeleteFunc(aug.Added, func(id int) bool { return !r.g.HasLink(id) })

	return nil
}

// cross adds one traversal of path-graph link pid to the working graph.
func (r *run) cross(pid int, toggle map[int]int, aug *Augmentation) error {
	if dup, ok := toggle[pid]; ok && dup != 0 {
		toggle[pid] = 0

		return r.g.RemoveLink(dup)
	}
	p, err := r.path.Link(pid)
	if err != nil {
		return err
	}
	id, err := r.duplicate(p)
	if err != nil {
		return err
	}
	if _, ok := toggle[pid]; ok {
		toggle[pid] = id
	}
	aug.Added = append(aug.Added, id)

	return nil
}
