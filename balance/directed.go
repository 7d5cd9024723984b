package balance

import (
	"context"

	"github.com/katalvlaran/arcroute/core"
	"github.com/katalvlaran/arcroute/flow"
)

// Directed balances every vertex of a directed graph (in = out) by duplicating
// arcs along a minimum-cost flow.
//
// Implementation:
//   - Stage 1: Demand of v = out(v) − in(v); a balanced graph is a no-op.
//   - Stage 2: One network arc per path-graph arc with its cost and capacity
//     (Link.Capacity, or unbounded when 0).
//   - Stage 3: MinCostFlow; each unit on an arc becomes one duplicate.
//
// Errors:
//   - ErrNilGraph, core.ErrWrongLinkType (g is not Directed), ErrPathGraphMismatch.
//   - *core.InfeasibleError (PhaseFlow) when a surplus cannot be routed.
//   - ctx.Err().
func Directed(ctx context.Context, g *core.Graph, opts ...Option) (*Augmentation, error) {
	r, err := newRun(g, opts, core.Directed)
	if err != nil {
		return nil, err
	}

	n := r.path.VertexCount()
	nw := flow.NewNetwork(n)
	balanced := true
	var (
		v int
		d int64
	)
	for v = 1; v <= n; v++ {
		d = 0
		if v <= g.VertexCount() {
			d = int64(g.Delta(v))
		}
		balanced = balanced && d == 0
		if err = nw.SetDemand(v, d); err != nil {
			return nil, err
		}
	}
	aug := &Augmentation{Flow: make([]int64, r.path.MaxLinkID()+1)}
	if balanced {
		r.opts.Logger.V(1).Info("directed graph already balanced")

		return aug, nil
	}

	links := r.path.Links()
	var capacity int64
	for _, l := range links {
		capacity = flow.Unbounded
		if l.Capacity > 0 {
			capacity = int64(l.Capacity)
		}
		if _, err = nw.AddArc(l.From, l.To, capacity, l.Cost); err != nil {
			return nil, err
		}
	}
	res, err := flow.MinCostFlow(ctx, nw, flow.WithLogger(r.opts.Logger))
	if err != nil {
		return nil, err
	}

	aug.Cost = res.Cost
	var (
		i  int
		k  int64
		id int
	)
	for i = range links {
		aug.Flow[links[i].ID] = res.Flow[i]
		for k = 0; k < res.Flow[i]; k++ {
			if id, err = r.duplicate(links[i]); err != nil {
				return nil, err
			}
			aug.Added = append(aug.Added, id)
		}
	}
	r.opts.Logger.V(1).Info("directed balancing done",
		"added", len(aug.Added), "cost", aug.Cost, "augmentations", res.Augmentations)

	return aug, nil
}
