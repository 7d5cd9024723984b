package balance

import (
	"context"
	"fmt"

	"github.com/katalvlaran/arcroute/core"
	"github.com/katalvlaran/arcroute/flow"
)

// Orientation is a balanced directed rendering of an even undirected or windy graph.
type Orientation struct {
	// Graph is Directed; every arc carries MatchID = id of its source link.
	Graph *core.Graph
	// Reversed[a] reports that arc a runs To→From of its source link.
	Reversed []bool
	// Extra[a] reports that arc a is an additional traversal of its source link.
	Extra []bool
	// Cost is the total travel cost of Graph.
	Cost int64
	// Flow is the per-arc flow of the orientation network (three arcs per
	// non-loop link: extra cheap, extra dear, reversal).
	Flow []int64
}

// orientPlan is the cheaper-direction orientation of one link.
type orientPlan struct {
	link        core.Link
	tail, head  int
	cheap, dear int64
	arcs        [3]int // extra cheap, extra dear, reversal; -1 for loops
}

const (
	arcExtraCheap = iota
	arcExtraDear
	arcReversal
)

// Orient gives an even graph a minimum-cost balanced orientation.
//
// Implementation:
//   - Stage 1: Orient every link in its cheaper direction (ties From→To) and
//     take delta = out − in of that orientation as flow demand.
//   - Stage 2: Per non-loop link, offer an extra traversal each way at twice its
//     directional cost and a capacity-2 reversal arc at dear − cheap (a
//     reversal moves two units of imbalance, so all costs are doubled to stay
//     integral). A link capacity bounds its extra traversals, rounded down
//     to even.
//   - Stage 3: MinCostFlow, then realise reversal flow 2 as a flipped arc and
//     extra flow as parallel copies.
//
// The input graph is not modified. WithPathGraph is ignored.
//
// Errors:
//   - ErrNilGraph, core.ErrWrongLinkType (Directed or Mixed input).
//   - *core.InfeasibleError (PhaseOrientation) wrapping ErrNotEven.
//   - *core.InfeasibleError (PhaseFlow), ctx.Err().
func Orient(ctx context.Context, g *core.Graph, opts ...Option) (*Orientation, error) {
	r, err := newRun(g, opts, core.Undirected, core.Windy)
	if err != nil {
		return nil, err
	}
	if odd := g.OddVertices(); len(odd) > 0 {
		return nil, core.Infeasible(core.PhaseOrientation, ErrNotEven,
			"%d odd vertices, first %d", len(odd), odd[0])
	}

	n := g.VertexCount()
	links := g.Links()
	plans := make([]orientPlan, len(links))
	delta := make([]int64, n+1)
	for i, l := range links {
		p := orientPlan{link: l, tail: l.From, head: l.To, cheap: l.Cost, dear: l.ReverseCost, arcs: [3]int{-1, -1, -1}}
		if l.ReverseCost < l.Cost {
			p.tail, p.head, p.cheap, p.dear = l.To, l.From, l.ReverseCost, l.Cost
		}
		delta[p.tail]++
		delta[p.head]--
		plans[i] = p
	}

	nw := flow.NewNetwork(n)
	balanced := true
	var v int
	for v = 1; v <= n; v++ {
		balanced = balanced && delta[v] == 0
		if err = nw.SetDemand(v, delta[v]); err != nil {
			return nil, err
		}
	}

	var flows []int64
	if !balanced {
		if err = addOrientArcs(nw, plans); err != nil {
			return nil, err
		}
		res, err := flow.MinCostFlow(ctx, nw, flow.WithLogger(r.opts.Logger))
		if err != nil {
			return nil, err
		}
		flows = res.Flow
	}

	o, err := realise(n, plans, flows)
	if err != nil {
		return nil, err
	}
	r.opts.Logger.V(1).Info("orientation done",
		"links", len(links), "arcs", o.Graph.LinkCount(), "cost", o.Cost)

	return o, nil
}

func addOrientArcs(nw *flow.Network, plans []orientPlan) error {
	var (
		i        int
		capacity int64
		err      error
	)
	for i = range plans {
		p := &plans[i]
		if p.tail == p.head {
			continue
		}
		// Demands are even; even capacities keep every flow even.
		capacity = flow.Unbounded
		if p.link.Capacity > 0 {
			capacity = int64(p.link.Capacity) &^ 1
		}
		if p.arcs[arcExtraCheap], err = nw.AddArc(p.tail, p.head, capacity, 2*p.cheap); err != nil {
			return err
		}
		if p.arcs[arcExtraDear], err = nw.AddArc(p.head, p.tail, capacity, 2*p.dear); err != nil {
			return err
		}
		if p.arcs[arcReversal], err = nw.AddArc(p.head, p.tail, 2, p.dear-p.cheap); err != nil {
			return err
		}
	}

	return nil
}

// realise builds the directed graph from the plans and the flow (nil = none).
func realise(n int, plans []orientPlan, flows []int64) (*Orientation, error) {
	o := &Orientation{
		Graph: core.New(core.Directed, core.WithVertices(n), core.WithLinkCapacity(len(plans))),
		Flow:  flows,
	}
	at := func(p *orientPlan, k int) int64 {
		if flows == nil || p.arcs[k] < 0 {
			return 0
		}

		return flows[p.arcs[k]]
	}
	addArc := func(l core.Link, from, to int, cost int64, extra bool) error {
		opts := []core.LinkOption{core.WithLinkMatchID(l.ID), core.WithLinkLabel(l.Label)}
		if extra {
			opts = append(opts, core.WithRequired(false))
		} else {
			opts = append(opts, core.WithRequired(l.Required), core.WithServiceCost(l.ServiceCost))
		}
		id, err := o.Graph.AddLink(from, to, cost, opts...)
		if err != nil {
			return err
		}
		for len(o.Reversed) <= id {
			o.Reversed = append(o.Reversed, false)
			o.Extra = append(o.Extra, false)
		}
		o.Reversed[id] = !l.IsLoop() && from == l.To
		o.Extra[id] = extra
		o.Cost += cost

		return nil
	}

	var (
		i   int
		k   int64
		err error
	)
	for i = range plans {
		p := &plans[i]
		switch rev := at(p, arcReversal); rev {
		case 0:
			err = addArc(p.link, p.tail, p.head, p.cheap, false)
		case 2:
			err = addArc(p.link, p.head, p.tail, p.dear, false)
		default:
			err = fmt.Errorf("%w: reversal flow %d on link %d", core.ErrInconsistent, rev, p.link.ID)
		}
		if err != nil {
			return nil, err
		}
		for k = 0; k < at(p, arcExtraCheap); k++ {
			if err = addArc(p.link, p.tail, p.head, p.cheap, true); err != nil {
				return nil, err
			}
		}
		for k = 0; k < at(p, arcExtraDear); k++ {
			if err = addArc(p.link, p.head, p.tail, p.dear, true); err != nil {
				return nil, err
			}
		}
	}

	return o, nil
}
