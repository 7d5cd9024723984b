package balance

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/arcroute/core"
	"github.com/katalvlaran/arcroute/flow"
	"github.com/katalvlaran/arcroute/shortest"
)

// Classes is the split of windy links by cost asymmetry.
type Classes struct {
	// E1 holds links with |Cost − ReverseCost| > Threshold·Average, ascending.
	E1 []int
	// E2 holds the remaining links, ascending.
	E2 []int
	// Average is Σ(Cost+ReverseCost) / 2m.
	Average   float64
	Threshold float64
}

// Classify splits the links of g into E1 and E2 with split fraction k.
func Classify(g *core.Graph, k float64) *Classes {
	links := g.Links()
	c := &Classes{Threshold: k}
	if len(links) == 0 {
		return c
	}
	var sum int64
	for _, l := range links {
		sum += l.Cost + l.ReverseCost
	}
	c.Average = float64(sum) / float64(2*len(links))

	var diff int64
	for _, l := range links {
		diff = l.Cost - l.ReverseCost
		if diff < 0 {
			diff = -diff
		}
		if float64(diff) > k*c.Average {
			c.E1 = append(c.E1, l.ID)
		} else {
			c.E2 = append(c.E2, l.ID)
		}
	}

	return c
}

// Skeleton returns a directed graph on the vertices of g with one arc per E1
// link in its cheaper direction (MatchID = link id). Its deltas are the
// demands of the auxiliary network.
func Skeleton(g *core.Graph, c *Classes) (*core.Graph, error) {
	s := core.New(core.Directed, core.WithVertices(g.VertexCount()), core.WithLinkCapacity(len(c.E1)))
	var (
		l   core.Link
		err error
	)
	for _, id := range c.E1 {
		if l, err = g.Link(id); err != nil {
			return nil, err
		}
		if l.Cost < l.ReverseCost {
			_, err = s.AddLink(l.From, l.To, l.Cost, core.WithLinkMatchID(l.ID))
		} else {
			_, err = s.AddLink(l.To, l.From, l.ReverseCost, core.WithLinkMatchID(l.ID))
		}
		if err != nil {
			return nil, fmt.Errorf("balance: skeleton arc for link %d: %w", id, err)
		}
	}

	return s, nil
}

// AuxArc describes one arc of the auxiliary network.
type AuxArc struct {
	// Link is the path-graph link the arc stands for.
	Link int
	// Forward reports that the arc runs From→To of Link.
	Forward bool
	// Bounded marks the capacity-2 arc added for an E1 link.
	Bounded bool
}

// Auxiliary is the flow network of the windy construction.
type Auxiliary struct {
	Network *flow.Network
	Arcs    []AuxArc // indexed by network arc id
}

// AuxiliaryNetwork builds the flow network for g, its classes and skeleton:
// every path-graph link yields an arc each way at twice its directional cost,
// every E1 link adds a capacity-2 arc in its costlier direction at
// Cost+ReverseCost, and vertex demands are the skeleton deltas.
func AuxiliaryNetwork(g *core.Graph, c *Classes, skeleton *core.Graph, opts ...Option) (*Auxiliary, error) {
	r, err := newRun(g, opts, core.Windy, core.Undirected)
	if err != nil {
		return nil, err
	}

	return r.auxiliary(c, skeleton)
}

func (r *run) auxiliary(c *Classes, skeleton *core.Graph) (*Auxiliary, error) {
	n := r.path.VertexCount()
	aux := &Auxiliary{Network: flow.NewNetwork(n)}
	var (
		v   int
		d   int64
		err error
	)
	for v = 1; v <= n; v++ {
		d = 0
		if v <= skeleton.VertexCount() {
			d = int64(skeleton.Delta(v))
		}
		if err = aux.Network.SetDemand(v, d); err != nil {
			return nil, err
		}
	}

	add := func(from, to int, capacity, cost int64, a AuxArc) error {
		if _, err := aux.Network.AddArc(from, to, capacity, cost); err != nil {
			return err
		}
		aux.Arcs = append(aux.Arcs, a)

		return nil
	}
	for _, p := range r.path.Links() {
		if err = add(p.From, p.To, flow.Unbounded, 2*p.Cost, AuxArc{Link: p.ID, Forward: true}); err != nil {
			return nil, err
		}
		if err = add(p.To, p.From, flow.Unbounded, 2*p.ReverseCost, AuxArc{Link: p.ID}); err != nil {
			return nil, err
		}
	}

	var l core.Link
	for _, id := range c.E1 {
		if l, err = r.g.Link(id); err != nil {
			return nil, err
		}
		a := AuxArc{Link: r.pathID(l), Bounded: true}
		if l.Cost < l.ReverseCost {
			err = add(l.To, l.From, 2, l.Cost+l.ReverseCost, a)
		} else {
			a.Forward = true
			err = add(l.From, l.To, 2, l.Cost+l.ReverseCost, a)
		}
		if err != nil {
			return nil, err
		}
	}

	return aux, nil
}

// doubled returns the path-graph links worth a second copy: E1 links carrying
// flow ≥ 1 and E2 links carrying flow ≥ 2 on an unbounded arc.
func doubled(aux *Auxiliary, strong map[int]bool, flows []int64) []int {
	set := make(map[int]bool)
	for i, a := range aux.Arcs {
		if a.Bounded {
			continue
		}
		if (strong[a.Link] && flows[i] >= 1) || (!strong[a.Link] && flows[i] >= 2) {
			set[a.Link] = true
		}
	}
	out := make([]int, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}

// Windy makes every vertex of a windy graph even with the improved windy
// postman construction; Orient then yields the balanced tour graph.
//
// Implementation:
//   - Stage 1: Classify links (E1/E2) and build the cheaper-direction skeleton.
//   - Stage 2: Solve the auxiliary min-cost flow with skeleton deltas as demands.
//   - Stage 3: Duplicate L = {E1 with flow ≥ 1} ∪ {E2 with flow ≥ 2}.
//   - Stage 4: Pair the remaining odd vertices by shortest paths on the averaged
//     graph (Cost+ReverseCost, L free); crossing a duplicated L link again
//     drops its duplicate instead of adding a third copy.
//
// An already even graph is left untouched. Undirected graphs are accepted
// and treated as windy graphs with symmetric costs.
//
// Errors:
//   - ErrNilGraph, core.ErrWrongLinkType, ErrPathGraphMismatch.
//   - *core.InfeasibleError from the flow or matching phase, ctx.Err().
func Windy(ctx context.Context, g *core.Graph, opts ...Option) (*Augmentation, error) {
	r, err := newRun(g, opts, core.Windy, core.Undirected)
	if err != nil {
		return nil, err
	}
	aug := &Augmentation{}
	if g.IsEven() {
		r.opts.Logger.V(1).Info("windy graph already even")

		return aug, nil
	}

	c := Classify(g, r.opts.Threshold)
	skel, err := Skeleton(g, c)
	if err != nil {
		return nil, err
	}
	aux, err := r.auxiliary(c, skel)
	if err != nil {
		return nil, err
	}
	res, err := flow.MinCostFlow(ctx, aux.Network, flow.WithLogger(r.opts.Logger))
	if err != nil {
		return nil, err
	}
	aug.Flow = res.Flow

	strong := make(map[int]bool, len(c.E1))
	var l core.Link
	for _, id := range c.E1 {
		if l, err = g.Link(id); err != nil {
			return nil, err
		}
		strong[r.pathID(l)] = true
	}
	twice := doubled(aux, strong, res.Flow)
	r.opts.Logger.V(1).Info("windy classes",
		"e1", len(c.E1), "e2", len(c.E2), "average", c.Average, "doubled", len(twice))

	toggle := make(map[int]int, len(twice))
	var id int
	for _, pid := range twice {
		if l, err = r.path.Link(pid); err != nil {
			return nil, err
		}
		if id, err = r.duplicate(l); err != nil {
			return nil, err
		}
		toggle[pid] = id
		aug.Added = append(aug.Added, id)
	}

	averaged := shortest.WithSymmetricCost(func(l core.Link) int64 {
		if _, free := toggle[l.ID]; free {
			return 0
		}

		return l.Cost + l.ReverseCost
	})
	if err = r.pairOdd(ctx, aug, toggle, averaged); err != nil {
		return nil, err
	}
	aug.Added = slices.DeleteFunc(aug.Added, func(id int) bool { return !g.HasLink(id) })

	aug.Cost = 0
	for _, id = range aug.Added {
		if l, err = g.Link(id); err != nil {
			return nil, err
		}
		aug.Cost += l.Cost + l.ReverseCost
	}
	r.opts.Logger.V(1).Info("windy balancing done",
		"pairs", len(aug.Pairs), "added", len(aug.Added), "cost", aug.Cost)

	return aug, nil
}
