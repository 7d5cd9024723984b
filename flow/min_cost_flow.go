package flow

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/arcroute/core"
)

const inf int64 = math.MaxInt64

// MinCostFlow routes all supply of nw to its demand vertices at minimum cost.
//
// Implementation:
//   - Stage 1: Read every vertex demand; the supplies and demands must balance.
//   - Stage 2: Build the residual network with a super-source (n+1) feeding each
//     supply vertex and a super-sink (n+2) draining each demand vertex.
//   - Stage 3: Bellman–Ford from a virtual root gives feasible potentials and
//     rejects negative-cost cycles.
//   - Stage 4: Repeat Dijkstra on reduced costs from the super-source, push the
//     bottleneck along the cheapest path and fold distances into the potentials,
//     until every unit of supply is routed.
//
// Errors:
//   - ErrNilNetwork, ErrNoDemandSet (wrapped with the vertex id).
//   - *core.InfeasibleError wrapping ErrInfeasible or ErrNegativeCycle.
//   - ErrAugmentationLimit, ctx.Err().
//
// Complexity:
//   - Time O(V·E + F·E log V), Space O(V + E).
func MinCostFlow(ctx context.Context, nw *Network, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}
	if nw == nil {
		return nil, ErrNilNetwork
	}

	var (
		supply, need int64
		d            int64
		err          error
		v            int
	)
	for v = 1; v <= nw.n; v++ {
		if d, err = nw.Demand(v); err != nil {
			return nil, err
		}
		if d < 0 {
			supply -= d
		} else {
			need += d
		}
	}
	if supply != need {
		return nil, core.Infeasible(core.PhaseFlow, ErrInfeasible,
			"total supply %d does not match total demand %d", supply, need)
	}

	r := newRunner(ctx, nw, o)
	if err = r.initPotentials(); err != nil {
		return nil, err
	}
	if err = r.augment(supply); err != nil {
		return nil, err
	}

	res := r.result()
	o.Logger.V(1).Info("min-cost flow solved",
		"vertices", nw.n, "arcs", len(nw.arcs), "units", supply,
		"cost", res.Cost, "augmentations", res.Augmentations)

	return res, nil
}

// residualArc is one half of a forward/backward residual pair.
type residualArc struct {
	to   int
	cap  int64
	cost int64
	rev  int // index of the paired arc in res[to]
}

// runner holds the mutable state of one MinCostFlow call.
type runner struct {
	ctx    context.Context
	opts   Options
	nw     *Network
	source int
	sink   int
	res    [][]residualArc
	pos    [][2]int // network arc id → (tail, index in res[tail])
	pot    []int64
	dist   []int64
	prevV  []int
	prevA  []int
	done   []bool
	pq     nodePQ
	augs   int
}

func newRunner(ctx context.Context, nw *Network, o Options) *runner {
	size := nw.n + 3
	r := &runner{
		ctx:    ctx,
		opts:   o,
		nw:     nw,
		source: nw.n + 1,
		sink:   nw.n + 2,
		res:    make([][]residualArc, size),
		pos:    make([][2]int, len(nw.arcs)),
		pot:    make([]int64, size),
		dist:   make([]int64, size),
		prevV:  make([]int, size),
		prevA:  make([]int, size),
		done:   make([]bool, size),
	}
	var i int
	for i = range nw.arcs {
		a := nw.arcs[i]
		r.pos[i] = [2]int{a.From, len(r.res[a.From])}
		r.addPair(a.From, a.To, a.Capacity, a.Cost)
	}
	var v int
	for v = 1; v <= nw.n; v++ {
		switch d := nw.demand[v]; {
		case d < 0:
			r.addPair(r.source, v, -d, 0)
		case d > 0:
			r.addPair(v, r.sink, d, 0)
		}
	}

	return r
}

// addPair appends a forward arc u→v and its zero-capacity backward twin.
func (r *runner) addPair(u, v int, capacity, cost int64) {
	fwd := residualArc{to: v, cap: capacity, cost: cost, rev: len(r.res[v])}
	bwd := residualArc{to: u, cap: 0, cost: -cost, rev: len(r.res[u])}
	if u == v {
		fwd.rev++
	}
	r.res[u] = append(r.res[u], fwd)
	r.res[v] = append(r.res[v], bwd)
}

// initPotentials runs Bellman–Ford from a virtual root joined to every vertex
// at cost 0, so every potential starts at 0 and only decreases.
func (r *runner) initPotentials() error {
	size := len(r.res)
	var (
		round, u, i int
		changed     bool
	)
	for round = 0; round < size; round++ {
		if err := r.ctx.Err(); err != nil {
			return err
		}
		changed = false
		for u = 1; u < size; u++ {
			for i = range r.res[u] {
				a := &r.res[u][i]
				if a.cap <= 0 {
					continue
				}
				if c := r.pot[u] + a.cost; c < r.pot[a.to] {
					r.pot[a.to] = c
					changed = true
				}
			}
		}
		if !changed {
			return nil
		}
	}

	return core.Infeasible(core.PhaseFlow, ErrNegativeCycle,
		"potentials still improving after %d rounds", size)
}

// augment pushes supply units along successive cheapest paths.
func (r *runner) augment(supply int64) error {
	var (
		routed, push int64
		v, i         int
	)
	for routed < supply {
		if err := r.ctx.Err(); err != nil {
			return err
		}
		if r.opts.MaxAugmentations > 0 && r.augs >= r.opts.MaxAugmentations {
			return fmt.Errorf("%w: %d paths routed %d of %d units",
				ErrAugmentationLimit, r.augs, routed, supply)
		}
		r.dijkstra()
		if r.dist[r.sink] == inf {
			return core.Infeasible(core.PhaseFlow, ErrInfeasible,
				"%d of %d supply units cannot reach a demand vertex", supply-routed, supply)
		}
		for v = range r.dist {
			if r.dist[v] != inf {
				r.pot[v] += r.dist[v]
			}
		}

		push = supply - routed
		for v = r.sink; v != r.source; v = r.prevV[v] {
			if c := r.res[r.prevV[v]][r.prevA[v]].cap; c < push {
				push = c
			}
		}
		var unit int64
		for v = r.sink; v != r.source; v = r.prevV[v] {
			u := r.prevV[v]
			i = r.prevA[v]
			a := &r.res[u][i]
			unit += a.cost
			if a.cap != Unbounded {
				a.cap -= push
			}
			if twin := &r.res[v][a.rev]; twin.cap != Unbounded {
				twin.cap += push
			}
		}
		routed += push
		r.augs++
		r.opts.Logger.V(2).Info("augmenting path",
			"units", push, "unitCost", unit, "routed", routed, "supply", supply)
	}

	return nil
}

// dijkstra fills dist/prevV/prevA from the super-source using reduced costs.
func (r *runner) dijkstra() {
	var v int
	for v = range r.dist {
		r.dist[v] = inf
		r.done[v] = false
		r.prevV[v], r.prevA[v] = -1, -1
	}
	r.pq = r.pq[:0]
	r.dist[r.source] = 0
	heap.Push(&r.pq, nodeItem{v: r.source})

	var (
		i  int
		nd int64
	)
	for r.pq.Len() > 0 {
		it := heap.Pop(&r.pq).(nodeItem)
		if r.done[it.v] {
			continue
		}
		r.done[it.v] = true
		u := it.v
		for i = range r.res[u] {
			a := &r.res[u][i]
			if a.cap <= 0 || r.done[a.to] {
				continue
			}
			nd = r.dist[u] + a.cost + r.pot[u] - r.pot[a.to]
			if nd < r.dist[a.to] {
				r.dist[a.to] = nd
				r.prevV[a.to], r.prevA[a.to] = u, i
				heap.Push(&r.pq, nodeItem{v: a.to, dist: nd})
			}
		}
	}
}

func (r *runner) result() *Result {
	res := &Result{Flow: make([]int64, len(r.nw.arcs)), Augmentations: r.augs}
	var i int
	for i = range r.nw.arcs {
		p := r.pos[i]
		a := r.res[p[0]][p[1]]
		f := r.res[a.to][a.rev].cap
		res.Flow[i] = f
		res.Cost += f * r.nw.arcs[i].Cost
	}

	return res
}

// nodeItem is a lazy heap entry; stale entries are skipped via done.
type nodeItem struct {
	v    int
	dist int64
}

// nodePQ orders by distance, then vertex index.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].v < pq[j].v
}
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x any)   { *pq = append(*pq, x.(nodeItem)) }
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
