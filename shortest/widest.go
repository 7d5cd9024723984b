package shortest

import (
	"container/heap"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/arcroute/core"
)

// WidestResult holds max-min path widths from one source.
//
// Width[v] is the largest achievable minimum link cost over paths source→v
// (math.MaxInt64 for the source itself, NoWidth when unreachable) and Hops[v]
// the fewest links among the paths achieving it.
type WidestResult struct {
	Source int
	Width  []int64
	Hops   []int

	labels []label
	best   []int // label index per vertex, -1 when unreached
}

// label is one (vertex, hops) state of the search.
type label struct {
	vertex int
	width  int64
	hops   int
	link   int // link entering vertex (0 for the source)
	parent int // parent label index (-1 for the source)
}

// Widest computes widest (bottleneck) paths from source.
//
// Implementation:
//   - Stage 1: Push the source label (width +inf, 0 hops).
//   - Stage 2: Pop labels by width descending, hops ascending. A label is expanded
//     only if it uses strictly fewer hops than every label already popped at its
//     vertex; all those earlier labels are at least as wide, so it is dominated
//     otherwise. The first label popped at a vertex is its answer.
//   - Stage 3: Extend along every allowed traversal with width min(label, cost),
//     never beyond MaxHops.
//
// Errors:
//   - ErrNilGraph, ErrVertexNotFound.
//
// Complexity:
//   - Time O(L·H·log(L·H)), Space O(L·H) labels, H = MaxHops or V-1.
func Widest(g *core.Graph, source int, opts ...Option) (*WidestResult, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, source)
	}
	o := buildOptions(opts)
	n := g.VertexCount()
	maxHops := o.MaxHops
	if maxHops == 0 || maxHops > n-1 {
		maxHops = max(n-1, 0)
	}

	r := &widestRunner{
		g:        g,
		cost:     o.Cost,
		maxHops:  maxHops,
		minHops:  make([]int, n+1),
		links:    g.Links(),
		incident: make([][]int, n+1),
		res: &WidestResult{
			Source: source,
			Width:  make([]int64, n+1),
			Hops:   make([]int, n+1),
			best:   make([]int, n+1),
		},
	}
	r.init(source)
	r.process()

	return r.res, nil
}

// widestRunner holds the mutable state of one Widest execution.
type widestRunner struct {
	g        *core.Graph
	cost     CostFunc
	maxHops  int
	minHops  []int // fewest hops among popped labels per vertex
	links    []core.Link
	incident [][]int // indexes into links
	pq       labelPQ
	res      *WidestResult
}

func (r *widestRunner) init(source int) {
	for i, l := range r.links {
		r.incident[l.From] = append(r.incident[l.From], i)
		if !l.IsLoop() {
			r.incident[l.To] = append(r.incident[l.To], i)
		}
	}
	var v int
	for v = range r.minHops {
		r.minHops[v] = math.MaxInt
		r.res.Width[v] = NoWidth
		r.res.Hops[v] = -1
		r.res.best[v] = -1
	}
	heap.Init(&r.pq)
	r.push(label{vertex: source, width: math.MaxInt64, parent: -1})
}

func (r *widestRunner) push(lb label) {
	r.res.labels = append(r.res.labels, lb)
	heap.Push(&r.pq, labelItem{idx: len(r.res.labels) - 1, width: lb.width, hops: lb.hops})
}

func (r *widestRunner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(labelItem)
		lb := r.res.labels[item.idx]
		if lb.hops >= r.minHops[lb.vertex] {
			continue
		}
		r.minHops[lb.vertex] = lb.hops
		if r.res.best[lb.vertex] < 0 {
			r.res.best[lb.vertex] = item.idx
			r.res.Width[lb.vertex] = lb.width
			r.res.Hops[lb.vertex] = lb.hops
		}
		if lb.hops < r.maxHops {
			r.relax(item.idx, lb)
		}
	}
}

func (r *widestRunner) relax(idx int, lb label) {
	var (
		c  int64
		ok bool
		w  int64
	)
	for _, li := range r.incident[lb.vertex] {
		l := r.links[li]
		if c, ok = r.cost(l, lb.vertex); !ok {
			continue
		}
		next := l.Other(lb.vertex)
		if lb.hops+1 >= r.minHops[next] {
			continue
		}
		w = min(lb.width, c)
		r.push(label{vertex: next, width: w, hops: lb.hops + 1, link: l.ID, parent: idx})
	}
}

// Reached reports whether v is reachable from the source.
func (wr *WidestResult) Reached(v int) bool {
	return v >= 1 && v < len(wr.best) && wr.best[v] >= 0
}

// PathLinks returns the link ids of the widest path source→v in travel order.
func (wr *WidestResult) PathLinks(v int) ([]int, error) {
	if !wr.Reached(v) {
		return nil, fmt.Errorf("%w: %d→%d", ErrNoPath, wr.Source, v)
	}
	var out []int
	for idx := wr.best[v]; wr.labels[idx].parent >= 0; idx = wr.labels[idx].parent {
		out = append(out, wr.labels[idx].link)
	}
	slices.Reverse(out)

	return out, nil
}

// labelItem is a heap entry referencing a label by index.
type labelItem struct {
	idx   int
	width int64
	hops  int
}

// labelPQ is a max-heap on width, then min-heap on hops, then insertion order.
type labelPQ []labelItem

func (pq labelPQ) Len() int { return len(pq) }
func (pq labelPQ) Less(i, j int) bool {
	if pq[i].width != pq[j].width {
		return pq[i].width > pq[j].width
	}
	if pq[i].hops != pq[j].hops {
		return pq[i].hops < pq[j].hops
	}

	return pq[i].idx < pq[j].idx
}
func (pq labelPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *labelPQ) Push(x any)   { *pq = append(*pq, x.(labelItem)) }
func (pq *labelPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
