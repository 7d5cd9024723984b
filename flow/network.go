package flow

import "fmt"

// Network is a directed flow network over vertices 1..n with per-vertex demands.
// It is not safe for concurrent mutation.
type Network struct {
	n         int
	arcs      []Arc
	demand    []int64
	demandSet []bool
}

// NewNetwork creates an empty network over vertices 1..n.
// Panics if n < 0.
func NewNetwork(n int) *Network {
	if n < 0 {
		panic("flow: NewNetwork requires n >= 0")
	}

	return &Network{
		n:         n,
		demand:    make([]int64, n+1),
		demandSet: make([]bool, n+1),
	}
}

// VertexCount returns n.
func (nw *Network) VertexCount() int { return nw.n }

// ArcCount returns the number of arcs added so far.
func (nw *Network) ArcCount() int { return len(nw.arcs) }

// Arc returns a copy of arc id.
func (nw *Network) Arc(id int) (Arc, error) {
	if id < 0 || id >= len(nw.arcs) {
		return Arc{}, fmt.Errorf("%w: arc %d", ErrInvalidArc, id)
	}

	return nw.arcs[id], nil
}

// Arcs returns a copy of all arcs, indexed by id.
func (nw *Network) Arcs() []Arc {
	out := make([]Arc, len(nw.arcs))
	copy(out, nw.arcs)

	return out
}

// AddArc appends an arc and returns its id (0-based, in insertion order).
// capacity must be >= 0; use Unbounded for no limit.
func (nw *Network) AddArc(from, to int, capacity, cost int64) (int, error) {
	if !nw.valid(from) || !nw.valid(to) {
		return 0, fmt.Errorf("%w: %d→%d outside 1..%d", ErrInvalidArc, from, to, nw.n)
	}
	if capacity < 0 {
		return 0, fmt.Errorf("%w: %d→%d capacity %d", ErrInvalidArc, from, to, capacity)
	}
	nw.arcs = append(nw.arcs, Arc{From: from, To: to, Capacity: capacity, Cost: cost})

	return len(nw.arcs) - 1, nil
}

// SetDemand assigns the demand of v (positive = must receive).
func (nw *Network) SetDemand(v int, d int64) error {
	if !nw.valid(v) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	nw.demand[v], nw.demandSet[v] = d, true

	return nil
}

// Demand returns the demand of v, or ErrNoDemandSet if none was assigned.
func (nw *Network) Demand(v int) (int64, error) {
	if !nw.valid(v) {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	if !nw.demandSet[v] {
		return 0, fmt.Errorf("flow: vertex %d: %w", v, ErrNoDemandSet)
	}

	return nw.demand[v], nil
}

func (nw *Network) valid(v int) bool { return v >= 1 && v <= nw.n }
