package euler

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/multierr"

	"github.com/katalvlaran/arcroute/core"
)

var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("euler: graph is nil")

	// ErrNotBalanced indicates an odd vertex (undirected) or in ≠ out (directed).
	ErrNotBalanced = errors.New("euler: graph is not balanced")

	// ErrIncomplete indicates that the walk could not reach every link.
	ErrIncomplete = errors.New("euler: circuit does not cover every link")

	// ErrBadStart indicates a start vertex without incident links.
	ErrBadStart = errors.New("euler: start vertex has no incident link")

	// ErrInvalidCircuit indicates a sequence that is not an Euler circuit of the graph.
	ErrInvalidCircuit = errors.New("euler: invalid circuit")
)

// checkEvery is how many steps pass between context checks.
const checkEvery = 1 << 10

// frame is one stack entry: the vertex reached and the link used to get there.
type frame struct {
	v   int
	via int
}

// Circuit returns an Euler circuit of g starting and ending at start.
//
// Implementation:
//   - Stage 1: Pre-check balance (even degrees, or in = out for Directed).
//   - Stage 2: Iterative Hierholzer over per-vertex cursors; each vertex leaves
//     over its lowest unused link id, so the result is deterministic.
//   - Stage 3: Post-check that every link was consumed.
//
// start = 0 picks the lowest vertex with an incident link. A graph without
// links yields an empty circuit.
//
// Errors:
//   - ErrNilGraph, core.ErrWrongLinkType (Mixed), core.ErrVertexNotFound, ErrBadStart.
//   - *core.InfeasibleError (PhaseExtraction) wrapping ErrNotBalanced or ErrIncomplete.
//   - ctx.Err().
//
// Complexity:
//   - Time O(V + L), Space O(V + L).
func Circuit(ctx context.Context, g *core.Graph, start int) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	directed := false
	switch g.Kind() {
	case core.Mixed:
		return nil, fmt.Errorf("euler: %w: mixed graphs need an orientation first", core.ErrWrongLinkType)
	case core.Directed:
		directed = true
		if !g.IsBalanced() {
			return nil, core.Infeasible(core.PhaseExtraction, ErrNotBalanced, "in-degree differs from out-degree")
		}
	default:
		if odd := g.OddVertices(); len(odd) > 0 {
			return nil, core.Infeasible(core.PhaseExtraction, ErrNotBalanced, "%d odd vertices", len(odd))
		}
	}

	m := g.LinkCount()
	if m == 0 {
		return []int{}, nil
	}
	n := g.VertexCount()
	if start == 0 {
		for v := 1; v <= n && start == 0; v++ {
			if len(g.Incident(v)) > 0 {
				start = v
			}
		}
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("euler: start %d: %w", start, core.ErrVertexNotFound)
	}

	// Snapshot adjacency and endpoints once.
	local := make([][]int, n+1)
	var v int
	for v = 1; v <= n; v++ {
		if directed {
			local[v] = g.OutLinks(v)
		} else {
			local[v] = g.Incident(v)
		}
	}
	if len(local[start]) == 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadStart, start)
	}
	links := make([]core.Link, g.MaxLinkID()+1)
	for _, l := range g.Links() {
		links[l.ID] = l
	}

	used := make([]bool, len(links))
	cursor := make([]int, n+1)
	circuit := make([]int, 0, m)
	stack := []frame{{v: start}}
	steps := 0
	for len(stack) > 0 {
		steps++
		if steps%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		top := stack[len(stack)-1]
		u := top.v
		for cursor[u] < len(local[u]) && used[local[u][cursor[u]]] {
			cursor[u]++
		}
		if cursor[u] == len(local[u]) {
			// Dead end: the link that led here closes the sub-circuit.
			stack = stack[:len(stack)-1]
			if top.via != 0 {
				circuit = append(circuit, top.via)
			}

			continue
		}
		id := local[u][cursor[u]]
		used[id] = true
		next := links[id].Other(u)
		if directed {
			next = links[id].To
		}
		stack = append(stack, frame{v: next, via: id})
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	slices.Reverse(circuit)

	if len(circuit) != m {
		return nil, core.Infeasible(core.PhaseExtraction, ErrIncomplete,
			"walk from %d covered %d of %d links", start, len(circuit), m)
	}

	return circuit, nil
}

// Verify reports every way circuit fails to be an Euler circuit of g from start:
// unknown or repeated links, missing links, a step that cannot leave the
// current vertex (including arcs walked backwards), or a walk that does not
// return to start. Violations wrap ErrInvalidCircuit and are aggregated with
// multierr.
func Verify(g *core.Graph, start int, circuit []int) error {
	if g == nil {
		return ErrNilGraph
	}
	var err error
	seen := make(map[int]bool, len(circuit))
	cur := start
	for i, id := range circuit {
		l, lerr := g.Link(id)
		if lerr != nil {
			err = multierr.Append(err, fmt.Errorf("%w: step %d: %w", ErrInvalidCircuit, i, lerr))

			continue
		}
		if seen[id] {
			err = multierr.Append(err, fmt.Errorf("%w: link %d repeated at step %d", ErrInvalidCircuit, id, i))
		}
		seen[id] = true
		if !l.Leaves(cur) {
			err = multierr.Append(err, fmt.Errorf("%w: step %d: link %d cannot leave vertex %d", ErrInvalidCircuit, i, id, cur))
		}
		if l.Directed {
			cur = l.To
		} else {
			cur = l.Other(cur)
		}
	}
	if len(circuit) > 0 && cur != start {
		err = multierr.Append(err, fmt.Errorf("%w: walk ends at %d, not %d", ErrInvalidCircuit, cur, start))
	}
	if missing := g.LinkCount() - len(seen); missing > 0 {
		err = multierr.Append(err, fmt.Errorf("%w: %d links never traversed", ErrInvalidCircuit, missing))
	}

	return err
}
