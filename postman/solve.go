// SPDX-License-Identifier: MIT
package postman

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/arcroute/balance"
	"github.com/katalvlaran/arcroute/core"
	"github.com/katalvlaran/arcroute/euler"
	"github.com/katalvlaran/arcroute/route"
)

// Solve dispatches on g.Kind(): Undirected, Directed or Windy.
//
// Errors: ErrNilGraph, ErrUnsupported (Mixed, wrapping core.ErrWrongLinkType),
// and everything the selected solver returns, including euler.ErrBadStart for
// a WithStart vertex off the balanced required graph.
func Solve(ctx context.Context, g *core.Graph, opts ...Option) (*Solution, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	switch g.Kind() {
	case core.Undirected:
		return Undirected(ctx, g, opts...)
	case core.Directed:
		return Directed(ctx, g, opts...)
	case core.Windy:
		return Windy(ctx, g, opts...)
	default:
		return nil, fmt.Errorf("%w: %s: %w", ErrUnsupported, g.Kind(), core.ErrWrongLinkType)
	}
}

// Undirected solves the undirected (rural) postman problem: odd vertices of the
// required subgraph are paired by minimum-weight perfect matching over shortest
// paths in g.
//
// Errors:
//   - ErrNilGraph, ErrNoRequiredLinks, core.ErrWrongLinkType, core.ErrVertexNotFound.
//   - euler.ErrBadStart: WithStart names a vertex that the balanced required
//     graph does not touch.
//   - *core.InfeasibleError: PhasePrecondition (ErrDisconnected), PhaseMatching,
//     PhaseExtraction.
//   - ctx.Err().
//
// Complexity: O(V³) shortest paths plus O(|odd|³) matching.
func Undirected(ctx context.Context, g *core.Graph, opts ...Option) (*Solution, error) {
	s, err := prepare(g, core.Undirected, opts)
	if err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	aug, err := balance.Undirected(ctx, s.work, s.balanceOptions()...)
	if err != nil {
		return nil, fmt.Errorf("postman: balance: %w", err)
	}
	s.log.V(1).Info("graph balanced", "method", "matching", "pairs", len(aug.Pairs),
		"added", len(aug.Added), "cost", aug.Cost)

	sol, err := s.extract(ctx, s.work, s.workToInput)
	if err != nil {
		return nil, err
	}
	sol.Augmentation = aug

	return sol, nil
}

// Directed solves the directed (rural) postman problem: imbalances of the
// required subgraph are repaired by a min-cost flow over the arcs of g.
//
// Errors: as Undirected, with PhaseFlow in place of PhaseMatching.
func Directed(ctx context.Context, g *core.Graph, opts ...Option) (*Solution, error) {
	s, err := prepare(g, core.Directed, opts)
	if err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	aug, err := balance.Directed(ctx, s.work, s.balanceOptions()...)
	if err != nil {
		return nil, fmt.Errorf("postman: balance: %w", err)
	}
	s.log.V(1).Info("graph balanced", "method", "flow", "added", len(aug.Added), "cost", aug.Cost)

	sol, err := s.extract(ctx, s.work, s.workToInput)
	if err != nil {
		return nil, err
	}
	sol.Augmentation = aug

	return sol, nil
}

// Windy solves the windy (rural) postman problem: the windy construction makes
// the required subgraph even, Orient turns it into a balanced directed graph
// and the circuit of that graph is walked on g.
//
// Errors: as Undirected, plus PhaseFlow and PhaseOrientation infeasibilities.
func Windy(ctx context.Context, g *core.Graph, opts ...Option) (*Solution, error) {
	s, err := prepare(g, core.Windy, opts)
	if err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	aug, err := balance.Windy(ctx, s.work, s.balanceOptions()...)
	if err != nil {
		return nil, fmt.Errorf("postman: balance: %w", err)
	}
	s.log.V(1).Info("graph even", "method", "windy", "pairs", len(aug.Pairs),
		"added", len(aug.Added), "cost", aug.Cost)

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	o, err := balance.Orient(ctx, s.work, balance.WithLogger(s.log))
	if err != nil {
		return nil, fmt.Errorf("postman: orient: %w", err)
	}
	s.log.V(1).Info("graph oriented", "arcs", o.Graph.LinkCount(), "cost", o.Cost)

	sol, err := s.extract(ctx, o.Graph, func(id int) (int, error) {
		arc, err := o.Graph.Link(id)
		if err != nil {
			return 0, err
		}

		return s.workToInput(arc.MatchID)
	})
	if err != nil {
		return nil, err
	}
	sol.Augmentation = aug
	sol.Orientation = o

	return sol, nil
}

// solver holds one validated solve.
type solver struct {
	g    *core.Graph
	work *core.Graph
	opts Options
	log  logr.Logger
}

func required(l core.Link) bool { return l.Required }

// prepare checks the shared preconditions and copies the required subgraph.
func prepare(g *core.Graph, kind core.Kind, opts []Option) (*solver, error) {
	o := buildOptions(opts)
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Kind() != kind {
		return nil, fmt.Errorf("postman: %w: %s solver on a %s graph", core.ErrWrongLinkType, kind, g.Kind())
	}
	if o.Start != 0 && !g.HasVertex(o.Start) {
		return nil, fmt.Errorf("postman: start %d: %w", o.Start, core.ErrVertexNotFound)
	}

	comps := core.Components(g, required)
	switch {
	case len(comps) == 0:
		return nil, ErrNoRequiredLinks
	case len(comps) > 1:
		return nil, core.Infeasible(core.PhasePrecondition, ErrDisconnected,
			"%d components of required links", len(comps))
	}

	s := &solver{g: g, work: g.Subgraph(required), opts: o, log: o.Logger}
	s.log.V(1).Info("solving", "kind", kind.String(), "vertices", g.VertexCount(),
		"links", g.LinkCount(), "required", s.work.LinkCount())

	return s, nil
}

func (s *solver) balanceOptions() []balance.Option {
	return []balance.Option{
		balance.WithLogger(s.log),
		balance.WithPathGraph(s.g),
		balance.WithMatching(s.opts.Matching),
		balance.WithThreshold(s.opts.Threshold),
	}
}

// workToInput maps a link of the working copy to the input link it stands for.
// Originals and duplicates both carry the input id in MatchID.
func (s *solver) workToInput(id int) (int, error) {
	l, err := s.work.Link(id)
	if err != nil {
		return 0, err
	}

	return l.MatchID, nil
}

// extract walks the balanced graph eg and replays the circuit on the input graph.
func (s *solver) extract(ctx context.Context, eg *core.Graph, toInput func(int) (int, error)) (*Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := s.opts.Start
	if start == 0 {
		for v := 1; v <= eg.VertexCount() && start == 0; v++ {
			if len(eg.Incident(v)) > 0 {
				start = v
			}
		}
	}

	circuit, err := euler.Circuit(ctx, eg, start)
	if err != nil {
		return nil, fmt.Errorf("postman: extract: %w", err)
	}
	ids := make([]int, len(circuit))
	for i, id := range circuit {
		if ids[i], err = toInput(id); err != nil {
			return nil, fmt.Errorf("postman: map step %d: %w", i, err)
		}
	}
	r, err := route.FromCircuit(s.g, start, ids, s.opts.Policy)
	if err != nil {
		return nil, fmt.Errorf("postman: route: %w", err)
	}
	s.log.V(1).Info("tour extracted", "start", start, "steps", r.Len(),
		"cost", r.Cost(), "deadhead", r.Deadhead())

	return &Solution{Kind: s.g.Kind(), Route: r, Balanced: eg, Circuit: circuit}, nil
}
