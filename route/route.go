// SPDX-License-Identifier: MIT
package route

import (
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/arcroute/core"
)

// Route is an immutable walk over one graph snapshot.
//
// at[i] is the vertex before step i, so len(at) == len(steps)+1. tc and sc cache
// the travel cost and the service charge of each step's link so that the
// compact view can be rebuilt without touching the graph.
type Route struct {
	g       *core.Graph
	version uint64

	steps []Step
	at    []int
	tc    []int64
	sc    []int64

	travel   int64
	deadhead int64
	service  int64

	serviced map[int]bool
	units    []Unit
}

// New returns an empty route anchored at start.
//
// Errors: ErrNilGraph, core.ErrVertexNotFound.
func New(g *core.Graph, start int) (*Route, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("route: start %d: %w", start, core.ErrVertexNotFound)
	}

	return &Route{
		g:        g,
		version:  g.Version(),
		at:       []int{start},
		serviced: make(map[int]bool),
	}, nil
}

// FromCircuit wraps a link sequence (typically euler.Circuit output) walked
// from start. The direction of every undirected step is inferred from the
// walk; policy picks the servicing traversals of required links.
//
// Errors: ErrNilGraph, core.ErrVertexNotFound, core.ErrLinkNotFound,
// ErrDiscontinuous (including arcs that do not leave the current vertex).
//
// Complexity: O(len(links)).
func FromCircuit(g *core.Graph, start int, links []int, policy Policy) (*Route, error) {
	r, err := New(g, start)
	if err != nil {
		return nil, err
	}

	var last map[int]int
	if policy == ServeLast {
		last = make(map[int]int, len(links))
		for i, id := range links {
			last[id] = i
		}
	}

	r.grow(len(links))
	var (
		i, id int
		l     core.Link
	)
	for i, id = range links {
		if l, err = g.Link(id); err != nil {
			return nil, fmt.Errorf("route: step %d: %w", i, err)
		}
		cur := r.End()
		if !l.Leaves(cur) {
			return nil, fmt.Errorf("%w: step %d: link %d does not leave %d", ErrDiscontinuous, i, id, cur)
		}
		s := Step{Link: id, Forward: l.From == cur}
		if l.Required {
			switch policy {
			case ServeFirst:
				s.Service = !r.serviced[id]
			case ServeLast:
				s.Service = last[id] == i
			}
		}
		r.push(l, s)
	}

	return r, nil
}

// Check reports ErrStaleGraph unless g is the unmodified graph r was built on.
func (r *Route) Check(g *core.Graph) error {
	if g != r.g {
		return fmt.Errorf("%w: route belongs to another graph", ErrStaleGraph)
	}

	return r.fresh()
}

func (r *Route) fresh() error {
	if v := r.g.Version(); v != r.version {
		return fmt.Errorf("%w: built on version %d, graph is at %d", ErrStaleGraph, r.version, v)
	}

	return nil
}

// Append returns r extended by steps.
//
// Errors: ErrStaleGraph, core.ErrLinkNotFound, ErrDiscontinuous,
// ErrWrongDirection, ErrAlreadyServiced. On error r is unchanged.
//
// Complexity: O(len(r)) for the copy; cost is updated per appended step only.
func (r *Route) Append(steps ...Step) (*Route, error) {
	if err := r.fresh(); err != nil {
		return nil, err
	}
	next := r.clone(len(steps))
	for i, s := range steps {
		l, err := next.resolve(next.End(), s)
		if err != nil {
			return nil, fmt.Errorf("route: append %d: %w", i, err)
		}
		next.push(l, s)
	}

	return next, nil
}

// Splice returns r with the closed walk sub inserted before step pos, so that
// sub starts and ends at Vertex(pos). pos == Len() appends at the end.
//
// Errors: ErrStaleGraph, ErrIndexOutOfRange, ErrNotClosed, plus the step
// errors of Append.
func (r *Route) Splice(pos int, sub []Step) (*Route, error) {
	if err := r.fresh(); err != nil {
		return nil, err
	}
	if pos < 0 || pos > len(r.steps) {
		return nil, fmt.Errorf("%w: splice at %d of %d", ErrIndexOutOfRange, pos, len(r.steps))
	}
	if len(sub) == 0 {
		return r, nil
	}

	// Walk sub on a scratch route anchored at the splice vertex.
	anchor := r.at[pos]
	part := &Route{g: r.g, version: r.version, at: []int{anchor}, serviced: maps.Clone(r.serviced)}
	part.grow(len(sub))
	for i, s := range sub {
		l, err := part.resolve(part.End(), s)
		if err != nil {
			return nil, fmt.Errorf("route: splice step %d: %w", i, err)
		}
		part.push(l, s)
	}
	if part.End() != anchor {
		return nil, fmt.Errorf("%w: sub-walk from %d ends at %d", ErrNotClosed, anchor, part.End())
	}

	next := &Route{
		g:        r.g,
		version:  r.version,
		steps:    slices.Concat(r.steps[:pos], part.steps, r.steps[pos:]),
		at:       slices.Concat(r.at[:pos], part.at, r.at[pos+1:]),
		tc:       slices.Concat(r.tc[:pos], part.tc, r.tc[pos:]),
		sc:       slices.Concat(r.sc[:pos], part.sc, r.sc[pos:]),
		travel:   r.travel + part.travel,
		deadhead: r.deadhead + part.deadhead,
		service:  r.service + part.service,
		serviced: part.serviced,
	}
	next.units = compact(next.steps, next.at, next.tc, next.sc)

	return next, nil
}

// SetService returns r with the service flag of step i set to on.
//
// Errors: ErrStaleGraph, ErrIndexOutOfRange, ErrAlreadyServiced (another step
// already services the link).
func (r *Route) SetService(i int, on bool) (*Route, error) {
	if err := r.fresh(); err != nil {
		return nil, err
	}
	if i < 0 || i >= len(r.steps) {
		return nil, fmt.Errorf("%w: step %d of %d", ErrIndexOutOfRange, i, len(r.steps))
	}
	if r.steps[i].Service == on {
		return r, nil
	}
	id := r.steps[i].Link
	if on && r.serviced[id] {
		return nil, fmt.Errorf("%w: link %d", ErrAlreadyServiced, id)
	}

	next := r.clone(0)
	next.steps[i].Service = on
	if on {
		next.serviced[id] = true
		next.service += r.sc[i]
		next.deadhead -= r.tc[i]
	} else {
		delete(next.serviced, id)
		next.service -= r.sc[i]
		next.deadhead += r.tc[i]
	}
	next.units = compact(next.steps, next.at, next.tc, next.sc)

	return next, nil
}

// resolve checks that s can be walked from cur and returns its link.
func (r *Route) resolve(cur int, s Step) (core.Link, error) {
	l, err := r.g.Link(s.Link)
	if err != nil {
		return l, err
	}
	if l.Directed && !s.Forward {
		return l, fmt.Errorf("%w: arc %d", ErrWrongDirection, s.Link)
	}
	if tail(l, s.Forward) != cur {
		return l, fmt.Errorf("%w: link %d does not leave %d", ErrDiscontinuous, s.Link, cur)
	}
	if s.Service && r.serviced[s.Link] {
		return l, fmt.Errorf("%w: link %d", ErrAlreadyServiced, s.Link)
	}

	return l, nil
}

// push appends a validated step and patches costs and the compact view.
func (r *Route) push(l core.Link, s Step) {
	t := travel(l, s.Forward)
	from, to := r.End(), head(l, s.Forward)

	r.steps = append(r.steps, s)
	r.at = append(r.at, to)
	r.tc = append(r.tc, t)
	r.sc = append(r.sc, l.ServiceCost)
	r.travel += t
	if s.Service {
		r.service += l.ServiceCost
		r.serviced[s.Link] = true
	} else {
		r.deadhead += t
	}

	c := stepCost(l, s)
	if n := len(r.units); !s.Service && n > 0 && r.units[n-1].Service == 0 {
		u := &r.units[n-1]
		u.End = to
		u.Steps++
		u.Cost += c

		return
	}
	unit := Unit{Start: from, End: to, Steps: 1, Cost: c}
	if s.Service {
		unit.Service = s.Link
	}
	r.units = append(r.units, unit)
}

// grow reserves room for n more steps.
func (r *Route) grow(n int) {
	r.steps = slices.Grow(r.steps, n)
	r.at = slices.Grow(r.at, n)
	r.tc = slices.Grow(r.tc, n)
	r.sc = slices.Grow(r.sc, n)
}

// clone copies r with room for extra more steps.
func (r *Route) clone(extra int) *Route {
	c := *r
	c.steps = slices.Grow(slices.Clone(r.steps), extra)
	c.at = slices.Grow(slices.Clone(r.at), extra)
	c.tc = slices.Grow(slices.Clone(r.tc), extra)
	c.sc = slices.Grow(slices.Clone(r.sc), extra)
	c.units = slices.Clone(r.units)
	c.serviced = maps.Clone(r.serviced)
	if c.serviced == nil {
		c.serviced = make(map[int]bool)
	}

	return &c
}

// compact rebuilds the unit view from scratch.
func compact(steps []Step, at []int, tc, sc []int64) []Unit {
	units := make([]Unit, 0, len(steps))
	for i, s := range steps {
		c := tc[i]
		if s.Service {
			c += sc[i]
			units = append(units, Unit{Start: at[i], End: at[i+1], Service: s.Link, Steps: 1, Cost: c})

			continue
		}
		if n := len(units); n > 0 && units[n-1].Service == 0 {
			units[n-1].End = at[i+1]
			units[n-1].Steps++
			units[n-1].Cost += c

			continue
		}
		units = append(units, Unit{Start: at[i], End: at[i+1], Steps: 1, Cost: c})
	}

	return units
}
