// SPDX-License-Identifier: MIT
package core

import (
	"fmt"

	"go.uber.org/multierr"
)

// Validate recomputes every derived counter from the link table and reports all
// violations at once.
//
// Checked invariants:
//   - link endpoints are vertices of g and arcs only exist on Directed/Mixed graphs;
//   - per-vertex degree, in- and out-counters match the link table;
//   - incidence lists reference exactly the live links touching each vertex;
//   - the undirected degree sum is even;
//   - the live-link counter matches the table.
//
// Each violation wraps ErrInconsistent; the result is a multierr aggregate
// (use multierr.Errors to enumerate).
//
// Complexity:
//   - Time O(V + L), Space O(V).
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var err error
	n := len(g.vertices)
	degree := make([]int, n)
	in := make([]int, n)
	out := make([]int, n)
	incidence := make([]int, n)
	live := 0

	for id, l := range g.links {
		if l == nil {
			continue
		}
		live++
		if l.ID != id {
			err = multierr.Append(err, fmt.Errorf("%w: link slot %d holds id %d", ErrInconsistent, id, l.ID))
		}
		if !g.hasVertexLocked(l.From) || !g.hasVertexLocked(l.To) {
			err = multierr.Append(err, fmt.Errorf("%w: link %d endpoints %d-%d", ErrInconsistent, id, l.From, l.To))

			continue
		}
		if l.Directed && g.kind != Directed && g.kind != Mixed {
			err = multierr.Append(err, fmt.Errorf("%w: arc %d on a %s graph", ErrInconsistent, id, g.kind))
		}
		if l.Directed {
			out[l.From]++
			in[l.To]++
		} else {
			degree[l.From]++
			degree[l.To]++
		}
		incidence[l.From]++
		if l.To != l.From {
			incidence[l.To]++
		}
	}
	if live != g.linkCount {
		err = multierr.Append(err, fmt.Errorf("%w: link count %d, table holds %d", ErrInconsistent, g.linkCount, live))
	}

	sum := 0
	var v int
	for v = 1; v < n; v++ {
		vx := g.vertices[v]
		if vx.degree != degree[v] {
			err = multierr.Append(err, fmt.Errorf("%w: vertex %d degree %d, expected %d", ErrInconsistent, v, vx.degree, degree[v]))
		}
		if vx.in != in[v] || vx.out != out[v] {
			err = multierr.Append(err, fmt.Errorf("%w: vertex %d in/out %d/%d, expected %d/%d",
				ErrInconsistent, v, vx.in, vx.out, in[v], out[v]))
		}
		if len(g.adj[v]) != incidence[v] {
			err = multierr.Append(err, fmt.Errorf("%w: vertex %d lists %d incident links, expected %d",
				ErrInconsistent, v, len(g.adj[v]), incidence[v]))
		}
		for _, id := range g.adj[v] {
			if l := g.linkLocked(id); l == nil || (l.From != v && l.To != v) {
				err = multierr.Append(err, fmt.Errorf("%w: vertex %d lists foreign link %d", ErrInconsistent, v, id))
			}
		}
		sum += vx.degree
	}
	if sum%2 != 0 {
		err = multierr.Append(err, fmt.Errorf("%w: odd degree sum %d", ErrInconsistent, sum))
	}

	return err
}

// OddVertices returns the vertices with odd undirected degree, ascending.
func (g *Graph) OddVertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var odd []int
	var v int
	for v = 1; v < len(g.vertices); v++ {
		if g.vertices[v].degree%2 != 0 {
			odd = append(odd, v)
		}
	}

	return odd
}

// IsEven reports whether every vertex has even undirected degree.
func (g *Graph) IsEven() bool { return len(g.OddVertices()) == 0 }

// IsBalanced reports whether every vertex has InDegree == OutDegree.
func (g *Graph) IsBalanced() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var v int
	for v = 1; v < len(g.vertices); v++ {
		if g.vertices[v].in != g.vertices[v].out {
			return false
		}
	}

	return true
}
