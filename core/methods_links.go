// File: methods_links.go
// Role: Link lifecycle and link queries.
//
// Determinism:
//   - Per-vertex incidence lists are kept in ascending link-id order, so every
//     query below returns ids in ascending order.
//
// AI-Hints (file):
//   - Link()/Links() return value copies; mutate through the Graph only.
package core

import (
	"fmt"
	"slices"
)

// AddLink connects from and to and returns the new link id.
//
// Implementation:
//   - Stage 1: Validate endpoints (ErrInvalidEndpoints).
//   - Stage 2: Apply options and check them against the graph Kind (ErrWrongLinkType).
//   - Stage 3: Register the link, update incidence lists and degree counters.
//
// Behavior highlights:
//   - Parallel links and loops are always allowed: duplicated traversals are
//     represented as parallel copies.
//   - Without WithReverseCost, ReverseCost mirrors Cost.
//
// Errors:
//   - ErrInvalidEndpoints: from or to is not a vertex of g.
//   - ErrWrongLinkType: WithReverseCost outside Windy, WithArc outside Mixed/Directed.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddLink(from, to int, cost int64, opts ...LinkOption) (int, error) {
	l := &Link{From: from, To: to, Cost: cost, Required: true}
	for _, opt := range opts {
		opt(l)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasVertexLocked(from) || !g.hasVertexLocked(to) {
		return 0, fmt.Errorf("%w: %d-%d", ErrInvalidEndpoints, from, to)
	}
	if l.reverseSet && g.kind != Windy {
		return 0, fmt.Errorf("%w: reverse cost on a %s graph", ErrWrongLinkType, g.kind)
	}
	if l.arcSet && g.kind != Mixed && g.kind != Directed {
		return 0, fmt.Errorf("%w: arc on a %s graph", ErrWrongLinkType, g.kind)
	}

	l.Directed = g.kind == Directed || (g.kind == Mixed && l.arcSet)
	if !l.reverseSet || l.Directed {
		l.ReverseCost = l.Cost
	}
	l.ID = len(g.links)
	g.attachLocked(l)

	return l.ID, nil
}

// attachLocked stores l under l.ID and updates counters. The caller holds g.mu.
func (g *Graph) attachLocked(l *Link) {
	for len(g.links) <= l.ID {
		g.links = append(g.links, nil)
	}
	g.links[l.ID] = l
	g.adj[l.From] = append(g.adj[l.From], l.ID)
	if l.To != l.From {
		g.adj[l.To] = append(g.adj[l.To], l.ID)
	}
	if l.Directed {
		g.vertices[l.From].out++
		g.vertices[l.To].in++
	} else {
		g.vertices[l.From].degree++
		g.vertices[l.To].degree++
	}
	g.linkCount++
	g.version++
}

// RemoveLink deletes link id and restores both endpoints' counters.
//
// Errors:
//   - ErrInvalidOperation wrapping ErrLinkNotFound when id is absent.
//
// Complexity:
//   - Time O(deg(From) + deg(To)).
func (g *Graph) RemoveLink(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	l := g.linkLocked(id)
	if l == nil {
		return fmt.Errorf("%w: remove link %d: %w", ErrInvalidOperation, id, ErrLinkNotFound)
	}
	g.adj[l.From] = removeID(g.adj[l.From], id)
	if l.To != l.From {
		g.adj[l.To] = removeID(g.adj[l.To], id)
	}
	if l.Directed {
		g.vertices[l.From].out--
		g.vertices[l.To].in--
	} else {
		g.vertices[l.From].degree--
		g.vertices[l.To].degree--
	}
	g.links[id] = nil
	g.linkCount--
	g.version++

	return nil
}

func removeID(ids []int, id int) []int {
	if i := slices.Index(ids, id); i >= 0 {
		return slices.Delete(ids, i, i+1)
	}

	return ids
}

func (g *Graph) linkLocked(id int) *Link {
	if id < 1 || id >= len(g.links) {
		return nil
	}

	return g.links[id]
}

// HasLink reports whether id is a live link of g.
func (g *Graph) HasLink(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.linkLocked(id) != nil
}

// Link returns a copy of link id.
func (g *Graph) Link(id int) (Link, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	l := g.linkLocked(id)
	if l == nil {
		return Link{}, fmt.Errorf("%w: %d", ErrLinkNotFound, id)
	}

	return *l, nil
}

// LinkCount returns the number of live links.
func (g *Graph) LinkCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.linkCount
}

// MaxLinkID returns the largest id ever allocated (size arrays indexed by link id
// with MaxLinkID()+1).
func (g *Graph) MaxLinkID() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.links) - 1
}

// Links returns copies of all live links in ascending id order.
func (g *Graph) Links() []Link {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Link, 0, g.linkCount)
	for _, l := range g.links {
		if l != nil {
			out = append(out, *l)
		}
	}

	return out
}

// LinkIDs returns the ids of all live links in ascending order.
func (g *Graph) LinkIDs() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]int, 0, g.linkCount)
	for _, l := range g.links {
		if l != nil {
			out = append(out, l.ID)
		}
	}

	return out
}

// Incident returns the ids of all links touching v, loops once.
func (g *Graph) Incident(v int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.hasVertexLocked(v) {
		return nil
	}

	return slices.Clone(g.adj[v])
}

// OutLinks returns the ids of links that can be traversed starting at v:
// arcs with tail v and every edge touching v.
func (g *Graph) OutLinks(v int) []int {
	return g.filterIncident(v, func(l *Link) bool { return l.Leaves(v) })
}

// InLinks returns the ids of links whose traversal can end at v:
// arcs with head v and every edge touching v.
func (g *Graph) InLinks(v int) []int {
	return g.filterIncident(v, func(l *Link) bool { return l.Enters(v) })
}

// FindLinks returns every link joining u and v; for arcs only those oriented u→v.
func (g *Graph) FindLinks(u, v int) []int {
	return g.filterIncident(u, func(l *Link) bool {
		if l.Directed {
			return l.From == u && l.To == v
		}

		return l.Other(u) == v
	})
}

func (g *Graph) filterIncident(v int, keep func(*Link) bool) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.hasVertexLocked(v) {
		return nil
	}
	var out []int
	for _, id := range g.adj[v] {
		if keep(g.links[id]) {
			out = append(out, id)
		}
	}

	return out
}
