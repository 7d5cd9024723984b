// File: methods_clone.go
// Role: Deep copies with dense id remapping.
//
// Determinism:
//   - Links are renumbered 1..m in ascending source-id order.
//
// AI-Hints (file):
//   - Every copied vertex and link records its source id in MatchID; use it to map
//     results computed on a copy back to the source graph.
package core

// Clone returns a deep copy of g with dense link ids.
//
// Behavior highlights:
//   - Costs, flags, demands, coordinates and labels are preserved.
//   - Vertex ids are unchanged (vertices are never removed); Vertex.MatchID = source id.
//   - Link ids are compacted; Link.MatchID = source link id.
//
// Complexity:
//   - Time O(V + L), Space O(V + L).
func (g *Graph) Clone() *Graph {
	return g.Subgraph(nil)
}

// CloneEmpty returns a copy of g's vertices without any links.
func (g *Graph) CloneEmpty() *Graph {
	return g.Subgraph(func(Link) bool { return false })
}

// Subgraph returns a deep copy of g that keeps only links accepted by keep
// (nil keeps all). Vertex ids are preserved so both graphs stay aligned.
func (g *Graph) Subgraph(keep func(Link) bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		kind:     g.kind,
		vertices: make([]Vertex, len(g.vertices)),
		links:    make([]*Link, 1, g.linkCount+1),
		adj:      make([][]int, len(g.vertices)),
	}
	var i int
	for i = 1; i < len(g.vertices); i++ {
		v := g.vertices[i]
		v.degree, v.in, v.out = 0, 0, 0
		v.MatchID = v.ID
		c.vertices[i] = v
	}
	for _, l := range g.links {
		if l == nil || (keep != nil && !keep(*l)) {
			continue
		}
		cp := *l
		cp.MatchID = l.ID
		cp.ID = len(c.links)
		c.attachLocked(&cp)
	}
	c.version = 0

	return c
}
