// File: connectivity.go
// Role: Breadth-first connectivity over a filtered set of links.
//
// Determinism:
//   - Components are discovered from the lowest vertex id upward; each component's
//     vertex list is ascending.
package core

import "slices"

// componentWalker holds the mutable BFS state shared by the connectivity helpers.
type componentWalker struct {
	g     *Graph
	keep  func(Link) bool
	seen  []bool
	queue []int
}

// Components returns the weakly connected components spanned by the links accepted
// by keep (nil keeps all). Vertices with no accepted link are not reported.
//
// Complexity:
//   - Time O(V + L), Space O(V).
func Components(g *Graph, keep func(Link) bool) [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w := &componentWalker{g: g, keep: keep, seen: make([]bool, len(g.vertices))}
	var comps [][]int
	var v int
	for v = 1; v < len(g.vertices); v++ {
		if w.seen[v] || !w.touches(v) {
			continue
		}
		comp := w.walk(v, false)
		slices.Sort(comp)
		comps = append(comps, comp)
	}

	return comps
}

// ConnectedLinks reports whether the links accepted by keep form at most one
// weakly connected component.
func ConnectedLinks(g *Graph, keep func(Link) bool) bool {
	return len(Components(g, keep)) <= 1
}

// ReachableFrom returns the vertices reachable from source following traversal
// directions (arcs forward only) over links accepted by keep, in ascending order.
func ReachableFrom(g *Graph, source int, keep func(Link) bool) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.hasVertexLocked(source) {
		return nil
	}
	w := &componentWalker{g: g, keep: keep, seen: make([]bool, len(g.vertices))}
	out := w.walk(source, true)
	slices.Sort(out)

	return out
}

func (w *componentWalker) accepts(l *Link) bool { return w.keep == nil || w.keep(*l) }

func (w *componentWalker) touches(v int) bool {
	for _, id := range w.g.adj[v] {
		if w.accepts(w.g.links[id]) {
			return true
		}
	}

	return false
}

// walk runs BFS from start; directed restricts expansion to links leaving the
// current vertex.
func (w *componentWalker) walk(start int, directed bool) []int {
	w.seen[start] = true
	w.queue = append(w.queue[:0], start)
	var visited []int
	for len(w.queue) > 0 {
		u := w.queue[0]
		w.queue = w.queue[1:]
		visited = append(visited, u)
		for _, id := range w.g.adj[u] {
			l := w.g.links[id]
			if !w.accepts(l) || (directed && !l.Leaves(u)) {
				continue
			}
			next := l.Other(u)
			if !w.seen[next] {
				w.seen[next] = true
				w.queue = append(w.queue, next)
			}
		}
	}

	return visited
}
