// File: methods_vertices.go
// Role: Vertex lifecycle, vertex queries and graph-level accessors.
//
// Determinism:
//   - Vertices() returns snapshots in ascending id order.
package core

import "fmt"

// Kind returns the graph kind fixed at construction.
func (g *Graph) Kind() Kind { return g.kind }

// Version returns a counter bumped by every mutation.
func (g *Graph) Version() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.version
}

// AddVertex appends a vertex and returns its id.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(opts ...VertexOption) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addVertexLocked(opts)
}

// AddVertices appends n vertices and returns the first and last new ids.
// For n <= 0 it returns (0, 0) and does nothing.
func (g *Graph) AddVertices(n int) (first, last int) {
	if n <= 0 {
		return 0, 0
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	first = len(g.vertices)
	for i := 0; i < n; i++ {
		last = g.addVertexLocked(nil)
	}

	return first, last
}

func (g *Graph) addVertexLocked(opts []VertexOption) int {
	id := len(g.vertices)
	v := Vertex{ID: id}
	for _, opt := range opts {
		opt(&v)
	}
	v.ID = id
	g.vertices = append(g.vertices, v)
	g.adj = append(g.adj, nil)
	g.version++

	return id
}

// HasVertex reports whether id is a vertex of g.
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasVertexLocked(id)
}

func (g *Graph) hasVertexLocked(id int) bool { return id >= 1 && id < len(g.vertices) }

// VertexCount returns n.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices) - 1
}

// Vertex returns a snapshot of vertex id.
func (g *Graph) Vertex(id int) (Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.hasVertexLocked(id) {
		return Vertex{}, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	return g.vertices[id], nil
}

// Vertices returns snapshots of all vertices in ascending id order.
func (g *Graph) Vertices() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Vertex, len(g.vertices)-1)
	copy(out, g.vertices[1:])

	return out
}

// Degree returns the undirected degree of v (0 for unknown vertices).
func (g *Graph) Degree(v int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.hasVertexLocked(v) {
		return 0
	}

	return g.vertices[v].degree
}

// Delta returns OutDegree(v) - InDegree(v) (0 for unknown vertices).
func (g *Graph) Delta(v int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.hasVertexLocked(v) {
		return 0
	}

	return g.vertices[v].Delta()
}

// SetDemand sets the demand of vertex v.
func (g *Graph) SetDemand(v int, d int64) error {
	return g.mutateVertex(v, func(x *Vertex) { x.demand, x.demandSet = d, true })
}

// ClearDemand removes the demand of vertex v.
func (g *Graph) ClearDemand(v int) error {
	return g.mutateVertex(v, func(x *Vertex) { x.demand, x.demandSet = 0, false })
}

// SetCoordinates sets the planar position of vertex v.
func (g *Graph) SetCoordinates(v int, x, y float64) error {
	return g.mutateVertex(v, func(p *Vertex) { p.x, p.y, p.hasCoords = x, y, true })
}

// SetVertexMatchID sets the companion id of vertex v.
func (g *Graph) SetVertexMatchID(v, match int) error {
	return g.mutateVertex(v, func(p *Vertex) { p.MatchID = match })
}

func (g *Graph) mutateVertex(v int, fn func(*Vertex)) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.hasVertexLocked(v) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	fn(&g.vertices[v])
	g.version++

	return nil
}
