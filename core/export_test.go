package core

// CorruptDegree overwrites the stored undirected degree of v so tests can observe
// Validate reporting the mismatch.
func CorruptDegree(g *Graph, v, degree int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.vertices[v].degree = degree
}
