// SPDX-License-Identifier: MIT
// Package core: this file declares Kind, Vertex, Link, Graph and their options.
package core

import (
	"fmt"
	"sync"
)

// Kind fixes the traversal semantics of every link in a Graph.
type Kind uint8

// Graph kinds.
const (
	Undirected Kind = iota + 1
	Directed
	Mixed
	Windy
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Undirected:
		return "undirected"
	case Directed:
		return "directed"
	case Mixed:
		return "mixed"
	case Windy:
		return "windy"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "undirected":
		return Undirected, nil
	case "directed":
		return Directed, nil
	case "mixed":
		return Mixed, nil
	case "windy":
		return Windy, nil
	}

	return 0, fmt.Errorf("core: unknown graph kind %q", s)
}

// Vertex is a value snapshot of one vertex of a Graph.
//
// Degree counters are owned by the Graph and only change through AddLink/RemoveLink.
type Vertex struct {
	// ID is the dense vertex id, 1..VertexCount().
	ID int

	// Label is free-form; instance files use it for the original vertex name.
	Label string

	// MatchID is the id of the companion vertex in a related graph (0 = none).
	MatchID int

	degree int // edge ends, loops count 2
	in     int // arcs entering
	out    int // arcs leaving

	demand    int64
	demandSet bool

	x, y      float64
	hasCoords bool
}

// Degree returns the number of edge ends at the vertex (a loop edge counts twice).
func (v Vertex) Degree() int { return v.degree }

// InDegree returns the number of arcs entering the vertex.
func (v Vertex) InDegree() int { return v.in }

// OutDegree returns the number of arcs leaving the vertex.
func (v Vertex) OutDegree() int { return v.out }

// Delta returns OutDegree - InDegree.
func (v Vertex) Delta() int { return v.out - v.in }

// Demand returns the vertex demand or ErrNoDemandSet.
func (v Vertex) Demand() (int64, error) {
	if !v.demandSet {
		return 0, ErrNoDemandSet
	}

	return v.demand, nil
}

// HasDemand reports whether a demand was set.
func (v Vertex) HasDemand() bool { return v.demandSet }

// Coordinates returns the planar position and whether one was set.
func (v Vertex) Coordinates() (x, y float64, ok bool) { return v.x, v.y, v.hasCoords }

// Link is a traversable connection between two vertices.
//
// For non-windy graphs ReverseCost mirrors Cost. For arcs (Directed == true)
// ReverseCost is meaningless and kept equal to Cost.
type Link struct {
	ID       int
	From, To int

	// Cost is the travel cost From→To; ReverseCost is the travel cost To→From.
	Cost, ReverseCost int64

	// ServiceCost is charged once when a route services the link.
	ServiceCost int64

	// Required links must be traversed by a tour. Defaults to true.
	Required bool

	// Directed marks an arc (one-way From→To).
	Directed bool

	// Capacity bounds how many duplicate copies balancing may add (0 = unbounded).
	Capacity int

	// MatchID is the id of the companion link in a related graph (0 = none).
	MatchID int

	Label string

	reverseSet bool
	arcSet     bool
}

// Other returns the endpoint opposite to v (v itself for a loop).
func (l Link) Other(v int) int {
	if l.From == v {
		return l.To
	}

	return l.From
}

// IsLoop reports From == To.
func (l Link) IsLoop() bool { return l.From == l.To }

// Leaves reports whether the link can be traversed starting at v.
func (l Link) Leaves(v int) bool {
	if l.Directed {
		return l.From == v
	}

	return l.From == v || l.To == v
}

// Enters reports whether a traversal of the link can end at v.
func (l Link) Enters(v int) bool {
	if l.Directed {
		return l.To == v
	}

	return l.From == v || l.To == v
}

// CostFrom returns the cost of traversing the link starting at v.
// The caller guarantees Leaves(v).
func (l Link) CostFrom(v int) int64 {
	if l.Directed || l.From == v {
		return l.Cost
	}

	return l.ReverseCost
}

// Graph is a capability-tagged arena of vertices and links.
//
// vertices[0] and links[0] are unused so ids index the slices directly.
// A removed link leaves a nil slot; link ids are never reused.
type Graph struct {
	mu sync.RWMutex

	kind Kind

	vertices []Vertex
	links    []*Link
	adj      [][]int // incident link ids per vertex in insertion order; loops listed once

	linkCount int
	version   uint64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithVertices pre-creates n vertices with ids 1..n.
// Panics if n < 0.
func WithVertices(n int) GraphOption {
	if n < 0 {
		panic("core: WithVertices(n) requires n >= 0")
	}

	return func(g *Graph) {
		for i := 0; i < n; i++ {
			g.addVertexLocked(nil)
		}
	}
}

// WithLinkCapacity reserves room for m links.
// Panics if m < 0.
func WithLinkCapacity(m int) GraphOption {
	if m < 0 {
		panic("core: WithLinkCapacity(m) requires m >= 0")
	}

	return func(g *Graph) {
		links := make([]*Link, len(g.links), m+1)
		copy(links, g.links)
		g.links = links
	}
}

// VertexOption configures a vertex when it is added.
type VertexOption func(v *Vertex)

// WithLabel sets Vertex.Label.
func WithLabel(label string) VertexOption {
	return func(v *Vertex) { v.Label = label }
}

// WithCoordinates sets the vertex position.
func WithCoordinates(x, y float64) VertexOption {
	return func(v *Vertex) { v.x, v.y, v.hasCoords = x, y, true }
}

// WithDemand sets the vertex demand.
func WithDemand(d int64) VertexOption {
	return func(v *Vertex) { v.demand, v.demandSet = d, true }
}

// WithVertexMatchID sets Vertex.MatchID.
// Panics if id < 0.
func WithVertexMatchID(id int) VertexOption {
	if id < 0 {
		panic("core: WithVertexMatchID(id) requires id >= 0")
	}

	return func(v *Vertex) { v.MatchID = id }
}

// LinkOption configures a link when it is added.
type LinkOption func(l *Link)

// WithReverseCost sets the To→From cost. Only valid on Windy graphs.
func WithReverseCost(c int64) LinkOption {
	return func(l *Link) { l.ReverseCost, l.reverseSet = c, true }
}

// WithRequired sets Link.Required (default true).
func WithRequired(required bool) LinkOption {
	return func(l *Link) { l.Required = required }
}

// WithServiceCost sets Link.ServiceCost.
func WithServiceCost(c int64) LinkOption {
	return func(l *Link) { l.ServiceCost = c }
}

// WithCapacity bounds the number of duplicate copies balancing may add (0 = unbounded).
// Panics if n < 0.
func WithCapacity(n int) LinkOption {
	if n < 0 {
		panic("core: WithCapacity(n) requires n >= 0")
	}

	return func(l *Link) { l.Capacity = n }
}

// WithArc makes the link a one-way arc. Only valid on Mixed graphs; Directed graphs
// create arcs anyway.
func WithArc() LinkOption {
	return func(l *Link) { l.arcSet = true }
}

// WithLinkMatchID sets Link.MatchID.
// Panics if id < 0.
func WithLinkMatchID(id int) LinkOption {
	if id < 0 {
		panic("core: WithLinkMatchID(id) requires id >= 0")
	}

	return func(l *Link) { l.MatchID = id }
}

// WithLinkLabel sets Link.Label.
func WithLinkLabel(label string) LinkOption {
	return func(l *Link) { l.Label = label }
}

// New creates an empty Graph of the given kind.
// Panics on an unknown Kind.
//
// Complexity: O(1) plus the cost of options.
func New(kind Kind, opts ...GraphOption) *Graph {
	if kind < Undirected || kind > Windy {
		panic(fmt.Sprintf("core: New: unknown graph kind %d", kind))
	}
	g := &Graph{
		kind:     kind,
		vertices: make([]Vertex, 1),
		links:    make([]*Link, 1),
		adj:      make([][]int, 1),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
