// SPDX-License-Identifier: MIT
package instance

import (
	"errors"

	"github.com/katalvlaran/arcroute/core"
)

var (
	// ErrUnknownKey indicates a key the schema does not define (usually a typo).
	ErrUnknownKey = errors.New("instance: unknown key")

	// ErrUnknownVertex indicates a link or depot naming an undeclared vertex.
	ErrUnknownVertex = errors.New("instance: unknown vertex")

	// ErrDuplicateVertex indicates two [[vertex]] tables with the same label.
	ErrDuplicateVertex = errors.New("instance: duplicate vertex label")

	// ErrBadValue indicates a field outside its domain (negative cost, bad kind).
	ErrBadValue = errors.New("instance: invalid value")

	// ErrNilInstance indicates a nil *Instance or an instance without a graph.
	ErrNilInstance = errors.New("instance: instance is nil")
)

// File is the TOML schema of one instance.
//
//	name  = "two streets"
//	kind  = "undirected"   # undirected | directed | mixed | windy
//	depot = "A"
//
//	[[vertex]]
//	label = "A"
//	x = 0.0
//	y = 0.0
//
//	[[link]]
//	from = "A"
//	to   = "B"
//	cost = 10
//
// Vertex tables are optional: without them every label met in a link
// declares a vertex, in order of first appearance.
type File struct {
	Name     string       `toml:"name,omitempty"`
	Kind     string       `toml:"kind"`
	Depot    string       `toml:"depot,omitempty"`
	Vertices []VertexSpec `toml:"vertex,omitempty"`
	Links    []LinkSpec   `toml:"link"`
}

// VertexSpec is one [[vertex]] table.
type VertexSpec struct {
	Label  string   `toml:"label"`
	X      *float64 `toml:"x,omitempty"`
	Y      *float64 `toml:"y,omitempty"`
	Demand *int64   `toml:"demand,omitempty"`
}

// LinkSpec is one [[link]] table. Required defaults to true; ReverseCost is
// only accepted on windy instances and defaults to Cost.
type LinkSpec struct {
	From        string `toml:"from"`
	To          string `toml:"to"`
	Cost        int64  `toml:"cost"`
	ReverseCost *int64 `toml:"reverse_cost,omitempty"`
	ServiceCost int64  `toml:"service_cost,omitzero"`
	Required    *bool  `toml:"required,omitempty"`
	Capacity    int    `toml:"capacity,omitzero"`
	Arc         bool   `toml:"arc,omitempty"`
	Label       string `toml:"label,omitempty"`
}

// Instance is a decoded instance file.
type Instance struct {
	Name string
	// Path is the source file, empty for instances read from a stream.
	Path  string
	Graph *core.Graph
	// Depot is the vertex id named by the depot key (0 = not set).
	Depot int

	ids map[string]int
}

// VertexID returns the vertex id assigned to label.
func (in *Instance) VertexID(label string) (int, bool) {
	id, ok := in.ids[label]

	return id, ok
}
