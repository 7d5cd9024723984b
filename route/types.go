// SPDX-License-Identifier: MIT
package route

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/arcroute/core"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("route: graph is nil")

	// ErrStaleGraph indicates a graph that was mutated after the route was built,
	// or a graph other than the one the route belongs to.
	ErrStaleGraph = errors.New("route: graph changed since the route was built")

	// ErrDiscontinuous indicates a step that does not leave the current vertex.
	ErrDiscontinuous = errors.New("route: step does not continue the walk")

	// ErrWrongDirection indicates an arc walked against its direction.
	ErrWrongDirection = errors.New("route: arc traversed backwards")

	// ErrNotClosed indicates a spliced walk that does not return to its anchor.
	ErrNotClosed = errors.New("route: walk is not closed")

	// ErrIndexOutOfRange indicates a step or splice position outside the route.
	ErrIndexOutOfRange = errors.New("route: index out of range")

	// ErrAlreadyServiced indicates a second servicing traversal of one link.
	ErrAlreadyServiced = errors.New("route: link is already serviced")

	// ErrNoTasks indicates a route collection without enough serviced links for
	// an average-traversal score.
	ErrNoTasks = errors.New("route: not enough serviced links")
)

// Step is one traversal of a link.
type Step struct {
	Link int

	// Forward is true when the link is walked From→To.
	Forward bool

	// Service marks the traversal that services the link.
	Service bool
}

// Unit is one element of the compact view: either a single serviced step
// (Service = link id) or a maximal run of deadheading steps (Service = 0).
type Unit struct {
	Start, End int
	Service    int
	Steps      int
	Cost       int64
}

// Policy decides which traversals of a circuit service their link.
type Policy int

const (
	// ServeFirst services each required link on its first traversal.
	ServeFirst Policy = iota

	// ServeLast services each required link on its last traversal.
	ServeLast

	// ServeNone leaves every step as deadheading.
	ServeNone
)

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case ServeFirst:
		return "first"
	case ServeLast:
		return "last"
	case ServeNone:
		return "none"
	default:
		return "unknown"
	}
}

// ParsePolicy is the inverse of Policy.String.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "first":
		return ServeFirst, nil
	case "last":
		return ServeLast, nil
	case "none":
		return ServeNone, nil
	}

	return 0, fmt.Errorf("route: unknown service policy %q", s)
}

// travel returns the directional travel cost of one traversal.
func travel(l core.Link, forward bool) int64 {
	if forward || l.Directed {
		return l.Cost
	}

	return l.ReverseCost
}

// stepCost is travel plus the service charge of a serviced traversal.
func stepCost(l core.Link, s Step) int64 {
	c := travel(l, s.Forward)
	if s.Service {
		c += l.ServiceCost
	}

	return c
}

// head returns the vertex reached by walking l in the given direction.
func head(l core.Link, forward bool) int {
	if forward {
		return l.To
	}

	return l.From
}

// tail returns the vertex a traversal of l in the given direction starts at.
func tail(l core.Link, forward bool) int {
	if forward {
		return l.From
	}

	return l.To
}
