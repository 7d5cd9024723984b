// SPDX-License-Identifier: MIT
package postman

import (
	"errors"
	"runtime"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/arcroute/balance"
	"github.com/katalvlaran/arcroute/core"
	"github.com/katalvlaran/arcroute/matching"
	"github.com/katalvlaran/arcroute/route"
)

var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("postman: graph is nil")

	// ErrNoRequiredLinks indicates a graph without any required link.
	ErrNoRequiredLinks = errors.New("postman: no required links")

	// ErrDisconnected indicates required links spread over several components.
	ErrDisconnected = errors.New("postman: required links are not connected")

	// ErrUnsupported indicates a graph kind no solver handles.
	ErrUnsupported = errors.New("postman: unsupported graph kind")
)

// Options configures a solve.
type Options struct {
	Logger logr.Logger

	// Start is the depot vertex (0 = lowest vertex touched by a required link).
	Start int

	// Policy picks the servicing traversal of each required link.
	Policy route.Policy

	// Matching selects the odd-vertex pairing algorithm.
	Matching matching.Algorithm

	// Threshold is the windy E1/E2 split fraction.
	Threshold float64

	// Workers bounds the goroutine pool of SolveAll.
	Workers int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the exact pipeline with discarding logs and one
// worker per CPU.
func DefaultOptions() Options {
	return Options{
		Logger:    logr.Discard(),
		Policy:    route.ServeFirst,
		Matching:  matching.Blossom,
		Threshold: balance.DefaultThreshold,
		Workers:   runtime.NumCPU(),
	}
}

// WithLogger sets the logger; it is handed down to balancing.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithStart sets the depot vertex.
// Panics if v < 0.
func WithStart(v int) Option {
	if v < 0 {
		panic("postman: WithStart(v) requires v >= 0")
	}

	return func(o *Options) { o.Start = v }
}

// WithPolicy sets the service policy of the resulting route.
func WithPolicy(p route.Policy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithMatching selects the odd-vertex pairing algorithm.
func WithMatching(a matching.Algorithm) Option {
	return func(o *Options) { o.Matching = a }
}

// WithThreshold overrides the windy E1/E2 split fraction.
// Panics if k < 0.
func WithThreshold(k float64) Option {
	if k < 0 {
		panic("postman: WithThreshold(k) requires k >= 0")
	}

	return func(o *Options) { o.Threshold = k }
}

// WithWorkers bounds the SolveAll pool.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("postman: WithWorkers(n) requires n >= 1")
	}

	return func(o *Options) { o.Workers = n }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Solution is a solved instance.
type Solution struct {
	Kind core.Kind

	// Route walks links of the input graph; duplicates appear as repeated
	// deadheading traversals.
	Route *route.Route

	// Balanced is the private Eulerian copy the circuit was extracted from
	// (the oriented graph for windy instances).
	Balanced *core.Graph

	// Circuit lists link ids of Balanced in walk order.
	Circuit []int

	Augmentation *balance.Augmentation

	// Orientation is set for windy instances only.
	Orientation *balance.Orientation
}

// Cost returns the route cost.
func (s *Solution) Cost() int64 { return s.Route.Cost() }
