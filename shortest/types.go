// SPDX-License-Identifier: MIT
package shortest

import (
	"errors"
	"math"

	"github.com/katalvlaran/arcroute/core"
)

// Unreachable is the distance recorded for vertex pairs with no path.
const Unreachable int64 = math.MaxInt64

// NoWidth is the width recorded for vertices Widest cannot reach.
const NoWidth int64 = math.MinInt64

// Sentinel errors.
var (
	// ErrNegativeCycle is wrapped in a core.InfeasibleError when FloydWarshall
	// finds a vertex on a negative-cost cycle.
	ErrNegativeCycle = errors.New("shortest: negative-cost cycle")

	// ErrVertexNotFound indicates a query vertex outside 1..n.
	ErrVertexNotFound = errors.New("shortest: vertex not found")

	// ErrNoPath indicates a path query between vertices with no path.
	ErrNoPath = errors.New("shortest: no path")

	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("shortest: graph is nil")
)

// CostFunc returns the cost of traversing l starting at from and whether that
// traversal is allowed at all.
type CostFunc func(l core.Link, from int) (cost int64, ok bool)

// NativeCost is the default CostFunc: CostFrom in every direction the link allows.
func NativeCost(l core.Link, from int) (int64, bool) {
	if !l.Leaves(from) {
		return 0, false
	}

	return l.CostFrom(from), true
}

// Options configures FloydWarshall and Widest.
type Options struct {
	// Cost maps a (link, start vertex) traversal to its cost.
	Cost CostFunc

	// MaxHops bounds the number of links on a widest path (0 = unbounded).
	MaxHops int
}

// Option is a functional option.
type Option func(*Options)

// DefaultOptions returns native costs and no hop bound.
func DefaultOptions() Options {
	return Options{Cost: NativeCost}
}

// WithCostFunc replaces the traversal cost function.
// Panics if f is nil.
func WithCostFunc(f CostFunc) Option {
	if f == nil {
		panic("shortest: WithCostFunc(nil)")
	}

	return func(o *Options) { o.Cost = f }
}

// WithSymmetricCost makes every link traversable both ways at sym(l).
func WithSymmetricCost(sym func(l core.Link) int64) Option {
	if sym == nil {
		panic("shortest: WithSymmetricCost(nil)")
	}

	return WithCostFunc(func(l core.Link, _ int) (int64, bool) { return sym(l), true })
}

// WithMaxHops bounds widest paths to at most h links.
// Panics if h < 1.
func WithMaxHops(h int) Option {
	if h < 1 {
		panic("shortest: WithMaxHops(h) requires h >= 1")
	}

	return func(o *Options) { o.MaxHops = h }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
