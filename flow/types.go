package flow

import (
	"errors"
	"math"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/arcroute/core"
)

// Unbounded marks an arc without a capacity limit.
const Unbounded int64 = math.MaxInt64

var (
	// ErrNilNetwork indicates a nil *Network.
	ErrNilNetwork = errors.New("flow: network is nil")

	// ErrInvalidArc indicates a negative capacity or an endpoint outside the network.
	ErrInvalidArc = errors.New("flow: invalid arc")

	// ErrVertexNotFound indicates a vertex id outside 1..n.
	ErrVertexNotFound = errors.New("flow: vertex not found")

	// ErrInfeasible indicates unbalanced demands or supply that cannot reach any demand.
	ErrInfeasible = errors.New("flow: infeasible demands")

	// ErrNegativeCycle indicates a negative-cost cycle with positive capacity.
	ErrNegativeCycle = errors.New("flow: negative-cost cycle")

	// ErrAugmentationLimit indicates that MaxAugmentations was reached before all
	// supply was routed.
	ErrAugmentationLimit = errors.New("flow: augmentation limit reached")

	// ErrNoDemandSet is core.ErrNoDemandSet, re-exported for callers that only import flow.
	ErrNoDemandSet = core.ErrNoDemandSet
)

// Arc is one directed arc of a Network.
type Arc struct {
	From, To int
	Capacity int64 // Unbounded for no limit
	Cost     int64 // per unit; may be negative
}

// Result is the outcome of MinCostFlow.
type Result struct {
	// Flow[i] is the number of units carried by arc i (the id returned by AddArc).
	Flow []int64
	// Cost is Σ Flow[i]·Cost[i].
	Cost int64
	// Augmentations counts the shortest augmenting paths used.
	Augmentations int
}

// Options configures MinCostFlow.
type Options struct {
	// Logger receives solve summaries at V(1) and per-augmentation detail at V(2).
	Logger logr.Logger
	// MaxAugmentations bounds the number of augmenting paths; 0 means no bound.
	MaxAugmentations int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a discarding logger and no augmentation bound.
func DefaultOptions() Options {
	return Options{Logger: logr.Discard()}
}

// WithLogger sets the logger.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMaxAugmentations bounds the number of augmenting paths.
// Panics if n < 1.
func WithMaxAugmentations(n int) Option {
	if n < 1 {
		panic("flow: WithMaxAugmentations requires n >= 1")
	}

	return func(o *Options) { o.MaxAugmentations = n }
}
