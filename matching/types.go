package matching

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrOddVertexCount indicates a perfect matching was requested on an odd vertex set.
	ErrOddVertexCount = errors.New("matching: odd number of vertices")

	// ErrNoPerfectMatching indicates the available pairs admit no perfect matching.
	ErrNoPerfectMatching = errors.New("matching: no perfect matching")

	// ErrNilWeight indicates a nil weight function.
	ErrNilWeight = errors.New("matching: weight function is nil")
)

// WeightFunc returns the weight of pair (i, j), i < j, and whether the pair exists.
type WeightFunc func(i, j int) (int64, bool)

// Algorithm selects the matching strategy.
type Algorithm int

const (
	// Blossom is the exact Edmonds solver.
	Blossom Algorithm = iota
	// Greedy is the nearest-neighbour heuristic.
	Greedy
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	if a == Greedy {
		return "greedy"
	}

	return "blossom"
}

// ParseAlgorithm is the inverse of Algorithm.String.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "blossom":
		return Blossom, nil
	case "greedy":
		return Greedy, nil
	}

	return 0, fmt.Errorf("matching: unknown algorithm %q", s)
}

// Options configures MinWeightPerfect.
type Options struct {
	// Ctx is checked once per blossom stage.
	Ctx context.Context

	Algorithm Algorithm
}

// Option is a functional option.
type Option func(*Options)

// DefaultOptions returns the exact algorithm with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Algorithm: Blossom}
}

// WithContext sets the cancellation context.
// Panics if ctx is nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("matching: WithContext(nil)")
	}

	return func(o *Options) { o.Ctx = ctx }
}

// WithAlgorithm selects the strategy.
// Panics on an unknown Algorithm.
func WithAlgorithm(a Algorithm) Option {
	if a != Blossom && a != Greedy {
		panic("matching: unknown algorithm")
	}

	return func(o *Options) { o.Algorithm = a }
}

// Result is a perfect matching.
type Result struct {
	// Mate[i] is the partner of i.
	Mate []int

	// Pairs lists each matched pair once as (i, Mate[i]) with i < Mate[i], ascending by i.
	Pairs [][2]int

	// Weight is the total original weight of Pairs.
	Weight int64
}
