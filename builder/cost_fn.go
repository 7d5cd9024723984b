// Package builder provides internal helper functions and types
// for configuring link-cost distributions in graph constructors.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultLinkCost is the cost assigned to each link when no custom CostFn is provided.
const DefaultLinkCost int64 = 1

// CostFn produces a link cost given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type CostFn func(rng *rand.Rand) int64

// DefaultCostFn always returns DefaultLinkCost.
// Complexity: O(1) time, O(1) space. Never panics.
func DefaultCostFn(_ *rand.Rand) int64 {
	return DefaultLinkCost
}

// ConstantCostFn returns a CostFn that always yields value.
// Panics if value < 0.
func ConstantCostFn(value int64) CostFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantCostFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformCostFn returns a CostFn sampling uniformly in [min, max] inclusive.
// Panics if min < 0 or max < min.
// If rng is nil, yields min to keep a deterministic fallback.
// Complexity: O(1) time, O(1) space.
func UniformCostFn(min, max int64) CostFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformCostFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}

// NormalCostFn returns a CostFn sampling from N(mean, stddev), rounded to the
// nearest integer and clipped to [0, MaxInt64].
// Panics if stddev < 0. If rng is nil, yields DefaultLinkCost.
func NormalCostFn(mean, stddev float64) CostFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalCostFn: stddev must be ≥ 0, got %f", stddev))
	}
	maxVal := float64(math.MaxInt64)

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return DefaultLinkCost
		}
		sample := rng.NormFloat64()*stddev + mean
		if sample < 0 {
			return 0
		}
		if sample >= maxVal {
			return math.MaxInt64
		}

		return int64(math.Round(sample))
	}
}

// WithConstantCost sets a fixed travel cost via ConstantCostFn.
func WithConstantCost(c int64) BuilderOption {
	return WithCostFn(ConstantCostFn(c))
}

// WithUniformCost sets travel costs ∼ U{min..max} via UniformCostFn.
func WithUniformCost(min, max int64) BuilderOption {
	return WithCostFn(UniformCostFn(min, max))
}

// WithUniformReverseCost sets windy To→From costs ∼ U{min..max}.
func WithUniformReverseCost(min, max int64) BuilderOption {
	return WithReverseCostFn(UniformCostFn(min, max))
}
