// SPDX-License-Identifier: MIT
// Package: arcroute/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • labelFn    = DecimalLabel      ("1","2",...)
//   • rng        = nil               (pure/deterministic unless seeded)
//   • costFn     = ConstantCostFn(DefaultLinkCost)
//   • reverseFn  = nil               (windy links mirror their forward cost)
//   • serviceFn  = nil               (no service cost)
//   • required   = 1.0               (every link required)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex label strategy: zero-based index -> label.
	labelFn LabelFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Travel cost From→To.
	costFn CostFn
	// Travel cost To→From on windy graphs; nil mirrors costFn.
	reverseFn CostFn
	// Service cost of each link; nil means 0.
	serviceFn CostFn
	// Probability that a link is required.
	required float64
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		labelFn:  DecimalLabel,
		costFn:   DefaultCostFn,
		required: 1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
