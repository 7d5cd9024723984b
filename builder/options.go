// SPDX-License-Identifier: MIT
// Package: arcroute/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithLabelScheme sets the vertex label generator: zero-based index -> label.
// Panics on nil.
func WithLabelScheme(fn LabelFn) BuilderOption {
	if fn == nil {
		panic("builder: WithLabelScheme(nil)")
	}

	return func(c *builderConfig) { c.labelFn = fn }
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithCostFn overrides the From→To travel cost generator. Panics on nil.
func WithCostFn(fn CostFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}

	return func(c *builderConfig) { c.costFn = fn }
}

// WithReverseCostFn sets the To→From cost generator of windy links.
// Other graph kinds ignore it. Panics on nil.
func WithReverseCostFn(fn CostFn) BuilderOption {
	if fn == nil {
		panic("builder: WithReverseCostFn(nil)")
	}

	return func(c *builderConfig) { c.reverseFn = fn }
}

// WithServiceCostFn sets the service cost generator. Panics on nil.
func WithServiceCostFn(fn CostFn) BuilderOption {
	if fn == nil {
		panic("builder: WithServiceCostFn(nil)")
	}

	return func(c *builderConfig) { c.serviceFn = fn }
}

// WithRequiredProbability marks each link required with probability p.
// p < 1 needs an RNG at build time. Panics if p is outside [0,1].
func WithRequiredProbability(p float64) BuilderOption {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("builder: WithRequiredProbability(%g) outside [0,1]", p))
	}

	return func(c *builderConfig) { c.required = p }
}
