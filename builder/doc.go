// Package builder generates deterministic arc-routing instances for tests,
// benchmarks and the command line.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(kind, opts, cons...): creates a core.Graph and applies
//     constructors in order; each constructor appends its own vertices, so
//     composing two constructors yields two components.
//   - Topologies (Constructor):
//     – Path, Cycle, Star, Wheel, Complete, Grid, RandomSparse.
//   - Cost distributions (CostFn):
//     – DefaultCostFn, ConstantCostFn, UniformCostFn, NormalCostFn.
//     – WithCostFn / WithReverseCostFn (windy) / WithServiceCostFn.
//   - Required links:
//     – WithRequiredProbability(p) samples the required flag per link, which
//     turns any topology into a rural instance.
//   - Vertex labels (LabelFn):
//     – DecimalLabel (default), ExcelColumnLabel, PrefixLabel.
//
// Guarantees:
//
//   - Same kind, options, seed and constructor order ⇒ identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return errors wrapping the sentinels in
//     errors.go.
package builder
