// Package shortest computes least-cost and widest paths over a core.Graph.
//
// FloydWarshall is the workhorse of Eulerian balancing: postman instances have
// few vertices relative to their links, and the matching and flow phases need
// dense pairwise distances plus link-level path reconstruction (parallel links
// with different costs make vertex predecessors insufficient).
//
// Traversal costs default to the graph's native semantics:
//
//   - undirected edges in both directions at Cost;
//   - windy edges at Cost From→To and ReverseCost To→From;
//   - arcs forward only.
//
// WithCostFunc overrides them, e.g. to build the symmetrised views used by the
// windy balancing step.
//
// Widest computes max-min (bottleneck) paths from one source with a priority
// queue, breaking ties by fewer hops, optionally bounded by WithMaxHops.
//
// Complexity:
//
//   - FloydWarshall: Time O(V³ + L), Space O(V²).
//   - Widest:        Time O(L·H·log(L·H)) with H the hop bound (V-1 when unbounded).
package shortest
