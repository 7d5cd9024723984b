// Package flow computes minimum-cost flows on small integer networks.
//
// A Network is a dense directed graph over vertices 1..n. Each arc carries a
// capacity (Unbounded for none) and a per-unit cost that may be negative.
// Each vertex carries a demand:
//
//   - demand > 0: the vertex must receive that many units,
//   - demand < 0: the vertex supplies -demand units,
//   - demand = 0: transit only.
//
// MinCostFlow routes every unit of supply to the demand vertices at minimum
// total cost using successive shortest augmenting paths:
//
//   - Method: a super-source feeds every supply vertex and every demand vertex
//     drains into a super-sink. Bellman–Ford computes initial potentials (so
//     negative arc costs are accepted), then each augmentation runs Dijkstra on
//     reduced costs with a container/heap priority queue.
//   - Time:   O(F · E log V), where F is the total supply.
//   - Memory: O(V + E) for the residual arcs and the heap.
//
// # Errors
//
//   - ErrInvalidArc, ErrVertexNotFound for malformed construction.
//   - ErrNoDemandSet when a vertex demand was never assigned.
//   - ErrInfeasible when demands do not balance or some supply cannot be routed;
//     it is always wrapped in a *core.InfeasibleError (Phase = core.PhaseFlow).
//   - ErrNegativeCycle when the network holds a negative-cost cycle of positive
//     capacity; also reported as a *core.InfeasibleError.
//
// # Determinism
//
// Residual arcs are scanned in insertion order and heap ties are broken by
// vertex index, so equal-cost alternatives always resolve the same way.
//
// # Logging
//
// WithLogger attaches a logr.Logger. Solve summaries are logged at V(1) and
// each augmentation at V(2).
package flow
