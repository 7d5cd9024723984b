// Package core defines the arc-routing graph model: a capability-tagged arena of
// vertices and links addressed by dense integer ids.
//
// A Graph G = (V, L) is created with one Kind that fixes how its links behave:
//
//   - Undirected: every link is an edge that may be traversed both ways at Cost.
//   - Directed:   every link is an arc From→To.
//   - Mixed:      links are edges by default; WithArc() makes an individual link an arc.
//   - Windy:      every link is an edge with Cost for From→To and ReverseCost for To→From.
//
// Vertices are numbered 1..n and never removed. Links are numbered from 1 in
// insertion order; RemoveLink leaves a hole and ids are never reused by the same
// graph. Clone compacts both id spaces and records the source ids in MatchID, so
// results computed on a copy can always be mapped back to the graph they came from.
//
// Degree bookkeeping:
//
//	Degree(v)    - number of edge ends at v (a loop edge counts 2)
//	InDegree(v)  - arcs entering v
//	OutDegree(v) - arcs leaving v
//	Delta(v)     - OutDegree(v) - InDegree(v)
//
// The counters are maintained atomically by AddLink/RemoveLink; Validate recomputes
// them from scratch and reports every mismatch at once.
//
// Every mutation bumps Version(). Consumers that hold ids into a graph (routes,
// all-pairs tables) record the version they were computed against and treat a
// different version as stale.
//
// Errors:
//
//	ErrInvalidEndpoints - a link endpoint is not a vertex of this graph.
//	ErrWrongLinkType    - a link option does not fit the graph Kind.
//	ErrInvalidOperation - mutation that cannot be applied (wraps the cause).
//	ErrLinkNotFound     - link id unknown or already removed.
//	ErrVertexNotFound   - vertex id out of range.
//	ErrNoDemandSet      - Demand() on a vertex without a demand.
//	ErrGraphInfeasible  - matched by every *InfeasibleError.
//
// Concurrency:
//
//	All methods are safe for concurrent use; a single sync.RWMutex guards the arena.
//	Algorithms are expected to work on their own Clone().
package core
