// Package route represents closed walks over one snapshot of a core.Graph.
//
// A Route is an ordered list of Steps. Each step names a link, the direction it
// is walked in and whether that traversal services the link. Routes are values:
// Append, Splice and SetService never modify the receiver, they return a new
// Route whose cost was derived from the old one by adding or subtracting only
// the steps that changed.
//
// Cost model:
//
//	travel  - Σ Cost (forward steps) + Σ ReverseCost (backward steps)
//	service - Σ ServiceCost over serviced steps
//	Cost()  - travel + service
//	Deadhead() - travel spent on steps that service nothing
//
// The compact view (Units) collapses each maximal run of non-servicing steps into
// one unit and keeps every serviced step as a unit of its own. Local search moves
// operate on units instead of single steps.
//
// Snapshots:
//
// A Route records the *core.Graph it was built on and that graph's Version().
// Once the graph is mutated every operation fails with ErrStaleGraph; a route
// can never be replayed against a different graph either.
//
// Collections of routes are compared by Sum (total cost); AverageTraversal is the
// mean shortest-path distance between serviced links of the same route.
package route
