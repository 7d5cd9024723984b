// Package postman solves Chinese and rural postman problems on top of the
// Eulerian-completion engine.
//
// Every solver follows the same pipeline:
//
//	precondition  - required links exist and form one connected component
//	copy          - work on g.Subgraph(required), never on g itself
//	balance       - matching (Undirected), min-cost flow (Directed), or the
//	                windy construction followed by an optimal orientation
//	extraction    - euler.Circuit on the balanced copy
//	route         - map copies back to links of g and wrap them in a route.Route
//
// Links that are not required still serve as shortcuts: shortest paths and
// duplicates are drawn from g as a whole, so the same entry points solve the
// rural variants.
//
// Infeasibility at any stage is returned as a *core.InfeasibleError naming the
// phase; no solver falls back to a partial tour. SolveAll runs independent
// instances on a bounded goroutine pool and aggregates failures with multierr.
package postman
