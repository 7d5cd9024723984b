// Package balance turns a postman graph into an Eulerian one at minimum added cost.
//
// Every entry point mutates the graph it is given by adding parallel copies of
// existing links (Required=false, MatchID = id of the copied link in the path
// graph). Callers that need the original keep a Clone.
//
//   - Undirected: pair the odd-degree vertices by a minimum-weight perfect
//     matching over shortest-path distances and duplicate every link on each
//     matched path.
//   - Directed: route the surplus of every vertex (delta = out − in) through a
//     minimum-cost flow and duplicate each arc once per unit of flow.
//   - Windy: the improved windy-postman construction. Links are split into
//     strongly asymmetric (E1) and mild (E2) sets, a flow over an auxiliary
//     network picks the links L worth doubling, L is duplicated and the
//     remaining odd vertices are paired on an averaged graph where L is free.
//     Orient then gives the even result a balanced orientation.
//
// # Path graph
//
// By default shortest paths and duplicates come from the graph being balanced.
// WithPathGraph supplies a supergraph with aligned vertex ids instead: the rural
// case, where the working graph holds only the required links and deadheading
// may use any link of the full instance. The working graph's links must then
// carry MatchID = id of their counterpart in the path graph, which is what
// (*core.Graph).Subgraph produces.
//
// # Errors
//
// Structural problems (no perfect matching, unroutable supply, odd input to
// Orient) surface as *core.InfeasibleError values; errors.Is(err,
// core.ErrGraphInfeasible) holds and core.PhaseOf tells which phase failed.
// Nothing is retried.
package balance
