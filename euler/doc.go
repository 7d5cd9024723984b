// Package euler extracts Euler circuits from balanced graphs (Hierholzer).
//
// Circuit walks a balanced, connected graph and returns the ordered link ids of
// a closed walk that uses every link exactly once. Directed graphs are walked
// along out-arcs only; undirected and windy graphs may leave a vertex over any
// unused incident link (the direction of each step is implied by the walk).
//
// Extraction never returns a partial tour: an unbalanced input fails up front
// with ErrNotBalanced and a disconnected one fails afterwards with
// ErrIncomplete. Both are *core.InfeasibleError values in PhaseExtraction.
//
// Verify re-checks a circuit against a graph: coverage, uniqueness, continuity
// and arc direction.
package euler
