// Package arcroute computes minimum-cost closed tours that traverse every
// required link of a road-like graph: the Chinese postman problem and its
// rural variant on undirected, directed and windy graphs.
//
// The work is split into small packages, each usable on its own:
//
//	core/       Graph, Vertex and Link: dense ids, parallel links, loops,
//	            windy reverse costs, required flags and infeasibility errors
//	shortest/   Floyd–Warshall all-pairs distances and successor paths
//	matching/   minimum-weight perfect matching (blossom, greedy)
//	flow/       min-cost flow by successive shortest paths
//	balance/    Eulerian completion: matching, flow and windy augmentation,
//	            plus optimal orientation of an even windy graph
//	euler/      Hierholzer circuit extraction and verification
//	route/      immutable routes with service flags, costs and metrics
//	postman/    end-to-end solvers and a pooled batch runner
//	builder/    deterministic instance generators
//	instance/   TOML instance files
//
// Pipeline of one solve:
//
//	required subgraph ─► balance ─► (orient) ─► euler.Circuit ─► route
//
// Quick example: a path 1–2–3 has odd ends, so both links are walked twice.
//
//	1 ──10── 2 ──5── 3      tour 1→2→3→2→1, cost 30
//
// The command in cmd/arcroute solves instance files in parallel.
package arcroute
