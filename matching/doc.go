// Package matching computes minimum-weight perfect matchings on complete
// (or partially specified) graphs over vertices 0..n-1.
//
// The exact solver is Edmonds' blossom algorithm in its primal-dual
// maximum-weight form (Galil's O(n³) formulation with integer dual variables).
// A minimum-weight perfect matching is obtained by asking for a maximum-weight
// maximum-cardinality matching on the transformed weights W+1-w, where W is the
// largest input weight: every perfect matching has the same cardinality, so
// maximising the transformed sum minimises the original one.
//
// Pairs the weight function reports as missing are simply not offered to the
// solver; if the remaining edges admit no perfect matching the result is
// ErrNoPerfectMatching.
//
// The Greedy algorithm pairs each remaining vertex with its nearest remaining
// neighbour. It is fast, deterministic and not optimal.
//
// Complexity:
//
//   - Blossom: Time O(n³), Space O(n²).
//   - Greedy:  Time O(n²),  Space O(n).
package matching
