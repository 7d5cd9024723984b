// SPDX-License-Identifier: MIT
package route

import (
	"cmp"
	"context"
	"fmt"

	"github.com/katalvlaran/arcroute/core"
	"github.com/katalvlaran/arcroute/shortest"
)

// Sum returns the total cost of routes.
func Sum(routes ...*Route) int64 {
	var total int64
	for _, r := range routes {
		total += r.Cost()
	}

	return total
}

// Compare orders two route collections by total cost: -1 if a is cheaper,
// +1 if b is cheaper, 0 on a tie.
func Compare(a, b []*Route) int {
	return cmp.Compare(Sum(a...), Sum(b...))
}

// AverageTraversal scores a collection of routes over g by how far apart the
// links each route services are.
//
// For every ordered pair of distinct serviced links (l, m) in the same route the
// least distance between an endpoint of l and an endpoint of m is summed; the
// sum is divided by T·(T − R) / (2R) where T counts serviced steps and R routes.
// Lower is more compact.
//
// Errors:
//   - ErrStaleGraph if any route does not belong to the current g.
//   - ErrNoTasks when T ≤ R.
//   - *core.InfeasibleError (PhaseShortestPaths) wrapping shortest.ErrNoPath when
//     two serviced links of one route cannot reach each other.
//   - Errors from shortest.FloydWarshall.
//
// Complexity: O(V³) for the distance table plus O(Σ T_r²).
func AverageTraversal(ctx context.Context, g *core.Graph, routes []*Route, opts ...shortest.Option) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	tasks := 0
	for i, r := range routes {
		if err := r.Check(g); err != nil {
			return 0, fmt.Errorf("route %d: %w", i, err)
		}
		tasks += len(r.serviced)
	}
	if tasks <= len(routes) {
		return 0, fmt.Errorf("%w: %d tasks over %d routes", ErrNoTasks, tasks, len(routes))
	}

	ap, err := shortest.FloydWarshall(ctx, g, opts...)
	if err != nil {
		return 0, err
	}

	var sum int64
	for _, r := range routes {
		ends := servicedEnds(r)
		for i := range ends {
			for j := range ends {
				if ends[i][0] == ends[j][0] {
					continue
				}
				d := closest(ap, ends[i], ends[j])
				if d == shortest.Unreachable {
					return 0, core.Infeasible(core.PhaseShortestPaths, shortest.ErrNoPath,
						"serviced links %d and %d are not connected", ends[i][0], ends[j][0])
				}
				sum += d
			}
		}
	}

	denom := float64(tasks*(tasks-len(routes))) / float64(2*len(routes))

	return float64(sum) / denom, nil
}

// servicedEnds returns {link, from, to} for every serviced step.
func servicedEnds(r *Route) [][3]int {
	out := make([][3]int, 0, len(r.serviced))
	for i, s := range r.steps {
		if !s.Service {
			continue
		}
		from, to := r.at[i], r.at[i+1]
		out = append(out, [3]int{s.Link, from, to})
	}

	return out
}

// closest is the least of the four endpoint-to-endpoint distances.
func closest(ap *shortest.AllPairs, l, m [3]int) int64 {
	best := shortest.Unreachable
	for _, a := range l[1:] {
		for _, b := range m[1:] {
			best = min(best, ap.Distance(a, b))
		}
	}

	return best
}
