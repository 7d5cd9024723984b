package matching

// greedy pairs the lowest unmatched vertex with its cheapest unmatched partner,
// repeatedly. A vertex with no available partner stays unmatched (-1).
//
// Complexity: O(n²).
func greedy(n int, weight WeightFunc) []int {
	mate := make([]int, n)
	for i := range mate {
		mate[i] = -1
	}
	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}
	for len(remaining) > 1 {
		u := remaining[0]
		remaining = remaining[1:]

		bestIdx := -1
		var bestW int64
		for idx, v := range remaining {
			w, ok := weight(min(u, v), max(u, v))
			if ok && (bestIdx < 0 || w < bestW) {
				bestIdx, bestW = idx, w
			}
		}
		if bestIdx < 0 {
			continue
		}
		v := remaining[bestIdx]
		mate[u], mate[v] = v, u
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return mate
}
