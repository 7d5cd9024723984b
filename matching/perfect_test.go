package matching_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arcroute/matching"
)

// matrixWeight adapts a symmetric matrix; negative entries mean "missing".
func matrixWeight(m [][]int64) matching.WeightFunc {
	return func(i, j int) (int64, bool) {
		if m[i][j] < 0 {
			return 0, false
		}

		return m[i][j], true
	}
}

// bruteForce returns the optimal perfect-matching weight by DP over subsets,
// or -1 when none exists.
func bruteForce(m [][]int64) int64 {
	n := len(m)
	full := 1<<n - 1
	memo := make([]int64, 1<<n)
	for i := range memo {
		memo[i] = -2
	}
	var rec func(mask int) int64
	rec = func(mask int) int64 {
		if mask == full {
			return 0
		}
		if memo[mask] != -2 {
			return memo[mask]
		}
		i := 0
		for mask&(1<<i) != 0 {
			i++
		}
		best := int64(-1)
		for j := i + 1; j < n; j++ {
			if mask&(1<<j) != 0 || m[i][j] < 0 {
				continue
			}
			sub := rec(mask | 1<<i | 1<<j)
			if sub < 0 {
				continue
			}
			if c := sub + m[i][j]; best < 0 || c < best {
				best = c
			}
		}
		memo[mask] = best

		return best
	}

	return rec(0)
}

func randomMatrix(rng *rand.Rand, n int, maxW int64, missing float64) [][]int64 {
	m := make([][]int64, n)
	for i := range m {
		m[i] = make([]int64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := rng.Int63n(maxW + 1)
			if rng.Float64() < missing {
				w = -1
			}
			m[i][j], m[j][i] = w, w
		}
	}

	return m
}

func TestMinWeightPerfect_Small(t *testing.T) {
	// 0-1 cheap, 2-3 cheap, cross pairs expensive.
	m := [][]int64{
		{0, 1, 9, 9},
		{1, 0, 9, 9},
		{9, 9, 0, 2},
		{9, 9, 2, 0},
	}
	res, err := matching.MinWeightPerfect(4, matrixWeight(m))
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Weight)
	assert.Equal(t, [][2]int{{0, 1}, {2, 3}}, res.Pairs)
	assert.Equal(t, []int{1, 0, 3, 2}, res.Mate)
}

// Greedy takes 0-1 (cost 1) and is forced into 2-3 (cost 100); the optimum
// crosses both pairs.
func TestMinWeightPerfect_BeatsGreedy(t *testing.T) {
	m := [][]int64{
		{0, 1, 2, 50},
		{1, 0, 50, 2},
		{2, 50, 0, 100},
		{50, 2, 100, 0},
	}
	exact, err := matching.MinWeightPerfect(4, matrixWeight(m))
	require.NoError(t, err)
	assert.Equal(t, int64(4), exact.Weight)

	g, err := matching.MinWeightPerfect(4, matrixWeight(m), matching.WithAlgorithm(matching.Greedy))
	require.NoError(t, err)
	assert.Equal(t, int64(101), g.Weight)
}

func TestMinWeightPerfect_Errors(t *testing.T) {
	_, err := matching.MinWeightPerfect(3, func(int, int) (int64, bool) { return 1, true })
	assert.ErrorIs(t, err, matching.ErrOddVertexCount)

	_, err = matching.MinWeightPerfect(2, nil)
	assert.ErrorIs(t, err, matching.ErrNilWeight)

	// 0 can only pair with 1, and so can 2: no perfect matching.
	m := [][]int64{
		{0, 1, -1, -1},
		{1, 0, 1, 1},
		{-1, 1, 0, -1},
		{-1, 1, -1, 0},
	}
	_, err = matching.MinWeightPerfect(4, matrixWeight(m))
	assert.ErrorIs(t, err, matching.ErrNoPerfectMatching)

	_, err = matching.MinWeightPerfect(4, matrixWeight(m), matching.WithAlgorithm(matching.Greedy))
	assert.ErrorIs(t, err, matching.ErrNoPerfectMatching)

	res, err := matching.MinWeightPerfect(0, matrixWeight(nil))
	require.NoError(t, err)
	assert.Empty(t, res.Pairs)
}

func TestMinWeightPerfect_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := matching.MinWeightPerfect(2, func(int, int) (int64, bool) { return 1, true },
		matching.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMinWeightPerfect_NegativeWeights(t *testing.T) {
	m := [][]int64{
		{0, -5, 3, 3},
		{-5, 0, 3, 3},
		{3, 3, 0, -7},
		{3, 3, -7, 0},
	}
	w := func(i, j int) (int64, bool) { return m[i][j], true }
	res, err := matching.MinWeightPerfect(4, w)
	require.NoError(t, err)
	assert.Equal(t, int64(-12), res.Weight)
}

// The exact solver must agree with exhaustive search on random instances,
// including sparse ones that need blossoms and ones with no perfect matching.
func TestMinWeightPerfect_AgreesWithBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 300; iter++ {
		n := 2 * (1 + rng.Intn(6)) // 2..12
		missing := []float64{0, 0.3, 0.6}[iter%3]
		m := randomMatrix(rng, n, int64(1+rng.Intn(40)), missing)

		want := bruteForce(m)
		res, err := matching.MinWeightPerfect(n, matrixWeight(m))
		if want < 0 {
			require.ErrorIs(t, err, matching.ErrNoPerfectMatching, "iter %d n=%d", iter, n)

			continue
		}
		require.NoError(t, err, "iter %d n=%d", iter, n)
		require.Equal(t, want, res.Weight, "iter %d n=%d", iter, n)

		// Structural checks.
		seen := make([]bool, n)
		for _, p := range res.Pairs {
			require.False(t, seen[p[0]] || seen[p[1]])
			seen[p[0]], seen[p[1]] = true, true
			require.GreaterOrEqual(t, m[p[0]][p[1]], int64(0))
		}
		require.Len(t, res.Pairs, n/2)
	}
}

// Euclidean-like weights from the odd vertices of a grid: blossoms are frequent.
func TestMinWeightPerfect_GridDistances(t *testing.T) {
	const n = 10
	m := make([][]int64, n)
	for i := range m {
		m[i] = make([]int64, n)
		for j := range m[i] {
			xi, yi := i%5, i/5
			xj, yj := j%5, j/5
			m[i][j] = int64(math.Abs(float64(xi-xj)) + math.Abs(float64(yi-yj)))
		}
	}
	res, err := matching.MinWeightPerfect(n, matrixWeight(m))
	require.NoError(t, err)
	assert.Equal(t, bruteForce(m), res.Weight)
}

func BenchmarkMinWeightPerfect_Blossom64(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	m := randomMatrix(rng, 64, 1000, 0)
	w := matrixWeight(m)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matching.MinWeightPerfect(64, w)
	}
}
