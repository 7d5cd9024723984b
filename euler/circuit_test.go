package euler_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arcroute/core"
	"github.com/katalvlaran/arcroute/euler"
)

func link(t testing.TB, g *core.Graph, from, to int, cost int64, opts ...core.LinkOption) int {
	t.Helper()
	id, err := g.AddLink(from, to, cost, opts...)
	require.NoError(t, err)

	return id
}

func TestCircuit_DirectedCycleInOrder(t *testing.T) {
	g := core.New(core.Directed, core.WithVertices(4))
	ids := []int{
		link(t, g, 1, 2, 2),
		link(t, g, 2, 3, 3),
		link(t, g, 3, 4, 4),
		link(t, g, 4, 1, 5),
	}
	c, err := euler.Circuit(context.Background(), g, 1)
	require.NoError(t, err)
	assert.Equal(t, ids, c)
	require.NoError(t, euler.Verify(g, 1, c))
}

func TestCircuit_DoubledPath(t *testing.T) {
	g := core.New(core.Undirected, core.WithVertices(3))
	a := link(t, g, 1, 2, 10)
	b := link(t, g, 2, 3, 5)
	a2 := link(t, g, 1, 2, 10)
	b2 := link(t, g, 2, 3, 5)

	c, err := euler.Circuit(context.Background(), g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{a, b, b2, a2}, c)
	require.NoError(t, euler.Verify(g, 1, c))
}

// Sub-circuits hanging off intermediate vertices must be spliced in.
func TestCircuit_Splicing(t *testing.T) {
	g := core.New(core.Undirected, core.WithVertices(5))
	// Two triangles sharing vertex 3 plus a loop at 5.
	link(t, g, 1, 2, 1)
	link(t, g, 2, 3, 1)
	link(t, g, 3, 1, 1)
	link(t, g, 3, 4, 1)
	link(t, g, 4, 5, 1)
	link(t, g, 5, 3, 1)
	link(t, g, 5, 5, 1)

	for start := 1; start <= 5; start++ {
		c, err := euler.Circuit(context.Background(), g, start)
		require.NoError(t, err)
		assert.Len(t, c, 7)
		require.NoError(t, euler.Verify(g, start, c), "start %d", start)
	}
}

func TestCircuit_WindyUsesEitherDirection(t *testing.T) {
	g := core.New(core.Windy, core.WithVertices(3))
	link(t, g, 1, 2, 1, core.WithReverseCost(5))
	link(t, g, 3, 2, 1, core.WithReverseCost(5))
	link(t, g, 1, 3, 1, core.WithReverseCost(5))

	c, err := euler.Circuit(context.Background(), g, 2)
	require.NoError(t, err)
	require.NoError(t, euler.Verify(g, 2, c))
}

func TestCircuit_Failures(t *testing.T) {
	_, err := euler.Circuit(context.Background(), nil, 0)
	assert.ErrorIs(t, err, euler.ErrNilGraph)

	odd := core.New(core.Undirected, core.WithVertices(2))
	link(t, odd, 1, 2, 1)
	_, err = euler.Circuit(context.Background(), odd, 1)
	assert.ErrorIs(t, err, euler.ErrNotBalanced)
	assert.ErrorIs(t, err, core.ErrGraphInfeasible)

	unbalanced := core.New(core.Directed, core.WithVertices(2))
	link(t, unbalanced, 1, 2, 1)
	link(t, unbalanced, 1, 2, 1)
	link(t, unbalanced, 2, 1, 1)
	_, err = euler.Circuit(context.Background(), unbalanced, 1)
	assert.ErrorIs(t, err, euler.ErrNotBalanced)

	// Two balanced components: the walk stays in one.
	split := core.New(core.Directed, core.WithVertices(4))
	link(t, split, 1, 2, 1)
	link(t, split, 2, 1, 1)
	link(t, split, 3, 4, 1)
	link(t, split, 4, 3, 1)
	_, err = euler.Circuit(context.Background(), split, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, euler.ErrIncomplete)
	phase, _ := core.PhaseOf(err)
	assert.Equal(t, core.PhaseExtraction, phase)

	isolated := core.New(core.Undirected, core.WithVertices(3))
	link(t, isolated, 1, 2, 1)
	link(t, isolated, 2, 1, 1)
	_, err = euler.Circuit(context.Background(), isolated, 3)
	assert.ErrorIs(t, err, euler.ErrBadStart)
	_, err = euler.Circuit(context.Background(), isolated, 9)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	mixed := core.New(core.Mixed, core.WithVertices(1))
	_, err = euler.Circuit(context.Background(), mixed, 0)
	assert.ErrorIs(t, err, core.ErrWrongLinkType)

	empty, err := euler.Circuit(context.Background(), core.New(core.Undirected, core.WithVertices(2)), 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestVerify_ReportsEveryViolation(t *testing.T) {
	g := core.New(core.Directed, core.WithVertices(3))
	a := link(t, g, 1, 2, 1)
	b := link(t, g, 2, 3, 1)
	c := link(t, g, 3, 1, 1)

	require.NoError(t, euler.Verify(g, 1, []int{a, b, c}))

	err := euler.Verify(g, 1, []int{a, a, 99})
	require.Error(t, err)
	assert.ErrorIs(t, err, euler.ErrInvalidCircuit)

	err = euler.Verify(g, 2, []int{b, a, c})
	assert.ErrorIs(t, err, euler.ErrInvalidCircuit, "arc 1→2 cannot leave 3")
}

// Random even multigraphs built from closed walks always yield a full circuit.
func TestCircuit_RandomClosedWalks(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for iter := 0; iter < 50; iter++ {
		n := 2 + rng.Intn(8)
		kind := core.Undirected
		if iter%2 == 1 {
			kind = core.Directed
		}
		g := core.New(kind, core.WithVertices(n))
		// One closed walk through every vertex, then random extra cycles.
		for v := 1; v <= n; v++ {
			link(t, g, v, v%n+1, int64(rng.Intn(9)+1))
		}
		for k := 0; k < rng.Intn(4); k++ {
			u, v, w := 1+rng.Intn(n), 1+rng.Intn(n), 1+rng.Intn(n)
			link(t, g, u, v, 1)
			link(t, g, v, w, 1)
			link(t, g, w, u, 1)
		}
		c, err := euler.Circuit(context.Background(), g, 0)
		require.NoError(t, err, "iter %d", iter)
		require.Len(t, c, g.LinkCount())
		require.NoError(t, euler.Verify(g, 1, c), "iter %d", iter)
	}
}

func BenchmarkCircuit_Ring512(b *testing.B) {
	const n = 512
	g := core.New(core.Undirected, core.WithVertices(n))
	for v := 1; v <= n; v++ {
		link(b, g, v, v%n+1, 1)
		link(b, g, v, v%n+1, 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = euler.Circuit(context.Background(), g, 1)
	}
}
