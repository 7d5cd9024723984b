package balance_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arcroute/balance"
	"github.com/katalvlaran/arcroute/core"
)

// windyPath is 1–2 (1 forward, 9 back) and 2–3 (2 both ways).
func windyPath(t *testing.T) (*core.Graph, int, int) {
	g := core.New(core.Windy, core.WithVertices(3))
	steep := link(t, g, 1, 2, 1, core.WithReverseCost(9))
	flat := link(t, g, 2, 3, 2, core.WithReverseCost(2))

	return g, steep, flat
}

// windyGrid is a 2×3 grid with mixed asymmetry; four corners plus the middle
// column make it odd in several places.
func windyGrid(t *testing.T) *core.Graph {
	g := core.New(core.Windy, core.WithVertices(6))
	// 1 2 3
	// 4 5 6
	link(t, g, 1, 2, 3, core.WithReverseCost(7))
	link(t, g, 2, 3, 4, core.WithReverseCost(4))
	link(t, g, 4, 5, 2, core.WithReverseCost(11))
	link(t, g, 5, 6, 6, core.WithReverseCost(1))
	link(t, g, 1, 4, 5, core.WithReverseCost(5))
	link(t, g, 2, 5, 1, core.WithReverseCost(8))
	link(t, g, 3, 6, 9, core.WithReverseCost(3))
	link(t, g, 1, 5, 4, core.WithReverseCost(4))

	return g
}

func TestClassifyAndSkeleton(t *testing.T) {
	g, steep, flat := windyPath(t)
	c := balance.Classify(g, balance.DefaultThreshold)
	assert.Equal(t, []int{steep}, c.E1)
	assert.Equal(t, []int{flat}, c.E2)
	assert.InDelta(t, 3.5, c.Average, 1e-9)

	s, err := balance.Skeleton(g, c)
	require.NoError(t, err)
	require.Equal(t, 1, s.LinkCount())
	arc, _ := s.Link(1)
	assert.Equal(t, 1, arc.From, "cheaper direction")
	assert.Equal(t, steep, arc.MatchID)

	empty := balance.Classify(core.New(core.Windy), balance.DefaultThreshold)
	assert.Empty(t, empty.E1)
	assert.Zero(t, empty.Average)
}

// The signed deltas of the skeleton always cancel out.
func TestSkeleton_DeltaSumsToZero(t *testing.T) {
	g := windyGrid(t)
	for _, k := range []float64{0, 0.2, 0.5, 2} {
		s, err := balance.Skeleton(g, balance.Classify(g, k))
		require.NoError(t, err)
		sum := 0
		for v := 1; v <= s.VertexCount(); v++ {
			sum += s.Delta(v)
		}
		assert.Zero(t, sum, "k=%v", k)
	}
}

func TestAuxiliaryNetwork_Shape(t *testing.T) {
	g, steep, _ := windyPath(t)
	c := balance.Classify(g, balance.DefaultThreshold)
	s, err := balance.Skeleton(g, c)
	require.NoError(t, err)

	aux, err := balance.AuxiliaryNetwork(g, c, s)
	require.NoError(t, err)
	require.Len(t, aux.Arcs, 5)
	assert.Equal(t, 5, aux.Network.ArcCount())

	bounded := aux.Arcs[4]
	assert.True(t, bounded.Bounded)
	assert.Equal(t, steep, bounded.Link)
	assert.False(t, bounded.Forward, "extra arc runs in the costlier direction")
	arc, _ := aux.Network.Arc(4)
	assert.Equal(t, int64(2), arc.Capacity)
	assert.Equal(t, int64(10), arc.Cost)

	first, _ := aux.Network.Arc(1)
	assert.Equal(t, int64(18), first.Cost, "reverse traversal at twice its cost")

	d1, err := aux.Network.Demand(1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), d1)
}

func TestWindy_PathThenOrient(t *testing.T) {
	g, steep, flat := windyPath(t)
	aug, err := balance.Windy(context.Background(), g)
	require.NoError(t, err)
	assert.True(t, g.IsEven())
	assert.Equal(t, [][2]int{{1, 3}}, aug.Pairs)
	assert.Equal(t, int64(14), aug.Cost)
	assert.Len(t, aug.Flow, 5)
	var copies []int
	for _, id := range aug.Added {
		l, _ := g.Link(id)
		assert.False(t, l.Required)
		copies = append(copies, l.MatchID)
	}
	assert.ElementsMatch(t, []int{steep, flat}, copies)

	o, err := balance.Orient(context.Background(), g)
	require.NoError(t, err)
	assert.True(t, o.Graph.IsBalanced())
	assert.Equal(t, int64(14), o.Cost, "1→2→3→2→1")
	assert.Equal(t, 4, o.Graph.LinkCount())
	reversed := 0
	for _, id := range o.Graph.LinkIDs() {
		assert.False(t, o.Extra[id])
		if o.Reversed[id] {
			reversed++
		}
	}
	assert.Equal(t, 2, reversed)
}

func TestWindy_GridProperties(t *testing.T) {
	g := windyGrid(t)
	original := g.Clone()
	aug, err := balance.Windy(context.Background(), g)
	require.NoError(t, err)
	require.True(t, g.IsEven())
	require.NoError(t, g.Validate())

	// Originals untouched, only non-required copies added.
	for _, l := range original.Links() {
		got, err := g.Link(l.ID)
		require.NoError(t, err)
		assert.Equal(t, l.Cost, got.Cost)
		assert.True(t, got.Required)
	}
	assert.Equal(t, original.LinkCount()+len(aug.Added), g.LinkCount())

	o, err := balance.Orient(context.Background(), g)
	require.NoError(t, err)
	assert.True(t, o.Graph.IsBalanced())

	var lower int64
	for _, l := range original.Links() {
		lower += min(l.Cost, l.ReverseCost)
	}
	assert.GreaterOrEqual(t, o.Cost, lower)
	for _, id := range o.Graph.LinkIDs() {
		arc, _ := o.Graph.Link(id)
		assert.True(t, g.HasLink(arc.MatchID))
	}
}

func TestWindy_EvenIsNoop(t *testing.T) {
	g := core.New(core.Windy, core.WithVertices(3))
	link(t, g, 1, 2, 1, core.WithReverseCost(4))
	link(t, g, 2, 3, 1, core.WithReverseCost(4))
	link(t, g, 3, 1, 1, core.WithReverseCost(4))

	aug, err := balance.Windy(context.Background(), g)
	require.NoError(t, err)
	assert.Empty(t, aug.Added)
	assert.Equal(t, 3, g.LinkCount())

	o, err := balance.Orient(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, int64(3), o.Cost)
	assert.Nil(t, o.Flow, "cheaper-direction cycle is already balanced")
}

// A windy graph with symmetric costs degenerates to the undirected case.
func TestWindy_SymmetricMatchesUndirected(t *testing.T) {
	w := core.New(core.Windy, core.WithVertices(3))
	link(t, w, 1, 2, 10)
	link(t, w, 2, 3, 5)
	aug, err := balance.Windy(context.Background(), w)
	require.NoError(t, err)
	assert.Equal(t, int64(30), aug.Cost)
	assert.Len(t, aug.Added, 2)
}

func TestOrient_Errors(t *testing.T) {
	g, _, _ := windyPath(t)
	_, err := balance.Orient(context.Background(), g)
	require.Error(t, err)
	assert.ErrorIs(t, err, balance.ErrNotEven)
	phase, _ := core.PhaseOf(err)
	assert.Equal(t, core.PhaseOrientation, phase)

	_, err = balance.Orient(context.Background(), core.New(core.Directed))
	assert.ErrorIs(t, err, core.ErrWrongLinkType)
	_, err = balance.Windy(context.Background(), core.New(core.Mixed))
	assert.ErrorIs(t, err, core.ErrWrongLinkType)
}

// Reversing one of two parallel windy links beats any extra traversal.
func TestOrient_Reversal(t *testing.T) {
	g := core.New(core.Windy, core.WithVertices(2))
	a := link(t, g, 1, 2, 1, core.WithReverseCost(3))
	b := link(t, g, 1, 2, 2, core.WithReverseCost(3))

	o, err := balance.Orient(context.Background(), g)
	require.NoError(t, err)
	assert.True(t, o.Graph.IsBalanced())
	assert.Equal(t, int64(4), o.Cost, "a forward (1) + b reversed (3)")
	arcB, _ := o.Graph.Link(2)
	assert.Equal(t, b, arcB.MatchID)
	assert.True(t, o.Reversed[2])
	arcA, _ := o.Graph.Link(1)
	assert.Equal(t, a, arcA.MatchID)
	assert.False(t, o.Reversed[1])
}

// oddCapacityFan is three parallel 1→3 links (10 forward, 20 back) closed by
// the path 3→2→1 (1 forward, 50 back). The cheap orientation leaves vertex 1
// two arcs short; extra traversals of the path are the cheap fix.
func oddCapacityFan(t *testing.T, pathCapacity int) *core.Graph {
	g := core.New(core.Windy, core.WithVertices(3))
	for range 3 {
		link(t, g, 1, 3, 10, core.WithReverseCost(20))
	}
	link(t, g, 3, 2, 1, core.WithReverseCost(50))
	link(t, g, 2, 1, 1, core.WithReverseCost(50), core.WithCapacity(pathCapacity))

	return g
}

func TestOrient_LinkCapacity(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		cost     int64
		extra    int
		reversed int
	}{
		{"unbounded", 0, 36, 4, 0},
		{"even", 2, 36, 4, 0},
		{"odd rounds down", 1, 42, 0, 1},
		{"odd above two", 3, 36, 4, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := oddCapacityFan(t, tc.capacity)
			require.NoError(t, g.Validate())

			o, err := balance.Orient(context.Background(), g)
			require.NoError(t, err)
			assert.True(t, o.Graph.IsBalanced())
			assert.Equal(t, tc.cost, o.Cost)

			var extra, reversed int
			for id := range o.Extra {
				if o.Extra[id] {
					extra++
				}
				if o.Reversed[id] && !o.Extra[id] {
					reversed++
				}
			}
			assert.Equal(t, tc.extra, extra)
			assert.Equal(t, tc.reversed, reversed)
			for _, f := range o.Flow {
				assert.Zero(t, f%2, "flow stays even")
			}
		})
	}
}
