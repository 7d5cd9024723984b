package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arcroute/builder"
	"github.com/katalvlaran/arcroute/core"
)

// TestBuilders_Functional runs table-driven topology checks for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		kind  core.Kind
		ctor  builder.Constructor
		wantV int
		wantL int
		odd   int // odd vertices (undirected) or unbalanced vertices (directed)
	}{
		{"Path(4)", core.Undirected, builder.Path(4), 4, 3, 2},
		{"Path(4) directed", core.Directed, builder.Path(4), 4, 3, 2},
		{"Cycle(5)", core.Undirected, builder.Cycle(5), 5, 5, 0},
		{"Cycle(5) directed", core.Directed, builder.Cycle(5), 5, 5, 0},
		{"Star(4)", core.Undirected, builder.Star(4), 4, 3, 4},
		{"Star(4) directed", core.Directed, builder.Star(4), 4, 6, 0},
		{"Wheel(5)", core.Undirected, builder.Wheel(5), 5, 8, 4},
		{"Complete(4)", core.Undirected, builder.Complete(4), 4, 6, 4},
		{"Complete(5)", core.Undirected, builder.Complete(5), 5, 10, 0},
		{"Grid(2,3)", core.Undirected, builder.Grid(2, 3), 6, 7, 2},
		{"Grid(2,3) directed", core.Directed, builder.Grid(2, 3), 6, 14, 0},
		{"Grid(3,3) windy", core.Windy, builder.Grid(3, 3), 9, 12, 4},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.kind, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantL, g.LinkCount())
			require.NoError(t, g.Validate())

			odd := 0
			for v := 1; v <= g.VertexCount(); v++ {
				if tc.kind == core.Directed {
					if g.Delta(v) != 0 {
						odd++
					}
				} else if g.Degree(v)%2 == 1 {
					odd++
				}
			}
			assert.Equal(t, tc.odd, odd)
			for _, l := range g.Links() {
				assert.Equal(t, builder.DefaultLinkCost, l.Cost)
				assert.True(t, l.Required)
			}
		})
	}
}

func TestGrid_LabelsAndCoordinates(t *testing.T) {
	g, err := builder.BuildGraph(core.Undirected, nil, builder.Grid(2, 3))
	require.NoError(t, err)

	v, err := g.Vertex(6)
	require.NoError(t, err)
	assert.Equal(t, "1,2", v.Label)
	x, y, ok := v.Coordinates()
	assert.True(t, ok)
	assert.Equal(t, 2.0, x)
	assert.Equal(t, 1.0, y)

	// Right then bottom from (0,0).
	l1, _ := g.Link(1)
	l2, _ := g.Link(2)
	assert.Equal(t, [2]int{1, 2}, [2]int{l1.From, l1.To})
	assert.Equal(t, [2]int{1, 4}, [2]int{l2.From, l2.To})
}

func TestBuildGraph_ComposesDisjointComponents(t *testing.T) {
	g, err := builder.BuildGraph(core.Undirected,
		[]builder.BuilderOption{builder.WithPrefixLabels("v")},
		builder.Path(2), builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())
	assert.Len(t, core.Components(g, nil), 2)

	v, _ := g.Vertex(3)
	assert.Equal(t, "v1", v.Label, "labels restart per constructor")
}

func TestBuildGraph_CostsAndRequired(t *testing.T) {
	opts := []builder.BuilderOption{
		builder.WithSeed(7),
		builder.WithUniformCost(1, 9),
		builder.WithUniformReverseCost(10, 20),
		builder.WithServiceCostFn(builder.ConstantCostFn(2)),
		builder.WithRequiredProbability(0.5),
	}
	a, err := builder.BuildGraph(core.Windy, opts, builder.Grid(4, 4))
	require.NoError(t, err)
	b, err := builder.BuildGraph(core.Windy, nil, builder.Grid(4, 4))
	require.NoError(t, err)
	assert.NotEqual(t, a.Links()[0].ReverseCost, b.Links()[0].ReverseCost)

	again, err := builder.BuildGraph(core.Windy, []builder.BuilderOption{
		builder.WithSeed(7),
		builder.WithUniformCost(1, 9),
		builder.WithUniformReverseCost(10, 20),
		builder.WithServiceCostFn(builder.ConstantCostFn(2)),
		builder.WithRequiredProbability(0.5),
	}, builder.Grid(4, 4))
	require.NoError(t, err)
	assert.Equal(t, a.Links(), again.Links(), "same seed, same graph")

	required := 0
	for _, l := range a.Links() {
		assert.GreaterOrEqual(t, l.Cost, int64(1))
		assert.LessOrEqual(t, l.Cost, int64(9))
		assert.GreaterOrEqual(t, l.ReverseCost, int64(10))
		assert.Equal(t, int64(2), l.ServiceCost)
		if l.Required {
			required++
		}
	}
	assert.Positive(t, required)
	assert.Less(t, required, a.LinkCount())

	none, err := builder.BuildGraph(core.Undirected,
		[]builder.BuilderOption{builder.WithRequiredProbability(0)}, builder.Cycle(3))
	require.NoError(t, err)
	for _, l := range none.Links() {
		assert.False(t, l.Required)
	}
}

func TestBuildGraph_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", nil, builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", nil, builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"Grid(0,3)", nil, builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"RandomSparse p>1", nil, builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse no rng", nil, builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		{"required without rng", []builder.BuilderOption{builder.WithRequiredProbability(0.3)},
			builder.Path(3), builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(core.Undirected, tc.opts, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRandomSparse(t *testing.T) {
	full, err := builder.BuildGraph(core.Directed, nil, builder.RandomSparse(4, 1))
	require.NoError(t, err)
	assert.Equal(t, 12, full.LinkCount())

	empty, err := builder.BuildGraph(core.Undirected, nil, builder.RandomSparse(4, 0))
	require.NoError(t, err)
	assert.Zero(t, empty.LinkCount())

	opts := []builder.BuilderOption{builder.WithSeed(3)}
	a, err := builder.BuildGraph(core.Undirected, opts, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	b, err := builder.BuildGraph(core.Undirected, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	assert.Equal(t, a.Links(), b.Links())
}

func TestOptionsPanic(t *testing.T) {
	assert.Panics(t, func() { builder.WithLabelScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithCostFn(nil) })
	assert.Panics(t, func() { builder.WithReverseCostFn(nil) })
	assert.Panics(t, func() { builder.WithServiceCostFn(nil) })
	assert.Panics(t, func() { builder.WithRequiredProbability(1.1) })
	assert.Panics(t, func() { builder.ConstantCostFn(-1) })
	assert.Panics(t, func() { builder.UniformCostFn(5, 4) })
	assert.Panics(t, func() { builder.NormalCostFn(0, -1) })
	assert.Panics(t, func() { builder.ExcelColumnLabel(-1) })
}

func TestCostFnBehavior(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	assert.Equal(t, builder.DefaultLinkCost, builder.DefaultCostFn(nil))
	assert.Equal(t, int64(7), builder.ConstantCostFn(7)(rng))
	assert.Equal(t, int64(3), builder.UniformCostFn(3, 8)(nil), "nil rng falls back to min")
	for i := 0; i < 100; i++ {
		c := builder.UniformCostFn(3, 8)(rng)
		assert.GreaterOrEqual(t, c, int64(3))
		assert.LessOrEqual(t, c, int64(8))
		assert.GreaterOrEqual(t, builder.NormalCostFn(2, 5)(rng), int64(0))
	}
	assert.Equal(t, builder.DefaultLinkCost, builder.NormalCostFn(10, 1)(nil))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "1", builder.DecimalLabel(0))
	assert.Equal(t, "A", builder.ExcelColumnLabel(0))
	assert.Equal(t, "Z", builder.ExcelColumnLabel(25))
	assert.Equal(t, "AA", builder.ExcelColumnLabel(26))
	assert.Equal(t, "v3", builder.PrefixLabel("v")(2))

	g, err := builder.BuildGraph(core.Undirected,
		[]builder.BuilderOption{builder.WithExcelColumnLabels()}, builder.Cycle(3))
	require.NoError(t, err)
	v, _ := g.Vertex(3)
	assert.Equal(t, "C", v.Label)
}
