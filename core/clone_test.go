package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arcroute/core"
)

func TestClone_CompactsAndRecordsSource(t *testing.T) {
	g := core.New(core.Windy, core.WithVertices(3))
	mustLink(t, g, 1, 2, Cost1, core.WithReverseCost(Cost2))
	mustLink(t, g, 2, 3, Cost5)
	mustLink(t, g, 3, 1, Cost7, core.WithRequired(false), core.WithServiceCost(4))
	require.NoError(t, g.RemoveLink(2))
	require.NoError(t, g.SetDemand(2, 3))

	c := g.Clone()
	require.NoError(t, c.Validate())
	assert.Equal(t, core.Windy, c.Kind())
	assert.Equal(t, []int{1, 2}, c.LinkIDs())

	l2, err := c.Link(2)
	require.NoError(t, err)
	assert.Equal(t, 3, l2.MatchID)
	assert.Equal(t, int64(Cost7), l2.Cost)
	assert.False(t, l2.Required)
	assert.Equal(t, int64(4), l2.ServiceCost)

	l1, _ := c.Link(1)
	assert.Equal(t, int64(Cost2), l1.ReverseCost)

	v, _ := c.Vertex(2)
	assert.Equal(t, 2, v.MatchID)
	d, err := v.Demand()
	require.NoError(t, err)
	assert.Equal(t, int64(3), d)

	// Deep copy: mutating the clone leaves the source untouched.
	mustLink(t, c, 1, 3, Cost1)
	assert.Equal(t, 2, g.LinkCount())
	assert.Equal(t, 3, c.LinkCount())
}

func TestSubgraph_KeepsVertexAlignment(t *testing.T) {
	g := newTriangle(t)
	sub := g.Subgraph(func(l core.Link) bool { return l.Cost < Cost5 })
	assert.Equal(t, g.VertexCount(), sub.VertexCount())
	assert.Equal(t, 2, sub.LinkCount())
	assert.Equal(t, 1, sub.Degree(1))

	empty := g.CloneEmpty()
	assert.Equal(t, 3, empty.VertexCount())
	assert.Zero(t, empty.LinkCount())
}
