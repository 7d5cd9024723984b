package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/arcroute/core"
)

func TestComponents(t *testing.T) {
	g := core.New(core.Undirected, core.WithVertices(6))
	mustLink(t, g, 1, 2, Cost1)
	mustLink(t, g, 4, 5, Cost1)
	mustLink(t, g, 5, 6, Cost1, core.WithRequired(false))

	assert.Equal(t, [][]int{{1, 2}, {4, 5, 6}}, core.Components(g, nil))
	assert.False(t, core.ConnectedLinks(g, nil))

	required := func(l core.Link) bool { return l.Required }
	assert.Equal(t, [][]int{{1, 2}, {4, 5}}, core.Components(g, required))

	mustLink(t, g, 2, 4, Cost2)
	assert.True(t, core.ConnectedLinks(g, nil))
	assert.True(t, core.ConnectedLinks(core.New(core.Directed), nil), "no links is trivially connected")
}

func TestReachableFrom_FollowsArcs(t *testing.T) {
	g := core.New(core.Directed, core.WithVertices(4))
	mustLink(t, g, 1, 2, Cost1)
	mustLink(t, g, 2, 3, Cost1)
	mustLink(t, g, 4, 3, Cost1)

	assert.Equal(t, []int{1, 2, 3}, core.ReachableFrom(g, 1, nil))
	assert.Equal(t, []int{3}, core.ReachableFrom(g, 3, nil))
	assert.Nil(t, core.ReachableFrom(g, 9, nil))
	// Weak connectivity ignores direction.
	assert.True(t, core.ConnectedLinks(g, nil))
}
