package core_test

import (
	"fmt"

	"github.com/katalvlaran/arcroute/core"
)

// ExampleGraph builds a small windy graph and inspects degrees.
func ExampleGraph() {
	// 1) Create a windy graph with three vertices.
	g := core.New(core.Windy, core.WithVertices(3))

	// 2) Add links; the first is cheaper 1→2 than 2→1.
	ab, _ := g.AddLink(1, 2, 4, core.WithReverseCost(9))
	_, _ = g.AddLink(2, 3, 3)

	// 3) Inspect.
	l, _ := g.Link(ab)
	fmt.Println("links:", g.LinkCount(), "odd:", g.OddVertices())
	fmt.Println("cost 1->2:", l.CostFrom(1), "cost 2->1:", l.CostFrom(2))

	// Output:
	// links: 2 odd: [1 3]
	// cost 1->2: 4 cost 2->1: 9
}

// ExampleGraph_Clone shows how MatchID maps a copy back to its source.
func ExampleGraph_Clone() {
	g := core.New(core.Undirected, core.WithVertices(2))
	_, _ = g.AddLink(1, 2, 1)
	second, _ := g.AddLink(1, 2, 2)
	_ = g.RemoveLink(1)

	c := g.Clone()
	l, _ := c.Link(1)
	fmt.Println(l.ID, l.MatchID == second)

	// Output:
	// 1 true
}
