package route_test

import (
	"fmt"

	"github.com/katalvlaran/arcroute/core"
	"github.com/katalvlaran/arcroute/route"
)

// ExampleFromCircuit replays an out-and-back walk over one street and
// services it on the way out.
func ExampleFromCircuit() {
	g := core.New(core.Undirected, core.WithVertices(2))
	id, _ := g.AddLink(1, 2, 4, core.WithServiceCost(1))

	r, err := route.FromCircuit(g, 1, []int{id, id}, route.ServeFirst)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(r.Vertices(), r.Cost(), r.Deadhead())
	// Output: [1 2 1] 9 4
}
