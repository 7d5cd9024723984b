package postman_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/arcroute/core"
	"github.com/katalvlaran/arcroute/postman"
)

// ExampleSolve solves a two-street rural instance where a cheap unrequired
// detour closes the tour.
func ExampleSolve() {
	g := core.New(core.Undirected, core.WithVertices(4))
	_, _ = g.AddLink(1, 2, 10)
	_, _ = g.AddLink(2, 3, 10)
	_, _ = g.AddLink(1, 4, 1, core.WithRequired(false))
	_, _ = g.AddLink(4, 3, 1, core.WithRequired(false))

	sol, err := postman.Solve(context.Background(), g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("cost:", sol.Cost())
	fmt.Println("deadhead:", sol.Route.Deadhead())
	fmt.Println("closed:", sol.Route.Closed())
	// Output:
	// cost: 22
	// deadhead: 2
	// closed: true
}

// ExampleSolve_windy shows a steep street climbed once and descended once.
func ExampleSolve_windy() {
	g := core.New(core.Windy, core.WithVertices(2))
	_, _ = g.AddLink(1, 2, 1, core.WithReverseCost(9))

	sol, err := postman.Solve(context.Background(), g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(sol.Cost(), sol.Route.Vertices())
	// Output:
	// 10 [1 2 1]
}
