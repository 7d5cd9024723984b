// SPDX-License-Identifier: MIT
// Package: arcroute/builder
//
// impl_wheel.go: implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices): a rim cycle C_{n-1} plus a hub "Center".
//   • Spokes are emitted hub→rim in rim order; Directed graphs get rim→hub too.
//   • Undirected rims have degree 3 everywhere, so every rim vertex is odd.
//
// Complexity:
//   • Time: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/arcroute/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds a wheel Wₙ = Cₙ₋₁ + "Center".
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		rim := g.VertexCount() + 1
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		hub := g.AddVertex(core.WithLabel(centerVertexID))

		var i int
		for i = 0; i < n-1; i++ {
			if err := addLinkPair(g, cfg, methodWheel, hub, rim+i); err != nil {
				return err
			}
		}

		return nil
	}
}
