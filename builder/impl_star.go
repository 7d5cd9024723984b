// SPDX-License-Identifier: MIT
// Package: arcroute/builder
//
// impl_star.go: implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The hub is the first appended vertex, labelled "Center"; leaves follow.
//   • Directed graphs get both spokes (hub→leaf, leaf→hub).
//
// Complexity:
//   • Time: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/arcroute/core"
)

const (
	methodStar     = "Star"
	minStarNodes   = 2
	centerVertexID = "Center"
)

// Star returns a Constructor that builds a star: one hub and n-1 leaves.
// Every leaf is odd, so the undirected postman tour doubles every spoke.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := checkRand(methodStar, cfg); err != nil {
			return err
		}

		hub := g.AddVertex(core.WithLabel(centerVertexID))
		var i int
		for i = 1; i < n; i++ {
			leaf := g.AddVertex(core.WithLabel(cfg.labelFn(i)))
			if err := addLinkPair(g, cfg, methodStar, hub, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
