// SPDX-License-Identifier: MIT
// Package: arcroute/builder
//
// impl_path.go: implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Appends n vertices; emits links i→i+1 for i = first..first+n-2.
//   • Directed graphs get the forward arcs only: a directed path is not strongly
//     connected, which makes it a ready-made infeasible fixture.
//
// Complexity:
//   • Time: O(n) vertices + O(n) links.

package builder

import (
	"fmt"

	"github.com/katalvlaran/arcroute/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := checkRand(methodPath, cfg); err != nil {
			return err
		}

		first := addVertices(g, cfg, n)
		var i int
		for i = 1; i < n; i++ {
			if err := addLink(g, cfg, methodPath, first+i-1, first+i); err != nil {
				return err
			}
		}

		return nil
	}
}
