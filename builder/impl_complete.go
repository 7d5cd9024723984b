// SPDX-License-Identifier: MIT
// Package: arcroute/builder
//
// impl_complete.go: implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j} with i<j once, in lexicographic order;
//     Directed graphs also get j→i.
//
// Complexity:
//   • Time: O(n) vertices + O(n²) links.

package builder

import (
	"fmt"

	"github.com/katalvlaran/arcroute/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := checkRand(methodComplete, cfg); err != nil {
			return err
		}

		first := addVertices(g, cfg, n)
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if err := addLinkPair(g, cfg, methodComplete, first+i, first+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
