// SPDX-License-Identifier: MIT
// Package: arcroute/builder
//
// impl_cycle.go: implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits links in stable order i → (i+1) mod n; on Directed graphs this is
//     a single directed ring, which is already balanced.
//
// Complexity:
//   • Time: O(n) vertices + O(n) links.

package builder

import (
	"fmt"

	"github.com/katalvlaran/arcroute/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := checkRand(methodCycle, cfg); err != nil {
			return err
		}

		first := addVertices(g, cfg, n)
		var i int
		for i = 0; i < n; i++ {
			if err := addLink(g, cfg, methodCycle, first+i, first+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
