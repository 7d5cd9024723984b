// SPDX-License-Identifier: MIT
// Package: arcroute/builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal street grid with 4-neighbourhood (right & bottom neighbours per cell).
//   • Vertex (r,c) gets id first + r*cols + c, label "r,c" and coordinates (c, r).
//     The label scheme is a deliberate exception to cfg.labelFn.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each (r,c) emit Right then Bottom if present.
//     Directed graphs also get the reverse arc (two-way streets).
//
// Complexity:
//   • Time: O(rows*cols) vertices + O(rows*cols) links.

package builder

import (
	"fmt"

	"github.com/katalvlaran/arcroute/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if err := checkRand(methodGrid, cfg); err != nil {
			return err
		}

		first := g.VertexCount() + 1
		var r, c int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				g.AddVertex(
					core.WithLabel(fmt.Sprintf(gridIDFmt, r, c)),
					core.WithCoordinates(float64(c), float64(r)),
				)
			}
		}

		at := func(r, c int) int { return first + r*cols + c }
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				if c+1 < cols {
					if err := addLinkPair(g, cfg, methodGrid, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addLinkPair(g, cfg, methodGrid, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
