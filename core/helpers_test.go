// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/katalvlaran/arcroute/core"
)

// Common costs used across core tests.
const (
	Cost1 = 1
	Cost2 = 2
	Cost5 = 5
	Cost7 = 7
)

// newTriangle returns an undirected triangle 1-2-3 with costs 1, 2, 5.
func newTriangle(t testing.TB) *core.Graph {
	t.Helper()
	g := core.New(core.Undirected, core.WithVertices(3))
	mustLink(t, g, 1, 2, Cost1)
	mustLink(t, g, 2, 3, Cost2)
	mustLink(t, g, 3, 1, Cost5)

	return g
}

func mustLink(t testing.TB, g *core.Graph, from, to int, cost int64, opts ...core.LinkOption) int {
	t.Helper()
	id, err := g.AddLink(from, to, cost, opts...)
	require.NoError(t, err)

	return id
}

func multierrs(err error) []error { return multierr.Errors(err) }
