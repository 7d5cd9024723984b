// Package builder provides internal helper functions used by Constructor
// implementations to emit vertices and links.
package builder

import (
	"fmt"

	"github.com/katalvlaran/arcroute/core"
)

// addVertices appends n vertices labelled cfg.labelFn(0..n-1) and returns the
// id of the first one. Ids are consecutive.
//
// Complexity: O(n).
func addVertices(g *core.Graph, cfg builderConfig, n int) int {
	first := g.VertexCount() + 1
	var i int
	for i = 0; i < n; i++ {
		g.AddVertex(core.WithLabel(cfg.labelFn(i)))
	}

	return first
}

// needsRand reports whether link emission will draw from cfg.rng.
func (cfg builderConfig) needsRand() bool {
	return cfg.required > 0 && cfg.required < 1
}

// addLink emits u→v with costs drawn from cfg. Windy graphs get an independent
// reverse cost when cfg.reverseFn is set.
//
// Draw order per link (fixed for determinism): cost, reverse, service, required.
func addLink(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	cost := cfg.costFn(cfg.rng)
	opts := make([]core.LinkOption, 0, 3)
	if g.Kind() == core.Windy {
		rc := cost
		if cfg.reverseFn != nil {
			rc = cfg.reverseFn(cfg.rng)
		}
		opts = append(opts, core.WithReverseCost(rc))
	}
	if cfg.serviceFn != nil {
		opts = append(opts, core.WithServiceCost(cfg.serviceFn(cfg.rng)))
	}
	if cfg.needsRand() {
		opts = append(opts, core.WithRequired(cfg.rng.Float64() < cfg.required))
	} else if cfg.required == 0 {
		opts = append(opts, core.WithRequired(false))
	}

	if _, err := g.AddLink(u, v, cost, opts...); err != nil {
		return fmt.Errorf("%s: AddLink(%d→%d, c=%d): %w: %w", method, u, v, cost, ErrConstructFailed, err)
	}

	return nil
}

// addLinkPair emits u→v, and v→u as well on Directed graphs so that every
// neighbourhood stays traversable both ways.
func addLinkPair(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	if err := addLink(g, cfg, method, u, v); err != nil {
		return err
	}
	if g.Kind() == core.Directed {
		return addLink(g, cfg, method, v, u)
	}

	return nil
}

// checkRand rejects a config that will need random draws but has no RNG.
func checkRand(method string, cfg builderConfig) error {
	if cfg.rng == nil && cfg.needsRand() {
		return fmt.Errorf("%s: required probability %g: %w", method, cfg.required, ErrNeedRandSource)
	}

	return nil
}
