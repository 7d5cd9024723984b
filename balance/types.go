package balance

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/arcroute/core"
	"github.com/katalvlaran/arcroute/matching"
)

// DefaultThreshold is the E1/E2 split fraction K of the windy construction.
const DefaultThreshold = 0.2

var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("balance: graph is nil")

	// ErrPathGraphMismatch indicates a path graph of another kind or with fewer vertices.
	ErrPathGraphMismatch = errors.New("balance: path graph does not align with the graph")

	// ErrNotEven indicates odd-degree vertices where an even graph is required.
	ErrNotEven = errors.New("balance: graph has odd-degree vertices")
)

// Options configures the balancing entry points.
type Options struct {
	// Logger receives phase summaries at V(1) and per-path detail at V(2).
	Logger logr.Logger
	// PathGraph supplies shortest paths and duplicate templates (nil = the graph itself).
	PathGraph *core.Graph
	// Threshold is the E1/E2 split fraction for windy graphs.
	Threshold float64
	// Matching selects the pairing algorithm for odd vertices.
	Matching matching.Algorithm
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns discarding logs, no path graph, K = 0.2 and exact matching.
func DefaultOptions() Options {
	return Options{
		Logger:    logr.Discard(),
		Threshold: DefaultThreshold,
		Matching:  matching.Blossom,
	}
}

// WithLogger sets the logger.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithPathGraph draws shortest paths and duplicates from full.
// Panics if full is nil.
func WithPathGraph(full *core.Graph) Option {
	if full == nil {
		panic("balance: WithPathGraph(nil)")
	}

	return func(o *Options) { o.PathGraph = full }
}

// WithThreshold overrides the windy E1/E2 split fraction.
// Panics if k < 0.
func WithThreshold(k float64) Option {
	if k < 0 {
		panic("balance: WithThreshold(k) requires k >= 0")
	}

	return func(o *Options) { o.Threshold = k }
}

// WithMatching selects the odd-vertex pairing algorithm.
func WithMatching(a matching.Algorithm) Option {
	return func(o *Options) { o.Matching = a }
}

// Augmentation reports what a balancing call added.
type Augmentation struct {
	// Added holds the ids of the duplicate links present in the graph afterwards.
	Added []int
	// Cost is the minimized objective: the matching weight (Undirected), the
	// flow cost (Directed), or Σ(Cost+ReverseCost) of the kept duplicates (Windy).
	Cost int64
	// Pairs lists the matched odd vertices.
	Pairs [][2]int
	// Flow is the per-arc flow of the underlying network (Directed: indexed by
	// path-graph link id; Windy: indexed by auxiliary arc id).
	Flow []int64
}

// run carries the resolved inputs of one balancing call.
type run struct {
	g    *core.Graph
	path *core.Graph
	opts Options
}

func newRun(g *core.Graph, opts []Option, kinds ...core.Kind) (*run, error) {
	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	ok := false
	for _, k := range kinds {
		ok = ok || g.Kind() == k
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s graph", core.ErrWrongLinkType, g.Kind())
	}
	r := &run{g: g, path: g, opts: o}
	if o.PathGraph != nil {
		if o.PathGraph.Kind() != g.Kind() || o.PathGraph.VertexCount() < g.VertexCount() {
			return nil, fmt.Errorf("%w: %s graph with %d vertices for a %s graph with %d",
				ErrPathGraphMismatch, o.PathGraph.Kind(), o.PathGraph.VertexCount(),
				g.Kind(), g.VertexCount())
		}
		r.path = o.PathGraph
	}

	return r, nil
}

// pathID maps a working-graph link to its path-graph counterpart.
func (r *run) pathID(l core.Link) int {
	if r.path == r.g {
		return l.ID
	}

	return l.MatchID
}

// duplicate adds a non-required copy of path-graph link p to the working graph.
func (r *run) duplicate(p core.Link) (int, error) {
	opts := []core.LinkOption{
		core.WithRequired(false),
		core.WithLinkMatchID(p.ID),
		core.WithLinkLabel(p.Label),
	}
	switch {
	case r.g.Kind() == core.Windy:
		opts = append(opts, core.WithReverseCost(p.ReverseCost))
	case r.g.Kind() == core.Mixed && p.Directed:
		opts = append(opts, core.WithArc())
	}
	id, err := r.g.AddLink(p.From, p.To, p.Cost, opts...)
	if err != nil {
		return 0, fmt.Errorf("balance: duplicate link %d: %w", p.ID, err)
	}

	return id, nil
}
