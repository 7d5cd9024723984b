// SPDX-License-Identifier: MIT
package instance

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/arcroute/core"
)

// Read decodes one instance from r.
//
// Errors: the TOML syntax error, ErrUnknownKey, and a multierr aggregate of
// every ErrUnknownVertex, ErrDuplicateVertex, ErrBadValue and core error met
// while building the graph.
func Read(r io.Reader) (*Instance, error) {
	var f File
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("instance: decode: %w", err)
	}
	if err = undecoded(md); err != nil {
		return nil, err
	}

	return Build(f)
}

// Load decodes the instance file at path. An empty name defaults to the file
// name without extension.
func Load(path string) (*Instance, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("instance: load %s: %w", path, err)
	}
	if err = undecoded(md); err != nil {
		return nil, fmt.Errorf("instance: load %s: %w", path, err)
	}
	if f.Name == "" {
		f.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	in, err := Build(f)
	if err != nil {
		return nil, fmt.Errorf("instance: load %s: %w", path, err)
	}
	in.Path = path

	return in, nil
}

// LoadAll loads paths concurrently, at most limit files at a time (limit < 1
// means no limit). The result is index-aligned with paths; failed files leave
// nil and add one error to the multierr aggregate.
func LoadAll(ctx context.Context, paths []string, limit int) ([]*Instance, error) {
	out := make([]*Instance, len(paths))
	errs := make([]error, len(paths))

	grp, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		grp.SetLimit(limit)
	}
	for i, p := range paths {
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				errs[i] = fmt.Errorf("instance: load %s: %w", p, err)

				return nil
			}
			out[i], errs[i] = Load(p)

			return nil
		})
	}
	_ = grp.Wait()

	return out, multierr.Combine(errs...)
}

func undecoded(md toml.MetaData) error {
	var err error
	for _, key := range md.Undecoded() {
		err = multierr.Append(err, fmt.Errorf("%w: %s", ErrUnknownKey, key))
	}

	return err
}

// Build turns a decoded File into an Instance.
//
// Vertices are numbered 1..n in declaration order. Problems with individual
// tables do not stop the scan; they are all reported together.
func Build(f File) (*Instance, error) {
	kind, err := core.ParseKind(f.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: kind: %w", ErrBadValue, err)
	}
	in := &Instance{Name: f.Name, Graph: core.New(kind, core.WithLinkCapacity(len(f.Links))), ids: make(map[string]int)}

	var errs error
	declared := len(f.Vertices) > 0
	for i, v := range f.Vertices {
		errs = multierr.Append(errs, in.addVertex(i, v))
	}

	var i int
	var l LinkSpec
	for i, l = range f.Links {
		errs = multierr.Append(errs, in.addLink(i, l, declared))
	}

	if f.Depot != "" {
		id, ok := in.ids[f.Depot]
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("%w: depot %q", ErrUnknownVertex, f.Depot))
		}
		in.Depot = id
	}
	if errs != nil {
		return nil, errs
	}

	return in, nil
}

func (in *Instance) addVertex(i int, v VertexSpec) error {
	if v.Label == "" {
		return fmt.Errorf("%w: vertex %d: empty label", ErrBadValue, i)
	}
	if _, dup := in.ids[v.Label]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateVertex, v.Label)
	}
	if (v.X == nil) != (v.Y == nil) {
		return fmt.Errorf("%w: vertex %q: x and y go together", ErrBadValue, v.Label)
	}

	opts := []core.VertexOption{core.WithLabel(v.Label)}
	if v.X != nil {
		opts = append(opts, core.WithCoordinates(*v.X, *v.Y))
	}
	if v.Demand != nil {
		opts = append(opts, core.WithDemand(*v.Demand))
	}
	in.ids[v.Label] = in.Graph.AddVertex(opts...)

	return nil
}

// vertex resolves a link endpoint, declaring it when no vertex tables exist.
func (in *Instance) vertex(label string, declared bool) (int, bool) {
	if id, ok := in.ids[label]; ok {
		return id, true
	}
	if declared || label == "" {
		return 0, false
	}
	id := in.Graph.AddVertex(core.WithLabel(label))
	in.ids[label] = id

	return id, true
}

func (in *Instance) addLink(i int, l LinkSpec, declared bool) error {
	from, ok := in.vertex(l.From, declared)
	if !ok {
		return fmt.Errorf("%w: link %d: from %q", ErrUnknownVertex, i, l.From)
	}
	to, ok := in.vertex(l.To, declared)
	if !ok {
		return fmt.Errorf("%w: link %d: to %q", ErrUnknownVertex, i, l.To)
	}
	if l.Cost < 0 || l.ServiceCost < 0 || l.Capacity < 0 || (l.ReverseCost != nil && *l.ReverseCost < 0) {
		return fmt.Errorf("%w: link %d: negative cost or capacity", ErrBadValue, i)
	}

	opts := make([]core.LinkOption, 0, 6)
	if l.ReverseCost != nil {
		opts = append(opts, core.WithReverseCost(*l.ReverseCost))
	}
	if l.ServiceCost != 0 {
		opts = append(opts, core.WithServiceCost(l.ServiceCost))
	}
	if l.Required != nil {
		opts = append(opts, core.WithRequired(*l.Required))
	}
	if l.Capacity != 0 {
		opts = append(opts, core.WithCapacity(l.Capacity))
	}
	if l.Arc {
		opts = append(opts, core.WithArc())
	}
	if l.Label != "" {
		opts = append(opts, core.WithLinkLabel(l.Label))
	}
	if _, err := in.Graph.AddLink(from, to, l.Cost, opts...); err != nil {
		return fmt.Errorf("instance: link %d (%s→%s): %w", i, l.From, l.To, err)
	}

	return nil
}
