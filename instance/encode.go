package instance

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/arcroute/core"
)

// FromGraph converts g into its File form. Vertices without a unique label
// are written as "#<id>". depot = 0 omits the depot key.
func FromGraph(name string, g *core.Graph, depot int) (File, error) {
	if g == nil {
		return File{}, ErrNilInstance
	}
	f := File{Name: name, Kind: g.Kind().String()}

	vs := g.Vertices()
	labels := make([]string, len(vs)+1)
	seen := make(map[string]bool, len(vs))
	f.Vertices = make([]VertexSpec, 0, len(vs))
	for _, v := range vs {
		label := v.Label
		if label == "" || seen[label] {
			label = fmt.Sprintf("#%d", v.ID)
		}
		seen[label] = true
		labels[v.ID] = label

		spec := VertexSpec{Label: label}
		if x, y, ok := v.Coordinates(); ok {
			spec.X, spec.Y = &x, &y
		}
		if d, err := v.Demand(); err == nil {
			spec.Demand = &d
		}
		f.Vertices = append(f.Vertices, spec)
	}
	if depot != 0 {
		if depot < 0 || depot >= len(labels) {
			return File{}, fmt.Errorf("instance: depot %d: %w", depot, core.ErrVertexNotFound)
		}
		f.Depot = labels[depot]
	}

	links := g.Links()
	f.Links = make([]LinkSpec, 0, len(links))
	for _, l := range links {
		spec := LinkSpec{
			From:        labels[l.From],
			To:          labels[l.To],
			Cost:        l.Cost,
			ServiceCost: l.ServiceCost,
			Capacity:    l.Capacity,
			Arc:         l.Directed && g.Kind() == core.Mixed,
			Label:       l.Label,
		}
		if g.Kind() == core.Windy {
			rc := l.ReverseCost
			spec.ReverseCost = &rc
		}
		if !l.Required {
			req := false
			spec.Required = &req
		}
		f.Links = append(f.Links, spec)
	}

	return f, nil
}

// Write encodes f as TOML.
func Write(w io.Writer, f File) error {
	if err := toml.NewEncoder(w).Encode(f); err != nil {
		return fmt.Errorf("instance: encode: %w", err)
	}

	return nil
}

// Save writes f to path, replacing any existing file.
func Save(path string, f File) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("instance: save: %w", err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("instance: save: %w", cerr)
		}
	}()

	return Write(out, f)
}
