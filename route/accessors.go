package route

import (
	"slices"

	"github.com/katalvlaran/arcroute/core"
)

// Graph returns the graph the route was built on.
func (r *Route) Graph() *core.Graph { return r.g }

// Version returns the graph version the route was built against.
func (r *Route) Version() uint64 { return r.version }

// Start returns the first vertex of the walk.
func (r *Route) Start() int { return r.at[0] }

// End returns the vertex reached after the last step.
func (r *Route) End() int { return r.at[len(r.at)-1] }

// Closed reports whether the walk ends where it started.
func (r *Route) Closed() bool { return r.Start() == r.End() }

// Len returns the number of steps.
func (r *Route) Len() int { return len(r.steps) }

// Step returns step i.
func (r *Route) Step(i int) Step { return r.steps[i] }

// Vertex returns the vertex before step i (Vertex(Len()) == End()).
func (r *Route) Vertex(i int) int { return r.at[i] }

// Steps returns a copy of the steps.
func (r *Route) Steps() []Step { return slices.Clone(r.steps) }

// Vertices returns a copy of the visited vertex sequence, Start() through End().
func (r *Route) Vertices() []int { return slices.Clone(r.at) }

// Links returns the link id of every step in order.
func (r *Route) Links() []int {
	out := make([]int, len(r.steps))
	for i, s := range r.steps {
		out[i] = s.Link
	}

	return out
}

// Cost returns travel plus service cost.
func (r *Route) Cost() int64 { return r.travel + r.service }

// TravelCost returns the directional travel cost of every step.
func (r *Route) TravelCost() int64 { return r.travel }

// ServiceCost returns the service charges of the serviced steps.
func (r *Route) ServiceCost() int64 { return r.service }

// Deadhead returns the travel cost of the steps that service nothing.
func (r *Route) Deadhead() int64 { return r.deadhead }

// Serviced reports whether some step services link id.
func (r *Route) Serviced(id int) bool { return r.serviced[id] }

// ServicedLinks returns the serviced link ids in walk order.
func (r *Route) ServicedLinks() []int {
	out := make([]int, 0, len(r.serviced))
	for _, s := range r.steps {
		if s.Service {
			out = append(out, s.Link)
		}
	}

	return out
}

// Units returns a copy of the compact view.
func (r *Route) Units() []Unit { return slices.Clone(r.units) }
