package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"go.uber.org/multierr"

	"github.com/katalvlaran/arcroute/core"
	"github.com/katalvlaran/arcroute/instance"
	"github.com/katalvlaran/arcroute/postman"
	"github.com/katalvlaran/arcroute/route"
)

type reporter struct {
	w         io.Writer
	showRoute bool
	average   bool
}

// report prints one row per instance and a total over the solved ones.
// Failed solves are zipped with their errors: SolveJobs reports them in job order.
func (r reporter) report(ctx context.Context, ins []*instance.Instance, sols []*postman.Solution, solveErr error) error {
	failures := multierr.Errors(solveErr)
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)

	header := "INSTANCE\tKIND\tCOST\tDEADHEAD\tSTEPS"
	if r.average {
		header += "\tAVG TRAVERSAL"
	}
	fmt.Fprintln(tw, header)

	var solved []*route.Route
	var routes []string
	for i, in := range ins {
		var sol *postman.Solution
		if i < len(sols) {
			sol = sols[i]
		}
		if sol == nil {
			msg := "failed"
			if len(failures) > 0 {
				msg, failures = "failed: "+failures[0].Error(), failures[1:]
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", in.Name, in.Graph.Kind(), msg)
			continue
		}
		solved = append(solved, sol.Route)

		row := fmt.Sprintf("%s\t%s\t%d\t%d\t%d", in.Name, sol.Kind, sol.Cost(), sol.Route.Deadhead(), sol.Route.Len())
		if r.average {
			row += "\t" + averageCell(ctx, in.Graph, sol.Route)
		}
		fmt.Fprintln(tw, row)
		if r.showRoute {
			routes = append(routes, fmt.Sprintf("%s: %s", in.Name, labels(in.Graph, sol.Route)))
		}
	}
	if len(solved) > 1 {
		fmt.Fprintf(tw, "TOTAL\t\t%d\t\t\n", route.Sum(solved...))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	for _, line := range routes {
		fmt.Fprintln(r.w, line)
	}

	return nil
}

func averageCell(ctx context.Context, g *core.Graph, r *route.Route) string {
	avg, err := route.AverageTraversal(ctx, g, []*route.Route{r})
	switch {
	case errors.Is(err, route.ErrNoTasks):
		return "-"
	case err != nil:
		return "error: " + err.Error()
	}

	return fmt.Sprintf("%.2f", avg)
}

// labels renders the vertex sequence of r using vertex labels where present.
func labels(g *core.Graph, r *route.Route) string {
	vs := r.Vertices()
	parts := make([]string, len(vs))
	for i, id := range vs {
		parts[i] = fmt.Sprint(id)
		if v, err := g.Vertex(id); err == nil && v.Label != "" {
			parts[i] = v.Label
		}
	}

	return strings.Join(parts, " → ")
}

// failureMessage summarises load and solve failures for the exit error.
func failureMessage(loadErr, solveErr error, ins []*instance.Instance) string {
	var b strings.Builder
	n := len(multierr.Errors(loadErr)) + len(multierr.Errors(solveErr))
	fmt.Fprintf(&b, "%d instance(s) failed", n)
	for _, err := range multierr.Errors(loadErr) {
		fmt.Fprintf(&b, "\n  %v", err)
	}
	if solveErr != nil {
		fmt.Fprintf(&b, "\n  %d of %d loaded instance(s) could not be solved", len(multierr.Errors(solveErr)), len(ins))
	}

	return b.String()
}
