package postman

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/multierr"

	"github.com/katalvlaran/arcroute/core"
)

// task is one pooled solve.
type task struct {
	ctx   context.Context
	index int
	g     *core.Graph
	opts  []Option
	out   []*Solution
	errs  []error
	wg    *sync.WaitGroup
}

func runTask(payload any) {
	t := payload.(*task)
	defer t.wg.Done()
	sol, err := Solve(t.ctx, t.g, t.opts...)
	if err != nil {
		t.errs[t.index] = fmt.Errorf("instance %d: %w", t.index, err)

		return
	}
	t.out[t.index] = sol
}

// Job is one SolveJobs input: a graph and the options that apply to it only.
type Job struct {
	Graph   *core.Graph
	Options []Option
}

// SolveAll solves every graph independently with the same options. See SolveJobs.
func SolveAll(ctx context.Context, graphs []*core.Graph, opts ...Option) ([]*Solution, error) {
	jobs := make([]Job, len(graphs))
	for i, g := range graphs {
		jobs[i] = Job{Graph: g}
	}

	return SolveJobs(ctx, jobs, opts...)
}

// SolveJobs solves every job independently on a pool of Options.Workers
// goroutines. Job options are applied after the shared ones. Each solve works
// on its own copy of the required subgraph, so graphs are only read.
//
// The result has one entry per job; failed jobs leave nil and contribute one
// wrapped error to the multierr aggregate (use multierr.Errors to split it).
// The pool itself failing is reported the same way.
func SolveJobs(ctx context.Context, jobs []Job, opts ...Option) ([]*Solution, error) {
	o := buildOptions(opts)
	out := make([]*Solution, len(jobs))
	if len(jobs) == 0 {
		return out, nil
	}

	pool, err := ants.NewPoolWithFunc(min(o.Workers, len(jobs)), runTask)
	if err != nil {
		return nil, fmt.Errorf("postman: pool: %w", err)
	}
	defer pool.Release()

	errs := make([]error, len(jobs))
	var wg sync.WaitGroup
	for i, j := range jobs {
		wg.Add(1)
		t := &task{ctx: ctx, index: i, g: j.Graph, opts: append(slices.Clip(opts), j.Options...), out: out, errs: errs, wg: &wg}
		if err = pool.Invoke(t); err != nil {
			errs[i] = fmt.Errorf("instance %d: %w", i, err)
			wg.Done()
		}
	}
	wg.Wait()
	o.Logger.V(1).Info("batch solved", "instances", len(jobs))

	return out, multierr.Combine(errs...)
}
