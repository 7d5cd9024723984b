// Command arcroute solves postman instances stored as TOML files.
//
//	arcroute -route testdata/rural.toml
//	arcroute -generate grid.toml -kind windy -grid 6x6 -seed 3
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/arcroute/builder"
	"github.com/katalvlaran/arcroute/core"
	"github.com/katalvlaran/arcroute/instance"
	"github.com/katalvlaran/arcroute/postman"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run is main without the process exit, so tests can drive it.
func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	cfg, exit, err := Parse(args, stdout)
	if err != nil || exit {
		return err
	}
	log := newLogger(stderr, cfg.Log)

	if cfg.Generate.Out != "" {
		return generate(cfg.Generate, log)
	}

	return solve(ctx, stdout, cfg, log)
}

// newLogger backs logr with zerolog. logr V(n) maps to zerolog level 1-n.
func newLogger(w io.Writer, c LogConfig) logr.Logger {
	zerologr.NameFieldName = "logger"
	zerologr.NameSeparator = "/"
	zerologr.SetMaxV(c.Verbosity)

	out := w
	if c.Format == "console" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	zl := zerolog.New(out).Level(zerolog.Level(1 - c.Verbosity)).With().Timestamp().Logger()

	return zerologr.New(&zl).WithName("arcroute")
}

func generate(c GenerateConfig, log logr.Logger) error {
	kind, err := core.ParseKind(c.Kind)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	if c.MaxCost < 1 || c.Required < 0 || c.Required > 1 {
		return &ExitError{Code: 2, Message: "max-cost must be >= 1 and required within [0,1]"}
	}

	opts := []builder.BuilderOption{
		builder.WithRand(rand.New(rand.NewSource(c.Seed))),
		builder.WithUniformCost(1, c.MaxCost),
		builder.WithRequiredProbability(c.Required),
	}
	if kind == core.Windy {
		opts = append(opts, builder.WithUniformReverseCost(1, c.MaxCost))
	}
	g, err := builder.BuildGraph(kind, opts, builder.Grid(c.Rows, c.Cols))
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	f, err := instance.FromGraph(fmt.Sprintf("grid %dx%d seed %d", c.Rows, c.Cols, c.Seed), g, 0)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if err = instance.Save(c.Out, f); err != nil {
		return err
	}
	log.Info("instance written", "path", c.Out, "kind", kind.String(),
		"vertices", g.VertexCount(), "links", g.LinkCount())

	return nil
}

func solve(ctx context.Context, stdout io.Writer, cfg *Config, log logr.Logger) error {
	opts, err := cfg.solveOptions()
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	opts = append(opts, postman.WithLogger(log.WithName("postman")))

	start := time.Now()
	loaded, loadErr := instance.LoadAll(ctx, cfg.Instances, cfg.Solver.Workers)

	var jobs []postman.Job
	var ins []*instance.Instance
	for _, in := range loaded {
		if in == nil {
			continue
		}
		job := postman.Job{Graph: in.Graph}
		if in.Depot != 0 {
			job.Options = []postman.Option{postman.WithStart(in.Depot)}
		}
		jobs = append(jobs, job)
		ins = append(ins, in)
	}
	log.V(1).Info("instances loaded", "ok", len(ins), "requested", len(cfg.Instances))

	sols, solveErr := postman.SolveJobs(ctx, jobs, opts...)
	log.Info("batch finished", "instances", len(jobs), "elapsed", time.Since(start).String())

	r := reporter{w: stdout, showRoute: cfg.ShowRoute, average: cfg.Average}
	if err = r.report(ctx, ins, sols, solveErr); err != nil {
		return err
	}
	if loadErr != nil || solveErr != nil {
		return &ExitError{Code: 1, Message: failureMessage(loadErr, solveErr, ins)}
	}

	return nil
}
