package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/arcroute/balance"
	"github.com/katalvlaran/arcroute/core"
	"github.com/katalvlaran/arcroute/matching"
	"github.com/katalvlaran/arcroute/postman"
	"github.com/katalvlaran/arcroute/route"
)

// ExitError carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

// Config is the resolved CLI configuration. The TOML config file fills it
// first; flags given on the command line override the file.
type Config struct {
	Solver   SolverConfig   `toml:"solver"`
	Log      LogConfig      `toml:"log"`
	Generate GenerateConfig `toml:"generate"`

	// Instances are the instance files to solve.
	Instances []string `toml:"instances"`

	ShowRoute bool `toml:"show_route"`
	Average   bool `toml:"average"`
}

type SolverConfig struct {
	Policy    string  `toml:"policy"`
	Matching  string  `toml:"matching"`
	Threshold float64 `toml:"threshold"`
	Workers   int     `toml:"workers"`
}

type LogConfig struct {
	// Verbosity is the logr V-level shown (0 = info only).
	Verbosity int `toml:"verbosity"`
	// Format is "console" or "json".
	Format string `toml:"format"`
}

// GenerateConfig describes a grid instance to write instead of solving.
type GenerateConfig struct {
	Out      string  `toml:"out"`
	Kind     string  `toml:"kind"`
	Rows     int     `toml:"rows"`
	Cols     int     `toml:"cols"`
	Seed     int64   `toml:"seed"`
	MaxCost  int64   `toml:"max_cost"`
	Required float64 `toml:"required"`
}

func defaultConfig() Config {
	return Config{
		Solver: SolverConfig{
			Policy:    route.ServeFirst.String(),
			Matching:  matching.Blossom.String(),
			Threshold: balance.DefaultThreshold,
			Workers:   postman.DefaultOptions().Workers,
		},
		Log:      LogConfig{Format: "console"},
		Generate: GenerateConfig{Kind: core.Undirected.String(), Rows: 4, Cols: 4, Seed: 1, MaxCost: 10, Required: 1},
	}
}

// solveOptions validates the solver section and turns it into postman options.
func (c Config) solveOptions() ([]postman.Option, error) {
	policy, err := route.ParsePolicy(c.Solver.Policy)
	if err != nil {
		return nil, err
	}
	algo, err := matching.ParseAlgorithm(c.Solver.Matching)
	if err != nil {
		return nil, err
	}
	if c.Solver.Threshold < 0 {
		return nil, fmt.Errorf("threshold must be >= 0, got %g", c.Solver.Threshold)
	}
	if c.Solver.Workers < 1 {
		return nil, fmt.Errorf("workers must be >= 1, got %d", c.Solver.Workers)
	}

	return []postman.Option{
		postman.WithPolicy(policy),
		postman.WithMatching(algo),
		postman.WithThreshold(c.Solver.Threshold),
		postman.WithWorkers(c.Solver.Workers),
	}, nil
}

// parseGrid reads "ROWSxCOLS".
func parseGrid(s string) (rows, cols int, err error) {
	r, c, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("grid %q: want ROWSxCOLS", s)
	}
	if rows, err = strconv.Atoi(r); err != nil {
		return 0, 0, fmt.Errorf("grid %q: %w", s, err)
	}
	if cols, err = strconv.Atoi(c); err != nil {
		return 0, 0, fmt.Errorf("grid %q: %w", s, err)
	}

	return rows, cols, nil
}

// Parse processes command-line arguments. It returns the resolved Config, a
// boolean telling the caller to exit cleanly, or an *ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	fs := flag.NewFlagSet("arcroute", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
arcroute - Chinese and rural postman tours for undirected, directed and windy graphs.

Usage:
  arcroute [options] INSTANCE.toml...
  arcroute [options] -generate OUT.toml

Options:
`)
		fs.PrintDefaults()
	}

	def := defaultConfig()
	configPath := fs.String("config", "", "Path to a TOML config file.")
	policy := fs.String("policy", def.Solver.Policy, "Service policy: 'first', 'last' or 'none'.")
	algo := fs.String("matching", def.Solver.Matching, "Odd-vertex pairing: 'blossom' or 'greedy'.")
	threshold := fs.Float64("threshold", def.Solver.Threshold, "Windy E1/E2 split fraction.")
	workers := fs.Int("workers", def.Solver.Workers, "Instances solved concurrently.")
	verbosity := fs.Int("v", 0, "Log verbosity (0 info, 1 phases, 2 augmentations).")
	format := fs.String("log-format", def.Log.Format, "Log output format: 'console' or 'json'.")
	showRoute := fs.Bool("route", false, "Print the vertex sequence of every tour.")
	average := fs.Bool("average", false, "Report the average traversal between serviced links.")
	genOut := fs.String("generate", "", "Write a generated grid instance to this path and exit.")
	genKind := fs.String("kind", def.Generate.Kind, "Generated graph kind.")
	genGrid := fs.String("grid", "4x4", "Generated grid size, ROWSxCOLS.")
	genSeed := fs.Int64("seed", def.Generate.Seed, "Generator seed.")
	genMax := fs.Int64("max-cost", def.Generate.MaxCost, "Generated link costs are drawn from [1, max-cost].")
	genReq := fs.Float64("required", def.Generate.Required, "Probability that a generated link is required.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}

		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg := def
	if *configPath != "" {
		md, err := toml.DecodeFile(*configPath, &cfg)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("config %s: %v", *configPath, err)}
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("config %s: unknown key %s", *configPath, keys[0])}
		}
	}

	var gridErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "policy":
			cfg.Solver.Policy = *policy
		case "matching":
			cfg.Solver.Matching = *algo
		case "threshold":
			cfg.Solver.Threshold = *threshold
		case "workers":
			cfg.Solver.Workers = *workers
		case "v":
			cfg.Log.Verbosity = *verbosity
		case "log-format":
			cfg.Log.Format = *format
		case "route":
			cfg.ShowRoute = *showRoute
		case "average":
			cfg.Average = *average
		case "generate":
			cfg.Generate.Out = *genOut
		case "kind":
			cfg.Generate.Kind = *genKind
		case "grid":
			cfg.Generate.Rows, cfg.Generate.Cols, gridErr = parseGrid(*genGrid)
		case "seed":
			cfg.Generate.Seed = *genSeed
		case "max-cost":
			cfg.Generate.MaxCost = *genMax
		case "required":
			cfg.Generate.Required = *genReq
		}
	})
	if gridErr != nil {
		return nil, false, &ExitError{Code: 2, Message: gridErr.Error()}
	}
	cfg.Instances = append(cfg.Instances, fs.Args()...)

	if cfg.Log.Format != "console" && cfg.Log.Format != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'console' or 'json'"}
	}
	if _, err := cfg.solveOptions(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if cfg.Generate.Out == "" && len(cfg.Instances) == 0 {
		fs.Usage()

		return nil, true, nil
	}

	return &cfg, false, nil
}
