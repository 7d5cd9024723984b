package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arcroute/instance"
)

const rural = `
name = "rural"
kind = "undirected"
depot = "D"

[[link]]
from = "A"
to = "B"
cost = 10

[[link]]
from = "B"
to = "C"
cost = 10

[[link]]
from = "A"
to = "D"
cost = 1
required = false

[[link]]
from = "D"
to = "C"
cost = 1
required = false
`

const split = `
kind = "undirected"

[[link]]
from = "A"
to = "B"
cost = 1

[[link]]
from = "C"
to = "D"
cost = 1
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "want *ExitError, got %v", err)

	return exitErr.Code
}

func TestRun_Help(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, run(context.Background(), &out, &errOut, []string{"-h"}))
	assert.Contains(t, out.String(), "Usage:")

	out.Reset()
	require.NoError(t, run(context.Background(), &out, &errOut, nil))
	assert.Contains(t, out.String(), "Usage:", "no instances prints usage")
}

func TestRun_BadArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-nope"}},
		{"bad policy", []string{"-policy", "sometimes", "x.toml"}},
		{"bad matching", []string{"-matching", "hungarian", "x.toml"}},
		{"bad workers", []string{"-workers", "0", "x.toml"}},
		{"bad log format", []string{"-log-format", "xml", "x.toml"}},
		{"bad grid", []string{"-generate", "x.toml", "-grid", "4by4"}},
		{"missing config", []string{"-config", "does-not-exist.toml", "x.toml"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			err := run(context.Background(), &out, &errOut, tc.args)
			assert.Equal(t, 2, exitCode(t, err))
		})
	}
}

func TestRun_SolvesInstance(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "rural.toml", rural)

	var out, errOut bytes.Buffer
	err := run(context.Background(), &out, &errOut, []string{"-route", "-average", "-log-format", "json", "-v", "1", path})
	require.NoError(t, err)

	s := out.String()
	assert.Contains(t, s, "INSTANCE")
	assert.Contains(t, s, "AVG TRAVERSAL")
	assert.Regexp(t, `rural\s+undirected\s+22\s+2\s+4`, s)
	assert.Contains(t, s, "rural: D → ")
	assert.Contains(t, errOut.String(), `"message":"graph balanced"`)
	assert.Contains(t, errOut.String(), `"message":"batch finished"`)
}

func TestRun_ReportsFailures(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "rural.toml", rural)
	bad := writeFile(t, dir, "split.toml", split)
	missing := filepath.Join(dir, "missing.toml")

	var out, errOut bytes.Buffer
	err := run(context.Background(), &out, &errOut, []string{good, bad, missing})
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(t, err))
	assert.Contains(t, err.Error(), "2 instance(s) failed")
	assert.Contains(t, err.Error(), "missing.toml")

	s := out.String()
	assert.Regexp(t, `rural\s+undirected\s+22`, s)
	assert.Regexp(t, `split\s+undirected\s+failed: .*not connected`, s)
}

func TestRun_ConfigFileAndOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "rural.toml", rural)
	cfgPath := writeFile(t, dir, "arcroute.toml", `
instances = ["`+filepath.ToSlash(path)+`"]

[solver]
policy = "none"
matching = "greedy"
workers = 2
`)

	cfg, exit, err := Parse([]string{"-config", cfgPath}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.False(t, exit)
	assert.Equal(t, "none", cfg.Solver.Policy)
	assert.Equal(t, "greedy", cfg.Solver.Matching)
	assert.Equal(t, 2, cfg.Solver.Workers)
	assert.Equal(t, []string{filepath.ToSlash(path)}, cfg.Instances)

	cfg, _, err = Parse([]string{"-config", cfgPath, "-policy", "last", "-workers", "3"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "last", cfg.Solver.Policy, "flags override the file")
	assert.Equal(t, "greedy", cfg.Solver.Matching)
	assert.Equal(t, 3, cfg.Solver.Workers)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out, &bytes.Buffer{}, []string{"-config", cfgPath}))
	assert.Regexp(t, `rural\s+undirected\s+22`, out.String())

	typo := writeFile(t, dir, "typo.toml", "[solver]\npolcy = \"last\"\n")
	_, _, err = Parse([]string{"-config", typo}, &bytes.Buffer{})
	assert.Equal(t, 2, exitCode(t, err))
}

func TestRun_GenerateThenSolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.toml")

	var out, errOut bytes.Buffer
	err := run(context.Background(), &out, &errOut,
		[]string{"-generate", path, "-kind", "windy", "-grid", "3x4", "-seed", "5", "-max-cost", "9"})
	require.NoError(t, err)
	assert.Contains(t, errOut.String(), "instance written")

	in, err := instance.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, in.Graph.VertexCount())
	assert.Equal(t, 17, in.Graph.LinkCount())

	out.Reset()
	require.NoError(t, run(context.Background(), &out, &errOut, []string{path}))
	assert.Contains(t, out.String(), "windy")

	err = run(context.Background(), &out, &errOut, []string{"-generate", path, "-kind", "hyper"})
	assert.Equal(t, 2, exitCode(t, err))
}

func TestParseGrid(t *testing.T) {
	rows, cols, err := parseGrid("3x5")
	require.NoError(t, err)
	assert.Equal(t, [2]int{3, 5}, [2]int{rows, cols})

	rows, cols, err = parseGrid("10X2")
	require.NoError(t, err)
	assert.Equal(t, [2]int{10, 2}, [2]int{rows, cols})

	for _, bad := range []string{"", "3", "ax3", "3xb"} {
		_, _, err = parseGrid(bad)
		assert.Error(t, err, bad)
	}
}
