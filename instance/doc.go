// Package instance reads and writes arc-routing instances as TOML files.
//
// A file names the graph kind, optionally declares vertices (labels,
// coordinates, demands) and lists links by endpoint labels. Read, Load and
// LoadAll turn files into core.Graph values; FromGraph, Write and Save go the
// other way so generated instances can be stored and replayed.
//
// Decoding is strict: unknown keys are rejected, and every problem found in
// the vertex and link tables is reported at once as a multierr aggregate.
package instance
