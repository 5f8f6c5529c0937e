// Package main hosts the aspectsort CLI entrypoint and command graph.
//
// The root command sorts a directory: it resolves configuration, applies
// command-line overrides, builds the logger and the media probes, and hands
// the run to internal/sorter before rendering the summary. Subcommands expose
// the ratio approximation on its own, per-file probing, a dependency report,
// and configuration scaffolding.
//
// Keep this package lean: behaviour belongs in the internal packages and is
// surfaced here through commands and flags.
package main
