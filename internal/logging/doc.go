// Package logging assembles structured slog loggers and formatting helpers used
// across aspectsort.
//
// It owns the console/JSON handlers, centralizes level and output plumbing,
// fans records out to the terminal and the sort log file, and exposes
// context-aware helpers so every line of a run carries its run identifier.
// The package also provides a no-op logger for tests and wiring code that
// cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape.
package logging
