// Package logging assembles structured slog loggers and formatting helpers used
// across rtcalc.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so pipeline and server code can
// tag log lines with the run identifier of the calculation they belong to.
// The package also provides a no-op logger for tests and wiring code that
// cannot fail.
package logging
