// Package logging assembles structured slog loggers and formatting helpers used
// across holocron.
//
// It owns the console/JSON handlers, centralizes level and output plumbing,
// and exposes context helpers so every line emitted during one invocation
// carries the same correlation ID. The package also provides a no-op logger
// for tests and wiring code that cannot fail.
//
// Diagnostic logs go to stderr by default so stdout stays reserved for command
// output.
package logging
