// Package logging assembles the structured slog loggers used across makhela.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so alignment code can tag log
// lines with song and run identifiers. A no-op logger is provided for tests
// and wiring code that cannot fail.
package logging
