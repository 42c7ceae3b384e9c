// Package logging assembles the structured slog loggers used for diagnostic
// output.
//
// It owns the console and JSON handlers and centralizes level parsing so the
// command layer does not hand-roll slog setup. Diagnostics always go to a
// writer distinct from the group output stream, keeping stdout clean for
// results. A no-op logger is provided for tests.
package logging
