// Package logger holds the process-wide slog logger used for diagnostics.
//
// User-facing status lines are printed by the commands, not logged. Setup
// writes text records to stderr at Info, or Debug when verbose; until then
// everything is discarded.
package logger
