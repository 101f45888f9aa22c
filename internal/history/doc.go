// Package history implements a command-based undo/redo engine. Callers
// submit reversible commands; the engine owns an undo stack and a redo
// stack, rejects overlapping executions, and bounds memory by evicting
// the oldest entries with deterministic cleanup.
package history
