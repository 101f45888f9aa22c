package history

import (
	"context"
	"errors"
)

// Validation errors returned by NewCommand.
var (
	ErrEmptyDescription = errors.New("command description cannot be empty")
	ErrNilExecute       = errors.New("command requires an execute effect")
	ErrNilUndo          = errors.New("command requires an undo effect")
)

// EffectFunc is one half of a reversible operation. Effects may block on
// I/O; the engine waits for them to settle before accepting further work.
type EffectFunc func(ctx context.Context) error

// Command pairs an effect with its inverse. Commands are opaque to the
// engine: it never inspects what an effect does, only when it runs.
//
// Commands are validated at construction; the engine does not re-check
// capabilities at call time.
type Command struct {
	description string
	execute     EffectFunc
	undo        EffectFunc
	cleanup     func()
}

// CommandOption configures optional command capabilities.
type CommandOption func(*Command)

// WithCleanup attaches a finalizer invoked exactly once when the command
// is permanently discarded: evicted by the size bound, dropped from the
// redo stack by a new execution, or removed by Clear. It is never invoked
// merely because the command was undone.
func WithCleanup(fn func()) CommandOption {
	return func(c *Command) {
		c.cleanup = fn
	}
}

// NewCommand builds a command from a description and an execute/undo pair.
// All three are required.
func NewCommand(description string, execute, undo EffectFunc, opts ...CommandOption) (*Command, error) {
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if execute == nil {
		return nil, ErrNilExecute
	}
	if undo == nil {
		return nil, ErrNilUndo
	}

	cmd := &Command{
		description: description,
		execute:     execute,
		undo:        undo,
	}
	for _, opt := range opts {
		opt(cmd)
	}
	return cmd, nil
}

// Description returns the human-readable label used for undo/redo
// affordances.
func (c *Command) Description() string {
	return c.description
}

// discard runs the cleanup finalizer, at most once.
func (c *Command) discard() {
	if c.cleanup != nil {
		c.cleanup()
		c.cleanup = nil
	}
}
