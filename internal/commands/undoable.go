package commands

import (
	"context"
	"fmt"

	"github.com/vinsly/vinsly/internal/history"
	"github.com/vinsly/vinsly/internal/logging"
	"github.com/vinsly/vinsly/internal/workspace"
)

// Undoable command factories. Each returns a *history.Command whose
// execute moves state forward, whose undo restores it, and whose
// cleanup releases whatever the command still holds when it falls out
// of the history (trashed files, mostly).

// DeleteItem returns an undoable command that moves path into the
// workspace trash. Undo restores it; cleanup purges the trashed copy.
func DeleteItem(store *workspace.Store, description, path string) (*history.Command, error) {
	var entry *workspace.TrashEntry

	execute := func(ctx context.Context) error {
		e, err := store.Trash(path)
		if err != nil {
			return err
		}
		entry = e
		return nil
	}
	undo := func(ctx context.Context) error {
		return store.Restore(entry)
	}
	cleanup := func() {
		store.Purge(entry)
	}

	return history.NewCommand(description, execute, undo, history.WithCleanup(cleanup))
}

// BulkDelete returns an undoable command that trashes every path in
// one step. A partial failure rolls back the paths already trashed so
// the command never half-applies.
func BulkDelete(store *workspace.Store, description string, paths []string) (*history.Command, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("bulk delete needs at least one path")
	}
	var entries []*workspace.TrashEntry

	execute := func(ctx context.Context) error {
		done := make([]*workspace.TrashEntry, 0, len(paths))
		for _, path := range paths {
			entry, err := store.Trash(path)
			if err != nil {
				for i := len(done) - 1; i >= 0; i-- {
					if restoreErr := store.Restore(done[i]); restoreErr != nil {
						logRollbackFailure(done[i], restoreErr)
					}
				}
				return fmt.Errorf("delete %s: %w", path, err)
			}
			done = append(done, entry)
		}
		entries = done
		return nil
	}
	undo := func(ctx context.Context) error {
		for i := len(entries) - 1; i >= 0; i-- {
			if err := store.Restore(entries[i]); err != nil {
				return fmt.Errorf("restore %s: %w", entries[i].OriginalPath, err)
			}
		}
		return nil
	}
	cleanup := func() {
		for _, entry := range entries {
			store.Purge(entry)
		}
	}

	return history.NewCommand(description, execute, undo, history.WithCleanup(cleanup))
}

// UpdateField returns an undoable command that applies next on execute
// and previous on undo. apply must be idempotent for the same value.
func UpdateField[T any](description string, apply func(T) error, previous, next T) (*history.Command, error) {
	execute := func(ctx context.Context) error {
		return apply(next)
	}
	undo := func(ctx context.Context) error {
		return apply(previous)
	}
	return history.NewCommand(description, execute, undo)
}

// Toggle returns an undoable command that flips a boolean setting.
func Toggle(description string, set func(bool) error, previous bool) (*history.Command, error) {
	return UpdateField(description, set, previous, !previous)
}

func logRollbackFailure(entry *workspace.TrashEntry, err error) {
	// The original is stuck in the trash; the user can still recover
	// it manually from ~/.claude/trash.
	logging.Error("bulk delete rollback failed",
		"path", entry.OriginalPath,
		"error", err)
}
