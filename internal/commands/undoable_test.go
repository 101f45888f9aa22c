package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinsly/vinsly/internal/history"
	"github.com/vinsly/vinsly/internal/workspace"
)

func newTestWorkspace(t *testing.T) *workspace.Store {
	t.Helper()
	store, err := workspace.NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestDeleteItem_ExecuteUndoRedo(t *testing.T) {
	store := newTestWorkspace(t)
	hist := history.New()

	path, err := store.WriteAgent(workspace.ScopeGlobal, "reviewer", "content", "")
	require.NoError(t, err)

	cmd, err := DeleteItem(store, `delete agent "reviewer"`, path)
	require.NoError(t, err)

	recorded, err := hist.Execute(context.Background(), cmd)
	require.NoError(t, err)
	assert.True(t, recorded)
	assert.NoFileExists(t, path)

	description, undone, err := hist.Undo(context.Background())
	require.NoError(t, err)
	assert.True(t, undone)
	assert.Equal(t, `delete agent "reviewer"`, description)
	assert.FileExists(t, path)

	_, redone, err := hist.Redo(context.Background())
	require.NoError(t, err)
	assert.True(t, redone)
	assert.NoFileExists(t, path)
}

func TestDeleteItem_EvictionPurgesTrash(t *testing.T) {
	store := newTestWorkspace(t)
	hist := history.New(history.WithMaxStackSize(1))
	trashDir := filepath.Join(store.Home(), workspace.ClaudeDirName, "trash")

	first, err := store.WriteAgent(workspace.ScopeGlobal, "one", "a", "")
	require.NoError(t, err)
	second, err := store.WriteAgent(workspace.ScopeGlobal, "two", "b", "")
	require.NoError(t, err)

	for _, path := range []string{first, second} {
		cmd, err := DeleteItem(store, "delete "+filepath.Base(path), path)
		require.NoError(t, err)
		recorded, err := hist.Execute(context.Background(), cmd)
		require.NoError(t, err)
		require.True(t, recorded)
	}

	// The evicted command purged its trashed file; only the second
	// delete is still recoverable.
	entries, err := os.ReadDir(trashDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, 1, hist.Size())
}

func TestBulkDelete_AllOrNothing(t *testing.T) {
	store := newTestWorkspace(t)
	hist := history.New()

	first, err := store.WriteAgent(workspace.ScopeGlobal, "one", "a", "")
	require.NoError(t, err)
	second, err := store.WriteAgent(workspace.ScopeGlobal, "two", "b", "")
	require.NoError(t, err)

	cmd, err := BulkDelete(store, "delete 2 items", []string{first, second})
	require.NoError(t, err)
	recorded, err := hist.Execute(context.Background(), cmd)
	require.NoError(t, err)
	assert.True(t, recorded)
	assert.NoFileExists(t, first)
	assert.NoFileExists(t, second)

	_, undone, err := hist.Undo(context.Background())
	require.NoError(t, err)
	assert.True(t, undone)
	assert.FileExists(t, first)
	assert.FileExists(t, second)
}

func TestBulkDelete_RollsBackOnPartialFailure(t *testing.T) {
	store := newTestWorkspace(t)
	hist := history.New()

	path, err := store.WriteAgent(workspace.ScopeGlobal, "survivor", "a", "")
	require.NoError(t, err)
	missing := filepath.Join(filepath.Dir(path), "missing.md")

	cmd, err := BulkDelete(store, "delete 2 items", []string{path, missing})
	require.NoError(t, err)

	recorded, execErr := hist.Execute(context.Background(), cmd)
	assert.Error(t, execErr)
	assert.False(t, recorded)

	// The failed command never reached the stack and the first path
	// was rolled back.
	assert.FileExists(t, path)
	assert.False(t, hist.CanUndo())
}

func TestBulkDelete_RejectsEmptyInput(t *testing.T) {
	store := newTestWorkspace(t)
	_, err := BulkDelete(store, "delete nothing", nil)
	assert.Error(t, err)
}

func TestUpdateField(t *testing.T) {
	value := "before"
	apply := func(v string) error {
		value = v
		return nil
	}
	hist := history.New()

	cmd, err := UpdateField("rename", apply, "before", "after")
	require.NoError(t, err)

	_, err = hist.Execute(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, "after", value)

	_, _, err = hist.Undo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "before", value)

	_, _, err = hist.Redo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "after", value)
}

func TestToggle(t *testing.T) {
	enabled := false
	set := func(v bool) error {
		enabled = v
		return nil
	}
	hist := history.New()

	cmd, err := Toggle("enable thing", set, enabled)
	require.NoError(t, err)

	_, err = hist.Execute(context.Background(), cmd)
	require.NoError(t, err)
	assert.True(t, enabled)

	_, _, err = hist.Undo(context.Background())
	require.NoError(t, err)
	assert.False(t, enabled)
}
