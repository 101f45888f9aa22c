package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestNewStore_Validation(t *testing.T) {
	_, err := NewStore("")
	assert.Error(t, err)

	_, err = NewStore(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestWriteReadDeleteAgent(t *testing.T) {
	store := newTestStore(t)

	path, err := store.WriteAgent(ScopeGlobal, "reviewer", "# Reviewer\nReviews code.", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(store.Home(), ClaudeDirName, "agents", "reviewer.md"), path)

	content, err := store.ReadAgent(path)
	require.NoError(t, err)
	assert.Equal(t, "# Reviewer\nReviews code.", content)

	agents, err := store.ListAgents(ScopeGlobal, "")
	require.NoError(t, err)
	require.Len(t, agents, 1)
	assert.Equal(t, "reviewer", agents[0].Name)
	assert.Equal(t, ScopeGlobal, agents[0].Scope)

	require.NoError(t, store.DeleteAgent(path))
	agents, err = store.ListAgents(ScopeGlobal, "")
	require.NoError(t, err)
	assert.Empty(t, agents)
}

func TestWriteAgent_ProjectScope(t *testing.T) {
	store := newTestStore(t)
	project := filepath.Join(store.Home(), "work", "api")
	require.NoError(t, os.MkdirAll(project, 0o755))

	_, err := store.WriteAgent(ScopeProject, "helper", "content", "")
	assert.Error(t, err, "project scope requires a project path")

	path, err := store.WriteAgent(ScopeProject, "helper", "content", project)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(project, ClaudeDirName, "agents", "helper.md"), path)

	agents, err := store.ListAgentsFromDirectory(project)
	require.NoError(t, err)
	require.Len(t, agents, 1)
	assert.Equal(t, "helper", agents[0].Name)
}

func TestWriteAgent_RejectsBadNames(t *testing.T) {
	store := newTestStore(t)

	_, err := store.WriteAgent(ScopeGlobal, "../escape", "content", "")
	assert.Error(t, err)
	_, err = store.WriteAgent(ScopeGlobal, "a/b", "content", "")
	assert.Error(t, err)
}

func TestReadAgent_RejectsOutsideAgentsDir(t *testing.T) {
	store := newTestStore(t)
	stray := filepath.Join(store.Home(), "notes.md")
	require.NoError(t, os.WriteFile(stray, []byte("x"), 0o644))

	_, err := store.ReadAgent(stray)
	assert.Error(t, err)
	assert.Error(t, store.DeleteAgent(stray))
}

func TestTrashRestorePurge(t *testing.T) {
	store := newTestStore(t)
	path, err := store.WriteAgent(ScopeGlobal, "victim", "content", "")
	require.NoError(t, err)

	entry, err := store.Trash(path)
	require.NoError(t, err)
	assert.NoFileExists(t, path)
	assert.FileExists(t, entry.TrashedPath)
	assert.Equal(t, path, entry.OriginalPath)

	require.NoError(t, store.Restore(entry))
	assert.FileExists(t, path)
	assert.NoFileExists(t, entry.TrashedPath)

	// Trash again and purge permanently.
	entry, err = store.Trash(path)
	require.NoError(t, err)
	store.Purge(entry)
	assert.NoFileExists(t, entry.TrashedPath)
	assert.NoFileExists(t, path)
}

func TestTrash_UniqueNames(t *testing.T) {
	store := newTestStore(t)

	path, err := store.WriteAgent(ScopeGlobal, "dup", "first", "")
	require.NoError(t, err)
	first, err := store.Trash(path)
	require.NoError(t, err)

	path, err = store.WriteAgent(ScopeGlobal, "dup", "second", "")
	require.NoError(t, err)
	second, err := store.Trash(path)
	require.NoError(t, err)

	assert.NotEqual(t, first.TrashedPath, second.TrashedPath)
}

func TestTrash_RejectsOutsideClaudeDirs(t *testing.T) {
	store := newTestStore(t)
	stray := filepath.Join(store.Home(), "stray.md")
	require.NoError(t, os.WriteFile(stray, []byte("x"), 0o644))

	_, err := store.Trash(stray)
	assert.Error(t, err)
	assert.FileExists(t, stray)
}

func TestTrash_SkillDirectory(t *testing.T) {
	store := newTestStore(t)
	manifest, err := store.WriteSkill(ScopeGlobal, "formatter", "# Formatter", "")
	require.NoError(t, err)
	skillDir := filepath.Dir(manifest)

	entry, err := store.Trash(skillDir)
	require.NoError(t, err)
	assert.NoDirExists(t, skillDir)

	require.NoError(t, store.Restore(entry))
	assert.FileExists(t, manifest)
}

func TestDiscoverProjects_UsesCache(t *testing.T) {
	store := newTestStore(t)
	project := filepath.Join(store.Home(), "code", "alpha")
	makeProject(t, project)

	projects, err := store.DiscoverProjects(0, false)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "alpha", projects[0].Name)
	assert.Equal(t, project, projects[0].Path)

	// A project created after the scan is invisible until the cache is
	// invalidated.
	makeProject(t, filepath.Join(store.Home(), "code", "beta"))
	projects, err = store.DiscoverProjects(0, false)
	require.NoError(t, err)
	assert.Len(t, projects, 1)

	store.InvalidateDiscoveryCache()
	projects, err = store.DiscoverProjects(0, false)
	require.NoError(t, err)
	assert.Len(t, projects, 2)
}

func TestDiscoverProjects_CountsEntries(t *testing.T) {
	store := newTestStore(t)
	project := filepath.Join(store.Home(), "code", "alpha")
	makeProject(t, project)

	_, err := store.WriteAgent(ScopeProject, "one", "a", project)
	require.NoError(t, err)
	_, err = store.WriteAgent(ScopeProject, "two", "b", project)
	require.NoError(t, err)
	_, err = store.WriteSkill(ScopeProject, "fmt", "# fmt", project)
	require.NoError(t, err)

	store.InvalidateDiscoveryCache()
	projects, err := store.DiscoverProjects(0, false)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, 2, projects[0].AgentCount)
	assert.Equal(t, 1, projects[0].SkillCount)
}

func TestListSkills(t *testing.T) {
	store := newTestStore(t)

	manifest, err := store.WriteSkill(ScopeGlobal, "formatter", "# Formatter", "")
	require.NoError(t, err)

	// A directory without a manifest is not a skill.
	skillsDir, err := store.SkillsDir(ScopeGlobal, "")
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(skillsDir, "not-a-skill"), 0o755))

	skills, err := store.ListSkills(ScopeGlobal, "")
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "formatter", skills[0].Name)
	assert.Equal(t, manifest, skills[0].Path)
	assert.False(t, skills[0].HasAssets)

	// Adding an asset flips HasAssets.
	require.NoError(t, os.WriteFile(filepath.Join(skills[0].Directory, "helper.py"), []byte("pass"), 0o644))
	skills, err = store.ListSkills(ScopeGlobal, "")
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.True(t, skills[0].HasAssets)
}

func TestDeleteSkill_ByManifestOrDirectory(t *testing.T) {
	store := newTestStore(t)

	manifest, err := store.WriteSkill(ScopeGlobal, "one", "# one", "")
	require.NoError(t, err)
	require.NoError(t, store.DeleteSkill(manifest))
	assert.NoDirExists(t, filepath.Dir(manifest))

	manifest, err = store.WriteSkill(ScopeGlobal, "two", "# two", "")
	require.NoError(t, err)
	require.NoError(t, store.DeleteSkill(filepath.Dir(manifest)))
	assert.NoDirExists(t, filepath.Dir(manifest))
}
