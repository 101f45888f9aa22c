package workspace

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImportSkill_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	manifest, err := store.WriteSkill(ScopeGlobal, "formatter", "# Formatter", "")
	require.NoError(t, err)
	skillDir := filepath.Dir(manifest)
	require.NoError(t, os.MkdirAll(filepath.Join(skillDir, "scripts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(skillDir, "scripts", "run.sh"), []byte("echo hi"), 0o644))

	archive := filepath.Join(t.TempDir(), "exports", "formatter.zip")
	require.NoError(t, store.ExportSkill(skillDir, archive))
	assert.FileExists(t, archive)

	// Import into a project scope of a second store.
	other := newTestStore(t)
	project := filepath.Join(other.Home(), "proj")
	require.NoError(t, os.MkdirAll(project, 0o755))

	imported, err := other.ImportSkillArchive(archive, ScopeProject, project)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(project, ClaudeDirName, "skills", "formatter"), imported)
	assert.FileExists(t, filepath.Join(imported, SkillManifestName))
	assert.FileExists(t, filepath.Join(imported, "scripts", "run.sh"))

	// Importing again picks a collision-free directory name.
	imported, err = other.ImportSkillArchive(archive, ScopeProject, project)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(project, ClaudeDirName, "skills", "formatter-1"), imported)
}

func TestExportSkill_RejectsOutsideSkillsDir(t *testing.T) {
	store := newTestStore(t)
	outside := filepath.Join(store.Home(), "plain")
	require.NoError(t, os.MkdirAll(outside, 0o755))

	err := store.ExportSkill(outside, filepath.Join(t.TempDir(), "out.zip"))
	assert.Error(t, err)
}

func TestExportSkillsBundle(t *testing.T) {
	store := newTestStore(t)
	first, err := store.WriteSkill(ScopeGlobal, "one", "# one", "")
	require.NoError(t, err)
	second, err := store.WriteSkill(ScopeGlobal, "two", "# two", "")
	require.NoError(t, err)

	archive := filepath.Join(t.TempDir(), "bundle.zip")
	err = store.ExportSkillsBundle([]string{filepath.Dir(first), filepath.Dir(second)}, archive)
	require.NoError(t, err)

	zr, err := zip.OpenReader(archive)
	require.NoError(t, err)
	defer zr.Close()

	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}
	assert.True(t, names["one/SKILL.md"])
	assert.True(t, names["two/SKILL.md"])

	err = store.ExportSkillsBundle(nil, archive)
	assert.Error(t, err, "empty bundle is rejected")
}

func TestImportSkillArchive_RejectsMultipleRoots(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "bad.zip")
	writeZip(t, archive, map[string]string{
		"one/SKILL.md": "# one",
		"two/SKILL.md": "# two",
	})

	store := newTestStore(t)
	_, err := store.ImportSkillArchive(archive, ScopeGlobal, "")
	assert.ErrorContains(t, err, "single root folder")
}

func TestImportSkillArchive_RequiresManifest(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "nomanifest.zip")
	writeZip(t, archive, map[string]string{
		"skill/readme.txt": "not a manifest",
	})

	store := newTestStore(t)
	_, err := store.ImportSkillArchive(archive, ScopeGlobal, "")
	assert.ErrorContains(t, err, SkillManifestName)

	skillsDir, dirErr := store.SkillsDir(ScopeGlobal, "")
	require.NoError(t, dirErr)
	assert.NoDirExists(t, filepath.Join(skillsDir, "skill"), "partial extraction is removed")
}

func TestImportSkillArchive_IgnoresMacOSMetadata(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "mac.zip")
	writeZip(t, archive, map[string]string{
		"skill/SKILL.md":            "# skill",
		"__MACOSX/skill/._SKILL.md": "junk",
	})

	store := newTestStore(t)
	imported, err := store.ImportSkillArchive(archive, ScopeGlobal, "")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(imported, SkillManifestName))
	assert.NoDirExists(t, filepath.Join(imported, "__MACOSX"))
}

// writeZip builds a zip archive from name→content pairs.
func writeZip(t *testing.T, path string, files map[string]string) {
	t.Helper()
	out, err := os.Create(path)
	require.NoError(t, err)
	defer out.Close()

	zw := zip.NewWriter(out)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
}
