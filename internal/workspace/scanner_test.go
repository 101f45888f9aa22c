package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeProject creates dir/.claude/agents so the scanner treats dir as a
// project root.
func makeProject(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ClaudeDirName, "agents"), 0o755))
}

func TestScanProjectDirectories(t *testing.T) {
	home := t.TempDir()

	alpha := filepath.Join(home, "code", "alpha")
	beta := filepath.Join(home, "code", "nested", "beta")
	makeProject(t, alpha)
	makeProject(t, beta)

	// The user-wide .claude directory is not a project.
	require.NoError(t, os.MkdirAll(filepath.Join(home, ClaudeDirName, "agents"), 0o755))

	// A .claude directory without an agents folder does not count.
	require.NoError(t, os.MkdirAll(filepath.Join(home, "code", "gamma", ClaudeDirName), 0o755))

	dirs, err := ScanProjectDirectories(home, DefaultDiscoveryDepth, false)
	require.NoError(t, err)
	assert.Equal(t, []string{alpha, beta}, dirs)
}

func TestScanProjectDirectories_SkipsKnownDirs(t *testing.T) {
	home := t.TempDir()

	buried := filepath.Join(home, "node_modules", "pkg", "proj")
	makeProject(t, buried)
	cached := filepath.Join(home, ".cache", "proj")
	makeProject(t, cached)
	visible := filepath.Join(home, "work", "proj")
	makeProject(t, visible)

	dirs, err := ScanProjectDirectories(home, DefaultDiscoveryDepth, false)
	require.NoError(t, err)
	assert.Equal(t, []string{visible}, dirs)
}

func TestScanProjectDirectories_RespectsDepth(t *testing.T) {
	home := t.TempDir()

	shallow := filepath.Join(home, "a")
	makeProject(t, shallow)
	deep := filepath.Join(home, "a", "b", "c", "d")
	makeProject(t, deep)

	// Depth 3 reaches a/.claude but not a/b/c/d/.claude.
	dirs, err := ScanProjectDirectories(home, 3, false)
	require.NoError(t, err)
	assert.Equal(t, []string{shallow}, dirs)

	dirs, err = ScanProjectDirectories(home, 0, false)
	require.NoError(t, err)
	assert.Contains(t, dirs, deep, "non-positive depth falls back to the default")
}
