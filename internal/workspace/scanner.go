package workspace

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/vinsly/vinsly/internal/logging"
)

// DefaultDiscoveryDepth bounds how deep the project scan descends below
// the home directory.
const DefaultDiscoveryDepth = 12

// skipDirNames are directory names never worth descending into.
var skipDirNames = []string{".Trash", "node_modules", ".git", ".cache", ".npm"}

// protectedDirs returns the macOS user folders that trigger TCC consent
// prompts; the scanner stays out of them unless explicitly asked.
func protectedDirs(home string) []string {
	if runtime.GOOS != "darwin" {
		return nil
	}
	names := []string{
		"Applications", "Desktop", "Documents", "Downloads",
		"Movies", "Music", "Pictures", "Public", "Library",
	}
	dirs := make([]string, 0, len(names)+3)
	for _, name := range names {
		dirs = append(dirs, filepath.Join(home, name))
	}
	dirs = append(dirs,
		filepath.Join(home, "Library", "Mobile Documents"),
		filepath.Join(home, "Library", "CloudStorage"),
		filepath.Join(home, "Library", "Containers"),
	)
	return dirs
}

// ScanProjectDirectories walks home looking for directories that contain a
// .claude/agents folder and returns their project roots, sorted and
// deduplicated. The user-wide ~/.claude directory itself is not a project.
// Unreadable directories are skipped, not fatal.
func ScanProjectDirectories(home string, depth int, includeProtected bool) ([]string, error) {
	if depth <= 0 {
		depth = DefaultDiscoveryDepth
	}

	protected := protectedDirs(home)
	globalAgentsDir := filepath.Join(home, ClaudeDirName)

	var directories []string
	err := filepath.WalkDir(home, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logging.Debug("Skipping directory during scan", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != home {
			rel, relErr := filepath.Rel(home, path)
			if relErr != nil {
				return nil
			}
			if strings.Count(rel, string(filepath.Separator))+1 > depth {
				return fs.SkipDir
			}
			if !includeProtected {
				for _, p := range protected {
					if path == p || strings.HasPrefix(path, p+string(filepath.Separator)) {
						return fs.SkipDir
					}
				}
			}
			if slices.Contains(skipDirNames, d.Name()) {
				return fs.SkipDir
			}
		}

		if d.Name() == ClaudeDirName && path != globalAgentsDir {
			agentsPath := filepath.Join(path, "agents")
			if info, statErr := os.Stat(agentsPath); statErr == nil && info.IsDir() {
				directories = append(directories, filepath.Dir(path))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(directories)
	return slices.Compact(directories), nil
}
