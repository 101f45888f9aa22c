package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ClaudeDirName is the per-project configuration directory the scanner
// looks for and all mutations are confined to.
const ClaudeDirName = ".claude"

// ValidateEntryName rejects names that could escape the target directory
// or produce unusable filenames.
func ValidateEntryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("entry name cannot be empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("entry name cannot contain path separators")
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("entry name cannot contain '..'")
	}
	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("entry name contains invalid characters")
	}
	return nil
}

// ensurePathInClaudeSubdir resolves path and verifies it sits under a
// ".claude/<subdir>" segment. Every destructive operation passes through
// this check before touching the filesystem.
func ensurePathInClaudeSubdir(path, subdir string) error {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}
	resolved, err = filepath.Abs(resolved)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	sawClaude := false
	for _, part := range strings.Split(resolved, string(filepath.Separator)) {
		if sawClaude && part == subdir {
			return nil
		}
		sawClaude = part == ClaudeDirName
	}
	return fmt.Errorf("refusing to modify files outside %s/%s", ClaudeDirName, subdir)
}

func ensurePathInAgentsDir(path string) error {
	return ensurePathInClaudeSubdir(path, "agents")
}

func ensurePathInSkillsDir(path string) error {
	return ensurePathInClaudeSubdir(path, "skills")
}

// ExpandPath resolves a leading tilde against the current home directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		if path == "~" {
			return home, nil
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}

// nextAvailablePath returns base/desired, suffixing "-1", "-2", … until the
// candidate does not exist yet.
func nextAvailablePath(base, desired string) string {
	candidate := filepath.Join(base, desired)
	if _, err := os.Stat(candidate); os.IsNotExist(err) {
		return candidate
	}
	for counter := 1; ; counter++ {
		candidate = filepath.Join(base, fmt.Sprintf("%s-%d", desired, counter))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
