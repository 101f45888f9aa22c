package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/vinsly/vinsly/internal/logging"
)

// discoveryCacheTTL is how long a completed project scan stays valid.
const discoveryCacheTTL = 120 * time.Second

// discoveryEntry caches one scan result, keyed on its parameters.
type discoveryEntry struct {
	depth            int
	includeProtected bool
	timestamp        time.Time
	directories      []string
}

// Store provides access to agents, skills, and discovered projects rooted
// at a single home directory. All mutating operations validate that their
// target sits inside a .claude subdirectory before touching the
// filesystem.
type Store struct {
	home     string
	trashDir string

	discoveryMu sync.Mutex
	discovery   *discoveryEntry
}

// NewStore creates a store rooted at home. The trash directory backing
// reversible deletes lives under it.
func NewStore(home string) (*Store, error) {
	if home == "" {
		return nil, fmt.Errorf("home directory cannot be empty")
	}
	info, err := os.Stat(home)
	if err != nil {
		return nil, fmt.Errorf("failed to access home directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("home path %s is not a directory", home)
	}
	return &Store{
		home:     home,
		trashDir: filepath.Join(home, ClaudeDirName, "trash"),
	}, nil
}

// Home returns the root directory the store operates under.
func (s *Store) Home() string {
	return s.home
}

// DiscoverProjects scans for project directories carrying .claude/agents,
// caching results for a short window so screen refreshes do not rescan the
// whole tree.
func (s *Store) DiscoverProjects(depth int, includeProtected bool) ([]Project, error) {
	if depth <= 0 {
		depth = DefaultDiscoveryDepth
	}

	s.discoveryMu.Lock()
	defer s.discoveryMu.Unlock()

	if e := s.discovery; e != nil &&
		e.depth == depth &&
		e.includeProtected == includeProtected &&
		time.Since(e.timestamp) < discoveryCacheTTL {
		return s.projectsFromDirs(e.directories), nil
	}

	directories, err := ScanProjectDirectories(s.home, depth, includeProtected)
	if err != nil {
		return nil, fmt.Errorf("failed to scan project directories: %w", err)
	}
	s.discovery = &discoveryEntry{
		depth:            depth,
		includeProtected: includeProtected,
		timestamp:        time.Now(),
		directories:      directories,
	}
	logging.Debug("Project discovery complete", "count", len(directories), "depth", depth)
	return s.projectsFromDirs(directories), nil
}

// InvalidateDiscoveryCache forces the next DiscoverProjects call to rescan.
func (s *Store) InvalidateDiscoveryCache() {
	s.discoveryMu.Lock()
	s.discovery = nil
	s.discoveryMu.Unlock()
}

func (s *Store) projectsFromDirs(dirs []string) []Project {
	projects := make([]Project, 0, len(dirs))
	for _, dir := range dirs {
		agents, err := s.ListAgentsFromDirectory(dir)
		if err != nil {
			logging.Warn("Failed to count agents", "project", dir, "error", err)
		}
		skills, err := s.ListSkillsFromDirectory(dir)
		if err != nil {
			logging.Warn("Failed to count skills", "project", dir, "error", err)
		}
		projects = append(projects, Project{
			Name:       filepath.Base(dir),
			Path:       dir,
			AgentCount: len(agents),
			SkillCount: len(skills),
		})
	}
	return projects
}

// AgentsDir resolves the .claude/agents directory for a scope.
func (s *Store) AgentsDir(scope Scope, projectPath string) (string, error) {
	switch scope {
	case ScopeProject:
		if projectPath == "" {
			return "", fmt.Errorf("project scope requires a project path")
		}
		return filepath.Join(projectPath, ClaudeDirName, "agents"), nil
	case ScopeGlobal:
		return filepath.Join(s.home, ClaudeDirName, "agents"), nil
	default:
		return "", fmt.Errorf("invalid scope: %s", scope)
	}
}

// ListAgents returns the agent files in the given scope, empty when the
// agents directory does not exist yet.
func (s *Store) ListAgents(scope Scope, projectPath string) ([]AgentFile, error) {
	dir, err := s.AgentsDir(scope, projectPath)
	if err != nil {
		return nil, err
	}
	return listAgentsInDir(dir, scope)
}

// ListAgentsFromDirectory lists project-scoped agents under an arbitrary
// project root.
func (s *Store) ListAgentsFromDirectory(projectPath string) ([]AgentFile, error) {
	return listAgentsInDir(filepath.Join(projectPath, ClaudeDirName, "agents"), ScopeProject)
}

func listAgentsInDir(dir string, scope Scope) ([]AgentFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var agents []AgentFile
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".md" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		agents = append(agents, AgentFile{
			Name:    strings.TrimSuffix(entry.Name(), ".md"),
			Path:    path,
			Content: string(content),
			Scope:   scope,
		})
	}
	return agents, nil
}

// ReadAgent reads a single agent file after verifying it lives under a
// .claude/agents directory.
func (s *Store) ReadAgent(path string) (string, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return "", err
	}
	if err := ensurePathInAgentsDir(expanded); err != nil {
		return "", err
	}
	content, err := os.ReadFile(expanded)
	if err != nil {
		return "", fmt.Errorf("failed to read agent file: %w", err)
	}
	return string(content), nil
}

// WriteAgent creates or overwrites an agent file and returns its path.
func (s *Store) WriteAgent(scope Scope, name, content, projectPath string) (string, error) {
	if err := ValidateEntryName(name); err != nil {
		return "", err
	}
	dir, err := s.AgentsDir(scope, projectPath)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	if err := ensurePathInAgentsDir(dir); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name+".md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write agent file: %w", err)
	}
	return path, nil
}

// DeleteAgent removes an agent file permanently. Undoable deletion goes
// through Trash instead.
func (s *Store) DeleteAgent(path string) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return err
	}
	if err := ensurePathInAgentsDir(expanded); err != nil {
		return err
	}
	if err := os.Remove(expanded); err != nil {
		return fmt.Errorf("failed to delete agent file: %w", err)
	}
	return nil
}

// Trash moves a file or directory into the store's trash, returning an
// entry that can restore or permanently purge it. The target must live
// under a .claude agents or skills directory.
func (s *Store) Trash(path string) (*TrashEntry, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	if agentsErr := ensurePathInAgentsDir(expanded); agentsErr != nil {
		if skillsErr := ensurePathInSkillsDir(expanded); skillsErr != nil {
			return nil, agentsErr
		}
	}
	if err := os.MkdirAll(s.trashDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create trash directory: %w", err)
	}

	target := nextAvailablePath(s.trashDir, filepath.Base(expanded))
	if err := os.Rename(expanded, target); err != nil {
		return nil, fmt.Errorf("failed to move %s to trash: %w", expanded, err)
	}
	logging.Debug("Moved entry to trash", "path", expanded, "trashed", target)
	return &TrashEntry{
		OriginalPath: expanded,
		TrashedPath:  target,
		TrashedAt:    time.Now(),
	}, nil
}

// Restore moves a trashed entry back to its original path.
func (s *Store) Restore(entry *TrashEntry) error {
	if err := os.MkdirAll(filepath.Dir(entry.OriginalPath), 0o755); err != nil {
		return fmt.Errorf("failed to recreate parent directory: %w", err)
	}
	if err := os.Rename(entry.TrashedPath, entry.OriginalPath); err != nil {
		return fmt.Errorf("failed to restore %s: %w", entry.OriginalPath, err)
	}
	logging.Debug("Restored entry from trash", "path", entry.OriginalPath)
	return nil
}

// Purge permanently removes a trashed entry. Errors are logged, not
// returned: purge runs from cleanup finalizers that have no error path,
// and a leftover trash entry is harmless.
func (s *Store) Purge(entry *TrashEntry) {
	if err := os.RemoveAll(entry.TrashedPath); err != nil {
		logging.Warn("Failed to purge trash entry", "path", entry.TrashedPath, "error", err)
	}
}
