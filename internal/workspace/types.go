// Package workspace is the data access layer for agent and skill
// definitions stored under .claude directories. It discovers project
// directories, lists and mutates entries, and provides the trash that
// makes deletions reversible.
package workspace

import "time"

// Scope identifies where an entry lives: the user-wide .claude directory
// or a project-local one.
type Scope string

const (
	// ScopeGlobal is the user-wide ~/.claude directory.
	ScopeGlobal Scope = "global"
	// ScopeProject is a project-local .claude directory.
	ScopeProject Scope = "project"
)

// Project is a discovered project directory carrying agent definitions.
type Project struct {
	Name       string
	Path       string
	AgentCount int
	SkillCount int
}

// AgentFile is a single agent definition (a markdown file under
// .claude/agents).
type AgentFile struct {
	Name    string
	Path    string
	Content string
	Scope   Scope
}

// SkillFile is a skill definition: a directory under .claude/skills
// holding a SKILL.md manifest, possibly with supporting assets.
type SkillFile struct {
	Name      string
	Directory string
	Path      string
	Content   string
	Scope     Scope
	HasAssets bool
}

// TrashEntry records a reversibly deleted file or directory. Restore moves
// it back to its original path; Purge removes it permanently.
type TrashEntry struct {
	OriginalPath string
	TrashedPath  string
	TrashedAt    time.Time
}
