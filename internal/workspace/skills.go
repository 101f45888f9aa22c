package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// SkillManifestName is the manifest file every skill directory must hold.
const SkillManifestName = "SKILL.md"

// SkillsDir resolves the .claude/skills directory for a scope.
func (s *Store) SkillsDir(scope Scope, projectPath string) (string, error) {
	switch scope {
	case ScopeProject:
		if projectPath == "" {
			return "", fmt.Errorf("project scope requires a project path")
		}
		return filepath.Join(projectPath, ClaudeDirName, "skills"), nil
	case ScopeGlobal:
		return filepath.Join(s.home, ClaudeDirName, "skills"), nil
	default:
		return "", fmt.Errorf("invalid scope: %s", scope)
	}
}

// ListSkills returns the skills in the given scope, empty when the skills
// directory does not exist yet.
func (s *Store) ListSkills(scope Scope, projectPath string) ([]SkillFile, error) {
	dir, err := s.SkillsDir(scope, projectPath)
	if err != nil {
		return nil, err
	}
	return listSkillsInDir(dir, scope)
}

// ListSkillsFromDirectory lists project-scoped skills under an arbitrary
// project root.
func (s *Store) ListSkillsFromDirectory(projectPath string) ([]SkillFile, error) {
	return listSkillsInDir(filepath.Join(projectPath, ClaudeDirName, "skills"), ScopeProject)
}

func listSkillsInDir(dir string, scope Scope) ([]SkillFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var skills []SkillFile
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		skill, err := buildSkillFromDir(filepath.Join(dir, entry.Name()), scope)
		if err != nil {
			return nil, err
		}
		if skill != nil {
			skills = append(skills, *skill)
		}
	}
	return skills, nil
}

// buildSkillFromDir reads a skill directory; directories without a
// SKILL.md manifest are not skills and yield nil.
func buildSkillFromDir(dir string, scope Scope) (*SkillFile, error) {
	manifest := filepath.Join(dir, SkillManifestName)
	content, err := os.ReadFile(manifest)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read skill file: %w", err)
	}
	return &SkillFile{
		Name:      filepath.Base(dir),
		Directory: dir,
		Path:      manifest,
		Content:   string(content),
		Scope:     scope,
		HasAssets: skillHasAdditionalAssets(dir),
	}, nil
}

// skillHasAdditionalAssets reports whether the skill carries anything
// beyond its manifest.
func skillHasAdditionalAssets(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() != SkillManifestName {
			return true
		}
	}
	return false
}

// WriteSkill creates or overwrites a skill's manifest, creating the skill
// directory as needed, and returns the manifest path.
func (s *Store) WriteSkill(scope Scope, name, content, projectPath string) (string, error) {
	if err := ValidateEntryName(name); err != nil {
		return "", err
	}
	skillsDir, err := s.SkillsDir(scope, projectPath)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(skillsDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	if err := ensurePathInSkillsDir(skillsDir); err != nil {
		return "", err
	}

	skillDir := filepath.Join(skillsDir, name)
	if err := os.MkdirAll(skillDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create skill folder: %w", err)
	}
	manifest := filepath.Join(skillDir, SkillManifestName)
	if err := os.WriteFile(manifest, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write skill: %w", err)
	}
	return manifest, nil
}

// ReadSkill returns the content of a skill manifest. The path must sit
// inside a .claude/skills directory.
func (s *Store) ReadSkill(path string) (string, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return "", err
	}
	if err := ensurePathInSkillsDir(expanded); err != nil {
		return "", err
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return "", fmt.Errorf("failed to read skill: %w", err)
	}
	return string(data), nil
}

// ResolveSkillDirectory maps either a skill directory or its manifest path
// to the skill directory.
func ResolveSkillDirectory(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve skill directory: %w", err)
	}
	if info.IsDir() {
		return path, nil
	}
	return filepath.Dir(path), nil
}

// DeleteSkill removes a skill directory permanently. Undoable deletion
// goes through Trash instead.
func (s *Store) DeleteSkill(path string) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return err
	}
	dir, err := ResolveSkillDirectory(expanded)
	if err != nil {
		return err
	}
	if err := ensurePathInSkillsDir(dir); err != nil {
		return err
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to delete skill folder: %w", err)
	}
	return nil
}
