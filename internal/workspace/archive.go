package workspace

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ExportSkill zips a skill directory (rooted at its own name inside the
// archive) to the destination path.
func (s *Store) ExportSkill(directory, destination string) error {
	expanded, err := ExpandPath(directory)
	if err != nil {
		return err
	}
	if err := ensurePathInSkillsDir(expanded); err != nil {
		return err
	}
	if _, err := os.Stat(expanded); err != nil {
		return fmt.Errorf("skill directory does not exist: %w", err)
	}
	if err := prepareDestination(destination); err != nil {
		return err
	}

	out, err := os.Create(destination)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	if err := addDirectoryToZip(zw, expanded, filepath.Base(expanded)); err != nil {
		zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalise archive: %w", err)
	}
	return nil
}

// ExportSkillsBundle zips several skill directories, each under its own
// root folder, into a single archive.
func (s *Store) ExportSkillsBundle(directories []string, destination string) error {
	if len(directories) == 0 {
		return fmt.Errorf("no skill directories provided")
	}
	if err := prepareDestination(destination); err != nil {
		return err
	}

	out, err := os.Create(destination)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	for _, directory := range directories {
		expanded, err := ExpandPath(directory)
		if err != nil {
			zw.Close()
			return err
		}
		if _, err := os.Stat(expanded); err != nil {
			continue
		}
		if err := ensurePathInSkillsDir(expanded); err != nil {
			zw.Close()
			return err
		}
		if err := addDirectoryToZip(zw, expanded, filepath.Base(expanded)); err != nil {
			zw.Close()
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalise archive: %w", err)
	}
	return nil
}

// ImportSkillArchive extracts a skill archive into the given scope's
// skills directory and returns the created skill directory. The archive
// must contain a single root folder holding a SKILL.md manifest; entries
// that would escape the target directory are rejected.
func (s *Store) ImportSkillArchive(archivePath string, scope Scope, projectPath string) (string, error) {
	expanded, err := ExpandPath(archivePath)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(expanded); err != nil {
		return "", fmt.Errorf("archive does not exist: %w", err)
	}

	skillsDir, err := s.SkillsDir(scope, projectPath)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(skillsDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to prepare skills directory: %w", err)
	}
	if err := ensurePathInSkillsDir(skillsDir); err != nil {
		return "", err
	}
	return extractSkillArchive(expanded, skillsDir)
}

func prepareDestination(destination string) error {
	parent := filepath.Dir(destination)
	if parent != "" && parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return fmt.Errorf("failed to prepare destination: %w", err)
		}
	}
	return nil
}

// addDirectoryToZip walks sourceDir and writes every entry under rootName
// inside the archive, using forward slashes regardless of platform.
func addDirectoryToZip(zw *zip.Writer, sourceDir, rootName string) error {
	return filepath.WalkDir(sourceDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to walk directory: %w", err)
		}
		rel, err := filepath.Rel(sourceDir, p)
		if err != nil {
			return fmt.Errorf("failed to compute relative path: %w", err)
		}
		name := rootName
		if rel != "." {
			name = path.Join(rootName, filepath.ToSlash(rel))
		}

		if d.IsDir() {
			if _, err := zw.Create(name + "/"); err != nil {
				return fmt.Errorf("failed to add directory to archive: %w", err)
			}
			return nil
		}

		w, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("failed to add file to archive: %w", err)
		}
		in, err := os.Open(p)
		if err != nil {
			return fmt.Errorf("failed to open file: %w", err)
		}
		defer in.Close()
		if _, err := io.Copy(w, in); err != nil {
			return fmt.Errorf("failed to write to archive: %w", err)
		}
		return nil
	})
}

// archiveRootName validates that every entry shares a single root folder
// and returns it. macOS resource-fork folders are ignored.
func archiveRootName(zr *zip.ReadCloser) (string, error) {
	var root string
	for _, entry := range zr.File {
		clean := path.Clean(entry.Name)
		if clean == "." || strings.HasPrefix(clean, "..") || path.IsAbs(clean) {
			return "", fmt.Errorf("archive contains invalid paths")
		}
		first := clean
		if i := strings.IndexByte(clean, '/'); i >= 0 {
			first = clean[:i]
		}
		if strings.HasPrefix(first, "__MACOSX") {
			continue
		}
		switch {
		case root == "":
			root = first
		case root != first:
			return "", fmt.Errorf("archive must contain a single root folder (zip the skill directory)")
		}
	}
	if root == "" {
		return "", fmt.Errorf("archive missing skill folder")
	}
	return root, nil
}

func extractSkillArchive(archivePath, base string) (string, error) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return "", fmt.Errorf("failed to read archive: %w", err)
	}
	defer zr.Close()

	root, err := archiveRootName(zr)
	if err != nil {
		return "", err
	}

	targetDir := nextAvailablePath(base, root)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create skill directory: %w", err)
	}

	for _, entry := range zr.File {
		clean := path.Clean(entry.Name)
		first := clean
		rest := ""
		if i := strings.IndexByte(clean, '/'); i >= 0 {
			first, rest = clean[:i], clean[i+1:]
		}
		if strings.HasPrefix(first, "__MACOSX") || first != root {
			continue
		}

		outputPath := targetDir
		if rest != "" {
			outputPath = filepath.Join(targetDir, filepath.FromSlash(rest))
		}
		// Containment re-check after joining, in case of crafted names.
		if outputPath != targetDir && !strings.HasPrefix(outputPath, targetDir+string(filepath.Separator)) {
			continue
		}

		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(outputPath, 0o755); err != nil {
				return "", fmt.Errorf("failed to create directory: %w", err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
			return "", fmt.Errorf("failed to create parent directory: %w", err)
		}
		if err := extractZipFile(entry, outputPath); err != nil {
			return "", err
		}
	}

	if _, err := os.Stat(filepath.Join(targetDir, SkillManifestName)); err != nil {
		_ = os.RemoveAll(targetDir)
		return "", fmt.Errorf("imported archive did not contain %s", SkillManifestName)
	}
	return targetDir, nil
}

func extractZipFile(entry *zip.File, outputPath string) error {
	in, err := entry.Open()
	if err != nil {
		return fmt.Errorf("failed to extract archive entry: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
