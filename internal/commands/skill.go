package commands

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vinsly/vinsly/internal/messages"
	"github.com/vinsly/vinsly/internal/types"
	"github.com/vinsly/vinsly/internal/workspace"
)

// DeleteSkillCommand returns an execute function that deletes the
// selected skill directory through the undo history.
func DeleteSkillCommand(appCtx *types.AppContext) ExecuteFunc {
	return func(ctx CommandContext) tea.Cmd {
		path := ctx.SelectedPath()
		if path == "" {
			return messages.ErrorCmd("No skill selected")
		}
		name := ctx.SelectedName()

		dir, err := workspace.ResolveSkillDirectory(path)
		if err != nil {
			return messages.ErrorCmd("Cannot delete %s: %v", name, err)
		}
		cmd, err := DeleteItem(appCtx.Store, fmt.Sprintf("delete skill %q", name), dir)
		if err != nil {
			return messages.ErrorCmd("Cannot delete %s: %v", name, err)
		}
		return submit(appCtx.History, cmd, fmt.Sprintf("Deleted skill %s", name))
	}
}

// ExportArgs defines arguments for the export command
type ExportArgs struct {
	Destination string `form:"dest" title:"Destination" optional:"true"`
}

// ExportSkillCommand returns an execute function that zips the
// selected skill. Export does not mutate the workspace, so it bypasses
// the undo history.
func ExportSkillCommand(appCtx *types.AppContext) ExecuteFunc {
	return func(ctx CommandContext) tea.Cmd {
		path := ctx.SelectedPath()
		if path == "" {
			return messages.ErrorCmd("No skill selected")
		}
		name := ctx.SelectedName()

		var args ExportArgs
		if err := ctx.ParseArgs(&args); err != nil {
			return messages.ErrorCmd("Invalid args: %v", err)
		}
		destination := args.Destination
		if destination == "" {
			destination = name + ".zip"
		}

		dir, err := workspace.ResolveSkillDirectory(path)
		if err != nil {
			return messages.ErrorCmd("Cannot export %s: %v", name, err)
		}
		if err := appCtx.Store.ExportSkill(dir, destination); err != nil {
			return messages.ErrorCmd("Export failed: %v", err)
		}
		return messages.SuccessCmd("Exported %s to %s", name, destination)
	}
}

// ExportMarkedCommand returns an execute function that bundles every
// marked skill into a single archive.
func ExportMarkedCommand(appCtx *types.AppContext) ExecuteFunc {
	return func(ctx CommandContext) tea.Cmd {
		if len(ctx.SelectedItems) == 0 {
			return messages.ErrorCmd("No skills marked")
		}

		var args ExportArgs
		if err := ctx.ParseArgs(&args); err != nil {
			return messages.ErrorCmd("Invalid args: %v", err)
		}
		destination := args.Destination
		if destination == "" {
			destination = "skills.zip"
		}

		dirs := make([]string, 0, len(ctx.SelectedItems))
		for _, item := range ctx.SelectedItems {
			path, _ := item["Path"].(string)
			if path == "" {
				continue
			}
			dir, err := workspace.ResolveSkillDirectory(path)
			if err != nil {
				return messages.ErrorCmd("Cannot export: %v", err)
			}
			dirs = append(dirs, dir)
		}
		if err := appCtx.Store.ExportSkillsBundle(dirs, destination); err != nil {
			return messages.ErrorCmd("Export failed: %v", err)
		}
		return messages.SuccessCmd("Exported %d skills to %s", len(dirs), destination)
	}
}

// ImportArgs defines arguments for the import command
type ImportArgs struct {
	Archive string `form:"archive" title:"Archive path"`
}

// ImportSkillCommand returns an execute function that imports a skill
// archive into the current scope. Undo trashes the imported directory.
func ImportSkillCommand(appCtx *types.AppContext) ExecuteFunc {
	return func(ctx CommandContext) tea.Cmd {
		var args ImportArgs
		if err := ctx.ParseArgs(&args); err != nil {
			return messages.ErrorCmd("Invalid args: %v", err)
		}
		scope, projectPath := scopeFor(ctx)

		// The imported directory is only known after extraction, so the
		// undo closure reads it from the shared variable.
		var imported string
		apply := func(present bool) error {
			if present {
				dir, err := appCtx.Store.ImportSkillArchive(args.Archive, scope, projectPath)
				if err != nil {
					return err
				}
				imported = dir
				return nil
			}
			return appCtx.Store.DeleteSkill(imported)
		}

		name := filepath.Base(args.Archive)
		cmd, err := Toggle(fmt.Sprintf("import skill archive %q", name), apply, false)
		if err != nil {
			return messages.ErrorCmd("Cannot import %s: %v", name, err)
		}
		return submit(appCtx.History, cmd, fmt.Sprintf("Imported %s", name))
	}
}

// readItemContent reads the markdown behind a list row, dispatching on
// the screen the row came from.
func readItemContent(store *workspace.Store, screenID, path string) (string, error) {
	if screenID == "skills" {
		return store.ReadSkill(path)
	}
	return store.ReadAgent(path)
}
