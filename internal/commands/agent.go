package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vinsly/vinsly/internal/messages"
	"github.com/vinsly/vinsly/internal/types"
	"github.com/vinsly/vinsly/internal/workspace"
)

// DeleteAgentCommand returns an execute function that deletes the
// selected agent through the undo history.
func DeleteAgentCommand(appCtx *types.AppContext) ExecuteFunc {
	return func(ctx CommandContext) tea.Cmd {
		path := ctx.SelectedPath()
		if path == "" {
			return messages.ErrorCmd("No agent selected")
		}
		name := ctx.SelectedName()

		cmd, err := DeleteItem(appCtx.Store, fmt.Sprintf("delete agent %q", name), path)
		if err != nil {
			return messages.ErrorCmd("Cannot delete %s: %v", name, err)
		}
		return submit(appCtx.History, cmd, fmt.Sprintf("Deleted agent %s", name))
	}
}

// DeleteMarkedCommand returns an execute function that deletes every
// marked item on the current screen as a single undoable step.
func DeleteMarkedCommand(appCtx *types.AppContext) ExecuteFunc {
	return func(ctx CommandContext) tea.Cmd {
		if len(ctx.SelectedItems) == 0 {
			return messages.ErrorCmd("No items marked")
		}

		paths := make([]string, 0, len(ctx.SelectedItems))
		names := make([]string, 0, len(ctx.SelectedItems))
		for _, item := range ctx.SelectedItems {
			path, _ := item["Path"].(string)
			if path == "" {
				continue
			}
			if ctx.ScreenID == "skills" {
				dir, err := workspace.ResolveSkillDirectory(path)
				if err != nil {
					return messages.ErrorCmd("Cannot delete: %v", err)
				}
				path = dir
			}
			paths = append(paths, path)
			if name, _ := item["Name"].(string); name != "" {
				names = append(names, name)
			}
		}

		description := fmt.Sprintf("delete %d items (%s)", len(paths), strings.Join(names, ", "))
		cmd, err := BulkDelete(appCtx.Store, description, paths)
		if err != nil {
			return messages.ErrorCmd("Cannot delete: %v", err)
		}
		return submit(appCtx.History, cmd, fmt.Sprintf("Deleted %d items", len(paths)))
	}
}

// NewAgentArgs defines arguments for the new-agent command
type NewAgentArgs struct {
	Name string `form:"name" title:"Agent name"`
}

// NewAgentCommand returns an execute function that creates an agent
// with stub content. Creation is undoable: undo trashes the new file.
func NewAgentCommand(appCtx *types.AppContext) ExecuteFunc {
	return func(ctx CommandContext) tea.Cmd {
		var args NewAgentArgs
		if err := ctx.ParseArgs(&args); err != nil {
			return messages.ErrorCmd("Invalid args: %v", err)
		}

		scope, projectPath := scopeFor(ctx)
		content := fmt.Sprintf("---\nname: %s\ndescription: \n---\n", args.Name)

		apply := func(create bool) error {
			if create {
				_, err := appCtx.Store.WriteAgent(scope, args.Name, content, projectPath)
				return err
			}
			dir, err := appCtx.Store.AgentsDir(scope, projectPath)
			if err != nil {
				return err
			}
			return appCtx.Store.DeleteAgent(filepath.Join(dir, args.Name+".md"))
		}

		cmd, err := Toggle(fmt.Sprintf("create agent %q", args.Name), apply, false)
		if err != nil {
			return messages.ErrorCmd("Cannot create %s: %v", args.Name, err)
		}
		return submit(appCtx.History, cmd, fmt.Sprintf("Created agent %s", args.Name))
	}
}

// ViewCommand returns an execute function that shows the selected
// item's markdown full-screen.
func ViewCommand(appCtx *types.AppContext) ExecuteFunc {
	return func(ctx CommandContext) tea.Cmd {
		path := ctx.SelectedPath()
		if path == "" {
			return messages.ErrorCmd("Nothing selected")
		}
		name := ctx.SelectedName()

		content, err := readItemContent(appCtx.Store, ctx.ScreenID, path)
		if err != nil {
			return messages.ErrorCmd("Cannot read %s: %v", name, err)
		}
		return func() tea.Msg {
			return types.ShowFullScreenMsg{ItemName: name, Content: content}
		}
	}
}

// scopeFor derives the workspace scope from the command context.
func scopeFor(ctx CommandContext) (workspace.Scope, string) {
	if ctx.Project != nil {
		return workspace.ScopeProject, ctx.Project.Path
	}
	return workspace.ScopeGlobal, ""
}
