package commands

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/vinsly/vinsly/internal/types"
)

// Registry holds all available commands and provides filtering
type Registry struct {
	commands []Command
}

// NewRegistry creates a new command registry with default commands
func NewRegistry(appCtx *types.AppContext) *Registry {
	return &Registry{
		commands: []Command{
			// Navigation commands (: prefix)
			{
				Name:        "projects",
				Description: "Switch to Projects screen",
				Category:    CategoryNavigation,
				Execute:     ProjectsCommand(),
			},
			{
				Name:        "agents",
				Description: "Switch to Agents screen",
				Category:    CategoryNavigation,
				Execute:     AgentsCommand(),
			},
			{
				Name:        "skills",
				Description: "Switch to Skills screen",
				Category:    CategoryNavigation,
				Execute:     SkillsCommand(),
			},
			{
				Name:        "q",
				Description: "Quit vinsly",
				Category:    CategoryNavigation,
				Execute:     QuitCommand(),
			},

			// Action commands (/ prefix)
			{
				Name:        "view",
				Description: "View item content",
				Category:    CategoryAction,
				Screens:     []string{"agents", "skills"},
				Shortcut:    "v",
				Execute:     ViewCommand(appCtx),
			},
			{
				Name:        "copy",
				Description: "Copy item content to clipboard",
				Category:    CategoryAction,
				Screens:     []string{"agents", "skills"},
				Shortcut:    "c",
				Execute:     CopyContentCommand(appCtx),
			},
			{
				Name:              "delete",
				Description:       "Delete selected agent (undoable)",
				Category:          CategoryAction,
				Screens:           []string{"agents"},
				Shortcut:          "ctrl+x",
				NeedsConfirmation: true,
				Execute:           DeleteAgentCommand(appCtx),
			},
			{
				Name:              "delete",
				Description:       "Delete selected skill (undoable)",
				Category:          CategoryAction,
				Screens:           []string{"skills"},
				Shortcut:          "ctrl+x",
				NeedsConfirmation: true,
				Execute:           DeleteSkillCommand(appCtx),
			},
			{
				Name:              "delete-marked",
				Description:       "Delete all marked items (undoable)",
				Category:          CategoryAction,
				Screens:           []string{"agents", "skills"},
				NeedsConfirmation: true,
				Execute:           DeleteMarkedCommand(appCtx),
			},
			{
				Name:        "new-agent",
				Description: "Create a new agent (undoable)",
				Category:    CategoryAction,
				Screens:     []string{"agents"},
				ArgsType:    &NewAgentArgs{},
				ArgPattern:  " <name>",
				Execute:     NewAgentCommand(appCtx),
			},
			{
				Name:        "export",
				Description: "Export skill as zip archive",
				Category:    CategoryAction,
				Screens:     []string{"skills"},
				Shortcut:    "e",
				ArgsType:    &ExportArgs{},
				ArgPattern:  " [dest]",
				Execute:     ExportSkillCommand(appCtx),
			},
			{
				Name:        "export-marked",
				Description: "Export marked skills as one archive",
				Category:    CategoryAction,
				Screens:     []string{"skills"},
				ArgsType:    &ExportArgs{},
				ArgPattern:  " [dest]",
				Execute:     ExportMarkedCommand(appCtx),
			},
			{
				Name:        "import",
				Description: "Import skill archive (undoable)",
				Category:    CategoryAction,
				Screens:     []string{"skills"},
				ArgsType:    &ImportArgs{},
				ArgPattern:  " <archive>",
				Execute:     ImportSkillCommand(appCtx),
			},
			{
				Name:        "undo",
				Description: "Undo last operation",
				Category:    CategoryAction,
				Shortcut:    "ctrl+z",
				Execute:     UndoCommand(appCtx),
			},
			{
				Name:        "redo",
				Description: "Redo last undone operation",
				Category:    CategoryAction,
				Shortcut:    "ctrl+y",
				Execute:     RedoCommand(appCtx),
			},
			{
				Name:              "clear-history",
				Description:       "Drop undo/redo history and empty the trash",
				Category:          CategoryAction,
				NeedsConfirmation: true,
				Execute:           ClearHistoryCommand(appCtx),
			},
			{
				Name:        "refresh",
				Description: "Reload the current screen",
				Category:    CategoryAction,
				Shortcut:    "ctrl+r",
				Execute:     RefreshCommand(),
			},
		},
	}
}

// GetByCategory returns all commands in a category
func (r *Registry) GetByCategory(category CommandCategory) []Command {
	result := []Command{}
	for _, cmd := range r.commands {
		if cmd.Category == category {
			result = append(result, cmd)
		}
	}
	return result
}

// Filter returns commands matching the query using fuzzy search
func (r *Registry) Filter(query string, category CommandCategory) []Command {
	candidates := r.GetByCategory(category)

	if query == "" {
		return candidates
	}

	names := make([]string, len(candidates))
	for i, cmd := range candidates {
		names[i] = cmd.Name
	}

	matches := fuzzy.Find(query, names)

	result := make([]Command, len(matches))
	for i, match := range matches {
		result[i] = candidates[match.Index]
	}

	return result
}

// FilterByScreen returns commands that apply to the given screen.
// Empty screenID returns all commands.
func (r *Registry) FilterByScreen(commands []Command, screenID string) []Command {
	if screenID == "" {
		return commands
	}

	result := []Command{}
	for _, cmd := range commands {
		// Empty Screens means applies to all
		if len(cmd.Screens) == 0 {
			result = append(result, cmd)
			continue
		}
		for _, id := range cmd.Screens {
			if id == screenID {
				result = append(result, cmd)
				break
			}
		}
	}
	return result
}

// Get returns a command by name and category, or nil if not found.
// When several commands share a name (screen-scoped variants), the
// screenID disambiguates.
func (r *Registry) Get(name string, category CommandCategory, screenID string) *Command {
	var fallback *Command
	for i := range r.commands {
		cmd := &r.commands[i]
		if cmd.Category != category || !strings.EqualFold(cmd.Name, name) {
			continue
		}
		if len(cmd.Screens) == 0 {
			if fallback == nil {
				fallback = cmd
			}
			continue
		}
		for _, id := range cmd.Screens {
			if id == screenID {
				return cmd
			}
		}
	}
	return fallback
}
