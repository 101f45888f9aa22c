package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vinsly/vinsly/internal/config"
	"github.com/vinsly/vinsly/internal/types"
	"github.com/vinsly/vinsly/internal/workspace"
)

// GetProjectsScreenConfig returns the config for the Projects screen.
// Enter drills into a project's agents.
func GetProjectsScreenConfig(cfg config.Config) ScreenConfig {
	return ScreenConfig{
		ID:    "projects",
		Title: "Projects",
		Columns: []ColumnConfig{
			{Field: "Name", Title: "Name", Width: 30},
			{Field: "Path", Title: "Path", Width: 0},
			{Field: "AgentCount", Title: "Agents", Width: 8},
			{Field: "SkillCount", Title: "Skills", Width: 8},
		},
		SearchFields: []string{"Name", "Path"},
		Operations: []OperationConfig{
			{ID: "open", Name: "Open", Description: "Browse agents in selected project", Shortcut: "enter"},
			{ID: "refresh", Name: "Refresh", Description: "Rescan project directories", Shortcut: "ctrl+r"},
		},
		Fetch: func(store *workspace.Store, _ *workspace.Project) ([]any, error) {
			projects, err := store.DiscoverProjects(cfg.ScanDepth, cfg.IncludeProtected)
			if err != nil {
				return nil, err
			}
			items := make([]any, len(projects))
			for i := range projects {
				items[i] = projects[i]
			}
			return items, nil
		},
		NavigationHandler: navigateToProjectAgents(),
		TrackSelection:    true,
	}
}

// GetAgentsScreenConfig returns the config for the Agents screen. The
// screen shows the global scope until a project is selected.
func GetAgentsScreenConfig() ScreenConfig {
	return ScreenConfig{
		ID:    "agents",
		Title: "Agents",
		Columns: []ColumnConfig{
			{Field: "Name", Title: "Name", Width: 0},
			{Field: "Scope", Title: "Scope", Width: 10},
			{Field: "Path", Title: "Path", Width: 50},
		},
		SearchFields: []string{"Name", "Path"},
		Operations: []OperationConfig{
			{ID: "view", Name: "View", Description: "View agent content", Shortcut: "v"},
			{ID: "copy", Name: "Copy", Description: "Copy agent content to clipboard", Shortcut: "c"},
			{ID: "delete", Name: "Delete", Description: "Delete selected agent", Shortcut: "ctrl+x"},
			{ID: "mark", Name: "Mark", Description: "Mark agent for bulk operations", Shortcut: "space"},
		},
		Fetch:             fetchScoped((*workspace.Store).ListAgents),
		NavigationHandler: navigateToContent(),
		TrackSelection:    true,
		EnableMarks:       true,
	}
}

// GetSkillsScreenConfig returns the config for the Skills screen
func GetSkillsScreenConfig() ScreenConfig {
	return ScreenConfig{
		ID:    "skills",
		Title: "Skills",
		Columns: []ColumnConfig{
			{Field: "Name", Title: "Name", Width: 0},
			{Field: "Scope", Title: "Scope", Width: 10},
			{Field: "HasAssets", Title: "Assets", Width: 8, Format: formatHasAssets},
			{Field: "Path", Title: "Path", Width: 50},
		},
		SearchFields: []string{"Name", "Path"},
		Operations: []OperationConfig{
			{ID: "view", Name: "View", Description: "View skill manifest", Shortcut: "v"},
			{ID: "export", Name: "Export", Description: "Export skill as zip archive", Shortcut: "e"},
			{ID: "delete", Name: "Delete", Description: "Delete selected skill", Shortcut: "ctrl+x"},
			{ID: "mark", Name: "Mark", Description: "Mark skill for bulk operations", Shortcut: "space"},
		},
		Fetch:             fetchSkills(),
		NavigationHandler: navigateToContent(),
		TrackSelection:    true,
		EnableMarks:       true,
	}
}

// fetchScoped adapts a scope-based list method into a FetchFunc
func fetchScoped(list func(*workspace.Store, workspace.Scope, string) ([]workspace.AgentFile, error)) FetchFunc {
	return func(store *workspace.Store, project *workspace.Project) ([]any, error) {
		scope, path := workspace.ScopeGlobal, ""
		if project != nil {
			scope, path = workspace.ScopeProject, project.Path
		}
		agents, err := list(store, scope, path)
		if err != nil {
			return nil, err
		}
		items := make([]any, len(agents))
		for i := range agents {
			items[i] = agents[i]
		}
		return items, nil
	}
}

func fetchSkills() FetchFunc {
	return func(store *workspace.Store, project *workspace.Project) ([]any, error) {
		scope, path := workspace.ScopeGlobal, ""
		if project != nil {
			scope, path = workspace.ScopeProject, project.Path
		}
		skills, err := store.ListSkills(scope, path)
		if err != nil {
			return nil, err
		}
		items := make([]any, len(skills))
		for i := range skills {
			items[i] = skills[i]
		}
		return items, nil
	}
}

// navigateToProjectAgents switches to the agents screen scoped to the
// selected project
func navigateToProjectAgents() NavigationFunc {
	return func(s *ListScreen) tea.Cmd {
		selected := s.GetSelectedItem()
		if selected == nil {
			return nil
		}

		project := &workspace.Project{}
		project.Name, _ = selected["Name"].(string)
		project.Path, _ = selected["Path"].(string)
		project.AgentCount, _ = selected["AgentCount"].(int)
		project.SkillCount, _ = selected["SkillCount"].(int)

		return func() tea.Msg {
			return types.ScreenSwitchMsg{
				ScreenID:    "agents",
				Project:     project,
				PushHistory: true,
			}
		}
	}
}

// navigateToContent opens the selected item's markdown in full screen
func navigateToContent() NavigationFunc {
	return func(s *ListScreen) tea.Cmd {
		selected := s.GetSelectedItem()
		if selected == nil {
			return nil
		}

		name, _ := selected["Name"].(string)
		path, _ := selected["Path"].(string)

		return func() tea.Msg {
			var content string
			var err error
			if s.config.ID == "skills" {
				content, err = s.store.ReadSkill(path)
			} else {
				content, err = s.store.ReadAgent(path)
			}
			if err != nil {
				return types.ErrorStatusMsg("Failed to read " + name + ": " + err.Error())
			}
			return types.ShowFullScreenMsg{ItemName: name, Content: content}
		}
	}
}

func formatHasAssets(val any) string {
	if has, ok := val.(bool); ok && has {
		return "yes"
	}
	return "-"
}
