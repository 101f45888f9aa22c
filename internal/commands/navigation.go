package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vinsly/vinsly/internal/types"
)

// NavigationCommand returns execute function for switching to a screen
func NavigationCommand(screenID string) ExecuteFunc {
	return func(ctx CommandContext) tea.Cmd {
		return func() tea.Msg {
			return types.ScreenSwitchMsg{ScreenID: screenID, PushHistory: true}
		}
	}
}

func ProjectsCommand() ExecuteFunc {
	return NavigationCommand("projects")
}

func AgentsCommand() ExecuteFunc {
	return NavigationCommand("agents")
}

func SkillsCommand() ExecuteFunc {
	return NavigationCommand("skills")
}
