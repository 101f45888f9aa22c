package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vinsly/vinsly/internal/history"
	"github.com/vinsly/vinsly/internal/messages"
	"github.com/vinsly/vinsly/internal/types"
)

// BusyMessage is shown when a command is rejected because another
// operation holds the history engine.
const BusyMessage = "Another operation is in flight"

// submit runs an undoable command through the history engine and
// translates the outcome into a status message. The screen is asked to
// refresh afterwards so the list reflects the mutation.
func submit(hist *history.History, cmd *history.Command, success string) tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			recorded, err := hist.Execute(context.Background(), cmd)
			if err != nil {
				return types.ErrorStatusMsg("Failed: " + err.Error())
			}
			if !recorded {
				return types.InfoMsg(BusyMessage)
			}
			return types.SuccessMsg(success)
		},
		refreshCmd(),
	)
}

func refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return types.RefreshScreenMsg{}
	}
}

// RefreshCommand asks the active screen to reload its items
func RefreshCommand() ExecuteFunc {
	return func(ctx CommandContext) tea.Cmd {
		return tea.Batch(
			refreshCmd(),
			messages.InfoCmd("Refreshing…"),
		)
	}
}
