package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vinsly/vinsly/internal/messages"
	"github.com/vinsly/vinsly/internal/types"
)

// UndoCommand returns an execute function that reverts the most recent
// operation.
func UndoCommand(appCtx *types.AppContext) ExecuteFunc {
	return func(ctx CommandContext) tea.Cmd {
		return tea.Batch(
			func() tea.Msg {
				description, undone, err := appCtx.History.Undo(context.Background())
				if err != nil {
					return types.ErrorStatusMsg("Undo failed: " + err.Error())
				}
				if !undone {
					if appCtx.History.CanUndo() {
						return types.InfoMsg(BusyMessage)
					}
					return types.InfoMsg("Nothing to undo")
				}
				return types.SuccessMsg("Undid: " + description)
			},
			refreshCmd(),
		)
	}
}

// RedoCommand returns an execute function that re-applies the most
// recently undone operation.
func RedoCommand(appCtx *types.AppContext) ExecuteFunc {
	return func(ctx CommandContext) tea.Cmd {
		return tea.Batch(
			func() tea.Msg {
				description, redone, err := appCtx.History.Redo(context.Background())
				if err != nil {
					return types.ErrorStatusMsg("Redo failed: " + err.Error())
				}
				if !redone {
					if appCtx.History.CanRedo() {
						return types.InfoMsg(BusyMessage)
					}
					return types.InfoMsg("Nothing to redo")
				}
				return types.SuccessMsg("Redid: " + description)
			},
			refreshCmd(),
		)
	}
}

// ClearHistoryCommand returns an execute function that drops all
// undo/redo state and purges the trash it still holds.
func ClearHistoryCommand(appCtx *types.AppContext) ExecuteFunc {
	return func(ctx CommandContext) tea.Cmd {
		appCtx.History.Clear()
		return messages.InfoCmd("History cleared")
	}
}
