package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/atotto/clipboard"

	"github.com/vinsly/vinsly/internal/messages"
	"github.com/vinsly/vinsly/internal/types"
)

// CopyToClipboard copies text to system clipboard
func CopyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// CopyContentCommand returns an execute function that copies the
// selected item's markdown to the system clipboard.
func CopyContentCommand(appCtx *types.AppContext) ExecuteFunc {
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
		if err := CopyToClipboard(content); err != nil {
			return messages.ErrorCmd("%v", err)
		}
		return messages.SuccessCmd("Copied %s to clipboard", name)
	}
}
