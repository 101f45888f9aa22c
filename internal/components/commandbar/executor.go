package commandbar

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vinsly/vinsly/internal/commands"
	"github.com/vinsly/vinsly/internal/ui"
	"github.com/vinsly/vinsly/internal/workspace"
)

// Executor manages command execution and confirmation.
type Executor struct {
	registry *commands.Registry
	theme    *ui.Theme
	width    int

	// Pending command state (for confirmation)
	pendingCommand *commands.Command
	pendingArgs    string
}

// NewExecutor creates a new executor.
func NewExecutor(registry *commands.Registry, theme *ui.Theme, width int) *Executor {
	return &Executor{
		registry: registry,
		theme:    theme,
		width:    width,
	}
}

// SetWidth updates the executor width.
func (e *Executor) SetWidth(width int) {
	e.width = width
}

// BuildContext creates a CommandContext for command execution.
func (e *Executor) BuildContext(screenID string, project *workspace.Project, selected map[string]any, selectedItems []map[string]any, args string) commands.CommandContext {
	return commands.CommandContext{
		ScreenID:      screenID,
		Project:       project,
		Selected:      selected,
		SelectedItems: selectedItems,
		Args:          args,
	}
}

// Execute executes a command by name and category.
// Returns tea.Cmd to execute, or nil if command needs confirmation.
// Sets pending command if confirmation is needed.
func (e *Executor) Execute(cmdName string, category commands.CommandCategory, ctx commands.CommandContext) (tea.Cmd, bool) {
	cmd := e.registry.Get(cmdName, category, ctx.ScreenID)
	if cmd == nil {
		return nil, false
	}

	if cmd.NeedsConfirmation {
		e.pendingCommand = cmd
		e.pendingArgs = ctx.Args
		return nil, true
	}

	if cmd.Execute != nil {
		return cmd.Execute(ctx), false
	}

	return nil, false
}

// ExecutePending executes the pending command with stored args.
// Returns tea.Cmd to execute.
func (e *Executor) ExecutePending(ctx commands.CommandContext) tea.Cmd {
	if e.pendingCommand == nil || e.pendingCommand.Execute == nil {
		return nil
	}

	ctx.Args = e.pendingArgs
	cmd := e.pendingCommand.Execute(ctx)

	e.ClearPending()

	return cmd
}

// CancelPending cancels the pending command.
func (e *Executor) CancelPending() {
	e.pendingCommand = nil
	e.pendingArgs = ""
}

// ClearPending clears the pending command state.
func (e *Executor) ClearPending() {
	e.pendingCommand = nil
	e.pendingArgs = ""
}

// HasPending returns true if there's a pending command.
func (e *Executor) HasPending() bool {
	return e.pendingCommand != nil
}

// GetPendingCommand returns the pending command.
func (e *Executor) GetPendingCommand() *commands.Command {
	return e.pendingCommand
}

// ViewConfirmation renders confirmation prompt.
func (e *Executor) ViewConfirmation() string {
	if e.pendingCommand == nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(e.theme.Error).
		Bold(true).
		Width(e.width).
		Padding(0, 1)

	textStyle := lipgloss.NewStyle().
		Foreground(e.theme.Foreground).
		Width(e.width).
		Padding(0, 1)

	hintStyle := lipgloss.NewStyle().
		Foreground(e.theme.Subtle).
		Width(e.width).
		Padding(0, 1)

	lines := []string{}
	lines = append(lines, titleStyle.Render("⚠ Confirm Action"))
	lines = append(lines, textStyle.Render(""))
	lines = append(lines, textStyle.Render("Command: /"+e.pendingCommand.Name))
	lines = append(lines, textStyle.Render(e.pendingCommand.Description))
	lines = append(lines, hintStyle.Render("[Enter] Confirm  [ESC] Cancel"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// ViewResult renders result message.
func (e *Executor) ViewResult(message string, success bool) string {
	var color lipgloss.AdaptiveColor
	if success {
		color = e.theme.Success
	} else {
		color = e.theme.Error
	}

	resultStyle := lipgloss.NewStyle().
		Foreground(color).
		Background(e.theme.Background).
		Width(e.width).
		Padding(0, 1).
		Bold(true)

	icon := "✓"
	if !success {
		icon = "✗"
	}

	return resultStyle.Render(icon + " " + message)
}
