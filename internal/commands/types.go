package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vinsly/vinsly/internal/workspace"
)

// CommandCategory represents the type of command
type CommandCategory int

const (
	CategoryNavigation CommandCategory = iota // : prefix (screens)
	CategoryAction                            // / prefix (delete, export, undo)
)

// CommandContext provides context for command execution
type CommandContext struct {
	ScreenID      string             // Active screen ID (projects, agents, skills)
	Project       *workspace.Project // Project scope, nil for global
	Selected      map[string]any     // Selected item data (Name, Path, etc.)
	SelectedItems []map[string]any   // Marked items for bulk operations
	Args          string             // Additional command arguments (inline args string)
}

// SelectedName returns the Name field of the selected item
func (ctx *CommandContext) SelectedName() string {
	name, _ := ctx.Selected["Name"].(string)
	return name
}

// SelectedPath returns the Path field of the selected item
func (ctx *CommandContext) SelectedPath() string {
	path, _ := ctx.Selected["Path"].(string)
	return path
}

// ParseArgs parses inline args string into a typed struct using reflection
// Usage: ctx.ParseArgs(&myArgsStruct)
func (ctx *CommandContext) ParseArgs(dest any) error {
	return ParseInlineArgs(dest, ctx.Args)
}

// ExecuteFunc is a function that executes a command and returns a Bubble Tea command
type ExecuteFunc func(ctx CommandContext) tea.Cmd

// Command represents a command in the palette
type Command struct {
	Name              string          // Short command name (e.g., "delete", "export")
	Description       string          // Human-readable description
	Category          CommandCategory // Command category
	NeedsConfirmation bool            // Whether the command requires confirmation
	Execute           ExecuteFunc     // Execution function
	Screens           []string        // Screen IDs this command applies to (empty = all)
	Shortcut          string          // Keyboard shortcut (e.g., "ctrl+z")
	ArgsType          any             // Pointer to args struct (e.g., &ImportArgs{}) for reflection
	ArgPattern        string          // Display pattern for palette (e.g., " <archive>")
}
