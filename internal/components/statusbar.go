package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vinsly/vinsly/internal/types"
	"github.com/vinsly/vinsly/internal/ui"
)

// StatusBar displays transient status messages (success, errors, info).
// When no message is active it shows the current undo/redo positions so
// the user always knows what ctrl+z and ctrl+y would do.
type StatusBar struct {
	message     string
	messageType types.MessageType
	undoHint    string
	redoHint    string
	width       int
	theme       *ui.Theme
}

// NewStatusBar creates a new status bar
func NewStatusBar(theme *ui.Theme) *StatusBar {
	return &StatusBar{
		theme: theme,
	}
}

// SetMessage sets the status message with type
func (sb *StatusBar) SetMessage(msg string, msgType types.MessageType) {
	sb.message = msg
	sb.messageType = msgType
}

// ClearMessage clears the status message
func (sb *StatusBar) ClearMessage() {
	sb.message = ""
	sb.messageType = types.MessageTypeInfo
}

// SetHistoryHint updates the persistent undo/redo hint. Empty strings mean
// the corresponding stack is empty.
func (sb *StatusBar) SetHistoryHint(undoDescription, redoDescription string) {
	sb.undoHint = undoDescription
	sb.redoHint = redoDescription
}

// SetWidth sets the status bar width
func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

// GetHeight returns the height (always 1 line to reserve space)
func (sb *StatusBar) GetHeight() int {
	return 1
}

// View renders the status bar
func (sb *StatusBar) View() string {
	baseStyle := lipgloss.NewStyle().
		Width(sb.width).
		Padding(0, 1)

	if sb.message == "" {
		return baseStyle.
			Foreground(sb.theme.Dimmed).
			Render(sb.historyHint())
	}

	// Colored background with theme foreground for high visibility
	var messageStyle lipgloss.Style
	var prefix string

	switch sb.messageType {
	case types.MessageTypeSuccess:
		messageStyle = baseStyle.
			Background(sb.theme.Success).
			Foreground(sb.theme.Background).
			Bold(true)
		prefix = "✓ "
	case types.MessageTypeError:
		messageStyle = baseStyle.
			Background(sb.theme.Error).
			Foreground(sb.theme.Background).
			Bold(true)
		prefix = "✗ "
	default:
		messageStyle = baseStyle.
			Background(sb.theme.Primary).
			Foreground(sb.theme.Background).
			Bold(true)
		prefix = "ℹ "
	}

	return messageStyle.Render(prefix + ui.TruncateMessage(sb.message, sb.width))
}

func (sb *StatusBar) historyHint() string {
	undo := "undo: —"
	if sb.undoHint != "" {
		undo = "undo: " + sb.undoHint
	}
	redo := "redo: —"
	if sb.redoHint != "" {
		redo = "redo: " + sb.redoHint
	}
	return undo + "  " + redo
}
