package types

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vinsly/vinsly/internal/workspace"
)

// Screen represents a view in the application
type Screen interface {
	tea.Model
	ID() string
	Title() string
	HelpText() string
	Operations() []Operation
}

// ScreenWithSelection interface for screens that track a selected item
type ScreenWithSelection interface {
	Screen
	GetSelectedItem() map[string]any
	GetSelectedItems() []map[string]any
}

// Operation represents an action that can be executed on a screen
type Operation struct {
	ID          string
	Name        string
	Description string
	Shortcut    string
	Execute     func() tea.Cmd
}

// ScreenRegistry manages available screens
type ScreenRegistry struct {
	screens map[string]Screen
	order   []string
}

func NewScreenRegistry() *ScreenRegistry {
	return &ScreenRegistry{
		screens: make(map[string]Screen),
		order:   []string{},
	}
}

func (r *ScreenRegistry) Register(screen Screen) {
	id := screen.ID()
	if _, exists := r.screens[id]; !exists {
		r.order = append(r.order, id)
	}
	r.screens[id] = screen
}

func (r *ScreenRegistry) Get(id string) (Screen, bool) {
	screen, ok := r.screens[id]
	return screen, ok
}

func (r *ScreenRegistry) All() []Screen {
	result := make([]Screen, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.screens[id])
	}
	return result
}

// AppState holds shared application state
type AppState struct {
	CurrentScreen string
	LastRefresh   time.Time
	RefreshTime   time.Duration
	Width         int
	Height        int
}

// Messages

// ScreenSwitchMsg requests a switch to another screen. Project is set
// when drilling into a project's agents or skills.
type ScreenSwitchMsg struct {
	ScreenID    string
	Project     *workspace.Project
	IsBackNav   bool // True if navigating back via ESC
	PushHistory bool // True if should push current screen to nav history
}

// RefreshScreenMsg asks the active screen to reload its items
type RefreshScreenMsg struct{}

type RefreshCompleteMsg struct {
	Duration time.Duration
}

// HistoryChangedMsg signals that the undo/redo stacks changed
type HistoryChangedMsg struct{}

// MessageType defines the type of status message
type MessageType int

const (
	MessageTypeInfo MessageType = iota
	MessageTypeSuccess
	MessageTypeError
	MessageTypeLoading // Loading state with spinner
)

type StatusMsg struct {
	Message string
	Type    MessageType
}

type ClearStatusMsg struct {
	MessageID int // Only clear if this matches the current message ID
}

// Helper functions for creating status messages

// InfoMsg creates an info status message
func InfoMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeInfo}
}

// SuccessMsg creates a success status message
func SuccessMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeSuccess}
}

// ErrorStatusMsg creates an error status message
func ErrorStatusMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeError}
}

// LoadingMsg creates a loading status message (with spinner)
func LoadingMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeLoading}
}

type FilterUpdateMsg struct {
	Filter string
}

type ClearFilterMsg struct{}

// ShowFullScreenMsg triggers display of full-screen content (agent or
// skill markdown)
type ShowFullScreenMsg struct {
	ItemName string
	Content  string
}

// ExitFullScreenMsg returns from full-screen view to list
type ExitFullScreenMsg struct{}
