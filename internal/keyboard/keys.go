package keyboard

// Keys holds the keyboard shortcut configuration for vinsly. The command
// bar prefixes (":" for screens, "/" for actions) are fixed; everything
// here covers the shortcuts handled while the bar is hidden.
type Keys struct {
	// Item Operations
	View   string // View item content full-screen
	Copy   string // Copy item content to clipboard
	Delete string // Delete item (undoable)
	Mark   string // Toggle mark for bulk operations
	Export string // Export skill as archive

	// History
	Undo string // Undo last operation
	Redo string // Redo last undone operation

	// Navigation
	Up         string // Move selection up
	Down       string // Move selection down
	JumpTop    string // Jump to top
	JumpBottom string // Jump to bottom
	PageUp     string // Page up
	PageDown   string // Page down
	Enter      string // Drill into selection

	// Global
	Quit    string // Quit application
	Refresh string // Refresh data
	Back    string // Back/clear filter
}

// Default returns the default keyboard configuration
func Default() *Keys {
	return &Keys{
		// Item Operations
		View:   "v",
		Copy:   "c",
		Delete: "ctrl+x",
		Mark:   " ",
		Export: "e",

		// History
		Undo: "ctrl+z",
		Redo: "ctrl+y",

		// Navigation
		Up:         "k",
		Down:       "j",
		JumpTop:    "g",
		JumpBottom: "G",
		PageUp:     "ctrl+b",
		PageDown:   "ctrl+f",
		Enter:      "enter",

		// Global
		Quit:    "ctrl+c",
		Refresh: "ctrl+r",
		Back:    "esc",
	}
}

// GetKeys returns the current keyboard configuration
// Future: This will load from config file
func GetKeys() *Keys {
	return Default()
}
