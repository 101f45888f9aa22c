package components

import "time"

// UI component constants
const (
	// FullScreenReservedLines is the number of lines reserved for UI chrome
	// (header, separator, scroll indicator) when showing full-screen content
	// views. This ensures content doesn't overflow the terminal.
	FullScreenReservedLines = 3

	// StatusBarDisplayDuration is how long status messages (success, error,
	// info) are displayed before automatically clearing. 5 seconds provides
	// enough time to read without cluttering the UI.
	StatusBarDisplayDuration = 5 * time.Second
)
