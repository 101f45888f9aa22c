package commandbar

// InputHistory manages typed-command history with deduplication and a
// size cap. Distinct from the undo engine: this only remembers what was
// typed into the bar.
type InputHistory struct {
	entries []string
	index   int // Current position in history (-1 means not navigating)
}

// NewInputHistory creates a new input history.
func NewInputHistory() *InputHistory {
	return &InputHistory{
		entries: []string{},
		index:   -1,
	}
}

// Add adds a command to history, avoiding duplicates of most recent entry.
func (h *InputHistory) Add(cmd string) {
	if len(cmd) == 0 {
		return
	}

	if len(h.entries) > 0 && h.entries[len(h.entries)-1] == cmd {
		return
	}

	h.entries = append(h.entries, cmd)

	const maxHistory = 100
	if len(h.entries) > maxHistory {
		h.entries = h.entries[len(h.entries)-maxHistory:]
	}

	h.index = -1
}

// NavigateUp navigates backwards in history (older commands).
// Returns the command at the new position and whether navigation succeeded.
func (h *InputHistory) NavigateUp() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}

	if h.index == -1 {
		h.index = len(h.entries) - 1
	} else if h.index > 0 {
		h.index--
	}

	return h.entries[h.index], true
}

// NavigateDown navigates forwards in history (newer commands).
// Returns empty string and false when reaching the end (most recent).
func (h *InputHistory) NavigateDown() (string, bool) {
	if len(h.entries) == 0 || h.index == -1 {
		return "", false
	}

	if h.index < len(h.entries)-1 {
		h.index++
		return h.entries[h.index], true
	}

	h.index = -1
	return "", false
}

// Reset resets the history navigation index.
func (h *InputHistory) Reset() {
	h.index = -1
}

// IsEmpty returns true if history is empty.
func (h *InputHistory) IsEmpty() bool {
	return len(h.entries) == 0
}

// Size returns the number of entries in history.
func (h *InputHistory) Size() int {
	return len(h.entries)
}
