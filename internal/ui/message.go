package ui

// TruncateMessage shortens a status message to fit the terminal width,
// accounting for the prefix glyph and bar padding.
func TruncateMessage(text string, width int) string {
	// Max length = terminal width - prefix (2) - margin (5)
	maxMessageLength := width - 7
	if maxMessageLength < 20 {
		maxMessageLength = 20
	}
	runes := []rune(text)
	if len(runes) > maxMessageLength {
		return string(runes[:maxMessageLength-1]) + "…"
	}
	return text
}
