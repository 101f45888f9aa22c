package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Layout composes the main application view: header, body, command bar
// block, and status bar.
type Layout struct {
	width  int
	height int
}

func NewLayout(width, height int) *Layout {
	return &Layout{
		width:  width,
		height: height,
	}
}

func (l *Layout) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// CalculateBodyHeight returns the available height for the body content
// given the current command bar block and status bar heights.
func (l *Layout) CalculateBodyHeight(commandBarHeight, statusBarHeight int) int {
	// header (1) + blank line (1)
	reserved := 2 + commandBarHeight + statusBarHeight
	bodyHeight := l.height - reserved
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	return bodyHeight
}

// Render builds the full layout. Empty sections are skipped.
func (l *Layout) Render(header, body, paletteItems, commandBar, hints, statusBar string) string {
	sections := []string{}

	if header != "" {
		sections = append(sections, header, "")
	}

	if body != "" {
		sections = append(sections, body)
	}

	if paletteItems != "" {
		sections = append(sections, paletteItems)
	}

	if commandBar != "" {
		sections = append(sections, commandBar)
	}

	if hints != "" {
		sections = append(sections, hints)
	}

	if statusBar != "" {
		sections = append(sections, statusBar)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
