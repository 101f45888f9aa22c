package commandbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vinsly/vinsly/internal/commands"
	"github.com/vinsly/vinsly/internal/ui"
)

// Palette manages command palette filtering, rendering, and navigation.
type Palette struct {
	items        []commands.Command
	index        int
	scrollOffset int // First visible item index
	registry     *commands.Registry
	theme        *ui.Theme
	width        int
}

// NewPalette creates a new palette manager.
func NewPalette(registry *commands.Registry, theme *ui.Theme, width int) *Palette {
	return &Palette{
		items:        []commands.Command{},
		index:        0,
		scrollOffset: 0,
		registry:     registry,
		theme:        theme,
		width:        width,
	}
}

// SetWidth updates the palette width.
func (p *Palette) SetWidth(width int) {
	p.width = width
}

// Filter filters commands by query and command type. Action commands
// are narrowed to the ones valid on the current screen.
func (p *Palette) Filter(query string, cmdType CommandType, screenID string) {
	var items []commands.Command

	switch cmdType {
	case CommandTypeNavigation:
		items = p.registry.Filter(query, commands.CategoryNavigation)

	case CommandTypeAction:
		items = p.registry.Filter(query, commands.CategoryAction)
		items = p.registry.FilterByScreen(items, screenID)
	}

	p.items = items
	p.index = 0
	p.scrollOffset = 0
}

// NavigateUp moves selection up in palette.
// Scrolls viewport if cursor moves above visible range.
func (p *Palette) NavigateUp() {
	if p.index > 0 {
		p.index--
		if p.index < p.scrollOffset {
			p.scrollOffset = p.index
		}
	}
}

// NavigateDown moves selection down in palette.
// Scrolls viewport if cursor moves below visible range.
func (p *Palette) NavigateDown() {
	if p.index < len(p.items)-1 {
		p.index++
		maxVisibleIndex := p.scrollOffset + MaxPaletteItems - 1
		if p.index > maxVisibleIndex {
			p.scrollOffset = p.index - MaxPaletteItems + 1
		}
	}
}

// GetSelected returns the currently selected command, or nil if empty.
func (p *Palette) GetSelected() *commands.Command {
	if p.index >= 0 && p.index < len(p.items) {
		return &p.items[p.index]
	}
	return nil
}

// IsEmpty returns true if palette has no items.
func (p *Palette) IsEmpty() bool {
	return len(p.items) == 0
}

// Size returns the number of items in palette.
func (p *Palette) Size() int {
	return len(p.items)
}

// Reset clears the palette.
func (p *Palette) Reset() {
	p.items = []commands.Command{}
	p.index = 0
	p.scrollOffset = 0
}

// GetHeight returns the height needed to display the palette.
// Returns 0 if palette is empty.
func (p *Palette) GetHeight() int {
	if p.IsEmpty() {
		return 0
	}

	return min(len(p.items), MaxPaletteItems)
}

// View renders the palette items with selection indicator.
func (p *Palette) View(prefix string) string {
	if p.IsEmpty() {
		return ""
	}

	sections := []string{}

	visibleCount := min(MaxPaletteItems, len(p.items)-p.scrollOffset)
	visibleEnd := p.scrollOffset + visibleCount

	// First pass: find longest description to align shortcuts
	longestMainText := 0
	for i := p.scrollOffset; i < visibleEnd; i++ {
		if length := len(p.itemText(prefix, p.items[i])); length > longestMainText {
			longestMainText = length
		}
	}

	shortcutColumn := longestMainText + 10

	selectedStyle := lipgloss.NewStyle().
		Foreground(p.theme.Foreground).
		Background(p.theme.Subtle).
		Width(p.width).
		Padding(0, 1).
		Bold(true)
	itemStyle := lipgloss.NewStyle().
		Foreground(p.theme.Foreground).
		Background(p.theme.Background).
		Width(p.width).
		Padding(0, 1)
	shortcutStyle := lipgloss.NewStyle().
		Foreground(p.theme.Dimmed)

	for i := p.scrollOffset; i < visibleEnd; i++ {
		cmd := p.items[i]
		mainText := p.itemText(prefix, cmd)

		if cmd.Shortcut != "" {
			padding := max(shortcutColumn-len(mainText), 2)
			mainText += strings.Repeat(" ", padding) + shortcutStyle.Render(cmd.Shortcut)
		}

		var line string
		if i == p.index {
			line = selectedStyle.Render("▶ " + mainText)
		} else {
			line = itemStyle.Render("  " + mainText)
		}
		sections = append(sections, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (p *Palette) itemText(prefix string, cmd commands.Command) string {
	text := prefix + cmd.Name
	if cmd.ArgPattern != "" {
		text += cmd.ArgPattern
	}
	return text + " - " + cmd.Description
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
