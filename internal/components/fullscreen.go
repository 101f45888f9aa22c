package components

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vinsly/vinsly/internal/ui"
)

// FullScreen displays agent or skill markdown in full-screen mode with
// scrolling.
type FullScreen struct {
	itemName     string
	content      string
	width        int
	height       int
	theme        *ui.Theme
	scrollOffset int
}

// NewFullScreen creates a new full-screen component
func NewFullScreen(itemName string, content string, theme *ui.Theme) *FullScreen {
	return &FullScreen{
		itemName:     itemName,
		content:      content,
		width:        80,
		height:       24,
		theme:        theme,
		scrollOffset: 0,
	}
}

// SetSize updates the size of the full-screen view
func (fs *FullScreen) SetSize(width, height int) {
	fs.width = width
	fs.height = height
}

func (fs *FullScreen) maxOffset() int {
	lines := strings.Split(fs.content, "\n")
	maxOffset := len(lines) - (fs.height - FullScreenReservedLines)
	if maxOffset < 0 {
		maxOffset = 0
	}
	return maxOffset
}

// Update handles input for the full-screen view
func (fs *FullScreen) Update(msg tea.Msg) (*FullScreen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if fs.scrollOffset > 0 {
				fs.scrollOffset--
			}
			return fs, nil
		case "down", "j":
			if fs.scrollOffset < fs.maxOffset() {
				fs.scrollOffset++
			}
			return fs, nil
		case "pgup", "ctrl+b":
			fs.scrollOffset -= fs.height - FullScreenReservedLines
			if fs.scrollOffset < 0 {
				fs.scrollOffset = 0
			}
			return fs, nil
		case "pgdown", "ctrl+f":
			fs.scrollOffset += fs.height - FullScreenReservedLines
			if fs.scrollOffset > fs.maxOffset() {
				fs.scrollOffset = fs.maxOffset()
			}
			return fs, nil
		case "home", "g":
			fs.scrollOffset = 0
			return fs, nil
		case "end", "G":
			fs.scrollOffset = fs.maxOffset()
			return fs, nil
		}
	}
	return fs, nil
}

// View renders the full-screen view
func (fs *FullScreen) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(fs.theme.Primary).
		Bold(true)

	hintStyle := lipgloss.NewStyle().
		Foreground(fs.theme.Muted)

	title := titleStyle.Render(fs.itemName)
	hint := hintStyle.Render("[ESC] Back  [↑↓/jk] Scroll  [PgUp/PgDn] Page  [g/G] Top/Bottom")

	headerLine := lipgloss.JoinHorizontal(
		lipgloss.Top,
		title,
		strings.Repeat(" ", max(0, fs.width-lipgloss.Width(title)-lipgloss.Width(hint))),
		hint,
	)

	separatorStyle := lipgloss.NewStyle().Foreground(fs.theme.Border)
	separator := separatorStyle.Render(strings.Repeat("─", fs.width))

	displayContent := fs.highlightMarkdown(fs.content)

	// Apply scroll offset to the highlighted lines
	lines := strings.Split(displayContent, "\n")
	visibleHeight := fs.height - FullScreenReservedLines

	var visibleLines []string
	for i := fs.scrollOffset; i < len(lines) && i < fs.scrollOffset+visibleHeight; i++ {
		visibleLines = append(visibleLines, lines[i])
	}

	// Pad with empty lines if content is shorter than viewport
	for len(visibleLines) < visibleHeight {
		visibleLines = append(visibleLines, "")
	}

	content := strings.Join(visibleLines, "\n")

	scrollInfo := ""
	if len(lines) > visibleHeight {
		scrollInfo = hintStyle.Render(
			"  " + strconv.Itoa(fs.scrollOffset+1) + "-" +
				strconv.Itoa(min(fs.scrollOffset+visibleHeight, len(lines))) +
				" of " + strconv.Itoa(len(lines)),
		)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		headerLine,
		separator,
		content,
		scrollInfo,
	)
}

// highlightMarkdown applies lightweight highlighting to markdown content:
// headings, frontmatter delimiters, and frontmatter keys.
func (fs *FullScreen) highlightMarkdown(markdown string) string {
	lines := strings.Split(markdown, "\n")

	headingStyle := lipgloss.NewStyle().Foreground(fs.theme.Primary).Bold(true)
	delimiterStyle := lipgloss.NewStyle().Foreground(fs.theme.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(fs.theme.Secondary)

	inFrontmatter := false
	var highlighted []string
	for i, line := range lines {
		if line == "---" && (i == 0 || inFrontmatter) {
			inFrontmatter = !inFrontmatter
			highlighted = append(highlighted, delimiterStyle.Render(line))
			continue
		}

		if inFrontmatter {
			if idx := strings.Index(line, ":"); idx > 0 {
				highlighted = append(highlighted,
					keyStyle.Render(line[:idx+1])+line[idx+1:])
				continue
			}
			highlighted = append(highlighted, line)
			continue
		}

		if strings.HasPrefix(line, "#") {
			highlighted = append(highlighted, headingStyle.Render(line))
			continue
		}

		highlighted = append(highlighted, line)
	}

	return strings.Join(highlighted, "\n")
}
