package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vinsly/vinsly/internal/ui"
)

func manyLines(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "line"
	}
	return strings.Join(lines, "\n")
}

func TestFullScreen_Scrolling(t *testing.T) {
	fs := NewFullScreen("code-reviewer", manyLines(100), ui.GetTheme("charm"))
	fs.SetSize(80, 20)

	down := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}
	up := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")}

	fs, _ = fs.Update(up)
	assert.Equal(t, 0, fs.scrollOffset, "cannot scroll above the top")

	fs, _ = fs.Update(down)
	assert.Equal(t, 1, fs.scrollOffset)

	fs, _ = fs.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	assert.Equal(t, fs.maxOffset(), fs.scrollOffset)

	fs, _ = fs.Update(down)
	assert.Equal(t, fs.maxOffset(), fs.scrollOffset, "cannot scroll past the end")

	fs, _ = fs.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	assert.Equal(t, 0, fs.scrollOffset)
}

func TestFullScreen_Paging(t *testing.T) {
	fs := NewFullScreen("code-reviewer", manyLines(100), ui.GetTheme("charm"))
	fs.SetSize(80, 20)

	fs, _ = fs.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 17, fs.scrollOffset)

	fs, _ = fs.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 0, fs.scrollOffset)
}

func TestFullScreen_ViewShowsTitleAndScrollInfo(t *testing.T) {
	fs := NewFullScreen("code-reviewer", manyLines(100), ui.GetTheme("charm"))
	fs.SetSize(120, 20)

	view := fs.View()
	assert.Contains(t, view, "code-reviewer")
	assert.Contains(t, view, "1-17 of 100")
}

func TestFullScreen_ShortContentHasNoScrollInfo(t *testing.T) {
	fs := NewFullScreen("short", "just one line", ui.GetTheme("charm"))
	fs.SetSize(120, 20)

	view := fs.View()
	assert.NotContains(t, view, "of 1")
}

func TestFullScreen_HighlightMarkdown(t *testing.T) {
	content := "---\nname: reviewer\n---\n# Heading\nbody text"
	fs := NewFullScreen("reviewer", content, ui.GetTheme("charm"))

	out := fs.highlightMarkdown(content)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 5)
	assert.Contains(t, lines[3], "# Heading")
	assert.Equal(t, "body text", lines[4])
}
