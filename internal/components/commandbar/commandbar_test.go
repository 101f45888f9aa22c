package commandbar

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinsly/vinsly/internal/commands"
	"github.com/vinsly/vinsly/internal/types"
	"github.com/vinsly/vinsly/internal/ui"
)

func newTestBar() *CommandBar {
	registry := commands.NewRegistry(&types.AppContext{})
	return New(registry, ui.GetTheme("charm"))
}

func keyMsg(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCommandBar_ViewHints_ShowsTipWhenHidden(t *testing.T) {
	cb := newTestBar()

	hints := cb.ViewHints()
	assert.NotEqual(t, "", hints)
	assert.Contains(t, hints, "type to filter")
}

func TestCommandBar_ViewHints_EmptyWhenActive(t *testing.T) {
	cb := newTestBar()
	cb.state = StateFilter

	assert.Equal(t, "", cb.ViewHints())
}

func TestCommandBar_TypingStartsFilter(t *testing.T) {
	cb := newTestBar()

	cb, cmd := cb.Update(keyMsg("r"))
	assert.Equal(t, StateFilter, cb.GetState())
	require.NotNil(t, cmd)

	msg := cmd()
	filterMsg, ok := msg.(types.FilterUpdateMsg)
	require.True(t, ok)
	assert.Equal(t, "r", filterMsg.Filter)
}

func TestCommandBar_ColonOpensNavigationPalette(t *testing.T) {
	cb := newTestBar()

	cb, _ = cb.Update(keyMsg(":"))
	assert.Equal(t, StateSuggestionPalette, cb.GetState())
	assert.Equal(t, CommandTypeNavigation, cb.GetInputType())
	assert.False(t, cb.palette.IsEmpty())
}

func TestCommandBar_SlashPaletteIsScreenScoped(t *testing.T) {
	cb := newTestBar()
	cb.SetScreen("projects", nil)

	cb, _ = cb.Update(keyMsg("/"))
	assert.Equal(t, StateSuggestionPalette, cb.GetState())

	// Projects screen only offers screen-agnostic actions like undo.
	for _, item := range cb.palette.items {
		assert.Empty(t, item.Screens)
	}
}

func TestCommandBar_EscClearsFilter(t *testing.T) {
	cb := newTestBar()

	cb, _ = cb.Update(keyMsg("r"))
	cb, cmd := cb.Update(keyMsg("esc"))
	assert.Equal(t, StateHidden, cb.GetState())
	require.NotNil(t, cmd)
	_, ok := cmd().(types.ClearFilterMsg)
	assert.True(t, ok)
}

func TestCommandBar_ConfirmationForDestructiveCommand(t *testing.T) {
	cb := newTestBar()
	cb.SetScreen("agents", nil)
	cb.SetSelectedItem(map[string]any{"Name": "reviewer", "Path": "/tmp/reviewer.md"})

	for _, key := range []string{"/", "d", "e", "l", "e", "t", "e"} {
		cb, _ = cb.Update(keyMsg(key))
	}
	cb, _ = cb.Update(keyMsg("enter"))

	assert.Equal(t, StateConfirmation, cb.GetState())
	assert.True(t, cb.executor.HasPending())
	assert.Contains(t, cb.View(), "Confirm Action")

	// ESC cancels without executing.
	cb, _ = cb.Update(keyMsg("esc"))
	assert.Equal(t, StateHidden, cb.GetState())
	assert.False(t, cb.executor.HasPending())
}

func TestCommandBar_HeightAccounting(t *testing.T) {
	cb := newTestBar()
	assert.Equal(t, 0, cb.GetHeight())
	assert.Equal(t, 3, cb.GetTotalHeight(), "hidden state still reserves the hints block")

	cb, _ = cb.Update(keyMsg(":"))
	assert.Greater(t, cb.GetHeight(), 2)
}

func TestCommandBar_RestoreFilter(t *testing.T) {
	cb := newTestBar()

	assert.Nil(t, cb.RestoreFilter(""))

	cmd := cb.RestoreFilter("review")
	require.NotNil(t, cmd)
	assert.Equal(t, StateFilter, cb.GetState())
	assert.Equal(t, "review", cb.GetInput())
}
