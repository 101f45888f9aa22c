package commandbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinsly/vinsly/internal/commands"
	"github.com/vinsly/vinsly/internal/types"
	"github.com/vinsly/vinsly/internal/ui"
)

func newTestPalette() *Palette {
	registry := commands.NewRegistry(&types.AppContext{})
	return NewPalette(registry, ui.GetTheme("charm"), 80)
}

func TestPalette_FilterNavigation(t *testing.T) {
	p := newTestPalette()

	p.Filter("", CommandTypeNavigation, "")
	assert.False(t, p.IsEmpty())

	p.Filter("proj", CommandTypeNavigation, "")
	require.False(t, p.IsEmpty())
	assert.Equal(t, "projects", p.items[0].Name)
}

func TestPalette_FilterActionsByScreen(t *testing.T) {
	p := newTestPalette()

	p.Filter("", CommandTypeAction, "skills")
	names := make([]string, 0, p.Size())
	for _, cmd := range p.items {
		names = append(names, cmd.Name)
	}
	assert.Contains(t, names, "export")
	assert.NotContains(t, names, "new-agent")

	p.Filter("", CommandTypeAction, "agents")
	names = names[:0]
	for _, cmd := range p.items {
		names = append(names, cmd.Name)
	}
	assert.Contains(t, names, "new-agent")
	assert.NotContains(t, names, "export")
}

func TestPalette_Navigation(t *testing.T) {
	p := newTestPalette()
	p.Filter("", CommandTypeAction, "skills")
	require.Greater(t, p.Size(), 2)

	assert.Equal(t, 0, p.index)

	p.NavigateUp()
	assert.Equal(t, 0, p.index, "up at top stays put")

	p.NavigateDown()
	assert.Equal(t, 1, p.index)

	p.NavigateUp()
	assert.Equal(t, 0, p.index)

	// Walk past the viewport to force scrolling.
	for i := 0; i < p.Size()+5; i++ {
		p.NavigateDown()
	}
	assert.Equal(t, p.Size()-1, p.index, "down at bottom stays put")
	if p.Size() > MaxPaletteItems {
		assert.Equal(t, p.Size()-MaxPaletteItems, p.scrollOffset)
	}
}

func TestPalette_GetSelected(t *testing.T) {
	p := newTestPalette()
	assert.Nil(t, p.GetSelected())

	p.Filter("", CommandTypeNavigation, "")
	selected := p.GetSelected()
	require.NotNil(t, selected)
	assert.Equal(t, p.items[0].Name, selected.Name)
}

func TestPalette_Reset(t *testing.T) {
	p := newTestPalette()
	p.Filter("", CommandTypeNavigation, "")
	require.False(t, p.IsEmpty())

	p.Reset()
	assert.True(t, p.IsEmpty())
	assert.Equal(t, 0, p.GetHeight())
}

func TestPalette_View(t *testing.T) {
	p := newTestPalette()
	p.Filter("", CommandTypeAction, "agents")

	view := p.View("/")
	assert.Contains(t, view, "/view")
	assert.Contains(t, view, "▶", "selection indicator present")
}
