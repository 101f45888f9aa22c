package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinsly/vinsly/internal/types"
)

func newTestRegistry() *Registry {
	return NewRegistry(&types.AppContext{})
}

func TestRegistry_GetByCategory(t *testing.T) {
	registry := newTestRegistry()

	nav := registry.GetByCategory(CategoryNavigation)
	require.NotEmpty(t, nav)
	for _, cmd := range nav {
		assert.Equal(t, CategoryNavigation, cmd.Category)
	}

	actions := registry.GetByCategory(CategoryAction)
	require.NotEmpty(t, actions)
	names := make([]string, 0, len(actions))
	for _, cmd := range actions {
		names = append(names, cmd.Name)
	}
	assert.Contains(t, names, "undo")
	assert.Contains(t, names, "redo")
	assert.Contains(t, names, "delete")
}

func TestRegistry_Filter(t *testing.T) {
	registry := newTestRegistry()

	matches := registry.Filter("exp", CategoryAction)
	require.NotEmpty(t, matches)
	assert.Equal(t, "export", matches[0].Name)

	// Empty query returns every command in the category.
	all := registry.Filter("", CategoryNavigation)
	assert.Len(t, all, len(registry.GetByCategory(CategoryNavigation)))

	assert.Empty(t, registry.Filter("zzzz", CategoryAction))
}

func TestRegistry_FilterByScreen(t *testing.T) {
	registry := newTestRegistry()
	actions := registry.GetByCategory(CategoryAction)

	forProjects := registry.FilterByScreen(actions, "projects")
	for _, cmd := range forProjects {
		assert.Empty(t, cmd.Screens, "projects only gets screen-agnostic commands")
	}

	forSkills := registry.FilterByScreen(actions, "skills")
	names := make([]string, 0, len(forSkills))
	for _, cmd := range forSkills {
		names = append(names, cmd.Name)
	}
	assert.Contains(t, names, "export")
	assert.Contains(t, names, "import")
	assert.NotContains(t, names, "new-agent")
}

func TestRegistry_GetDisambiguatesByScreen(t *testing.T) {
	registry := newTestRegistry()

	agentDelete := registry.Get("delete", CategoryAction, "agents")
	require.NotNil(t, agentDelete)
	assert.Equal(t, []string{"agents"}, agentDelete.Screens)

	skillDelete := registry.Get("delete", CategoryAction, "skills")
	require.NotNil(t, skillDelete)
	assert.Equal(t, []string{"skills"}, skillDelete.Screens)

	// Screen-agnostic commands resolve regardless of the screen.
	undo := registry.Get("undo", CategoryAction, "projects")
	require.NotNil(t, undo)
	assert.Equal(t, "undo", undo.Name)

	assert.Nil(t, registry.Get("no-such-command", CategoryAction, "agents"))
}
