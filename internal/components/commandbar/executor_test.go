package commandbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinsly/vinsly/internal/commands"
	"github.com/vinsly/vinsly/internal/types"
	"github.com/vinsly/vinsly/internal/ui"
)

func newTestExecutor() *Executor {
	registry := commands.NewRegistry(&types.AppContext{})
	return NewExecutor(registry, ui.GetTheme("charm"), 80)
}

func TestExecutor_BuildContext(t *testing.T) {
	e := newTestExecutor()
	selected := map[string]any{"Name": "reviewer", "Path": "/tmp/reviewer.md"}

	ctx := e.BuildContext("agents", nil, selected, nil, "arg1 arg2")
	assert.Equal(t, "agents", ctx.ScreenID)
	assert.Equal(t, "reviewer", ctx.SelectedName())
	assert.Equal(t, "arg1 arg2", ctx.Args)
	assert.Nil(t, ctx.Project)
}

func TestExecutor_ExecuteUnknownCommand(t *testing.T) {
	e := newTestExecutor()
	ctx := e.BuildContext("agents", nil, nil, nil, "")

	cmd, needsConfirm := e.Execute("does-not-exist", commands.CategoryAction, ctx)
	assert.Nil(t, cmd)
	assert.False(t, needsConfirm)
}

func TestExecutor_ExecuteNavigationCommand(t *testing.T) {
	e := newTestExecutor()
	ctx := e.BuildContext("", nil, nil, nil, "")

	cmd, needsConfirm := e.Execute("projects", commands.CategoryNavigation, ctx)
	assert.False(t, needsConfirm)
	require.NotNil(t, cmd)

	msg := cmd()
	switchMsg, ok := msg.(types.ScreenSwitchMsg)
	require.True(t, ok)
	assert.Equal(t, "projects", switchMsg.ScreenID)
}

func TestExecutor_DestructiveCommandNeedsConfirmation(t *testing.T) {
	e := newTestExecutor()
	ctx := e.BuildContext("agents", nil, nil, nil, "")

	cmd, needsConfirm := e.Execute("delete", commands.CategoryAction, ctx)
	assert.Nil(t, cmd)
	assert.True(t, needsConfirm)
	assert.True(t, e.HasPending())
	assert.Equal(t, "delete", e.GetPendingCommand().Name)

	e.CancelPending()
	assert.False(t, e.HasPending())
}

func TestExecutor_ExecutePending(t *testing.T) {
	e := newTestExecutor()
	ctx := e.BuildContext("agents", nil, nil, nil, "")

	_, needsConfirm := e.Execute("delete", commands.CategoryAction, ctx)
	require.True(t, needsConfirm)

	cmd := e.ExecutePending(ctx)
	assert.NotNil(t, cmd)
	assert.False(t, e.HasPending(), "pending cleared after execution")

	assert.Nil(t, e.ExecutePending(ctx), "no pending command left")
}

func TestExecutor_ViewConfirmation(t *testing.T) {
	e := newTestExecutor()
	assert.Equal(t, "", e.ViewConfirmation())

	ctx := e.BuildContext("agents", nil, nil, nil, "")
	_, _ = e.Execute("delete", commands.CategoryAction, ctx)

	view := e.ViewConfirmation()
	assert.Contains(t, view, "Confirm Action")
	assert.Contains(t, view, "/delete")
}
