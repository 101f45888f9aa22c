package components

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vinsly/vinsly/internal/types"
	"github.com/vinsly/vinsly/internal/ui"
	"github.com/vinsly/vinsly/internal/workspace"
)

func newTestHeader() *Header {
	ctx := &types.AppContext{Theme: ui.GetTheme("charm")}
	return NewHeader(ctx, "vinsly")
}

func TestHeader_AppNameWhenEmpty(t *testing.T) {
	h := newTestHeader()
	h.SetWidth(80)

	assert.Contains(t, h.View(), "vinsly")
}

func TestHeader_ScreenAndProject(t *testing.T) {
	h := newTestHeader()
	h.SetWidth(120)
	h.SetScreenTitle("Agents")
	h.SetProject(&workspace.Project{Name: "my-app", Path: "/home/u/my-app"})
	h.SetItemCount(12)

	view := h.View()
	assert.Contains(t, view, "Agents")
	assert.Contains(t, view, "project: my-app")
	assert.Contains(t, view, "12 items")
	assert.NotContains(t, view, "vinsly")
}

func TestHeader_LastRefresh(t *testing.T) {
	h := newTestHeader()
	h.SetWidth(120)
	h.SetScreenTitle("Skills")
	h.SetLastRefresh(time.Now().Add(-5 * time.Second))

	assert.Contains(t, h.View(), "Last refresh: 5s ago")
}
