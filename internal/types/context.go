package types

import (
	"github.com/vinsly/vinsly/internal/config"
	"github.com/vinsly/vinsly/internal/history"
	"github.com/vinsly/vinsly/internal/ui"
	"github.com/vinsly/vinsly/internal/workspace"
)

// AppContext holds app-wide configuration and dependencies
type AppContext struct {
	Theme   *ui.Theme
	Store   *workspace.Store
	History *history.History
	Config  config.Config
}

// NewAppContext creates a new application context
func NewAppContext(
	theme *ui.Theme,
	store *workspace.Store,
	hist *history.History,
	cfg config.Config,
) *AppContext {
	return &AppContext{
		Theme:   theme,
		Store:   store,
		History: hist,
		Config:  cfg,
	}
}
