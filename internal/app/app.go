// Package app wires the screens, command bar, and undo engine into the
// root Bubble Tea model.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vinsly/vinsly/internal/commands"
	"github.com/vinsly/vinsly/internal/components"
	"github.com/vinsly/vinsly/internal/components/commandbar"
	"github.com/vinsly/vinsly/internal/keyboard"
	"github.com/vinsly/vinsly/internal/logging"
	"github.com/vinsly/vinsly/internal/screens"
	"github.com/vinsly/vinsly/internal/types"
	"github.com/vinsly/vinsly/internal/workspace"
)

// navEntry records a screen the user can navigate back to with ESC.
type navEntry struct {
	screenID string
	project  *workspace.Project
	filter   string
}

type Model struct {
	state      types.AppState
	appCtx     *types.AppContext
	registry   *types.ScreenRegistry
	current    types.Screen
	header     *components.Header
	layout     *components.Layout
	statusBar  *components.StatusBar
	commandBar *commandbar.CommandBar
	fullScreen *components.FullScreen
	keys       *keyboard.Keys
	navStack   []navEntry
	messageID  int
}

func NewModel(appCtx *types.AppContext) Model {
	cmdRegistry := commands.NewRegistry(appCtx)

	registry := types.NewScreenRegistry()
	registry.Register(screens.NewListScreen(screens.GetProjectsScreenConfig(appCtx.Config), appCtx.Store, appCtx.Theme))
	registry.Register(screens.NewListScreen(screens.GetAgentsScreenConfig(), appCtx.Store, appCtx.Theme))
	registry.Register(screens.NewListScreen(screens.GetSkillsScreenConfig(), appCtx.Store, appCtx.Theme))

	initialScreen, _ := registry.Get("projects")

	header := components.NewHeader(appCtx, "vinsly")
	header.SetScreenTitle(initialScreen.Title())
	header.SetWidth(80)

	commandBar := commandbar.New(cmdRegistry, appCtx.Theme)
	commandBar.SetWidth(80)
	commandBar.SetScreen("projects", nil)

	statusBar := components.NewStatusBar(appCtx.Theme)
	statusBar.SetWidth(80)

	layout := components.NewLayout(80, 24)

	m := Model{
		state: types.AppState{
			CurrentScreen: "projects",
			Width:         80,
			Height:        24,
		},
		appCtx:     appCtx,
		registry:   registry,
		current:    initialScreen,
		header:     header,
		layout:     layout,
		statusBar:  statusBar,
		commandBar: commandBar,
		keys:       keyboard.GetKeys(),
	}
	m.resizeScreen()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.current.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.layout.SetSize(msg.Width, msg.Height)
		m.header.SetWidth(msg.Width)
		m.commandBar.SetWidth(msg.Width)
		m.statusBar.SetWidth(msg.Width)
		if m.fullScreen != nil {
			m.fullScreen.SetSize(msg.Width, msg.Height)
		}
		m.resizeScreen()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case types.ScreenSwitchMsg:
		return m.switchScreen(msg)

	case types.RefreshScreenMsg:
		// A mutation just ran; discovery counts may be stale.
		m.appCtx.Store.InvalidateDiscoveryCache()
		return m.forwardToScreen(msg)

	case types.RefreshCompleteMsg:
		m.state.LastRefresh = time.Now()
		m.state.RefreshTime = msg.Duration
		m.header.SetLastRefresh(m.state.LastRefresh)
		model, cmd := m.forwardToScreen(msg)
		m.syncHeaderCount()
		return model, cmd

	case types.StatusMsg:
		if msg.Message == "" {
			return m, nil
		}
		m.statusBar.SetMessage(msg.Message, msg.Type)
		m.messageID++
		id := m.messageID
		return m, tea.Tick(components.StatusBarDisplayDuration, func(time.Time) tea.Msg {
			return types.ClearStatusMsg{MessageID: id}
		})

	case types.ClearStatusMsg:
		if msg.MessageID == m.messageID {
			m.statusBar.ClearMessage()
		}
		return m, nil

	case types.HistoryChangedMsg:
		// Hint text is recomputed in View; nothing else to do.
		return m, nil

	case types.ShowFullScreenMsg:
		m.fullScreen = components.NewFullScreen(msg.ItemName, msg.Content, m.appCtx.Theme)
		m.fullScreen.SetSize(m.state.Width, m.state.Height)
		return m, nil

	case types.ExitFullScreenMsg:
		m.fullScreen = nil
		return m, nil

	case types.FilterUpdateMsg:
		// Back navigation restores a filter while the bar is hidden;
		// bring the bar back in sync so ESC clears it as usual.
		if msg.Filter != "" && m.commandBar.GetState() == commandbar.StateHidden {
			_ = m.commandBar.RestoreFilter(msg.Filter)
			m.resizeScreen()
		}
		model, cmd := m.forwardToScreen(msg)
		m.syncHeaderCount()
		return model, cmd

	case types.ClearFilterMsg:
		model, cmd := m.forwardToScreen(msg)
		m.syncHeaderCount()
		return model, cmd
	}

	return m.forwardToScreen(msg)
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == m.keys.Quit {
		return m, tea.Quit
	}

	if m.fullScreen != nil {
		if key == m.keys.Back {
			m.fullScreen = nil
			return m, nil
		}
		m.fullScreen, _ = m.fullScreen.Update(msg)
		return m, nil
	}

	// Keep the command bar's selection context current before it sees
	// any input.
	if sel, ok := m.current.(types.ScreenWithSelection); ok {
		m.commandBar.SetSelectedItem(sel.GetSelectedItem())
		m.commandBar.SetSelectedItems(sel.GetSelectedItems())
	}

	state := m.commandBar.GetState()

	if state == commandbar.StateHidden {
		if handled, model, cmd := m.handleGlobalShortcut(key, msg); handled {
			return model, cmd
		}
	}

	if state == commandbar.StateFilter && m.isNavigationKey(key) {
		// Arrows still move the list while filtering.
		return m.forwardToScreen(msg)
	}

	updatedBar, barCmd := m.commandBar.Update(msg)
	m.commandBar = updatedBar
	m.resizeScreen()
	return m, barCmd
}

// handleGlobalShortcut dispatches shortcuts that work while the command
// bar is hidden. Returns handled=false for keys that should start the
// filter instead.
func (m Model) handleGlobalShortcut(key string, msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	switch key {
	case m.keys.Undo:
		cmd := m.runCommand("undo")
		return true, m, cmd
	case m.keys.Redo:
		cmd := m.runCommand("redo")
		return true, m, cmd
	case m.keys.View:
		cmd := m.runCommand("view")
		return true, m, cmd
	case m.keys.Copy:
		cmd := m.runCommand("copy")
		return true, m, cmd
	case m.keys.Delete:
		cmd := m.runCommand("delete")
		return true, m, cmd
	case m.keys.Export:
		cmd := m.runCommand("export")
		return true, m, cmd
	case m.keys.Refresh:
		m.appCtx.Store.InvalidateDiscoveryCache()
		model, cmd := m.forwardToScreen(types.RefreshScreenMsg{})
		return true, model, cmd
	case m.keys.Back:
		// An accepted filter is cleared first; back navigation only
		// fires once the bar has nothing left to dismiss.
		if m.commandBar.GetInput() == "" && len(m.navStack) > 0 {
			cmd := m.popNavigation()
			return true, m, cmd
		}
		return false, m, nil
	case m.keys.Mark, m.keys.Up, m.keys.Down, m.keys.JumpTop, m.keys.JumpBottom,
		m.keys.PageUp, m.keys.PageDown, m.keys.Enter, "up", "down":
		model, cmd := m.forwardToScreen(msg)
		return true, model, cmd
	}
	return false, m, nil
}

func (m Model) isNavigationKey(key string) bool {
	switch key {
	case "up", "down", m.keys.PageUp, m.keys.PageDown:
		return true
	}
	return false
}

// runCommand executes a named action command against the current
// selection. Destructive commands land in the confirmation state.
func (m *Model) runCommand(name string) tea.Cmd {
	updatedBar, cmd := m.commandBar.ExecuteCommand(name, commands.CategoryAction)
	m.commandBar = updatedBar
	m.resizeScreen()
	return cmd
}

func (m Model) switchScreen(msg types.ScreenSwitchMsg) (tea.Model, tea.Cmd) {
	screen, ok := m.registry.Get(msg.ScreenID)
	if !ok {
		logging.Warn("Unknown screen requested", "screen", msg.ScreenID)
		return m, nil
	}

	if msg.PushHistory && !msg.IsBackNav {
		entry := navEntry{screenID: m.state.CurrentScreen}
		if ls, isList := m.current.(*screens.ListScreen); isList {
			entry.project = ls.Project()
			entry.filter = ls.GetFilter()
		}
		m.navStack = append(m.navStack, entry)
	}

	if ls, isList := screen.(*screens.ListScreen); isList {
		ls.SetProject(msg.Project)
	}

	m.current = screen
	m.state.CurrentScreen = msg.ScreenID
	m.commandBar.SetScreen(msg.ScreenID, msg.Project)
	m.header.SetScreenTitle(screen.Title())
	m.header.SetProject(msg.Project)
	m.resizeScreen()

	return m, screen.Init()
}

// popNavigation returns to the previous screen, restoring its project
// scope and filter.
func (m *Model) popNavigation() tea.Cmd {
	entry := m.navStack[len(m.navStack)-1]
	m.navStack = m.navStack[:len(m.navStack)-1]

	cmds := []tea.Cmd{
		func() tea.Msg {
			return types.ScreenSwitchMsg{
				ScreenID:  entry.screenID,
				Project:   entry.project,
				IsBackNav: true,
			}
		},
	}
	if entry.filter != "" {
		filter := entry.filter
		cmds = append(cmds, func() tea.Msg {
			return types.FilterUpdateMsg{Filter: filter}
		})
	}
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Sequence(cmds...)
}

func (m Model) forwardToScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.current.Update(msg)
	m.current = model.(types.Screen)
	return m, cmd
}

func (m *Model) resizeScreen() {
	bodyHeight := m.layout.CalculateBodyHeight(m.commandBar.GetTotalHeight(), m.statusBar.GetHeight())
	if screenWithSize, ok := m.current.(interface{ SetSize(int, int) }); ok {
		screenWithSize.SetSize(m.state.Width, bodyHeight)
	}
}

func (m *Model) syncHeaderCount() {
	if ls, ok := m.current.(*screens.ListScreen); ok {
		m.header.SetItemCount(ls.ItemCount())
	}
}

func (m Model) View() string {
	if m.fullScreen != nil {
		return m.fullScreen.View()
	}

	undoDesc, _ := m.appCtx.History.UndoDescription()
	redoDesc, _ := m.appCtx.History.RedoDescription()
	m.statusBar.SetHistoryHint(undoDesc, redoDesc)

	return m.layout.Render(
		m.header.View(),
		m.current.View(),
		m.commandBar.ViewPaletteItems(),
		m.commandBar.View(),
		m.commandBar.ViewHints(),
		m.statusBar.View(),
	)
}
