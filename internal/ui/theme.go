package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme and styles for the TUI
type Theme struct {
	Name string

	// Core colors
	Primary    lipgloss.AdaptiveColor
	Secondary  lipgloss.AdaptiveColor
	Accent     lipgloss.AdaptiveColor
	Foreground lipgloss.AdaptiveColor
	Muted      lipgloss.AdaptiveColor
	Error      lipgloss.AdaptiveColor
	Success    lipgloss.AdaptiveColor
	Warning    lipgloss.AdaptiveColor

	// UI element colors
	Border     lipgloss.AdaptiveColor // Separator lines, borders
	Dimmed     lipgloss.AdaptiveColor // Very subtle text (shortcuts)
	Subtle     lipgloss.AdaptiveColor // Subtle UI elements
	Background lipgloss.AdaptiveColor // Background for overlays

	// Component styles
	Table     TableStyles
	AppTitle  lipgloss.Style // App title with background
	Header    lipgloss.Style
	StatusBar lipgloss.Style
}

// TableStyles defines styles for table components
type TableStyles struct {
	Header      lipgloss.Style
	Cell        lipgloss.Style
	SelectedRow lipgloss.Style
	Global      lipgloss.Style
	Project     lipgloss.Style
	Marked      lipgloss.Style
}

// ToTableStyles converts Theme.Table to bubbles table.Styles
func (t *Theme) ToTableStyles() table.Styles {
	return table.Styles{
		Header:   t.Table.Header,
		Cell:     t.Table.Cell,
		Selected: t.Table.SelectedRow,
	}
}

// finish fills in the component styles shared by every theme.
func (t *Theme) finish(titleBackground, selectedFg, selectedBg string) *Theme {
	t.Table.Header = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		BorderBottom(true).
		Foreground(t.Primary).
		Bold(true).
		PaddingLeft(1).
		PaddingRight(1)

	t.Table.Cell = lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	t.Table.SelectedRow = lipgloss.NewStyle().
		Foreground(lipgloss.Color(selectedFg)).
		Background(lipgloss.Color(selectedBg)).
		Bold(false)

	t.Table.Global = lipgloss.NewStyle().Foreground(t.Secondary)
	t.Table.Project = lipgloss.NewStyle().Foreground(t.Accent)
	t.Table.Marked = lipgloss.NewStyle().Foreground(t.Warning)

	t.AppTitle = lipgloss.NewStyle().
		Foreground(t.Primary).
		Background(lipgloss.Color(titleBackground)).
		Bold(true)

	t.Header = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(t.Muted)

	return t
}

// ThemeCharm returns the default Charm theme
func ThemeCharm() *Theme {
	t := &Theme{Name: "charm"}

	t.Primary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	t.Secondary = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	t.Accent = lipgloss.AdaptiveColor{Light: "#F780E2", Dark: "#F780E2"}
	t.Foreground = lipgloss.AdaptiveColor{Light: "235", Dark: "252"}
	t.Muted = lipgloss.AdaptiveColor{Light: "243", Dark: "243"}
	t.Error = lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#ED567A"}
	t.Success = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	t.Warning = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFAA00"}

	t.Border = lipgloss.AdaptiveColor{Light: "240", Dark: "240"}
	t.Dimmed = lipgloss.AdaptiveColor{Light: "243", Dark: "243"}
	t.Subtle = lipgloss.AdaptiveColor{Light: "241", Dark: "241"}
	t.Background = lipgloss.AdaptiveColor{Light: "254", Dark: "235"}

	return t.finish("235", "229", "57")
}

// ThemeDracula returns a Dracula-inspired theme
func ThemeDracula() *Theme {
	t := &Theme{Name: "dracula"}

	t.Primary = lipgloss.AdaptiveColor{Light: "#bd93f9", Dark: "#bd93f9"}
	t.Secondary = lipgloss.AdaptiveColor{Light: "#8be9fd", Dark: "#8be9fd"}
	t.Accent = lipgloss.AdaptiveColor{Light: "#ff79c6", Dark: "#ff79c6"}
	t.Foreground = lipgloss.AdaptiveColor{Light: "#282a36", Dark: "#f8f8f2"}
	t.Muted = lipgloss.AdaptiveColor{Light: "#6272a4", Dark: "#6272a4"}
	t.Error = lipgloss.AdaptiveColor{Light: "#ff5555", Dark: "#ff5555"}
	t.Success = lipgloss.AdaptiveColor{Light: "#50fa7b", Dark: "#50fa7b"}
	t.Warning = lipgloss.AdaptiveColor{Light: "#f1fa8c", Dark: "#f1fa8c"}

	t.Border = lipgloss.AdaptiveColor{Light: "61", Dark: "61"}
	t.Dimmed = lipgloss.AdaptiveColor{Light: "#6272a4", Dark: "#6272a4"}
	t.Subtle = lipgloss.AdaptiveColor{Light: "#44475a", Dark: "#44475a"}
	t.Background = lipgloss.AdaptiveColor{Light: "#f8f8f2", Dark: "#282a36"}

	return t.finish("#44475a", "#282a36", "#bd93f9")
}

// ThemeNord returns a Nord-inspired theme
// Cool, muted blues and grays with Scandinavian aesthetics
func ThemeNord() *Theme {
	t := &Theme{Name: "nord"}

	t.Primary = lipgloss.AdaptiveColor{Light: "#5e81ac", Dark: "#88c0d0"}
	t.Secondary = lipgloss.AdaptiveColor{Light: "#81a1c1", Dark: "#81a1c1"}
	t.Accent = lipgloss.AdaptiveColor{Light: "#b48ead", Dark: "#b48ead"}
	t.Foreground = lipgloss.AdaptiveColor{Light: "#2e3440", Dark: "#eceff4"}
	t.Muted = lipgloss.AdaptiveColor{Light: "#4c566a", Dark: "#4c566a"}
	t.Error = lipgloss.AdaptiveColor{Light: "#bf616a", Dark: "#bf616a"}
	t.Success = lipgloss.AdaptiveColor{Light: "#a3be8c", Dark: "#a3be8c"}
	t.Warning = lipgloss.AdaptiveColor{Light: "#ebcb8b", Dark: "#ebcb8b"}

	t.Border = lipgloss.AdaptiveColor{Light: "#d8dee9", Dark: "#3b4252"}
	t.Dimmed = lipgloss.AdaptiveColor{Light: "#4c566a", Dark: "#4c566a"}
	t.Subtle = lipgloss.AdaptiveColor{Light: "#434c5e", Dark: "#434c5e"}
	t.Background = lipgloss.AdaptiveColor{Light: "#eceff4", Dark: "#2e3440"}

	return t.finish("#3b4252", "#2e3440", "#88c0d0")
}

// ThemeGruvbox returns a Gruvbox-inspired theme
// Warm, retro colors with brown/orange/yellow palette
func ThemeGruvbox() *Theme {
	t := &Theme{Name: "gruvbox"}

	t.Primary = lipgloss.AdaptiveColor{Light: "#af3a03", Dark: "#fe8019"}
	t.Secondary = lipgloss.AdaptiveColor{Light: "#79740e", Dark: "#b8bb26"}
	t.Accent = lipgloss.AdaptiveColor{Light: "#b16286", Dark: "#d3869b"}
	t.Foreground = lipgloss.AdaptiveColor{Light: "#3c3836", Dark: "#ebdbb2"}
	t.Muted = lipgloss.AdaptiveColor{Light: "#7c6f64", Dark: "#928374"}
	t.Error = lipgloss.AdaptiveColor{Light: "#9d0006", Dark: "#fb4934"}
	t.Success = lipgloss.AdaptiveColor{Light: "#79740e", Dark: "#b8bb26"}
	t.Warning = lipgloss.AdaptiveColor{Light: "#b57614", Dark: "#fabd2f"}

	t.Border = lipgloss.AdaptiveColor{Light: "#d5c4a1", Dark: "#504945"}
	t.Dimmed = lipgloss.AdaptiveColor{Light: "#7c6f64", Dark: "#928374"}
	t.Subtle = lipgloss.AdaptiveColor{Light: "#665c54", Dark: "#665c54"}
	t.Background = lipgloss.AdaptiveColor{Light: "#fbf1c7", Dark: "#282828"}

	return t.finish("#3c3836", "#282828", "#fe8019")
}

// GetTheme returns a theme by name, defaulting to Charm
func GetTheme(name string) *Theme {
	switch name {
	case "dracula":
		return ThemeDracula()
	case "nord":
		return ThemeNord()
	case "gruvbox":
		return ThemeGruvbox()
	default:
		return ThemeCharm()
	}
}

// AvailableThemes returns a list of available theme names
func AvailableThemes() []string {
	return []string{"charm", "dracula", "nord", "gruvbox"}
}
