// Package screens implements the list screens of the application:
// projects, agents, and skills. A single config-driven implementation
// backs all three.
package screens

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/vinsly/vinsly/internal/types"
	"github.com/vinsly/vinsly/internal/ui"
	"github.com/vinsly/vinsly/internal/workspace"
)

// ColumnConfig defines a column in the list table
type ColumnConfig struct {
	Field  string           // Field name in the item struct
	Title  string           // Column display title
	Width  int              // 0 = dynamic (fills remaining space)
	Format func(any) string // Optional custom formatter
}

// OperationConfig defines an operation shown in the help surface
type OperationConfig struct {
	ID          string
	Name        string
	Description string
	Shortcut    string
}

// FetchFunc loads the items for a screen. Project is nil when browsing
// the global scope.
type FetchFunc func(store *workspace.Store, project *workspace.Project) ([]any, error)

// NavigationFunc handles Enter key navigation for a screen
type NavigationFunc func(screen *ListScreen) tea.Cmd

// ScreenConfig defines configuration for a generic list screen
type ScreenConfig struct {
	ID           string
	Title        string
	Columns      []ColumnConfig
	SearchFields []string
	Operations   []OperationConfig
	Fetch        FetchFunc

	// Optional navigation handler (Enter key)
	NavigationHandler NavigationFunc

	// Behavior flags
	TrackSelection bool
	EnableMarks    bool
}

// ListScreen is a generic screen implementation driven by ScreenConfig
type ListScreen struct {
	config   ScreenConfig
	store    *workspace.Store
	project  *workspace.Project
	table    table.Model
	items    []any
	filtered []any
	filter   string
	marked   map[string]bool
	theme    *ui.Theme
	width    int
	height   int

	// For cursor restoration across refreshes (if enabled)
	selectedKey string
}

// NewListScreen creates a new config-driven screen
func NewListScreen(cfg ScreenConfig, store *workspace.Store, theme *ui.Theme) *ListScreen {
	columns := make([]table.Column, len(cfg.Columns))
	for i, col := range cfg.Columns {
		columns[i] = table.Column{
			Title: col.Title,
			Width: col.Width,
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(theme.ToTableStyles())

	return &ListScreen{
		config: cfg,
		store:  store,
		table:  t,
		theme:  theme,
		marked: make(map[string]bool),
	}
}

// SetProject scopes the screen to a project. Nil means global scope.
// Marks are cleared since they refer to the previous item set.
func (s *ListScreen) SetProject(project *workspace.Project) {
	s.project = project
	s.marked = make(map[string]bool)
}

// Project returns the current project scope (nil for global)
func (s *ListScreen) Project() *workspace.Project {
	return s.project
}

// Screen interface

func (s *ListScreen) ID() string {
	return s.config.ID
}

func (s *ListScreen) Title() string {
	return s.config.Title
}

func (s *ListScreen) HelpText() string {
	if s.config.EnableMarks {
		return "↑/↓: navigate • space: mark • type: filter • esc: back • ctrl+c: quit"
	}
	return "↑/↓: navigate • enter: open • type: filter • ctrl+c: quit"
}

func (s *ListScreen) Operations() []types.Operation {
	ops := make([]types.Operation, len(s.config.Operations))
	for i, opCfg := range s.config.Operations {
		ops[i] = types.Operation{
			ID:          opCfg.ID,
			Name:        opCfg.Name,
			Description: opCfg.Description,
			Shortcut:    opCfg.Shortcut,
		}
	}
	return ops
}

func (s *ListScreen) Init() tea.Cmd {
	return s.Refresh()
}

func (s *ListScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case types.RefreshScreenMsg:
		return s, s.Refresh()

	case types.RefreshCompleteMsg:
		if s.config.TrackSelection {
			s.restoreCursorPosition()
		}
		return s, nil

	case types.FilterUpdateMsg:
		s.SetFilter(msg.Filter)
		return s, nil

	case types.ClearFilterMsg:
		s.SetFilter("")
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case " ":
			if s.config.EnableMarks {
				s.ToggleMark()
				return s, nil
			}
		case "enter":
			if s.config.NavigationHandler != nil {
				return s, s.config.NavigationHandler(s)
			}
		}
		var cmd tea.Cmd
		s.table, cmd = s.table.Update(msg)
		if s.config.TrackSelection {
			s.updateSelectedKey()
		}
		return s, cmd

	case tea.WindowSizeMsg:
		s.SetSize(msg.Width, msg.Height)
		return s, nil
	}

	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	return s, cmd
}

func (s *ListScreen) View() string {
	return s.table.View()
}

// SetSize updates dimensions and recalculates dynamic column widths
func (s *ListScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.table.SetHeight(height)

	fixedTotal := 0
	dynamicCount := 0

	for _, col := range s.config.Columns {
		if col.Width > 0 {
			fixedTotal += col.Width
		} else {
			dynamicCount++
		}
	}

	// Account for cell padding: numColumns * 2
	padding := len(s.config.Columns) * 2
	dynamicWidth := 0
	if dynamicCount > 0 {
		dynamicWidth = (width - fixedTotal - padding) / dynamicCount
		if dynamicWidth < 20 {
			dynamicWidth = 20
		}
	}

	columns := make([]table.Column, len(s.config.Columns))
	for i, col := range s.config.Columns {
		w := col.Width
		if w == 0 {
			w = dynamicWidth
		}
		columns[i] = table.Column{
			Title: col.Title,
			Width: w,
		}
	}

	s.table.SetColumns(columns)
	s.table.SetWidth(width)
}

// Refresh reloads items from the workspace and updates the table
func (s *ListScreen) Refresh() tea.Cmd {
	return func() tea.Msg {
		start := time.Now()

		items, err := s.config.Fetch(s.store, s.project)
		if err != nil {
			return types.ErrorStatusMsg(fmt.Sprintf("Failed to load %s: %v", s.config.Title, err))
		}

		s.items = items
		s.pruneMarks()
		s.applyFilter()

		return types.RefreshCompleteMsg{Duration: time.Since(start)}
	}
}

// SetFilter applies a filter to the item list
func (s *ListScreen) SetFilter(filter string) {
	s.filter = filter
	s.applyFilter()
}

// GetFilter returns the active filter string
func (s *ListScreen) GetFilter() string {
	return s.filter
}

// ItemCount returns the number of items after filtering
func (s *ListScreen) ItemCount() int {
	return len(s.filtered)
}

// applyFilter filters items using fuzzy search over the configured
// search fields. A leading "!" negates the match.
func (s *ListScreen) applyFilter() {
	if s.filter == "" {
		s.filtered = s.items
	} else {
		searchStrings := make([]string, len(s.items))
		for i, item := range s.items {
			fields := []string{}
			for _, fieldName := range s.config.SearchFields {
				val := getFieldValue(item, fieldName)
				fields = append(fields, fmt.Sprint(val))
			}
			searchStrings[i] = strings.ToLower(strings.Join(fields, " "))
		}

		if strings.HasPrefix(s.filter, "!") {
			negatePattern := strings.TrimPrefix(s.filter, "!")
			matches := fuzzy.Find(negatePattern, searchStrings)
			matchSet := make(map[int]bool)
			for _, m := range matches {
				matchSet[m.Index] = true
			}

			s.filtered = make([]any, 0)
			for i, item := range s.items {
				if !matchSet[i] {
					s.filtered = append(s.filtered, item)
				}
			}
		} else {
			matches := fuzzy.Find(s.filter, searchStrings)
			s.filtered = make([]any, len(matches))
			for i, m := range matches {
				s.filtered[i] = s.items[m.Index]
			}
		}
	}

	s.updateTable()
}

// updateTable rebuilds table rows from filtered items
func (s *ListScreen) updateTable() {
	rows := make([]table.Row, len(s.filtered))

	for i, item := range s.filtered {
		row := make(table.Row, len(s.config.Columns))
		for j, col := range s.config.Columns {
			val := getFieldValue(item, col.Field)

			if col.Format != nil {
				row[j] = col.Format(val)
			} else {
				row[j] = fmt.Sprint(val)
			}
		}
		if s.marked[itemKey(item)] {
			row[0] = "● " + row[0]
		}
		rows[i] = row
	}

	s.table.SetRows(rows)

	if s.table.Cursor() >= len(rows) && len(rows) > 0 {
		s.table.SetCursor(len(rows) - 1)
	}
}

// Marks

// ToggleMark toggles the mark on the item under the cursor
func (s *ListScreen) ToggleMark() {
	cursor := s.table.Cursor()
	if cursor < 0 || cursor >= len(s.filtered) {
		return
	}

	key := itemKey(s.filtered[cursor])
	if s.marked[key] {
		delete(s.marked, key)
	} else {
		s.marked[key] = true
	}
	s.updateTable()
}

// ClearMarks removes all marks
func (s *ListScreen) ClearMarks() {
	s.marked = make(map[string]bool)
	s.updateTable()
}

// MarkedCount returns the number of marked items
func (s *ListScreen) MarkedCount() int {
	return len(s.marked)
}

// pruneMarks drops marks that no longer correspond to an item
func (s *ListScreen) pruneMarks() {
	if len(s.marked) == 0 {
		return
	}
	live := make(map[string]bool)
	for _, item := range s.items {
		key := itemKey(item)
		if s.marked[key] {
			live[key] = true
		}
	}
	s.marked = live
}

// Selection

// GetSelectedItem returns the item under the cursor as a field map
func (s *ListScreen) GetSelectedItem() map[string]any {
	cursor := s.table.Cursor()
	if cursor < 0 || cursor >= len(s.filtered) {
		return nil
	}
	return itemToMap(s.filtered[cursor])
}

// GetSelectedItems returns the marked items, or the item under the
// cursor when nothing is marked
func (s *ListScreen) GetSelectedItems() []map[string]any {
	if len(s.marked) == 0 {
		if item := s.GetSelectedItem(); item != nil {
			return []map[string]any{item}
		}
		return nil
	}

	result := make([]map[string]any, 0, len(s.marked))
	for _, item := range s.items {
		if s.marked[itemKey(item)] {
			result = append(result, itemToMap(item))
		}
	}
	return result
}

// updateSelectedKey tracks the selected item (for cursor restoration)
func (s *ListScreen) updateSelectedKey() {
	cursor := s.table.Cursor()
	if cursor >= 0 && cursor < len(s.filtered) {
		s.selectedKey = itemKey(s.filtered[cursor])
	}
}

// restoreCursorPosition restores cursor to the previously selected item
func (s *ListScreen) restoreCursorPosition() {
	if s.selectedKey == "" {
		return
	}

	for i, item := range s.filtered {
		if itemKey(item) == s.selectedKey {
			s.table.SetCursor(i)
			return
		}
	}
}

// Helpers

// getFieldValue extracts a field value from an item using reflection
func getFieldValue(obj any, fieldName string) any {
	v := reflect.ValueOf(obj)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	field := v.FieldByName(fieldName)
	if !field.IsValid() {
		return ""
	}

	return field.Interface()
}

// itemToMap converts an item struct to a field map
func itemToMap(item any) map[string]any {
	result := make(map[string]any)

	v := reflect.ValueOf(item)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		result[t.Field(i).Name] = v.Field(i).Interface()
	}

	return result
}

// itemKey generates a unique key for an item. Path is unique across all
// item types in the workspace.
func itemKey(item any) string {
	return fmt.Sprint(getFieldValue(item, "Path"))
}
