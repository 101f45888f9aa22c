package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vinsly/vinsly/internal/app"
	"github.com/vinsly/vinsly/internal/config"
	"github.com/vinsly/vinsly/internal/history"
	"github.com/vinsly/vinsly/internal/logging"
	"github.com/vinsly/vinsly/internal/types"
	"github.com/vinsly/vinsly/internal/ui"
	"github.com/vinsly/vinsly/internal/workspace"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Flags take precedence over the environment
	themeFlag := flag.String("theme", cfg.Theme, "Color theme (charm, dracula, nord, gruvbox)")
	rootFlag := flag.String("root", cfg.RootDir, "Directory scanned for projects (default: home directory)")
	depthFlag := flag.Int("depth", cfg.ScanDepth, "Maximum project scan depth")
	protectedFlag := flag.Bool("include-protected", cfg.IncludeProtected, "Scan macOS-protected directories too")
	historyFlag := flag.Int("history-size", cfg.HistorySize, "Maximum number of undoable operations kept")
	logFileFlag := flag.String("log-file", cfg.LogFile, "Log file path (empty = logging disabled)")
	logLevelFlag := flag.String("log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	logFormatFlag := flag.String("log-format", cfg.LogFormat, "Log format (text, json)")
	flag.Parse()

	cfg.Theme = *themeFlag
	cfg.RootDir = *rootFlag
	cfg.ScanDepth = *depthFlag
	cfg.IncludeProtected = *protectedFlag
	cfg.HistorySize = *historyFlag
	cfg.LogFile = *logFileFlag
	cfg.LogLevel = *logLevelFlag
	cfg.LogFormat = *logFormatFlag

	// The TUI owns the terminal; logs go to a file or nowhere.
	if err := logging.Init(logging.Config{
		FilePath: cfg.LogFile,
		Level:    logging.ParseLevel(cfg.LogLevel),
		Format:   logging.ParseFormat(cfg.LogFormat),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}

	home := cfg.RootDir
	if home == "" {
		home, err = os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving home directory: %v\n", err)
			os.Exit(1)
		}
	}

	store, err := workspace.NewStore(home)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening workspace: %v\n", err)
		os.Exit(1)
	}

	// The observer fires after each completed operation so the status
	// bar hint stays current even for operations that finish
	// asynchronously.
	var program *tea.Program
	hist := history.New(
		history.WithMaxStackSize(cfg.HistorySize),
		history.WithOnStackChange(func() {
			if program != nil {
				program.Send(types.HistoryChangedMsg{})
			}
		}),
	)

	theme := ui.GetTheme(cfg.Theme)
	appCtx := types.NewAppContext(theme, store, hist, cfg)

	model := app.NewModel(appCtx)

	program = tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logging.Info("Starting vinsly", "root", home, "theme", cfg.Theme, "history_size", cfg.HistorySize)

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
