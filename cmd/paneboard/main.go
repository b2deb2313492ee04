package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/paneboard/internal/app"
	"github.com/sadopc/paneboard/internal/config"
	"github.com/sadopc/paneboard/internal/core/board"
	"github.com/sadopc/paneboard/internal/core/history"
	"github.com/sadopc/paneboard/internal/logging"
	"github.com/sadopc/paneboard/pkg/version"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "init":
			initCmd()
			return
		case "validate":
			validateCmd()
			return
		case "fmt":
			fmtCmd()
			return
		case "layout":
			layoutCmd()
			return
		case "history":
			historyCmd()
			return
		case "completion":
			completionCmd()
			return
		case "version":
			fmt.Println(versionString())
			return
		case "help":
			printHelp()
			return
		}
	}
	tuiCmd()
}

func versionString() string {
	return fmt.Sprintf("paneboard %s (%s) built %s", version.Version, version.Commit, version.Date)
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `paneboard - resizable panel boards in the terminal

Usage:
  paneboard [flags]                    Launch TUI (interactive mode)
  paneboard <command> [args] [flags]   Run a subcommand

Commands:
  init        Create a new board file from a page layout
  validate    Validate board YAML files
  fmt         Format and normalize board YAML files
  layout      Print the column layout of a board for a terminal width
  history     List recent panel resizes
  completion  Generate shell completion scripts (bash, zsh, fish)
  version     Print version information
  help        Show this help message

TUI Flags:
  --board <path>      Path to a board YAML file (created on first save)
  --theme <name>      Theme name, overrides the config file
  --log-file <path>   Log file, "-" to disable
  --no-mouse          Disable mouse support
  --version           Print version and exit

Run 'paneboard <command> --help' for more information about a command.
`)
}

func tuiCmd() {
	cfg := config.Load()

	versionFlag := flag.Bool("version", false, "Print version and exit")
	boardFlag := flag.String("board", cfg.Board, "Path to a board YAML file")
	themeFlag := flag.String("theme", cfg.Theme, "Theme name")
	logFlag := flag.String("log-file", cfg.LogFile, "Log file path, \"-\" to disable")
	noMouseFlag := flag.Bool("no-mouse", !cfg.Mouse, "Disable mouse support")
	flag.Parse()

	if *versionFlag {
		fmt.Println(versionString())
		os.Exit(0)
	}

	cfg.Theme = *themeFlag
	cfg.Mouse = !*noMouseFlag

	logPath := *logFlag
	if logPath == "" {
		logPath = logging.DefaultPath()
	}
	logger, closer, err := logging.Open(logPath, logging.ParseLevel(cfg.LogLevel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	b, err := loadBoard(*boardFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading board: %v\n", err)
		os.Exit(1)
	}
	logger.Info("starting", "version", version.Version, "board", *boardFlag, "theme", cfg.Theme)

	model := app.New(b, *boardFlag, cfg, logger)
	if hs := openHistory(cfg.History, logger); hs != nil {
		defer hs.Close()
		model.SetHistory(hs)
	}
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)

	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openHistory opens the resize history, or returns nil when it is disabled
// or cannot be opened. The board is usable either way.
func openHistory(path string, logger *slog.Logger) *history.Store {
	if path == "-" {
		return nil
	}
	if path == "" {
		path = history.DefaultPath()
	}
	hs, err := history.NewStore(path)
	if err != nil {
		logger.Warn("resize history unavailable", "err", err, "path", path)
		return nil
	}
	return hs
}

// loadBoard reads the board at path. A missing file or an empty path gives
// the sample board; the file is created on the first save.
func loadBoard(path string) (*board.Board, error) {
	if path == "" {
		return board.Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return board.Default(), nil
	}
	return board.LoadFromFile(path)
}
