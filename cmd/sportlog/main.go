package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sportlog/internal/adapters/editor"
	"sportlog/internal/adapters/launcher"
	"sportlog/internal/adapters/storage"
	"sportlog/internal/adapters/tui"
	"sportlog/internal/application/commands"
	"sportlog/internal/config"
	"sportlog/internal/domain"
	"sportlog/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Load()
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(settings.Log.Level)
	if err != nil {
		return err
	}
	logFile, err := config.ExpandHome(settings.Log.File)
	if err != nil {
		return err
	}
	// the terminal belongs to the TUI, so logs go to a file
	logger, closeLog, err := logging.NewFile(logFile, level)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(settings.Data, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	book, err := commands.NewLoadCommand(store, logger).Execute(context.Background())
	if err != nil {
		return err
	}

	dataPath, err := config.ExpandHome(settings.Data.Path)
	if err != nil {
		return err
	}
	hrm := launcher.NewLauncher(filepath.Dir(dataPath))

	app := tui.NewApp(book, store, editor.NewOpener(), hrm, logger, domain.NewDefaultFilter(time.Now()))
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
