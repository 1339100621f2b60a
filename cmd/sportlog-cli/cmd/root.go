package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"sportlog/internal/adapters/storage"
	"sportlog/internal/application/commands"
	"sportlog/internal/config"
	"sportlog/internal/domain"
	"sportlog/internal/logging"
	"sportlog/internal/ports"
)

var (
	dataPath   string
	dataFormat string
	logLevel   string

	logger *slog.Logger
	store  ports.Storage
	book   *domain.Logbook
)

var rootCmd = &cobra.Command{
	Use:   "sportlog-cli",
	Short: "CLI for a personal fitness logbook",
	Long: `sportlog-cli is a command-line interface for a personal fitness logbook
of exercises, notes and body weight entries.

It provides commands to list and filter entries, compute statistics,
add and delete entries, and maintain sport types.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		return openLogbook(cmd)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataPath, "data", "d", "", "path to the logbook (default from config or $SPORTLOG_DATA)")
	rootCmd.PersistentFlags().StringVar(&dataFormat, "format", "", "storage format: sqlite or xml (default from file extension)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	cobra.OnFinalize(closeLogbook)
}

// openLogbook resolves settings, flags overriding config, and loads the logbook
func openLogbook(cmd *cobra.Command) error {
	settings, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		settings.Data.Path = dataPath
		settings.Data.Format = config.FormatFromPath(dataPath)
	}
	if flags.Changed("format") {
		settings.Data.Format = dataFormat
	}
	if flags.Changed("log-level") {
		settings.Log.Level = logLevel
	}

	level, err := logging.ParseLevel(settings.Log.Level)
	if err != nil {
		return err
	}
	logger = logging.New(cmd.ErrOrStderr(), level)

	store, err = storage.Open(settings.Data, logger)
	if err != nil {
		return err
	}

	book, err = commands.NewLoadCommand(store, logger).Execute(cmd.Context())
	if err != nil {
		store.Close()
		store = nil
		return err
	}
	return nil
}

func closeLogbook() {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("failed to close storage", "error", err)
	}
	store, book = nil, nil
}

// GetBook returns the loaded logbook
func GetBook() *domain.Logbook {
	return book
}

// save writes the logbook back after a mutation
func save(ctx context.Context) error {
	return commands.NewSaveCommand(store, logger, book).Execute(ctx)
}
