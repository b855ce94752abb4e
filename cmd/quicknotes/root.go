package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/marcus/quicknotes/internal/config"
	"github.com/spf13/cobra"
)

var (
	configPath string
	storePath  string
	backend    string
	debugFlag  bool

	cfg    *config.Config
	logger *slog.Logger
)

// rootCmd runs the terminal UI when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "quicknotes",
	Short: "Create, edit, search and delete short notes",
	Long: `quicknotes keeps short notes in a local store.

Run without arguments for the terminal UI, "quicknotes serve" for a local
web page, or use the list/add/edit/rm subcommands from scripts.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if debugFlag {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)

		if err := config.LoadDotEnv(); err != nil {
			logger.Warn("ignoring .env", "error", err)
		}

		loaded, err := loadConfig(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if storePath != "" {
			loaded.Storage.Path = config.ExpandPath(storePath)
		}
		if backend != "" {
			loaded.Storage.Backend = backend
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.Context())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default ~/.config/quicknotes/config.json)")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "path to the notes store")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "storage backend: file, sqlite, sqlite-pure, memory")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
}
