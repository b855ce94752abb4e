package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/quicknotes/internal/config"
	"github.com/marcus/quicknotes/internal/kv"
	"github.com/marcus/quicknotes/internal/modal"
	"github.com/marcus/quicknotes/internal/styles"
	"github.com/marcus/quicknotes/internal/tui"
)

const debugLogPath = "~/.local/state/quicknotes/debug.log"

// runTUI runs the terminal front-end until the user quits.
func runTUI(ctx context.Context) error {
	// Anything written to stderr would corrupt the alt screen.
	log, closeLog, err := tuiLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	styles.ApplyThemeWithOverrides(cfg.UI.Theme.Name, cfg.UI.Theme.Overrides)

	store, backing, err := openStore(log)
	if err != nil {
		return err
	}
	defer backing.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var changes <-chan struct{}
	if f, ok := backing.(*kv.File); ok && cfg.Storage.Watch {
		changes, err = f.Watch(ctx, log)
		if err != nil {
			log.Warn("storage watch disabled", "path", f.Path(), "error", err)
		}
	}

	model := tui.New(store, modal.NewController(store), tui.Options{
		CardWidth: cfg.UI.CardWidth,
		ShowHelp:  cfg.UI.ShowHelp,
		Changes:   changes,
		Logger:    log,
	})

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// tuiLogger logs to a file with --debug and discards otherwise.
func tuiLogger() (*slog.Logger, func(), error) {
	if !debugFlag {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	path := config.ExpandPath(debugLogPath)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	log := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return log, func() { f.Close() }, nil
}
