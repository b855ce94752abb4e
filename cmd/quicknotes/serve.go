package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/marcus/quicknotes/internal/kv"
	"github.com/marcus/quicknotes/internal/modal"
	"github.com/marcus/quicknotes/internal/web"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the notes as a web page on localhost",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		addr := cfg.Server.Addr
		if cmd.Flags().Changed("addr") {
			addr = serveAddr
		}

		store, backing, err := openStore(logger)
		if err != nil {
			return err
		}
		defer backing.Close()

		srv := web.New(store, modal.NewController(store),
			web.WithLogger(logger),
			web.WithAccessLog(os.Stderr),
		)

		if f, ok := backing.(*kv.File); ok && cfg.Storage.Watch {
			changes, err := f.Watch(ctx, logger)
			if err != nil {
				logger.Warn("storage watch disabled", "path", f.Path(), "error", err)
			} else {
				go func() {
					for range changes {
						srv.Reload()
					}
				}()
			}
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("serving notes", "addr", "http://"+addr, "backend", cfg.Storage.Backend)
			errCh <- srv.Listen(addr)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		logger.Info("shutting down")
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		if err := srv.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, 127.0.0.1:7070)")
}
