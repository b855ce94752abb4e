package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/marcus/quicknotes/internal/kv"
	"github.com/marcus/quicknotes/internal/notes"
)

// openStore opens the configured backend and loads the note collection.
// The caller closes the returned kv.Store.
func openStore(log *slog.Logger) (*notes.Store, kv.Store, error) {
	backing, err := kv.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s store: %w", cfg.Storage.Backend, err)
	}

	ids, err := notes.NewIDGenerator(cfg.Notes.IDScheme, time.Now)
	if err != nil {
		backing.Close()
		return nil, nil, err
	}

	store := notes.NewStore(
		notes.NewPersister(backing, log),
		notes.WithIDGenerator(ids),
		notes.WithLogger(log),
	)
	log.Debug("opened store", "backend", cfg.Storage.Backend, "path", cfg.Storage.Path, "notes", store.Len())
	return store, backing, nil
}
