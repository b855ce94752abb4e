package notes

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/marcus/quicknotes/internal/kv"
)

// Persistence loads and saves the whole collection.
type Persistence interface {
	Load() []Note
	Save(notes []Note) error
}

// Persister is the Persistence backed by a kv.Store. The collection is
// stored as one JSON array under StorageKey.
type Persister struct {
	store  kv.Store
	key    string
	logger *slog.Logger
}

// NewPersister creates a Persister over store. logger may be nil.
func NewPersister(store kv.Store, logger *slog.Logger) *Persister {
	if logger == nil {
		logger = slog.Default()
	}
	return &Persister{store: store, key: StorageKey, logger: logger}
}

// Load returns the stored collection. Missing, unreadable or malformed data
// yields an empty collection; the cause is logged, never returned.
// Entries without an id are dropped and duplicate ids keep their first
// occurrence.
func (p *Persister) Load() []Note {
	raw, ok, err := p.store.Get(p.key)
	if err != nil {
		p.logger.Warn("notes: read storage failed", "key", p.key, "error", err)
		return []Note{}
	}
	if !ok || raw == "" {
		return []Note{}
	}

	var stored []Note
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		p.logger.Warn("notes: stored collection is malformed", "key", p.key, "error", err)
		return []Note{}
	}

	seen := make(map[string]bool, len(stored))
	notes := make([]Note, 0, len(stored))
	for _, n := range stored {
		if n.ID == "" || seen[n.ID] {
			p.logger.Debug("notes: dropping stored entry", "id", n.ID)
			continue
		}
		seen[n.ID] = true
		notes = append(notes, n)
	}
	return notes
}

// Save overwrites the stored value with a full snapshot of notes.
func (p *Persister) Save(notes []Note) error {
	if notes == nil {
		notes = []Note{}
	}
	data, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}
	if err := p.store.Set(p.key, string(data)); err != nil {
		return fmt.Errorf("write notes: %w", err)
	}
	return nil
}
