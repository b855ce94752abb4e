// Package kv provides the local key-value stores that back note persistence.
package kv

import (
	"errors"
	"fmt"
)

// Store is a flat string key-value store. Values are overwritten whole.
type Store interface {
	// Get returns the value for key. ok is false when the key has never been set.
	Get(key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile       = "file"
	BackendSQLite     = "sqlite"      // mattn/go-sqlite3 (cgo)
	BackendSQLitePure = "sqlite-pure" // modernc.org/sqlite
	BackendMemory     = "memory"
)

// ErrUnknownBackend is returned by Open for an unrecognised backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Open returns the store for backend rooted at path.
// An empty backend selects the JSON file store.
func Open(backend, path string) (Store, error) {
	switch backend {
	case "", BackendFile:
		return OpenFile(path)
	case BackendSQLite:
		return OpenSQLite(driverMattn, path)
	case BackendSQLitePure:
		return OpenSQLite(driverModernc, path)
	case BackendMemory:
		return NewMemory(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}

// Backends lists every backend name Open understands.
func Backends() []string {
	return []string{BackendFile, BackendSQLite, BackendSQLitePure, BackendMemory}
}
