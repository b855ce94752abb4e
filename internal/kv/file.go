package kv

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// tempFilePrefix names the scratch files used for atomic writes.
const tempFilePrefix = ".quicknotes-tmp-"

// File stores all keys in a single JSON object on disk.
// Every Set rewrites the whole file through a temp file and rename.
type File struct {
	path string
	mu   sync.Mutex

	// digest is the xxhash of the bytes last read from or written to path.
	digest atomic.Uint64
}

// OpenFile opens (or lazily creates) the JSON file store at path.
// The parent directory is created if needed; the file itself is only
// written on the first Set.
func OpenFile(path string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("file store: empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &File{path: path}, nil
}

// Path returns the backing file path.
func (f *File) Path() string { return f.path }

// Get implements Store. A missing file reads as an empty store; a file that
// is not a JSON object is an error.
func (f *File) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.readLocked()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// Set implements Store. Unparsable existing content is replaced.
func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.readLocked()
	if err != nil {
		values = make(map[string]string)
	}
	values[key] = value

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if err := writeFileAtomic(f.path, data, 0644); err != nil {
		return err
	}
	f.digest.Store(xxhash.Sum64(data))
	return nil
}

// Close implements Store.
func (f *File) Close() error { return nil }

// Digest returns the xxhash of the content this store last read or wrote.
func (f *File) Digest() uint64 { return f.digest.Load() }

func (f *File) readLocked() (map[string]string, error) {
	values := make(map[string]string)

	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return values, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}
	f.digest.Store(xxhash.Sum64(data))

	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse store %s: %w", f.path, err)
	}
	return values, nil
}

// writeFileAtomic writes data to a temp file next to filename and renames it
// into place, so readers never observe a partial snapshot.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(filename), tempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name()) // no-op after a successful rename

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpFile.Name(), perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpFile.Name(), filename); err != nil {
		return fmt.Errorf("rename temp file to %s: %w", filename, err)
	}
	return nil
}
