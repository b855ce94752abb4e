// Package notes holds the note collection: the in-memory store, its
// persistence adapter and the search filter.
package notes

import "errors"

// Note is a single user-authored record. All fields are strings so the stored
// form stays compatible with the browser widget's localStorage value.
type Note struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Date  string `json:"date"`
}

const (
	// StorageKey is the key the collection is persisted under.
	StorageKey = "quicknotes-app"

	// DefaultTitle replaces a blank title on save.
	DefaultTitle = "Untitled Note"

	// DateLayout renders creation/edit dates, e.g. "Oct 18, 2026".
	DateLayout = "Jan 2, 2006"
)

var (
	// ErrNotFound is returned when no note has the requested id.
	ErrNotFound = errors.New("note not found")

	// ErrEmptyNote is returned when both title and body are blank.
	ErrEmptyNote = errors.New("note cannot be empty")
)
