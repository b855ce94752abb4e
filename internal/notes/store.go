package notes

import (
	"log/slog"
	"strings"
	"time"
)

// Store owns the ordered note collection and mirrors it to Persistence after
// every mutation. Newest notes come first; edits keep their position.
//
// A Store is not safe for concurrent use. Front-ends serialize access.
type Store struct {
	persist Persistence
	notes   []Note
	ids     IDGenerator
	now     func() time.Time
	logger  *slog.Logger

	saveErr error // result of the most recent persist
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used for dates and timestamp ids.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator replaces the default timestamp id generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) {
		if g != nil {
			s.ids = g
		}
	}
}

// WithLogger sets the logger for persistence failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStore creates a Store and loads the persisted collection.
func NewStore(p Persistence, opts ...Option) *Store {
	s := &Store{
		persist: p,
		now:     time.Now,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ids == nil {
		s.ids = TimestampIDs(s.now)
	}
	s.notes = p.Load()
	return s
}

// Create adds a note at the front of the collection and persists it.
// Title and body are trimmed; a blank title becomes DefaultTitle. If both
// are blank nothing changes and ErrEmptyNote is returned.
func (s *Store) Create(title, body string) (Note, error) {
	title, body, err := normalize(title, body)
	if err != nil {
		return Note{}, err
	}

	note := Note{
		ID:    s.ids.NewID(),
		Title: title,
		Body:  body,
		Date:  s.today(),
	}
	s.notes = append([]Note{note}, s.notes...)
	s.save()

	s.logger.Debug("notes: created", "id", note.ID)
	return note, nil
}

// Update replaces the title, body and date of the note with id, keeping its
// position, and persists. Validation matches Create.
func (s *Store) Update(id, title, body string) (Note, error) {
	title, body, err := normalize(title, body)
	if err != nil {
		return Note{}, err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return Note{}, ErrNotFound
	}

	s.notes[idx].Title = title
	s.notes[idx].Body = body
	s.notes[idx].Date = s.today()
	s.save()

	s.logger.Debug("notes: updated", "id", id)
	return s.notes[idx], nil
}

// Delete removes the note with id and persists. It reports whether a note was
// removed; an unknown id changes nothing and writes nothing.
func (s *Store) Delete(id string) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}

	s.notes = append(s.notes[:idx:idx], s.notes[idx+1:]...)
	s.save()

	s.logger.Debug("notes: deleted", "id", id)
	return true
}

// FindByID returns the note with id.
func (s *Store) FindByID(id string) (Note, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Note{}, false
	}
	return s.notes[idx], true
}

// List returns a copy of the collection in display order.
func (s *Store) List() []Note {
	out := make([]Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Len returns the number of notes.
func (s *Store) Len() int { return len(s.notes) }

// Reload replaces the in-memory collection with the persisted one, picking up
// writes made by other processes.
func (s *Store) Reload() {
	s.notes = s.persist.Load()
}

// SaveErr returns the error from the most recent persist, or nil.
func (s *Store) SaveErr() error { return s.saveErr }

// save writes a full snapshot. A failed write is logged and remembered; the
// in-memory collection stays authoritative.
func (s *Store) save() {
	s.saveErr = s.persist.Save(s.notes)
	if s.saveErr != nil {
		s.logger.Error("notes: persist failed", "error", s.saveErr)
	}
}

func (s *Store) indexOf(id string) int {
	for i := range s.notes {
		if s.notes[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) today() string {
	return s.now().Format(DateLayout)
}

// normalize trims the fields and applies the blank-title default. Only a note
// with both fields blank is rejected; a title-only note is valid.
func normalize(title, body string) (string, string, error) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" && body == "" {
		return "", "", ErrEmptyNote
	}
	if title == "" {
		title = DefaultTitle
	}
	return title, body, nil
}
