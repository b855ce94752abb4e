// Package modal implements the add/edit form state machine shared by every
// front-end.
package modal

import (
	"errors"
	"fmt"

	"github.com/marcus/quicknotes/internal/notes"
)

// State is the controller's mode.
type State int

const (
	Closed State = iota
	Adding
	Editing
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Adding:
		return "adding"
	case Editing:
		return "editing"
	default:
		return "closed"
	}
}

// EmptyNoteMessage is shown when a save is rejected for having no content.
const EmptyNoteMessage = "Note cannot be empty!"

// ErrUnknownNote is returned by OpenEdit when the id is not in the store.
var ErrUnknownNote = errors.New("modal: no note with that id")

// NoteStore is the part of notes.Store the controller drives.
type NoteStore interface {
	Create(title, body string) (notes.Note, error)
	Update(id, title, body string) (notes.Note, error)
	FindByID(id string) (notes.Note, bool)
}

// Controller holds the modal state and its transient form values. Nothing
// here is persisted; only a successful Save reaches the store.
type Controller struct {
	store NoteStore

	state   State
	editID  string
	title   string
	body    string
	message string
}

// NewController creates a closed controller over store.
func NewController(store NoteStore) *Controller {
	return &Controller{store: store}
}

// OpenAdd enters Adding with empty fields.
func (c *Controller) OpenAdd() {
	c.state = Adding
	c.editID = ""
	c.title = ""
	c.body = ""
	c.message = ""
}

// OpenEdit enters Editing(id) with the fields pre-filled from the note.
// An unknown id leaves the controller untouched.
func (c *Controller) OpenEdit(id string) error {
	note, ok := c.store.FindByID(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownNote, id)
	}
	c.state = Editing
	c.editID = id
	c.title = note.Title
	c.body = note.Body
	c.message = ""
	return nil
}

// Save commits the form. In Adding it creates a note, in Editing it updates
// the note being edited; either way the modal then closes.
//
// When both fields are blank the save is rejected with notes.ErrEmptyNote:
// the state and fields are kept and Message reports the problem. An edit
// whose note vanished in the meantime closes without error. Save while
// Closed does nothing.
func (c *Controller) Save() (notes.Note, error) {
	var (
		note notes.Note
		err  error
	)

	switch c.state {
	case Adding:
		note, err = c.store.Create(c.title, c.body)
	case Editing:
		note, err = c.store.Update(c.editID, c.title, c.body)
		if errors.Is(err, notes.ErrNotFound) {
			c.close()
			return notes.Note{}, nil
		}
	default:
		return notes.Note{}, nil
	}

	if errors.Is(err, notes.ErrEmptyNote) {
		c.message = EmptyNoteMessage
		return notes.Note{}, err
	}
	if err != nil {
		return notes.Note{}, err
	}

	c.close()
	return note, nil
}

// Cancel closes the modal and discards unsaved input.
func (c *Controller) Cancel() { c.close() }

// Dismiss handles a pointer gesture while the modal is open. Gestures outside
// the form close it; gestures inside are ignored.
func (c *Controller) Dismiss(inside bool) {
	if !inside {
		c.close()
	}
}

// SetTitle updates the title field.
func (c *Controller) SetTitle(s string) { c.title = s }

// SetBody updates the body field.
func (c *Controller) SetBody(s string) { c.body = s }

// Title returns the title field.
func (c *Controller) Title() string { return c.title }

// Body returns the body field.
func (c *Controller) Body() string { return c.body }

// State returns the current mode.
func (c *Controller) State() State { return c.state }

// IsOpen reports whether the modal is showing.
func (c *Controller) IsOpen() bool { return c.state != Closed }

// EditingID returns the id being edited, or "" outside Editing.
func (c *Controller) EditingID() string { return c.editID }

// Message returns the current validation message, if any.
func (c *Controller) Message() string { return c.message }

// Heading is the modal caption for the current mode.
func (c *Controller) Heading() string {
	if c.state == Editing {
		return "Edit Note"
	}
	return "Add Note"
}

func (c *Controller) close() {
	c.state = Closed
	c.editID = ""
	c.title = ""
	c.body = ""
	c.message = ""
}
