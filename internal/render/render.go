// Package render turns a note collection into a display tree that any
// front-end can draw: one "add new" card followed by one card per note.
package render

import "github.com/marcus/quicknotes/internal/notes"

// CardKind distinguishes the add affordance from note cards.
type CardKind int

const (
	CardAdd CardKind = iota
	CardNote
)

// Action names carried by note cards.
const (
	ActionAdd    = "add"
	ActionEdit   = "edit"
	ActionDelete = "delete"
)

// AddLabel is the caption of the add card.
const AddLabel = "Add New Note"

// Action is an affordance on a card, keyed by note id.
type Action struct {
	Name   string
	NoteID string
}

// Key returns a stable identifier such as "edit:1760000000000".
func (a Action) Key() string {
	if a.NoteID == "" {
		return a.Name
	}
	return a.Name + ":" + a.NoteID
}

// Card is one cell of the display. Title and Body are the raw stored text;
// drawing code must treat them as plain text.
type Card struct {
	Kind    CardKind
	NoteID  string
	Title   string
	Body    string
	Date    string
	Actions []Action
}

// Tree is the full display for one render pass.
type Tree struct {
	Cards []Card
}

// Render builds the display for notes in collection order. It is rebuilt from
// scratch on every call.
func Render(collection []notes.Note) Tree {
	cards := make([]Card, 0, len(collection)+1)
	cards = append(cards, Card{
		Kind:    CardAdd,
		Title:   AddLabel,
		Actions: []Action{{Name: ActionAdd}},
	})

	for _, n := range collection {
		cards = append(cards, Card{
			Kind:   CardNote,
			NoteID: n.ID,
			Title:  n.Title,
			Body:   n.Body,
			Date:   n.Date,
			Actions: []Action{
				{Name: ActionEdit, NoteID: n.ID},
				{Name: ActionDelete, NoteID: n.ID},
			},
		})
	}
	return Tree{Cards: cards}
}

// Notes returns just the note cards.
func (t Tree) Notes() []Card {
	if len(t.Cards) == 0 {
		return nil
	}
	return t.Cards[1:]
}
