package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/quicknotes/internal/kv"
	"github.com/marcus/quicknotes/internal/modal"
	"github.com/marcus/quicknotes/internal/notes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, initial ...notes.Note) (Model, *notes.Store, *[]string) {
	t.Helper()
	backing := kv.NewMemory()
	if len(initial) > 0 {
		require.NoError(t, notes.NewPersister(backing, nil).Save(initial))
	}
	store := notes.NewStore(notes.NewPersister(backing, nil))

	var copied []string
	m := New(store, modal.NewController(store), Options{
		Clipboard: func(s string) error {
			copied = append(copied, s)
			return nil
		},
	})
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, store, &copied
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		m = update(t, m, k)
	}
	return m
}

var (
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keySave  = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func TestAddNoteThroughForm(t *testing.T) {
	m, store, _ := newTestModel(t)

	m = press(t, m, runes("n"))
	require.True(t, m.form.IsOpen())
	assert.Equal(t, modal.Adding, m.form.State())

	m = press(t, m, runes("Groceries"), keyTab, runes("Milk"), keySave)

	assert.False(t, m.form.IsOpen())
	list := store.List()
	require.Len(t, list, 1)
	assert.Equal(t, "Groceries", list[0].Title)
	assert.Equal(t, "Milk", list[0].Body)
	assert.Equal(t, 1, m.selected, "new note should be selected")
	assert.Equal(t, "Note added", m.statusMsg)
}

func TestEmptyFormShowsMessage(t *testing.T) {
	m, store, _ := newTestModel(t)

	m = press(t, m, runes("n"), runes("   "), keySave)

	assert.True(t, m.form.IsOpen())
	assert.Equal(t, modal.EmptyNoteMessage, m.form.Message())
	assert.Contains(t, ansi.Strip(m.View()), modal.EmptyNoteMessage)
	assert.Equal(t, 0, store.Len())
}

func TestEnterInTitleMovesToBody(t *testing.T) {
	m, store, _ := newTestModel(t)

	m = press(t, m, runes("n"), runes("T"), keyEnter, runes("B"), keySave)

	require.Equal(t, 1, store.Len())
	got := store.List()[0]
	assert.Equal(t, "T", got.Title)
	assert.Equal(t, "B", got.Body)
}

func TestEditSelectedNote(t *testing.T) {
	m, store, _ := newTestModel(t,
		notes.Note{ID: "1", Title: "first", Body: "a", Date: "Jan 1, 2026"},
		notes.Note{ID: "2", Title: "second", Body: "b", Date: "Jan 1, 2026"},
	)

	// Add card, then the first note.
	m = press(t, m, runes("l"), runes("e"))
	require.Equal(t, modal.Editing, m.form.State())
	assert.Equal(t, "1", m.form.EditingID())
	assert.Equal(t, "first", m.titleInput.Value())

	m = press(t, m, runes(" edited"), keySave)

	got, ok := store.FindByID("1")
	require.True(t, ok)
	assert.Equal(t, "first edited", got.Title)
	assert.Equal(t, "1", store.List()[0].ID, "edit keeps position")
	assert.Equal(t, "Note updated", m.statusMsg)
}

func TestEnterOnAddCardOpensAdd(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = press(t, m, keyEnter)
	assert.Equal(t, modal.Adding, m.form.State())
	assert.Contains(t, ansi.Strip(m.View()), "Add Note")
}

func TestCancelDiscardsInput(t *testing.T) {
	m, store, _ := newTestModel(t)

	m = press(t, m, runes("n"), runes("draft"), keyEsc)

	assert.False(t, m.form.IsOpen())
	assert.Equal(t, 0, store.Len())
	assert.Empty(t, m.titleInput.Value())
}

func TestDeleteWithConfirm(t *testing.T) {
	m, store, _ := newTestModel(t,
		notes.Note{ID: "1", Title: "keep"},
		notes.Note{ID: "2", Title: "drop"},
	)

	m = press(t, m, runes("l"), runes("l"), runes("d"))
	require.NotNil(t, m.confirm)
	assert.Contains(t, ansi.Strip(m.View()), "Delete note?")

	m = press(t, m, runes("n"))
	assert.Nil(t, m.confirm)
	assert.Equal(t, 2, store.Len(), "declined delete keeps the note")

	m = press(t, m, runes("x"), runes("y"))
	assert.Nil(t, m.confirm)
	require.Equal(t, 1, store.Len())
	assert.Equal(t, "1", store.List()[0].ID)
	assert.Equal(t, 1, m.selected, "selection clamps to the remaining card")
}

func TestDeleteIgnoredOnAddCard(t *testing.T) {
	m, _, _ := newTestModel(t, notes.Note{ID: "1", Title: "x"})

	m = press(t, m, runes("d"))
	assert.Nil(t, m.confirm)
}

func TestSearchFiltersCards(t *testing.T) {
	m, _, _ := newTestModel(t,
		notes.Note{ID: "1", Title: "Groceries", Body: "milk"},
		notes.Note{ID: "2", Title: "Work", Body: "standup"},
	)

	m = press(t, m, runes("/"), runes("MILK"))
	require.Len(t, m.tree.Notes(), 1)
	assert.Equal(t, "1", m.tree.Notes()[0].NoteID)

	// Leaving the box keeps the filter, esc in the box clears it.
	m = press(t, m, keyEnter)
	assert.Equal(t, focusGrid, m.focus)
	assert.Len(t, m.tree.Notes(), 1)

	m = press(t, m, runes("/"), keyEsc)
	assert.Empty(t, m.search.Value())
	assert.Len(t, m.tree.Notes(), 2)
}

func TestSearchNoMatches(t *testing.T) {
	m, _, _ := newTestModel(t, notes.Note{ID: "1", Title: "a"})

	m = press(t, m, runes("/"), runes("zzz"))
	assert.Empty(t, m.tree.Notes())
	assert.Len(t, m.tree.Cards, 1, "add card stays")
	assert.Contains(t, ansi.Strip(m.View()), "No notes match")
}

func TestGridNavigationStaysInBounds(t *testing.T) {
	m, _, _ := newTestModel(t, notes.Note{ID: "1", Title: "only"})

	m = press(t, m, runes("h"), runes("k"))
	assert.Equal(t, 0, m.selected)

	m = press(t, m, runes("l"), runes("l"), runes("j"))
	assert.Equal(t, 1, m.selected)
}

func TestYankCopiesBody(t *testing.T) {
	m, _, copied := newTestModel(t, notes.Note{ID: "1", Title: "t", Body: "copy me"})

	m = press(t, m, runes("y"))
	assert.Empty(t, *copied, "add card has no body")

	m = press(t, m, runes("l"), runes("y"))
	assert.Equal(t, []string{"copy me"}, *copied)
	assert.Equal(t, "Copied note body", m.statusMsg)
}

func TestYankFailureShowsError(t *testing.T) {
	m, _, _ := newTestModel(t, notes.Note{ID: "1", Title: "t", Body: "b"})
	m.copyText = func(string) error { return errors.New("no clipboard") }

	m = press(t, m, runes("l"), runes("y"))
	assert.True(t, m.statusIsError)
	assert.Contains(t, m.statusMsg, "no clipboard")
}

func TestToastClearsAfterExpiry(t *testing.T) {
	m, _, _ := newTestModel(t, notes.Note{ID: "1", Title: "t", Body: "b"})

	m = press(t, m, runes("l"), runes("y"))
	require.Equal(t, "Copied note body", m.statusMsg)

	m = update(t, m, TickMsg(time.Now()))
	assert.Equal(t, "Copied note body", m.statusMsg, "toast still live")

	m.statusExpiry = time.Now().Add(-time.Second)
	m = update(t, m, TickMsg(time.Now()))
	assert.Empty(t, m.statusMsg)
	assert.NotContains(t, ansi.Strip(m.View()), "Copied note body")
}

func TestStorageChangeReloads(t *testing.T) {
	backing := kv.NewMemory()
	store := notes.NewStore(notes.NewPersister(backing, nil))
	m := New(store, modal.NewController(store), Options{})

	require.NoError(t, notes.NewPersister(backing, nil).Save([]notes.Note{{ID: "9", Title: "from elsewhere"}}))
	m = update(t, m, StorageChangedMsg{})

	require.Len(t, m.tree.Notes(), 1)
	assert.Equal(t, "from elsewhere", m.tree.Notes()[0].Title)
}

func TestClickOutsideFormDismisses(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = press(t, m, runes("n"), runes("draft"))

	click := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	}

	m = update(t, m, click(m.width/2, m.height/2))
	assert.True(t, m.form.IsOpen(), "click inside keeps the form")

	m = update(t, m, click(0, 0))
	assert.False(t, m.form.IsOpen(), "click outside dismisses")
}

func TestClickSelectsThenActivatesCard(t *testing.T) {
	m, _, _ := newTestModel(t, notes.Note{ID: "1", Title: "one"})
	click := tea.MouseMsg{X: m.cardWidth + cardGap + 2, Y: headerHeight + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}

	m = update(t, m, click)
	assert.Equal(t, 1, m.selected)
	assert.False(t, m.form.IsOpen())

	m = update(t, m, click)
	assert.Equal(t, modal.Editing, m.form.State())
}

func TestCardViewStripsEscapes(t *testing.T) {
	m, _, _ := newTestModel(t, notes.Note{ID: "1", Title: "\x1b]0;pwned\x07evil", Body: "\x1b[2Jbody"})

	out := m.View()
	assert.NotContains(t, out, "\x1b]0;")
	assert.NotContains(t, out, "\x1b[2J")
	assert.True(t, strings.Contains(ansi.Strip(out), "evil"))
}

func TestQuit(t *testing.T) {
	m, _, _ := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
