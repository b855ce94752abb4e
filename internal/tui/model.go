// Package tui is the terminal front-end: a card grid with a modal note form.
package tui

import (
	"io"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/quicknotes/internal/modal"
	"github.com/marcus/quicknotes/internal/notes"
	"github.com/marcus/quicknotes/internal/render"
	"github.com/marcus/quicknotes/internal/ui"
)

const (
	defaultCardWidth = 28
	minCardWidth     = 16
	bodyLines        = 3

	// cardHeight is the rendered height of every card: border, title, body
	// lines and date.
	cardHeight = 2 + 1 + bodyLines + 1
	cardGap    = 1

	// headerHeight is the title line plus the search line.
	headerHeight = 2

	formWidth = 56
)

type focus int

const (
	focusGrid focus = iota
	focusSearch
)

const (
	fieldTitle = iota
	fieldBody
)

// Options configures a Model.
type Options struct {
	CardWidth int
	ShowHelp  bool

	// Changes delivers storage change notifications from a watcher.
	Changes <-chan struct{}

	// Clipboard writes text to the system clipboard.
	Clipboard func(string) error

	Logger *slog.Logger
}

// Model is the root Bubble Tea model.
type Model struct {
	store *notes.Store
	form  *modal.Controller

	keys     KeyMap
	formKeys FormKeyMap
	help     help.Model
	showHelp bool

	cardWidth int
	changes   <-chan struct{}
	copyText  func(string) error
	logger    *slog.Logger

	width, height int
	focus         focus
	search        textinput.Model
	titleInput    textinput.Model
	bodyInput     textarea.Model
	field         int

	tree     render.Tree
	selected int // index into tree.Cards; 0 is the add card
	scroll   int // first visible grid row

	confirm         *ui.ConfirmDialog
	pendingDeleteID string

	statusMsg     string
	statusExpiry  time.Time
	statusIsError bool
}

// New creates the application model over an already loaded store.
func New(store *notes.Store, form *modal.Controller, opts Options) Model {
	if opts.CardWidth < minCardWidth {
		opts.CardWidth = defaultCardWidth
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search notes..."

	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 200

	body := textarea.New()
	body.Placeholder = "Write your note..."
	body.ShowLineNumbers = false
	body.SetHeight(6)

	h := help.New()

	m := Model{
		store:      store,
		form:       form,
		keys:       DefaultKeyMap(),
		formKeys:   DefaultFormKeyMap(),
		help:       h,
		showHelp:   opts.ShowHelp,
		cardWidth:  opts.CardWidth,
		changes:    opts.Changes,
		copyText:   opts.Clipboard,
		logger:     opts.Logger,
		width:      80,
		height:     24,
		search:     search,
		titleInput: title,
		bodyInput:  body,
	}
	m.refresh()
	return m
}

// Init starts listening for storage changes.
func (m Model) Init() tea.Cmd {
	return waitForChange(m.changes)
}

// refresh re-renders the card tree from the store and the current query and
// keeps the selection in range.
func (m *Model) refresh() {
	m.tree = render.Render(notes.Filter(m.store.List(), m.search.Value()))
	m.clampSelection()
}

func (m *Model) clampSelection() {
	if m.selected >= len(m.tree.Cards) {
		m.selected = len(m.tree.Cards) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// selectNote moves the selection to the card for id, if it is visible.
func (m *Model) selectNote(id string) {
	for i, c := range m.tree.Cards {
		if c.Kind == render.CardNote && c.NoteID == id {
			m.selected = i
			return
		}
	}
}

// selectedCard returns the card under the cursor.
func (m *Model) selectedCard() render.Card {
	return m.tree.Cards[m.selected]
}

// columns is the number of cards per grid row.
func (m *Model) columns() int {
	cols := (m.width + cardGap) / (m.cardWidth + cardGap)
	if cols < 1 {
		return 1
	}
	return cols
}

// visibleRows is how many grid rows fit between the header and the footer.
func (m *Model) visibleRows() int {
	rows := (m.height - headerHeight - m.footerHeight()) / cardHeight
	if rows < 1 {
		return 1
	}
	return rows
}

func (m *Model) footerHeight() int {
	h := 1 // status line
	if m.showHelp {
		h++
	}
	return h
}

// ensureVisible scrolls so the selected card's row is on screen.
func (m *Model) ensureVisible() {
	row := m.selected / m.columns()
	rows := m.visibleRows()
	if row < m.scroll {
		m.scroll = row
	}
	if row >= m.scroll+rows {
		m.scroll = row - rows + 1
	}
}

// ShowToast displays a temporary status message.
func (m *Model) ShowToast(msg string, duration time.Duration, isError bool) tea.Cmd {
	m.statusMsg = msg
	m.statusExpiry = time.Now().Add(duration)
	m.statusIsError = isError
	return tickAfter(duration)
}

// ClearToast clears any expired toast message.
func (m *Model) ClearToast() {
	if m.statusMsg != "" && !time.Now().Before(m.statusExpiry) {
		m.statusMsg = ""
		m.statusIsError = false
	}
}

// saveFailed returns an error toast when the last persist failed.
func (m *Model) saveFailed() tea.Cmd {
	if err := m.store.SaveErr(); err != nil {
		return m.ShowToast("Save failed: "+err.Error(), toastLong, true)
	}
	return nil
}
