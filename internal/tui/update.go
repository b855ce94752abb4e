package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/quicknotes/internal/modal"
	"github.com/marcus/quicknotes/internal/notes"
	"github.com/marcus/quicknotes/internal/render"
	"github.com/marcus/quicknotes/internal/ui"
)

// Update handles all messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.bodyInput.SetWidth(formWidth - 6)
		m.titleInput.Width = formWidth - 8
		m.ensureVisible()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case TickMsg:
		m.ClearToast()
		return m, nil

	case StorageChangedMsg:
		m.logger.Debug("tui: storage changed, reloading")
		m.store.Reload()
		m.refresh()
		return m, waitForChange(m.changes)
	}

	return m, nil
}

// handleKeyMsg routes a key to whichever layer has focus: confirm dialog,
// note form, search box, or the grid.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.confirm != nil:
		return m.handleConfirmKey(msg)
	case m.form.IsOpen():
		return m.handleFormKey(msg)
	case m.focus == focusSearch:
		return m.handleSearchKey(msg)
	}
	return m.handleGridKey(msg)
}

func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cols := m.columns()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Add):
		return m, m.openAdd()

	case key.Matches(msg, m.keys.Edit):
		if m.selectedCard().Kind == render.CardAdd {
			return m, m.openAdd()
		}
		return m, m.openEdit(m.selectedCard().NoteID)

	case key.Matches(msg, m.keys.Delete):
		if card := m.selectedCard(); card.Kind == render.CardNote {
			m.askDelete(card)
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.focus = focusSearch
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Left):
		m.move(-1)
	case key.Matches(msg, m.keys.Right):
		m.move(1)
	case key.Matches(msg, m.keys.Up):
		m.move(-cols)
	case key.Matches(msg, m.keys.Down):
		m.move(cols)

	case key.Matches(msg, m.keys.Yank):
		return m, m.yankSelected()

	case key.Matches(msg, m.keys.Reload):
		m.store.Reload()
		m.refresh()
		return m, m.ShowToast(fmt.Sprintf("Reloaded %d notes", m.store.Len()), toastShort, false)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.showHelp = true
	}

	return m, nil
}

// move shifts the selection by delta cards, stopping at the grid edges.
func (m *Model) move(delta int) {
	next := m.selected + delta
	if next < 0 || next >= len(m.tree.Cards) {
		return
	}
	m.selected = next
	m.ensureVisible()
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.SetValue("")
		m.search.Blur()
		m.focus = focusGrid
		m.refresh()
		return m, nil
	case "enter", "down", "tab":
		m.search.Blur()
		m.focus = focusGrid
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.selected = 0
	m.scroll = 0
	m.refresh()
	return m, cmd
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.formKeys.Cancel):
		m.form.Cancel()
		m.blurForm()
		return m, nil

	case key.Matches(msg, m.formKeys.Save):
		return m.saveForm()

	case key.Matches(msg, m.formKeys.Next):
		return m, m.focusField(1 - m.field)

	case msg.Type == tea.KeyEnter && m.field == fieldTitle:
		return m, m.focusField(fieldBody)
	}

	var cmd tea.Cmd
	if m.field == fieldTitle {
		m.titleInput, cmd = m.titleInput.Update(msg)
		m.form.SetTitle(m.titleInput.Value())
	} else {
		m.bodyInput, cmd = m.bodyInput.Update(msg)
		m.form.SetBody(m.bodyInput.Value())
	}
	return m, cmd
}

// saveForm commits the form through the controller. A rejected save keeps
// the form open with its message.
func (m Model) saveForm() (tea.Model, tea.Cmd) {
	m.form.SetTitle(m.titleInput.Value())
	m.form.SetBody(m.bodyInput.Value())
	editing := m.form.State() == modal.Editing

	note, err := m.form.Save()
	if errors.Is(err, notes.ErrEmptyNote) {
		return m, nil
	}
	if err != nil {
		m.logger.Error("tui: save note", "error", err)
		return m, m.ShowToast("Error: "+err.Error(), toastLong, true)
	}

	m.blurForm()
	m.refresh()
	if note.ID == "" {
		// The note was deleted elsewhere while being edited.
		return m, nil
	}
	m.selectNote(note.ID)
	m.ensureVisible()

	if cmd := m.saveFailed(); cmd != nil {
		return m, cmd
	}
	if editing {
		return m, m.ShowToast("Note updated", toastShort, false)
	}
	return m, m.ShowToast("Note added", toastShort, false)
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.confirm.HandleKey(msg) {
	case ui.ActionConfirm:
		return m.confirmDelete()
	case ui.ActionCancel:
		m.confirm = nil
		m.pendingDeleteID = ""
	}
	return m, nil
}

func (m *Model) askDelete(card render.Card) {
	d := ui.NewConfirmDialog("Delete note?", "Are you sure you want to delete this note?\n\n"+
		render.Truncate(render.PlainText(card.Title), ui.ModalWidthMedium-8))
	d.ConfirmLabel = " Delete "
	d.Danger = true
	m.confirm = d
	m.pendingDeleteID = card.NoteID
}

func (m Model) confirmDelete() (tea.Model, tea.Cmd) {
	id := m.pendingDeleteID
	m.confirm = nil
	m.pendingDeleteID = ""

	if !m.store.Delete(id) {
		m.refresh()
		return m, nil
	}
	m.refresh()
	if cmd := m.saveFailed(); cmd != nil {
		return m, cmd
	}
	return m, m.ShowToast("Note deleted", toastShort, false)
}

func (m *Model) openAdd() tea.Cmd {
	m.form.OpenAdd()
	m.titleInput.SetValue("")
	m.bodyInput.SetValue("")
	return m.focusField(fieldTitle)
}

func (m *Model) openEdit(id string) tea.Cmd {
	if err := m.form.OpenEdit(id); err != nil {
		m.logger.Warn("tui: edit unknown note", "id", id, "error", err)
		m.refresh()
		return nil
	}
	m.titleInput.SetValue(m.form.Title())
	m.bodyInput.SetValue(m.form.Body())
	return m.focusField(fieldTitle)
}

func (m *Model) focusField(field int) tea.Cmd {
	m.field = field
	if field == fieldTitle {
		m.bodyInput.Blur()
		return m.titleInput.Focus()
	}
	m.titleInput.Blur()
	return m.bodyInput.Focus()
}

func (m *Model) blurForm() {
	m.titleInput.Blur()
	m.bodyInput.Blur()
	m.titleInput.SetValue("")
	m.bodyInput.SetValue("")
	m.field = fieldTitle
}

func (m *Model) yankSelected() tea.Cmd {
	card := m.selectedCard()
	if card.Kind != render.CardNote {
		return nil
	}
	if err := m.copyText(card.Body); err != nil {
		m.logger.Warn("tui: clipboard", "error", err)
		return m.ShowToast("Copy failed: "+err.Error(), toastLong, true)
	}
	return m.ShowToast("Copied note body", toastShort, false)
}

// handleMouseMsg handles left clicks. With the form or dialog open, a click
// outside the box dismisses it; otherwise clicks select cards, and clicking
// the selected card activates it.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if m.confirm != nil {
		if !ui.ModalRect(m.confirm.View(), m.width, m.height).Contains(msg.X, msg.Y) {
			m.confirm = nil
			m.pendingDeleteID = ""
		}
		return m, nil
	}

	if m.form.IsOpen() {
		inside := ui.ModalRect(m.formView(), m.width, m.height).Contains(msg.X, msg.Y)
		m.form.Dismiss(inside)
		if !m.form.IsOpen() {
			m.blurForm()
		}
		return m, nil
	}

	idx, ok := m.cardAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	if idx != m.selected {
		m.selected = idx
		return m, nil
	}
	if m.selectedCard().Kind == render.CardAdd {
		return m, m.openAdd()
	}
	return m, m.openEdit(m.selectedCard().NoteID)
}

// cardAt maps a screen cell to a card index.
func (m *Model) cardAt(x, y int) (int, bool) {
	gy := y - headerHeight
	if gy < 0 || x < 0 {
		return 0, false
	}
	col := x / (m.cardWidth + cardGap)
	if col >= m.columns() || x%(m.cardWidth+cardGap) >= m.cardWidth {
		return 0, false
	}
	row := gy/cardHeight + m.scroll
	if row-m.scroll >= m.visibleRows() {
		return 0, false
	}
	idx := row*m.columns() + col
	if idx >= len(m.tree.Cards) {
		return 0, false
	}
	return idx, true
}
