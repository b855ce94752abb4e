package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/quicknotes/internal/render"
	"github.com/marcus/quicknotes/internal/styles"
	"github.com/marcus/quicknotes/internal/ui"
)

// View renders the grid and, when open, the form or confirm dialog on top.
func (m Model) View() string {
	base := m.baseView()

	switch {
	case m.confirm != nil:
		return ui.OverlayModal(base, m.confirm.View(), m.width, m.height)
	case m.form.IsOpen():
		return ui.OverlayModal(base, m.formView(), m.width, m.height)
	}
	return base
}

func (m Model) baseView() string {
	var sb strings.Builder

	count := fmt.Sprintf("%d notes", m.store.Len())
	if q := m.search.Value(); q != "" {
		count = fmt.Sprintf("%d of %d notes", len(m.tree.Notes()), m.store.Len())
	}
	sb.WriteString(styles.Header.Render("Quick Notes"))
	sb.WriteString("  ")
	sb.WriteString(styles.Muted.Render(count))
	sb.WriteString("\n")

	if m.focus == focusSearch || m.search.Value() != "" {
		sb.WriteString(m.search.View())
	}
	sb.WriteString("\n")

	grid := m.gridView()
	sb.WriteString(grid)

	// Pin the footer to the bottom of the screen.
	used := headerHeight + lipgloss.Height(grid)
	if pad := m.height - m.footerHeight() - used; pad > 0 {
		sb.WriteString(strings.Repeat("\n", pad))
	}

	sb.WriteString("\n")
	sb.WriteString(m.statusView())
	if m.showHelp {
		sb.WriteString("\n")
		sb.WriteString(m.help.View(m.keys))
	}
	return sb.String()
}

// gridView lays out the visible rows of cards.
func (m Model) gridView() string {
	cols := m.columns()
	var rows []string

	first := m.scroll * cols
	last := min((m.scroll+m.visibleRows())*cols, len(m.tree.Cards))

	for start := first; start < last; start += cols {
		end := min(start+cols, last)
		cells := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, strings.Repeat(" ", cardGap))
			}
			cells = append(cells, m.cardView(m.tree.Cards[i], i == m.selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	if len(m.tree.Notes()) == 0 && m.search.Value() != "" {
		rows = append(rows, styles.Muted.Render("No notes match your search."))
	}
	return strings.Join(rows, "\n")
}

// cardView draws one card. Stored text is reduced to plain text before it is
// styled.
func (m Model) cardView(card render.Card, selected bool) string {
	inner := m.cardWidth - 4 // border + padding
	contentHeight := cardHeight - 2

	if card.Kind == render.CardAdd {
		style := styles.AddCard
		if selected {
			style = style.BorderForeground(styles.BorderActive)
		}
		label := styles.AddCardLabel.Render("+ " + render.Truncate(card.Title, inner-2))
		return style.Width(inner + 2).Height(contentHeight).Render(label)
	}

	lines := make([]string, 0, contentHeight)
	lines = append(lines, styles.CardTitle.Render(render.Truncate(render.PlainText(card.Title), inner)))

	body := render.Lines(render.PlainText(card.Body), inner, bodyLines)
	for i := 0; i < bodyLines; i++ {
		if i < len(body) {
			lines = append(lines, styles.CardBody.Render(body[i]))
		} else {
			lines = append(lines, "")
		}
	}
	lines = append(lines, styles.CardDate.Render(render.Truncate(card.Date, inner)))

	style := styles.Card
	if selected {
		style = styles.CardSelected
	}
	return style.Width(inner + 2).Render(strings.Join(lines, "\n"))
}

// formView renders the add/edit form box.
func (m Model) formView() string {
	var sb strings.Builder

	sb.WriteString(styles.ModalTitle.Render(m.form.Heading()))
	sb.WriteString("\n\n")

	sb.WriteString(fieldLabel("Title", m.field == fieldTitle))
	sb.WriteString("\n")
	sb.WriteString(m.titleInput.View())
	sb.WriteString("\n\n")

	sb.WriteString(fieldLabel("Body", m.field == fieldBody))
	sb.WriteString("\n")
	sb.WriteString(m.bodyInput.View())
	sb.WriteString("\n")

	if msg := m.form.Message(); msg != "" {
		sb.WriteString("\n")
		sb.WriteString(styles.ModalError.Render(msg))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.help.ShortHelpView(m.formKeys.ShortHelp()))

	return styles.ModalBox.Width(formWidth).Render(sb.String())
}

func fieldLabel(label string, focused bool) string {
	if focused {
		return styles.FieldFocused.Render(label)
	}
	return styles.FieldLabel.Render(label)
}

func (m Model) statusView() string {
	if m.statusMsg == "" {
		return ""
	}
	if m.statusIsError {
		return styles.ToastError.Render(m.statusMsg)
	}
	return styles.ToastSuccess.Render(m.statusMsg)
}
