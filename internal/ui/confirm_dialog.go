package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/quicknotes/internal/styles"
)

// ModalWidthMedium is the default dialog width.
const ModalWidthMedium = 50

// Dialog results returned by HandleKey.
const (
	ActionNone    = ""
	ActionConfirm = "confirm"
	ActionCancel  = "cancel"
)

// ConfirmDialog is a yes/no modal with two buttons.
type ConfirmDialog struct {
	Title        string
	Message      string
	ConfirmLabel string // e.g., " Delete ", " Yes "
	CancelLabel  string
	Danger       bool // red border
	Width        int

	cancelFocused bool
}

// NewConfirmDialog creates a dialog with sensible defaults.
func NewConfirmDialog(title, message string) *ConfirmDialog {
	return &ConfirmDialog{
		Title:        title,
		Message:      message,
		ConfirmLabel: " Confirm ",
		CancelLabel:  " Cancel ",
		Width:        ModalWidthMedium,
	}
}

// HandleKey maps a key to a dialog result. y confirms and n/esc cancel from
// anywhere; enter activates the focused button.
func (d *ConfirmDialog) HandleKey(msg tea.KeyMsg) string {
	switch msg.String() {
	case "y", "Y":
		return ActionConfirm
	case "n", "N", "esc":
		return ActionCancel
	case "tab", "shift+tab", "left", "right", "h", "l":
		d.cancelFocused = !d.cancelFocused
	case "enter":
		if d.cancelFocused {
			return ActionCancel
		}
		return ActionConfirm
	}
	return ActionNone
}

// View renders the dialog box.
func (d *ConfirmDialog) View() string {
	inner := d.Width - 6 // border + padding
	if inner < 10 {
		inner = 10
	}

	confirm := buttonStyle(!d.cancelFocused, d.Danger).Render(d.ConfirmLabel)
	cancel := buttonStyle(d.cancelFocused, false).Render(d.CancelLabel)

	var sb strings.Builder
	sb.WriteString(styles.ModalTitle.Render(d.Title))
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.NewStyle().Width(inner).Render(d.Message))
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, confirm, "  ", cancel))

	box := styles.ModalBox
	if d.Danger {
		box = styles.DangerBox
	}
	return box.Width(inner + 4).Render(sb.String())
}

func buttonStyle(focused, danger bool) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 1)
	switch {
	case focused && danger:
		return s.Background(styles.Error).Foreground(styles.ToastErrorTextColor).Bold(true)
	case focused:
		return s.Background(styles.Primary).Foreground(styles.TextPrimary).Bold(true)
	default:
		return s.Background(styles.BgTertiary).Foreground(styles.TextSecondary)
	}
}
