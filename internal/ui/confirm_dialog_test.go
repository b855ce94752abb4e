package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNewConfirmDialog(t *testing.T) {
	d := NewConfirmDialog("Test Title", "Test message")

	if d.Title != "Test Title" {
		t.Errorf("expected title 'Test Title', got %q", d.Title)
	}
	if d.Message != "Test message" {
		t.Errorf("expected message 'Test message', got %q", d.Message)
	}
	if d.ConfirmLabel != " Confirm " {
		t.Errorf("expected default confirm label ' Confirm ', got %q", d.ConfirmLabel)
	}
	if d.Width != ModalWidthMedium {
		t.Errorf("expected width %d, got %d", ModalWidthMedium, d.Width)
	}
}

func TestConfirmDialog_View(t *testing.T) {
	d := NewConfirmDialog("Delete note?", "Are you sure?")
	d.ConfirmLabel = " Delete "
	d.Danger = true

	output := d.View()

	for _, want := range []string{"Delete note?", "Are you sure?", "Delete", "Cancel"} {
		if !strings.Contains(output, want) {
			t.Errorf("render should contain %q", want)
		}
	}
}

func TestConfirmDialog_HandleKey(t *testing.T) {
	runes := func(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

	tests := []struct {
		name string
		keys []tea.KeyMsg
		want string
	}{
		{"y confirms", []tea.KeyMsg{runes("y")}, ActionConfirm},
		{"n cancels", []tea.KeyMsg{runes("n")}, ActionCancel},
		{"esc cancels", []tea.KeyMsg{{Type: tea.KeyEsc}}, ActionCancel},
		{"enter on confirm", []tea.KeyMsg{{Type: tea.KeyEnter}}, ActionConfirm},
		{"tab then enter", []tea.KeyMsg{{Type: tea.KeyTab}, {Type: tea.KeyEnter}}, ActionCancel},
		{"tab twice then enter", []tea.KeyMsg{{Type: tea.KeyTab}, {Type: tea.KeyTab}, {Type: tea.KeyEnter}}, ActionConfirm},
		{"other keys ignored", []tea.KeyMsg{runes("q")}, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewConfirmDialog("t", "m")
			var got string
			for _, k := range tt.keys {
				got = d.HandleKey(k)
			}
			if got != tt.want {
				t.Errorf("HandleKey() = %q, want %q", got, tt.want)
			}
		})
	}
}
