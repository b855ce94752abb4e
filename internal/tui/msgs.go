package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type (
	// TickMsg clears expired toasts.
	TickMsg time.Time

	// StorageChangedMsg reports that another process rewrote the notes file.
	StorageChangedMsg struct{}
)

const (
	toastShort = 2 * time.Second
	toastLong  = 5 * time.Second
)

func tickAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// waitForChange blocks on the watcher channel and turns the next signal into
// a StorageChangedMsg. A closed channel ends the subscription.
func waitForChange(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return StorageChangedMsg{}
	}
}
