package tui

import (
	"fmt"
	"time"

	"github.com/MKhiriev/seven-sport-admin/internal/service"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return itemSavedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func cmdLogout(auth service.AuthService) tea.Cmd {
	return func() tea.Msg {
		return logoutDoneMsg{err: auth.Logout()}
	}
}
