package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// loadingModel is shown while the bootstrap identity check is in flight.
type loadingModel struct {
	spinner spinner.Model
}

func newLoadingModel() loadingModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return loadingModel{spinner: s}
}

func (m loadingModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m loadingModel) Update(msg tea.Msg) (loadingModel, tea.Cmd) {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m loadingModel) View() string {
	return renderPage("SEVEN SPORT CENTER", m.spinner.View()+" Проверка авторизации...", "")
}
