package tui

import tea "github.com/charmbracelet/bubbletea"

// NotFoundModel is rendered when navigation targets a page that is not
// registered in the router.
type NotFoundModel struct {
	page string
}

func NewNotFoundModel() *NotFoundModel {
	return &NotFoundModel{}
}

func (m *NotFoundModel) Init() tea.Cmd {
	return nil
}

func (m *NotFoundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "enter":
		return m, func() tea.Msg { return NavigateTo{Page: pageAdmins} }
	}
	return m, nil
}

func (m *NotFoundModel) View() string {
	body := "Страница не найдена"
	if m.page != "" {
		body += ": " + m.page
	}
	return renderPage("404", body, "enter: к списку администраторов")
}
