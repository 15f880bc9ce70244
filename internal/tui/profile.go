package tui

import (
	"strings"

	"github.com/MKhiriev/seven-sport-admin/internal/session"
	"github.com/MKhiriev/seven-sport-admin/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ProfileModel shows the authenticated administrator together with the
// stored credential's claims (subject and expiry, read without signature
// verification) and the client version.
type ProfileModel struct {
	sessions *session.Store
	token    string
	version  string
}

func NewProfileModel(sessions *session.Store, token, version string) *ProfileModel {
	return &ProfileModel{sessions: sessions, token: token, version: version}
}

func (m *ProfileModel) Init() tea.Cmd {
	return nil
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m *ProfileModel) View() string {
	var user models.User
	if current := m.sessions.State().CurrentUser; current != nil {
		user = *current
	}

	var b strings.Builder
	b.WriteString("Полное имя │ " + valueOrDash(user.FullName) + "\n")
	b.WriteString("Телефон    │ " + valueOrDash(user.PhoneNumber) + "\n")

	if info, err := models.ParseTokenInfo(m.token); err == nil {
		b.WriteString("Аккаунт    │ " + valueOrDash(info.Subject) + "\n")
		if !info.ExpiresAt.IsZero() {
			b.WriteString("Токен до   │ " + info.ExpiresAt.Format("02.01.2006 15:04") + "\n")
		}
	}

	b.WriteString("Версия     │ " + valueOrDash(m.version))

	return renderPage("ПРОФИЛЬ", b.String(), "esc: назад")
}
