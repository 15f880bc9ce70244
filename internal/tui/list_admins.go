package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/seven-sport-admin/internal/service"
	"github.com/MKhiriev/seven-sport-admin/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	confirmNone   = ""
	confirmDelete = "delete"
	confirmLogout = "logout"
)

// AdminListModel is the administrators page of the app shell: a table of
// admin accounts with hotkeys for create, edit, delete (confirmed),
// copying the phone number, and navigation to the other resource pages.
type AdminListModel struct {
	ctx    context.Context
	admins service.AdminService
	auth   service.AuthService

	items   []models.User
	idx     int
	loading bool
	loadErr string
	status  string
	errMsg  string

	confirmMode string
	confirm     confirmModel
	pendingID   string
}

func NewAdminListModel(ctx context.Context, admins service.AdminService, auth service.AuthService) *AdminListModel {
	return &AdminListModel{ctx: ctx, admins: admins, auth: auth, loading: true}
}

// Init reloads the collection; it runs on every navigation to this page,
// so returning from a form always shows fresh data.
func (m *AdminListModel) Init() tea.Cmd {
	m.loading = true
	m.loadErr = ""
	return m.cmdLoad()
}

func (m *AdminListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case adminsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.loadErr = alertMessage(msg.err)
			return m, nil
		}
		m.items = msg.items
		m.clampIdx()
		return m, nil

	case itemDeletedMsg:
		if msg.err != nil {
			m.errMsg = alertMessage(msg.err)
			return m, nil
		}
		m.items = m.admins.Items()
		m.clampIdx()
		m.status = "Удалено"
		return m, cmdClearStatus()

	case copiedMsg:
		m.status = "Скопировано!"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *AdminListModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Blocking alert: any further input only dismisses it.
	if m.errMsg != "" {
		if msg.String() == "enter" || msg.String() == "esc" {
			m.errMsg = ""
		}
		return m, nil
	}

	if m.confirmMode != confirmNone {
		switch msg.String() {
		case "y":
			mode := m.confirmMode
			m.confirmMode = confirmNone
			if mode == confirmLogout {
				return m, cmdLogout(m.auth)
			}
			if m.pendingID != "" {
				return m, m.cmdDelete(m.pendingID)
			}
		case "n", "esc":
			m.confirmMode = confirmNone
			m.pendingID = ""
		}
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "r":
		return m, m.Init()
	case "a":
		return m, func() tea.Msg {
			return NavigateTo{Page: pageAdminForm, Payload: adminFormInit{}}
		}
	case "e":
		item, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg {
			return NavigateTo{Page: pageAdminForm, Payload: adminFormInit{admin: &item}}
		}
	case "ctrl+d":
		item, ok := m.current()
		if !ok {
			return m, nil
		}
		m.confirmMode = confirmDelete
		m.confirm.message = "Удалить \"" + item.FullName + "\"?"
		m.pendingID = item.ID
	case "c":
		item, ok := m.current()
		if !ok || item.PhoneNumber == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(item.PhoneNumber)
	case "p":
		return m, func() tea.Msg { return NavigateTo{Page: pagePassword} }
	case "o":
		return m, func() tea.Msg { return NavigateTo{Page: pageProfile} }
	case "2":
		return m, func() tea.Msg { return NavigateTo{Page: pageTrainers} }
	case "3":
		return m, func() tea.Msg { return NavigateTo{Page: pageBlogs} }
	case "l":
		m.confirmMode = confirmLogout
		m.confirm.message = "Вы уверены, что хотите выйти?"
	}

	return m, nil
}

func (m *AdminListModel) current() (models.User, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.User{}, false
	}
	return m.items[m.idx], true
}

func (m *AdminListModel) clampIdx() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *AdminListModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Загрузка...")
	case m.loadErr != "":
		b.WriteString(errorStyle.Render("Ошибка: " + m.loadErr))
		b.WriteString("\n\nr: повторить запрос")
	case len(m.items) == 0:
		b.WriteString("Нет администраторов")
	default:
		b.WriteString(fmt.Sprintf("%-3s │ %-30s │ %s\n", "№", "Полное имя", "Телефон"))
		b.WriteString("────┼────────────────────────────────┼───────────\n")
		for i, item := range m.items {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s%-3d│ %-30s │ %s\n",
				cursor, i+1, fitText(item.FullName, 30), valueOrDash(item.PhoneNumber)))
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status)
	}

	body := strings.TrimRight(b.String(), "\n")
	if m.confirmMode != confirmNone {
		body += "\n\n" + m.confirm.View()
	}
	if m.errMsg != "" {
		body += "\n\n" + overlayBoxStyle.Render("Ошибка\n\n"+m.errMsg+"\n\nenter / esc закрыть")
	}

	hotkeys := "a: добавить │ e: редакт. │ ctrl+d: удалить │ c: копир. телефон │ 2: тренеры │ 3: блог │ p: пароль │ o: профиль │ l: выйти"
	return renderPage("АДМИНИСТРАТОРЫ", body, hotkeys)
}

func (m *AdminListModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	svc := m.admins
	return func() tea.Msg {
		items, err := svc.Load(ctx)
		return adminsLoadedMsg{items: items, err: err}
	}
}

func (m *AdminListModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.admins
	return func() tea.Msg {
		return itemDeletedMsg{err: svc.Remove(ctx, id)}
	}
}
