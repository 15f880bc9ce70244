package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/seven-sport-admin/internal/service"
	"github.com/MKhiriev/seven-sport-admin/models"
	tea "github.com/charmbracelet/bubbletea"
)

// BlogListModel is the blog page of the app shell.
type BlogListModel struct {
	ctx   context.Context
	blogs service.BlogService
	auth  service.AuthService

	items   []models.Blog
	idx     int
	loading bool
	loadErr string
	status  string
	errMsg  string

	confirmMode string
	confirm     confirmModel
	pendingID   string
}

func NewBlogListModel(ctx context.Context, blogs service.BlogService, auth service.AuthService) *BlogListModel {
	return &BlogListModel{ctx: ctx, blogs: blogs, auth: auth, loading: true}
}

func (m *BlogListModel) Init() tea.Cmd {
	m.loading = true
	m.loadErr = ""
	return m.cmdLoad()
}

func (m *BlogListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case blogsLoadedMsg:
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
		m.items = m.blogs.Items()
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

func (m *BlogListModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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
			return NavigateTo{Page: pageBlogForm, Payload: blogFormInit{}}
		}
	case "e":
		item, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg {
			return NavigateTo{Page: pageBlogForm, Payload: blogFormInit{blog: &item}}
		}
	case "ctrl+d":
		item, ok := m.current()
		if !ok {
			return m, nil
		}
		m.confirmMode = confirmDelete
		m.confirm.message = "Удалить \"" + fitText(item.Title, 40) + "\"?"
		m.pendingID = item.ID
	case "c":
		item, ok := m.current()
		if !ok || len(item.Photos) == 0 {
			return m, nil
		}
		return m, cmdCopyToClipboard(item.Photos[0])
	case "1":
		return m, func() tea.Msg { return NavigateTo{Page: pageAdmins} }
	case "2":
		return m, func() tea.Msg { return NavigateTo{Page: pageTrainers} }
	case "l":
		m.confirmMode = confirmLogout
		m.confirm.message = "Вы уверены, что хотите выйти?"
	}

	return m, nil
}

func (m *BlogListModel) current() (models.Blog, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Blog{}, false
	}
	return m.items[m.idx], true
}

func (m *BlogListModel) clampIdx() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *BlogListModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Загрузка...")
	case m.loadErr != "":
		b.WriteString(errorStyle.Render("Ошибка: " + m.loadErr))
		b.WriteString("\n\nr: повторить запрос")
	case len(m.items) == 0:
		b.WriteString("Нет записей блога")
	default:
		b.WriteString(fmt.Sprintf("%-3s │ %-36s │ %-10s │ %s\n", "№", "Заголовок", "Дата", "Фото"))
		b.WriteString("────┼──────────────────────────────────────┼────────────┼─────\n")
		for i, item := range m.items {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			created := "-"
			if !item.CreatedAt.IsZero() {
				created = item.CreatedAt.Format("02.01.2006")
			}
			b.WriteString(fmt.Sprintf("%s%-3d│ %-36s │ %-10s │ %d\n",
				cursor, i+1, fitText(item.Title, 36), created, len(item.Photos)))
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

	hotkeys := "a: добавить │ e: редакт. │ ctrl+d: удалить │ c: копир. фото │ 1: админы │ 2: тренеры │ l: выйти"
	return renderPage("БЛОГ", body, hotkeys)
}

func (m *BlogListModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	svc := m.blogs
	return func() tea.Msg {
		items, err := svc.Load(ctx)
		return blogsLoadedMsg{items: items, err: err}
	}
}

func (m *BlogListModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.blogs
	return func() tea.Msg {
		return itemDeletedMsg{err: svc.Remove(ctx, id)}
	}
}
