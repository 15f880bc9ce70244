package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/seven-sport-admin/internal/service"
	"github.com/MKhiriev/seven-sport-admin/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TrainerListModel is the trainers page of the app shell.
type TrainerListModel struct {
	ctx      context.Context
	trainers service.TrainerService
	auth     service.AuthService

	items   []models.Trainer
	idx     int
	loading bool
	loadErr string
	status  string
	errMsg  string

	confirmMode string
	confirm     confirmModel
	pendingID   string
}

func NewTrainerListModel(ctx context.Context, trainers service.TrainerService, auth service.AuthService) *TrainerListModel {
	return &TrainerListModel{ctx: ctx, trainers: trainers, auth: auth, loading: true}
}

func (m *TrainerListModel) Init() tea.Cmd {
	m.loading = true
	m.loadErr = ""
	return m.cmdLoad()
}

func (m *TrainerListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case trainersLoadedMsg:
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
		m.items = m.trainers.Items()
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

func (m *TrainerListModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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
			return NavigateTo{Page: pageTrainerForm, Payload: trainerFormInit{}}
		}
	case "e":
		item, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg {
			return NavigateTo{Page: pageTrainerForm, Payload: trainerFormInit{trainer: &item}}
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
		if !ok || item.Photo == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(item.Photo)
	case "1":
		return m, func() tea.Msg { return NavigateTo{Page: pageAdmins} }
	case "3":
		return m, func() tea.Msg { return NavigateTo{Page: pageBlogs} }
	case "l":
		m.confirmMode = confirmLogout
		m.confirm.message = "Вы уверены, что хотите выйти?"
	}

	return m, nil
}

func (m *TrainerListModel) current() (models.Trainer, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Trainer{}, false
	}
	return m.items[m.idx], true
}

func (m *TrainerListModel) clampIdx() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *TrainerListModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Загрузка...")
	case m.loadErr != "":
		b.WriteString(errorStyle.Render("Ошибка: " + m.loadErr))
		b.WriteString("\n\nr: повторить запрос")
	case len(m.items) == 0:
		b.WriteString("Нет тренеров")
	default:
		b.WriteString(fmt.Sprintf("%-3s │ %-24s │ %-10s │ %-6s │ %s\n",
			"№", "Полное имя", "Пояс", "Стаж", "Учеников"))
		b.WriteString("────┼──────────────────────────┼────────────┼────────┼─────────\n")
		for i, item := range m.items {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s%-3d│ %-24s │ %-10s │ %-6s │ %s\n",
				cursor, i+1,
				fitText(item.FullName, 24),
				valueOrDash(string(item.Level)),
				valueOrDash(item.Experience),
				valueOrDash(item.Students)))
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

	hotkeys := "a: добавить │ e: редакт. │ ctrl+d: удалить │ c: копир. фото │ 1: админы │ 3: блог │ l: выйти"
	return renderPage("ТРЕНЕРЫ", body, hotkeys)
}

func (m *TrainerListModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	svc := m.trainers
	return func() tea.Msg {
		items, err := svc.Load(ctx)
		return trainersLoadedMsg{items: items, err: err}
	}
}

func (m *TrainerListModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.trainers
	return func() tea.Msg {
		return itemDeletedMsg{err: svc.Remove(ctx, id)}
	}
}
