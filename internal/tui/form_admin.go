package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/seven-sport-admin/internal/service"
	"github.com/MKhiriev/seven-sport-admin/internal/validators"
	"github.com/MKhiriev/seven-sport-admin/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// AdminFormModel is the create/edit form for administrator accounts.
// The same page serves both modes; an [adminFormInit] payload resets it.
// In edit mode an empty password field means "leave unchanged".
type AdminFormModel struct {
	ctx    context.Context
	admins service.AdminService

	inputs     []textinput.Model
	focus      int
	editing    bool
	id         string
	submitting bool
	errMsg     string
	fieldErrs  validators.FieldErrors
}

func NewAdminFormModel(ctx context.Context, admins service.AdminService) *AdminFormModel {
	return &AdminFormModel{ctx: ctx, admins: admins, inputs: newAdminInputs()}
}

func newAdminInputs() []textinput.Model {
	nameInput := textinput.New()
	nameInput.Placeholder = "Фамилия Имя"
	nameInput.Width = 40
	nameInput.Focus()

	phoneInput := textinput.New()
	phoneInput.Placeholder = "901234567"
	phoneInput.CharLimit = 9
	phoneInput.Width = 40

	passwordInput := textinput.New()
	passwordInput.Placeholder = "минимум 6 символов"
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return []textinput.Model{nameInput, phoneInput, passwordInput}
}

func (m *AdminFormModel) reset(admin *models.User) {
	m.inputs = newAdminInputs()
	m.focus = 0
	m.submitting = false
	m.errMsg = ""
	m.fieldErrs = nil
	m.editing = false
	m.id = ""

	if admin == nil {
		return
	}
	m.editing = true
	m.id = admin.ID
	m.inputs[0].SetValue(admin.FullName)
	m.inputs[1].SetValue(admin.PhoneNumber)
	m.inputs[2].Placeholder = "пусто = без изменений"
}

func (m *AdminFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *AdminFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case adminFormInit:
		m.reset(msg.admin)
		return m, textinput.Blink

	case itemSavedMsg:
		m.submitting = false
		if msg.err != nil {
			if fieldErrs, ok := validators.AsFieldErrors(msg.err); ok {
				m.fieldErrs = fieldErrs
			} else {
				m.errMsg = alertMessage(msg.err)
			}
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageAdmins} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return NavigateTo{Page: pageAdmins} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			input := models.AdminInput{
				ID:          m.id,
				FullName:    strings.TrimSpace(m.inputs[0].Value()),
				PhoneNumber: strings.TrimSpace(m.inputs[1].Value()),
				Password:    m.inputs[2].Value(),
			}

			m.errMsg = ""
			m.fieldErrs = nil
			m.submitting = true
			return m, m.cmdSave(input)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *AdminFormModel) View() string {
	var b strings.Builder
	b.WriteString("Полное имя  │ [" + m.inputs[0].View() + "]\n")
	writeFieldError(&b, m.fieldErrs, validators.FieldFullName)
	b.WriteString("Телефон     │ [" + m.inputs[1].View() + "]\n")
	writeFieldError(&b, m.fieldErrs, validators.FieldPhoneNumber)
	b.WriteString("Пароль      │ [" + m.inputs[2].View() + "]\n")
	writeFieldError(&b, m.fieldErrs, validators.FieldPassword)

	if m.submitting {
		b.WriteString("\n[Сохранение...]\n")
	} else {
		b.WriteString("\n[Сохранить]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nОшибка: " + m.errMsg + "\n")
	}

	title := "НОВЫЙ АДМИНИСТРАТОР"
	if m.editing {
		title = "РЕДАКТИРОВАНИЕ АДМИНИСТРАТОРА"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: сохранить")
}

func (m *AdminFormModel) cmdSave(input models.AdminInput) tea.Cmd {
	ctx := m.ctx
	svc := m.admins
	editing := m.editing
	return func() tea.Msg {
		if editing {
			return itemSavedMsg{err: svc.Update(ctx, input)}
		}
		return itemSavedMsg{err: svc.Create(ctx, input)}
	}
}

func (m *AdminFormModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *AdminFormModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func writeFieldError(b *strings.Builder, errs validators.FieldErrors, field string) {
	if msg, ok := errs[field]; ok {
		b.WriteString("            │ ! " + msg + "\n")
	}
}
