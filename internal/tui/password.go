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

// PasswordModel is the change-password dialog: current password, new
// password, confirmation.
type PasswordModel struct {
	ctx  context.Context
	auth service.AuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	status     string
	errMsg     string
	fieldErrs  validators.FieldErrors
}

func NewPasswordModel(ctx context.Context, auth service.AuthService) *PasswordModel {
	inputs := make([]textinput.Model, 3)
	placeholders := []string{"текущий пароль", "новый пароль", "повторите новый пароль"}
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholders[i]
		inputs[i].Width = 40
		inputs[i].EchoMode = textinput.EchoPassword
		inputs[i].EchoCharacter = '*'
	}
	inputs[0].Focus()

	return &PasswordModel{ctx: ctx, auth: auth, inputs: inputs}
}

func (m *PasswordModel) Init() tea.Cmd {
	m.status = ""
	m.errMsg = ""
	m.fieldErrs = nil
	m.submitting = false
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[0].Focus()
	return textinput.Blink
}

func (m *PasswordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(passwordChangedMsg); ok {
		m.submitting = false
		if result.err != nil {
			if fieldErrs, ok := validators.AsFieldErrors(result.err); ok {
				m.fieldErrs = fieldErrs
			} else {
				m.errMsg = alertMessage(result.err)
			}
			return m, nil
		}
		m.status = "Пароль изменён"
		for i := range m.inputs {
			m.inputs[i].SetValue("")
		}
		return m, nil
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

			input := models.ChangePasswordInput{
				CurrentPassword: m.inputs[0].Value(),
				NewPassword:     m.inputs[1].Value(),
				Confirm:         m.inputs[2].Value(),
			}

			m.status = ""
			m.errMsg = ""
			m.fieldErrs = nil
			m.submitting = true
			return m, m.cmdChange(input)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *PasswordModel) View() string {
	var b strings.Builder
	b.WriteString("Текущий пароль │ [" + m.inputs[0].View() + "]\n")
	writeFieldError(&b, m.fieldErrs, validators.FieldCurrentPassword)
	b.WriteString("Новый пароль   │ [" + m.inputs[1].View() + "]\n")
	writeFieldError(&b, m.fieldErrs, validators.FieldNewPassword)
	b.WriteString("Повтор         │ [" + m.inputs[2].View() + "]\n")
	writeFieldError(&b, m.fieldErrs, validators.FieldConfirm)

	if m.submitting {
		b.WriteString("\n[Сохранение...]\n")
	} else {
		b.WriteString("\n[Сменить пароль]\n")
	}

	if m.status != "" {
		b.WriteString("\nOK: " + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nОшибка: " + m.errMsg + "\n")
	}

	return renderPage("СМЕНА ПАРОЛЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: сохранить")
}

func (m *PasswordModel) cmdChange(input models.ChangePasswordInput) tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	return func() tea.Msg {
		return passwordChangedMsg{err: auth.ChangePassword(ctx, input)}
	}
}

func (m *PasswordModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *PasswordModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
