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

// LoginModel is the Bubble Tea model for the login screen. It renders two
// text inputs (phone number and password) and dispatches an async login
// command on form submission. On success a [LoginResult] message is
// produced and handled by [RootModel], which quits the program so the
// application restarts with the new credential.
type LoginModel struct {
	ctx  context.Context
	auth service.AuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	fieldErrs  validators.FieldErrors
}

// NewLoginModel creates a [LoginModel] with pre-configured phone and
// password inputs. The phone field receives focus immediately; the
// password field uses masked echo.
func NewLoginModel(ctx context.Context, auth service.AuthService) *LoginModel {
	phoneInput := textinput.New()
	phoneInput.Placeholder = "901234567"
	phoneInput.CharLimit = 9
	phoneInput.Width = 40
	phoneInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{phoneInput, passwordInput},
	}
}

// noteSessionError surfaces the message the bootstrap recorded when the
// stored credential was rejected, so the user sees why they landed here.
func (m *LoginModel) noteSessionError(msg string) {
	m.errMsg = msg
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult] — clears submitting state; on error, populates
//     field errors or the page-level error message.
//   - tab / shift+tab — moves focus between inputs.
//   - enter — validates and dispatches the async login command; ignored
//     while a submission is already in flight.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			if fieldErrs, ok := validators.AsFieldErrors(result.Err); ok {
				m.fieldErrs = fieldErrs
			} else {
				m.errMsg = alertMessage(result.Err)
			}
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
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

			input := models.LoginInput{
				PhoneNumber: strings.TrimSpace(m.inputs[0].Value()),
				Password:    m.inputs[1].Value(),
			}

			m.errMsg = ""
			m.fieldErrs = nil
			m.submitting = true
			return m, m.cmdLogin(input)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Поле     │ Значение\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	b.WriteString("Телефон  │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Пароль   │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if msg, ok := m.fieldErrs[validators.FieldPhoneNumber]; ok {
		b.WriteString("\n! " + msg)
	}
	if msg, ok := m.fieldErrs[validators.FieldPassword]; ok {
		b.WriteString("\n! " + msg)
	}

	if m.submitting {
		b.WriteString("\n\n[Вход...]\n")
	} else {
		b.WriteString("\n\n[Войти]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("ВХОД", strings.TrimRight(b.String(), "\n"), "tab: след. поле │ enter: войти")
}

func (m *LoginModel) cmdLogin(input models.LoginInput) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return LoginResult{Err: auth.Login(ctx, input)}
	}
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
