package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/seven-sport-admin/internal/service"
	"github.com/MKhiriev/seven-sport-admin/internal/validators"
	"github.com/MKhiriev/seven-sport-admin/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Позиция описания в порядке обхода фокуса. Описание редактируется в
// textarea, остальные поля обычные textinput.
const blogDescriptionFocus = 1

// BlogFormModel is the create/edit form for blog posts. Kept photo URLs
// and new local files are edited as comma-separated lists; both travel
// to the server in one multipart request, so dropping a URL from the
// first field is how an existing photo is removed.
type BlogFormModel struct {
	ctx   context.Context
	blogs service.BlogService

	inputs     []textinput.Model
	descArea   textarea.Model
	focus      int
	editing    bool
	id         string
	submitting bool
	errMsg     string
	fieldErrs  validators.FieldErrors
}

func NewBlogFormModel(ctx context.Context, blogs service.BlogService) *BlogFormModel {
	m := &BlogFormModel{ctx: ctx, blogs: blogs}
	m.inputs, m.descArea = newBlogInputs()
	return m
}

func newBlogInputs() ([]textinput.Model, textarea.Model) {
	titleInput := textinput.New()
	titleInput.Placeholder = "Заголовок"
	titleInput.Width = 60
	titleInput.Focus()

	descArea := textarea.New()
	descArea.Placeholder = "Текст записи"
	descArea.SetWidth(60)
	descArea.SetHeight(4)

	existingInput := textinput.New()
	existingInput.Placeholder = "сохранённые URL через запятую"
	existingInput.Width = 60

	newPhotosInput := textinput.New()
	newPhotosInput.Placeholder = "/путь/к/файлу.jpg, /путь/к/другому.jpg"
	newPhotosInput.Width = 60

	return []textinput.Model{titleInput, existingInput, newPhotosInput}, descArea
}

// inputIdx maps a focus position to an index in m.inputs, skipping the
// textarea slot.
func (m *BlogFormModel) inputIdx() int {
	if m.focus > blogDescriptionFocus {
		return m.focus - 1
	}
	return m.focus
}

func (m *BlogFormModel) reset(blog *models.Blog) {
	m.inputs, m.descArea = newBlogInputs()
	m.focus = 0
	m.submitting = false
	m.errMsg = ""
	m.fieldErrs = nil
	m.editing = false
	m.id = ""

	if blog == nil {
		return
	}
	m.editing = true
	m.id = blog.ID
	m.inputs[0].SetValue(blog.Title)
	m.descArea.SetValue(blog.Description)
	m.inputs[1].SetValue(strings.Join(blog.Photos, ", "))
}

func (m *BlogFormModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m *BlogFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case blogFormInit:
		m.reset(msg.blog)
		return m, textarea.Blink

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
		return m, func() tea.Msg { return NavigateTo{Page: pageBlogs} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return NavigateTo{Page: pageBlogs} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			// enter внутри описания добавляет строку, не отправляет
			if m.focus == blogDescriptionFocus {
				break
			}
			return m, m.submit()
		case "ctrl+s":
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	if m.focus == blogDescriptionFocus {
		m.descArea, cmd = m.descArea.Update(msg)
	} else {
		idx := m.inputIdx()
		m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	}
	return m, cmd
}

func (m *BlogFormModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	input := models.BlogInput{
		ID:             m.id,
		Title:          strings.TrimSpace(m.inputs[0].Value()),
		Description:    strings.TrimSpace(m.descArea.Value()),
		ExistingPhotos: splitList(m.inputs[1].Value()),
		PhotoPaths:     splitList(m.inputs[2].Value()),
	}

	m.errMsg = ""
	m.fieldErrs = nil
	m.submitting = true
	return m.cmdSave(input)
}

func (m *BlogFormModel) View() string {
	var b strings.Builder
	b.WriteString("Заголовок    │ [" + m.inputs[0].View() + "]\n")
	writeFieldError(&b, m.fieldErrs, validators.FieldTitle)
	b.WriteString("Описание     │\n")
	b.WriteString(m.descArea.View() + "\n")
	writeFieldError(&b, m.fieldErrs, validators.FieldDescription)
	b.WriteString("Фото (URL)   │ [" + m.inputs[1].View() + "]\n")
	b.WriteString("Фото (файлы) │ [" + m.inputs[2].View() + "]\n")
	writeFieldError(&b, m.fieldErrs, validators.FieldPhotos)

	if m.submitting {
		b.WriteString("\n[Сохранение...]\n")
	} else {
		b.WriteString("\n[Сохранить]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nОшибка: " + m.errMsg + "\n")
	}

	title := "НОВАЯ ЗАПИСЬ БЛОГА"
	if m.editing {
		title = "РЕДАКТИРОВАНИЕ ЗАПИСИ"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ ctrl+s: сохранить")
}

func (m *BlogFormModel) cmdSave(input models.BlogInput) tea.Cmd {
	ctx := m.ctx
	svc := m.blogs
	editing := m.editing
	return func() tea.Msg {
		if editing {
			return itemSavedMsg{err: svc.Update(ctx, input)}
		}
		return itemSavedMsg{err: svc.Create(ctx, input)}
	}
}

func (m *BlogFormModel) focusNext() {
	m.blurFocused()
	m.focus = (m.focus + 1) % (len(m.inputs) + 1)
	m.focusFocused()
}

func (m *BlogFormModel) focusPrev() {
	m.blurFocused()
	m.focus = (m.focus - 1 + len(m.inputs) + 1) % (len(m.inputs) + 1)
	m.focusFocused()
}

func (m *BlogFormModel) blurFocused() {
	if m.focus == blogDescriptionFocus {
		m.descArea.Blur()
		return
	}
	m.inputs[m.inputIdx()].Blur()
}

func (m *BlogFormModel) focusFocused() {
	if m.focus == blogDescriptionFocus {
		m.descArea.Focus()
		return
	}
	m.inputs[m.inputIdx()].Focus()
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
