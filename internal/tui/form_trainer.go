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

// TrainerFormModel is the create/edit form for trainer profiles. The
// belt level is picked with left/right from the fixed ladder; the photo
// field takes a local file path which is uploaded before the profile is
// submitted.
type TrainerFormModel struct {
	ctx      context.Context
	trainers service.TrainerService

	inputs     []textinput.Model
	focus      int
	levelIdx   int
	editing    bool
	id         string
	photo      string
	submitting bool
	errMsg     string
	fieldErrs  validators.FieldErrors
}

// Input order: full name, experience, students, photo path. The level
// selector sits between students and photo path as pseudo-focus index 3.
const trainerLevelFocus = 3

func NewTrainerFormModel(ctx context.Context, trainers service.TrainerService) *TrainerFormModel {
	return &TrainerFormModel{ctx: ctx, trainers: trainers, inputs: newTrainerInputs()}
}

func newTrainerInputs() []textinput.Model {
	nameInput := textinput.New()
	nameInput.Placeholder = "Фамилия Имя"
	nameInput.Width = 40
	nameInput.Focus()

	experienceInput := textinput.New()
	experienceInput.Placeholder = "лет, число"
	experienceInput.Width = 40

	studentsInput := textinput.New()
	studentsInput.Placeholder = "число"
	studentsInput.Width = 40

	photoInput := textinput.New()
	photoInput.Placeholder = "/путь/к/файлу.jpg"
	photoInput.Width = 40

	return []textinput.Model{nameInput, experienceInput, studentsInput, photoInput}
}

func (m *TrainerFormModel) reset(trainer *models.Trainer) {
	m.inputs = newTrainerInputs()
	m.focus = 0
	m.levelIdx = 0
	m.submitting = false
	m.errMsg = ""
	m.fieldErrs = nil
	m.editing = false
	m.id = ""
	m.photo = ""

	if trainer == nil {
		return
	}
	m.editing = true
	m.id = trainer.ID
	m.photo = trainer.Photo
	m.inputs[0].SetValue(trainer.FullName)
	m.inputs[1].SetValue(trainer.Experience)
	m.inputs[2].SetValue(trainer.Students)
	for i, level := range models.TrainerLevels() {
		if level == trainer.Level {
			m.levelIdx = i
			break
		}
	}
	m.inputs[3].Placeholder = "пусто = текущее фото"
}

func (m *TrainerFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *TrainerFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case trainerFormInit:
		m.reset(msg.trainer)
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
		return m, func() tea.Msg { return NavigateTo{Page: pageTrainers} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return NavigateTo{Page: pageTrainers} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "left":
			if m.focus == trainerLevelFocus && m.levelIdx > 0 {
				m.levelIdx--
			}
			return m, nil
		case "right":
			if m.focus == trainerLevelFocus && m.levelIdx < len(models.TrainerLevels())-1 {
				m.levelIdx++
			}
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			input := models.TrainerInput{
				ID:         m.id,
				FullName:   strings.TrimSpace(m.inputs[0].Value()),
				Experience: strings.TrimSpace(m.inputs[1].Value()),
				Students:   strings.TrimSpace(m.inputs[2].Value()),
				Level:      models.TrainerLevels()[m.levelIdx],
				PhotoPath:  strings.TrimSpace(m.inputs[3].Value()),
				Photo:      m.photo,
			}

			m.errMsg = ""
			m.fieldErrs = nil
			m.submitting = true
			return m, m.cmdSave(input)
		}
	}

	if m.focus == trainerLevelFocus {
		return m, nil
	}

	idx := m.inputIdx()
	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	return m, cmd
}

// inputIdx maps the focus position onto the inputs slice, skipping the
// level selector pseudo-field.
func (m *TrainerFormModel) inputIdx() int {
	if m.focus > trainerLevelFocus {
		return m.focus - 1
	}
	return m.focus
}

func (m *TrainerFormModel) View() string {
	levels := models.TrainerLevels()
	levelView := string(levels[m.levelIdx])
	if m.focus == trainerLevelFocus {
		levelView = "◄ " + levelView + " ►"
	}

	var b strings.Builder
	b.WriteString("Полное имя  │ [" + m.inputs[0].View() + "]\n")
	writeFieldError(&b, m.fieldErrs, validators.FieldFullName)
	b.WriteString("Стаж        │ [" + m.inputs[1].View() + "]\n")
	writeFieldError(&b, m.fieldErrs, validators.FieldExperience)
	b.WriteString("Учеников    │ [" + m.inputs[2].View() + "]\n")
	writeFieldError(&b, m.fieldErrs, validators.FieldStudents)
	b.WriteString("Пояс        │ " + levelView + "\n")
	writeFieldError(&b, m.fieldErrs, validators.FieldLevel)
	b.WriteString("Фото (файл) │ [" + m.inputs[3].View() + "]\n")
	writeFieldError(&b, m.fieldErrs, validators.FieldPhoto)

	if m.editing && m.photo != "" {
		b.WriteString("Текущее фото│ " + fitText(m.photo, 40) + "\n")
	}

	if m.submitting {
		b.WriteString("\n[Сохранение...]\n")
	} else {
		b.WriteString("\n[Сохранить]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nОшибка: " + m.errMsg + "\n")
	}

	title := "НОВЫЙ ТРЕНЕР"
	if m.editing {
		title = "РЕДАКТИРОВАНИЕ ТРЕНЕРА"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ ←/→: пояс │ enter: сохранить")
}

func (m *TrainerFormModel) cmdSave(input models.TrainerInput) tea.Cmd {
	ctx := m.ctx
	svc := m.trainers
	editing := m.editing
	return func() tea.Msg {
		if editing {
			return itemSavedMsg{err: svc.Update(ctx, input)}
		}
		return itemSavedMsg{err: svc.Create(ctx, input)}
	}
}

// Focus cycles over 5 positions: 4 text inputs plus the level selector.
func (m *TrainerFormModel) focusNext() {
	if m.focus != trainerLevelFocus {
		m.inputs[m.inputIdx()].Blur()
	}
	m.focus = (m.focus + 1) % (len(m.inputs) + 1)
	if m.focus != trainerLevelFocus {
		m.inputs[m.inputIdx()].Focus()
	}
}

func (m *TrainerFormModel) focusPrev() {
	if m.focus != trainerLevelFocus {
		m.inputs[m.inputIdx()].Blur()
	}
	m.focus = (m.focus - 1 + len(m.inputs) + 1) % (len(m.inputs) + 1)
	if m.focus != trainerLevelFocus {
		m.inputs[m.inputIdx()].Focus()
	}
}
