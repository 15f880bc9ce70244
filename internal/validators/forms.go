package validators

import (
	"context"
	"strconv"
	"strings"

	"github.com/MKhiriev/seven-sport-admin/models"
)

// Field name constants shared with the UI, which uses them to attach an
// error message to the matching input.
const (
	FieldFullName        = "fullName"
	FieldPhoneNumber     = "phoneNumber"
	FieldPassword        = "password"
	FieldExperience      = "experience"
	FieldLevel           = "level"
	FieldStudents        = "students"
	FieldPhoto           = "photo"
	FieldTitle           = "title"
	FieldDescription     = "description"
	FieldPhotos          = "photos"
	FieldCurrentPassword = "currentPassword"
	FieldNewPassword     = "newPassword"
	FieldConfirm         = "confirm"
)

const (
	phoneNumberLength = 9
	minPasswordLength = 6
)

// FormValidator implements [Validator] for every form input model:
// AdminInput, TrainerInput, BlogInput, LoginInput, ChangePasswordInput.
// Both value and pointer forms are accepted.
type FormValidator struct {
}

// NewFormValidator constructs a new FormValidator and returns it as the
// Validator interface.
func NewFormValidator() Validator {
	return &FormValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Returns ErrUnsupportedType if obj does not match any known input model,
// a [FieldErrors] value listing every failing field, or nil when the
// input is valid.
func (v *FormValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.AdminInput:
		return v.validateAdmin(ctx, value)
	case *models.AdminInput:
		return v.validateAdmin(ctx, *value)

	case models.TrainerInput:
		return v.validateTrainer(ctx, value)
	case *models.TrainerInput:
		return v.validateTrainer(ctx, *value)

	case models.BlogInput:
		return v.validateBlog(ctx, value)
	case *models.BlogInput:
		return v.validateBlog(ctx, *value)

	case models.LoginInput:
		return v.validateLogin(ctx, value)
	case *models.LoginInput:
		return v.validateLogin(ctx, *value)

	case models.ChangePasswordInput:
		return v.validateChangePassword(ctx, value)
	case *models.ChangePasswordInput:
		return v.validateChangePassword(ctx, *value)
	}

	return ErrUnsupportedType
}

// validateAdmin checks the admin form. An empty ID means "create", where
// the password is required; on edit an empty password means "no change"
// and is accepted as-is.
func (v *FormValidator) validateAdmin(_ context.Context, input models.AdminInput) error {
	errs := FieldErrors{}

	if strings.TrimSpace(input.FullName) == "" {
		errs[FieldFullName] = "Полное имя обязательно"
	}

	if strings.TrimSpace(input.PhoneNumber) == "" {
		errs[FieldPhoneNumber] = "Введите номер телефона"
	} else if !isDigits(input.PhoneNumber, phoneNumberLength) {
		errs[FieldPhoneNumber] = "Номер телефона должен содержать ровно 9 цифр"
	}

	creating := input.ID == ""
	switch {
	case creating && strings.TrimSpace(input.Password) == "":
		errs[FieldPassword] = "Введите пароль"
	case input.Password != "" && len(input.Password) < minPasswordLength:
		errs[FieldPassword] = "Пароль должен содержать не менее 6 символов"
	}

	return errsOrNil(errs)
}

func (v *FormValidator) validateTrainer(_ context.Context, input models.TrainerInput) error {
	errs := FieldErrors{}

	if strings.TrimSpace(input.FullName) == "" {
		errs[FieldFullName] = "Полное имя обязательно"
	}

	if !isNumeric(input.Experience) {
		errs[FieldExperience] = "Опыт должен быть числом и не может быть пустым"
	}

	if !input.Level.Valid() {
		errs[FieldLevel] = "Уровень (пояс) обязателен"
	}

	if !isNumeric(input.Students) {
		errs[FieldStudents] = "Количество студентов должно быть числом"
	}

	if input.PhotoPath == "" && input.Photo == "" {
		errs[FieldPhoto] = "Фото обязательно"
	}

	return errsOrNil(errs)
}

func (v *FormValidator) validateBlog(_ context.Context, input models.BlogInput) error {
	errs := FieldErrors{}

	if strings.TrimSpace(input.Title) == "" {
		errs[FieldTitle] = "Название блога обязательно"
	}

	if strings.TrimSpace(input.Description) == "" {
		errs[FieldDescription] = "Описание обязательно"
	}

	if len(input.ExistingPhotos)+len(input.PhotoPaths) == 0 {
		errs[FieldPhotos] = "Добавьте хотя бы одну фотографию"
	}

	return errsOrNil(errs)
}

func (v *FormValidator) validateLogin(_ context.Context, input models.LoginInput) error {
	errs := FieldErrors{}

	if strings.TrimSpace(input.PhoneNumber) == "" {
		errs[FieldPhoneNumber] = "Введите номер телефона"
	} else if !isDigits(input.PhoneNumber, phoneNumberLength) {
		errs[FieldPhoneNumber] = "Номер телефона должен содержать ровно 9 цифр"
	}

	if strings.TrimSpace(input.Password) == "" {
		errs[FieldPassword] = "Введите пароль"
	} else if len(input.Password) < minPasswordLength {
		errs[FieldPassword] = "Пароль должен содержать не менее 6 символов"
	}

	return errsOrNil(errs)
}

func (v *FormValidator) validateChangePassword(_ context.Context, input models.ChangePasswordInput) error {
	errs := FieldErrors{}

	if strings.TrimSpace(input.CurrentPassword) == "" {
		errs[FieldCurrentPassword] = "Введите текущий пароль"
	}

	if strings.TrimSpace(input.NewPassword) == "" {
		errs[FieldNewPassword] = "Введите новый пароль"
	} else if len(input.NewPassword) < minPasswordLength {
		errs[FieldNewPassword] = "Пароль должен содержать не менее 6 символов"
	}

	if input.Confirm != input.NewPassword {
		errs[FieldConfirm] = "Пароли не совпадают"
	}

	return errsOrNil(errs)
}

// isDigits reports whether s consists of exactly length ASCII digits.
func isDigits(s string, length int) bool {
	if len(s) != length {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// isNumeric reports whether s parses as a number after trimming.
func isNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func errsOrNil(errs FieldErrors) error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}
