package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/seven-sport-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validate(t *testing.T, obj any) (FieldErrors, bool) {
	t.Helper()
	err := NewFormValidator().Validate(context.Background(), obj)
	if err == nil {
		return nil, false
	}
	fieldErrs, ok := AsFieldErrors(err)
	require.True(t, ok)
	return fieldErrs, true
}

// ── Admin ───────────────────────────────────────────────────────────────────

func TestValidateAdmin_CreateValid(t *testing.T) {
	_, failed := validate(t, models.AdminInput{
		FullName:    "Alisher Navoiy",
		PhoneNumber: "901234567",
		Password:    "secret1",
	})
	assert.False(t, failed)
}

func TestValidateAdmin_PhoneMustBeNineDigits(t *testing.T) {
	for _, phone := range []string{"12345", "1234567890", "90123456a", "90 123456"} {
		errs, failed := validate(t, models.AdminInput{
			FullName:    "A",
			PhoneNumber: phone,
			Password:    "secret1",
		})
		require.True(t, failed, "phone %q", phone)
		assert.Equal(t, "Номер телефона должен содержать ровно 9 цифр", errs[FieldPhoneNumber])
	}
}

func TestValidateAdmin_ShortPasswordOnCreate(t *testing.T) {
	errs, failed := validate(t, models.AdminInput{
		FullName:    "A",
		PhoneNumber: "901234567",
		Password:    "abcde",
	})
	require.True(t, failed)
	assert.Equal(t, "Пароль должен содержать не менее 6 символов", errs[FieldPassword])
}

func TestValidateAdmin_EmptyPasswordRequiredOnCreate(t *testing.T) {
	errs, failed := validate(t, models.AdminInput{
		FullName:    "A",
		PhoneNumber: "901234567",
	})
	require.True(t, failed)
	assert.Contains(t, errs, FieldPassword)
}

// On edit an empty password means "leave unchanged" and passes.
func TestValidateAdmin_EmptyPasswordAllowedOnEdit(t *testing.T) {
	_, failed := validate(t, models.AdminInput{
		ID:          "42",
		FullName:    "A",
		PhoneNumber: "901234567",
	})
	assert.False(t, failed)
}

// A provided password is still length-checked on edit.
func TestValidateAdmin_ShortPasswordRejectedOnEdit(t *testing.T) {
	errs, failed := validate(t, models.AdminInput{
		ID:          "42",
		FullName:    "A",
		PhoneNumber: "901234567",
		Password:    "abc",
	})
	require.True(t, failed)
	assert.Contains(t, errs, FieldPassword)
}

// Errors accumulate: every failing field is reported, not just the first.
func TestValidateAdmin_AccumulatesAllErrors(t *testing.T) {
	errs, failed := validate(t, models.AdminInput{
		FullName:    "   ",
		PhoneNumber: "123",
	})
	require.True(t, failed)
	assert.Len(t, errs, 3)
	assert.Contains(t, errs, FieldFullName)
	assert.Contains(t, errs, FieldPhoneNumber)
	assert.Contains(t, errs, FieldPassword)
}

// ── Trainer ─────────────────────────────────────────────────────────────────

func TestValidateTrainer_Valid(t *testing.T) {
	_, failed := validate(t, models.TrainerInput{
		FullName:   "T",
		Experience: "10",
		Students:   "25",
		Level:      models.LevelYashil,
		PhotoPath:  "/tmp/photo.jpg",
	})
	assert.False(t, failed)
}

func TestValidateTrainer_NumericFields(t *testing.T) {
	errs, failed := validate(t, models.TrainerInput{
		FullName:   "T",
		Experience: "ten",
		Students:   "",
		Level:      models.LevelOq,
		Photo:      "stored.jpg",
	})
	require.True(t, failed)
	assert.Contains(t, errs, FieldExperience)
	assert.Contains(t, errs, FieldStudents)
}

func TestValidateTrainer_InvalidLevel(t *testing.T) {
	errs, failed := validate(t, models.TrainerInput{
		FullName:   "T",
		Experience: "1",
		Students:   "1",
		Level:      models.TrainerLevel("Purple"),
		Photo:      "stored.jpg",
	})
	require.True(t, failed)
	assert.Equal(t, "Уровень (пояс) обязателен", errs[FieldLevel])
}

// Either a new local file or an already stored photo satisfies the
// exactly-one-photo rule; neither fails it.
func TestValidateTrainer_PhotoRequired(t *testing.T) {
	errs, failed := validate(t, models.TrainerInput{
		FullName:   "T",
		Experience: "1",
		Students:   "1",
		Level:      models.LevelOq,
	})
	require.True(t, failed)
	assert.Contains(t, errs, FieldPhoto)

	_, failed = validate(t, models.TrainerInput{
		FullName:   "T",
		Experience: "1",
		Students:   "1",
		Level:      models.LevelOq,
		Photo:      "stored.jpg",
	})
	assert.False(t, failed)
}

// ── Blog ────────────────────────────────────────────────────────────────────

func TestValidateBlog_PhotoUnionMustBeNonEmpty(t *testing.T) {
	errs, failed := validate(t, models.BlogInput{
		Title:       "Title",
		Description: "Body",
	})
	require.True(t, failed)
	assert.Equal(t, "Добавьте хотя бы одну фотографию", errs[FieldPhotos])

	_, failed = validate(t, models.BlogInput{
		Title:          "Title",
		Description:    "Body",
		ExistingPhotos: []string{"https://cdn/a.jpg"},
	})
	assert.False(t, failed)

	_, failed = validate(t, models.BlogInput{
		Title:       "Title",
		Description: "Body",
		PhotoPaths:  []string{"/tmp/new.jpg"},
	})
	assert.False(t, failed)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestValidateLogin(t *testing.T) {
	errs, failed := validate(t, models.LoginInput{PhoneNumber: "12345", Password: "abc"})
	require.True(t, failed)
	assert.Contains(t, errs, FieldPhoneNumber)
	assert.Contains(t, errs, FieldPassword)

	_, failed = validate(t, models.LoginInput{PhoneNumber: "901234567", Password: "secret1"})
	assert.False(t, failed)
}

// ── ChangePassword ──────────────────────────────────────────────────────────

func TestValidateChangePassword_ConfirmMismatch(t *testing.T) {
	errs, failed := validate(t, models.ChangePasswordInput{
		CurrentPassword: "oldpass",
		NewPassword:     "newpass",
		Confirm:         "different",
	})
	require.True(t, failed)
	assert.Equal(t, "Пароли не совпадают", errs[FieldConfirm])
}

func TestValidateChangePassword_Valid(t *testing.T) {
	_, failed := validate(t, models.ChangePasswordInput{
		CurrentPassword: "oldpass",
		NewPassword:     "newpass",
		Confirm:         "newpass",
	})
	assert.False(t, failed)
}

// ── Dispatch ────────────────────────────────────────────────────────────────

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewFormValidator().Validate(context.Background(), struct{}{})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_PointerInputs(t *testing.T) {
	err := NewFormValidator().Validate(context.Background(), &models.LoginInput{
		PhoneNumber: "901234567",
		Password:    "secret1",
	})
	assert.NoError(t, err)
}
