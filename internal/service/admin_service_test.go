package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/seven-sport-admin/internal/adapter"
	"github.com/MKhiriev/seven-sport-admin/internal/logger"
	"github.com/MKhiriev/seven-sport-admin/internal/mock"
	"github.com/MKhiriev/seven-sport-admin/internal/validators"
	"github.com/MKhiriev/seven-sport-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAdminSvc — хелпер для создания adminService с моком адаптера
func newTestAdminSvc(t *testing.T, ctrl *gomock.Controller) (*adminService, *mock.MockServerAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewAdminService(mockAdapter, validators.NewFormValidator(), logger.Nop()).(*adminService)
	return svc, mockAdapter
}

func validAdminInput() models.AdminInput {
	return models.AdminInput{
		FullName:    "Alisher Navoiy",
		PhoneNumber: "901234567",
		Password:    "secret1",
	}
}

// ── Load ────────────────────────────────────────────────────────────────────

func TestAdminService_Load_ReplacesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAdapter := newTestAdminSvc(t, ctrl)

	want := []models.User{{ID: "1"}, {ID: "2"}}
	mockAdapter.EXPECT().Admins(gomock.Any()).Return(want, nil)

	got, err := svc.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, want, svc.Items())
}

func TestAdminService_Load_FailureLeavesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAdapter := newTestAdminSvc(t, ctrl)

	seeded := []models.User{{ID: "1"}}
	gomock.InOrder(
		mockAdapter.EXPECT().Admins(gomock.Any()).Return(seeded, nil),
		mockAdapter.EXPECT().Admins(gomock.Any()).Return(nil, &adapter.RequestError{Status: http.StatusInternalServerError, Message: "boom"}),
	)

	_, err := svc.Load(context.Background())
	require.NoError(t, err)

	_, err = svc.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, seeded, svc.Items())
}

// ── Create ──────────────────────────────────────────────────────────────────

// Validation runs before any network call: no adapter expectation is set,
// so a request would fail the test.
func TestAdminService_Create_ValidationFailureSkipsAdapter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := newTestAdminSvc(t, ctrl)

	err := svc.Create(context.Background(), models.AdminInput{PhoneNumber: "123"})

	require.Error(t, err)
	fieldErrs, ok := validators.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fieldErrs, validators.FieldFullName)
	assert.Contains(t, fieldErrs, validators.FieldPhoneNumber)
}

func TestAdminService_Create_SuccessResyncs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAdapter := newTestAdminSvc(t, ctrl)

	reloaded := []models.User{{ID: "1"}, {ID: "2"}}
	gomock.InOrder(
		mockAdapter.EXPECT().CreateAdmin(gomock.Any(), validAdminInput()).Return(nil),
		mockAdapter.EXPECT().Admins(gomock.Any()).Return(reloaded, nil),
	)

	err := svc.Create(context.Background(), validAdminInput())

	require.NoError(t, err)
	assert.Equal(t, reloaded, svc.Items())
}

// Create always clears a stray ID so the validator applies create rules.
func TestAdminService_Create_StripsID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAdapter := newTestAdminSvc(t, ctrl)

	input := validAdminInput()
	input.ID = "stale"

	want := validAdminInput()
	gomock.InOrder(
		mockAdapter.EXPECT().CreateAdmin(gomock.Any(), want).Return(nil),
		mockAdapter.EXPECT().Admins(gomock.Any()).Return(nil, nil),
	)

	require.NoError(t, svc.Create(context.Background(), input))
}

func TestAdminService_Create_AdapterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAdapter := newTestAdminSvc(t, ctrl)

	reqErr := &adapter.RequestError{Status: http.StatusBadRequest, Message: "телефон занят"}
	mockAdapter.EXPECT().CreateAdmin(gomock.Any(), gomock.Any()).Return(reqErr)

	err := svc.Create(context.Background(), validAdminInput())

	require.Error(t, err)
	assert.Equal(t, "телефон занят", adapter.ExtractMessage(err, ""))
	assert.Empty(t, svc.Items())
}

// ── Update ──────────────────────────────────────────────────────────────────

func TestAdminService_Update_EmptyID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := newTestAdminSvc(t, ctrl)

	err := svc.Update(context.Background(), validAdminInput())

	assert.ErrorIs(t, err, ErrEmptyID)
}

// An empty password on edit passes validation and reaches the adapter
// untouched; the server treats it as "no change".
func TestAdminService_Update_EmptyPasswordAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAdapter := newTestAdminSvc(t, ctrl)

	input := models.AdminInput{ID: "42", FullName: "A", PhoneNumber: "901234567"}
	gomock.InOrder(
		mockAdapter.EXPECT().UpdateAdmin(gomock.Any(), input).Return(nil),
		mockAdapter.EXPECT().Admins(gomock.Any()).Return(nil, nil),
	)

	require.NoError(t, svc.Update(context.Background(), input))
}

// ── Remove ──────────────────────────────────────────────────────────────────

// A confirmed delete filters the cache locally: no reload request follows.
func TestAdminService_Remove_OptimisticRemoval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAdapter := newTestAdminSvc(t, ctrl)

	mockAdapter.EXPECT().Admins(gomock.Any()).Return([]models.User{{ID: "1"}, {ID: "2"}}, nil)
	_, err := svc.Load(context.Background())
	require.NoError(t, err)

	mockAdapter.EXPECT().DeleteAdmin(gomock.Any(), "1").Return(nil)

	require.NoError(t, svc.Remove(context.Background(), "1"))

	items := svc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].ID)
}

func TestAdminService_Remove_FailureLeavesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAdapter := newTestAdminSvc(t, ctrl)

	seeded := []models.User{{ID: "1"}, {ID: "2"}}
	mockAdapter.EXPECT().Admins(gomock.Any()).Return(seeded, nil)
	_, err := svc.Load(context.Background())
	require.NoError(t, err)

	mockAdapter.EXPECT().DeleteAdmin(gomock.Any(), "1").
		Return(&adapter.RequestError{Status: http.StatusInternalServerError, Message: "boom"})

	err = svc.Remove(context.Background(), "1")

	require.Error(t, err)
	assert.Equal(t, seeded, svc.Items())
}

func TestAdminService_Remove_EmptyID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := newTestAdminSvc(t, ctrl)

	assert.ErrorIs(t, svc.Remove(context.Background(), ""), ErrEmptyID)
}
