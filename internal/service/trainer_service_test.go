package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/seven-sport-admin/internal/logger"
	"github.com/MKhiriev/seven-sport-admin/internal/mock"
	"github.com/MKhiriev/seven-sport-admin/internal/validators"
	"github.com/MKhiriev/seven-sport-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestTrainerSvc(t *testing.T, ctrl *gomock.Controller) (*trainerService, *mock.MockServerAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewTrainerService(mockAdapter, validators.NewFormValidator(), logger.Nop()).(*trainerService)
	return svc, mockAdapter
}

func writeTempPhoto(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "photo.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpeg-bytes"), 0o600))
	return path
}

// ── Create ──────────────────────────────────────────────────────────────────

// A new local photo is uploaded first; the returned filename replaces the
// path before the profile itself is submitted.
func TestTrainerService_Create_UploadsPhotoFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAdapter := newTestTrainerSvc(t, ctrl)

	photoPath := writeTempPhoto(t)

	gomock.InOrder(
		mockAdapter.EXPECT().
			UploadPhoto(gomock.Any(), "photo.jpg", gomock.Any()).
			Return("stored-photo.jpg", nil),
		mockAdapter.EXPECT().
			CreateTrainer(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input models.TrainerInput) error {
				assert.Equal(t, "stored-photo.jpg", input.Photo)
				assert.Empty(t, input.PhotoPath)
				return nil
			}),
		mockAdapter.EXPECT().Trainers(gomock.Any()).Return(nil, nil),
	)

	err := svc.Create(context.Background(), models.TrainerInput{
		FullName:   "T",
		Experience: "10",
		Students:   "25",
		Level:      models.LevelQora,
		PhotoPath:  photoPath,
	})
	require.NoError(t, err)
}

// A profile that keeps its stored photo needs no upload round trip.
func TestTrainerService_Create_ExistingPhotoSkipsUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAdapter := newTestTrainerSvc(t, ctrl)

	input := models.TrainerInput{
		FullName:   "T",
		Experience: "10",
		Students:   "25",
		Level:      models.LevelOq,
		Photo:      "already-stored.jpg",
	}
	gomock.InOrder(
		mockAdapter.EXPECT().CreateTrainer(gomock.Any(), input).Return(nil),
		mockAdapter.EXPECT().Trainers(gomock.Any()).Return(nil, nil),
	)

	require.NoError(t, svc.Create(context.Background(), input))
}

// A failed upload aborts the whole submission: the profile request is
// never issued.
func TestTrainerService_Create_UploadFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAdapter := newTestTrainerSvc(t, ctrl)

	photoPath := writeTempPhoto(t)
	mockAdapter.EXPECT().
		UploadPhoto(gomock.Any(), "photo.jpg", gomock.Any()).
		Return("", errors.New("upload failed"))

	err := svc.Create(context.Background(), models.TrainerInput{
		FullName:   "T",
		Experience: "10",
		Students:   "25",
		Level:      models.LevelOq,
		PhotoPath:  photoPath,
	})
	require.Error(t, err)
}

func TestTrainerService_Create_ValidationFailureSkipsAdapter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := newTestTrainerSvc(t, ctrl)

	err := svc.Create(context.Background(), models.TrainerInput{
		FullName:   "T",
		Experience: "ten",
		Students:   "25",
		Level:      models.TrainerLevel("Purple"),
		Photo:      "stored.jpg",
	})

	require.Error(t, err)
	fieldErrs, ok := validators.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fieldErrs, validators.FieldExperience)
	assert.Contains(t, fieldErrs, validators.FieldLevel)
}

// ── Update / Remove ─────────────────────────────────────────────────────────

func TestTrainerService_Update_EmptyID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := newTestTrainerSvc(t, ctrl)

	err := svc.Update(context.Background(), models.TrainerInput{
		FullName:   "T",
		Experience: "10",
		Students:   "25",
		Level:      models.LevelOq,
		Photo:      "stored.jpg",
	})
	assert.ErrorIs(t, err, ErrEmptyID)
}

func TestTrainerService_Remove_OptimisticRemoval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockAdapter := newTestTrainerSvc(t, ctrl)

	mockAdapter.EXPECT().Trainers(gomock.Any()).
		Return([]models.Trainer{{ID: "t1"}, {ID: "t2"}}, nil)
	_, err := svc.Load(context.Background())
	require.NoError(t, err)

	mockAdapter.EXPECT().DeleteTrainer(gomock.Any(), "t2").Return(nil)

	require.NoError(t, svc.Remove(context.Background(), "t2"))

	items := svc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "t1", items[0].ID)
}
