package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/seven-sport-admin/internal/adapter"
	"github.com/MKhiriev/seven-sport-admin/internal/cache"
	"github.com/MKhiriev/seven-sport-admin/internal/logger"
	"github.com/MKhiriev/seven-sport-admin/internal/validators"
	"github.com/MKhiriev/seven-sport-admin/models"
)

type trainerService struct {
	adapter   adapter.ServerAdapter
	cache     *cache.List[models.Trainer]
	validator validators.Validator
	logger    *logger.Logger
}

// NewTrainerService returns a TrainerService backed by the given server
// adapter with an empty list cache.
func NewTrainerService(serverAdapter adapter.ServerAdapter, validator validators.Validator, log *logger.Logger) TrainerService {
	return &trainerService{
		adapter:   serverAdapter,
		cache:     &cache.List[models.Trainer]{},
		validator: validator,
		logger:    log.GetChildLogger(),
	}
}

func (s *trainerService) Load(ctx context.Context) ([]models.Trainer, error) {
	trainers, err := s.adapter.Trainers(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("load trainers")
		return nil, fmt.Errorf("load trainers: %w", err)
	}

	s.cache.Replace(trainers)
	return s.cache.Items(), nil
}

func (s *trainerService) Items() []models.Trainer {
	return s.cache.Items()
}

func (s *trainerService) Create(ctx context.Context, input models.TrainerInput) error {
	input.ID = ""
	if err := s.validator.Validate(ctx, input); err != nil {
		return err
	}

	if err := s.uploadPhoto(ctx, &input); err != nil {
		return err
	}

	if err := s.adapter.CreateTrainer(ctx, input); err != nil {
		s.logger.Error().Err(err).Msg("create trainer")
		return fmt.Errorf("create trainer: %w", err)
	}

	_, err := s.Load(ctx)
	return err
}

func (s *trainerService) Update(ctx context.Context, input models.TrainerInput) error {
	if input.ID == "" {
		return ErrEmptyID
	}
	if err := s.validator.Validate(ctx, input); err != nil {
		return err
	}

	if err := s.uploadPhoto(ctx, &input); err != nil {
		return err
	}

	if err := s.adapter.UpdateTrainer(ctx, input); err != nil {
		s.logger.Error().Err(err).Str("id", input.ID).Msg("update trainer")
		return fmt.Errorf("update trainer: %w", err)
	}

	_, err := s.Load(ctx)
	return err
}

func (s *trainerService) Remove(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}

	if err := s.adapter.DeleteTrainer(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("id", id).Msg("delete trainer")
		return fmt.Errorf("delete trainer: %w", err)
	}

	s.cache.RemoveLocal(id)
	return nil
}

// uploadPhoto sends the local file attached to the form, if any, and
// swaps the filename reference into input.Photo before the profile is
// submitted. Photo upload and profile save are two requests: a save that
// fails after a successful upload leaves an orphaned file on the server,
// which the server side tolerates.
func (s *trainerService) uploadPhoto(ctx context.Context, input *models.TrainerInput) error {
	if input.PhotoPath == "" {
		return nil
	}

	file, err := os.Open(input.PhotoPath)
	if err != nil {
		s.logger.Error().Err(err).Str("path", input.PhotoPath).Msg("open trainer photo")
		return fmt.Errorf("open photo: %w", err)
	}
	defer func() { _ = file.Close() }()

	filename, err := s.adapter.UploadPhoto(ctx, filepath.Base(input.PhotoPath), file)
	if err != nil {
		s.logger.Error().Err(err).Msg("upload trainer photo")
		return fmt.Errorf("upload photo: %w", err)
	}

	input.Photo = filename
	input.PhotoPath = ""
	return nil
}
