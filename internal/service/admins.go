package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/seven-sport-admin/internal/adapter"
	"github.com/MKhiriev/seven-sport-admin/internal/cache"
	"github.com/MKhiriev/seven-sport-admin/internal/logger"
	"github.com/MKhiriev/seven-sport-admin/internal/validators"
	"github.com/MKhiriev/seven-sport-admin/models"
)

type adminService struct {
	adapter   adapter.ServerAdapter
	cache     *cache.List[models.User]
	validator validators.Validator
	logger    *logger.Logger
}

// NewAdminService returns an AdminService backed by the given server
// adapter with an empty list cache.
func NewAdminService(serverAdapter adapter.ServerAdapter, validator validators.Validator, log *logger.Logger) AdminService {
	return &adminService{
		adapter:   serverAdapter,
		cache:     &cache.List[models.User]{},
		validator: validator,
		logger:    log.GetChildLogger(),
	}
}

func (s *adminService) Load(ctx context.Context) ([]models.User, error) {
	admins, err := s.adapter.Admins(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("load admins")
		return nil, fmt.Errorf("load admins: %w", err)
	}

	s.cache.Replace(admins)
	return s.cache.Items(), nil
}

func (s *adminService) Items() []models.User {
	return s.cache.Items()
}

func (s *adminService) Create(ctx context.Context, input models.AdminInput) error {
	input.ID = ""
	if err := s.validator.Validate(ctx, input); err != nil {
		return err
	}

	if err := s.adapter.CreateAdmin(ctx, input); err != nil {
		s.logger.Error().Err(err).Msg("create admin")
		return fmt.Errorf("create admin: %w", err)
	}

	_, err := s.Load(ctx)
	return err
}

func (s *adminService) Update(ctx context.Context, input models.AdminInput) error {
	if input.ID == "" {
		return ErrEmptyID
	}
	if err := s.validator.Validate(ctx, input); err != nil {
		return err
	}

	if err := s.adapter.UpdateAdmin(ctx, input); err != nil {
		s.logger.Error().Err(err).Str("id", input.ID).Msg("update admin")
		return fmt.Errorf("update admin: %w", err)
	}

	_, err := s.Load(ctx)
	return err
}

func (s *adminService) Remove(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}

	if err := s.adapter.DeleteAdmin(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("id", id).Msg("delete admin")
		return fmt.Errorf("delete admin: %w", err)
	}

	s.cache.RemoveLocal(id)
	return nil
}
