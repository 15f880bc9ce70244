package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/seven-sport-admin/internal/adapter"
	"github.com/MKhiriev/seven-sport-admin/internal/logger"
	"github.com/MKhiriev/seven-sport-admin/internal/validators"
	"github.com/MKhiriev/seven-sport-admin/models"
)

type authService struct {
	adapter     adapter.ServerAdapter
	credentials CredentialWriter
	validator   validators.Validator
	logger      *logger.Logger
}

// NewAuthService returns an AuthService that persists the bearer token
// through the given credential writer.
func NewAuthService(serverAdapter adapter.ServerAdapter, credentials CredentialWriter, validator validators.Validator, log *logger.Logger) AuthService {
	return &authService{
		adapter:     serverAdapter,
		credentials: credentials,
		validator:   validator,
		logger:      log.GetChildLogger(),
	}
}

func (s *authService) Login(ctx context.Context, input models.LoginInput) error {
	if err := s.validator.Validate(ctx, input); err != nil {
		return err
	}

	resp, err := s.adapter.Login(ctx, input)
	if err != nil {
		s.logger.Error().Err(err).Msg("login request")
		return fmt.Errorf("login: %w", err)
	}

	// Некоторые отказы сервер присылает как 200 без токена, но с message.
	if resp.Token == "" {
		if resp.Message != "" {
			return fmt.Errorf("%w: %s", ErrLoginFailed, resp.Message)
		}
		return ErrLoginFailed
	}

	if err := s.credentials.Set(resp.Token); err != nil {
		s.logger.Error().Err(err).Msg("persist credential")
		return fmt.Errorf("save credential: %w", err)
	}

	s.logger.Info().Msg("login succeeded, credential saved")
	return nil
}

func (s *authService) ChangePassword(ctx context.Context, input models.ChangePasswordInput) error {
	if err := s.validator.Validate(ctx, input); err != nil {
		return err
	}

	if err := s.adapter.ChangePassword(ctx, input); err != nil {
		s.logger.Error().Err(err).Msg("change password")
		return fmt.Errorf("change password: %w", err)
	}

	return nil
}

func (s *authService) Logout() error {
	if err := s.credentials.Clear(); err != nil {
		s.logger.Error().Err(err).Msg("clear credential")
		return fmt.Errorf("clear credential: %w", err)
	}

	s.logger.Info().Msg("credential cleared")
	return nil
}
