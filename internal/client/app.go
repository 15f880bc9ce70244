package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/seven-sport-admin/internal/adapter"
	"github.com/MKhiriev/seven-sport-admin/internal/config"
	"github.com/MKhiriev/seven-sport-admin/internal/logger"
	"github.com/MKhiriev/seven-sport-admin/internal/service"
	"github.com/MKhiriev/seven-sport-admin/internal/session"
	"github.com/MKhiriev/seven-sport-admin/internal/store"
	"github.com/MKhiriev/seven-sport-admin/internal/tui"
)

type App struct {
	cfg    *config.ClientConfig
	logger *logger.Logger
}

func NewApp(cfg *config.ClientConfig, log *logger.Logger) *App {
	return &App{cfg: cfg, logger: log}
}

// Run executes the application. Each iteration covers one credential
// lifetime: the stored token is read once, baked into the adapter, and
// the UI runs until exit. When the UI reports a restart (login wrote a
// new token, or logout cleared it), the wiring is rebuilt from scratch
// so the next iteration picks up the new credential.
func (a *App) Run() error {
	ctx := context.Background()

	credentials, err := store.NewCredentialStore(a.cfg.Storage.CredentialsPath)
	if err != nil {
		return fmt.Errorf("open credential store: %w", err)
	}
	defer func() { _ = credentials.Close() }()

	token, err := credentials.Get()
	if err != nil {
		return fmt.Errorf("read credential: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(a.cfg.Adapter, a.cfg.Resources, token, a.logger)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	sessions := session.NewStore()
	services := service.NewClientServices(serverAdapter, credentials, a.logger)
	ui := tui.New(services, sessions, serverAdapter, token, a.cfg.App.Version, a.logger)

	restart, err := ui.Run(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Msg("выход по запросу пользователя")
			return nil
		}
		return err
	}

	if restart {
		a.logger.Info().Msg("перезапуск после смены учётных данных")
		if err = credentials.Close(); err != nil {
			return fmt.Errorf("close credential store: %w", err)
		}
		return a.Run()
	}

	return nil
}
