// Package tui is the Bubble Tea front end of the admin client. A single
// program run covers one credential lifetime: the router boots with the
// identity check, gates every frame on the session state (loading, login
// or app shell), and quits with Restart=true when a login or logout
// changed the persisted credential, so the caller rebuilds the whole
// wiring with the new token.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/seven-sport-admin/internal/adapter"
	"github.com/MKhiriev/seven-sport-admin/internal/logger"
	"github.com/MKhiriev/seven-sport-admin/internal/service"
	"github.com/MKhiriev/seven-sport-admin/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	services *service.ClientServices
	sessions *session.Store
	identity adapter.ServerAdapter
	token    string
	version  string
	logger   *logger.Logger
}

func New(services *service.ClientServices, sessions *session.Store, identity adapter.ServerAdapter, token, version string, log *logger.Logger) *TUI {
	return &TUI{
		services: services,
		sessions: sessions,
		identity: identity,
		token:    token,
		version:  version,
		logger:   log.GetChildLogger(),
	}
}

// Run executes one program lifetime. restart reports that the stored
// credential changed (login or logout) and the application must rebuild
// its wiring; a false restart with a nil error means the user quit.
func (t *TUI) Run(ctx context.Context) (restart bool, err error) {
	pages := map[string]tea.Model{
		pageAdmins:      NewAdminListModel(ctx, t.services.Admins, t.services.Auth),
		pageTrainers:    NewTrainerListModel(ctx, t.services.Trainers, t.services.Auth),
		pageBlogs:       NewBlogListModel(ctx, t.services.Blogs, t.services.Auth),
		pageAdminForm:   NewAdminFormModel(ctx, t.services.Admins),
		pageTrainerForm: NewTrainerFormModel(ctx, t.services.Trainers),
		pageBlogForm:    NewBlogFormModel(ctx, t.services.Blogs),
		pagePassword:    NewPasswordModel(ctx, t.services.Auth),
		pageProfile:     NewProfileModel(t.sessions, t.token, t.version),
	}

	login := NewLoginModel(ctx, t.services.Auth)
	root := NewRootModel(ctx, t.sessions, t.identity, pages, login)

	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return false, ErrUserQuit
	}

	return result.restart, nil
}
