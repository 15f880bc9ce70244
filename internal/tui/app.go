package tui

import (
	"context"

	"github.com/MKhiriev/seven-sport-admin/internal/adapter"
	"github.com/MKhiriev/seven-sport-admin/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageAdmins      = "admins"
	pageTrainers    = "trainers"
	pageBlogs       = "blogs"
	pageAdminForm   = "admin_form"
	pageTrainerForm = "trainer_form"
	pageBlogForm    = "blog_form"
	pagePassword    = "password"
	pageProfile     = "profile"
	pageNotFound    = "not_found"
)

// RootModel is the TUI router and the session gate in one place:
// 1) runs the bootstrap identity check once, on Init
// 2) applies the route gate on every render: loading / app shell / login
// 3) handles global Ctrl+C quit
// 4) handles NavigateTo messages inside the app shell
// 5) delegates all other messages to the view the gate selected
type RootModel struct {
	ctx      context.Context
	sessions *session.Store
	identity adapter.ServerAdapter

	pages    map[string]tea.Model
	current  tea.Model
	loading  loadingModel
	login    *LoginModel
	notFound *NotFoundModel

	quitByUser bool
	restart    bool
}

// NewRootModel registers all app-shell pages. The shell opens on the
// admins page once the bootstrap authenticates the stored credential.
func NewRootModel(ctx context.Context, sessions *session.Store, identity adapter.ServerAdapter, pages map[string]tea.Model, login *LoginModel) RootModel {
	return RootModel{
		ctx:      ctx,
		sessions: sessions,
		identity: identity,
		pages:    pages,
		current:  pages[pageAdmins],
		loading:  newLoadingModel(),
		login:    login,
		notFound: NewNotFoundModel(),
	}
}

func (r RootModel) Init() tea.Cmd {
	return tea.Batch(r.loading.Init(), r.cmdBootstrap())
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		r.quitByUser = true
		return r, tea.Quit
	}

	switch msg := msg.(type) {
	case sessionChangedMsg:
		if session.Route(msg.state) == session.ViewApp {
			return r, r.current.Init()
		}
		if msg.state.LastError != "" {
			r.login.noteSessionError(msg.state.LastError)
		}
		return r, nil

	case LoginResult:
		if msg.Err == nil {
			r.restart = true
			return r, tea.Quit
		}

	case logoutDoneMsg:
		if msg.err == nil {
			r.restart = true
			return r, tea.Quit
		}

	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			r.notFound.page = msg.Page
			r.current = r.notFound
			return r, nil
		}

		r.current = next
		if msg.Payload != nil {
			return r, func() tea.Msg { return msg.Payload }
		}
		return r, r.current.Init()
	}

	switch session.Route(r.sessions.State()) {
	case session.ViewLoading:
		var cmd tea.Cmd
		r.loading, cmd = r.loading.Update(msg)
		return r, cmd
	case session.ViewLogin:
		updated, cmd := r.login.Update(msg)
		if login, ok := updated.(*LoginModel); ok {
			r.login = login
		}
		return r, cmd
	default:
		if r.current == nil {
			return r, nil
		}
		updated, cmd := r.current.Update(msg)
		r.current = updated
		return r, cmd
	}
}

func (r RootModel) View() string {
	var body string
	switch session.Route(r.sessions.State()) {
	case session.ViewLoading:
		body = r.loading.View()
	case session.ViewLogin:
		body = r.login.View()
	default:
		if r.current == nil {
			body = renderPage("SEVEN SPORT CENTER", "", "")
		} else {
			body = r.current.View()
		}
	}
	return appStyle.Render(body)
}

func (r RootModel) cmdBootstrap() tea.Cmd {
	ctx := r.ctx
	sessions := r.sessions
	identity := r.identity
	return func() tea.Msg {
		session.Bootstrap(ctx, sessions, identity)
		return sessionChangedMsg{state: sessions.State()}
	}
}
