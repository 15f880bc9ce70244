package tui

import (
	"github.com/MKhiriev/seven-sport-admin/internal/session"
	"github.com/MKhiriev/seven-sport-admin/models"
)

// NavigateTo switches the app shell to another page. An optional Payload
// is re-dispatched to the target page right after the switch, which is
// how forms receive their prefill.
type NavigateTo struct {
	Page    string
	Payload interface{}
}

// sessionChangedMsg is emitted after the bootstrap sequence finishes;
// the router re-applies the route gate on receipt.
type sessionChangedMsg struct {
	state session.State
}

// LoginResult finishes the login flow. A nil Err means the token is
// persisted and the application must restart its wiring.
type LoginResult struct {
	Err error
}

type logoutDoneMsg struct {
	err error
}

type passwordChangedMsg struct {
	err error
}

type adminsLoadedMsg struct {
	items []models.User
	err   error
}

type trainersLoadedMsg struct {
	items []models.Trainer
	err   error
}

type blogsLoadedMsg struct {
	items []models.Blog
	err   error
}

// itemSavedMsg reports the outcome of a create or update submission.
type itemSavedMsg struct {
	err error
}

type itemDeletedMsg struct {
	err error
}

// adminFormInit resets the admin form; a nil admin means create mode.
type adminFormInit struct {
	admin *models.User
}

type trainerFormInit struct {
	trainer *models.Trainer
}

type blogFormInit struct {
	blog *models.Blog
}

type copiedMsg struct{}

type clearStatusMsg struct{}
