// Package service implements the application logic of the admin client:
// one service per resource screen sharing the load/create/update/remove
// pattern over the HTTP adapter and an in-memory list cache, plus the
// authentication service used by the login and profile screens.
package service

import (
	"context"

	"github.com/MKhiriev/seven-sport-admin/models"
)

// AdminService manages the administrator collection.
//
// Load fetches the collection and replaces the cached snapshot. Create
// and Update validate first (a [validators.FieldErrors] return means no
// request was sent), then submit and resync via a full reload. Remove
// deletes on the server and, on success, filters the cached snapshot
// locally without refetching — the one optimistic mutation in the client.
// Any failed request leaves the cache exactly as it was.
type AdminService interface {
	Load(ctx context.Context) ([]models.User, error)
	Items() []models.User
	Create(ctx context.Context, input models.AdminInput) error
	Update(ctx context.Context, input models.AdminInput) error
	Remove(ctx context.Context, id string) error
}

// TrainerService manages the trainer collection. Same contract as
// [AdminService]; Create and Update additionally upload the local photo
// file before submitting when the form attached a new one.
type TrainerService interface {
	Load(ctx context.Context) ([]models.Trainer, error)
	Items() []models.Trainer
	Create(ctx context.Context, input models.TrainerInput) error
	Update(ctx context.Context, input models.TrainerInput) error
	Remove(ctx context.Context, id string) error
}

// BlogService manages the blog collection. Same contract as
// [AdminService]; photo files travel inside the create/update request
// itself (multipart), not as a separate upload.
type BlogService interface {
	Load(ctx context.Context) ([]models.Blog, error)
	Items() []models.Blog
	Create(ctx context.Context, input models.BlogInput) error
	Update(ctx context.Context, input models.BlogInput) error
	Remove(ctx context.Context, id string) error
}

// AuthService handles login, password change, and logout.
type AuthService interface {
	// Login validates the credentials, exchanges them for a bearer
	// token, and persists it. The token takes effect on the next
	// application start: the running adapter keeps its construction-time
	// header.
	Login(ctx context.Context, input models.LoginInput) error

	// ChangePassword validates and submits the password change for the
	// current administrator.
	ChangePassword(ctx context.Context, input models.ChangePasswordInput) error

	// Logout clears the persisted credential. The caller restarts the
	// application afterwards, which deterministically lands on the login
	// screen.
	Logout() error
}
