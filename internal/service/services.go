package service

import (
	"github.com/MKhiriev/seven-sport-admin/internal/adapter"
	"github.com/MKhiriev/seven-sport-admin/internal/logger"
	"github.com/MKhiriev/seven-sport-admin/internal/validators"
)

// CredentialWriter is the slice of the credential store the auth
// service needs: it writes and clears the token, never reads it.
type CredentialWriter interface {
	Set(token string) error
	Clear() error
}

// ClientServices bundles every service the TUI layer depends on.
type ClientServices struct {
	Auth     AuthService
	Admins   AdminService
	Trainers TrainerService
	Blogs    BlogService
}

// NewClientServices wires the resource and auth services over a shared
// server adapter and form validator.
func NewClientServices(serverAdapter adapter.ServerAdapter, credentials CredentialWriter, log *logger.Logger) *ClientServices {
	validator := validators.NewFormValidator()

	return &ClientServices{
		Auth:     NewAuthService(serverAdapter, credentials, validator, log),
		Admins:   NewAdminService(serverAdapter, validator, log),
		Trainers: NewTrainerService(serverAdapter, validator, log),
		Blogs:    NewBlogService(serverAdapter, validator, log),
	}
}
