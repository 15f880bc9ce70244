// Package adapter provides the transport layer for communicating with the
// sport-center API.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Request failures are mapped to [RequestError] so that callers can
// retrieve the server's "message" field via [ExtractMessage] for the
// user-facing alert.
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/seven-sport-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// sport-center API. Implementations are responsible for serialisation,
// the authorization header, and mapping transport-level errors to
// [RequestError].
//
// The bearer credential is fixed when the adapter is constructed and is
// never reloaded: a login performed after construction takes effect only
// through an application restart.
type ServerAdapter interface {
	// Profile performs the identity check. A soft failure (invalid or
	// expired token) is not an error: the server answers 200 with only
	// the Message field populated, and the caller must inspect it.
	Profile(ctx context.Context) (models.ProfileResponse, error)

	// Login exchanges phone number and password for a bearer token.
	// A wrong credential pair may come back either as a non-2xx status
	// (mapped to an error) or as a 200 carrying only Message.
	Login(ctx context.Context, input models.LoginInput) (models.LoginResponse, error)

	// ChangePassword changes the current administrator's password.
	ChangePassword(ctx context.Context, input models.ChangePasswordInput) error

	// Admins fetches the administrator collection.
	Admins(ctx context.Context) ([]models.User, error)

	// CreateAdmin registers a new administrator account.
	CreateAdmin(ctx context.Context, input models.AdminInput) error

	// UpdateAdmin updates the administrator identified by input.ID.
	// An empty input.Password leaves the password unchanged.
	UpdateAdmin(ctx context.Context, input models.AdminInput) error

	// DeleteAdmin removes the administrator with the given id.
	DeleteAdmin(ctx context.Context, id string) error

	// Trainers fetches the trainer collection.
	Trainers(ctx context.Context) ([]models.Trainer, error)

	// CreateTrainer creates a trainer profile. The photo must already be
	// uploaded via UploadPhoto; input.Photo carries its reference.
	CreateTrainer(ctx context.Context, input models.TrainerInput) error

	// UpdateTrainer updates the trainer identified by input.ID.
	UpdateTrainer(ctx context.Context, input models.TrainerInput) error

	// DeleteTrainer removes the trainer with the given id.
	DeleteTrainer(ctx context.Context, id string) error

	// UploadPhoto uploads a single image file and returns the filename
	// reference the server stored it under.
	UploadPhoto(ctx context.Context, fileName string, r io.Reader) (string, error)

	// Blogs fetches the blog collection.
	Blogs(ctx context.Context) ([]models.Blog, error)

	// CreateBlog creates a blog post. Photo files listed in
	// input.PhotoPaths are read from disk and sent as multipart parts in
	// the same request.
	CreateBlog(ctx context.Context, input models.BlogInput) error

	// UpdateBlog updates the blog identified by input.ID. Kept photo
	// URLs (input.ExistingPhotos) and new files (input.PhotoPaths)
	// travel in one multipart write, so a partial photo-set replacement
	// is a single request.
	UpdateBlog(ctx context.Context, input models.BlogInput) error

	// DeleteBlog removes the blog post with the given id.
	DeleteBlog(ctx context.Context, id string) error
}
