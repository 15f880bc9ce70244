package session

import (
	"context"

	"github.com/MKhiriev/seven-sport-admin/internal/adapter"
	"github.com/MKhiriev/seven-sport-admin/models"
)

// FallbackTokenError is the user-facing message recorded when the
// identity check fails without a server-provided message (network
// failure, empty error body).
const FallbackTokenError = "Unknown Token"

// identityClient is the slice of [adapter.ServerAdapter] the bootstrap
// needs; narrowed so tests can stub it without a full adapter.
type identityClient interface {
	Profile(ctx context.Context) (models.ProfileResponse, error)
}

// Bootstrap runs the one-time startup identity check and drives the store
// through its transitions:
//
//  1. BeginAuthentication.
//  2. GET the profile endpoint with whatever credential was persisted
//     from a prior session.
//  3. Body without a message field      → SetAuthenticated(user).
//  4. Body with a message field (soft
//     failure, e.g. expired token + 200) → SetUnauthenticated(message).
//  5. Request-level failure             → SetUnauthenticated(extracted
//     server message, or [FallbackTokenError]).
//
// It never retries and must be called exactly once per process start; it
// is the sole writer of session state during startup.
func Bootstrap(ctx context.Context, store *Store, client identityClient) {
	store.BeginAuthentication()

	profile, err := client.Profile(ctx)
	if err != nil {
		store.SetUnauthenticated(adapter.ExtractMessage(err, FallbackTokenError))
		return
	}

	if profile.Message != "" {
		store.SetUnauthenticated(profile.Message)
		return
	}

	store.SetAuthenticated(profile.User)
}
