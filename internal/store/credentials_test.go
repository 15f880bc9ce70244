package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *CredentialStore {
	t.Helper()
	store, err := NewCredentialStore(filepath.Join(t.TempDir(), "credentials.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// ── Get / Set ───────────────────────────────────────────────────────────────

func TestCredentialStore_GetEmptyWhenUnset(t *testing.T) {
	store := newTestStore(t)

	token, err := store.Get()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestCredentialStore_SetThenGet(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("bearer-token"))

	token, err := store.Get()
	require.NoError(t, err)
	assert.Equal(t, "bearer-token", token)
}

func TestCredentialStore_SetOverwrites(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set("old"))

	require.NoError(t, store.Set("new"))

	token, err := store.Get()
	require.NoError(t, err)
	assert.Equal(t, "new", token)
}

// ── Clear ───────────────────────────────────────────────────────────────────

func TestCredentialStore_Clear(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set("token"))

	require.NoError(t, store.Clear())

	token, err := store.Get()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestCredentialStore_ClearIdempotent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
}

// ── Persistence ─────────────────────────────────────────────────────────────

// The credential must survive a close/reopen cycle; it is the only state
// the client keeps between runs.
func TestCredentialStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.db")

	store, err := NewCredentialStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("persistent-token"))
	require.NoError(t, store.Close())

	reopened, err := NewCredentialStore(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	token, err := reopened.Get()
	require.NoError(t, err)
	assert.Equal(t, "persistent-token", token)
}
