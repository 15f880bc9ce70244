// Package session owns the process-wide authentication state of the admin
// client: who, if anyone, is currently signed in.
//
// The state lives in a single [Store] and can only change through the
// three named transitions [Store.BeginAuthentication],
// [Store.SetAuthenticated], and [Store.SetUnauthenticated]. No other
// component may mutate it. Interested components subscribe to transitions
// and recompute their view from the new [State]; [Route] maps a State to
// the view set that is reachable in it.
package session

import (
	"sync"

	"github.com/MKhiriev/seven-sport-admin/models"
)

// State is an immutable snapshot of the session.
//
// Invariant: IsAuthenticating=true means the other flags are not yet
// meaningful; IsAuthenticated=true implies CurrentUser != nil and
// LastError == "". After a failed bootstrap CurrentUser may still hold a
// stale value — IsAuthenticated is authoritative, not user presence.
type State struct {
	CurrentUser      *models.User
	IsAuthenticating bool
	IsAuthenticated  bool
	LastError        string
}

// Store is the single owner of the session state. All methods are safe
// for concurrent use.
type Store struct {
	mu    sync.RWMutex
	state State
	subs  []func(State)
}

// NewStore returns a Store in the initial pre-bootstrap state:
// not authenticating, not authenticated, no user.
func NewStore() *Store {
	return &Store{}
}

// State returns a snapshot of the current session state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn to be called after every transition with the new
// state. Subscribers are invoked synchronously in registration order.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// BeginAuthentication marks the session as authenticating. Calling it
// again while already authenticating is a no-op beyond re-notifying
// subscribers: the flag is a simple assignment.
func (s *Store) BeginAuthentication() {
	s.transition(func(st *State) {
		st.IsAuthenticating = true
	})
}

// SetAuthenticated records a successful identity check. This is the only
// transition that populates CurrentUser.
func (s *Store) SetAuthenticated(user models.User) {
	s.transition(func(st *State) {
		st.CurrentUser = &user
		st.IsAuthenticated = true
		st.IsAuthenticating = false
		st.LastError = ""
	})
}

// SetUnauthenticated records a failed or revoked authentication. It does
// not clear CurrentUser; callers must treat IsAuthenticated as
// authoritative.
func (s *Store) SetUnauthenticated(errMsg string) {
	s.transition(func(st *State) {
		st.LastError = errMsg
		st.IsAuthenticated = false
		st.IsAuthenticating = false
	})
}

func (s *Store) transition(mutate func(*State)) {
	s.mu.Lock()
	mutate(&s.state)
	state := s.state
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
}
