package client

import (
	"sync"

	"github.com/4GeeksAcademy/jwt-jaime35/models"
)

// State is the in-process state sink: it accumulates the notifications
// emitted by auth client operations into the current view of the
// authentication state. It is the Go analogue of a UI state container — the
// auth client pushes typed events, State folds them into the latest value per
// concern.
//
// State is safe for concurrent use; operations racing on it leave whichever
// write completed last.
type State struct {
	mu sync.RWMutex

	message string
	user    *models.UserProfile
	session models.Session
}

// NewState returns an empty State. The initial authenticated view is derived
// by the caller from the session store, not from the zero value.
func NewState() *State {
	return &State{}
}

// Apply folds a single event into the state. It has the signature of
// [models.Notify] so it can be handed directly to auth client operations.
func (s *State) Apply(e models.StateEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch e.Kind {
	case models.EventHello:
		s.message = e.Message
	case models.EventSignup, models.EventProfile:
		s.user = e.User
	case models.EventLogin:
		s.session = e.Session
		if !e.Session.Valid() {
			// a cleared session also clears the derived profile
			s.user = nil
		}
	}
}

// Message returns the greeting delivered by the bootstrap probe.
func (s *State) Message() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.message
}

// User returns the most recently delivered profile, or nil.
func (s *State) User() *models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Session returns the current session value; the zero value means anonymous.
func (s *State) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Authenticated reports whether the state currently holds a valid session.
func (s *State) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Valid()
}
