package store

import (
	"github.com/4GeeksAcademy/jwt-jaime35/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/session_store_mock.go -package=mock

// SessionStore owns persistence of the current session record. It is the
// sole owner of the persisted token; the auth client reads and writes it but
// never caches the token elsewhere.
//
// Concurrent operations may race on the store; the final state is whichever
// write completes last. The store guarantees each individual Save/Clear is
// atomic, nothing more.
type SessionStore interface {
	// Save serializes and persists the record, replacing any prior value.
	// The write is atomic: a concurrent Load never observes a partial record.
	Save(session models.Session) error

	// Load returns the persisted record. It returns (nil, nil) when no
	// record is stored, and (nil, ErrSessionMalformed) when stored data
	// exists but cannot be decoded into a valid session. It never fails hard
	// on corrupt data.
	Load() (*models.Session, error)

	// Clear removes the persisted record. Clearing an empty store is a
	// no-op, not an error.
	Clear() error

	// Token returns the persisted bearer token, or the empty string when no
	// valid record is stored.
	Token() string
}
