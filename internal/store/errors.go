package store

import "errors"

var (
	// ErrEmailAlreadyExists is returned when a user with the given email is
	// already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup matches no user record.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSessionMalformed is returned by the session store when a persisted
	// record exists but cannot be decoded, or decodes to a record with an
	// empty token. The auth client reports it as an invalid token format
	// instead of issuing a request.
	ErrSessionMalformed = errors.New("stored session is malformed")
)
