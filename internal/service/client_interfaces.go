package service

import (
	"context"

	"github.com/4GeeksAcademy/jwt-jaime35/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/auth_client_mock.go -package=mock

// AuthClient is the client-side contract for the authentication flow. It owns
// the bearer token's lifecycle — acquisition at login, storage between calls,
// attachment to authenticated requests, invalidation at logout — and
// propagates every state change to the caller-supplied notify sink.
//
// All operations except Probe return a uniform [models.AuthResult]: server
// rejections, transport failures, and missing local state are normalised into
// the Success=false branch and never surface as errors. Probe is the one
// exception — it guards application startup, so its failure propagates as an
// error the caller is expected to treat as fatal.
//
// The client holds no reference to the sink between calls; each operation
// notifies the sink it was given and forgets it.
type AuthClient interface {
	// Probe performs the startup reachability check against the backend's
	// health endpoint and forwards the greeting to notify. Returns an error
	// carrying a human-readable diagnostic when the backend cannot be
	// reached.
	Probe(ctx context.Context, notify models.Notify) error

	// Signup registers a new account. On success it notifies the sink with
	// the created profile; the session store is never touched (the new user
	// still has to log in).
	Signup(ctx context.Context, notify models.Notify, creds models.Credentials) models.AuthResult

	// Login exchanges credentials for a session, persists it, and notifies
	// the sink twice: once with the raw session payload and once with the
	// profile shape derived from it. On failure the store is left untouched.
	Login(ctx context.Context, notify models.Notify, creds models.Credentials) models.AuthResult

	// FetchProfile retrieves the authenticated user's profile using the
	// stored token and delivers it to the sink. Issues no request when no
	// usable token is stored.
	FetchProfile(ctx context.Context, notify models.Notify) models.AuthResult

	// Logout revokes the stored token server-side, clears the session store,
	// and notifies the sink with cleared login and profile states. A failed
	// logout deliberately leaves the session intact.
	Logout(ctx context.Context, notify models.Notify) models.AuthResult
}
