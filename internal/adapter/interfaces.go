// Package adapter provides the transport layer for communicating with the
// auth backend.
//
// The primary abstraction is [BackendAdapter], which decouples the service
// layer from the underlying protocol. The package ships a single HTTP/REST
// implementation ([NewHTTPBackendAdapter]) built on resty.
//
// Failures are reported in two distinct shapes so that callers can tell them
// apart with [errors.As]: a [ServerError] means the backend answered with an
// unexpected status (the response body's "error"/"msg" text is carried along),
// while any other error means the request never produced a usable response
// (network failure, timeout, cancelled context).
package adapter

import (
	"context"

	"github.com/4GeeksAcademy/jwt-jaime35/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter defines transport-agnostic communication with the auth
// backend. Implementations are responsible for serialisation, bearer-token
// headers, and mapping unexpected responses to [ServerError].
//
// The adapter is stateless with respect to authentication: operations that
// need a token take it as an explicit argument, and the session store remains
// the only owner of persisted credentials.
type BackendAdapter interface {
	// Hello calls the unauthenticated health endpoint and returns its
	// greeting. Used by the bootstrap probe at application start.
	Hello(ctx context.Context) (models.HelloResponse, error)

	// Signup registers a new account with the given credentials. Only a
	// 201 Created response counts as success; any other status — including
	// other 2xx codes — is returned as a [ServerError].
	Signup(ctx context.Context, creds models.Credentials) (models.SignupResponse, error)

	// Login exchanges credentials for a session record containing the bearer
	// token. Any 2xx status counts as success.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// FetchProfile retrieves the authenticated user's profile using the given
	// bearer token. Only a 200 OK response counts as success.
	FetchProfile(ctx context.Context, token string) (models.ProfileResponse, error)

	// Logout revokes the given bearer token on the server. Any 2xx status
	// counts as success.
	Logout(ctx context.Context, token string) (models.LogoutResponse, error)
}
