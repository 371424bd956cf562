package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/4GeeksAcademy/jwt-jaime35/internal/adapter"
	"github.com/4GeeksAcademy/jwt-jaime35/internal/app"
	"github.com/4GeeksAcademy/jwt-jaime35/internal/logger"
	"github.com/4GeeksAcademy/jwt-jaime35/internal/store"
	"github.com/4GeeksAcademy/jwt-jaime35/models"
)

type authClient struct {
	sessions store.SessionStore
	adapter  adapter.BackendAdapter

	logger *logger.Logger
}

func NewAuthClient(sessions store.SessionStore, backendAdapter adapter.BackendAdapter, logger *logger.Logger) AuthClient {
	return &authClient{sessions: sessions, adapter: backendAdapter, logger: logger}
}

// Probe implements [AuthClient]. Unlike the four auth operations it returns
// an error on failure: reachability is a startup precondition, not a user
// action, and the caller treats it as fatal.
func (c *authClient) Probe(ctx context.Context, notify models.Notify) error {
	hello, err := c.adapter.Hello(ctx)
	if err != nil {
		c.logger.Err(err).Msg("backend probe failed")
		return fmt.Errorf("%s: %w", app.MsgProbeFailed, err)
	}

	notify(models.StateEvent{Kind: models.EventHello, Message: hello.Message})
	return nil
}

// Signup implements [AuthClient]. It registers the account and delivers the
// created profile to the sink. The session store is never touched: a fresh
// account still has to log in.
func (c *authClient) Signup(ctx context.Context, notify models.Notify, creds models.Credentials) models.AuthResult {
	created, err := c.adapter.Signup(ctx, creds)
	if err != nil {
		return c.failResult("signup", err, app.MsgSignupFailed)
	}

	user := created.User
	notify(models.StateEvent{Kind: models.EventSignup, User: &user})

	return models.Succeed(app.MsgSignupSuccess)
}

// Login implements [AuthClient]. On success the login payload is persisted
// verbatim and the sink is notified twice: the raw session first, then the
// profile shape derived from it. On any failure the store is left untouched.
func (c *authClient) Login(ctx context.Context, notify models.Notify, creds models.Credentials) models.AuthResult {
	session, err := c.adapter.Login(ctx, creds)
	if err != nil {
		return c.failResult("login", err, app.MsgLoginFailed)
	}

	if err = c.sessions.Save(session); err != nil {
		c.logger.Err(err).Msg("session persistence failed")
		return models.Fail(app.MsgLoginFailed)
	}

	profile := session.Profile()
	notify(models.StateEvent{Kind: models.EventLogin, Session: session})
	notify(models.StateEvent{Kind: models.EventProfile, User: &profile})

	return models.Succeed("")
}

// FetchProfile implements [AuthClient]. Without a usable stored token it
// fails locally and issues no request: a missing record yields "no token"
// and an undecodable one yields "invalid format".
func (c *authClient) FetchProfile(ctx context.Context, notify models.Notify) models.AuthResult {
	session, err := c.sessions.Load()
	if err != nil {
		return models.Fail(app.MsgInvalidTokenFormat)
	}
	if session == nil {
		return models.Fail(app.MsgNoAuthToken)
	}

	profile, err := c.adapter.FetchProfile(ctx, session.Token)
	if err != nil {
		return c.failResult("profile fetch", err, app.MsgProfileFetchFailed)
	}

	user := profile.User
	notify(models.StateEvent{Kind: models.EventProfile, User: &user})

	return models.Succeed("")
}

// Logout implements [AuthClient]. On server success the store is cleared and
// the sink receives a cleared login state followed by a nil profile,
// mirroring login's two-notification pattern. A rejected logout keeps the
// session intact so the user does not lose a still-valid token.
func (c *authClient) Logout(ctx context.Context, notify models.Notify) models.AuthResult {
	session, err := c.sessions.Load()
	if err != nil {
		return models.Fail(app.MsgInvalidTokenFormat)
	}
	if session == nil {
		return models.Fail(app.MsgNoTokenInSession)
	}

	if _, err = c.adapter.Logout(ctx, session.Token); err != nil {
		var srvErr *adapter.ServerError
		if errors.As(err, &srvErr) {
			c.logger.Error().Int("status", srvErr.StatusCode).Msg("logout rejected by server")
			return models.Fail(app.MsgLogoutFailed)
		}

		c.logger.Err(err).Msg("logout request failed")
		return models.Fail(app.MsgNetworkErrorLogout)
	}

	if err = c.sessions.Clear(); err != nil {
		c.logger.Err(err).Msg("session clear failed")
	}

	notify(models.StateEvent{Kind: models.EventLogin, Session: models.Session{}})
	notify(models.StateEvent{Kind: models.EventProfile, User: nil})

	return models.Succeed(app.MsgLogoutSuccess)
}

// failResult normalises an adapter error into the uniform failure shape: a
// server rejection carries the body's error text (falling back to the
// operation-specific message when the body had none), while a transport
// failure maps to the generic network-error message.
func (c *authClient) failResult(op string, err error, fallback string) models.AuthResult {
	var srvErr *adapter.ServerError
	if errors.As(err, &srvErr) {
		c.logger.Error().Int("status", srvErr.StatusCode).Str("op", op).Msg("request rejected by server")

		if srvErr.Message != "" {
			return models.Fail(srvErr.Message)
		}
		return models.Fail(fallback)
	}

	c.logger.Err(err).Str("op", op).Msg("request failed")
	return models.Fail(app.MsgNetworkError)
}
