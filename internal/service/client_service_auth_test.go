package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/4GeeksAcademy/jwt-jaime35/internal/adapter"
	"github.com/4GeeksAcademy/jwt-jaime35/internal/app"
	"github.com/4GeeksAcademy/jwt-jaime35/internal/logger"
	"github.com/4GeeksAcademy/jwt-jaime35/internal/mock"
	"github.com/4GeeksAcademy/jwt-jaime35/internal/store"
	"github.com/4GeeksAcademy/jwt-jaime35/models"
)

// recordingSink collects every notification an operation emits so tests can
// assert on count, order, and payload.
type recordingSink struct {
	events []models.StateEvent
}

func (r *recordingSink) notify(e models.StateEvent) {
	r.events = append(r.events, e)
}

func newTestAuthClient(t *testing.T, ctrl *gomock.Controller) (*authClient, *mock.MockBackendAdapter, *mock.MockSessionStore) {
	t.Helper()
	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	mockSessions := mock.NewMockSessionStore(ctrl)

	svc := NewAuthClient(mockSessions, mockAdapter, logger.Nop()).(*authClient)

	return svc, mockAdapter, mockSessions
}

var errConnRefused = errors.New("dial tcp: connection refused")

// ── Probe ────────────────────────────────────────────────────────────────────

func TestAuthClient_Probe_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestAuthClient(t, ctrl)
	ctx := context.Background()
	sink := &recordingSink{}

	mockAdapter.EXPECT().Hello(ctx).Return(models.HelloResponse{Message: app.MsgHello}, nil)

	err := svc.Probe(ctx, sink.notify)
	require.NoError(t, err)

	require.Len(t, sink.events, 1)
	assert.Equal(t, models.EventHello, sink.events[0].Kind)
	assert.Equal(t, app.MsgHello, sink.events[0].Message)
}

func TestAuthClient_Probe_BackendUnreachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestAuthClient(t, ctrl)
	ctx := context.Background()
	sink := &recordingSink{}

	mockAdapter.EXPECT().Hello(ctx).Return(models.HelloResponse{}, errConnRefused)

	err := svc.Probe(ctx, sink.notify)
	require.Error(t, err)
	assert.Contains(t, err.Error(), app.MsgProbeFailed)
	assert.Empty(t, sink.events, "a failed probe must not notify the sink")
}

// ── Signup ───────────────────────────────────────────────────────────────────

func TestAuthClient_Signup_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestAuthClient(t, ctrl)
	ctx := context.Background()
	sink := &recordingSink{}
	creds := models.Credentials{Email: "a@b.com", Password: "secret123"}

	mockAdapter.EXPECT().Signup(ctx, creds).Return(models.SignupResponse{
		Msg:  app.MsgUserCreated,
		User: models.UserProfile{ID: 1, Email: "a@b.com", IsActive: true},
	}, nil)

	result := svc.Signup(ctx, sink.notify, creds)

	assert.True(t, result.Success)
	assert.Equal(t, app.MsgSignupSuccess, result.Message)

	require.Len(t, sink.events, 1)
	assert.Equal(t, models.EventSignup, sink.events[0].Kind)
	require.NotNil(t, sink.events[0].User)
	assert.Equal(t, int64(1), sink.events[0].User.ID)
}

func TestAuthClient_Signup_ServerRejectsWithMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestAuthClient(t, ctrl)
	ctx := context.Background()
	sink := &recordingSink{}
	creds := models.Credentials{Email: "a@b.com", Password: "secret123"}

	mockAdapter.EXPECT().Signup(ctx, creds).Return(models.SignupResponse{}, &adapter.ServerError{
		StatusCode: http.StatusConflict,
		Message:    app.MsgEmailAlreadyExists,
	})

	result := svc.Signup(ctx, sink.notify, creds)

	assert.False(t, result.Success)
	assert.Equal(t, app.MsgEmailAlreadyExists, result.Message)
	assert.Empty(t, sink.events)
}

func TestAuthClient_Signup_ServerRejectsWithoutMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestAuthClient(t, ctrl)
	ctx := context.Background()
	sink := &recordingSink{}
	creds := models.Credentials{Email: "a@b.com", Password: "secret123"}

	mockAdapter.EXPECT().Signup(ctx, creds).Return(models.SignupResponse{}, &adapter.ServerError{
		StatusCode: http.StatusInternalServerError,
	})

	result := svc.Signup(ctx, sink.notify, creds)

	assert.False(t, result.Success)
	assert.Equal(t, app.MsgSignupFailed, result.Message)
}

func TestAuthClient_Signup_NetworkFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestAuthClient(t, ctrl)
	ctx := context.Background()
	sink := &recordingSink{}
	creds := models.Credentials{Email: "a@b.com", Password: "secret123"}

	mockAdapter.EXPECT().Signup(ctx, creds).Return(models.SignupResponse{}, errConnRefused)

	result := svc.Signup(ctx, sink.notify, creds)

	assert.False(t, result.Success)
	assert.Equal(t, app.MsgNetworkError, result.Message)
	assert.Empty(t, sink.events)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthClient_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthClient(t, ctrl)
	ctx := context.Background()
	sink := &recordingSink{}
	creds := models.Credentials{Email: "a@b.com", Password: "secret123"}
	session := models.Session{Token: "jwt-abc", UserID: 42, Email: "a@b.com"}

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, creds).Return(session, nil),
		mockSessions.EXPECT().Save(session).Return(nil),
	)

	result := svc.Login(ctx, sink.notify, creds)

	assert.True(t, result.Success)
	assert.Empty(t, result.Message)

	require.Len(t, sink.events, 2, "login must notify twice: raw payload, then profile")
	assert.Equal(t, models.EventLogin, sink.events[0].Kind)
	assert.Equal(t, session, sink.events[0].Session)
	assert.Equal(t, models.EventProfile, sink.events[1].Kind)
	require.NotNil(t, sink.events[1].User)
	assert.Equal(t, models.UserProfile{ID: 42, Email: "a@b.com"}, *sink.events[1].User)
}

func TestAuthClient_Login_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestAuthClient(t, ctrl)
	ctx := context.Background()
	sink := &recordingSink{}
	creds := models.Credentials{Email: "a@b.com", Password: "wrong"}

	// No Save expectation: a rejected login must leave the store untouched.
	mockAdapter.EXPECT().Login(ctx, creds).Return(models.Session{}, &adapter.ServerError{
		StatusCode: http.StatusUnauthorized,
		Message:    app.MsgInvalidEmailOrPassword,
	})

	result := svc.Login(ctx, sink.notify, creds)

	assert.False(t, result.Success)
	assert.Equal(t, app.MsgInvalidEmailOrPassword, result.Message)
	assert.Empty(t, sink.events)
}

func TestAuthClient_Login_NetworkFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestAuthClient(t, ctrl)
	ctx := context.Background()
	sink := &recordingSink{}
	creds := models.Credentials{Email: "a@b.com", Password: "secret123"}

	mockAdapter.EXPECT().Login(ctx, creds).Return(models.Session{}, errConnRefused)

	result := svc.Login(ctx, sink.notify, creds)

	assert.False(t, result.Success)
	assert.Equal(t, app.MsgNetworkError, result.Message)
	assert.Empty(t, sink.events)
}

func TestAuthClient_Login_SaveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthClient(t, ctrl)
	ctx := context.Background()
	sink := &recordingSink{}
	creds := models.Credentials{Email: "a@b.com", Password: "secret123"}
	session := models.Session{Token: "jwt-abc", UserID: 42, Email: "a@b.com"}

	mockAdapter.EXPECT().Login(ctx, creds).Return(session, nil)
	mockSessions.EXPECT().Save(session).Return(errors.New("disk full"))

	result := svc.Login(ctx, sink.notify, creds)

	assert.False(t, result.Success)
	assert.Equal(t, app.MsgLoginFailed, result.Message)
	assert.Empty(t, sink.events, "a failed persist must not announce an authenticated state")
}

// ── FetchProfile ─────────────────────────────────────────────────────────────

func TestAuthClient_FetchProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthClient(t, ctrl)
	ctx := context.Background()
	sink := &recordingSink{}

	mockSessions.EXPECT().Load().Return(&models.Session{Token: "jwt-abc", UserID: 42, Email: "a@b.com"}, nil)
	mockAdapter.EXPECT().FetchProfile(ctx, "jwt-abc").Return(models.ProfileResponse{
		User: models.UserProfile{ID: 42, Email: "a@b.com", IsActive: true},
	}, nil)

	result := svc.FetchProfile(ctx, sink.notify)

	assert.True(t, result.Success)
	require.Len(t, sink.events, 1)
	assert.Equal(t, models.EventProfile, sink.events[0].Kind)
	require.NotNil(t, sink.events[0].User)
	assert.True(t, sink.events[0].User.IsActive)
}

func TestAuthClient_FetchProfile_NoStoredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestAuthClient(t, ctrl)
	sink := &recordingSink{}

	// No adapter expectation: without a token no request may be issued.
	mockSessions.EXPECT().Load().Return(nil, nil)

	result := svc.FetchProfile(context.Background(), sink.notify)

	assert.False(t, result.Success)
	assert.Equal(t, app.MsgNoAuthToken, result.Message)
	assert.Empty(t, sink.events)
}

func TestAuthClient_FetchProfile_MalformedStoredRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestAuthClient(t, ctrl)
	sink := &recordingSink{}

	mockSessions.EXPECT().Load().Return(nil, store.ErrSessionMalformed)

	result := svc.FetchProfile(context.Background(), sink.notify)

	assert.False(t, result.Success)
	assert.Equal(t, app.MsgInvalidTokenFormat, result.Message)
}

func TestAuthClient_FetchProfile_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthClient(t, ctrl)
	ctx := context.Background()
	sink := &recordingSink{}

	mockSessions.EXPECT().Load().Return(&models.Session{Token: "stale", UserID: 42}, nil)
	mockAdapter.EXPECT().FetchProfile(ctx, "stale").Return(models.ProfileResponse{}, &adapter.ServerError{
		StatusCode: http.StatusUnauthorized,
		Message:    app.MsgTokenExpiredOrInvalid,
	})

	result := svc.FetchProfile(ctx, sink.notify)

	assert.False(t, result.Success)
	assert.Equal(t, app.MsgTokenExpiredOrInvalid, result.Message)
	assert.Empty(t, sink.events)
}

func TestAuthClient_FetchProfile_ServerErrorWithoutMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthClient(t, ctrl)
	ctx := context.Background()
	sink := &recordingSink{}

	mockSessions.EXPECT().Load().Return(&models.Session{Token: "jwt-abc", UserID: 42}, nil)
	mockAdapter.EXPECT().FetchProfile(ctx, "jwt-abc").Return(models.ProfileResponse{}, &adapter.ServerError{
		StatusCode: http.StatusBadGateway,
	})

	result := svc.FetchProfile(ctx, sink.notify)

	assert.False(t, result.Success)
	assert.Equal(t, app.MsgProfileFetchFailed, result.Message)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestAuthClient_Logout_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthClient(t, ctrl)
	ctx := context.Background()
	sink := &recordingSink{}

	gomock.InOrder(
		mockSessions.EXPECT().Load().Return(&models.Session{Token: "jwt-abc", UserID: 42}, nil),
		mockAdapter.EXPECT().Logout(ctx, "jwt-abc").Return(models.LogoutResponse{Msg: app.MsgLoggedOut}, nil),
		mockSessions.EXPECT().Clear().Return(nil),
	)

	result := svc.Logout(ctx, sink.notify)

	assert.True(t, result.Success)
	assert.Equal(t, app.MsgLogoutSuccess, result.Message)

	require.Len(t, sink.events, 2, "logout must mirror login's two-notification pattern")
	assert.Equal(t, models.EventLogin, sink.events[0].Kind)
	assert.Equal(t, models.Session{}, sink.events[0].Session, "the login event must carry a cleared session")
	assert.Equal(t, models.EventProfile, sink.events[1].Kind)
	assert.Nil(t, sink.events[1].User, "the profile event must clear the user")
}

func TestAuthClient_Logout_NoStoredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestAuthClient(t, ctrl)
	sink := &recordingSink{}

	mockSessions.EXPECT().Load().Return(nil, nil)

	result := svc.Logout(context.Background(), sink.notify)

	assert.False(t, result.Success)
	assert.Equal(t, app.MsgNoTokenInSession, result.Message)
	assert.Empty(t, sink.events)
}

func TestAuthClient_Logout_MalformedStoredRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestAuthClient(t, ctrl)
	sink := &recordingSink{}

	mockSessions.EXPECT().Load().Return(nil, store.ErrSessionMalformed)

	result := svc.Logout(context.Background(), sink.notify)

	assert.False(t, result.Success)
	assert.Equal(t, app.MsgInvalidTokenFormat, result.Message)
}

func TestAuthClient_Logout_ServerRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthClient(t, ctrl)
	ctx := context.Background()
	sink := &recordingSink{}

	// No Clear expectation: a rejected logout must keep the session intact.
	mockSessions.EXPECT().Load().Return(&models.Session{Token: "jwt-abc", UserID: 42}, nil)
	mockAdapter.EXPECT().Logout(ctx, "jwt-abc").Return(models.LogoutResponse{}, &adapter.ServerError{
		StatusCode: http.StatusInternalServerError,
	})

	result := svc.Logout(ctx, sink.notify)

	assert.False(t, result.Success)
	assert.Equal(t, app.MsgLogoutFailed, result.Message)
	assert.Empty(t, sink.events)
}

func TestAuthClient_Logout_NetworkFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthClient(t, ctrl)
	ctx := context.Background()
	sink := &recordingSink{}

	mockSessions.EXPECT().Load().Return(&models.Session{Token: "jwt-abc", UserID: 42}, nil)
	mockAdapter.EXPECT().Logout(ctx, "jwt-abc").Return(models.LogoutResponse{}, errConnRefused)

	result := svc.Logout(ctx, sink.notify)

	assert.False(t, result.Success)
	assert.Equal(t, app.MsgNetworkErrorLogout, result.Message)
	assert.Empty(t, sink.events)
}
