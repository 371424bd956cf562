package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/4GeeksAcademy/jwt-jaime35/internal/config"
	"github.com/4GeeksAcademy/jwt-jaime35/internal/logger"
	"github.com/4GeeksAcademy/jwt-jaime35/internal/utils"
	"github.com/4GeeksAcademy/jwt-jaime35/models"
)

type httpBackendAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs an HTTP/REST implementation of
// [BackendAdapter]. It normalises and validates the base URL from
// adapterCfg.BackendURL and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.BackendURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPBackendAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (BackendAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.BackendURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpBackendAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Hello implements [BackendAdapter]. It GETs /hello and decodes the greeting
// body. Any 2xx status is accepted.
func (h *httpBackendAdapter) Hello(ctx context.Context) (models.HelloResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/hello")
	if err != nil {
		return models.HelloResponse{}, fmt.Errorf("hello request: %w", err)
	}
	if !resp.IsSuccess() {
		return models.HelloResponse{}, newServerError(resp)
	}

	var hello models.HelloResponse
	if err = json.Unmarshal(resp.Body(), &hello); err != nil {
		return models.HelloResponse{}, fmt.Errorf("decode hello response: %w", err)
	}

	return hello, nil
}

// Signup implements [BackendAdapter]. It POSTs the credentials to
// POST /api/signup. Only 201 Created counts as success; every other status is
// returned as a [ServerError].
func (h *httpBackendAdapter) Signup(ctx context.Context, creds models.Credentials) (models.SignupResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/api/signup")
	if err != nil {
		return models.SignupResponse{}, fmt.Errorf("signup request: %w", err)
	}
	if resp.StatusCode() != http.StatusCreated {
		return models.SignupResponse{}, newServerError(resp)
	}

	var created models.SignupResponse
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.SignupResponse{}, fmt.Errorf("decode signup response: %w", err)
	}

	return created, nil
}

// Login implements [BackendAdapter]. It POSTs the credentials to
// POST /api/login and returns the session payload (token, user id, email)
// verbatim. Any 2xx status counts as success.
func (h *httpBackendAdapter) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/api/login")
	if err != nil {
		return models.Session{}, fmt.Errorf("login request: %w", err)
	}
	if !resp.IsSuccess() {
		return models.Session{}, newServerError(resp)
	}

	var session models.Session
	if err = json.Unmarshal(resp.Body(), &session); err != nil {
		return models.Session{}, fmt.Errorf("decode login response: %w", err)
	}

	return session, nil
}

// FetchProfile implements [BackendAdapter]. It GETs /api/profile with the
// given bearer token. Only 200 OK counts as success.
func (h *httpBackendAdapter) FetchProfile(ctx context.Context, token string) (models.ProfileResponse, error) {
	resp, err := h.authedRequest(ctx, token).Get("/api/profile")
	if err != nil {
		return models.ProfileResponse{}, fmt.Errorf("profile request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return models.ProfileResponse{}, newServerError(resp)
	}

	var profile models.ProfileResponse
	if err = json.Unmarshal(resp.Body(), &profile); err != nil {
		return models.ProfileResponse{}, fmt.Errorf("decode profile response: %w", err)
	}

	return profile, nil
}

// Logout implements [BackendAdapter]. It POSTs to /api/logout with the given
// bearer token, revoking it server-side. Any 2xx status counts as success.
func (h *httpBackendAdapter) Logout(ctx context.Context, token string) (models.LogoutResponse, error) {
	resp, err := h.authedRequest(ctx, token).Post("/api/logout")
	if err != nil {
		return models.LogoutResponse{}, fmt.Errorf("logout request: %w", err)
	}
	if !resp.IsSuccess() {
		return models.LogoutResponse{}, newServerError(resp)
	}

	var out models.LogoutResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.LogoutResponse{}, fmt.Errorf("decode logout response: %w", err)
	}

	return out, nil
}

func (h *httpBackendAdapter) authedRequest(ctx context.Context, token string) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token = strings.TrimSpace(token); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
