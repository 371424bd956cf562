package models

// HelloResponse is the body of the unauthenticated health endpoint, used by
// the bootstrap probe at application start.
type HelloResponse struct {
	Message string `json:"message"`
}

// SignupResponse is the body returned by the signup endpoint on 201 Created.
type SignupResponse struct {
	Msg  string      `json:"msg"`
	User UserProfile `json:"user"`
}

// ProfileResponse is the body returned by the authenticated profile endpoint.
type ProfileResponse struct {
	User UserProfile `json:"user"`
}

// LogoutResponse is the body returned by the logout endpoint.
type LogoutResponse struct {
	Msg string `json:"msg"`
}

// APIError is the error body shape shared by every endpoint: JSON with an
// "error" or "msg" string field. Which field is populated varies by route, so
// clients check Error first, then Msg.
type APIError struct {
	Error string `json:"error,omitempty"`
	Msg   string `json:"msg,omitempty"`
}

// Message returns the server-supplied error text, preferring the "error"
// field over "msg". Returns the empty string when neither is present, in
// which case callers substitute an operation-specific fallback.
func (e APIError) Message() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Msg
}
