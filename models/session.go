package models

// Session is the login response payload persisted verbatim by the session
// store. It is the only entity with a lifetime beyond a single operation:
// created on successful login, destroyed on logout or when the stored data
// fails to deserialize.
//
// Invariant: a valid session always carries a non-empty Token. The auth
// client never attaches an empty or malformed token to a request.
type Session struct {
	// Token is the opaque bearer credential attached to authenticated
	// requests via the Authorization header.
	Token string `json:"token"`

	// UserID is the server-assigned identifier of the logged-in user.
	UserID int64 `json:"user_id"`

	// Email is the address the session was established for.
	Email string `json:"email"`
}

// Valid reports whether the session satisfies the non-empty token invariant.
func (s Session) Valid() bool {
	return s.Token != ""
}

// Profile returns the normalized profile shape derived from the login
// payload, emitted to the state sink right after a successful login.
func (s Session) Profile() UserProfile {
	return UserProfile{ID: s.UserID, Email: s.Email}
}
