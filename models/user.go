package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Email is the unique user identifier used during authentication.
	Email string `json:"email"`

	// Password holds the bcrypt hash of the user's password.
	// It is never exposed via JSON and is used only at the persistence layer.
	Password string `json:"-"`

	// IsActive reports whether the account is enabled.
	IsActive bool `json:"is_active"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Profile returns the public wire representation of the user, the shape
// served by the profile endpoint and carried in signup responses.
func (u User) Profile() UserProfile {
	return UserProfile{ID: u.ID, Email: u.Email, IsActive: u.IsActive}
}

// UserProfile is the public view of a user account delivered to the state
// sink. The auth client holds no long-lived reference to it.
type UserProfile struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}
