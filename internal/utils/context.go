// Package utils provides general-purpose helper utilities used across
// different parts of the application: context keys, HTTP response writing,
// HTTP client initialization, and JWT token generation and validation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated user identifier in
// the request context. Set by the auth middleware after token validation and
// read back via GetUserIDFromContext.
var UserIDCtxKey = contextKey("userID")

// JTICtxKey is the key used to store the validated token's unique identifier
// ("jti" claim) in the request context. The logout handler reads it back to
// revoke exactly the token the request was authenticated with.
var JTICtxKey = contextKey("jti")

// GetJTIFromContext retrieves the token identifier from the context.
// The ok flag is false when the value is missing or has an unexpected type.
func GetJTIFromContext(ctx context.Context) (string, bool) {
	jti, ok := ctx.Value(JTICtxKey).(string)
	return jti, ok
}

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
