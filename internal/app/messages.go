// Package app contains shared application-layer constants used across the
// server handlers and the auth client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies, AuthResult values, or log entries to describe the
// outcome of an operation. Keeping them in one place ensures consistent
// wording throughout the API and the client.
package app

// Server response messages.
const (
	// MsgHello is the greeting served by the unauthenticated health endpoint.
	MsgHello = "Hello! I'm a message from the backend."

	// MsgUserCreated is returned in the 201 signup response body.
	MsgUserCreated = "User created"

	// MsgMissingData is returned when the signup request carries no JSON body.
	MsgMissingData = "Missing data"

	// MsgEmailPasswordRequired is returned when either credential field is
	// empty.
	MsgEmailPasswordRequired = "Email and password are required"

	// MsgInvalidEmailFormat is returned when the email fails the format check.
	MsgInvalidEmailFormat = "Invalid email format"

	// MsgPasswordTooShort is returned when the password is under the minimum
	// length.
	MsgPasswordTooShort = "Password must be at least 8 characters"

	// MsgEmailAlreadyExists is returned with 409 when the email is taken.
	MsgEmailAlreadyExists = "Email already exists"

	// MsgInvalidEmailOrPassword is returned with 401 on failed login. The
	// same message covers both unknown accounts and wrong passwords so the
	// endpoint does not reveal which accounts exist.
	MsgInvalidEmailOrPassword = "Invalid email or password"

	// MsgUserNotFound is returned when a token references a missing account.
	MsgUserNotFound = "User not found"

	// MsgLoggedOut is returned in the 200 logout response body.
	MsgLoggedOut = "Logged out successfully"

	// MsgTokenExpiredOrInvalid is returned when a bearer token fails
	// signature, issuer, or expiry validation.
	MsgTokenExpiredOrInvalid = "Token is expired or invalid"

	// MsgTokenRevoked is returned when a bearer token's jti is on the
	// blocklist.
	MsgTokenRevoked = "Token has been revoked"
)

// Client-side result messages. These are user-facing strings carried by
// AuthResult values; they never leak transport internals.
const (
	// MsgSignupSuccess is the success message after account creation.
	MsgSignupSuccess = "Signup successful! Please login."

	// MsgSignupFailed is the fallback when the signup error body carries no
	// message.
	MsgSignupFailed = "Signup failed."

	// MsgLoginFailed is the fallback when the login error body carries no
	// message.
	MsgLoginFailed = "Login failed."

	// MsgProfileFetchFailed is the fallback when the profile error body
	// carries no message.
	MsgProfileFetchFailed = "Profile fetch failed."

	// MsgNetworkError is the generic transport failure message for signup,
	// login, and profile operations.
	MsgNetworkError = "Network error. Please try again later."

	// MsgNetworkErrorLogout is the transport failure message specific to
	// logout.
	MsgNetworkErrorLogout = "Network error during logout."

	// MsgNoAuthToken is returned by the profile operation when no session is
	// stored; no request is issued.
	MsgNoAuthToken = "No authentication token found."

	// MsgNoTokenInSession is returned by the logout operation when no session
	// is stored; no request is issued.
	MsgNoTokenInSession = "No token found in session."

	// MsgInvalidTokenFormat is returned when a stored session record exists
	// but cannot be decoded.
	MsgInvalidTokenFormat = "Invalid token format."

	// MsgLogoutSuccess is the success message after logout.
	MsgLogoutSuccess = "Logged out successfully."

	// MsgLogoutFailed is returned when the server rejects the logout request.
	// The session is deliberately kept intact in that case.
	MsgLogoutFailed = "Logout unsuccessful."

	// MsgProbeFailed is the diagnostic carried by the error returned when the
	// bootstrap probe cannot reach the backend. Unlike the other operations,
	// probe failure propagates as an error because it gates initial startup.
	MsgProbeFailed = "Could not fetch the message from the backend. Please check if the backend is running and the backend port is public."
)
