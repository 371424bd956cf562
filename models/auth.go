package models

// Credentials is the request body sent to the signup and login endpoints.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is the uniform outcome value returned by every auth client
// operation. Failures of any kind — server rejection, transport error,
// missing local state — are normalized into the Success=false branch; no
// operation ever surfaces an unhandled error to the caller.
type AuthResult struct {
	// Success discriminates the outcome.
	Success bool `json:"success"`

	// Message is a human-readable description of the outcome. Always set on
	// failure; set on success only where the flow defines one (signup,
	// logout).
	Message string `json:"message,omitempty"`
}

// Succeed builds a successful AuthResult with an optional message.
func Succeed(message string) AuthResult {
	return AuthResult{Success: true, Message: message}
}

// Fail builds a failed AuthResult carrying the given message.
func Fail(message string) AuthResult {
	return AuthResult{Success: false, Message: message}
}
