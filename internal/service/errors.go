package service

import "errors"

var (
	ErrMissingData           = errors.New("missing data")
	ErrEmailPasswordRequired = errors.New("email and password are required")
	ErrInvalidEmailFormat    = errors.New("invalid email format")
	ErrPasswordTooShort      = errors.New("password is too short")

	// ErrInvalidEmailOrPassword covers both an unknown account and a wrong
	// password, so login responses do not reveal which accounts exist.
	ErrInvalidEmailOrPassword = errors.New("invalid email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenRevoked            = errors.New("token has been revoked")
)
