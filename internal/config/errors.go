package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrMissingBackendURL indicates the client has no backend origin
	// configured. This is fatal at startup, never deferred to first use.
	ErrMissingBackendURL = errors.New("backend URL is not configured")

	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidAuthConfigs indicates invalid token parameters
	// (for example, empty sign key or zero token duration).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")

	// ErrInvalidStorageConfigs indicates invalid persistence settings
	// (for example, empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
