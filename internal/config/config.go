package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// server and client binaries. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds token signing parameters used by the server.
	Auth Auth `envPrefix:"AUTH_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings for the client's outbound transport: the
	// backend origin and the per-request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for all persistence backends: the server's
	// relational database and the client's session file.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Auth holds token lifecycle parameters for the server.
type Auth struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT remains valid after issuance
	// (e.g. "2h", "30m").
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3001").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds settings for the client's outbound HTTP transport.
type Adapter struct {
	// BackendURL is the single configured origin all client requests are
	// issued against (e.g. "http://localhost:3001"). Required for the client
	// binary; absence is a fatal configuration error raised at startup.
	// Env: ADAPTER_BACKEND_URL
	BackendURL string `env:"BACKEND_URL"`

	// RequestTimeout is the timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for all persistence backends.
type Storage struct {
	// DB holds the server's relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Session holds the client's session persistence settings.
	Session SessionFile `envPrefix:"SESSION_"`
}

// DB holds connection settings for the server's relational database.
type DB struct {
	// DSN is the data source name used to open the database connection.
	// A "postgres://" DSN selects the pgx driver; any other value is treated
	// as an SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// SessionFile holds the client's session record persistence settings.
type SessionFile struct {
	// FilePath is the path of the JSON file holding the persisted session
	// record. ":memory:" keeps the session in process memory only.
	// Env: STORAGE_SESSION_FILE_PATH
	FilePath string `env:"FILE_PATH"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
