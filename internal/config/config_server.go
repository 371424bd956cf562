package config

import (
	"fmt"
	"time"
)

// Server-side defaults mirroring the original deployment: port 3001, two-hour
// tokens, and an SQLite scratch database when no DSN is configured.
const (
	defaultHTTPAddress   = ":3001"
	defaultTokenIssuer   = "jwt-auth-api"
	defaultTokenDuration = 2 * time.Hour
	defaultDatabaseDSN   = "/tmp/test.db"
)

// ServerConfig is the top-level server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	// Auth contains token signing parameters.
	Auth Auth
	// Server contains the listen address and request timeout.
	Server Server
	// Storage contains database settings.
	Storage Storage
}

// GetServerConfig builds and validates a server-specific config view from the
// merged structured configuration, filling in deployment defaults for any
// field left unset.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		Auth:    cfg.Auth,
		Server:  cfg.Server,
		Storage: cfg.Storage,
	}

	if serverCfg.Server.HTTPAddress == "" {
		serverCfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if serverCfg.Auth.TokenIssuer == "" {
		serverCfg.Auth.TokenIssuer = defaultTokenIssuer
	}
	if serverCfg.Auth.TokenDuration == 0 {
		serverCfg.Auth.TokenDuration = defaultTokenDuration
	}
	if serverCfg.Storage.DB.DSN == "" {
		serverCfg.Storage.DB.DSN = defaultDatabaseDSN
	}

	return serverCfg, serverCfg.validate()
}
