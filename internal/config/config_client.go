package config

import (
	"fmt"
	"time"
)

// Client-side defaults applied when neither env, flags, nor JSON provide a
// value. The backend URL deliberately has no default: it must be configured
// explicitly.
const (
	defaultRequestTimeout = 15 * time.Second
	defaultSessionFile    = "session.json"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BackendURL is the single configured origin for all client requests.
	BackendURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client persistence settings.
type ClientStorage struct {
	// SessionFile is the path of the JSON file holding the persisted session
	// record. ":memory:" keeps the session in process memory only.
	SessionFile string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the backend origin and request timeout.
	Adapter ClientAdapter
	// Storage contains session persistence settings.
	Storage ClientStorage
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills in defaults for the timeout and
// session file, and validates the resulting [ClientConfig]. A missing backend
// URL fails validation here, at construction, so the caller can abort before
// any operation is attempted.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BackendURL:     cfg.Adapter.BackendURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			SessionFile: cfg.Storage.Session.FilePath,
		},
	}

	if clientCfg.Adapter.RequestTimeout <= 0 {
		clientCfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if clientCfg.Storage.SessionFile == "" {
		clientCfg.Storage.SessionFile = defaultSessionFile
	}

	return clientCfg, clientCfg.validate()
}
