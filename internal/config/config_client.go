package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

// ClientApp holds application-level client settings.
type ClientApp struct {
	// Version is the application version string shown on the profile screen.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the API base URL used by the HTTP adapter.
	BaseURL string
	// RequestTimeout is the transport timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientStorage groups local storage settings.
type ClientStorage struct {
	// CredentialsPath is the path of the credential database file.
	CredentialsPath string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the API address and timeout.
	Adapter ClientAdapter
	// Resources contains the per-deployment API paths.
	Resources Resources
	// Storage contains local storage settings.
	Storage ClientStorage
}

// GetClientConfig builds and validates the client configuration from
// environment variables, command-line flags, an optional JSON file, and
// built-in defaults.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Resources: cfg.Resources,
		Storage: ClientStorage{
			CredentialsPath: cfg.Storage.CredentialsPath,
		},
	}, nil
}

// validate checks the merged configuration for values the client cannot
// run without.
func (c *StructuredConfig) validate() error {
	raw := strings.TrimSpace(c.Adapter.BaseURL)
	if raw == "" {
		return ErrEmptyBaseURL
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return ErrInvalidBaseURL
	}

	if c.Adapter.RequestTimeout < 0 {
		return ErrNegativeTimeout
	}

	return nil
}
