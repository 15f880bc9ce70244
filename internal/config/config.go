package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// seven-sport-admin client. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file, and built-in defaults (in that order of
// precedence).
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Adapter holds the API endpoint address and the outbound request
	// timeout used by the HTTP adapter.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Resources holds the API path of every resource collection. Path
	// naming is inconsistent across historical server deployments
	// ("users" vs "admin", "trainer" vs "trainers"), so the paths are
	// configuration, not code.
	Resources Resources `envPrefix:"RESOURCES_"`

	// Storage holds local storage settings (the credential database).
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds network settings used by the client transport layer.
type Adapter struct {
	// BaseURL is the base URL of the sport-center API, including the
	// "/api" prefix (e.g. "https://server.7sportcenter.uz/api").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the transport-level timeout for outbound
	// requests (e.g. "15s"). The application itself never cancels an
	// issued request; this is the only bound on request duration.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Resources holds the per-deployment API path of every collection and
// auth endpoint consumed by the client.
type Resources struct {
	// Admins is the administrator collection path.
	// Env: RESOURCES_ADMINS
	Admins string `env:"ADMINS"`

	// Trainers is the trainer collection path.
	// Env: RESOURCES_TRAINERS
	Trainers string `env:"TRAINERS"`

	// Blogs is the blog collection path.
	// Env: RESOURCES_BLOGS
	Blogs string `env:"BLOGS"`

	// Upload is the single-file photo upload path.
	// Env: RESOURCES_UPLOAD
	Upload string `env:"UPLOAD"`

	// Login is the login endpoint path.
	// Env: RESOURCES_LOGIN
	Login string `env:"LOGIN"`

	// ChangePassword is the change-password endpoint path.
	// Env: RESOURCES_CHANGE_PASSWORD
	ChangePassword string `env:"CHANGE_PASSWORD"`

	// Profile is the "who am I" identity check path.
	// Env: RESOURCES_PROFILE
	Profile string `env:"PROFILE"`
}

// Storage holds local storage settings for the client.
type Storage struct {
	// CredentialsPath is the path of the bbolt database file holding the
	// bearer credential. Empty means a "credentials.db" file next to the
	// executable.
	// Env: STORAGE_CREDENTIALS_PATH
	CredentialsPath string `env:"CREDENTIALS_PATH"`
}

// defaults returns the built-in configuration that is merged in last, so
// any value provided via env, flags, or JSON wins over it.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        "https://server.7sportcenter.uz/api",
			RequestTimeout: 15 * time.Second,
		},
		Resources: Resources{
			Admins:         "users",
			Trainers:       "trainer",
			Blogs:          "blog",
			Upload:         "upload",
			Login:          "users/login",
			ChangePassword: "auth/change-password",
			Profile:        "admin/profile",
		},
	}
}
