package config

import (
	"flag"
	"time"
)

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a base URL of the sport-center API
//	-request-timeout outbound request timeout (e.g., "15s", "1m")
//	-credentials credential database file path
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("seven-sport-admin", flag.ContinueOnError)

	var baseURL string
	var requestTimeout time.Duration
	var credentialsPath string
	var jsonConfigPath string

	fs.StringVar(&baseURL, "a", "", "API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&credentialsPath, "credentials", "", "Credential database file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			CredentialsPath: credentialsPath,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
