// Package config loads and merges the seven-sport-admin configuration from
// environment variables, command-line flags, an optional JSON file, and
// built-in defaults. Values provided earlier in that list win.
//
// The merged [StructuredConfig] is never consumed directly; callers use
// the [ClientConfig] view returned by [GetClientConfig].
package config
